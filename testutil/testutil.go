// Package testutil provides deterministic value generators shared by the
// codec tests.
package testutil

import (
	"math"
	"math/rand"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	return r.rand.Uint64()
}

// Int64 returns a pseudo-random int64, covering both signs.
func (r *RNG) Int64() int64 {
	return int64(r.rand.Uint64())
}

// Uint64s generates n pseudo-random unsigned values whose bit widths are
// spread across the whole 64-bit range, so that short and long codewords
// are exercised alike.
func (r *RNG) Uint64s(n int) []uint64 {
	values := make([]uint64, n)
	for i := range values {
		width := uint(r.rand.Intn(64)) + 1
		values[i] = r.rand.Uint64() >> (64 - width)
	}
	return values
}

// Int64s generates n pseudo-random signed values with bit widths spread
// across the range, of both signs.
func (r *RNG) Int64s(n int) []int64 {
	values := make([]int64, n)
	for i := range values {
		width := uint(r.rand.Intn(63)) + 1
		v := int64(r.rand.Uint64() >> (64 - width))
		if r.rand.Intn(2) == 0 {
			v = -v
		}
		values[i] = v
	}
	return values
}

// BoundaryUint64s lists unsigned values sitting on codeword-length and
// arithmetic boundaries.
func BoundaryUint64s() []uint64 {
	return []uint64{
		0, 1, 2, 3, 6, 7, 8, 15, 16, 127, 128, 255, 256,
		1<<16 - 1, 1 << 16,
		1<<32 - 1, 1 << 32,
		1<<63 - 1, 1 << 63,
		math.MaxUint64 - 1, math.MaxUint64,
	}
}

// BoundaryInt64s lists signed values sitting on codeword-length and
// arithmetic boundaries.
func BoundaryInt64s() []int64 {
	return []int64{
		math.MinInt64, math.MinInt64 + 1,
		-1 << 32, -1<<32 + 1,
		-2, -1, 0, 1, 2,
		1<<32 - 1, 1 << 32,
		math.MaxInt64 - 1, math.MaxInt64,
	}
}
