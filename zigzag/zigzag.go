// Package zigzag implements the zigzag mapping between signed and unsigned
// integers:
//
//	+0 <--> 0
//	-1 <--> 1
//	+1 <--> 2
//	-2 <--> 3
//	+2 <--> 4
//
// Magnitudes of both signs interleave, so small signed values map to small
// unsigned values regardless of sign. The mapping is a bijection over the
// full 64-bit range and is the same format used by protocol buffers.
package zigzag

// Encode maps a signed integer onto an unsigned integer.
func Encode(v int64) uint64 {
	return uint64(v<<1 ^ v>>63)
}

// Decode is the exact inverse of Encode.
func Decode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
