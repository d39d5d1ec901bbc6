package recordio

import (
	"log/slog"
	"time"
)

// Durability defines the fsync behavior for appends.
type Durability int

const (
	// DurabilityAsync relies on the OS page cache. Fast but risky.
	DurabilityAsync Durability = iota

	// DurabilityGroupCommit batches fsync on a timer, amortizing its cost
	// across appends. Recommended for most workloads.
	DurabilityGroupCommit

	// DurabilitySync calls fsync after every append. Slow but safe.
	DurabilitySync
)

// Compression selects the per-record compression codec.
type Compression uint8

const (
	// CompressionNone stores payloads verbatim.
	CompressionNone Compression = iota

	// CompressionZstd compresses each payload with zstd.
	CompressionZstd

	// CompressionLZ4 compresses each payload with lz4 block compression.
	CompressionLZ4
)

// Options contains configuration for the record log.
type Options struct {
	// Durability controls fsync behavior. Default is DurabilityGroupCommit.
	Durability Durability

	// GroupCommitInterval is the fsync period in group-commit mode.
	// Default: 10ms.
	GroupCommitInterval time.Duration

	// Compression selects the payload compression codec.
	Compression Compression

	// CompressionLevel sets the zstd level (1 fastest .. 4 best with the
	// klauspost encoder levels). Ignored for other codecs. Default: 2.
	CompressionLevel int

	// BytesPerSecond caps the append throughput in payload bytes per
	// second. Zero disables the limiter.
	BytesPerSecond int

	// Logger receives structured operational logs. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns the default log configuration.
func DefaultOptions() Options {
	return Options{
		Durability:          DurabilityGroupCommit,
		GroupCommitInterval: 10 * time.Millisecond,
		Compression:         CompressionNone,
		CompressionLevel:    2,
	}
}
