// Package recordio implements an append-only record log for framed
// payloads, the file-backed consumer of the varicode byte streams.
//
// Records are length-prefixed and CRC-checked, optionally compressed per
// record with zstd or lz4. The file is held under an exclusive lock for the
// lifetime of the Log, so one process owns the tail at a time. Durability
// is configurable: rely on the OS page cache, fsync on a group-commit
// interval, or fsync every append.
//
// The log stores opaque byte payloads; it does not interpret them. Pair it
// with varicode.EncodeAll / varicode.DecodeAll to persist batches of
// universal-coded integers.
package recordio
