package varicode

import "io"

// UnsignedWriter is the capability to encode unsigned integers onto a
// stream. Close finalizes the stream by padding the last partial byte; a
// stream that is not closed is truncated.
type UnsignedWriter interface {
	WriteUint64(v uint64) error
	io.Closer
}

// UnsignedReader is the capability to decode unsigned integers from a
// stream. ReadUint64 returns io.EOF once the source is exhausted at a
// codeword boundary.
type UnsignedReader interface {
	ReadUint64() (uint64, error)
}

// SignedWriter is the capability to encode signed integers onto a stream.
type SignedWriter interface {
	WriteInt64(v int64) error
	io.Closer
}

// SignedReader is the capability to decode signed integers from a stream.
type SignedReader interface {
	ReadInt64() (int64, error)
}

// Codec bundles the constructors and the bit-length calculator of one
// algorithm, so callers can treat the codecs interchangeably.
type Codec interface {
	// Name returns a short human-readable codec name.
	Name() string

	// NewWriter returns an encoder bound to w.
	NewWriter(w io.Writer) (UnsignedWriter, error)

	// NewReader returns a decoder bound to r.
	NewReader(r io.Reader) (UnsignedReader, error)

	// BitLength returns the encoded size of v in bits without performing
	// any I/O. It fails with ErrOutOfRange if v is not representable.
	BitLength(v uint64) (int, error)
}

var (
	// Gamma is the Elias gamma codec.
	Gamma Codec = gammaCodec{}

	// Delta is the Elias delta codec.
	Delta Codec = deltaCodec{}

	// Omega is the Elias omega codec.
	Omega Codec = omegaCodec{}
)
