package varicode

import "github.com/hupe1980/varicode/zigzag"

// ZigZagWriter adapts any unsigned codec to signed values by applying the
// zigzag transform before encoding. It adds no state and no bits; bit
// length and error behavior are those of the wrapped codec.
type ZigZagWriter struct {
	u UnsignedWriter
}

// NewSignedWriter wraps an unsigned encoder into a signed one.
func NewSignedWriter(u UnsignedWriter) (*ZigZagWriter, error) {
	if u == nil {
		return nil, ErrNilWriter
	}
	return &ZigZagWriter{u: u}, nil
}

// WriteInt64 appends one codeword for v.
func (z *ZigZagWriter) WriteInt64(v int64) error {
	return z.u.WriteUint64(zigzag.Encode(v))
}

// Close finalizes the underlying stream. Idempotent.
func (z *ZigZagWriter) Close() error {
	return z.u.Close()
}

// ZigZagReader adapts any unsigned codec to signed values by applying the
// zigzag transform after decoding.
type ZigZagReader struct {
	u UnsignedReader
}

// NewSignedReader wraps an unsigned decoder into a signed one.
func NewSignedReader(u UnsignedReader) (*ZigZagReader, error) {
	if u == nil {
		return nil, ErrNilReader
	}
	return &ZigZagReader{u: u}, nil
}

// ReadInt64 decodes the next value, or returns io.EOF at a clean end of
// stream.
func (z *ZigZagReader) ReadInt64() (int64, error) {
	u, err := z.u.ReadUint64()
	if err != nil {
		return 0, err
	}
	return zigzag.Decode(u), nil
}
