package varicode

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/hupe1980/varicode/bitstream"
)

// AlphaOptions contains configuration for the alpha codec.
type AlphaOptions struct {
	// LengthBits is the width of the payload-length selector, 1..6.
	// The default (6) covers values up to 2^64-2; a selector of width k
	// caps the payload at 2^k-1 bits and the value at 2^min(64,2^k)-2.
	LengthBits int
}

// DefaultAlphaOptions returns the default alpha configuration.
func DefaultAlphaOptions() AlphaOptions {
	return AlphaOptions{LengthBits: 6}
}

func resolveAlphaOptions(optFns []func(o *AlphaOptions)) (AlphaOptions, error) {
	opts := DefaultAlphaOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.LengthBits < 1 || opts.LengthBits > 6 {
		return opts, fmt.Errorf("%w: alpha length selector must be 1..6 bits, got %d", ErrOutOfRange, opts.LengthBits)
	}
	return opts, nil
}

// AlphaWriter encodes unsigned integers with a length-field code: for
// x = v+1 with n bits after the leading one, it emits n in a fixed-width
// selector followed by those n bits. Small values stay within one byte and
// the codeword grows by whole payload bits as magnitude grows.
type AlphaWriter struct {
	bw         *bitstream.Writer
	lengthBits int
	maxPayload int
}

// NewAlphaWriter returns an AlphaWriter encoding to w.
func NewAlphaWriter(w io.Writer, optFns ...func(o *AlphaOptions)) (*AlphaWriter, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	opts, err := resolveAlphaOptions(optFns)
	if err != nil {
		return nil, err
	}
	bw, err := bitstream.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &AlphaWriter{
		bw:         bw,
		lengthBits: opts.LengthBits,
		maxPayload: 1<<opts.LengthBits - 1,
	}, nil
}

// WriteUint64 appends one alpha codeword for v. Values beyond the
// selector's ceiling fail with ErrOutOfRange.
func (a *AlphaWriter) WriteUint64(v uint64) error {
	x := v + 1
	if x == 0 {
		return fmt.Errorf("%w: %d exceeds alpha ceiling", ErrOutOfRange, v)
	}
	n := bits.Len64(x) - 1
	if n > a.maxPayload {
		return fmt.Errorf("%w: %d exceeds alpha ceiling", ErrOutOfRange, v)
	}
	if err := a.bw.WriteBits(uint64(n), a.lengthBits); err != nil {
		return err
	}
	return a.bw.WriteBits(x, n)
}

// Close finalizes the stream. Idempotent.
func (a *AlphaWriter) Close() error {
	return a.bw.Close()
}

// AlphaReader decodes a stream written by AlphaWriter with the same
// options.
type AlphaReader struct {
	br         *bitstream.Reader
	lengthBits int
}

// NewAlphaReader returns an AlphaReader decoding from r.
func NewAlphaReader(r io.Reader, optFns ...func(o *AlphaOptions)) (*AlphaReader, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	opts, err := resolveAlphaOptions(optFns)
	if err != nil {
		return nil, err
	}
	br, err := bitstream.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &AlphaReader{br: br, lengthBits: opts.LengthBits}, nil
}

// ReadUint64 decodes the next value, or returns io.EOF at a clean end of
// stream.
func (a *AlphaReader) ReadUint64() (uint64, error) {
	if done, err := a.br.Exhausted(); err != nil {
		return 0, err
	} else if done {
		return 0, io.EOF
	}

	n, err := a.br.ReadBits(a.lengthBits)
	if err != nil {
		return 0, asTruncated(err)
	}

	r, err := a.br.ReadBits(int(n))
	if err != nil {
		return 0, asTruncated(err)
	}

	return (uint64(1)<<n | r) - 1, nil
}

// AlphaBitLength returns the alpha-encoded size of v in bits for the given
// selector width.
func AlphaBitLength(v uint64, lengthBits int) (int, error) {
	if lengthBits < 1 || lengthBits > 6 {
		return 0, fmt.Errorf("%w: alpha length selector must be 1..6 bits, got %d", ErrOutOfRange, lengthBits)
	}
	x := v + 1
	if x == 0 {
		return 0, fmt.Errorf("%w: %d exceeds alpha ceiling", ErrOutOfRange, v)
	}
	n := bits.Len64(x) - 1
	if n > 1<<lengthBits-1 {
		return 0, fmt.Errorf("%w: %d exceeds alpha ceiling", ErrOutOfRange, v)
	}
	return lengthBits + n, nil
}

// Alpha returns the alpha codec with the given options.
func Alpha(optFns ...func(o *AlphaOptions)) Codec {
	return alphaCodec{optFns: optFns}
}

type alphaCodec struct {
	optFns []func(o *AlphaOptions)
}

func (alphaCodec) Name() string { return "alpha" }

func (c alphaCodec) NewWriter(w io.Writer) (UnsignedWriter, error) {
	return NewAlphaWriter(w, c.optFns...)
}

func (c alphaCodec) NewReader(r io.Reader) (UnsignedReader, error) {
	return NewAlphaReader(r, c.optFns...)
}

func (c alphaCodec) BitLength(v uint64) (int, error) {
	opts, err := resolveAlphaOptions(c.optFns)
	if err != nil {
		return 0, err
	}
	return AlphaBitLength(v, opts.LengthBits)
}
