package varicode

import (
	"io"
	"math/bits"

	"github.com/hupe1980/varicode/bitstream"
)

// GammaWriter encodes unsigned integers with the Elias gamma code: for
// x = v+1 with highest set bit n, it emits n zero bits, a one bit, and the
// low n bits of x. Total length is 2n+1 bits.
type GammaWriter struct {
	bw *bitstream.Writer
}

// NewGammaWriter returns a GammaWriter encoding to w.
func NewGammaWriter(w io.Writer) (*GammaWriter, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	bw, err := bitstream.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &GammaWriter{bw: bw}, nil
}

// WriteUint64 appends one gamma codeword for v.
func (g *GammaWriter) WriteUint64(v uint64) error {
	return writeGamma(g.bw, v)
}

// Close finalizes the stream. Idempotent.
func (g *GammaWriter) Close() error {
	return g.bw.Close()
}

// GammaReader decodes a stream written by GammaWriter.
type GammaReader struct {
	br *bitstream.Reader
}

// NewGammaReader returns a GammaReader decoding from r.
func NewGammaReader(r io.Reader) (*GammaReader, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	br, err := bitstream.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &GammaReader{br: br}, nil
}

// ReadUint64 decodes the next value, or returns io.EOF at a clean end of
// stream.
func (g *GammaReader) ReadUint64() (uint64, error) {
	return readGamma(g.br)
}

// GammaBitLength returns the gamma-encoded size of v in bits.
func GammaBitLength(v uint64) int {
	x := v + 1
	if x == 0 {
		// v+1 == 2^64, a 65-bit value.
		return 129
	}
	return 2*(bits.Len64(x)-1) + 1
}

func writeGamma(bw *bitstream.Writer, v uint64) error {
	x := v + 1
	n := 64
	if x != 0 {
		n = bits.Len64(x) - 1
	}
	if err := bw.WriteBits(0, n); err != nil {
		return err
	}
	if err := bw.WriteBit(bitstream.One); err != nil {
		return err
	}
	// Low n bits of x; for n == 64 the wrapped x (zero) is exactly the low
	// half of 2^64.
	return bw.WriteBits(x, n)
}

func readGamma(br *bitstream.Reader) (uint64, error) {
	if done, err := br.Exhausted(); err != nil {
		return 0, err
	} else if done {
		return 0, io.EOF
	}

	n := 0
	for {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, asTruncated(err)
		}
		if bit == bitstream.One {
			break
		}
		n++
		if n > 64 {
			return 0, ErrOutOfRange
		}
	}

	r, err := br.ReadBits(n)
	if err != nil {
		return 0, asTruncated(err)
	}

	// For n == 64 the shift wraps to zero, reconstructing 2^64 + r - 1.
	return uint64(1)<<uint(n) + r - 1, nil
}

// asTruncated converts mid-codeword exhaustion into ErrTruncated. A clean
// io.EOF is only valid before the first bit of a codeword.
func asTruncated(err error) error {
	if err == io.EOF {
		return ErrTruncated
	}
	return err
}

type gammaCodec struct{}

func (gammaCodec) Name() string { return "gamma" }

func (gammaCodec) NewWriter(w io.Writer) (UnsignedWriter, error) {
	return NewGammaWriter(w)
}

func (gammaCodec) NewReader(r io.Reader) (UnsignedReader, error) {
	return NewGammaReader(r)
}

func (gammaCodec) BitLength(v uint64) (int, error) {
	return GammaBitLength(v), nil
}
