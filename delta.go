package varicode

import (
	"io"
	"math/bits"

	"github.com/hupe1980/varicode/bitstream"
)

// DeltaWriter encodes unsigned integers with the Elias delta code: for
// x = v+1 split as 2^n + r, it gamma-codes n and appends the low n bits of x
// directly. Nesting the gamma code on the length gives shorter codewords
// than gamma for large values.
type DeltaWriter struct {
	bw *bitstream.Writer
}

// NewDeltaWriter returns a DeltaWriter encoding to w.
func NewDeltaWriter(w io.Writer) (*DeltaWriter, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	bw, err := bitstream.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &DeltaWriter{bw: bw}, nil
}

// WriteUint64 appends one delta codeword for v.
func (d *DeltaWriter) WriteUint64(v uint64) error {
	x := v + 1
	n := 64
	if x != 0 {
		n = bits.Len64(x) - 1
	}
	if err := writeGamma(d.bw, uint64(n)); err != nil {
		return err
	}
	return d.bw.WriteBits(x, n)
}

// Close finalizes the stream. Idempotent.
func (d *DeltaWriter) Close() error {
	return d.bw.Close()
}

// DeltaReader decodes a stream written by DeltaWriter.
type DeltaReader struct {
	br *bitstream.Reader
}

// NewDeltaReader returns a DeltaReader decoding from r.
func NewDeltaReader(r io.Reader) (*DeltaReader, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	br, err := bitstream.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &DeltaReader{br: br}, nil
}

// ReadUint64 decodes the next value, or returns io.EOF at a clean end of
// stream.
func (d *DeltaReader) ReadUint64() (uint64, error) {
	n, err := readGamma(d.br)
	if err != nil {
		return 0, err
	}
	if n > 64 {
		return 0, ErrOutOfRange
	}

	r, err := d.br.ReadBits(int(n))
	if err != nil {
		return 0, asTruncated(err)
	}

	return uint64(1)<<uint(n) + r - 1, nil
}

// DeltaBitLength returns the delta-encoded size of v in bits.
func DeltaBitLength(v uint64) int {
	x := v + 1
	n := 64
	if x != 0 {
		n = bits.Len64(x) - 1
	}
	return GammaBitLength(uint64(n)) + n
}

type deltaCodec struct{}

func (deltaCodec) Name() string { return "delta" }

func (deltaCodec) NewWriter(w io.Writer) (UnsignedWriter, error) {
	return NewDeltaWriter(w)
}

func (deltaCodec) NewReader(r io.Reader) (UnsignedReader, error) {
	return NewDeltaReader(r)
}

func (deltaCodec) BitLength(v uint64) (int, error) {
	return DeltaBitLength(v), nil
}
