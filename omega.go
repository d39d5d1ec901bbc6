package varicode

import (
	"io"
	"math/bits"

	"github.com/hupe1980/varicode/bitstream"
)

// OmegaWriter encodes unsigned integers with the Elias omega code: the
// binary representation of x = v+1 is preceded by recursively encoded
// lengths (each group is the bit length of the next group, minus one) and
// followed by a terminating zero bit.
type OmegaWriter struct {
	bw *bitstream.Writer
}

// NewOmegaWriter returns an OmegaWriter encoding to w.
func NewOmegaWriter(w io.Writer) (*OmegaWriter, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	bw, err := bitstream.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &OmegaWriter{bw: bw}, nil
}

// WriteUint64 appends one omega codeword for v.
//
// The length-of-length recursion is unrolled into a fixed group list; the
// iterated logarithm of any 64-bit value needs at most four groups.
func (o *OmegaWriter) WriteUint64(v uint64) error {
	x := v + 1

	// v+1 == 2^64 does not fit a uint64 group; its 65-bit group is emitted
	// separately below and the recursion starts at its length minus one.
	wide := x == 0

	var groups [6]uint64
	ngroups := 0
	cur := x
	if wide {
		cur = 64
	}
	for cur > 1 {
		groups[ngroups] = cur
		ngroups++
		cur = uint64(bits.Len64(cur) - 1)
	}

	// Shortest group first.
	for i := ngroups - 1; i >= 0; i-- {
		g := groups[i]
		if err := o.bw.WriteBits(g, bits.Len64(g)); err != nil {
			return err
		}
	}

	if wide {
		if err := o.bw.WriteBit(bitstream.One); err != nil {
			return err
		}
		if err := o.bw.WriteBits(0, 64); err != nil {
			return err
		}
	}

	return o.bw.WriteBit(bitstream.Zero)
}

// Close finalizes the stream. Idempotent.
func (o *OmegaWriter) Close() error {
	return o.bw.Close()
}

// OmegaReader decodes a stream written by OmegaWriter.
type OmegaReader struct {
	br *bitstream.Reader
}

// NewOmegaReader returns an OmegaReader decoding from r.
func NewOmegaReader(r io.Reader) (*OmegaReader, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	br, err := bitstream.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &OmegaReader{br: br}, nil
}

// ReadUint64 decodes the next value, or returns io.EOF at a clean end of
// stream.
func (o *OmegaReader) ReadUint64() (uint64, error) {
	if done, err := o.br.Exhausted(); err != nil {
		return 0, err
	} else if done {
		return 0, io.EOF
	}

	result := uint64(1)
	for {
		bit, err := o.br.ReadBit()
		if err != nil {
			return 0, asTruncated(err)
		}
		if bit == bitstream.Zero {
			return result - 1, nil
		}
		if result > 64 {
			return 0, ErrOutOfRange
		}

		r, err := o.br.ReadBits(int(result))
		if err != nil {
			return 0, asTruncated(err)
		}

		// The only canonical 65-bit group is 2^64 itself; a nonzero
		// remainder claims a value wider than 64 bits.
		if result == 64 && r != 0 {
			return 0, ErrOutOfRange
		}

		// The one bit just consumed is the group's leading bit. For a
		// 64-bit group length the shift wraps, leaving the low half of the
		// 65-bit group; the final -1 wraps back to the full range.
		result = uint64(1)<<result | r
	}
}

// OmegaBitLength returns the omega-encoded size of v in bits.
func OmegaBitLength(v uint64) int {
	x := v + 1
	total := 1 // terminating zero
	cur := x
	if x == 0 {
		total += 65
		cur = 64
	}
	for cur > 1 {
		n := bits.Len64(cur)
		total += n
		cur = uint64(n - 1)
	}
	return total
}

type omegaCodec struct{}

func (omegaCodec) Name() string { return "omega" }

func (omegaCodec) NewWriter(w io.Writer) (UnsignedWriter, error) {
	return NewOmegaWriter(w)
}

func (omegaCodec) NewReader(r io.Reader) (UnsignedReader, error) {
	return NewOmegaReader(r)
}

func (omegaCodec) BitLength(v uint64) (int, error) {
	return OmegaBitLength(v), nil
}
