package bitstream

import "io"

// Reader reads bits from an io.Reader, MSB first.
type Reader struct {
	stream   io.Reader
	pending  byte  // unread bits, left-aligned
	nbits    uint8 // unread bits in pending, 0..7
	peek     [1]byte
	havePeek bool
	closed   bool
}

// NewReader returns a new Reader consuming bits from r.
func NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, ErrNilStream
	}
	return &Reader{stream: r}, nil
}

// ReadBits consumes the next numBits bits and returns them as the low bits
// of a uint64, MSB first. It returns io.EOF if the source is exhausted at a
// byte boundary before any bit is consumed, and ErrTruncated if the source
// ends partway through the run.
func (r *Reader) ReadBits(numBits int) (uint64, error) {
	if r.closed {
		return 0, ErrClosed
	}
	if numBits < 0 || numBits > 64 {
		return 0, ErrBitCount
	}

	var val uint64
	consumed := 0

	for numBits >= 8 {
		b, err := r.readByte()
		if err != nil {
			return 0, r.mapEOF(err, consumed)
		}
		val = val<<8 | uint64(b)
		numBits -= 8
		consumed += 8
	}

	for numBits > 0 {
		bit, err := r.readBit()
		if err != nil {
			return 0, r.mapEOF(err, consumed)
		}
		val <<= 1
		if bit {
			val |= 1
		}
		numBits--
		consumed++
	}

	return val, nil
}

// ReadBit consumes and returns a single bit. It returns io.EOF when the
// source is exhausted.
func (r *Reader) ReadBit() (Bit, error) {
	if r.closed {
		return Zero, ErrClosed
	}
	bit, err := r.readBit()
	return Bit(bit), err
}

// Exhausted reports whether nothing but zero padding remains: the unread
// bits of the current byte (if any) are all zero and the source has no
// further bytes. Decoders use it to tell a clean end of stream from the
// start of another codeword. A trailing codeword made entirely of zero
// bits that fits in the final byte's pad region, adding no bytes of its
// own, is indistinguishable from padding and reports as exhausted.
func (r *Reader) Exhausted() (bool, error) {
	if r.closed {
		return false, ErrClosed
	}
	if r.nbits > 0 && r.pending != 0 {
		return false, nil
	}
	if r.havePeek {
		return false, nil
	}
	if _, err := io.ReadFull(r.stream, r.peek[:]); err != nil {
		if err == io.EOF {
			return true, nil
		}
		return false, err
	}
	r.havePeek = true
	return false, nil
}

// Close closes the cursor. Further reads fail with ErrClosed. Close is
// idempotent.
func (r *Reader) Close() error {
	r.closed = true
	return nil
}

func (r *Reader) readBit() (bool, error) {
	if r.nbits == 0 {
		b, err := r.fetch()
		if err != nil {
			return false, err
		}
		r.pending = b
		r.nbits = 8
	}
	bit := r.pending&0x80 != 0
	r.pending <<= 1
	r.nbits--
	return bit, nil
}

// readByte returns the next eight bits, splitting across source bytes when
// the cursor is not byte aligned.
func (r *Reader) readByte() (byte, error) {
	if r.nbits == 0 {
		return r.fetch()
	}
	b, err := r.fetch()
	if err != nil {
		return 0, err
	}
	cur := r.pending | b>>r.nbits
	r.pending = b << (8 - r.nbits)
	return cur, nil
}

// fetch returns the next source byte, honoring the Exhausted lookahead.
func (r *Reader) fetch() (byte, error) {
	if r.havePeek {
		r.havePeek = false
		return r.peek[0], nil
	}
	if _, err := io.ReadFull(r.stream, r.peek[:]); err != nil {
		return 0, err
	}
	return r.peek[0], nil
}

// mapEOF classifies source exhaustion: io.EOF before any bit of the call was
// consumed and at a byte boundary is a clean end, anything else mid-run is a
// truncated stream.
func (r *Reader) mapEOF(err error, consumed int) error {
	if err != io.EOF {
		return err
	}
	if consumed == 0 && r.nbits == 0 {
		return io.EOF
	}
	return ErrTruncated
}
