package bitstream

import "io"

const writeBufferSize = 512

// Writer writes bits to an io.Writer, MSB first.
type Writer struct {
	stream  io.Writer
	buf     []byte
	pending byte
	nbits   uint8 // valid high-order bits in pending, 0..7
	closed  bool
}

// NewWriter returns a new Writer emitting bits to w.
func NewWriter(w io.Writer) (*Writer, error) {
	if w == nil {
		return nil, ErrNilStream
	}
	return &Writer{
		stream: w,
		buf:    make([]byte, 0, writeBufferSize),
	}, nil
}

// WriteBits appends the lowest numBits bits of val to the stream, most
// significant bit first. Writing zero bits is a no-op.
func (w *Writer) WriteBits(val uint64, numBits int) error {
	if w.closed {
		return ErrClosed
	}
	if numBits < 0 || numBits > 64 {
		return ErrBitCount
	}
	if numBits == 0 {
		return nil
	}

	// Discard the unused MS bits.
	val <<= uint(64 - numBits)

	for numBits >= 8 {
		if err := w.writeByte(byte(val >> 56)); err != nil {
			return err
		}
		val <<= 8
		numBits -= 8
	}

	for numBits > 0 {
		if err := w.writeBit(val>>63 == 1); err != nil {
			return err
		}
		val <<= 1
		numBits--
	}

	return nil
}

// WriteBit appends a single bit to the stream.
func (w *Writer) WriteBit(bit Bit) error {
	if w.closed {
		return ErrClosed
	}
	return w.writeBit(bool(bit))
}

func (w *Writer) writeBit(set bool) error {
	if set {
		w.pending |= 1 << (7 - w.nbits)
	}
	w.nbits++
	if w.nbits == 8 {
		b := w.pending
		w.pending = 0
		w.nbits = 0
		return w.emit(b)
	}
	return nil
}

// writeByte splits b across the pending byte, keeping the alignment.
func (w *Writer) writeByte(b byte) error {
	if w.nbits == 0 {
		return w.emit(b)
	}
	if err := w.emit(w.pending | b>>w.nbits); err != nil {
		return err
	}
	w.pending = b << (8 - w.nbits)
	return nil
}

func (w *Writer) emit(b byte) error {
	w.buf = append(w.buf, b)
	if len(w.buf) == cap(w.buf) {
		return w.flush()
	}
	return nil
}

// Flush forwards all complete buffered bytes to the sink. Pending bits of a
// partial byte stay buffered; no padding is added.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}
	return w.flush()
}

func (w *Writer) flush() error {
	if len(w.buf) == 0 {
		return nil
	}
	if _, err := w.stream.Write(w.buf); err != nil {
		return err
	}
	w.buf = w.buf[:0]
	return nil
}

// Close pads the trailing partial byte with zero bits, flushes, and closes
// the cursor. Further writes fail with ErrClosed. Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.nbits > 0 {
		b := w.pending
		w.pending = 0
		w.nbits = 0
		if err := w.emit(b); err != nil {
			return err
		}
	}
	return w.flush()
}
