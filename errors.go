package varicode

import (
	"errors"

	"github.com/hupe1980/varicode/bitstream"
)

var (
	// ErrNilWriter is returned when a nil sink is supplied at construction.
	ErrNilWriter = errors.New("varicode: nil writer")

	// ErrNilReader is returned when a nil source is supplied at construction.
	ErrNilReader = errors.New("varicode: nil reader")

	// ErrOutOfRange is returned when a value cannot be represented by the
	// codec, or when a decoded length field implies a value wider than 64
	// bits (a corrupt stream).
	ErrOutOfRange = errors.New("varicode: value out of range")

	// ErrTruncated reports a source that ends strictly inside a codeword.
	// It aliases bitstream.ErrTruncated for convenience.
	ErrTruncated = bitstream.ErrTruncated

	// ErrClosed reports a write or read on a finalized stream.
	// It aliases bitstream.ErrClosed for convenience.
	ErrClosed = bitstream.ErrClosed
)
