// Package bitstream provides wrappers for io.Writer and io.Reader to allow
// bit-granularity access to the stream, following the MSB pattern, where
// most-significant bits are written/read first.
//
// A Writer buffers up to seven pending bits and emits whole bytes to the
// underlying sink; Close pads the trailing partial byte with zero bits.
// A Reader keeps up to seven unread bits and refills from the source one
// byte at a time. Both are single-owner, single-direction cursors.
package bitstream

import "errors"

// Bit is a single bit of stream data.
type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

var (
	// ErrClosed is returned when a cursor is used after Close.
	ErrClosed = errors.New("bitstream: closed")

	// ErrTruncated is returned when the source ends strictly inside a
	// requested bit run. A clean end of stream is reported as io.EOF instead.
	ErrTruncated = errors.New("bitstream: truncated stream")

	// ErrBitCount is returned when a bit count is outside [0, 64].
	ErrBitCount = errors.New("bitstream: bit count out of range")

	// ErrNilStream is returned when a nil sink or source is supplied.
	ErrNilStream = errors.New("bitstream: nil stream")
)
