package recordio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	logMagic      = [4]byte{'V', 'R', 'L', '0'}
	headerVersion = uint16(1)
	headerLen     = 16
)

var (
	// ErrInvalidHeader reports a file that is not a record log.
	ErrInvalidHeader = errors.New("recordio: invalid header")

	// ErrIncompatibleVersion reports a log written by an unsupported
	// format version.
	ErrIncompatibleVersion = errors.New("recordio: incompatible version")
)

// writeHeader writes the fixed file header:
// [4 magic][2 version][2 flags][1 level][7 reserved].
func writeHeader(w io.Writer, compression Compression, level int) error {
	buf := make([]byte, headerLen)
	copy(buf[0:4], logMagic[:])
	binary.LittleEndian.PutUint16(buf[4:6], headerVersion)
	binary.LittleEndian.PutUint16(buf[6:8], uint16(compression))
	buf[8] = uint8(level)
	// buf[9:16] reserved
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("recordio: write header: %w", err)
	}
	return nil
}

// readHeader validates the file header and returns the compression codec it
// declares.
func readHeader(f *os.File) (Compression, int, error) {
	buf := make([]byte, headerLen)
	if _, err := f.ReadAt(buf, 0); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, 0, fmt.Errorf("%w: file too small", ErrInvalidHeader)
		}
		return 0, 0, err
	}
	if [4]byte(buf[0:4]) != logMagic {
		return 0, 0, fmt.Errorf("%w: bad magic", ErrInvalidHeader)
	}
	if v := binary.LittleEndian.Uint16(buf[4:6]); v != headerVersion {
		return 0, 0, fmt.Errorf("%w: %d", ErrIncompatibleVersion, v)
	}
	compression := Compression(binary.LittleEndian.Uint16(buf[6:8]))
	level := int(buf[8])
	return compression, level, nil
}
