package recordio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// MaxRecordSize bounds a single payload. Larger appends are rejected and
// larger length prefixes found while replaying are treated as corruption.
const MaxRecordSize = 64 << 20

var (
	// ErrCorrupt reports a record whose checksum does not match its data.
	ErrCorrupt = errors.New("recordio: corrupt record")

	// ErrRecordTooLarge reports a payload above MaxRecordSize.
	ErrRecordTooLarge = errors.New("recordio: record too large")
)

var crcTable = crc32.MakeTable(crc32.Castagnoli)

const frameHeaderLen = 12 // [crc32][uncompressed len][stored len]

// codec compresses and decompresses record payloads.
type codec struct {
	kind Compression
	zenc *zstd.Encoder
	zdec *zstd.Decoder
	lz   lz4.Compressor
}

func newCodec(kind Compression, level int) (*codec, error) {
	c := &codec{kind: kind}
	switch kind {
	case CompressionNone, CompressionLZ4:
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevel(level)))
		if err != nil {
			return nil, fmt.Errorf("recordio: zstd encoder: %w", err)
		}
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("recordio: zstd decoder: %w", err)
		}
		c.zenc = enc
		c.zdec = dec
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidHeader, kind)
	}
	return c, nil
}

func (c *codec) compress(payload []byte) ([]byte, error) {
	switch c.kind {
	case CompressionNone:
		return payload, nil
	case CompressionZstd:
		return c.zenc.EncodeAll(payload, nil), nil
	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := c.lz.CompressBlock(payload, dst)
		if err != nil {
			return nil, fmt.Errorf("recordio: lz4 compress: %w", err)
		}
		if n == 0 || n >= len(payload) {
			// Incompressible; stored form equals the payload, which the
			// reader detects by the matching lengths.
			return payload, nil
		}
		return dst[:n], nil
	}
	return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidHeader, c.kind)
}

func (c *codec) decompress(stored []byte, ulen int) ([]byte, error) {
	if len(stored) == ulen && (c.kind == CompressionNone || c.kind == CompressionLZ4) {
		return stored, nil
	}
	switch c.kind {
	case CompressionZstd:
		payload, err := c.zdec.DecodeAll(stored, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %s", ErrCorrupt, err)
		}
		if len(payload) != ulen {
			return nil, fmt.Errorf("%w: length mismatch", ErrCorrupt)
		}
		return payload, nil
	case CompressionLZ4:
		payload := make([]byte, ulen)
		n, err := lz4.UncompressBlock(stored, payload)
		if err != nil || n != ulen {
			return nil, fmt.Errorf("%w: lz4", ErrCorrupt)
		}
		return payload, nil
	}
	return nil, fmt.Errorf("%w: length mismatch", ErrCorrupt)
}

func (c *codec) close() {
	if c.zenc != nil {
		c.zenc.Close()
	}
	if c.zdec != nil {
		c.zdec.Close()
	}
}

// writeFrame writes one framed record:
// [CRC32C: 4][uncompressed len: 4][stored len: 4][stored bytes].
// The checksum covers the stored bytes.
func writeFrame(w io.Writer, stored []byte, ulen int) error {
	var hdr [frameHeaderLen]byte
	binary.LittleEndian.PutUint32(hdr[0:4], crc32.Checksum(stored, crcTable))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(ulen))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(len(stored)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(stored)
	return err
}

// readFrame reads one framed record and returns its stored bytes and
// uncompressed length. io.EOF at a frame boundary signals a clean end;
// a partial frame surfaces as io.ErrUnexpectedEOF.
func readFrame(r io.Reader) (stored []byte, ulen int, err error) {
	var hdr [frameHeaderLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, 0, err
	}
	crc := binary.LittleEndian.Uint32(hdr[0:4])
	ulen = int(binary.LittleEndian.Uint32(hdr[4:8]))
	slen := int(binary.LittleEndian.Uint32(hdr[8:12]))
	if ulen > MaxRecordSize || slen > lz4.CompressBlockBound(MaxRecordSize) {
		return nil, 0, fmt.Errorf("%w: unreasonable record length", ErrCorrupt)
	}
	stored = make([]byte, slen)
	if _, err := io.ReadFull(r, stored); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, 0, err
	}
	if crc32.Checksum(stored, crcTable) != crc {
		return nil, 0, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}
	return stored, ulen, nil
}
