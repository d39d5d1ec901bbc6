package bitstream

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/varicode/testutil"
)

func TestWriterMSBPacking(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	// 1000 | 111 | 101 | 010101 packs into 0x8F 0x55.
	require.NoError(t, w.WriteBits(0x08, 4))
	require.NoError(t, w.WriteBits(0x07, 3))
	require.NoError(t, w.WriteBits(0x05, 3))
	require.NoError(t, w.WriteBits(0x15, 6))
	require.NoError(t, w.Close())

	assert.Equal(t, []byte{0x8F, 0x55}, buf.Bytes())
}

func TestReaderMSBPacking(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte{0x8F, 0x55}))
	require.NoError(t, err)

	got := make([]uint64, 0, 4)
	for _, n := range []int{4, 3, 3, 6} {
		v, err := r.ReadBits(n)
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []uint64{0x08, 0x07, 0x05, 0x15}, got)

	_, err = r.ReadBits(1)
	assert.Equal(t, io.EOF, err)
}

func TestWriterClosePadsWithZeros(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, w.WriteBit(One))
	require.NoError(t, w.Close())
	assert.Equal(t, []byte{0x80}, buf.Bytes())

	// Second close is a no-op and must not alter the output.
	require.NoError(t, w.Close())
	assert.Equal(t, []byte{0x80}, buf.Bytes())
}

func TestWriterUseAfterClose(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.ErrorIs(t, w.WriteBits(1, 1), ErrClosed)
	assert.ErrorIs(t, w.WriteBit(One), ErrClosed)
	assert.ErrorIs(t, w.Flush(), ErrClosed)
}

func TestWriterBitCount(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	assert.ErrorIs(t, w.WriteBits(0, -1), ErrBitCount)
	assert.ErrorIs(t, w.WriteBits(0, 65), ErrBitCount)

	// Zero bits is a no-op.
	require.NoError(t, w.WriteBits(0xFFFF, 0))
	require.NoError(t, w.Close())
	assert.Empty(t, buf.Bytes())
}

func TestWriterFlushKeepsPartialByte(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, w.WriteBits(0xAB, 8))
	require.NoError(t, w.WriteBits(1, 3))
	require.NoError(t, w.Flush())

	// The complete byte is emitted, the three pending bits are not.
	assert.Equal(t, []byte{0xAB}, buf.Bytes())

	require.NoError(t, w.Close())
	assert.Equal(t, []byte{0xAB, 0x20}, buf.Bytes())
}

func TestReaderTruncated(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte{0x8F}))
	require.NoError(t, err)

	v, err := r.ReadBits(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x08), v)

	// Four bits remain, eight requested.
	_, err = r.ReadBits(8)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReaderCleanEOF(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte{0xA5}))
	require.NoError(t, err)

	v, err := r.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xA5), v)

	_, err = r.ReadBits(64)
	assert.Equal(t, io.EOF, err)
	_, err = r.ReadBit()
	assert.Equal(t, io.EOF, err)
}

func TestReaderExhausted(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte{0x80}))
	require.NoError(t, err)

	done, err := r.Exhausted()
	require.NoError(t, err)
	assert.False(t, done)

	bit, err := r.ReadBit()
	require.NoError(t, err)
	assert.Equal(t, One, bit)

	// Seven zero bits of padding remain.
	done, err = r.Exhausted()
	require.NoError(t, err)
	assert.True(t, done)
}

func TestReaderExhaustedSeesRemainingOnes(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte{0xC0}))
	require.NoError(t, err)

	_, err = r.ReadBit()
	require.NoError(t, err)

	// A one bit is still unread, so this is not padding.
	done, err := r.Exhausted()
	require.NoError(t, err)
	assert.False(t, done)
}

func TestReaderExhaustedPeekIsNotLost(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte{0x12, 0x34}))
	require.NoError(t, err)

	v, err := r.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x12), v)

	// Exhausted must peek without consuming.
	done, err := r.Exhausted()
	require.NoError(t, err)
	assert.False(t, done)

	v, err = r.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x34), v)
}

func TestReaderUseAfterClose(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte{0xFF}))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err = r.ReadBits(1)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = r.ReadBit()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = r.Exhausted()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestNilStream(t *testing.T) {
	_, err := NewWriter(nil)
	assert.ErrorIs(t, err, ErrNilStream)
	_, err = NewReader(nil)
	assert.ErrorIs(t, err, ErrNilStream)
}

func TestRoundTripRandomRuns(t *testing.T) {
	rng := testutil.NewRNG(42)

	type run struct {
		val  uint64
		bits int
	}

	runs := make([]run, 1000)
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	for i := range runs {
		bits := int(rng.Uint64()%64) + 1
		val := rng.Uint64() >> (64 - uint(bits))
		runs[i] = run{val: val, bits: bits}
		require.NoError(t, w.WriteBits(val, bits))
	}
	require.NoError(t, w.Close())

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	for i, run := range runs {
		got, err := r.ReadBits(run.bits)
		require.NoError(t, err)
		require.Equalf(t, run.val, got, "run %d (%d bits)", i, run.bits)
	}
}

func TestReadBitsZero(t *testing.T) {
	r, err := NewReader(bytes.NewReader(nil))
	require.NoError(t, err)

	v, err := r.ReadBits(0)
	require.NoError(t, err)
	assert.Zero(t, v)
}
