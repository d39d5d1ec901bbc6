package varicode

import (
	"bytes"
	"io"
	"iter"
)

// EncodeAll encodes values back to back into one finalized byte stream.
func EncodeAll(c Codec, values []uint64) ([]byte, error) {
	var buf bytes.Buffer
	w, err := c.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := w.WriteUint64(v); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeAll returns a lazy, forward-only iterator over the values encoded
// in data. Iteration stops at a clean end of stream; a source that ends
// inside a codeword yields a final (0, ErrTruncated) pair.
func DecodeAll(c Codec, data []byte) iter.Seq2[uint64, error] {
	return func(yield func(uint64, error) bool) {
		r, err := c.NewReader(bytes.NewReader(data))
		if err != nil {
			yield(0, err)
			return
		}
		for {
			v, err := r.ReadUint64()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// EncodeAllSigned encodes signed values back to back into one finalized
// byte stream, zigzag-transforming each value first.
func EncodeAllSigned(c Codec, values []int64) ([]byte, error) {
	var buf bytes.Buffer
	uw, err := c.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	w, err := NewSignedWriter(uw)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := w.WriteInt64(v); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeAllSigned returns a lazy iterator over the signed values encoded in
// data, with the same termination behavior as DecodeAll.
func DecodeAllSigned(c Codec, data []byte) iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		ur, err := c.NewReader(bytes.NewReader(data))
		if err != nil {
			yield(0, err)
			return
		}
		r, err := NewSignedReader(ur)
		if err != nil {
			yield(0, err)
			return
		}
		for {
			v, err := r.ReadInt64()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
