// Package varicode implements universal integer codes: self-delimiting,
// prefix-free bit encodings of unbounded non-negative integers, plus a
// ZigZag bridge for signed values.
//
// Four interchangeable codecs are provided, each as a writer/reader pair
// over a bit-granular cursor (package bitstream):
//
//   - Elias gamma: unary length prefix, good for very small values.
//   - Elias delta: gamma-coded length, better asymptotics for large values.
//   - Elias omega: recursively length-of-length coded, best for huge values.
//   - Alpha: a parameterized length-field code with a configurable selector
//     width (default 6 bits), byte-friendly for small values.
//
// All codecs support zero via a +1 offset and round-trip the full uint64
// range (Alpha tops out at one below, see Alpha). Codewords are prefix-free:
// values written back to back decode unambiguously with no separators, with
// one caveat. The omega and alpha codewords for zero consist only of zero
// bits; when such a codeword ends the stream and fits in the pad region of
// the final byte, adding no bytes of its own, it is byte-identical to the
// zero padding Close appends and is not yielded by decoders. Streams that
// may end in a zero value need an explicit count or must use gamma or
// delta, whose codewords always carry a one bit.
//
// # Quick Start
//
//	data, _ := varicode.EncodeAll(varicode.Gamma, []uint64{3, 0, 12345})
//
//	for v, err := range varicode.DecodeAll(varicode.Gamma, data) {
//	    if err != nil {
//	        // truncated or corrupt stream
//	    }
//	    fmt.Println(v)
//	}
//
// Streaming use binds a codec to an io.Writer or io.Reader:
//
//	w, _ := varicode.NewDeltaWriter(&buf)
//	_ = w.WriteUint64(42)
//	_ = w.Close() // pads the final byte, required for a valid stream
//
// Signed values go through the ZigZag transform so that small magnitudes of
// either sign stay small:
//
//	sw, _ := varicode.NewSignedWriter(w)
//	_ = sw.WriteInt64(-3)
//
// The byte output is a raw, headerless bit stream: the number of values must
// be known or signaled by the consuming format. Decoders report a clean end
// of stream as io.EOF and a source that ends inside a codeword as
// bitstream.ErrTruncated.
//
// Codecs are single-cursor and sequential; a writer or reader must not be
// shared across goroutines without external synchronization.
package varicode
