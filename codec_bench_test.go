package varicode

import (
	"bytes"
	"io"
	"testing"

	"github.com/hupe1980/varicode/testutil"
)

func benchmarkEncode(b *testing.B, c Codec) {
	values := testutil.NewRNG(1).Uint64s(1024)
	if c.Name() == "alpha" {
		for i, v := range values {
			if v > 1<<63 {
				values[i] = v >> 1
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w, _ := c.NewWriter(io.Discard)
		for _, v := range values {
			if err := w.WriteUint64(v); err != nil {
				b.Fatal(err)
			}
		}
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkDecode(b *testing.B, c Codec) {
	values := testutil.NewRNG(1).Uint64s(1024)
	if c.Name() == "alpha" {
		for i, v := range values {
			if v > 1<<63 {
				values[i] = v >> 1
			}
		}
	}
	data, err := EncodeAll(c, values)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, _ := c.NewReader(bytes.NewReader(data))
		for {
			_, err := r.ReadUint64()
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkGammaEncode(b *testing.B) { benchmarkEncode(b, Gamma) }
func BenchmarkGammaDecode(b *testing.B) { benchmarkDecode(b, Gamma) }
func BenchmarkDeltaEncode(b *testing.B) { benchmarkEncode(b, Delta) }
func BenchmarkDeltaDecode(b *testing.B) { benchmarkDecode(b, Delta) }
func BenchmarkOmegaEncode(b *testing.B) { benchmarkEncode(b, Omega) }
func BenchmarkOmegaDecode(b *testing.B) { benchmarkDecode(b, Omega) }
func BenchmarkAlphaEncode(b *testing.B) { benchmarkEncode(b, Alpha()) }
func BenchmarkAlphaDecode(b *testing.B) { benchmarkDecode(b, Alpha()) }
