package zigzag

import (
	"math"
	"testing"
)

func TestMapping(t *testing.T) {
	tests := []struct {
		signed   int64
		unsigned uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{-64, 127},
		{64, 128},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	}

	for _, tt := range tests {
		if got := Encode(tt.signed); got != tt.unsigned {
			t.Errorf("Encode(%d) = %d, want %d", tt.signed, got, tt.unsigned)
		}
		if got := Decode(tt.unsigned); got != tt.signed {
			t.Errorf("Decode(%d) = %d, want %d", tt.unsigned, got, tt.signed)
		}
	}
}

func TestBijection(t *testing.T) {
	samples := []int64{
		math.MinInt64, math.MinInt64 + 1, -1 << 40, -12345, -2, -1,
		0, 1, 2, 12345, 1 << 40, math.MaxInt64 - 1, math.MaxInt64,
	}
	for _, s := range samples {
		if got := Decode(Encode(s)); got != s {
			t.Errorf("Decode(Encode(%d)) = %d", s, got)
		}
	}
	for i := int64(-1000); i <= 1000; i++ {
		if got := Decode(Encode(i)); got != i {
			t.Errorf("Decode(Encode(%d)) = %d", i, got)
		}
	}
}

func TestSmallMagnitudesStaySmall(t *testing.T) {
	for i := int64(-100); i <= 100; i++ {
		u := Encode(i)
		if u > 200 {
			t.Errorf("Encode(%d) = %d, expected a small code", i, u)
		}
	}
}
