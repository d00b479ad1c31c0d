package vmath

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-720, 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		got := NormalizeDegrees(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v): expected %v, got %v", tt.in, tt.want, got)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDegrees(%v) out of range: %v", tt.in, got)
		}
	}
}

func TestAngleDiff(t *testing.T) {
	tests := []struct {
		from, to, want float64
	}{
		{0, 90, 90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{180, 0, 180},
	}

	for _, tt := range tests {
		if got := AngleDiff(tt.from, tt.to); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AngleDiff(%v, %v): expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestHeadingRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 45, 135, 180, 270, 359} {
		got := HeadingOf(HeadingVector(deg))
		if math.Abs(AngleDiff(deg, got)) > 1e-9 {
			t.Errorf("Expected heading %v, got %v", deg, got)
		}
	}
}

func TestVec2NormalizeZeroSafe(t *testing.T) {
	if n := (Vec2{}).Normalize(); n != (Vec2{}) {
		t.Errorf("Expected zero vector, got %v", n)
	}
	if n := (Vec2{}).NormalizeOr(Vec2{0, 1}); n != (Vec2{0, 1}) {
		t.Errorf("Expected fallback, got %v", n)
	}
	if c := (Vec2{30, 40}).ClampLen(10); math.Abs(c.Len()-10) > 1e-9 {
		t.Errorf("Expected clamped length 10, got %v", c.Len())
	}
}
