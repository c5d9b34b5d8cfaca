package envelope

import (
	"testing"

	"github.com/cwbudde/algo-rack/dsp/core"
)

func TestEaseInOutFixedPoints(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{0.25, 0.0625},
		{0.75, 0.9375},
		{-1, 0},
		{2, 1},
	}

	for _, tt := range tests {
		got := EaseInOut(tt.p)
		if !core.NearlyEqual(got, tt.want, 1e-12) {
			t.Errorf("EaseInOut(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestEaseInOutMonotonic(t *testing.T) {
	const steps = 4096

	prev := EaseInOut(0)
	for i := 1; i <= steps; i++ {
		p := float64(i) / steps
		v := EaseInOut(p)
		if v < prev {
			t.Fatalf("EaseInOut not monotonic at p=%v: %v < %v", p, v, prev)
		}
		prev = v
	}
}

func TestEaseInOutSymmetric(t *testing.T) {
	for i := 0; i <= 100; i++ {
		p := float64(i) / 100
		a := EaseInOut(p)
		b := 1 - EaseInOut(1-p)
		if !core.NearlyEqual(a, b, 1e-12) {
			t.Fatalf("EaseInOut(%v) = %v, mirrored value %v", p, a, b)
		}
	}
}

func TestShape(t *testing.T) {
	for i := 0; i <= 10; i++ {
		p := float64(i) / 10
		if got := Shape(p, 0); got != p {
			t.Fatalf("Shape(%v, 0) = %v, want linear %v", p, got, p)
		}
		if got, want := Shape(p, 1), EaseInOut(p); !core.NearlyEqual(got, want, 1e-12) {
			t.Fatalf("Shape(%v, 1) = %v, want %v", p, got, want)
		}
	}
}
