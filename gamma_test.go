package peacock

import (
	"math"
	"testing"
)

func TestSRGBToLinear(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"threshold uses linear segment", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.0405, math.Pow((0.0405+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
		{"negative passes through", -0.5, -0.5 / 12.92},
		{"above one is not clamped", 1.2, math.Pow((1.2+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SRGBToLinear(tt.in); math.Abs(got-tt.want) > 1e-14 {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLinearToSRGB(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"threshold uses linear segment", 0.0031308, 12.92 * 0.0031308},
		{"just above threshold", 0.0031309, 1.055*math.Pow(0.0031309, 1/2.4) - 0.055},
		{"negative passes through", -0.25, 12.92 * -0.25},
		{"above one is not clamped", 2, 1.055*math.Pow(2, 1/2.4) - 0.055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToSRGB(tt.in); math.Abs(got-tt.want) > 1e-14 {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGammaRoundtrip(t *testing.T) {
	for i := 0; i <= 100; i++ {
		c := float64(i) / 100
		if got := LinearToSRGB(SRGBToLinear(c)); math.Abs(got-c) > 1e-12 {
			t.Errorf("LinearToSRGB(SRGBToLinear(%v)) = %v", c, got)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
