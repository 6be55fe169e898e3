package peacock

import (
	"math"
	"testing"
)

func TestFromSRGB_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    Oklab
		tol     float64
	}{
		{"black", 0, 0, 0, Oklab{0, 0, 0}, 1e-12},
		{"white", 1, 1, 1, Oklab{1, 0, 0}, 1e-4},
		{"red", 1, 0, 0, Oklab{0.6279553606, 0.2248630611, 0.1258462985}, 1e-6},
		{"green", 0, 1, 0, Oklab{0.8664396115, -0.2338875742, 0.1794984799}, 1e-6},
		{"blue", 0, 0, 1, Oklab{0.4520137184, -0.0324569841, -0.3115281477}, 1e-6},
		{"mid gray", 0.5, 0.5, 0.5, Oklab{0.5981807266, 0, 0}, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSRGB(tt.r, tt.g, tt.b)
			if math.Abs(got.L-tt.want.L) > tt.tol {
				t.Errorf("L = %v, want %v (tol %v)", got.L, tt.want.L, tt.tol)
			}
			if math.Abs(got.A-tt.want.A) > tt.tol {
				t.Errorf("a = %v, want %v (tol %v)", got.A, tt.want.A, tt.tol)
			}
			if math.Abs(got.B-tt.want.B) > tt.tol {
				t.Errorf("b = %v, want %v (tol %v)", got.B, tt.want.B, tt.tol)
			}
		})
	}
}

func TestSRGB_Roundtrip(t *testing.T) {
	const steps = 20
	for i := 0; i <= steps; i++ {
		for j := 0; j <= steps; j++ {
			for k := 0; k <= steps; k++ {
				r, g, b := float64(i)/steps, float64(j)/steps, float64(k)/steps
				gr, gg, gb := FromSRGB(r, g, b).SRGB()
				if math.Abs(gr-r) > 1e-6 || math.Abs(gg-g) > 1e-6 || math.Abs(gb-b) > 1e-6 {
					t.Fatalf("roundtrip(%v, %v, %v) = (%v, %v, %v)", r, g, b, gr, gg, gb)
				}
			}
		}
	}
}

func TestSRGB_Clamps(t *testing.T) {
	tests := []struct {
		name string
		lab  Oklab
	}{
		{"bright out of gamut", Oklab{1, 0.5, 0.5}},
		{"dark out of gamut", Oklab{0.5, -0.3, 0.2}},
		{"above white", Oklab{1.5, 0, 0}},
		{"below black", Oklab{-0.5, 0, 0}},
		{"huge", Oklab{1e6, -1e6, 1e6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.lab.SRGB()
			for _, v := range []float64{r, g, b} {
				if v < 0 || v > 1 {
					t.Errorf("SRGB() = (%v, %v, %v), want channels within [0, 1]", r, g, b)
					break
				}
			}
		})
	}
}

func TestSRGBUnclamped_DoesNotClamp(t *testing.T) {
	r, g, b := Oklab{1, 0.5, 0.5}.SRGBUnclamped()
	if r <= 1 {
		t.Errorf("r = %v, want > 1 for an out-of-gamut red", r)
	}
	if g >= 0 && b >= 0 {
		t.Errorf("g, b = %v, %v, want a negative channel", g, b)
	}

	cr, cg, cb := Oklab{1, 0.5, 0.5}.SRGB()
	if cr != clamp01(r) || cg != clamp01(g) || cb != clamp01(b) {
		t.Errorf("SRGB() = (%v, %v, %v), want clamped (%v, %v, %v)", cr, cg, cb, r, g, b)
	}
}

func TestFromSRGB_NegativeInputs(t *testing.T) {
	// Negative linear values reach the cube root; it must keep their sign.
	got := FromSRGB(-0.2, 0.5, 1.3)
	want := Oklab{0.6721361094, -0.0512720772, -0.3005511472}
	if math.Abs(got.L-want.L) > 1e-6 || math.Abs(got.A-want.A) > 1e-6 || math.Abs(got.B-want.B) > 1e-6 {
		t.Errorf("FromSRGB(-0.2, 0.5, 1.3) = %v, want %v", got, want)
	}

	r, g, b := got.SRGBUnclamped()
	if math.Abs(r+0.2) > 1e-6 || math.Abs(g-0.5) > 1e-6 || math.Abs(b-1.3) > 1e-6 {
		t.Errorf("SRGBUnclamped() = (%v, %v, %v), want (-0.2, 0.5, 1.3)", r, g, b)
	}

	if got := FromLinearSRGB(-1, -1, -1); got.L >= 0 {
		t.Errorf("FromLinearSRGB(-1, -1, -1).L = %v, want negative", got.L)
	}
}

func TestFromLinearSRGB_MatchesFromSRGB(t *testing.T) {
	r, g, b := 0.8, 0.2, 0.4
	want := FromSRGB(r, g, b)
	got := FromLinearSRGB(SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b))
	if got != want {
		t.Errorf("FromLinearSRGB = %v, want %v", got, want)
	}

	lr, lg, lb := got.LinearSRGB()
	if math.Abs(lr-SRGBToLinear(r)) > 1e-7 || math.Abs(lg-SRGBToLinear(g)) > 1e-7 || math.Abs(lb-SRGBToLinear(b)) > 1e-7 {
		t.Errorf("LinearSRGB() = (%v, %v, %v)", lr, lg, lb)
	}
}

func TestInGamut(t *testing.T) {
	tests := []struct {
		name string
		lab  Oklab
		want bool
	}{
		{"black", FromSRGB(0, 0, 0), true},
		{"white", FromSRGB(1, 1, 1), true},
		{"red", FromSRGB(1, 0, 0), true},
		{"cyan", FromSRGB(0, 1, 1), true},
		{"interior", FromSRGB(0.25, 0.5, 0.75), true},
		{"out of gamut", Oklab{1, 0.5, 0.5}, false},
		{"above white", Oklab{1.1, 0, 0}, false},
		{"negative lightness", Oklab{-0.1, 0, 0}, false},
		{"nan", Oklab{math.NaN(), 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lab.InGamut(); got != tt.want {
				t.Errorf("%v.InGamut() = %v, want %v", tt.lab, got, tt.want)
			}
		})
	}
}

func TestOklab_Oklch(t *testing.T) {
	got := Oklab{0.5, 0.3, 0.4}.Oklch()
	if got.L != 0.5 {
		t.Errorf("L = %v, want 0.5", got.L)
	}
	if math.Abs(got.C-0.5) > 1e-15 {
		t.Errorf("C = %v, want 0.5", got.C)
	}
	if want := math.Atan2(0.4, 0.3); got.H != want {
		t.Errorf("H = %v, want %v", got.H, want)
	}

	if h := (Oklab{0.5, 0, 0}).Oklch().H; h != 0 {
		t.Errorf("achromatic hue = %v, want 0", h)
	}
	if h := (Oklab{0.5, -0.1, 0}).Oklch().H; h != math.Pi {
		t.Errorf("hue on negative a axis = %v, want π", h)
	}
}

func TestOklch_ChromaNonNegative(t *testing.T) {
	values := []float64{-1, -0.3, -1e-9, 0, 1e-9, 0.2, 1}
	for _, l := range []float64{0, 0.5, 1} {
		for _, a := range values {
			for _, b := range values {
				if c := (Oklab{l, a, b}).Oklch().C; c < 0 {
					t.Errorf("Oklab{%v, %v, %v}.Oklch().C = %v, want >= 0", l, a, b, c)
				}
			}
		}
	}
}

func TestOklab_String(t *testing.T) {
	if got, want := (Oklab{0.5, -0.25, 0.125}).String(), "oklab(0.5 -0.25 0.125)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
