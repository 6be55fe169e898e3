// Package peacock converts colors between sRGB, Oklab and Oklch.
//
// All conversions are pure functions over value types. Nothing in this
// package clamps except the methods that produce device-ready sRGB values.
package peacock

import (
	"fmt"
	"math"
)

// gamutEpsilon is the slack allowed by InGamut for rounding in the
// reverse transform.
const gamutEpsilon = 1e-7

// Oklab is a color in the Oklab perceptual color space. L is lightness,
// nominally [0, 1]; A and B are the green-red and blue-yellow opponent axes.
// None of the fields are constrained.
type Oklab struct {
	L float64
	A float64
	B float64
}

// FromSRGB converts gamma-encoded sRGB channels to Oklab. Inputs outside
// [0, 1] are accepted and may yield coordinates outside the sRGB gamut.
func FromSRGB(r, g, b float64) Oklab {
	return FromLinearSRGB(SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b))
}

// FromLinearSRGB converts linear-light sRGB channels to Oklab.
func FromLinearSRGB(r, g, b float64) Oklab {
	lms := dot(m1, vec3{r, g, b})
	lab := dot(m2, vec3{math.Cbrt(lms[0]), math.Cbrt(lms[1]), math.Cbrt(lms[2])})
	return Oklab{L: lab[0], A: lab[1], B: lab[2]}
}

// LinearSRGB returns the linear-light sRGB channels of o without clamping.
func (o Oklab) LinearSRGB() (r, g, b float64) {
	lms := dot(invM2, vec3{o.L, o.A, o.B})
	for i, v := range lms {
		lms[i] = v * v * v
	}
	rgb := dot(invM1, lms)
	return rgb[0], rgb[1], rgb[2]
}

// SRGBUnclamped returns the gamma-encoded sRGB channels of o without
// clamping. Colors outside the sRGB gamut yield channels outside [0, 1].
func (o Oklab) SRGBUnclamped() (r, g, b float64) {
	lr, lg, lb := o.LinearSRGB()
	return LinearToSRGB(lr), LinearToSRGB(lg), LinearToSRGB(lb)
}

// SRGB returns the gamma-encoded sRGB channels of o, each clamped to [0, 1].
func (o Oklab) SRGB() (r, g, b float64) {
	r, g, b = o.SRGBUnclamped()
	return clamp01(r), clamp01(g), clamp01(b)
}

// InGamut reports whether o can be shown on an sRGB display without
// clamping.
func (o Oklab) InGamut() bool {
	r, g, b := o.LinearSRGB()
	for _, v := range [...]float64{r, g, b} {
		if !(v >= -gamutEpsilon && v <= 1+gamutEpsilon) {
			return false
		}
	}
	return true
}

// Oklch returns the polar form of o. The hue is in radians, in (-π, π].
func (o Oklab) Oklch() Oklch {
	return Oklch{
		L: o.L,
		C: math.Sqrt(o.A*o.A + o.B*o.B),
		H: math.Atan2(o.B, o.A),
	}
}

func (o Oklab) String() string {
	return fmt.Sprintf("oklab(%g %g %g)", o.L, o.A, o.B)
}
