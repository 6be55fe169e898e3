package peacock

import "math"

const (
	srgbToLinearThreshold = 0.04045
	linearToSRGBThreshold = 0.0031308
	gamma                 = 2.4
)

// SRGBToLinear removes the sRGB transfer curve from a single channel.
// Values outside [0, 1] are not clamped.
func SRGBToLinear(c float64) float64 {
	if c <= srgbToLinearThreshold {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, gamma)
}

// LinearToSRGB applies the sRGB transfer curve to a single linear channel.
// Values outside [0, 1] are not clamped.
func LinearToSRGB(c float64) float64 {
	if c <= linearToSRGBThreshold {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/gamma) - 0.055
}

// clamp01 clamps a value to the [0, 1] range. NaN clamps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
