package peacock

import (
	"fmt"
	"math"
)

// Oklch is the cylindrical form of Oklab: lightness, chroma and hue.
// H is in radians and is never wrapped. A negative C behaves like the
// same chroma rotated by half a turn.
type Oklch struct {
	L float64
	C float64
	H float64
}

// OklchFromDegrees builds an Oklch color from a hue given in degrees.
func OklchFromDegrees(l, c, hue float64) Oklch {
	return Oklch{L: l, C: c, H: hue * (math.Pi / 180)}
}

// Oklab returns the Cartesian form of c.
func (c Oklch) Oklab() Oklab {
	return Oklab{
		L: c.L,
		A: c.C * math.Cos(c.H),
		B: c.C * math.Sin(c.H),
	}
}

// SRGB returns the clamped sRGB channels of c by way of Oklab.
func (c Oklch) SRGB() (r, g, b float64) {
	return c.Oklab().SRGB()
}

// HueDegrees returns the hue in degrees, normalized to [0, 360).
func (c Oklch) HueDegrees() float64 {
	deg := math.Mod(c.H*(180/math.Pi), 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// WithLightness returns a copy of c with lightness l, keeping chroma and hue.
func (c Oklch) WithLightness(l float64) Oklch {
	c.L = l
	return c
}

func (c Oklch) String() string {
	return fmt.Sprintf("oklch(%g %g %g)", c.L, c.C, c.H)
}
