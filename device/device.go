// Package device converts between Oklab/Oklch and device-ready sRGB colors.
//
// It is the boundary between the pure conversions in package peacock and
// code that draws: channels produced here are always clamped to [0, 1],
// and alpha travels alongside the color untouched.
package device

import (
	"image/color"
	"math"

	"github.com/jsvensson/peacock"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a gamma-encoded sRGB color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B float64
	A       float64
}

// Model converts any color.Color to a Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return Convert(c)
})

// New builds a device color from an Oklab value. The channels are clamped to
// [0, 1]; alpha is stored as given.
func New(o peacock.Oklab, alpha float64) Color {
	r, g, b := o.SRGB()
	return Color{R: r, G: g, B: b, A: alpha}
}

// FromOklab builds an opaque device color from an Oklab value.
func FromOklab(o peacock.Oklab) Color {
	return New(o, 1)
}

// FromOklch builds a device color from an Oklch value.
func FromOklch(c peacock.Oklch, alpha float64) Color {
	return New(c.Oklab(), alpha)
}

// Oklab returns the Oklab coordinates of c. Alpha is not involved.
func (c Color) Oklab() peacock.Oklab {
	return peacock.FromSRGB(c.R, c.G, c.B)
}

// Oklch returns the Oklch coordinates of c.
func (c Color) Oklch() peacock.Oklch {
	return c.Oklab().Oklch()
}

// RGBA implements color.Color. Channels and alpha are clamped before
// quantizing to 16 bits.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: quantize16(c.R),
		G: quantize16(c.G),
		B: quantize16(c.B),
		A: quantize16(c.A),
	}.RGBA()
}

// Convert returns the device color for any color.Color.
func Convert(c color.Color) Color {
	if dc, ok := c.(Color); ok {
		return dc
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// FromColorful wraps a go-colorful color. go-colorful carries no alpha, so it
// is supplied separately.
func FromColorful(c colorful.Color, alpha float64) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Colorful returns c as a go-colorful color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func quantize16(v float64) uint16 {
	return uint16(math.Round(clamp01(v) * 0xffff))
}

func quantize8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 0xff))
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
