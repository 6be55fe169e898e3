package device

import "fmt"

// RGB8 is an opaque color with 8-bit channels.
type RGB8 struct {
	R, G, B uint8
}

// RGB8 quantizes c to 8-bit channels, dropping alpha.
func (c Color) RGB8() RGB8 {
	return RGB8{R: quantize8(c.R), G: quantize8(c.G), B: quantize8(c.B)}
}

// Color returns the opaque device color for c.
func (c RGB8) Color() Color {
	return Color{
		R: float64(c.R) / 0xff,
		G: float64(c.G) / 0xff,
		B: float64(c.B) / 0xff,
		A: 1,
	}
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c RGB8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexBare returns the color as a hex string without leading #, e.g. "eb6f92".
func (c RGB8) HexBare() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c RGB8) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
