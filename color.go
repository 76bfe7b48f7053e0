package ledgrid

// RGB is the canonical color representation used throughout the package:
// 24-bit RGB, one byte per channel, no alpha. Transparency is a palette
// property, not a color property. Conversions to and from the panel's
// 16-bit RGB565 wire format live here and nowhere else.
type RGB struct {
	R, G, B uint8
}

// RGBFromHex converts a packed 24-bit 0xRRGGBB value.
func RGBFromHex(hex uint32) RGB {
	return RGB{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Hex returns the color as a packed 24-bit 0xRRGGBB value.
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBFrom565 expands a 16-bit RGB565 value to 24-bit RGB. The low bits of
// each channel are back-filled from the high bits so full-scale 565 values
// expand to full-scale 888 values.
func RGBFrom565(c uint16) RGB {
	r := uint8((c>>11)&0x1F) << 3
	g := uint8((c>>5)&0x3F) << 2
	b := uint8(c&0x1F) << 3
	r |= r >> 5
	g |= g >> 6
	b |= b >> 5
	return RGB{R: r, G: g, B: b}
}

// To565 packs the color into 16-bit RGB565, discarding the low bits.
func (c RGB) To565() uint16 {
	return uint16(c.R&0xF8)<<8 | uint16(c.G&0xFC)<<3 | uint16(c.B)>>3
}

// quantize565 rounds the color onto the RGB565 grid. Palette entries pass
// through this on assignment so the simulator shows exactly the colors a
// 16-bit panel can produce.
func (c RGB) quantize565() RGB {
	return RGBFrom565(c.To565())
}

// scale multiplies each channel by factor, truncating like the embedded
// stack does. factor is expected in [0, 1].
func (c RGB) scale(factor float64) RGB {
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// boost multiplies each channel by factor and clamps at full scale.
// Used by the LED pass's brightness calibration, where factor > 1.
func (c RGB) boost(factor float64) RGB {
	return RGB{
		R: clamp8(float64(c.R) * factor),
		G: clamp8(float64(c.G) * factor),
		B: clamp8(float64(c.B) * factor),
	}
}

// add raises each channel by delta, clamping at full scale.
func (c RGB) add(delta int) RGB {
	return RGB{
		R: clamp8(float64(int(c.R) + delta)),
		G: clamp8(float64(int(c.G) + delta)),
		B: clamp8(float64(int(c.B) + delta)),
	}
}

// sum returns R+G+B, used to decide whether a diode counts as lit.
func (c RGB) sum() int {
	return int(c.R) + int(c.G) + int(c.B)
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Blend linearly interpolates between a and b. alpha 0 yields a, 1 yields b.
func Blend(a, b RGB, alpha float64) RGB {
	return RGB{
		R: uint8(float64(a.R)*(1-alpha) + float64(b.R)*alpha),
		G: uint8(float64(a.G)*(1-alpha) + float64(b.G)*alpha),
		B: uint8(float64(a.B)*(1-alpha) + float64(b.B)*alpha),
	}
}

// Common panel colors, pre-quantized by construction.
var (
	Black   = RGB{}
	White   = RGB{R: 255, G: 255, B: 255}
	Red     = RGB{R: 255}
	Green   = RGB{G: 255}
	Blue    = RGB{B: 255}
	Yellow  = RGB{R: 255, G: 255}
	Cyan    = RGB{G: 255, B: 255}
	Magenta = RGB{R: 255, B: 255}
)
