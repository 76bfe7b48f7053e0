package ledgrid

import "testing"

func assertRGB(t *testing.T, name string, got, want RGB) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestRGBHexRoundTrip(t *testing.T) {
	c := RGBFromHex(0x12AB34)
	assertRGB(t, "from hex", c, RGB{R: 0x12, G: 0xAB, B: 0x34})
	if got := c.Hex(); got != 0x12AB34 {
		t.Errorf("Hex() = %#x, want 0x12AB34", got)
	}
}

func TestRGB565FullScale(t *testing.T) {
	// Full-scale 565 must expand to full-scale 888, not 0xF8/0xFC.
	assertRGB(t, "white", RGBFrom565(0xFFFF), White)
	assertRGB(t, "black", RGBFrom565(0), Black)
	assertRGB(t, "red", RGBFrom565(0xF800), Red)
	assertRGB(t, "green", RGBFrom565(0x07E0), Green)
	assertRGB(t, "blue", RGBFrom565(0x001F), Blue)
}

func TestRGBTo565(t *testing.T) {
	cases := []struct {
		c    RGB
		want uint16
	}{
		{White, 0xFFFF},
		{Black, 0x0000},
		{Red, 0xF800},
		{Green, 0x07E0},
		{Blue, 0x001F},
	}
	for _, tc := range cases {
		if got := tc.c.To565(); got != tc.want {
			t.Errorf("To565(%v) = %#x, want %#x", tc.c, got, tc.want)
		}
	}
}

func TestQuantize565Idempotent(t *testing.T) {
	c := RGB{R: 100, G: 150, B: 200}
	q := c.quantize565()
	assertRGB(t, "second pass", q.quantize565(), q)
}

func TestScaleTruncates(t *testing.T) {
	c := RGB{R: 255, G: 100, B: 1}
	assertRGB(t, "half", c.scale(0.5), RGB{R: 127, G: 50, B: 0})
	assertRGB(t, "zero", c.scale(0), Black)
	assertRGB(t, "one", c.scale(1), c)
}

func TestBoostClamps(t *testing.T) {
	c := RGB{R: 240, G: 100, B: 0}
	got := c.boost(1.15)
	assertRGB(t, "boost", got, RGB{R: 255, G: 114, B: 0})
}

func TestAddClamps(t *testing.T) {
	c := RGB{R: 240, G: 100, B: 0}
	assertRGB(t, "add", c.add(35), RGB{R: 255, G: 135, B: 35})
	assertRGB(t, "subtract", c.add(-150), RGB{R: 90, G: 0, B: 0})
}

func TestBlend(t *testing.T) {
	assertRGB(t, "alpha 0", Blend(Red, Blue, 0), Red)
	assertRGB(t, "alpha 1", Blend(Red, Blue, 1), Blue)
	mid := Blend(Black, White, 0.5)
	assertRGB(t, "midpoint", mid, RGB{R: 127, G: 127, B: 127})
}
