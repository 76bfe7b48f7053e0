package ledgrid

import "fmt"

// Palette is an ordered color table with per-entry transparency flags.
// TileGrids reference a palette to resolve bitmap values to colors; they
// do not own it, so several grids can share one.
//
// Entries are quantized to the RGB565 grid on assignment: the simulated
// panel has 16-bit color depth, and the simulator shows exactly the
// colors the hardware can produce.
type Palette struct {
	colors      []RGB
	transparent []bool
}

// NewPalette creates a palette with count entries, all black and opaque.
// Panics if count is not positive.
func NewPalette(count int) *Palette {
	if count <= 0 {
		panic("ledgrid: palette color count must be positive")
	}
	return &Palette{
		colors:      make([]RGB, count),
		transparent: make([]bool, count),
	}
}

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.colors) }

// Set assigns the entry at index, quantized to the panel's color depth.
func (p *Palette) Set(index int, c RGB) error {
	if index < 0 || index >= len(p.colors) {
		return fmt.Errorf("palette index %d: %w", index, ErrOutOfRange)
	}
	p.colors[index] = c.quantize565()
	return nil
}

// SetHex assigns the entry at index from a packed 0xRRGGBB value.
func (p *Palette) SetHex(index int, hex uint32) error {
	return p.Set(index, RGBFromHex(hex))
}

// Get returns the stored color at index.
func (p *Palette) Get(index int) (RGB, error) {
	if index < 0 || index >= len(p.colors) {
		return RGB{}, fmt.Errorf("palette index %d: %w", index, ErrOutOfRange)
	}
	return p.colors[index], nil
}

// Color returns the stored color at index, or black when out of range.
// The compositor's hot path uses this; callers that need the error take
// Get.
func (p *Palette) Color(index int) RGB {
	if index < 0 || index >= len(p.colors) {
		return RGB{}
	}
	return p.colors[index]
}

// MakeTransparent marks the entry at index transparent. The stored color
// is kept; transparency is independent of color value.
func (p *Palette) MakeTransparent(index int) error {
	if index < 0 || index >= len(p.transparent) {
		return fmt.Errorf("palette index %d: %w", index, ErrOutOfRange)
	}
	p.transparent[index] = true
	return nil
}

// MakeOpaque clears the transparency flag on the entry at index.
func (p *Palette) MakeOpaque(index int) error {
	if index < 0 || index >= len(p.transparent) {
		return fmt.Errorf("palette index %d: %w", index, ErrOutOfRange)
	}
	p.transparent[index] = false
	return nil
}

// IsTransparent reports whether the entry at index is transparent.
// Out-of-range indices report false.
func (p *Palette) IsTransparent(index int) bool {
	if index < 0 || index >= len(p.transparent) {
		return false
	}
	return p.transparent[index]
}
