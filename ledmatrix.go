package ledgrid

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// LED appearance calibration. The full-brightness boost compensates for
// perceived LED dimness versus a flat multiply on a desktop monitor. These
// are tuned constants matched against hardware photos. Preserve verbatim;
// do not re-derive from a brightness law.
const (
	boostFactor        = 1.15 // base color multiplier at brightness == 1.0
	highlightBoost     = 30   // dome highlight delta below full brightness
	highlightBoostFull = 35   // dome highlight delta at brightness == 1.0
	litThreshold       = 20   // R+G+B above this counts as a lit diode
	cellCacheLimit     = 256  // max distinct colors cached as cell images
)

// unlitColor is the disc color for an off diode: dim gray, not pure
// black, to mimic an unlit lens catching ambient light.
var unlitColor = RGB{R: 20, G: 20, B: 20}

// backgroundColor is the panel substrate behind and between the diodes.
var backgroundColor = color.RGBA{R: 10, G: 10, B: 10, A: 255}

// LEDMatrix visualizes a pixel canvas as a physical LED panel: one filled
// disc per pixel with a small dome highlight, on a dark substrate. It owns
// the canvas the Display compositor flattens into, and also exposes the
// canvas directly for low-level effects and debugging.
type LEDMatrix struct {
	width   int
	height  int
	pitch   float64
	ledSize int
	spacing int

	surfaceWidth  int
	surfaceHeight int

	canvas     *PixelBuffer
	surface    *image.RGBA
	brightness float64

	cells map[RGB]*image.RGBA
}

// MatrixConfig carries the optional LEDMatrix parameters.
type MatrixConfig struct {
	// Pitch is the LED pitch in millimeters (2.5–6 on real panels).
	// Zero means 3.0.
	Pitch float64

	// LEDSize overrides the pitch-derived diode diameter in surface
	// pixels. Zero derives it from the pitch.
	LEDSize int
}

// NewLEDMatrix creates a matrix of width×height diodes. Panics if either
// dimension is not positive.
func NewLEDMatrix(width, height int, cfg MatrixConfig) *LEDMatrix {
	if width <= 0 || height <= 0 {
		panic("ledgrid: matrix dimensions must be positive")
	}

	pitch := cfg.Pitch
	if pitch <= 0 {
		pitch = 3.0
	}

	// 80% of the pitch is diode, 20% gap; ×3.75 maps millimeters to
	// surface pixels so a 64-wide 3mm panel lands near its physical size
	// at 96 DPI.
	ledSize := cfg.LEDSize
	if ledSize <= 0 {
		ledSize = int(pitch * 0.8 * 3.75)
	}
	spacing := int(pitch * 0.2 * 3.75)

	m := &LEDMatrix{
		width:         width,
		height:        height,
		pitch:         pitch,
		ledSize:       ledSize,
		spacing:       spacing,
		surfaceWidth:  width*(ledSize+spacing) - spacing,
		surfaceHeight: height*(ledSize+spacing) - spacing,
		canvas:        NewPixelBuffer(width, height),
		brightness:    1.0,
		cells:         make(map[RGB]*image.RGBA),
	}
	m.surface = image.NewRGBA(image.Rect(0, 0, m.surfaceWidth, m.surfaceHeight))
	m.warmCellCache()
	return m
}

// Width returns the matrix width in diodes.
func (m *LEDMatrix) Width() int { return m.width }

// Height returns the matrix height in diodes.
func (m *LEDMatrix) Height() int { return m.height }

// LEDSize returns the diode diameter in surface pixels.
func (m *LEDMatrix) LEDSize() int { return m.ledSize }

// Spacing returns the gap between diodes in surface pixels.
func (m *LEDMatrix) Spacing() int { return m.spacing }

// Canvas returns the logical pixel canvas the compositor writes to.
func (m *LEDMatrix) Canvas() *PixelBuffer { return m.canvas }

// Surface returns the rendered visualization surface. Valid after Render.
func (m *LEDMatrix) Surface() *image.RGBA { return m.surface }

// Brightness returns the current brightness scalar.
func (m *LEDMatrix) Brightness() float64 { return m.brightness }

// SetBrightness sets the global brightness, clamped to [0, 1]. Cached cell
// images depend on it, so the cache resets.
func (m *LEDMatrix) SetBrightness(brightness float64) {
	brightness = min(1.0, max(0.0, brightness))
	if brightness == m.brightness {
		return
	}
	m.brightness = brightness
	m.cells = make(map[RGB]*image.RGBA)
	m.warmCellCache()
	// The next Render must repaint everything with the new calibration.
	m.canvas.dirty = true
	m.canvas.dirtyRegion = nil
}

// SetPixel writes directly to the logical canvas, bypassing the scene
// graph. Off-panel writes are dropped.
func (m *LEDMatrix) SetPixel(x, y int, c RGB) {
	m.canvas.SetPixel(x, y, c)
}

// GetPixel reads the logical canvas. Off-panel reads return black.
func (m *LEDMatrix) GetPixel(x, y int) RGB {
	return m.canvas.GetPixel(x, y)
}

// Fill sets every canvas pixel to c, bypassing the scene graph.
func (m *LEDMatrix) Fill(c RGB) {
	m.canvas.Fill(c)
}

// Clear sets every canvas pixel to black.
func (m *LEDMatrix) Clear() {
	m.canvas.Clear()
}

// Render performs the circle pass: every canvas pixel becomes a filled
// disc in its brightness-adjusted color plus a dome highlight. Frames
// whose canvas did not change since the last Render are skipped.
func (m *LEDMatrix) Render() {
	if !m.canvas.IsDirty() {
		return
	}

	draw.Draw(m.surface, m.surface.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := m.canvas.GetPixel(x, y)
			if m.brightness < 1.0 {
				c = c.scale(m.brightness)
			}
			cell := m.cellImage(c)
			at := image.Pt(x*(m.ledSize+m.spacing), y*(m.ledSize+m.spacing))
			draw.Draw(m.surface, cell.Bounds().Add(at), cell, image.Point{}, draw.Over)
		}
	}

	m.canvas.ClearDirty()
}

// cellImage returns the rendered disc for a single diode of the given
// color, cached per color up to cellCacheLimit entries.
func (m *LEDMatrix) cellImage(c RGB) *image.RGBA {
	if cell, ok := m.cells[c]; ok {
		return cell
	}
	cell := m.renderCell(c)
	if len(m.cells) < cellCacheLimit {
		m.cells[c] = cell
	}
	return cell
}

// renderCell draws one diode: the main disc, then a smaller highlight disc
// shifted toward the upper-left to suggest a dome reflection.
func (m *LEDMatrix) renderCell(c RGB) *image.RGBA {
	cell := image.NewRGBA(image.Rect(0, 0, m.ledSize, m.ledSize))
	center := m.ledSize / 2
	radius := m.ledSize/2 - 1

	if c.sum() <= litThreshold {
		// Off diode: dim gray lens, no highlight.
		fillDisc(cell, center, center, radius, unlitColor)
		return cell
	}

	discColor := c
	highlightDelta := highlightBoost
	if m.brightness == 1.0 {
		discColor = c.boost(boostFactor)
		highlightDelta = highlightBoostFull
	}
	fillDisc(cell, center, center, radius, discColor)

	hlRadius := max(1, radius/3)
	hlOffset := radius / 3
	fillDisc(cell, center-hlOffset, center-hlOffset, hlRadius, discColor.add(highlightDelta))
	return cell
}

// fillDisc rasterizes a filled circle into img.
func fillDisc(img *image.RGBA, cx, cy, radius int, c RGB) {
	col := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(cx+dx, cy+dy, col)
			}
		}
	}
}

// warmCellCache pre-renders the unlit cell and full-scale primaries so the
// common cases never hit the rasterizer during a frame.
func (m *LEDMatrix) warmCellCache() {
	for _, c := range []RGB{Black, Red, Green, Blue, Yellow, Magenta, Cyan, White} {
		m.cells[c] = m.renderCell(c)
	}
}

// SaveScreenshot writes the current visualization surface as a PNG file.
// Call Render first to flush pending canvas changes.
func (m *LEDMatrix) SaveScreenshot(path string) error {
	return writePNG(path, m.surface)
}

// SaveScreenshotScaled writes the surface scaled by an integer factor,
// using nearest-neighbor so diode edges stay crisp.
func (m *LEDMatrix) SaveScreenshotScaled(path string, factor int) error {
	if factor <= 1 {
		return m.SaveScreenshot(path)
	}
	b := m.surface.Bounds()
	scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), m.surface, b, xdraw.Src, nil)
	return writePNG(path, scaled)
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
