package ledgrid

import "strings"

// fallbackAdvance is the pen movement for runes the font has no glyph
// for. Some fonts ship without a space glyph; text still needs to gap.
const fallbackAdvance = 4

// standardYAdjust nudges the standard baseline policy so a label placed
// at y lands where matrix-panel firmware puts it. Tuned against 5x8 and
// 6x10 terminal fonts.
const standardYAdjust = 4

// Anchor is a normalized reference point on a label's bounding box:
// (0,0) is the top-left corner, (1,1) the bottom-right, (0.5,0.5) the
// center.
type Anchor struct {
	X, Y float64
}

// LabelConfig carries the optional Label parameters. The zero value is a
// white, unscaled, single-spaced label with a transparent background.
type LabelConfig struct {
	Text string

	// Color is the glyph color. The zero value renders white.
	Color *RGB

	// BackgroundColor fills the label's bounding box. Nil leaves the
	// background transparent.
	BackgroundColor *RGB

	// LineSpacing is the baseline-to-baseline distance in font heights.
	// Zero means 1.25.
	LineSpacing float64

	PaddingTop    int
	PaddingBottom int
	PaddingLeft   int
	PaddingRight  int

	// Scale replicates every glyph pixel into a Scale×Scale block.
	// Values below 1 mean 1.
	Scale int

	// CharacterSpacing is extra pen advance after every glyph, in
	// unscaled pixels.
	CharacterSpacing int

	// BaselineAligned makes the label's y coordinate the glyph baseline
	// itself rather than a font-relative top edge. Labels from fonts
	// with different ascents then share a visual baseline at equal y.
	BaselineAligned bool

	// TabWidth is the number of spaces a tab expands to. Zero means 4.
	TabWidth int

	X, Y int
}

// Label renders a string through a BDF font into an owned two-value
// bitmap, exposed to the scene graph as a Group holding one TileGrid.
// Any change to the text, scale, or spacing rebuilds the bitmap; a
// color-only change just rewrites the palette.
type Label struct {
	font  *Font
	group *Group

	text            string
	color           RGB
	backgroundColor *RGB
	lineSpacing     float64
	padTop          int
	padBottom       int
	padLeft         int
	padRight        int
	scale           int
	charSpacing     int
	baselineAligned bool
	tabWidth        int

	anchor     *Anchor
	anchorPosX int
	anchorPosY int

	bitmap   *Bitmap
	palette  *Palette
	tilegrid *TileGrid
}

// NewLabel creates a label for font with the given configuration.
// Panics if font is nil.
func NewLabel(font *Font, cfg LabelConfig) *Label {
	if font == nil {
		panic("ledgrid: label needs a font")
	}

	l := &Label{
		font:            font,
		group:           NewGroup(),
		color:           White,
		backgroundColor: cfg.BackgroundColor,
		lineSpacing:     cfg.LineSpacing,
		padTop:          cfg.PaddingTop,
		padBottom:       cfg.PaddingBottom,
		padLeft:         cfg.PaddingLeft,
		padRight:        cfg.PaddingRight,
		scale:           cfg.Scale,
		charSpacing:     cfg.CharacterSpacing,
		baselineAligned: cfg.BaselineAligned,
		tabWidth:        cfg.TabWidth,
	}
	if cfg.Color != nil {
		l.color = *cfg.Color
	}
	if l.lineSpacing <= 0 {
		l.lineSpacing = 1.25
	}
	if l.scale < 1 {
		l.scale = 1
	}
	if l.tabWidth <= 0 {
		l.tabWidth = 4
	}
	l.group.X = cfg.X
	l.group.Y = cfg.Y

	l.text = cfg.Text
	l.rebuild()
	return l
}

// Group returns the scene-graph node carrying the label. Append it to a
// parent group to show the label; move the label through SetPosition or
// the group's X and Y.
func (l *Label) Group() *Group { return l.group }

// Font returns the label's font.
func (l *Label) Font() *Font { return l.font }

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label's text, rebuilding the bitmap when the text
// actually changed.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.rebuild()
}

// Color returns the glyph color.
func (l *Label) Color() RGB { return l.color }

// SetColor changes the glyph color. Only the palette is touched; the
// bitmap is not rebuilt.
func (l *Label) SetColor(c RGB) {
	l.color = c
	if l.palette != nil {
		l.palette.Set(1, c)
	}
}

// SetBackgroundColor changes the background fill, or makes it
// transparent when c is nil. Rebuilds the bitmap so background pixels
// flip between index 0 written and untouched.
func (l *Label) SetBackgroundColor(c *RGB) {
	l.backgroundColor = c
	l.rebuild()
}

// SetScale changes the pixel replication factor. Values below 1 mean 1.
func (l *Label) SetScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	if scale == l.scale {
		return
	}
	l.scale = scale
	l.rebuild()
}

// Scale returns the pixel replication factor.
func (l *Label) Scale() int { return l.scale }

// SetLineSpacing changes the baseline-to-baseline distance, in font
// heights.
func (l *Label) SetLineSpacing(spacing float64) {
	if spacing <= 0 || spacing == l.lineSpacing {
		return
	}
	l.lineSpacing = spacing
	l.rebuild()
}

// SetPosition moves the label within its parent group.
func (l *Label) SetPosition(x, y int) {
	l.group.X = x
	l.group.Y = y
}

// SetAnchor pins the given normalized point of the label's bounding box
// to the pixel position (x, y). The label repositions itself on every
// rebuild so the anchor stays put as the text changes width.
func (l *Label) SetAnchor(anchor Anchor, x, y int) {
	l.anchor = &anchor
	l.anchorPosX = x
	l.anchorPosY = y
	l.applyAnchor()
}

// Width returns the generated bitmap's width in pixels.
func (l *Label) Width() int {
	if l.bitmap == nil {
		return 0
	}
	return l.bitmap.Width()
}

// Height returns the generated bitmap's height in pixels.
func (l *Label) Height() int {
	if l.bitmap == nil {
		return 0
	}
	return l.bitmap.Height()
}

// Bitmap returns the generated bitmap. Replaced wholesale on rebuild;
// do not retain across SetText calls.
func (l *Label) Bitmap() *Bitmap { return l.bitmap }

// rebuild regenerates the bitmap, palette, and tile grid from the
// current text and layout settings.
func (l *Label) rebuild() {
	text := l.text
	if strings.ContainsRune(text, '\t') {
		text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", l.tabWidth))
	}
	lines := strings.Split(text, "\n")

	lineHeight := int(float64(l.font.Height) * l.lineSpacing)
	maxWidth := 0
	for _, line := range lines {
		w := l.lineWidth(line)
		if w > maxWidth {
			maxWidth = w
		}
	}

	width := max(1, maxWidth+l.padLeft+l.padRight)
	height := max(1, l.padTop+l.font.Ascent+l.font.Descent+l.padBottom+(len(lines)-1)*lineHeight)

	bm := NewBitmap(width, height, 2)
	pal := NewPalette(2)
	if l.backgroundColor == nil {
		pal.MakeTransparent(0)
	} else {
		pal.Set(0, *l.backgroundColor)
	}
	pal.Set(1, l.color)

	for i, line := range lines {
		baseline := l.padTop + l.font.Ascent + i*lineHeight
		l.renderLine(bm, line, baseline)
	}

	if l.scale > 1 {
		bm = scaleBitmap(bm, l.scale)
	}

	if l.tilegrid != nil {
		l.group.Remove(l.tilegrid)
	}
	tg := NewTileGrid(bm, pal, TileGridConfig{})

	// The group's y is the baseline anchor, not the bitmap's top edge,
	// so the grid is lifted by the space above the baseline.
	baselineOffset := (l.font.Ascent + l.padTop) * l.scale
	if l.baselineAligned {
		tg.Y = -baselineOffset
	} else {
		// The standard adjust is in unscaled glyph units, so it
		// multiplies with the scale like the rest of the offset.
		tg.Y = -(baselineOffset - standardYAdjust*l.scale)
	}
	l.group.Append(tg)

	l.bitmap = bm
	l.palette = pal
	l.tilegrid = tg

	l.applyAnchor()
}

// lineWidth measures one line of text in unscaled pixels.
func (l *Label) lineWidth(line string) int {
	w := 0
	for _, r := range line {
		g := l.font.GetGlyph(r)
		if g == nil {
			w += fallbackAdvance + l.charSpacing
			continue
		}
		w += g.Advance + l.charSpacing
	}
	return w
}

// renderLine draws one line's glyphs into bm with the pen baseline at
// the given row.
func (l *Label) renderLine(bm *Bitmap, line string, baseline int) {
	pen := l.padLeft
	for _, r := range line {
		g := l.font.GetGlyph(r)
		if g == nil {
			pen += fallbackAdvance + l.charSpacing
			continue
		}
		if g.Bitmap != nil {
			drawX := pen + g.XOffset
			drawY := baseline - g.Height - g.YOffset
			blitGlyph(bm, g.Bitmap, drawX, drawY)
		}
		pen += g.Advance + l.charSpacing
	}
}

// blitGlyph copies a glyph's set pixels into bm at (dx, dy), clipping
// to the destination.
func blitGlyph(bm, glyph *Bitmap, dx, dy int) {
	for gy := 0; gy < glyph.Height(); gy++ {
		by := dy + gy
		if by < 0 || by >= bm.Height() {
			continue
		}
		for gx := 0; gx < glyph.Width(); gx++ {
			bx := dx + gx
			if bx < 0 || bx >= bm.Width() {
				continue
			}
			if v, _ := glyph.Get(gx, gy); v != 0 {
				bm.Set(bx, by, 1)
			}
		}
	}
}

// scaleBitmap replicates every pixel of src into a factor×factor block.
func scaleBitmap(src *Bitmap, factor int) *Bitmap {
	dst := NewBitmap(src.Width()*factor, src.Height()*factor, src.ValueCount())
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			v, _ := src.Get(x, y)
			if v == 0 {
				continue
			}
			for dy := 0; dy < factor; dy++ {
				for dx := 0; dx < factor; dx++ {
					dst.Set(x*factor+dx, y*factor+dy, v)
				}
			}
		}
	}
	return dst
}

func (l *Label) applyAnchor() {
	if l.anchor == nil || l.bitmap == nil {
		return
	}
	l.group.X = l.anchorPosX - int(float64(l.bitmap.Width())*l.anchor.X)
	l.group.Y = l.anchorPosY - int(float64(l.bitmap.Height())*l.anchor.Y)
}
