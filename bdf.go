package ledgrid

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Glyph is one rendered character from a BDF font. Bitmap is a 2-value
// bitmap (0 background, 1 foreground), or nil for glyphs with an empty
// bounding box such as the space, which still carry their advance.
type Glyph struct {
	Bitmap *Bitmap
	Width  int
	Height int

	// XOffset and YOffset position the glyph relative to the pen: YOffset
	// is the signed distance from the baseline to the glyph's bottom row,
	// negative for descenders.
	XOffset int
	YOffset int

	// Advance is the horizontal pen movement after this glyph (the BDF
	// DWIDTH). Never negative in a well-formed font.
	Advance int
}

// Font is an immutable glyph source parsed from BDF data. Construct one
// with ParseBDF or LoadBDF and share it by reference; there is no global
// font singleton.
type Font struct {
	Name string
	Size int

	// Height, Ascent, and Descent are the font-wide vertical metrics.
	// FONT_ASCENT/FONT_DESCENT properties win when present; otherwise
	// they derive from FONTBOUNDINGBOX.
	Height  int
	Ascent  int
	Descent int

	glyphs map[rune]*glyphSource
	cache  *GlyphCache
}

// glyphSource holds a glyph's parsed metrics and raw hex rows; rendering
// to a Bitmap is deferred until the glyph is first requested.
type glyphSource struct {
	width   int
	height  int
	xOffset int
	yOffset int
	advance int
	rows    []string
}

// LoadBDF reads and parses a BDF font file.
func LoadBDF(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	f, err := ParseBDF(data)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	return f, nil
}

// ParseBDF parses BDF font data. Only the subset the embedded stack
// consumes is read: FONT, SIZE, FONTBOUNDINGBOX, the FONT_ASCENT and
// FONT_DESCENT properties, and STARTCHAR/ENCODING/DWIDTH/BBX/BITMAP
// glyph blocks with hex-encoded rows. Anything structurally wrong wraps
// ErrMalformedFont so callers can fall back to a default font.
func ParseBDF(data []byte) (*Font, error) {
	f := &Font{
		glyphs: make(map[rune]*glyphSource),
		cache:  NewGlyphCache(0),
	}

	var (
		haveBBox    bool
		fontAscent  = -1
		fontDescent = -1
		inProps     bool
		inBitmap    bool
		current     *glyphSource
		currentRune rune = -1

		// DWIDTH seen before the glyph's BBX; -1 means unset.
		currentWidth = -1
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "FONT "):
			f.Name = strings.TrimSpace(line[5:])

		case strings.HasPrefix(line, "SIZE"):
			if v, ok := intField(line, 1); ok {
				f.Size = v
			}

		case strings.HasPrefix(line, "FONTBOUNDINGBOX"):
			parts := strings.Fields(line)
			if len(parts) < 5 {
				return nil, fmt.Errorf("line %d: short FONTBOUNDINGBOX: %w", lineNo, ErrMalformedFont)
			}
			h, err1 := strconv.Atoi(parts[2])
			yOff, err2 := strconv.Atoi(parts[4])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad FONTBOUNDINGBOX: %w", lineNo, ErrMalformedFont)
			}
			f.Height = h
			f.Ascent = h + yOff
			f.Descent = -yOff
			haveBBox = true

		case strings.HasPrefix(line, "STARTPROPERTIES"):
			inProps = true

		case strings.HasPrefix(line, "ENDPROPERTIES"):
			inProps = false

		case inProps && strings.HasPrefix(line, "FONT_ASCENT"):
			if v, ok := intField(line, 1); ok {
				fontAscent = v
				f.Ascent = v
			}

		case inProps && strings.HasPrefix(line, "FONT_DESCENT"):
			if v, ok := intField(line, 1); ok {
				fontDescent = v
				f.Descent = v
			}

		case strings.HasPrefix(line, "STARTCHAR"):
			current = nil
			currentRune = -1
			currentWidth = -1
			inBitmap = false

		case strings.HasPrefix(line, "ENCODING"):
			v, ok := intField(line, 1)
			if !ok {
				return nil, fmt.Errorf("line %d: bad ENCODING: %w", lineNo, ErrMalformedFont)
			}
			currentRune = rune(v)

		case strings.HasPrefix(line, "DWIDTH"):
			if v, ok := intField(line, 1); ok {
				currentWidth = v
			}

		case strings.HasPrefix(line, "BBX"):
			if currentRune < 0 {
				continue // non-encoded glyph, skip its block
			}
			parts := strings.Fields(line)
			if len(parts) < 5 {
				return nil, fmt.Errorf("line %d: short BBX: %w", lineNo, ErrMalformedFont)
			}
			w, err1 := strconv.Atoi(parts[1])
			h, err2 := strconv.Atoi(parts[2])
			xo, err3 := strconv.Atoi(parts[3])
			yo, err4 := strconv.Atoi(parts[4])
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				return nil, fmt.Errorf("line %d: bad BBX: %w", lineNo, ErrMalformedFont)
			}
			adv := currentWidth
			if adv < 0 {
				adv = w // no DWIDTH: fall back to the bitmap width
			}
			current = &glyphSource{width: w, height: h, xOffset: xo, yOffset: yo, advance: adv}

		case line == "BITMAP":
			inBitmap = true

		case line == "ENDCHAR":
			if current != nil && currentRune >= 0 {
				f.glyphs[currentRune] = current
			}
			current = nil
			currentRune = -1
			inBitmap = false

		case inBitmap && current != nil:
			if !isHexRow(line) {
				return nil, fmt.Errorf("line %d: bad bitmap row %q: %w", lineNo, line, ErrMalformedFont)
			}
			current.rows = append(current.rows, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading font data: %w", err)
	}

	if !haveBBox {
		return nil, fmt.Errorf("missing FONTBOUNDINGBOX: %w", ErrMalformedFont)
	}
	if len(f.glyphs) == 0 {
		return nil, fmt.Errorf("no glyphs: %w", ErrMalformedFont)
	}
	if fontAscent >= 0 && fontDescent >= 0 {
		f.Height = fontAscent + fontDescent
	}

	return f, nil
}

// HasGlyph reports whether the font maps r, without rendering it.
func (f *Font) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// GetGlyph returns the rendered glyph for r, or nil for an unmapped rune.
// A nil result is not a fault: callers advance by a fallback width and
// draw nothing. Rendered glyphs are cached per font in an LRU.
func (f *Font) GetGlyph(r rune) *Glyph {
	if g, ok := f.cache.Get(r); ok {
		return g
	}

	src, ok := f.glyphs[r]
	if !ok {
		return nil
	}

	g := renderGlyph(src)
	f.cache.Put(r, g)
	return g
}

// renderGlyph decodes a glyph's hex rows into a 2-value bitmap. Zero-size
// glyphs keep their metrics with a nil bitmap.
func renderGlyph(src *glyphSource) *Glyph {
	g := &Glyph{
		Width:   src.width,
		Height:  src.height,
		XOffset: src.xOffset,
		YOffset: src.yOffset,
		Advance: src.advance,
	}
	if src.width <= 0 || src.height <= 0 {
		return g
	}

	bm := NewBitmap(src.width, src.height, 2)
	byteWidth := (src.width + 7) / 8
	for y, row := range src.rows {
		if y >= src.height {
			break
		}
		// Rows may omit trailing zero nibbles.
		for len(row) < byteWidth*2 {
			row += "0"
		}
		for bi := 0; bi < byteWidth; bi++ {
			v, err := strconv.ParseUint(row[bi*2:bi*2+2], 16, 8)
			if err != nil {
				continue
			}
			for bit := 0; bit < 8; bit++ {
				x := bi*8 + bit
				if x >= src.width {
					break
				}
				if v&(0x80>>bit) != 0 {
					bm.setRaw(y*src.width+x, 1)
				}
			}
		}
	}
	g.Bitmap = bm
	return g
}

// intField parses the n-th whitespace field of line as an int.
func intField(line string, n int) (int, bool) {
	parts := strings.Fields(line)
	if len(parts) <= n {
		return 0, false
	}
	v, err := strconv.Atoi(parts[n])
	if err != nil {
		return 0, false
	}
	return v, true
}

// isHexRow reports whether s is entirely hex digits.
func isHexRow(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return len(s) > 0
}
