package ledgrid

import (
	"os"
	"path/filepath"
	"testing"
)

// testFontBDF is a minimal fixed font: ascent 7, descent 2, a cap 'A',
// a descender 'g', and a zero-size space that only advances the pen.
const testFontBDF = `STARTFONT 2.1
FONT -test-fixed-medium-r-normal--8-80-75-75-c-50-iso10646-1
SIZE 8 75 75
FONTBOUNDINGBOX 5 9 0 -2
STARTPROPERTIES 2
FONT_ASCENT 7
FONT_DESCENT 2
ENDPROPERTIES
CHARS 3
STARTCHAR A
ENCODING 65
SWIDTH 640 0
DWIDTH 5 0
BBX 4 6 0 0
BITMAP
60
90
90
F0
90
90
ENDCHAR
STARTCHAR g
ENCODING 103
DWIDTH 5 0
BBX 4 6 0 -2
BITMAP
70
90
90
70
10
60
ENDCHAR
STARTCHAR space
ENCODING 32
DWIDTH 3 0
BBX 0 0 0 0
BITMAP
ENDCHAR
ENDFONT
`

// shortFontBDF has different vertical metrics (ascent 5, descent 1) for
// cross-font baseline checks.
const shortFontBDF = `STARTFONT 2.1
FONT -test-tiny-medium-r-normal--6-60-75-75-c-40-iso10646-1
SIZE 6 75 75
FONTBOUNDINGBOX 4 6 0 -1
STARTPROPERTIES 2
FONT_ASCENT 5
FONT_DESCENT 1
ENDPROPERTIES
CHARS 1
STARTCHAR A
ENCODING 65
DWIDTH 4 0
BBX 3 4 0 0
BITMAP
40
A0
E0
A0
ENDCHAR
ENDFONT
`

func loadTestFont(t *testing.T, data string) *Font {
	t.Helper()
	f, err := ParseBDF([]byte(data))
	if err != nil {
		t.Fatalf("parse test font: %v", err)
	}
	return f
}

func TestParseBDFMetrics(t *testing.T) {
	f := loadTestFont(t, testFontBDF)

	assertInt(t, "size", f.Size, 8)
	// FONT_ASCENT/FONT_DESCENT override the bounding-box derivation.
	assertInt(t, "ascent", f.Ascent, 7)
	assertInt(t, "descent", f.Descent, 2)
	assertInt(t, "height", f.Height, 9)
	if f.Name == "" {
		t.Error("font name should parse")
	}
}

func TestParseBDFBoundingBoxFallback(t *testing.T) {
	// Without properties, metrics derive from FONTBOUNDINGBOX.
	const noProps = `STARTFONT 2.1
FONTBOUNDINGBOX 5 9 0 -2
STARTCHAR A
ENCODING 65
DWIDTH 5 0
BBX 1 1 0 0
BITMAP
80
ENDCHAR
ENDFONT
`
	f := loadTestFont(t, noProps)
	assertInt(t, "height", f.Height, 9)
	assertInt(t, "ascent", f.Ascent, 7)
	assertInt(t, "descent", f.Descent, 2)
}

func TestGetGlyphRendersBitmap(t *testing.T) {
	f := loadTestFont(t, testFontBDF)

	g := f.GetGlyph('A')
	if g == nil {
		t.Fatal("'A' should have a glyph")
	}
	assertInt(t, "width", g.Width, 4)
	assertInt(t, "height", g.Height, 6)
	assertInt(t, "advance", g.Advance, 5)
	assertInt(t, "y offset", g.YOffset, 0)

	// Row 0 is 0x60: pixels 1 and 2 set.
	want := [][]int{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
	}
	for y, row := range want {
		for x, wv := range row {
			v, err := g.Bitmap.Get(x, y)
			assertNoErr(t, "glyph pixel", err)
			if v != wv {
				t.Errorf("glyph pixel (%d,%d) = %d, want %d", x, y, v, wv)
			}
		}
	}
}

func TestGetGlyphDescenderOffset(t *testing.T) {
	f := loadTestFont(t, testFontBDF)

	g := f.GetGlyph('g')
	if g == nil {
		t.Fatal("'g' should have a glyph")
	}
	assertInt(t, "descender y offset", g.YOffset, -2)
}

func TestGetGlyphZeroSizeKeepsAdvance(t *testing.T) {
	f := loadTestFont(t, testFontBDF)

	g := f.GetGlyph(' ')
	if g == nil {
		t.Fatal("space should have a glyph entry")
	}
	if g.Bitmap != nil {
		t.Error("zero-size glyph should carry no bitmap")
	}
	assertInt(t, "space advance", g.Advance, 3)
}

func TestGetGlyphUnmappedReturnsNil(t *testing.T) {
	f := loadTestFont(t, testFontBDF)
	if g := f.GetGlyph('Z'); g != nil {
		t.Error("unmapped rune should yield nil, not a substitute")
	}
	if f.HasGlyph('Z') {
		t.Error("HasGlyph should agree")
	}
	if !f.HasGlyph('A') {
		t.Error("'A' is mapped")
	}
}

func TestGetGlyphCached(t *testing.T) {
	f := loadTestFont(t, testFontBDF)
	a := f.GetGlyph('A')
	b := f.GetGlyph('A')
	if a != b {
		t.Error("repeated lookups should hit the cache")
	}
}

func TestParseBDFMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no bounding box", "STARTFONT 2.1\nSTARTCHAR A\nENCODING 65\nBBX 1 1 0 0\nBITMAP\n80\nENDCHAR\n"},
		{"no glyphs", "STARTFONT 2.1\nFONTBOUNDINGBOX 5 9 0 -2\nENDFONT\n"},
		{"bad bitmap row", "STARTFONT 2.1\nFONTBOUNDINGBOX 5 9 0 -2\nSTARTCHAR A\nENCODING 65\nBBX 1 1 0 0\nBITMAP\nZZ\nENDCHAR\n"},
		{"short bbx", "STARTFONT 2.1\nFONTBOUNDINGBOX 5 9 0 -2\nSTARTCHAR A\nENCODING 65\nBBX 1 1\nBITMAP\n80\nENDCHAR\n"},
	}
	for _, c := range cases {
		_, err := ParseBDF([]byte(c.data))
		assertErrIs(t, c.name, err, ErrMalformedFont)
	}
}

func TestParseBDFSkipsUnencodedGlyphs(t *testing.T) {
	const unencoded = `STARTFONT 2.1
FONTBOUNDINGBOX 5 9 0 -2
STARTCHAR weird
ENCODING -1
DWIDTH 5 0
BBX 1 1 0 0
BITMAP
80
ENDCHAR
STARTCHAR A
ENCODING 65
DWIDTH 5 0
BBX 1 1 0 0
BITMAP
80
ENDCHAR
ENDFONT
`
	f := loadTestFont(t, unencoded)
	if f.GetGlyph('A') == nil {
		t.Error("encoded glyph should load")
	}
}

func TestLoadBDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.bdf")
	assertNoErr(t, "write", os.WriteFile(path, []byte(testFontBDF), 0o644))

	f, err := LoadBDF(path)
	assertNoErr(t, "load", err)
	if f.GetGlyph('A') == nil {
		t.Error("loaded font should resolve glyphs")
	}

	_, err = LoadBDF(filepath.Join(t.TempDir(), "missing.bdf"))
	if err == nil {
		t.Error("missing file should error")
	}
}
