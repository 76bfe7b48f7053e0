package ledgrid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// canvasGrid snapshots a pixel buffer as rows of colors for cmp diffs.
func canvasGrid(pb *PixelBuffer) [][]RGB {
	rows := make([][]RGB, pb.Height())
	for y := range rows {
		rows[y] = make([]RGB, pb.Width())
		for x := range rows[y] {
			rows[y][x] = pb.GetPixel(x, y)
		}
	}
	return rows
}

func TestTileGridDefaultsToWholeBitmap(t *testing.T) {
	bm := NewBitmap(8, 6, 2)
	tg := NewTileGrid(bm, NewPalette(2), TileGridConfig{})

	assertInt(t, "grid width", tg.GridWidth(), 1)
	assertInt(t, "grid height", tg.GridHeight(), 1)
	assertInt(t, "tile width", tg.TileWidth(), 8)
	assertInt(t, "tile height", tg.TileHeight(), 6)
	assertInt(t, "pixel width", tg.PixelWidth(), 8)
	assertInt(t, "pixel height", tg.PixelHeight(), 6)
}

func TestTileGridSetTile(t *testing.T) {
	// A 2-tile sheet: tile 0 on the left, tile 1 on the right.
	sheet := NewBitmap(4, 2, 2)
	tg := NewTileGrid(sheet, NewPalette(2), TileGridConfig{
		Width: 3, Height: 1, TileWidth: 2, TileHeight: 2,
	})

	assertNoErr(t, "set tile", tg.SetTile(2, 0, 1))
	v, err := tg.Tile(2, 0)
	assertNoErr(t, "get tile", err)
	assertInt(t, "tile", v, 1)

	assertNoErr(t, "set flat", tg.SetTileIndex(1, 1))
	v, err = tg.TileIndex(1)
	assertNoErr(t, "get flat", err)
	assertInt(t, "flat tile", v, 1)

	assertErrIs(t, "cell out of range", tg.SetTile(3, 0, 0), ErrOutOfRange)
	assertErrIs(t, "tile out of range", tg.SetTile(0, 0, 2), ErrInvalidValue)
}

func TestTileGridDefaultTile(t *testing.T) {
	sheet := NewBitmap(4, 2, 2)
	tg := NewTileGrid(sheet, NewPalette(2), TileGridConfig{
		Width: 2, Height: 1, TileWidth: 2, TileHeight: 2, DefaultTile: 1,
	})

	for x := 0; x < 2; x++ {
		v, err := tg.Tile(x, 0)
		assertNoErr(t, "get tile", err)
		assertInt(t, "default tile", v, 1)
	}
}

func TestTileGridDefaultTileOutOfRangePanics(t *testing.T) {
	sheet := NewBitmap(4, 2, 2)
	for _, tile := range []int{-1, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for default tile %d", tile)
				}
			}()
			NewTileGrid(sheet, NewPalette(2), TileGridConfig{
				Width: 2, Height: 1, TileWidth: 2, TileHeight: 2, DefaultTile: tile,
			})
		}()
	}
}

func TestCompositeSingleGrid(t *testing.T) {
	canvas := NewPixelBuffer(4, 4)
	root := NewGroup()
	tg := solidGrid(t, 2, 2, Red)
	tg.X, tg.Y = 1, 1
	root.Append(tg)

	root.compositeInto(canvas, 0, 0, 1)

	want := [][]RGB{
		{Black, Black, Black, Black},
		{Black, Red, Red, Black},
		{Black, Red, Red, Black},
		{Black, Black, Black, Black},
	}
	if diff := cmp.Diff(want, canvasGrid(canvas)); diff != "" {
		t.Errorf("canvas mismatch (-want +got):\n%s", diff)
	}
}

func TestCompositePaintersOrder(t *testing.T) {
	canvas := NewPixelBuffer(4, 2)
	root := NewGroup()

	a := solidGrid(t, 3, 2, Red)
	b := solidGrid(t, 3, 2, Green)
	b.X = 1
	root.Append(a)
	root.Append(b)

	root.compositeInto(canvas, 0, 0, 1)

	// Later siblings paint over earlier ones where they overlap.
	assertRGB(t, "a only", canvas.GetPixel(0, 0), Red)
	assertRGB(t, "overlap", canvas.GetPixel(1, 0), Green)
	assertRGB(t, "overlap", canvas.GetPixel(2, 1), Green)
	assertRGB(t, "b only", canvas.GetPixel(3, 0), Green)
}

func TestCompositeTransparentSkipped(t *testing.T) {
	canvas := NewPixelBuffer(2, 1)
	canvas.Fill(Blue)

	bm := NewBitmap(2, 1, 2)
	bm.Set(1, 0, 1)
	pal := NewPalette(2)
	pal.Set(1, Red)
	pal.MakeTransparent(0)
	tg := NewTileGrid(bm, pal, TileGridConfig{})

	root := NewGroup()
	root.Append(tg)
	root.compositeInto(canvas, 0, 0, 1)

	assertRGB(t, "transparent keeps background", canvas.GetPixel(0, 0), Blue)
	assertRGB(t, "opaque paints", canvas.GetPixel(1, 0), Red)
}

func TestCompositeHidden(t *testing.T) {
	canvas := NewPixelBuffer(2, 2)
	root := NewGroup()

	hiddenGrid := solidGrid(t, 2, 2, Red)
	hiddenGrid.Hidden = true
	root.Append(hiddenGrid)
	root.compositeInto(canvas, 0, 0, 1)
	assertRGB(t, "hidden grid", canvas.GetPixel(0, 0), Black)

	// A hidden group hides its whole subtree.
	sub := NewGroup()
	sub.Hidden = true
	sub.Append(solidGrid(t, 2, 2, Green))
	root.Append(sub)
	root.compositeInto(canvas, 0, 0, 1)
	assertRGB(t, "hidden subtree", canvas.GetPixel(0, 0), Black)
}

func TestCompositeGroupScale(t *testing.T) {
	canvas := NewPixelBuffer(6, 6)
	root := NewGroup()
	root.Scale = 2

	tg := solidGrid(t, 2, 2, Yellow)
	tg.X, tg.Y = 1, 1
	root.Append(tg)

	root.compositeInto(canvas, 0, 0, 1)

	// Both the child offset and the pixels double.
	want := [][]RGB{
		{Black, Black, Black, Black, Black, Black},
		{Black, Black, Black, Black, Black, Black},
		{Black, Black, Yellow, Yellow, Yellow, Yellow},
		{Black, Black, Yellow, Yellow, Yellow, Yellow},
		{Black, Black, Yellow, Yellow, Yellow, Yellow},
		{Black, Black, Yellow, Yellow, Yellow, Yellow},
	}
	if diff := cmp.Diff(want, canvasGrid(canvas)); diff != "" {
		t.Errorf("canvas mismatch (-want +got):\n%s", diff)
	}
}

func TestCompositeNestedOffsets(t *testing.T) {
	canvas := NewPixelBuffer(8, 8)

	root := NewGroup()
	inner := NewGroup()
	inner.X, inner.Y = 2, 1
	root.Append(inner)

	tg := solidGrid(t, 1, 1, Cyan)
	tg.X, tg.Y = 3, 2
	inner.Append(tg)

	root.compositeInto(canvas, 0, 0, 1)

	assertRGB(t, "accumulated offset", canvas.GetPixel(5, 3), Cyan)
	assertRGB(t, "origin clear", canvas.GetPixel(0, 0), Black)
}

// asymmetric 2×1 grid: left pixel red, right pixel green.
func asymmetricGrid(t *testing.T) *TileGrid {
	t.Helper()
	bm := NewBitmap(2, 1, 4)
	bm.Set(0, 0, 1)
	bm.Set(1, 0, 2)
	pal := NewPalette(4)
	pal.Set(1, Red)
	pal.Set(2, Green)
	pal.MakeTransparent(0)
	return NewTileGrid(bm, pal, TileGridConfig{})
}

func TestCompositeFlipX(t *testing.T) {
	canvas := NewPixelBuffer(2, 1)
	tg := asymmetricGrid(t)
	tg.FlipX = true

	root := NewGroup()
	root.Append(tg)
	root.compositeInto(canvas, 0, 0, 1)

	assertRGB(t, "left", canvas.GetPixel(0, 0), Green)
	assertRGB(t, "right", canvas.GetPixel(1, 0), Red)
}

func TestCompositeTranspose(t *testing.T) {
	canvas := NewPixelBuffer(1, 2)
	tg := asymmetricGrid(t)
	tg.TransposeXY = true

	root := NewGroup()
	root.Append(tg)
	root.compositeInto(canvas, 0, 0, 1)

	// The 2×1 row becomes a 1×2 column.
	assertRGB(t, "top", canvas.GetPixel(0, 0), Red)
	assertRGB(t, "bottom", canvas.GetPixel(0, 1), Green)
}

func TestCompositeTileSheet(t *testing.T) {
	// A 2-tile sheet of 1×1 tiles: tile 0 red, tile 1 green.
	sheet := NewBitmap(2, 1, 4)
	sheet.Set(0, 0, 1)
	sheet.Set(1, 0, 2)
	pal := NewPalette(4)
	pal.Set(1, Red)
	pal.Set(2, Green)

	tg := NewTileGrid(sheet, pal, TileGridConfig{
		Width: 2, Height: 1, TileWidth: 1, TileHeight: 1,
	})
	tg.SetTile(0, 0, 1)
	tg.SetTile(1, 0, 0)

	canvas := NewPixelBuffer(2, 1)
	root := NewGroup()
	root.Append(tg)
	root.compositeInto(canvas, 0, 0, 1)

	assertRGB(t, "cell 0 shows tile 1", canvas.GetPixel(0, 0), Green)
	assertRGB(t, "cell 1 shows tile 0", canvas.GetPixel(1, 0), Red)
}
