package ledgrid

import "fmt"

// TileGrid composites a grid of tiles cut from one Bitmap, colored through
// one Palette. A 1×1 grid whose tile size equals the bitmap is the common
// "sprite" case; larger grids share tile graphics across cells.
//
// Position, visibility, and the flip flags are plain fields, mutated
// between compositor walks.
type TileGrid struct {
	// X, Y is the grid's offset within its parent group, in pixels.
	X, Y int

	// Hidden skips the grid during composition.
	Hidden bool

	// FlipX and FlipY mirror every tile horizontally / vertically.
	// TransposeXY swaps tile axes (90° building block). Transpose is
	// applied before the flips.
	FlipX, FlipY, TransposeXY bool

	bitmap  *Bitmap
	palette *Palette

	tileWidth   int
	tileHeight  int
	gridWidth   int
	gridHeight  int
	tilesPerRow int

	tiles []uint16

	owner *Group
}

// TileGridConfig carries the optional TileGrid parameters. The zero value
// means a 1×1 grid whose tile is the whole bitmap, placed at the origin.
type TileGridConfig struct {
	Width, Height         int // grid size in tiles, default 1×1
	TileWidth, TileHeight int // tile size in pixels, default whole bitmap
	DefaultTile           int // initial tile index for every cell
	X, Y                  int
}

// NewTileGrid creates a tile grid viewing bitmap through palette.
// Panics if bitmap or palette is nil, or if cfg.DefaultTile names a tile
// the bitmap cannot supply.
func NewTileGrid(bitmap *Bitmap, palette *Palette, cfg TileGridConfig) *TileGrid {
	if bitmap == nil {
		panic("ledgrid: tile grid needs a bitmap")
	}
	if palette == nil {
		panic("ledgrid: tile grid needs a palette")
	}

	tw := cfg.TileWidth
	if tw <= 0 {
		tw = bitmap.Width()
	}
	th := cfg.TileHeight
	if th <= 0 {
		th = bitmap.Height()
	}
	gw := cfg.Width
	if gw <= 0 {
		gw = 1
	}
	gh := cfg.Height
	if gh <= 0 {
		gh = 1
	}

	tg := &TileGrid{
		X:           cfg.X,
		Y:           cfg.Y,
		bitmap:      bitmap,
		palette:     palette,
		tileWidth:   tw,
		tileHeight:  th,
		gridWidth:   gw,
		gridHeight:  gh,
		tilesPerRow: max(1, bitmap.Width()/tw),
		tiles:       make([]uint16, gw*gh),
	}
	if cfg.DefaultTile != 0 {
		if cfg.DefaultTile < 0 || cfg.DefaultTile >= tg.tilesAvailable() {
			panic(fmt.Sprintf("ledgrid: default tile %d out of range", cfg.DefaultTile))
		}
		for i := range tg.tiles {
			tg.tiles[i] = uint16(cfg.DefaultTile)
		}
	}
	return tg
}

// Bitmap returns the source bitmap.
func (tg *TileGrid) Bitmap() *Bitmap { return tg.bitmap }

// Palette returns the palette used to resolve colors.
func (tg *TileGrid) Palette() *Palette { return tg.palette }

// GridWidth returns the grid width in tiles.
func (tg *TileGrid) GridWidth() int { return tg.gridWidth }

// GridHeight returns the grid height in tiles.
func (tg *TileGrid) GridHeight() int { return tg.gridHeight }

// TileWidth returns the tile cell width in pixels.
func (tg *TileGrid) TileWidth() int { return tg.tileWidth }

// TileHeight returns the tile cell height in pixels.
func (tg *TileGrid) TileHeight() int { return tg.tileHeight }

// PixelWidth returns the composited width in pixels.
func (tg *TileGrid) PixelWidth() int { return tg.gridWidth * tg.tileWidth }

// PixelHeight returns the composited height in pixels.
func (tg *TileGrid) PixelHeight() int { return tg.gridHeight * tg.tileHeight }

// tilesAvailable is the number of tiles the bitmap can supply.
func (tg *TileGrid) tilesAvailable() int {
	rows := max(1, tg.bitmap.Height()/tg.tileHeight)
	return tg.tilesPerRow * rows
}

// SetTile assigns the tile index for the cell at (x, y).
func (tg *TileGrid) SetTile(x, y, tile int) error {
	if x < 0 || x >= tg.gridWidth || y < 0 || y >= tg.gridHeight {
		return fmt.Errorf("tile cell (%d, %d): %w", x, y, ErrOutOfRange)
	}
	if tile < 0 || tile >= tg.tilesAvailable() {
		return fmt.Errorf("tile index %d: %w", tile, ErrInvalidValue)
	}
	tg.tiles[y*tg.gridWidth+x] = uint16(tile)
	return nil
}

// Tile returns the tile index for the cell at (x, y).
func (tg *TileGrid) Tile(x, y int) (int, error) {
	if x < 0 || x >= tg.gridWidth || y < 0 || y >= tg.gridHeight {
		return 0, fmt.Errorf("tile cell (%d, %d): %w", x, y, ErrOutOfRange)
	}
	return int(tg.tiles[y*tg.gridWidth+x]), nil
}

// SetTileIndex assigns the tile for the cell at flat index i = y*width + x.
func (tg *TileGrid) SetTileIndex(i, tile int) error {
	if i < 0 || i >= len(tg.tiles) {
		return fmt.Errorf("tile cell index %d: %w", i, ErrOutOfRange)
	}
	if tile < 0 || tile >= tg.tilesAvailable() {
		return fmt.Errorf("tile index %d: %w", tile, ErrInvalidValue)
	}
	tg.tiles[i] = uint16(tile)
	return nil
}

// TileIndex returns the tile for the cell at flat index i.
func (tg *TileGrid) TileIndex(i int) (int, error) {
	if i < 0 || i >= len(tg.tiles) {
		return 0, fmt.Errorf("tile cell index %d: %w", i, ErrOutOfRange)
	}
	return int(tg.tiles[i]), nil
}

// --- displayable ---

func (tg *TileGrid) parent() *Group     { return tg.owner }
func (tg *TileGrid) setParent(g *Group) { tg.owner = g }

// compositeInto draws every visible, non-transparent tile pixel onto the
// canvas. offX/offY is the accumulated parent offset, scale the
// accumulated integer scale; the grid's own X/Y is scaled by the parent
// scale like any child offset.
func (tg *TileGrid) compositeInto(canvas *PixelBuffer, offX, offY, scale int) {
	if tg.Hidden {
		return
	}

	baseX := offX + tg.X*scale
	baseY := offY + tg.Y*scale

	// Cell extent on the canvas; transpose swaps the drawn axes.
	cellW, cellH := tg.tileWidth, tg.tileHeight
	if tg.TransposeXY {
		cellW, cellH = cellH, cellW
	}

	for cy := 0; cy < tg.gridHeight; cy++ {
		for cx := 0; cx < tg.gridWidth; cx++ {
			tile := int(tg.tiles[cy*tg.gridWidth+cx])
			srcX := tile % tg.tilesPerRow * tg.tileWidth
			srcY := tile / tg.tilesPerRow * tg.tileHeight
			dstX := baseX + cx*cellW*scale
			dstY := baseY + cy*cellH*scale
			tg.compositeTile(canvas, srcX, srcY, dstX, dstY, cellW, cellH, scale)
		}
	}
}

// compositeTile draws one tile cell, resolving flips and transpose from
// destination-local coordinates back to source pixels.
func (tg *TileGrid) compositeTile(canvas *PixelBuffer, srcX, srcY, dstX, dstY, cellW, cellH, scale int) {
	for dy := 0; dy < cellH; dy++ {
		for dx := 0; dx < cellW; dx++ {
			sx, sy := dx, dy
			if tg.TransposeXY {
				sx, sy = dy, dx
			}
			if tg.FlipX {
				sx = tg.tileWidth - 1 - sx
			}
			if tg.FlipY {
				sy = tg.tileHeight - 1 - sy
			}

			v, err := tg.bitmap.Get(srcX+sx, srcY+sy)
			if err != nil {
				continue // tile extends past the bitmap edge
			}
			if tg.palette.IsTransparent(v) {
				continue
			}
			c := tg.palette.Color(v)

			// Integer scale replicates each pixel into a scale×scale block.
			for ry := 0; ry < scale; ry++ {
				for rx := 0; rx < scale; rx++ {
					canvas.SetPixel(dstX+dx*scale+rx, dstY+dy*scale+ry, c)
				}
			}
		}
	}
}
