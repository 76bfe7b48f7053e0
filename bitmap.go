package ledgrid

import "fmt"

// Bitmap is a 2D store of palette indices, packed by bit depth. Each pixel
// holds a value in [0, ValueCount); the depth (1, 2, 4, 8, or 16 bits per
// pixel) is chosen from the value count at construction, matching the
// embedded stack's memory layout.
//
// Pixels are addressable two ways: by (x, y) coordinate or by flat index
// y*width + x. Both modes bounds-check identically.
type Bitmap struct {
	width      int
	height     int
	valueCount int
	bits       int // bits per pixel: 1, 2, 4, 8, or 16
	data       []byte
}

// BlitOptions narrows a Blit to a source sub-rectangle and/or declares one
// source value transparent. The sub-rectangle is [X1, X2) × [Y1, Y2); a
// zero X2 or Y2 means the source's full extent.
type BlitOptions struct {
	X1, Y1, X2, Y2 int

	// SkipValue, when non-nil, is transparency-by-value: destination
	// pixels are left untouched wherever the source pixel equals it.
	SkipValue *int
}

// NewBitmap creates a zero-filled bitmap. Panics if width, height, or
// valueCount is not positive.
func NewBitmap(width, height, valueCount int) *Bitmap {
	if width <= 0 || height <= 0 {
		panic("ledgrid: bitmap dimensions must be positive")
	}
	if valueCount <= 0 {
		panic("ledgrid: bitmap value count must be positive")
	}

	bits := 16
	switch {
	case valueCount <= 2:
		bits = 1
	case valueCount <= 4:
		bits = 2
	case valueCount <= 16:
		bits = 4
	case valueCount <= 256:
		bits = 8
	}

	return &Bitmap{
		width:      width,
		height:     height,
		valueCount: valueCount,
		bits:       bits,
		data:       make([]byte, (width*height*bits+7)/8),
	}
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// ValueCount returns the number of distinct values a pixel can hold.
func (b *Bitmap) ValueCount() int { return b.valueCount }

// BitsPerValue returns the packed depth chosen from the value count.
func (b *Bitmap) BitsPerValue() int { return b.bits }

// Set writes value at (x, y).
func (b *Bitmap) Set(x, y, value int) error {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return fmt.Errorf("pixel (%d, %d): %w", x, y, ErrOutOfRange)
	}
	if value < 0 || value >= b.valueCount {
		return fmt.Errorf("pixel value %d: %w", value, ErrInvalidValue)
	}
	b.setRaw(y*b.width+x, value)
	return nil
}

// Get reads the value at (x, y).
func (b *Bitmap) Get(x, y int) (int, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, fmt.Errorf("pixel (%d, %d): %w", x, y, ErrOutOfRange)
	}
	return b.getRaw(y*b.width + x), nil
}

// SetIndex writes value at flat index i = y*width + x.
func (b *Bitmap) SetIndex(i, value int) error {
	if i < 0 || i >= b.width*b.height {
		return fmt.Errorf("pixel index %d: %w", i, ErrOutOfRange)
	}
	if value < 0 || value >= b.valueCount {
		return fmt.Errorf("pixel value %d: %w", value, ErrInvalidValue)
	}
	b.setRaw(i, value)
	return nil
}

// GetIndex reads the value at flat index i = y*width + x.
func (b *Bitmap) GetIndex(i int) (int, error) {
	if i < 0 || i >= b.width*b.height {
		return 0, fmt.Errorf("pixel index %d: %w", i, ErrOutOfRange)
	}
	return b.getRaw(i), nil
}

// Fill sets every pixel to value. The bitmap is untouched if value is
// invalid.
func (b *Bitmap) Fill(value int) error {
	if value < 0 || value >= b.valueCount {
		return fmt.Errorf("fill value %d: %w", value, ErrInvalidValue)
	}
	if value == 0 {
		clear(b.data)
		return nil
	}
	for i := 0; i < b.width*b.height; i++ {
		b.setRaw(i, value)
	}
	return nil
}

// Blit copies pixels from src so that the source rectangle's origin lands
// at (x, y). The copy is clipped to the intersection of the (optionally
// sub-rected) source and the destination bounds; a negative destination
// offset shifts the source start and shrinks the size symmetrically so
// only the in-bounds remainder copies. A region entirely out of bounds is
// a no-op, never an error. opts may be nil.
func (b *Bitmap) Blit(x, y int, src *Bitmap, opts *BlitOptions) {
	x1, y1 := 0, 0
	x2, y2 := src.width, src.height
	var skip *int
	if opts != nil {
		x1, y1 = opts.X1, opts.Y1
		if opts.X2 > 0 {
			x2 = opts.X2
		}
		if opts.Y2 > 0 {
			y2 = opts.Y2
		}
		skip = opts.SkipValue
	}
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 > src.width {
		x2 = src.width
	}
	if y2 > src.height {
		y2 = src.height
	}

	copyW := min(x2-x1, b.width-x)
	copyH := min(y2-y1, b.height-y)
	if copyW <= 0 || copyH <= 0 {
		return
	}

	// Negative destination offset: shift the source start inward and
	// shrink the copy by the same amount.
	if x < 0 {
		x1 -= x
		copyW += x
		x = 0
	}
	if y < 0 {
		y1 -= y
		copyH += y
		y = 0
	}
	if copyW <= 0 || copyH <= 0 {
		return
	}

	for cy := 0; cy < copyH; cy++ {
		srcRow := (y1 + cy) * src.width
		dstRow := (y + cy) * b.width
		for cx := 0; cx < copyW; cx++ {
			v := src.getRaw(srcRow + x1 + cx)
			if skip != nil && v == *skip {
				continue
			}
			b.setRaw(dstRow+x+cx, v)
		}
	}
}

// setRaw writes a pre-validated value at flat index i.
func (b *Bitmap) setRaw(i, value int) {
	switch b.bits {
	case 8:
		b.data[i] = byte(value)
	case 16:
		b.data[i*2] = byte(value >> 8)
		b.data[i*2+1] = byte(value)
	default: // 1, 2, or 4 bits, MSB first within each byte
		bitPos := i * b.bits
		shift := 8 - b.bits - bitPos%8
		mask := byte(1<<b.bits-1) << shift
		b.data[bitPos/8] = b.data[bitPos/8]&^mask | byte(value)<<shift&mask
	}
}

// getRaw reads the value at flat index i without bounds checks.
func (b *Bitmap) getRaw(i int) int {
	switch b.bits {
	case 8:
		return int(b.data[i])
	case 16:
		return int(b.data[i*2])<<8 | int(b.data[i*2+1])
	default:
		bitPos := i * b.bits
		shift := 8 - b.bits - bitPos%8
		return int(b.data[bitPos/8]>>shift) & (1<<b.bits - 1)
	}
}
