package ledgrid

// PixelBuffer is the flat RGB canvas shared by the compositor and the LED
// renderer. Writes are silently clipped to the buffer bounds: by the time
// pixels land here, out-of-range simply means off-panel.
//
// The buffer tracks a dirty region so the LED pass can skip frames whose
// content did not change.
type PixelBuffer struct {
	width  int
	height int
	pix    []RGB

	dirty       bool
	dirtyRegion *dirtyRect
}

type dirtyRect struct {
	x1, y1, x2, y2 int
}

// NewPixelBuffer creates a black canvas. Panics if either dimension is not
// positive.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width <= 0 || height <= 0 {
		panic("ledgrid: pixel buffer dimensions must be positive")
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
		dirty:  true,
	}
}

// Width returns the canvas width in pixels.
func (pb *PixelBuffer) Width() int { return pb.width }

// Height returns the canvas height in pixels.
func (pb *PixelBuffer) Height() int { return pb.height }

// SetPixel writes c at (x, y). Off-canvas writes are dropped.
func (pb *PixelBuffer) SetPixel(x, y int, c RGB) {
	if x < 0 || x >= pb.width || y < 0 || y >= pb.height {
		return
	}
	pb.pix[y*pb.width+x] = c
	pb.markDirty(x, y, x, y)
}

// GetPixel reads the color at (x, y). Off-canvas reads return black.
func (pb *PixelBuffer) GetPixel(x, y int) RGB {
	if x < 0 || x >= pb.width || y < 0 || y >= pb.height {
		return RGB{}
	}
	return pb.pix[y*pb.width+x]
}

// Fill sets every pixel to c.
func (pb *PixelBuffer) Fill(c RGB) {
	for i := range pb.pix {
		pb.pix[i] = c
	}
	pb.dirty = true
	pb.dirtyRegion = nil
}

// Clear sets every pixel to black.
func (pb *PixelBuffer) Clear() {
	pb.Fill(RGB{})
}

// Blit copies src onto the buffer with its origin at (x, y), clipped to
// both buffers. When keyColor is non-nil, source pixels of that exact
// color are treated as transparent.
func (pb *PixelBuffer) Blit(src *PixelBuffer, x, y int, keyColor *RGB) {
	srcX := max(0, -x)
	srcY := max(0, -y)
	dstX := max(0, x)
	dstY := max(0, y)

	copyW := min(src.width-srcX, pb.width-dstX)
	copyH := min(src.height-srcY, pb.height-dstY)
	if copyW <= 0 || copyH <= 0 {
		return
	}

	for cy := 0; cy < copyH; cy++ {
		srcRow := (srcY + cy) * src.width
		dstRow := (dstY + cy) * pb.width
		for cx := 0; cx < copyW; cx++ {
			c := src.pix[srcRow+srcX+cx]
			if keyColor != nil && c == *keyColor {
				continue
			}
			pb.pix[dstRow+dstX+cx] = c
		}
	}
	pb.markDirty(dstX, dstY, dstX+copyW-1, dstY+copyH-1)
}

// IsDirty reports whether the buffer changed since the last ClearDirty.
func (pb *PixelBuffer) IsDirty() bool { return pb.dirty }

// DirtyRegion returns the bounding box of changed pixels as
// (x1, y1, x2, y2) inclusive. ok is false when the whole buffer should be
// treated as dirty.
func (pb *PixelBuffer) DirtyRegion() (x1, y1, x2, y2 int, ok bool) {
	if pb.dirtyRegion == nil {
		return 0, 0, 0, 0, false
	}
	r := pb.dirtyRegion
	return r.x1, r.y1, r.x2, r.y2, true
}

// ClearDirty resets dirty tracking after a render pass consumed the frame.
func (pb *PixelBuffer) ClearDirty() {
	pb.dirty = false
	pb.dirtyRegion = nil
}

// markDirty grows the dirty bounding box to cover the given inclusive
// rectangle.
func (pb *PixelBuffer) markDirty(x1, y1, x2, y2 int) {
	pb.dirty = true
	if pb.dirtyRegion == nil {
		pb.dirtyRegion = &dirtyRect{x1: x1, y1: y1, x2: x2, y2: y2}
		return
	}
	r := pb.dirtyRegion
	r.x1 = min(r.x1, x1)
	r.y1 = min(r.y1, y1)
	r.x2 = max(r.x2, x2)
	r.y2 = max(r.y2, y2)
}
