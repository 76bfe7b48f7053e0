package ledgrid

import "errors"

// Sentinel errors returned by the core. They are wrapped with context via
// fmt.Errorf("...: %w", ...), so match with errors.Is.
var (
	// ErrOutOfRange reports a coordinate, flat index, or palette index
	// outside its buffer's bounds. Accesses never wrap or clamp.
	ErrOutOfRange = errors.New("ledgrid: index out of range")

	// ErrInvalidValue reports a pixel or tile value that names a slot
	// beyond the owning buffer's value count.
	ErrInvalidValue = errors.New("ledgrid: value out of range")

	// ErrDuplicateChild reports an attempt to attach a scene-graph child
	// that is already attached to a group.
	ErrDuplicateChild = errors.New("ledgrid: item already in a group")

	// ErrMalformedFont reports BDF font data the parser could not make
	// sense of. Distinct from a missing glyph, which is not an error.
	ErrMalformedFont = errors.New("ledgrid: malformed BDF font")
)

// Displayable is the capability shared by everything that can live in a
// Group: it has a position, can be hidden, tracks its parent for
// membership checks, and knows how to composite itself onto a canvas.
// The interface is sealed; *TileGrid and *Group are the implementations.
type Displayable interface {
	parent() *Group
	setParent(*Group)

	// compositeInto flattens the element onto the canvas. offX/offY is the
	// accumulated parent offset in canvas pixels, scale the accumulated
	// integer scale factor.
	compositeInto(canvas *PixelBuffer, offX, offY, scale int)
}
