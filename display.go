package ledgrid

// Display is the compositor root: it owns the reference to the current
// scene graph and flattens it onto the LEDMatrix canvas on every refresh.
//
// The walk is depth-first preorder in append order. Effective child
// position is accumulated parent offset × accumulated scale + child
// offset; hidden nodes are skipped with their whole subtree; siblings
// paint in order so later ones win overlapping pixels.
type Display struct {
	// AutoRefresh makes Show composite immediately. When false, callers
	// own frame pacing and must call Refresh explicitly.
	AutoRefresh bool

	width  int
	height int
	matrix *LEDMatrix
	root   Displayable
}

// DisplayConfig carries the optional Display parameters.
type DisplayConfig struct {
	// Brightness is the initial brightness scalar. Zero means full
	// brightness; use Display.SetBrightness to actually turn the panel
	// off.
	Brightness float64

	// ManualRefresh disables AutoRefresh from the start.
	ManualRefresh bool
}

// NewDisplay creates a display compositing onto matrix.
// Panics if matrix is nil.
func NewDisplay(matrix *LEDMatrix, cfg DisplayConfig) *Display {
	if matrix == nil {
		panic("ledgrid: display needs a matrix")
	}
	d := &Display{
		AutoRefresh: !cfg.ManualRefresh,
		width:       matrix.Width(),
		height:      matrix.Height(),
		matrix:      matrix,
	}
	if cfg.Brightness > 0 {
		d.SetBrightness(cfg.Brightness)
	}
	return d
}

// Width returns the display width in pixels.
func (d *Display) Width() int { return d.width }

// Height returns the display height in pixels.
func (d *Display) Height() int { return d.height }

// Matrix returns the LED visualization surface this display renders to.
func (d *Display) Matrix() *LEDMatrix { return d.matrix }

// Root returns the currently shown scene graph, or nil.
func (d *Display) Root() Displayable {
	return d.root
}

// Brightness returns the current brightness scalar.
func (d *Display) Brightness() float64 { return d.matrix.Brightness() }

// SetBrightness sets the global brightness, clamped to [0, 1].
func (d *Display) SetBrightness(brightness float64) {
	d.matrix.SetBrightness(brightness)
	if d.AutoRefresh {
		d.Refresh()
	}
}

// Show replaces the scene graph with root (a *Group or *TileGrid) and,
// under AutoRefresh, composites it immediately. With a nil root,
// subsequent refreshes leave the panel untouched.
func (d *Display) Show(root Displayable) {
	d.root = root
	if d.AutoRefresh {
		d.Refresh()
	}
}

// Refresh flattens the scene graph onto the canvas and runs the LED
// render pass. With no root shown, the refresh is a no-op.
func (d *Display) Refresh() {
	if d.root == nil {
		return
	}
	d.matrix.Canvas().Clear()
	d.root.compositeInto(d.matrix.Canvas(), 0, 0, 1)
	d.matrix.Render()
}
