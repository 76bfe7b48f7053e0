package ledgrid

// Device bundles a matrix and display into the facade hardware firmware
// expects: initialize, show a root group, refresh once per tick. It is
// the entry point for porting panel applications onto the simulator
// without touching the scene graph directly.
type Device struct {
	width  int
	height int
	pitch  float64
	title  string

	matrix  *LEDMatrix
	display *Display
}

// DeviceConfig carries the optional Device parameters. The zero value is
// a 64×32 panel with a 3.0mm pitch.
type DeviceConfig struct {
	Width, Height int     // panel size in diodes, default 64×32
	Pitch         float64 // LED pitch in millimeters, default 3.0
	Title         string  // window title when run hosted
}

// NewDevice creates an uninitialized device. Call Initialize before
// showing anything.
func NewDevice(cfg DeviceConfig) *Device {
	w := cfg.Width
	if w <= 0 {
		w = 64
	}
	h := cfg.Height
	if h <= 0 {
		h = 32
	}
	pitch := cfg.Pitch
	if pitch <= 0 {
		pitch = 3.0
	}
	title := cfg.Title
	if title == "" {
		title = "ledgrid"
	}
	return &Device{width: w, height: h, pitch: pitch, title: title}
}

// Initialize allocates the matrix and display. Safe to call more than
// once; later calls are no-ops.
func (d *Device) Initialize() {
	if d.matrix != nil {
		return
	}
	d.matrix = NewLEDMatrix(d.width, d.height, MatrixConfig{Pitch: d.pitch})
	d.display = NewDisplay(d.matrix, DisplayConfig{})
}

// Width returns the panel width in diodes.
func (d *Device) Width() int { return d.width }

// Height returns the panel height in diodes.
func (d *Device) Height() int { return d.height }

// Matrix returns the device's LED matrix, or nil before Initialize.
func (d *Device) Matrix() *LEDMatrix { return d.matrix }

// Display returns the device's display, or nil before Initialize.
func (d *Device) Display() *Display { return d.display }

// Show sets the scene-graph root. No-op before Initialize.
func (d *Device) Show(root Displayable) {
	if d.display != nil {
		d.display.Show(root)
	}
}

// Refresh recomposites the scene and renders the LED surface.
func (d *Device) Refresh() {
	if d.display != nil {
		d.display.Refresh()
	}
}

// SetBrightness sets the panel brightness, clamped to [0, 1].
func (d *Device) SetBrightness(brightness float64) {
	if d.display != nil {
		d.display.SetBrightness(brightness)
	}
}

// Clear blanks the logical canvas. The scene graph repaints it on the
// next Refresh.
func (d *Device) Clear() {
	if d.matrix != nil {
		d.matrix.Clear()
	}
}

// SaveScreenshot writes the current LED surface to a PNG file.
func (d *Device) SaveScreenshot(path string) error {
	if d.matrix == nil {
		return nil
	}
	return d.matrix.SaveScreenshot(path)
}
