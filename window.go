package ledgrid

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a desktop window visualizing the device's LED surface and
// drives the frame loop at 60 ticks per second. Each tick calls update
// (when non-nil), then refreshes the display. Returning an error from
// update stops the loop; return ebiten.Termination to stop cleanly.
// Run blocks until the window closes and must be called from the main
// goroutine.
func (d *Device) Run(update func() error) error {
	d.Initialize()

	ebiten.SetWindowTitle(d.title)
	b := d.matrix.Surface().Bounds()
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetTPS(60)
	return ebiten.RunGame(&hostGame{device: d, title: d.title, update: update})
}

// hostGame adapts a Device to ebiten's game loop. The matrix renders
// into its own RGBA surface; Draw just uploads that surface to the GPU.
type hostGame struct {
	device  *Device
	title   string
	update  func() error
	surface *ebiten.Image
	ticks   int
}

func (g *hostGame) Update() error {
	if g.update != nil {
		if err := g.update(); err != nil {
			return err
		}
	}
	g.device.Refresh()

	// Refresh the title's FPS readout about twice a second.
	g.ticks++
	if g.ticks%30 == 0 {
		ebiten.SetWindowTitle(fmt.Sprintf("%s (%.0f fps)", g.title, ebiten.ActualFPS()))
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	surf := g.device.matrix.Surface()
	if g.surface == nil {
		b := surf.Bounds()
		g.surface = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.surface.WritePixels(surf.Pix)
	screen.DrawImage(g.surface, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.device.matrix.Surface().Bounds()
	return b.Dx(), b.Dy()
}
