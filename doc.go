// Package ledgrid is a desktop simulator for indexed-color LED matrix
// displays.
//
// Ledgrid reproduces the compositing semantics of a constrained embedded
// graphics stack (palettes, packed bitmaps, tile grids, scene-graph
// groups, and BDF bitmap-font labels) pixel for pixel, then visualizes
// the result as a physical LED panel with circular diodes, a brightness
// curve, and dome highlights. Application code exercised against the
// simulator behaves identically when later run on real hardware.
//
// # Quick start
//
// The simplest way to get started is a [Device], which wires a [Display]
// to an [LEDMatrix] and drives a window loop for you:
//
//	dev := ledgrid.NewDevice(ledgrid.DeviceConfig{})
//	dev.Initialize()
//
//	font, _ := ledgrid.LoadBDF("fonts/tom-thumb.bdf")
//	amber := ledgrid.RGBFromHex(0xFFA000)
//	label := ledgrid.NewLabel(font, ledgrid.LabelConfig{
//		Text:  "HELLO",
//		Color: &amber,
//	})
//
//	root := ledgrid.NewGroup()
//	root.Append(label.Group())
//	dev.Show(root)
//	dev.Run(nil)
//
// For full control, own the pieces directly: build a [Group] tree out of
// [TileGrid] nodes, hand it to a [Display] with [Display.Show], and call
// [Display.Refresh] once per tick. The flattened canvas lands on the
// [LEDMatrix], whose [LEDMatrix.Render] performs the circular-LED pass
// and whose [LEDMatrix.SaveScreenshot] persists the visualization.
//
// # Scene graph
//
// Scenes are trees of [Group] and [TileGrid] values. A group carries an
// integer offset, an integer scale, and a hidden flag that skips its
// whole subtree; children composite in append order, so later siblings
// paint over earlier ones. A tile grid views one [Bitmap] through one
// [Palette]; palette entries marked transparent are never written to the
// canvas.
//
// The compositor is single-threaded and cooperative: mutate bitmaps and
// groups strictly between refreshes, never during one. Frame pacing
// belongs to the caller.
package ledgrid
