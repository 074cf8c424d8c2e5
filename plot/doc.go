// Package plot draws training data, ground truth and predictions onto a
// two-dimensional surface.
//
// A Surface only receives data coordinates and a Color. Mapping data to
// pixels is the surface's business: Canvas places the origin at its centre,
// scales both axes by CanvasConfig.Scale and flips y so that positive values
// go up. Points that land outside the canvas are dropped silently.
//
//	canvas, err := plot.NewCanvas(plot.DefaultCanvasConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	canvas.PlotPoint(3, 9, plot.SampleColor)
//	err = canvas.WritePNG(f)
package plot
