package plot

import "image/color"

// Color identifies the role of a plotted point.
type Color uint8

const (
	// SampleColor marks training samples (green).
	SampleColor Color = iota + 1
	// GroundTruthColor marks the true curve beyond the sample range (blue).
	GroundTruthColor
	// PredictionColor marks model predictions (red).
	PredictionColor
)

var colorNames = map[Color]string{
	SampleColor:      "green",
	GroundTruthColor: "blue",
	PredictionColor:  "red",
}

var colorValues = map[Color]color.RGBA{
	SampleColor:      {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	GroundTruthColor: {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	PredictionColor:  {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
}

// String returns the CSS name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}

	return "unknown"
}

// Value returns the color value used when rasterizing. Unknown colors render black.
func (c Color) Value() color.RGBA {
	if v, ok := colorValues[c]; ok {
		return v
	}

	return color.RGBA{A: 0xff}
}

// Surface accepts points in data coordinates.
type Surface interface {
	PlotPoint(x, y float64, c Color)
}

// Multi fans every point out to each surface in order.
type Multi []Surface

// PlotPoint forwards the point to every non-nil surface.
func (m Multi) PlotPoint(x, y float64, c Color) {
	for _, s := range m {
		if s != nil {
			s.PlotPoint(x, y, c)
		}
	}
}

// Point is a plotted point as seen by a Recorder.
type Point struct {
	X     float64
	Y     float64
	Color Color
}

// Recorder is a Surface that keeps every point it receives, in order.
type Recorder struct {
	points []Point
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// PlotPoint records the point.
func (r *Recorder) PlotPoint(x, y float64, c Color) {
	r.points = append(r.points, Point{X: x, Y: y, Color: c})
}

// Points returns every recorded point.
func (r *Recorder) Points() []Point {
	return r.points
}

// ByColor returns the recorded points of color c.
func (r *Recorder) ByColor(c Color) []Point {
	var out []Point
	for _, p := range r.points {
		if p.Color == c {
			out = append(out, p)
		}
	}

	return out
}

// Len returns the number of recorded points.
func (r *Recorder) Len() int {
	return len(r.points)
}

// PredictionLayer forwards predictions to a surface in PredictionColor. It
// satisfies regression.PredictionObserver.
type PredictionLayer struct {
	surface Surface
}

// NewPredictionLayer creates a layer that draws onto s.
func NewPredictionLayer(s Surface) *PredictionLayer {
	return &PredictionLayer{surface: s}
}

// ObservePrediction plots (x, y).
func (l *PredictionLayer) ObservePrediction(x, y float64) {
	if l.surface != nil {
		l.surface.PlotPoint(x, y, PredictionColor)
	}
}
