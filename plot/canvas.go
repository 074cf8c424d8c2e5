package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
)

// ErrInvalidCanvas is returned for a CanvasConfig that cannot be drawn on.
var ErrInvalidCanvas = errors.New("invalid canvas configuration")

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	axisColor  = color.RGBA{A: 0xff}
)

// CanvasConfig describes the raster geometry.
type CanvasConfig struct {
	Width  int     // pixels
	Height int     // pixels
	Scale  float64 // pixels per data unit
	Radius int     // marker radius in pixels
}

// DefaultCanvasConfig returns an 800x800 canvas at 5 pixels per unit with
// 3 pixel markers.
func DefaultCanvasConfig() CanvasConfig {
	return CanvasConfig{Width: 800, Height: 800, Scale: 5, Radius: 3}
}

// Validate reports ErrInvalidCanvas for non-positive sizes or scale and a
// negative radius.
func (c CanvasConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidCanvas, c.Width, c.Height)
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: scale must be positive and finite, got %v", ErrInvalidCanvas, c.Scale)
	}
	if c.Radius < 0 {
		return fmt.Errorf("%w: radius must not be negative, got %d", ErrInvalidCanvas, c.Radius)
	}

	return nil
}

// Canvas is a raster Surface with the data origin at its centre.
type Canvas struct {
	cfg     CanvasConfig
	img     *image.RGBA
	centerX float64
	centerY float64
	plotted int
	clipped int
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas with a white background and black axes.
func NewCanvas(cfg CanvasConfig) (*Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Canvas{
		cfg:     cfg,
		img:     image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		centerX: float64(cfg.Width) / 2,
		centerY: float64(cfg.Height) / 2,
	}
	c.Reset()

	return c, nil
}

// Reset clears every plotted point and redraws the background and axes.
func (c *Canvas) Reset() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	cx, cy := int(c.centerX), int(c.centerY)
	for py := range c.cfg.Height {
		c.img.SetRGBA(cx, py, axisColor)
	}
	for px := range c.cfg.Width {
		c.img.SetRGBA(px, cy, axisColor)
	}
	c.plotted, c.clipped = 0, 0
}

// ToPixel maps data coordinates to pixel coordinates.
func (c *Canvas) ToPixel(x, y float64) (px, py float64) {
	return c.centerX + x*c.cfg.Scale, c.centerY - y*c.cfg.Scale
}

// PlotPoint draws a filled circle centred on (x, y). Markers whose centre is
// off the canvas, or whose coordinates are not finite, are skipped.
func (c *Canvas) PlotPoint(x, y float64, col Color) {
	px, py := c.ToPixel(x, y)
	if math.IsNaN(px) || math.IsNaN(py) || math.IsInf(px, 0) || math.IsInf(py, 0) {
		c.clipped++
		return
	}

	center := image.Point{X: int(math.Round(px)), Y: int(math.Round(py))}
	if !center.In(c.img.Bounds()) {
		c.clipped++
		return
	}

	rgba := col.Value()
	r := c.cfg.Radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			p := image.Point{X: center.X + dx, Y: center.Y + dy}
			if p.In(c.img.Bounds()) {
				c.img.SetRGBA(p.X, p.Y, rgba)
			}
		}
	}
	c.plotted++
}

// Plotted returns how many markers were drawn since the last Reset.
func (c *Canvas) Plotted() int {
	return c.plotted
}

// Clipped returns how many markers were skipped since the last Reset.
func (c *Canvas) Clipped() int {
	return c.clipped
}

// Image returns the backing image. It is live: later plots show up in it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("failed to encode canvas: %w", err)
	}

	return nil
}
