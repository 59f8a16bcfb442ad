package grapher

import (
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/cxcalc"
)

// Viewport is a canvas onto which complex values are projected. The canvas
// height is divided into 2·Divisions unit squares, with the origin at the
// crossing of the two grid lines nearest to the center. Radius is the size
// of point markers.
type Viewport struct {
	Width, Height float64
	Divisions     int
	Radius        float64
}

// DefaultViewport returns a viewport configured by keys 'grapher.width',
// 'grapher.height', 'grapher.divisions' and 'grapher.radius', falling back
// to a 600×600 canvas with 10 divisions.
func DefaultViewport() Viewport {
	return Viewport{
		Width:     cxcalc.ConfigFloat("grapher.width", 600),
		Height:    cxcalc.ConfigFloat("grapher.height", 600),
		Divisions: cxcalc.ConfigInt("grapher.divisions", 10),
		Radius:    cxcalc.ConfigFloat("grapher.radius", 1),
	}
}

// Scale returns the size of a unit square.
func (vp Viewport) Scale() float64 {
	d := vp.Divisions
	if d < 1 {
		d = 1
	}
	return vp.Height / float64(2*d)
}

// Grid returns the number of horizontal and vertical unit squares.
func (vp Viewport) Grid() (rows, cols int) {
	scale := vp.Scale()
	return int(math.Floor(vp.Height / scale)), int(math.Floor(vp.Width / scale))
}

// Origin returns the grid line indices of the imaginary axis (m) and the
// real axis (n).
func (vp Viewport) Origin() (m, n int) {
	rows, cols := vp.Grid()
	return int(math.Ceil(float64(cols) / 2)), int(math.Ceil(float64(rows) / 2))
}

// Project maps a complex value to canvas coordinates, y growing downwards.
// Values outside of the canvas are reported as not visible.
func (vp Viewport) Project(v complex64) (arithm.Pair, bool) {
	scale := vp.Scale()
	m, n := vp.Origin()
	x := (float64(real(v)) + float64(m)) * scale
	y := vp.Height - (float64(imag(v))+float64(n))*scale
	if x < 0 || x > vp.Width || y < 0 || y > vp.Height {
		return arithm.Origin, false
	}
	return arithm.P(x, y), true
}
