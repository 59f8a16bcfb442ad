package grapher

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/cxcalc"
	"github.com/npillmayer/cxcalc/grammar"
	"github.com/npillmayer/cxcalc/sampler"
)

// ColorOption selects which sample index tints a point.
type ColorOption int8

// Coloring of points. Plain points are blue, X and Y tint by row or column
// index, Both tints by both.
const (
	Plain ColorOption = iota
	Both
	X
	Y
)

var colorOptionNames = []string{"plain", "both", "x", "y"}

func (o ColorOption) String() string {
	if o < 0 || int(o) >= len(colorOptionNames) {
		return "<unknown>"
	}
	return colorOptionNames[o]
}

// ParseColorOption reads a color option by name (case insensitive).
func ParseColorOption(s string) (ColorOption, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range colorOptionNames {
		if s == name {
			return ColorOption(i), nil
		}
	}
	return Plain, fmt.Errorf("unknown coloring %q, expected one of %v", s, colorOptionNames)
}

// PointColor returns the fill color for a point. Tinting uses 40 levels per
// sample index, wrapping around at 256.
func PointColor(p cxcalc.Point, option ColorOption) color.RGBA {
	c := color.RGBA{R: 45, G: 45, B: 255, A: 255}
	switch option {
	case X:
		c.R = uint8(p.Row * 40)
	case Y:
		c.G = uint8(p.Col * 40)
	case Both:
		c.R = uint8(p.Row * 40)
		c.G = uint8(p.Col * 40)
	}
	return c
}

// --- Functions -------------------------------------------------------------

// Function is a plotted expression together with its sampled points.
type Function struct {
	Expr    string
	Contour string
	Points  []cxcalc.Point
}

// Request describes a function to plot.
type Request struct {
	Function   string   // expression in z
	Contour    string   // optional expression in x
	X, Y       Interval // ranges on the real and imaginary axis
	XPrecision int      // subdivisions per unit on the real axis
	YPrecision int      // subdivisions per unit on the imaginary axis
}

// NewRequest creates a request for a function on [-10,10]×[-10,10] with
// precision 1.
func NewRequest(function string) Request {
	return Request{
		Function:   function,
		X:          Closed(DefaultLeft, DefaultRight),
		Y:          Closed(DefaultLeft, DefaultRight),
		XPrecision: 1,
		YPrecision: 1,
	}
}

// Plot samples the function of a request. If the contour of the request is
// a valid expression, the function is sampled along the contour. Otherwise it
// is sampled on the grid spanned by the intervals of the request.
//
// If one of the intervals is empty, Plot returns false.
func Plot(req Request) (Function, bool) {
	xr, xok := req.X.Range(req.XPrecision)
	yr, yok := req.Y.Range(req.YPrecision)
	if !xok || !yok {
		tracer().Infof("empty interval %v × %v, nothing to plot", req.X, req.Y)
		return Function{}, false
	}
	f := Function{Expr: grammar.Normalize(req.Function)}
	main := grammar.Parse(req.Function)
	if contour := grammar.Parse(req.Contour); len(contour) > 0 {
		f.Contour = grammar.Normalize(req.Contour)
		f.Points = sampler.Contour(main, xr, contour)
	} else {
		f.Points = sampler.Grid(main, xr, yr)
	}
	tracer().Infof("plotted %q: %d points", f.Expr, len(f.Points))
	return f, true
}

// Graph is a collection of plotted functions.
type Graph struct {
	Functions []Function
	Coloring  ColorOption
}

// Add appends a function to a graph.
func (g *Graph) Add(f Function) {
	g.Functions = append(g.Functions, f)
}

// Clear removes all functions from a graph.
func (g *Graph) Clear() {
	g.Functions = nil
}

// Len returns the total number of points of a graph.
func (g *Graph) Len() int {
	n := 0
	for _, f := range g.Functions {
		n += len(f.Points)
	}
	return n
}
