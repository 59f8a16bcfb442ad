/*
Package sampler evaluates expressions at many points of the complex plane.

Two kinds of sweeps are supported. A grid sweep evaluates an expression
in z for every point of a rectangular grid. A contour sweep evaluates a
real-valued expression in x along the real axis, forming z = x + y·i from its
result, and evaluates the main expression at z.

Only finite results are collected. Points are returned in scan order:
for a grid sweep x is the outer loop and y the inner loop.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sampler

import (
	"github.com/npillmayer/cxcalc"
	"github.com/npillmayer/cxcalc/evaluator"
	"github.com/npillmayer/cxcalc/variables"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cxcalc.sampler'.
func tracer() tracing.Trace {
	return tracing.Select("cxcalc.sampler")
}

// Reserved variable names for sweeps.
const (
	PlaneVariable = "z" // complex plane, used in main expressions
	LineVariable  = "x" // real line, used in contour expressions
)

// Range is an integer interval [From…To], subdivided into Subdivisions
// steps per unit. Sampling [-1…1] with 2 subdivisions results in samples
// at -1, -0.5, 0, 0.5 and 1.
//
// Ranges are expected to have From ≤ To.
type Range struct {
	From, To     int
	Subdivisions int
}

func (r Range) subdivisions() int {
	if r.Subdivisions < 1 {
		return 1
	}
	return r.Subdivisions
}

// Steps returns the first and last step index of the range.
func (r Range) Steps() (int, int) {
	return r.From * r.subdivisions(), r.To * r.subdivisions()
}

// At returns the coordinate of a step index.
func (r Range) At(step int) float32 {
	return float32(step) / float32(r.subdivisions())
}

// Len returns the number of samples of the range.
func (r Range) Len() int {
	first, last := r.Steps()
	if last < first {
		return 0
	}
	return last - first + 1
}

// Grid evaluates postfix for every point of the grid spanned by x and y.
// Points are tagged with Row = y-step and Col = x-step.
//
// If postfix does not contain variable z, it is evaluated once and the
// result is tagged (1,1).
func Grid(postfix cxcalc.Tokens, x, y Range) []cxcalc.Point {
	if !postfix.Contains(PlaneVariable) {
		if v, ok := evaluator.Evaluate(postfix); ok && cxcalc.IsFinite(v) {
			return []cxcalc.Point{{Value: v, Row: 1, Col: 1}}
		}
		return nil
	}
	points := make([]cxcalc.Point, 0, x.Len()*y.Len())
	xfirst, xlast := x.Steps()
	yfirst, ylast := y.Steps()
	for j := xfirst; j <= xlast; j++ {
		for i := yfirst; i <= ylast; i++ {
			z := complex(x.At(j), y.At(i))
			v, ok := evaluator.Evaluate(variables.Inline(postfix, PlaneVariable, z))
			if ok && cxcalc.IsFinite(v) {
				points = append(points, cxcalc.Point{Value: v, Row: i, Col: j})
			}
		}
	}
	tracer().Debugf("grid sweep of %v: %d points", postfix, len(points))
	return points
}

// Contour evaluates postfix along a curve. For every step of x, contour is
// evaluated with x bound to the step's coordinate, giving y. postfix then
// is evaluated at z = x + y·i. Points are tagged (step, step).
//
// If the contour cannot be evaluated, the sweep stops and returns the points
// collected so far.
func Contour(postfix cxcalc.Tokens, x Range, contour cxcalc.Tokens) []cxcalc.Point {
	curve := func(xval float32) (float32, bool) {
		y, ok := evaluator.Evaluate(variables.Bind(contour, LineVariable, xval))
		return real(y), ok
	}
	points := sweep(postfix, x, curve)
	tracer().Debugf("contour sweep of %v along %v: %d points", postfix, contour, len(points))
	return points
}

func sweep(postfix cxcalc.Tokens, x Range, curve func(float32) (float32, bool)) []cxcalc.Point {
	points := make([]cxcalc.Point, 0, x.Len())
	first, last := x.Steps()
	for j := first; j <= last; j++ {
		xval := x.At(j)
		y, ok := curve(xval)
		if !ok {
			tracer().Debugf("contour undefined at x=%g, stopping", xval)
			break
		}
		v, ok := evaluator.Evaluate(variables.Inline(postfix, PlaneVariable, complex(xval, y)))
		if ok && cxcalc.IsFinite(v) {
			points = append(points, cxcalc.Point{Value: v, Row: j, Col: j})
		}
	}
	return points
}
