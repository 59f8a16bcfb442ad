/*
Package grapher prepares sampled functions for display.

A plot request names a function in z, intervals for the real and imaginary
axis and a precision (subdivisions per unit) for each. If a contour in x is
given, the function is sampled along the contour, otherwise on the grid
spanned by the intervals.

Intervals use the usual notation for open and closed bounds:

   [-10,10]   (-10,10)   [0,5)   -3:3

Points are coloured by their sample indices and projected onto a canvas
divided into unit squares. Graphs may be written as SVG.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grapher

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cxcalc.grapher'.
func tracer() tracing.Trace {
	return tracing.Select("cxcalc.grapher")
}
