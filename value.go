package cxcalc

import (
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// --- Literals --------------------------------------------------------------

var (
	constPI = formatFloat(float32(math.Pi))
	constE  = formatFloat(float32(math.E))
)

// ParseLiteral converts the text of a literal to a complex value.
//
// The named constants PI and E are substituted textually before parsing.
// Only one kind of constant is substituted per literal, PI taking precedence,
// thus "2PI" will read as "23.1415927". If the text contains the imaginary
// marker, all markers are removed and the remainder is the coefficient of the
// imaginary part, with an empty remainder standing for 1. Text which is not a
// valid number evaluates to 0.
func ParseLiteral(text string) complex64 {
	s := insertConstant(text)
	if strings.Contains(s, ImaginaryMarker) {
		s = strings.ReplaceAll(s, ImaginaryMarker, "")
		if s == "" {
			s = "1"
		}
		return complex(0, parseFloat32(s))
	}
	return complex(parseFloat32(s), 0)
}

func insertConstant(s string) string {
	if strings.Contains(s, "PI") {
		return strings.ReplaceAll(s, "PI", constPI)
	} else if strings.Contains(s, "E") {
		return strings.ReplaceAll(s, "E", constE)
	}
	return s
}

func parseFloat32(s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		tracer().Debugf("literal %q is not a number, using 0", s)
		return 0
	}
	return float32(f)
}

// --- Points ----------------------------------------------------------------

// Point is a sampled value, tagged with the grid coordinates it has been
// sampled at. Row and Col are sample indices, not coordinates.
type Point struct {
	Value complex64
	Row   int
	Col   int
}

// IsFinite is a predicate: are both components of v neither NaN nor infinite?
func IsFinite(v complex64) bool {
	re, im := float64(real(v)), float64(imag(v))
	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}

// Polar creates a complex value from modulus r and argument theta.
func Polar(r, theta float32) complex64 {
	return complex64(cmplx.Rect(float64(r), float64(theta)))
}

// --- Formatting ------------------------------------------------------------

// Format returns v as a string "a+bi", rounded to digits decimal places.
// Zero components are omitted, unless v is zero.
func Format(v complex64, digits int32) string {
	re, im := real(v), imag(v)
	if im == 0 {
		return formatPart(re, digits)
	}
	imstr := formatPart(im, digits) + ImaginaryMarker
	if re == 0 {
		return imstr
	}
	if !strings.HasPrefix(imstr, "-") {
		imstr = "+" + imstr
	}
	return formatPart(re, digits) + imstr
}

// FormatPolar returns v in polar notation "r∠θ", with θ in radians.
func FormatPolar(v complex64, digits int32) string {
	z := complex128(v)
	r, theta := float32(cmplx.Abs(z)), float32(cmplx.Phase(z))
	return formatPart(r, digits) + "∠" + formatPart(theta, digits)
}

func formatPart(f float32, digits int32) string {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return formatFloat(f)
	}
	return decimal.NewFromFloat32(f).Round(digits).String()
}
