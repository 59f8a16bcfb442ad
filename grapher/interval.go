package grapher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/cxcalc/grammar"
	"github.com/npillmayer/cxcalc/sampler"
)

// Default interval bounds, used if a bound cannot be read.
const (
	DefaultLeft  = -10
	DefaultRight = 10
)

// Bound is one end of an interval. A strict bound is not part of the interval.
type Bound struct {
	Value  int
	Strict bool
}

// Interval is an integer interval with open or closed ends.
type Interval struct {
	Left, Right Bound
}

// Closed creates an interval [from,to].
func Closed(from, to int) Interval {
	return Interval{Left: Bound{Value: from}, Right: Bound{Value: to}}
}

// Range returns the sample range for an interval. Strict bounds are moved
// inwards by one unit. If the result is empty, Range returns false.
func (iv Interval) Range(subdivisions int) (sampler.Range, bool) {
	r := sampler.Range{From: iv.Left.Value, To: iv.Right.Value, Subdivisions: subdivisions}
	if iv.Left.Strict {
		r.From++
	}
	if iv.Right.Strict {
		r.To--
	}
	return r, r.From <= r.To
}

func (iv Interval) String() string {
	l, r := "[", "]"
	if iv.Left.Strict {
		l = "("
	}
	if iv.Right.Strict {
		r = ")"
	}
	return fmt.Sprintf("%s%d,%d%s", l, iv.Left.Value, iv.Right.Value, r)
}

// ParseInterval reads an interval. Brackets may be omitted, resulting in a
// closed interval, and ':' may be used as separator. Bounds which are not
// integers default to DefaultLeft and DefaultRight.
func ParseInterval(s string) Interval {
	s = grammar.Normalize(s)
	iv := Closed(DefaultLeft, DefaultRight)
	if strings.HasPrefix(s, "(") {
		iv.Left.Strict = true
	}
	if strings.HasSuffix(s, ")") {
		iv.Right.Strict = true
	}
	s = strings.Trim(s, "[]()")
	sep := strings.IndexAny(s, ",:")
	if sep < 0 {
		tracer().Debugf("interval %q has no separator, using defaults", s)
		return iv
	}
	if v, err := strconv.Atoi(s[:sep]); err == nil {
		iv.Left.Value = v
	}
	if v, err := strconv.Atoi(s[sep+1:]); err == nil {
		iv.Right.Value = v
	}
	return iv
}

// ParsePrecision reads the number of subdivisions per unit. Input which is
// not a positive integer results in 1.
func ParsePrecision(s string) int {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p < 1 {
		return 1
	}
	return p
}
