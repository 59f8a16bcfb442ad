package cxcalc

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc")
	defer teardown()
	//
	for i, x := range []struct {
		s string
		v complex64
	}{
		{s: "1", v: 1},
		{s: "2.5", v: 2.5},
		{s: "2i", v: 2i},
		{s: "i2", v: 2i},
		{s: "i", v: 1i},
		{s: "PI", v: complex(float32(math.Pi), 0)},
		{s: "E", v: complex(float32(math.E), 0)},
		{s: "PIi", v: complex(0, float32(math.Pi))},
		{s: "abc", v: 0},
		{s: "x", v: 0},
		{s: "", v: 0},
	} {
		if v := ParseLiteral(x.s); v != x.v {
			t.Errorf("test %d: expected literal %q to be %v, is %v", i, x.s, x.v, v)
		}
	}
}

func TestParseLiteralSingleConstant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc")
	defer teardown()
	//
	// PI is substituted textually, leaving "23.1415927"
	if v := ParseLiteral("2PI"); real(v) != 23.1415927 {
		t.Errorf("expected 2PI to read as 23.1415927, is %v", v)
	}
}

func TestIsFinite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc")
	defer teardown()
	//
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	if !IsFinite(complex(1, -1)) {
		t.Errorf("expected 1-1i to be finite")
	}
	if IsFinite(complex(inf, 0)) || IsFinite(complex(0, nan)) {
		t.Errorf("expected infinite or NaN components to be non-finite")
	}
}

func TestFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc")
	defer teardown()
	//
	for i, x := range []struct {
		v complex64
		s string
	}{
		{v: 0, s: "0"},
		{v: 1, s: "1"},
		{v: 2 - 3i, s: "2-3i"},
		{v: 0.5i, s: "0.5i"},
		{v: -1.25 + 2i, s: "-1.25+2i"},
		{v: complex(float32(1)/3, 0), s: "0.3333"},
	} {
		if s := Format(x.v, 4); s != x.s {
			t.Errorf("test %d: expected %v to format as %q, is %q", i, x.v, x.s, s)
		}
	}
}

func TestFormatPolar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc")
	defer teardown()
	//
	if s := FormatPolar(2i, 2); s != "2∠1.57" {
		t.Errorf("expected 2i in polar form to be 2∠1.57, is %q", s)
	}
}

func TestTokensString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc")
	defer teardown()
	//
	seq := Tokens{NewNumber(2), NewImaginary(3), NewOperator('+'), NewFunction("sin")}
	if s := seq.String(); s != "2 3i + sin" {
		t.Errorf("unexpected token sequence rendering: %q", s)
	}
	if !seq[0].IsOperand() || seq[2].IsOperand() || !seq[3].IsFunction() {
		t.Errorf("token predicates broken")
	}
}
