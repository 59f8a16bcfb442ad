package varparse

import (
	"errors"
	"testing"

	"github.com/npillmayer/cxcalc/variables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.variables")
	defer teardown()
	//
	names := Names(" a, b ,, cc ")
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "cc" {
		t.Errorf("expected [a b cc], have %v", names)
	}
	if len(Names("")) != 0 {
		t.Errorf("expected empty list to contain no names")
	}
}

func TestParseBinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.variables")
	defer teardown()
	//
	b, err := ParseBinding(" w = 2+3i ")
	if err != nil {
		t.Fatal(err)
	}
	if b.Name != "w" || b.Expr != "2+3i" {
		t.Errorf("unexpected binding %+v", b)
	}
	for i, x := range []struct {
		s   string
		err error
	}{
		{s: "w", err: ErrNoBinding},
		{s: "w=", err: ErrNoBinding},
		{s: "sin=1", err: variables.ErrReservedName},
		{s: "i=1", err: variables.ErrReservedName},
		{s: "w2=1", err: variables.ErrInvalidName},
	} {
		if _, err := ParseBinding(x.s); !errors.Is(err, x.err) {
			t.Errorf("test %d: expected error %v for %q, have %v", i, x.err, x.s, err)
		}
	}
}
