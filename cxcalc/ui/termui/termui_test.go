package termui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.cli")
	defer teardown()
	//
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"name", "value"})
	tw.AppendRow(table.Row{"a", "1+2i"})
	for i, x := range []struct {
		item     interface{}
		contains string
	}{
		{item: "hello", contains: "▶ hello\n"},
		{item: errors.New("oops"), contains: "error: oops"},
		{item: map[string]interface{}{"re": 1}, contains: `"re": 1`},
		{item: tw, contains: "1+2i"},
		{item: 42, contains: "object of type int"},
	} {
		var buf bytes.Buffer
		ok, err := DefaultFormatter{}.Format(x.item, &buf)
		if !ok || err != nil {
			t.Errorf("test %d: formatter failed: %v", i, err)
		}
		if !strings.Contains(buf.String(), x.contains) {
			t.Errorf("test %d: expected output to contain %q, is %q", i, x.contains, buf.String())
		}
	}
}

func TestFilterReplInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.cli")
	defer teardown()
	//
	if _, ok := filterReplInput('a'); !ok {
		t.Errorf("expected regular input to pass")
	}
	if _, ok := filterReplInput(26); ok { // ctrl-z
		t.Errorf("expected ctrl-z to be blocked")
	}
}
