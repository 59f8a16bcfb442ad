package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cxcalc"
	"github.com/npillmayer/cxcalc/calculator"
	"github.com/npillmayer/cxcalc/grapher"
	"github.com/npillmayer/cxcalc/variables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCalcStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.cli")
	defer teardown()
	//
	calc := newCalcIntpr(calculator.NewSession(), 4)
	for i, x := range []struct {
		line   string
		stdout string
		stderr string
	}{
		{line: "1+2", stdout: "1+2 = 3"},
		{line: "let a=1+2i", stdout: "1+2i = 1+2i  → a"},
		{line: "a*a", stdout: "a*a = -3+4i"},
		{line: "save 3 4", stdout: "= 3+4i"},
		{line: "vars", stdout: "3+4i"},
		{line: "history", stdout: "a*a"},
		{line: "delete a, b", stderr: "2 variable(s) deleted"},
		{line: "vars", stdout: "no variables"},
		{line: "(1+2", stderr: "no value"},
		{line: "autosave on", stderr: "autosave is on"},
		{line: "2*3", stdout: "2*3 = 6  → "},
		{line: "clear history", stderr: "history cleared"},
		{line: "history", stdout: "no calculations"},
	} {
		var stdout, stderr bytes.Buffer
		calc.execute(x.line, &stdout, &stderr)
		if x.stdout != "" && !strings.Contains(stdout.String(), x.stdout) {
			t.Errorf("test %d: expected %q to print %q, have %q", i, x.line, x.stdout, stdout.String())
		}
		if x.stderr != "" && !strings.Contains(stderr.String(), x.stderr) {
			t.Errorf("test %d: expected %q to report %q, have %q", i, x.line, x.stderr, stderr.String())
		}
	}
}

func TestCalcPolar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.cli")
	defer teardown()
	//
	calc := newCalcIntpr(calculator.NewSession(), 2)
	var stdout, stderr bytes.Buffer
	calc.execute("polar on", &stdout, &stderr)
	if !calc.session.IsPolar() {
		t.Fatalf("expected session to be in polar mode")
	}
	calc.execute("2i*1", &stdout, &stderr)
	if !strings.Contains(stdout.String(), "2∠1.57") {
		t.Errorf("expected polar output, have %q", stdout.String())
	}
	calc.execute("polar", &stdout, &stderr)
	if !calc.session.IsPolar() {
		t.Errorf("expected 'polar' without argument to keep the mode")
	}
	calc.execute("polar off", &stdout, &stderr)
	if calc.session.IsPolar() {
		t.Errorf("expected polar mode to be off")
	}
}

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.cli")
	defer teardown()
	//
	var out bytes.Buffer
	err := evaluate(calculator.NewSession(), []string{"a=1+2i"}, []string{"a*2", "(1", "a+1"},
		Formatter{Digits: 4}, &out)
	if !errors.Is(err, calculator.ErrNoValue) {
		t.Errorf("expected error for expression without value, have %v", err)
	}
	if !strings.Contains(out.String(), "a*2 = 2+4i") || !strings.Contains(out.String(), "a+1 = 2+2i") {
		t.Errorf("unexpected output %q", out.String())
	}
	err = evaluate(calculator.NewSession(), []string{"PI=3"}, []string{"1+1"}, Formatter{}, &out)
	if !errors.Is(err, variables.ErrReservedName) {
		t.Errorf("expected binding of PI to fail, have %v", err)
	}
}

func testFunction() grapher.Function {
	return grapher.Function{Expr: "z", Points: []cxcalc.Point{
		{Value: 1 + 2i, Row: 0, Col: 1},
		{Value: 3, Row: 1, Col: 1},
	}}
}

func TestWriteJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.cli")
	defer teardown()
	//
	for i, x := range []struct {
		jq  string
		out string
	}{
		{jq: "", out: `{"expression":"z","points":[{"re":1,"im":2,"row":0,"col":1},{"re":3,"im":0,"row":1,"col":1}]}` + "\n"},
		{jq: ".points[] | select(.im > 0) | .re", out: "1\n"},
		{jq: "[.points[].row]", out: "[0,1]\n"},
		{jq: ".points | length", out: "2\n"},
	} {
		var buf bytes.Buffer
		if err := writeJSON(&buf, testFunction(), x.jq); err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
		}
		if buf.String() != x.out {
			t.Errorf("test %d: expected %q, have %q", i, x.out, buf.String())
		}
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, testFunction(), ".points[ | ."); err == nil {
		t.Errorf("expected syntax error for jq filter")
	}
	if err := writeJSON(&buf, testFunction(), `error("boom")`); err == nil {
		t.Errorf("expected jq runtime error to be reported")
	}
}

func TestWriteFunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.cli")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := writeFunction(&buf, testFunction(), outputOptions{format: "table", digits: 3}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1+2i") || !strings.Contains(buf.String(), "POINTS") &&
		!strings.Contains(buf.String(), "points") {
		t.Errorf("unexpected table output %q", buf.String())
	}
	buf.Reset()
	if err := writeFunction(&buf, testFunction(), outputOptions{format: "SVG"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("expected SVG output")
	}
	if err := writeFunction(&buf, testFunction(), outputOptions{format: "pdf"}); err == nil {
		t.Errorf("expected error for unknown output format")
	}
}

type fixedPaths string

func (p fixedPaths) ConfigDir() string   { return string(p) }
func (p fixedPaths) LogDir() string      { return string(p) }
func (p fixedPaths) HistoryFile() string { return string(p) + "/history" }

func TestLogDestination(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.cli")
	defer teardown()
	//
	for i, x := range []struct {
		name  string
		paths AppPaths
		dest  string
	}{
		{name: "file:///tmp/calc.log", paths: fixedPaths("/logs"), dest: "file:///tmp/calc.log"},
		{name: "/tmp/calc.log", paths: fixedPaths("/logs"), dest: "file:///tmp/calc.log"},
		{name: "calc.log", paths: fixedPaths("/logs"), dest: "file:///logs/calc.log"},
		{name: "calc.log", paths: fixedPaths(""), dest: "file://calc.log"},
	} {
		if dest := logDestination(x.name, x.paths); dest != x.dest {
			t.Errorf("test %d: expected log destination %q, have %q", i, x.dest, dest)
		}
	}
}

func TestOnOff(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cxcalc.cli")
	defer teardown()
	//
	if b, ok := onOff("ON"); !b || !ok {
		t.Errorf("expected 'ON' to read as on")
	}
	if b, ok := onOff("off"); b || !ok {
		t.Errorf("expected 'off' to read as off")
	}
	if _, ok := onOff(""); ok {
		t.Errorf("expected empty argument to be no switch")
	}
}
