package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/itchyny/gojq"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/cxcalc"
	"github.com/npillmayer/cxcalc/calculator"
	"github.com/npillmayer/cxcalc/cxcalc/ui/termui"
	"github.com/npillmayer/cxcalc/grapher"
	"github.com/npillmayer/cxcalc/variables"
)

// Formatter formats calculator items for terminal output.
type Formatter struct {
	termui.DefaultFormatter
	Digits int32
	Polar  bool
}

func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("cli.Format called for item %T", item)
	switch t := item.(type) {
	case complex64:
		item = f.value(t)
	case calculator.Calculation:
		s := t.Format(f.Digits, f.Polar)
		if t.Saved != "" {
			s += "  → " + t.Saved
		}
		item = s
	case []calculator.Calculation:
		item = "no calculations"
		if len(t) > 0 {
			item = historyAsTable(t, f.Digits, f.Polar)
		}
	case []variables.Entry:
		item = "no variables"
		if len(t) > 0 {
			item = variablesAsTable(t, f.Digits, f.Polar)
		}
	case grapher.Function:
		item = pointsAsTable(t, f.Digits)
	}
	return f.DefaultFormatter.Format(item, w)
}

func (f Formatter) value(v complex64) string {
	if f.Polar {
		return cxcalc.FormatPolar(v, f.Digits)
	}
	return cxcalc.Format(v, f.Digits)
}

// --- Tables ----------------------------------------------------------------

func historyAsTable(history []calculator.Calculation, digits int32, polar bool) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("History")
	tw.AppendHeader(table.Row{"#", "expression", "value", "saved as"})
	for i, c := range history {
		v := cxcalc.Format(c.Value, digits)
		if polar {
			v = cxcalc.FormatPolar(c.Value, digits)
		}
		tw.AppendRow(table.Row{i + 1, c.Input, v, c.Saved})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func variablesAsTable(entries []variables.Entry, digits int32, polar bool) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Variables")
	tw.AppendHeader(table.Row{"id", "name", "value"})
	for _, e := range entries {
		v := cxcalc.Format(e.Value, digits)
		if polar {
			v = cxcalc.FormatPolar(e.Value, digits)
		}
		tw.AppendRow(table.Row{e.ID, e.Name, v})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func pointsAsTable(f grapher.Function, digits int32) table.Writer {
	tw := table.NewWriter()
	if f.Contour != "" {
		tw.SetTitle("%s along %s", f.Expr, f.Contour)
	} else {
		tw.SetTitle("%s", f.Expr)
	}
	tw.AppendHeader(table.Row{"row", "col", "value"})
	for _, p := range f.Points {
		tw.AppendRow(table.Row{p.Row, p.Col, cxcalc.Format(p.Value, digits)})
	}
	tw.AppendFooter(table.Row{"", "points", len(f.Points)})
	tw.SetStyle(table.StyleLight)
	return tw
}

// --- JSON ------------------------------------------------------------------

type pointJSON struct {
	Re  float32 `json:"re"`
	Im  float32 `json:"im"`
	Row int     `json:"row"`
	Col int     `json:"col"`
}

type functionJSON struct {
	Expr    string      `json:"expression"`
	Contour string      `json:"contour,omitempty"`
	Points  []pointJSON `json:"points"`
}

func functionAsJSON(f grapher.Function) functionJSON {
	fj := functionJSON{Expr: f.Expr, Contour: f.Contour, Points: make([]pointJSON, len(f.Points))}
	for i, p := range f.Points {
		fj.Points[i] = pointJSON{Re: real(p.Value), Im: imag(p.Value), Row: p.Row, Col: p.Col}
	}
	return fj
}

// writeJSON writes a sampled function as JSON. If jq is not empty, it is
// applied as a filter and every result is written on a line of its own.
func writeJSON(w io.Writer, f grapher.Function, jq string) error {
	jsn, err := json.Marshal(functionAsJSON(f))
	if err != nil {
		return err
	}
	if strings.TrimSpace(jq) == "" {
		_, err = fmt.Fprintln(w, string(jsn))
		return err
	}
	query, err := gojq.Parse(jq)
	if err != nil {
		return fmt.Errorf("invalid jq filter: %w", err)
	}
	var doc map[string]interface{} // gojq needs plain JSON types
	if err = json.Unmarshal(jsn, &doc); err != nil {
		return err
	}
	iter := query.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("jq filter failed: %w", err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w, string(out)); err != nil {
			return err
		}
	}
	return nil
}

// --- Dispatch --------------------------------------------------------------

// Output formats for sampled functions.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatSVG   = "svg"
)

// writeFunction writes a sampled function in one of the output formats.
func writeFunction(w io.Writer, f grapher.Function, opts outputOptions) error {
	switch strings.ToLower(opts.format) {
	case formatTable, "":
		_, err := Formatter{Digits: opts.digits}.Format(f, w)
		return err
	case formatJSON:
		return writeJSON(w, f, opts.jq)
	case formatSVG:
		g := &grapher.Graph{Coloring: opts.coloring}
		g.Add(f)
		return grapher.WriteSVG(w, g, grapher.DefaultViewport())
	}
	return fmt.Errorf("unknown output format %q", opts.format)
}

type outputOptions struct {
	format   string
	jq       string
	digits   int32
	coloring grapher.ColorOption
}
