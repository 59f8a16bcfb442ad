// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'cxcalc.cli'.
func trace() tracing.Trace {
	return tracing.Select("cxcalc.cli")
}

// Formatter writes an item to an output. It returns false if it is unable to
// format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter is able to format strings, hierarchical objects and tables.
// Applications usually embed it into a formatter of their own.
type DefaultFormatter struct{}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		return writeAll(w, "▶ ", t, "\n")
	case error:
		return writeAll(w, "▶ error: ", t.Error(), "\n")
	case map[string]interface{}:
		jsn, err := json.MarshalIndent(t, "  ", "    ")
		if err != nil {
			return false, nil
		}
		return writeAll(w, "▶ Hierarchical object: ", string(jsn), "\n")
	case table.Writer:
		if t == nil {
			return writeAll(w, "▶ (empty table)\n")
		}
		return writeAll(w, t.Render(), "\n")
	default:
		return writeAll(w, fmt.Sprintf("▶ object of type %T\n", t))
	}
}

func writeAll(w io.Writer, parts ...string) (bool, error) {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return false, err
		}
	}
	return true, nil
}
