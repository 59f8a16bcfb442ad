package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cxcalc.cli'
func tracer() tracing.Trace {
	return tracing.Select("cxcalc.cli")
}
