/*
Package cxcalc is a calculator and grapher for complex numbers.

An expression string is split into tokens, re-ordered into operand-first
(postfix) order, and reduced to a single complex value. The same reordered
expression may be sampled across a rectangle of the complex plane or along
a contour curve, producing tagged points for visualization.

Sub-packages:

   grammar     tokenizer and shunting-yard re-orderer
   evaluator   reduction of postfix token sequences to complex values
   variables   variable store and inlining of named values
   sampler     grid and contour sweeps
   calculator  interactive calculator session with history
   grapher     intervals, colouring, viewport mapping and SVG output

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cxcalc

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cxcalc'.
func tracer() tracing.Trace {
	return tracing.Select("cxcalc")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// ConfigInt returns an integer configuration value for key, or dflt if either no
// configuration is loaded or the key is not set.
func ConfigInt(key string, dflt int) int {
	if Configuration == nil || !Configuration.Exists(key) {
		return dflt
	}
	return Configuration.Int(key)
}

// ConfigFloat returns a float configuration value for key, or dflt.
func ConfigFloat(key string, dflt float64) float64 {
	if Configuration == nil || !Configuration.Exists(key) {
		return dflt
	}
	return Configuration.Float64(key)
}
