/*
Package varparse reads variable names and variable bindings from user input.

A name list is a comma separated list of names, white space being ignored:

   a, b ,cc

A binding assigns an expression to a name:

   w = 2+3i


BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of the software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package varparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cxcalc/grammar"
	"github.com/npillmayer/cxcalc/variables"
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'cxcalc.variables'.
func T() tracing.Trace {
	return tracing.Select("cxcalc.variables")
}

// ErrNoBinding flags input which does not have the form 'name = expression'.
var ErrNoBinding = errors.New("expected binding of the form name=expression")

// === Names =================================================================

// Names splits a comma separated list of names. Empty items are dropped.
// Names are not checked for validity.
func Names(list string) []string {
	list = grammar.Normalize(list)
	var names []string
	for _, n := range strings.Split(list, ",") {
		if n != "" {
			names = append(names, n)
		}
	}
	T().Debugf("name list %q ⟹ %v", list, names)
	return names
}

// === Bindings ==============================================================

// Binding is a name together with an un-evaluated expression.
type Binding struct {
	Name string
	Expr string
}

// ParseBinding reads a binding 'name = expression'. The name has to be a valid
// variable name, the expression is not checked.
func ParseBinding(s string) (Binding, error) {
	eq := strings.IndexByte(s, '=')
	if eq < 0 {
		return Binding{}, fmt.Errorf("%w: %q", ErrNoBinding, s)
	}
	b := Binding{
		Name: grammar.Normalize(s[:eq]),
		Expr: strings.TrimSpace(s[eq+1:]),
	}
	if b.Expr == "" {
		return Binding{}, fmt.Errorf("%w: %q", ErrNoBinding, s)
	}
	if err := variables.CheckName(b.Name); err != nil {
		return Binding{}, err
	}
	return b, nil
}
