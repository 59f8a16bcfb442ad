/*
Package calculator implements an interactive calculator session.

A session holds a variable store and a history of calculations. Variables
may be used in expressions by name. Results may be saved as new variables
automatically.

   s := calculator.NewSession(calculator.SaveResults(true))
   s.Calculate("2*(1+i)")   // 2+2i, saved as 'a'
   s.Calculate("a*a")       // 8i,   saved as 'b'

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/cxcalc"
	"github.com/npillmayer/cxcalc/evaluator"
	"github.com/npillmayer/cxcalc/grammar"
	"github.com/npillmayer/cxcalc/variables"
	"github.com/npillmayer/cxcalc/variables/varparse"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cxcalc.calculator'.
func tracer() tracing.Trace {
	return tracing.Select("cxcalc.calculator")
}

// ErrNoValue flags an expression which could not be evaluated.
var ErrNoValue = errors.New("expression has no value")

// Calculation is an entry in the history of a session.
type Calculation struct {
	Input string    // expression as entered
	Value complex64 // result
	Saved string    // name of the variable the result has been saved to, if any
}

// Format returns a calculation as "input = value".
func (c Calculation) Format(digits int32, polar bool) string {
	if polar {
		return c.Input + " = " + cxcalc.FormatPolar(c.Value, digits)
	}
	return c.Input + " = " + cxcalc.Format(c.Value, digits)
}

// Session is a calculator session. It is not safe for concurrent use.
type Session struct {
	store       *variables.Store
	history     []Calculation // most recent first
	saveResults bool          // save every result as a variable
	polar       bool          // variables are entered in polar form
}

// Option configures a session.
type Option func(*Session)

// WithStore lets a session use an existing variable store.
func WithStore(store *variables.Store) Option {
	return func(s *Session) {
		s.store = store
	}
}

// SaveResults sets whether the result of every calculation is saved as a
// new variable.
func SaveResults(b bool) Option {
	return func(s *Session) {
		s.saveResults = b
	}
}

// Polar sets whether variables are entered as modulus and argument.
func Polar(b bool) Option {
	return func(s *Session) {
		s.polar = b
	}
}

// NewSession creates a calculator session with an empty history.
func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = variables.NewStore()
	}
	return s
}

// Store returns the variable store of a session.
func (s *Session) Store() *variables.Store {
	return s.store
}

// History returns the calculations of a session, most recent first.
func (s *Session) History() []Calculation {
	return s.history
}

// SetSaveResults switches automatic saving of results on or off.
func (s *Session) SetSaveResults(b bool) {
	s.saveResults = b
}

// SavesResults is a predicate: are results saved automatically?
func (s *Session) SavesResults() bool {
	return s.saveResults
}

// SetPolar switches polar entry of variables on or off.
func (s *Session) SetPolar(b bool) {
	s.polar = b
}

// IsPolar is a predicate: are variables entered in polar form?
func (s *Session) IsPolar() bool {
	return s.polar
}

// Calculate evaluates an expression, substituting variables of the session.
// If the expression has a value, it is prepended to the history and, if the
// session saves results, stored as a new variable.
func (s *Session) Calculate(input string) (Calculation, bool) {
	input = strings.TrimSpace(input)
	v, ok := s.eval(input)
	if !ok {
		tracer().Debugf("%q has no value", input)
		return Calculation{Input: input}, false
	}
	c := Calculation{Input: input, Value: v}
	if s.saveResults {
		c.Saved = s.store.Save(v)
	}
	s.history = append([]Calculation{c}, s.history...)
	return c, true
}

func (s *Session) eval(input string) (complex64, bool) {
	postfix := grammar.Parse(input)
	return evaluator.Evaluate(variables.Resolve(postfix, s.store))
}

// Assign evaluates a binding 'name = expression' and stores the result under
// name. The calculation is prepended to the history.
func (s *Session) Assign(binding string) (Calculation, error) {
	b, err := varparse.ParseBinding(binding)
	if err != nil {
		return Calculation{}, err
	}
	v, ok := s.eval(b.Expr)
	if !ok {
		return Calculation{}, fmt.Errorf("%w: %q", ErrNoValue, b.Expr)
	}
	if err = s.store.Set(b.Name, v); err != nil {
		return Calculation{}, err
	}
	c := Calculation{Input: b.Expr, Value: v, Saved: b.Name}
	s.history = append([]Calculation{c}, s.history...)
	return c, nil
}

// SaveVariable stores a value given by its components under a generated name
// and returns the name. Components which are not numbers are taken as 0.
// In polar mode the components are modulus and argument (in radians),
// otherwise real and imaginary part.
func (s *Session) SaveVariable(first, second string) string {
	a, b := parseComponent(first), parseComponent(second)
	var v complex64
	if s.polar {
		v = cxcalc.Polar(a, b)
	} else {
		v = complex(a, b)
	}
	return s.store.Save(v)
}

func parseComponent(s string) float32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0
	}
	return float32(f)
}

// DeleteVariables removes a comma separated list of variables. It returns the
// number of variables removed.
func (s *Session) DeleteVariables(list string) int {
	return s.store.Delete(varparse.Names(list)...)
}

// ClearVariables removes all variables.
func (s *Session) ClearVariables() {
	s.store.Clear()
}

// ClearHistory removes all calculations from the history.
func (s *Session) ClearHistory() {
	s.history = nil
}
