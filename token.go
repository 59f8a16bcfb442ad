package cxcalc

import (
	"strconv"
	"strings"
)

// TokenKind is the category of a token.
type TokenKind int8

// Token kinds produced by the tokenizer.
const (
	NoToken TokenKind = iota
	Operator
	Function
	Number
	Imaginary
	Variable
	LeftParen
	RightParen
)

var kindNames = []string{
	"<none>", "Operator", "Function", "Number", "Imaginary", "Variable", "(", ")",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "<unknown>"
	}
	return kindNames[k]
}

// ImaginaryMarker is the reserved identifier for the imaginary unit. It may be
// attached to a numeric literal ("2i", "i2") or stand alone.
const ImaginaryMarker = "i"

// Operators are the binary operators, in a single string for quick lookup.
const Operators = "+-*/^"

// Token is an atomic unit of an expression.
//
// For Number tokens Value holds the real value, for Imaginary tokens the
// coefficient of the imaginary unit. Text holds the lexeme as found in the
// input, or a canonical rendering for synthesized tokens.
type Token struct {
	Kind  TokenKind
	Text  string
	Value float32
}

// NewOperator creates an operator token for one of "+-*/^".
func NewOperator(op byte) Token {
	return Token{Kind: Operator, Text: string(op)}
}

// NewFunction creates a token for a function application.
func NewFunction(name string) Token {
	return Token{Kind: Function, Text: name}
}

// NewNumber creates a token for a real number.
func NewNumber(v float32) Token {
	return Token{Kind: Number, Text: formatFloat(v), Value: v}
}

// NewImaginary creates a token for an imaginary number v·i.
func NewImaginary(v float32) Token {
	return Token{Kind: Imaginary, Text: formatFloat(v) + ImaginaryMarker, Value: v}
}

// NewVariable creates a token for a named value.
func NewVariable(name string) Token {
	return Token{Kind: Variable, Text: name}
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// IsOperand is a predicate: does the token stand for a value?
func (t Token) IsOperand() bool {
	return t.Kind == Number || t.Kind == Imaginary || t.Kind == Variable
}

// IsOperator is a predicate: is the token a binary operator?
func (t Token) IsOperator() bool {
	return t.Kind == Operator
}

// IsFunction is a predicate: is the token a function application?
func (t Token) IsFunction() bool {
	return t.Kind == Function
}

// Complex returns the value of a numeric token. Variable tokens are converted
// as literals, which will be 0 for unresolved names.
func (t Token) Complex() complex64 {
	switch t.Kind {
	case Number:
		return complex(t.Value, 0)
	case Imaginary:
		return complex(0, t.Value)
	case Variable:
		return ParseLiteral(t.Text)
	}
	return 0
}

func (t Token) String() string {
	return t.Text
}

// Tokens is a sequence of tokens, either in infix or in postfix order.
type Tokens []Token

func (seq Tokens) String() string {
	var b strings.Builder
	for i, t := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// Texts returns the lexemes of a token sequence.
func (seq Tokens) Texts() []string {
	s := make([]string, len(seq))
	for i, t := range seq {
		s[i] = t.Text
	}
	return s
}

// Contains is a predicate: does the sequence contain a variable named name?
func (seq Tokens) Contains(name string) bool {
	for _, t := range seq {
		if t.Kind == Variable && t.Text == name {
			return true
		}
	}
	return false
}

// Copy returns a private copy of a token sequence.
func (seq Tokens) Copy() Tokens {
	c := make(Tokens, len(seq))
	copy(c, seq)
	return c
}

// --- Functions -------------------------------------------------------------

// FunctionNames is the closed set of unary functions.
var FunctionNames = []string{
	"sin", "cos", "tan", "csc", "sec", "cot",
	"asin", "acos", "atan",
	"sinh", "cosh", "tanh", "asinh", "acosh", "atanh",
	"inv", "conj", "exp", "ln", "sqrt", "cbrt",
}

var functionSet = func() map[string]bool {
	m := make(map[string]bool, len(FunctionNames))
	for _, f := range FunctionNames {
		m[f] = true
	}
	return m
}()

// IsFunctionName is a predicate: is s one of the predefined function names?
func IsFunctionName(s string) bool {
	return functionSet[s]
}

// IsReserved is a predicate: is name unavailable as a variable name?
// Reserved are the imaginary marker, the named constants and all function names.
func IsReserved(name string) bool {
	return name == ImaginaryMarker || name == "PI" || name == "E" || IsFunctionName(name)
}
