package grammar

import (
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/cxcalc"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
	"golang.org/x/text/width"
)

// Token values for the lexer. Delimiters get their own token type, everything
// else is a run to be classified after scanning.
const (
	tokRun int = iota + 1
	tokOperator
	tokLParen
	tokRParen
)

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time creation of the lexer

func initLexer() {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`[\+\-\*/\^]`), makeToken(tokOperator))
		lexer.Add([]byte(`\(`), makeToken(tokLParen))
		lexer.Add([]byte(`\)`), makeToken(tokRParen))
		lexer.Add([]byte(`[^\+\-\*/\^\(\)]+`), makeToken(tokRun))
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("cannot compile expression lexer: %v", lexerErr)
		}
	})
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// Normalize prepares user input for tokenizing. It folds wide (full-width)
// variants of characters to their narrow form and removes all white space.
func Normalize(input string) string {
	input = width.Narrow.String(input)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
}

// Tokenize splits an expression into tokens. Input must not contain white space
// (see Normalize).
//
// Each of '+', '-', '*', '/', '^', '(' and ')' results in a token of its own.
// Runs of other characters are classified as function names, variables
// (letters only, with the exception of the imaginary marker 'i') or literals.
// Literals are converted to numbers at this point.
//
// Input which neither contains an operator nor the name of a function results
// in an empty sequence. This excludes plain literals or plain variables.
func Tokenize(input string) cxcalc.Tokens {
	if !hasOperatorOrFunction(input) {
		tracer().Debugf("no operator and no function in %q, nothing to tokenize", input)
		return cxcalc.Tokens{}
	}
	initLexer()
	if lexerErr != nil {
		return cxcalc.Tokens{}
	}
	scanner, err := lexer.Scanner([]byte(input))
	if err != nil {
		tracer().Errorf("cannot scan %q: %v", input, err)
		return cxcalc.Tokens{}
	}
	seq := make(cxcalc.Tokens, 0, len(input)/2+1)
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if err != nil {
			tracer().Errorf("cannot tokenize %q: %v", input, err)
			return cxcalc.Tokens{}
		}
		t := tok.(*lexmachine.Token)
		lexeme := string(t.Lexeme)
		switch t.Type {
		case tokOperator:
			seq = append(seq, cxcalc.NewOperator(lexeme[0]))
		case tokLParen:
			seq = append(seq, cxcalc.Token{Kind: cxcalc.LeftParen, Text: lexeme})
		case tokRParen:
			seq = append(seq, cxcalc.Token{Kind: cxcalc.RightParen, Text: lexeme})
		default:
			seq = append(seq, classify(lexeme))
		}
	}
	tracer().Debugf("tokens: %v", seq)
	return seq
}

func hasOperatorOrFunction(input string) bool {
	if strings.ContainsAny(input, cxcalc.Operators) {
		return true
	}
	for _, f := range cxcalc.FunctionNames {
		if strings.Contains(input, f) {
			return true
		}
	}
	return false
}

func classify(lexeme string) cxcalc.Token {
	if cxcalc.IsFunctionName(lexeme) {
		return cxcalc.NewFunction(lexeme)
	}
	if IsName(lexeme) {
		return cxcalc.NewVariable(lexeme)
	}
	v := cxcalc.ParseLiteral(lexeme)
	if strings.Contains(lexeme, cxcalc.ImaginaryMarker) {
		return cxcalc.Token{Kind: cxcalc.Imaginary, Text: lexeme, Value: imag(v)}
	}
	return cxcalc.Token{Kind: cxcalc.Number, Text: lexeme, Value: real(v)}
}

// IsName is a predicate: is s a run of letters other than the imaginary marker?
func IsName(s string) bool {
	if s == "" || s == cxcalc.ImaginaryMarker {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
