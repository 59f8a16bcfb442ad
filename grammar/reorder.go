package grammar

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/cxcalc"
)

// Precedence returns the binding strength of an operator or function token.
// Functions and '^' bind tightest. Tokens which are neither operators nor
// functions have precedence 0.
func Precedence(t cxcalc.Token) int {
	switch t.Kind {
	case cxcalc.Function:
		return 3
	case cxcalc.Operator:
		switch t.Text {
		case "^":
			return 3
		case "*", "/":
			return 2
		case "+", "-":
			return 1
		}
	}
	return 0
}

// Reorder converts an infix token sequence to operand-first order.
// Function tokens are moved behind their argument, binary operators behind
// both of their operands.
//
// Operators of equal precedence are grouped from left to right, i.e.
// "2^3^2" is read as "(2^3)^2". A closing parenthesis without a matching
// opening one empties the operator stack; an unmatched opening parenthesis
// ends up in the output. In both cases the result will not evaluate.
func Reorder(infix cxcalc.Tokens) cxcalc.Tokens {
	stack := linkedliststack.New() // stack of operators, functions and '('
	out := make(cxcalc.Tokens, 0, len(infix))
	for _, t := range infix {
		switch t.Kind {
		case cxcalc.LeftParen:
			stack.Push(t)
		case cxcalc.RightParen:
			for {
				top, ok := stack.Pop()
				if !ok {
					tracer().Debugf("unbalanced ')' in expression")
					break
				}
				if top.(cxcalc.Token).Kind == cxcalc.LeftParen {
					break
				}
				out = append(out, top.(cxcalc.Token))
			}
		case cxcalc.Operator, cxcalc.Function:
			top, ok := stack.Peek()
			if !ok || top.(cxcalc.Token).Kind == cxcalc.LeftParen {
				stack.Push(t)
				continue
			}
			if Precedence(t) > Precedence(top.(cxcalc.Token)) {
				stack.Push(t)
				continue
			}
			stack.Pop()
			out = append(out, top.(cxcalc.Token))
			for {
				top, ok = stack.Peek()
				if !ok || Precedence(t) >= Precedence(top.(cxcalc.Token)) {
					break
				}
				stack.Pop()
				out = append(out, top.(cxcalc.Token))
			}
			stack.Push(t)
		default:
			out = append(out, t)
		}
	}
	for !stack.Empty() {
		top, _ := stack.Pop()
		out = append(out, top.(cxcalc.Token))
	}
	tracer().Debugf("postfix: %v", out)
	return out
}

// Parse normalizes, tokenizes and re-orders an expression.
func Parse(input string) cxcalc.Tokens {
	return Reorder(Tokenize(Normalize(input)))
}
