package evaluator

import (
	"strconv"

	"github.com/npillmayer/cxcalc"
	"github.com/npillmayer/cxcalc/grammar"
)

// cell is an entry of the working list of an evaluation. It is either a token
// of the input sequence or a placeholder for an intermediate result.
type cell struct {
	cxcalc.Token
	cached int // id of an intermediate result, or 0 for input tokens
}

func (c cell) isFunction() bool {
	return c.cached == 0 && c.Kind == cxcalc.Function
}

func (c cell) isOperator() bool {
	return c.cached == 0 && c.Kind == cxcalc.Operator
}

func (c cell) isOperand() bool {
	return c.cached != 0 || c.IsOperand()
}

// reduction holds the state of a single call to Evaluate.
type reduction struct {
	cells   []cell
	cache   map[int]complex64 // intermediate results
	counter int               // last placeholder id
}

func (r *reduction) value(c cell) complex64 {
	if c.cached != 0 {
		return r.cache[c.cached]
	}
	return c.Complex()
}

// splice replaces n cells at position at by a placeholder for v.
func (r *reduction) splice(at, n int, v complex64) {
	r.counter++
	r.cache[r.counter] = v
	ph := cell{
		Token:  cxcalc.Token{Text: "#" + strconv.Itoa(r.counter)},
		cached: r.counter,
	}
	r.cells[at] = ph
	r.cells = append(r.cells[:at+1], r.cells[at+n:]...)
}

// step performs the left-most possible reduction. It returns false if no
// reduction is possible.
func (r *reduction) step() bool {
	cells := r.cells
	for i := 0; i+1 < len(cells); i++ {
		if cells[i+1].isFunction() { // x f
			v := ApplyFunction(cells[i+1].Text, r.value(cells[i]))
			r.splice(i, 2, v)
			return true
		}
		if i+2 >= len(cells) {
			break
		}
		if !cells[i+1].isOperator() && cells[i+2].isFunction() { // _ x f
			v := ApplyFunction(cells[i+2].Text, r.value(cells[i+1]))
			r.splice(i+1, 2, v)
			return true
		}
		if cells[i+2].isOperator() { // x y op
			v := ApplyOperator(cells[i+2].Text, r.value(cells[i]), r.value(cells[i+1]))
			r.splice(i, 3, v)
			return true
		}
	}
	return false
}

// Evaluate reduces a sequence of tokens in operand-first order to a single
// value. If the sequence cannot be reduced completely, Evaluate returns false.
//
// The input sequence is not modified.
func Evaluate(postfix cxcalc.Tokens) (complex64, bool) {
	r := &reduction{
		cells: make([]cell, len(postfix)),
		cache: make(map[int]complex64),
	}
	for i, t := range postfix {
		r.cells[i] = cell{Token: t}
	}
	for len(r.cells) > 1 {
		if len(r.cells) == 2 { // [x f] terminates the reduction
			if !r.cells[1].isFunction() {
				break
			}
			return ApplyFunction(r.cells[1].Text, r.value(r.cells[0])), true
		}
		if !r.step() {
			break
		}
	}
	if len(r.cells) != 1 || !r.cells[0].isOperand() {
		T().Debugf("cannot evaluate %v", postfix)
		return 0, false
	}
	return r.value(r.cells[0]), true
}

// EvalString parses and evaluates an expression. Variables other than PI and E
// evaluate to 0.
func EvalString(expr string) (complex64, bool) {
	return Evaluate(grammar.Parse(expr))
}
