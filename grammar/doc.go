/*
Package grammar splits expressions into tokens and re-orders them for
evaluation.

Expressions are written in infix notation, with function applications
preceding their parenthesized argument:

   2*sin(z+1)

Tokenize breaks the expression up into operators, parentheses and
maximal runs of other characters. Reorder then uses a variant of Dijkstra's
shunting-yard algorithm to produce an operand-first sequence:

   2 z 1 + sin *

All operators are treated as left-associative, including '^'. Functions bind
as tight as '^'. Parentheses are not checked for balance; unbalanced input
will result in a sequence which fails to evaluate.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cxcalc.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cxcalc.grammar")
}
