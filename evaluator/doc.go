/*
Package evaluator reduces operand-first token sequences to complex values.

Evaluation does not use an operand stack. Instead the sequence is scanned
from the left for the first position where a function follows its argument
or a binary operator follows its two operands. This part of the sequence is
replaced by an intermediate result, and scanning starts over, until a single
value remains.

Literals which are not numbers, among them names of unresolved variables,
evaluate to 0. A sequence which cannot be fully reduced has no value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'cxcalc.evaluator'.
func T() tracing.Trace {
	return tracing.Select("cxcalc.evaluator")
}
