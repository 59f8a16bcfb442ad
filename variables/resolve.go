package variables

import (
	"github.com/npillmayer/cxcalc"
)

// Literal returns the postfix sequence "re im·i +" for a value v.
func Literal(v complex64) cxcalc.Tokens {
	return cxcalc.Tokens{
		cxcalc.NewNumber(real(v)),
		cxcalc.NewImaginary(imag(v)),
		cxcalc.NewOperator('+'),
	}
}

// Resolve replaces all variables found in store by their values. The result is
// a new token sequence, the input sequence is not modified. Variables not found
// in store are copied unchanged. store may be nil.
func Resolve(postfix cxcalc.Tokens, store *Store) cxcalc.Tokens {
	out := make(cxcalc.Tokens, 0, len(postfix))
	for _, t := range postfix {
		if t.Kind == cxcalc.Variable {
			if v, ok := store.Lookup(t.Text); ok {
				out = append(out, Literal(v)...)
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Inline replaces every occurrence of variable name by the value v.
// The result is a new token sequence.
func Inline(postfix cxcalc.Tokens, name string, v complex64) cxcalc.Tokens {
	lit := Literal(v)
	out := make(cxcalc.Tokens, 0, len(postfix)+2)
	for _, t := range postfix {
		if t.Kind == cxcalc.Variable && t.Text == name {
			out = append(out, lit...)
			continue
		}
		out = append(out, t)
	}
	return out
}

// Bind replaces every occurrence of variable name by a real number x.
// The result is a new token sequence.
func Bind(postfix cxcalc.Tokens, name string, x float32) cxcalc.Tokens {
	out := postfix.Copy()
	for i, t := range out {
		if t.Kind == cxcalc.Variable && t.Text == name {
			out[i] = cxcalc.NewNumber(x)
		}
	}
	return out
}
