/*
Package variables implements a store for named complex values and the
inlining of stored values into token sequences.

Variables are created by saving a value, either under a generated name
(a, b, …, z, aa, ab, …) or under a name chosen by the user. Names are runs
of letters; the imaginary marker 'i', the constants PI and E, and function
names may not be used as names.

Every variable carries a serial ID. IDs are strictly increasing and never
re-used, not even after the store has been cleared. They are used for
display ordering only.

Before evaluation, variables in a postfix sequence are replaced by their
values:

   a 2 *   ⟹   1 3i + 2 *        with a = 1+3i

Names which are not found in the store are left alone and will evaluate
to 0.


BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
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
package variables

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cxcalc.variables'.
func tracer() tracing.Trace {
	return tracing.Select("cxcalc.variables")
}
