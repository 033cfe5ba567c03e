// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "strconv"

// Lit is a literal in the solver's internal numbering.  The positive
// literal of variable v is 2v and the negative literal is 2v+1, so
// literals index flat per-literal tables directly.
type Lit uint32

// LitNull terminates clauses given literal by literal and
// signals "no literal".
const LitNull Lit = 0

// Dimacs2Lit converts a signed dimacs integer to a Lit.
func Dimacs2Lit(d int) Lit {
	if d < 0 {
		return Var(-d).Neg()
	}
	return Var(d).Pos()
}

// Dimacs returns the signed dimacs integer of m.
func (m Lit) Dimacs() int {
	v := int(m >> 1)
	if m&1 == 1 {
		return -v
	}
	return v
}

// Var returns the variable of m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// IsPos returns whether m is the positive literal of its variable.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Sign returns 1 if m is positive and -1 otherwise.
func (m Lit) Sign() int8 {
	if m&1 == 0 {
		return 1
	}
	return -1
}

func (m Lit) String() string {
	return strconv.Itoa(m.Dimacs())
}
