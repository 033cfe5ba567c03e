// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import (
	"bytes"
	"fmt"
)

// Vars maps between outer variables, the ones user facing clauses and
// proofs are written in, and inner variables, the ones a solver works
// with.  Inner variables may also be allocated without any outer
// counterpart.
type Vars struct {
	Max  Var   // maximal inner variable
	o2i  []Var // outer -> inner, 0 if unmapped
	i2o  []Var // inner -> outer, 0 if inner only
	free []Var // free inner variables
}

// NewVars creates an empty mapping.
func NewVars() *Vars {
	return &Vars{
		o2i: make([]Var, 1, 128),
		i2o: make([]Var, 1, 128)}
}

// ToInner returns the inner literal of the outer literal m, mapping
// m's variable to a fresh inner variable if it has not been seen.
func (vs *Vars) ToInner(m Lit) Lit {
	u := m.Var()
	for int(u) >= len(vs.o2i) {
		vs.o2i = append(vs.o2i, 0)
	}
	v := vs.o2i[u]
	if v == 0 {
		v = vs.alloc()
		vs.o2i[u] = v
		vs.i2o[v] = u
	}
	if m.IsPos() {
		return v.Pos()
	}
	return v.Neg()
}

// ToOuter returns the outer literal of the inner literal m, or LitNull
// if m's variable is inner only.
func (vs *Vars) ToOuter(m Lit) Lit {
	v := m.Var()
	if int(v) >= len(vs.i2o) {
		return LitNull
	}
	u := vs.i2o[v]
	if u == 0 {
		return LitNull
	}
	if m.IsPos() {
		return u.Pos()
	}
	return u.Neg()
}

// Inner returns the positive literal of a new inner only variable.
func (vs *Vars) Inner() Lit {
	return vs.alloc().Pos()
}

// Free releases the inner only variable of m for reuse.  Freeing a
// variable with an outer counterpart panics.
func (vs *Vars) Free(m Lit) {
	v := m.Var()
	if vs.i2o[v] != 0 {
		panic(fmt.Sprintf("free of mapped variable %s", v))
	}
	vs.free = append(vs.free, v)
}

func (vs *Vars) alloc() Var {
	if n := len(vs.free); n > 0 {
		v := vs.free[n-1]
		vs.free = vs.free[:n-1]
		return v
	}
	vs.Max++
	for int(vs.Max) >= len(vs.i2o) {
		vs.i2o = append(vs.i2o, 0)
	}
	return vs.Max
}

func (vs *Vars) String() string {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "vars[max %s free %d]", vs.Max, len(vs.free))
	for v := Var(1); v <= vs.Max; v++ {
		if u := vs.i2o[v]; u != 0 {
			fmt.Fprintf(buf, " %s:%s", u, v)
		}
	}
	return buf.String()
}
