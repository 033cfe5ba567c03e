// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package trace

import "io"

// Drat writes derived and deleted clauses without ids or antecedents.
type Drat struct {
	file
}

// NewDrat creates a DRAT writer on w.
func NewDrat(w io.Writer, binary bool) *Drat {
	return &Drat{file: newFile("drat tracer", w, binary)}
}

func (d *Drat) AddOriginalClause(id uint64, redundant bool, lits []int, restore bool) {}

func (d *Drat) AddDerivedClause(id uint64, redundant bool, lits []int, chain []uint64) {
	if d.binary {
		d.putByte('a')
	}
	d.putLits(lits)
	d.endLine()
	d.st.Derived++
}

func (d *Drat) DeleteClause(id uint64, redundant bool, lits []int) {
	d.putOp('d')
	d.putLits(lits)
	d.endLine()
	d.st.Deleted++
}

func (d *Drat) WeakenMinus(id uint64, lits []int) {}

func (d *Drat) Strengthen(id uint64) {}

func (d *Drat) FinalizeClause(id uint64, lits []int) {}

func (d *Drat) FinalizeProof(id uint64) {}

func (d *Drat) BeginProof(id uint64) {}
