// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package trace

import "io"

// Veripb writes a pseudo-Boolean proof in which every clause is the
// constraint "sum of its literals >= 1".  It is text only.
type Veripb struct {
	file
	antecedents bool
	deletions   bool
}

// NewVeripb creates a VeriPB writer on w.  With antecedents derived
// constraints carry their chain as hints; with deletions deleted clauses
// are removed from the proof.  VeriPB has no binary encoding, binary is
// ignored.
func NewVeripb(w io.Writer, binary, antecedents, deletions bool) *Veripb {
	return &Veripb{
		file:        newFile("veripb tracer", w, false),
		antecedents: antecedents,
		deletions:   deletions}
}

func (v *Veripb) putConstraint(lits []int) {
	for _, l := range lits {
		if l < 0 {
			v.putString("1 ~x")
			v.putInt(int64(-l))
		} else {
			v.putString("1 x")
			v.putInt(int64(l))
		}
		v.putByte(' ')
	}
	v.putString(">= 1 ;")
}

func (v *Veripb) BeginProof(id uint64) {
	v.putString("pseudo-Boolean proof version 2.0\nf ")
	v.putUint(id)
	v.putByte('\n')
}

func (v *Veripb) AddOriginalClause(id uint64, redundant bool, lits []int, restore bool) {}

func (v *Veripb) AddDerivedClause(id uint64, redundant bool, lits []int, chain []uint64) {
	v.putString("rup ")
	v.putConstraint(lits)
	if v.antecedents && len(chain) != 0 {
		for _, c := range chain {
			v.putByte(' ')
			v.putUint(c)
		}
		v.putString(" ;")
	}
	v.putByte('\n')
	v.st.Derived++
}

func (v *Veripb) DeleteClause(id uint64, redundant bool, lits []int) {
	if !v.deletions {
		return
	}
	v.putString("del id ")
	v.putUint(id)
	v.putString(" ;\n")
	v.st.Deleted++
}

func (v *Veripb) WeakenMinus(id uint64, lits []int) {}

func (v *Veripb) Strengthen(id uint64) {
	v.putString("core id ")
	v.putUint(id)
	v.putByte('\n')
	v.st.Strengthened++
}

func (v *Veripb) FinalizeClause(id uint64, lits []int) {}

func (v *Veripb) FinalizeProof(id uint64) {
	v.putString("output NONE\nconclusion UNSAT : id ")
	v.putUint(id)
	v.putString("\nend pseudo-Boolean proof\n")
}
