// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package trace

import "io"

// Frat writes every clause event with its id: original (o), added (a),
// deleted (d) and finalized (f).  Antecedents are embedded as an "l"
// hint on added clauses when requested.
type Frat struct {
	file
	antecedents bool
}

// NewFrat creates a FRAT writer on w.
func NewFrat(w io.Writer, binary, antecedents bool) *Frat {
	return &Frat{file: newFile("frat tracer", w, binary), antecedents: antecedents}
}

func (f *Frat) line(op byte, id uint64, lits []int) {
	f.putOp(op)
	f.putID(id)
	f.putLits(lits)
}

func (f *Frat) AddOriginalClause(id uint64, redundant bool, lits []int, restore bool) {
	f.line('o', id, lits)
	f.endLine()
	if restore {
		f.st.Restored++
	} else {
		f.st.Original++
	}
}

func (f *Frat) AddDerivedClause(id uint64, redundant bool, lits []int, chain []uint64) {
	f.line('a', id, lits)
	if f.antecedents && len(chain) != 0 {
		if f.binary {
			f.putByte('l')
		} else {
			f.putString(" l ")
		}
		f.putIDs(chain)
	}
	f.endLine()
	f.st.Derived++
}

func (f *Frat) DeleteClause(id uint64, redundant bool, lits []int) {
	f.line('d', id, lits)
	f.endLine()
	f.st.Deleted++
}

func (f *Frat) WeakenMinus(id uint64, lits []int) {}

func (f *Frat) Strengthen(id uint64) {}

func (f *Frat) FinalizeClause(id uint64, lits []int) {
	f.line('f', id, lits)
	f.endLine()
	f.st.Finalized++
}

func (f *Frat) FinalizeProof(id uint64) {}

func (f *Frat) BeginProof(id uint64) {}
