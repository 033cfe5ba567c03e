// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package trace

import "io"

// Lrat writes derived clauses with their ids and antecedents.
//
// Deletions are collected and written as one line, under the id of the
// latest added clause, before the next addition, on Flush and when the
// proof is finalized.
type Lrat struct {
	file
	latest  uint64
	deletes []uint64
}

// NewLrat creates an LRAT writer on w.
func NewLrat(w io.Writer, binary bool) *Lrat {
	return &Lrat{file: newFile("lrat tracer", w, binary)}
}

func (l *Lrat) AddOriginalClause(id uint64, redundant bool, lits []int, restore bool) {
	l.see(id)
}

func (l *Lrat) AddDerivedClause(id uint64, redundant bool, lits []int, chain []uint64) {
	l.putDeletes()
	if l.binary {
		l.putByte('a')
	}
	l.putID(id)
	l.putLits(lits)
	if !l.binary {
		l.putByte(' ')
	}
	l.putIDs(chain)
	l.endLine()
	l.see(id)
	l.st.Derived++
}

func (l *Lrat) DeleteClause(id uint64, redundant bool, lits []int) {
	l.deletes = append(l.deletes, id)
	l.st.Deleted++
}

func (l *Lrat) WeakenMinus(id uint64, lits []int) {}

func (l *Lrat) Strengthen(id uint64) {}

func (l *Lrat) FinalizeClause(id uint64, lits []int) {}

func (l *Lrat) FinalizeProof(id uint64) {
	l.putDeletes()
}

func (l *Lrat) BeginProof(id uint64) {
	l.see(id)
}

// Flush writes pending deletions, then flushes.
func (l *Lrat) Flush() error {
	l.putDeletes()
	return l.file.Flush()
}

// Close writes pending deletions, then closes.
func (l *Lrat) Close() error {
	l.putDeletes()
	return l.file.Close()
}

func (l *Lrat) see(id uint64) {
	if id > l.latest {
		l.latest = id
	}
}

func (l *Lrat) putDeletes() {
	if len(l.deletes) == 0 {
		return
	}
	if l.binary {
		l.putByte('d')
	} else {
		l.putUint(l.latest)
		l.putString(" d ")
	}
	l.putIDs(l.deletes)
	l.endLine()
	l.deletes = l.deletes[:0]
}
