// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package proof

import (
	"fmt"

	"github.com/go-air/gproof/z"
)

type fakeClause struct {
	id     uint64
	learnt bool
	lits   []z.Lit
}

// engine is an inter.Internal whose inner and outer literals coincide.
type engine struct {
	clauses []fakeClause
	vals    map[z.Lit]int8
	units   map[z.Lit]uint64
	last    uint64
	max     z.Var
}

func newEngine() *engine {
	return &engine{
		vals:  make(map[z.Lit]int8),
		units: make(map[z.Lit]uint64)}
}

func dimacs(ds ...int) []z.Lit {
	ms := make([]z.Lit, len(ds))
	for i, d := range ds {
		ms[i] = z.Dimacs2Lit(d)
	}
	return ms
}

func (e *engine) clause(id uint64, learnt bool, ds ...int) z.C {
	ms := dimacs(ds...)
	for _, m := range ms {
		if m.Var() > e.max {
			e.max = m.Var()
		}
	}
	e.clauses = append(e.clauses, fakeClause{id: id, learnt: learnt, lits: ms})
	if id > e.last {
		e.last = id
	}
	return z.C(len(e.clauses))
}

func (e *engine) unit(id uint64, d int) {
	m := z.Dimacs2Lit(d)
	e.vals[m] = 1
	e.vals[m.Not()] = -1
	e.units[m] = id
	if id > e.last {
		e.last = id
	}
}

func (e *engine) at(c z.C) *fakeClause {
	if c == z.CNull || int(c) > len(e.clauses) {
		panic(fmt.Sprintf("bad clause %s", c))
	}
	return &e.clauses[c-1]
}

func (e *engine) MaxVar() z.Var { return e.max }
func (e *engine) Lits(c z.C) []z.Lit { return e.at(c).lits }
func (e *engine) ID(c z.C) uint64 { return e.at(c).id }
func (e *engine) SetID(c z.C, id uint64) { e.at(c).id = id }
func (e *engine) Redundant(c z.C) bool { return e.at(c).learnt }
func (e *engine) Externalize(m z.Lit) int { return m.Dimacs() }
func (e *engine) Fixed(m z.Lit) int8 { return e.vals[m] }
func (e *engine) UnitID(m z.Lit) uint64 { return e.units[m] }
func (e *engine) NextID() uint64 { e.last++; return e.last }

// recorder logs the events it receives.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) AddOriginalClause(id uint64, redundant bool, lits []int, restore bool) {
	r.add("o %d %v red=%t restore=%t", id, lits, redundant, restore)
}

func (r *recorder) AddDerivedClause(id uint64, redundant bool, lits []int, chain []uint64) {
	r.add("a %d %v red=%t %v", id, lits, redundant, chain)
}

func (r *recorder) DeleteClause(id uint64, redundant bool, lits []int) {
	r.add("d %d %v red=%t", id, lits, redundant)
}

func (r *recorder) WeakenMinus(id uint64, lits []int) { r.add("w %d %v", id, lits) }
func (r *recorder) Strengthen(id uint64) { r.add("s %d", id) }
func (r *recorder) FinalizeClause(id uint64, lits []int) {
	r.add("f %d %v", id, lits)
}
func (r *recorder) FinalizeProof(id uint64) { r.add("end %d", id) }
func (r *recorder) BeginProof(id uint64) { r.add("begin %d", id) }
