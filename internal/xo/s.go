// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package xo provides a small clause database which produces proofs.
//
// It performs no search: callers state which clauses are derived, and
// S keeps the clause arena, the top level values, the unit clause ids,
// and the clause id counter a proof needs.
package xo

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/go-air/gproof/proof"
	"github.com/go-air/gproof/z"
)

type weak struct {
	learnt bool
	lits   []z.Lit
}

// S is a clause database.  Literals passed to S are outer literals;
// literals S hands to its proof are inner ones.
type S struct {
	Vars *z.Vars
	Cdb  *Cdb

	// Bot is the id of the first empty clause, 0 if there is none.
	Bot uint64

	// Moved, if set, is called when Collect or a strengthening gives
	// clause old the id new, and with new 0 when Collect deletes old.
	Moved func(old, new uint64)

	log     logrus.FieldLogger
	opts    proof.Options
	tracing *proof.Registry

	vals    []int8   // by inner literal
	units   []uint64 // by inner literal, id of the unit clause making it true
	trail   []z.Lit  // fixed inner literals in order
	ids     map[uint64]z.C
	unitIDs map[uint64]z.Lit
	unitSeq []uint64
	empties []uint64
	weak    map[uint64]weak
	lastID  uint64

	adding []z.Lit
	tmp    []z.Lit
}

// NewS creates a clause database with default options.
func NewS() *S {
	return NewSOptions(proof.Options{}, nil)
}

// NewSOptions creates a clause database whose proof is configured by
// opts.  If log is nil the logrus standard logger is used.
func NewSOptions(opts proof.Options, log logrus.FieldLogger) *S {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &S{
		Vars:    z.NewVars(),
		Cdb:     NewCdb(128),
		log:     log,
		opts:    opts,
		vals:    make([]int8, 2, 256),
		units:   make([]uint64, 2, 256),
		ids:     make(map[uint64]z.C),
		unitIDs: make(map[uint64]z.Lit),
		weak:    make(map[uint64]weak)}
}

func (s *S) String() string {
	return fmt.Sprintf("<xo %d clauses %d units>", s.Cdb.Len(), len(s.trail))
}

// Tracing returns the proof registry of s, creating it on first use.
func (s *S) Tracing() *proof.Registry {
	if s.tracing == nil {
		s.tracing = proof.NewRegistry(s, s.opts, s.log)
	}
	return s.tracing
}

// proof returns the proof of s, nil if nothing has been connected.
func (s *S) proof() *proof.Proof {
	if s.tracing == nil || !s.tracing.Active() {
		return nil
	}
	return s.tracing.Proof()
}

// Add implements inter.Adder: it adds an original clause, terminated
// by z.LitNull, under a fresh id.
func (s *S) Add(m z.Lit) {
	if m != z.LitNull {
		s.adding = append(s.adding, m)
		return
	}
	s.AddClause(s.NextID(), s.adding)
	s.adding = s.adding[:0]
}

// AddClause adds the original clause ms under id.  Ids may be given in
// any order, but each only once while in use.
func (s *S) AddClause(id uint64, ms []z.Lit) z.C {
	s.claim(id)
	if id > s.lastID {
		s.lastID = id
	}
	ms = s.inner(ms)
	if p := s.proof(); p != nil {
		p.AddOriginalClause(id, false, ms)
	}
	return s.store(id, false, ms)
}

// Derive adds the clause ms with antecedents chain.  If id is 0 a fresh
// id is allocated.  The id is returned.
func (s *S) Derive(id uint64, ms []z.Lit, chain []uint64) uint64 {
	if id == 0 {
		id = s.NextID()
	} else if id > s.lastID {
		s.lastID = id
	}
	s.claim(id)
	ms = s.inner(ms)
	if p := s.proof(); p != nil {
		switch len(ms) {
		case 0:
			p.AddDerivedEmptyClause(id, chain)
		case 1:
			p.AddDerivedUnitClause(id, ms[0], chain)
		default:
			p.AddDerivedClauseLits(id, true, ms, chain)
		}
	}
	s.store(id, true, ms)
	return id
}

func (s *S) claim(id uint64) {
	if id == 0 {
		panic("xo: clause without id")
	}
	if s.has(id) {
		panic(fmt.Sprintf("xo: clause id %d in use", id))
	}
}

func (s *S) has(id uint64) bool {
	if _, ok := s.ids[id]; ok {
		return true
	}
	if _, ok := s.unitIDs[id]; ok {
		return true
	}
	for _, e := range s.empties {
		if e == id {
			return true
		}
	}
	return false
}

func (s *S) inner(ms []z.Lit) []z.Lit {
	s.tmp = s.tmp[:0]
	for _, m := range ms {
		s.tmp = append(s.tmp, s.Vars.ToInner(m))
	}
	s.growVals()
	return s.tmp
}

// store records the clause ms under id: empty clauses set Bot, units
// fix a top level value and the rest go to the arena.
func (s *S) store(id uint64, learnt bool, ms []z.Lit) z.C {
	switch len(ms) {
	case 0:
		s.empties = append(s.empties, id)
		if s.Bot == 0 {
			s.Bot = id
		}
		return z.CNull
	case 1:
		s.fix(id, ms[0])
		return z.CNull
	}
	c := s.Cdb.Alloc(id, learnt, ms)
	s.ids[id] = c
	return c
}

func (s *S) fix(id uint64, m z.Lit) {
	s.unitIDs[id] = m
	s.unitSeq = append(s.unitSeq, id)
	if s.vals[m] != 0 {
		return
	}
	s.vals[m] = 1
	s.vals[m.Not()] = -1
	s.units[m] = id
	s.trail = append(s.trail, m)
}

func (s *S) growVals() {
	n := 2 * (int(s.Vars.Max) + 1)
	for len(s.vals) < n {
		s.vals = append(s.vals, 0)
		s.units = append(s.units, 0)
	}
}

// ClauseOf returns the arena handle of the clause id, z.CNull if id is
// not a live clause of at least two literals.
func (s *S) ClauseOf(id uint64) z.C {
	return s.ids[id]
}

// Remove deletes c.
func (s *S) Remove(c z.C) {
	if p := s.proof(); p != nil {
		p.DeleteClause(c)
	}
	s.drop(c)
}

func (s *S) drop(c z.C) {
	delete(s.ids, s.Cdb.ID(c))
	s.Cdb.Free(c)
}

// Delete deletes the clause id, whatever its size.  A top level value
// is kept as long as some unit clause fixing it is.
func (s *S) Delete(id uint64) {
	if c, ok := s.ids[id]; ok {
		s.Remove(c)
		return
	}
	if m, ok := s.unitIDs[id]; ok {
		if p := s.proof(); p != nil {
			p.DeleteUnitClause(id, m)
		}
		s.unfix(id, m)
		return
	}
	for i, e := range s.empties {
		if e == id {
			if p := s.proof(); p != nil {
				p.DeleteClauseLits(id, true, nil)
			}
			s.empties = append(s.empties[:i], s.empties[i+1:]...)
			if s.Bot == id {
				s.Bot = 0
				if len(s.empties) != 0 {
					s.Bot = s.empties[0]
				}
			}
			return
		}
	}
	panic(fmt.Sprintf("xo: delete of unknown clause %d", id))
}

func (s *S) unfix(id uint64, m z.Lit) {
	delete(s.unitIDs, id)
	for i, u := range s.unitSeq {
		if u == id {
			s.unitSeq = append(s.unitSeq[:i], s.unitSeq[i+1:]...)
			break
		}
	}
	if s.units[m] != id {
		return
	}
	for _, u := range s.unitSeq {
		if s.unitIDs[u] == m {
			s.units[m] = u
			return
		}
	}
	s.units[m] = 0
	s.vals[m] = 0
	s.vals[m.Not()] = 0
	for i, o := range s.trail {
		if o == m {
			s.trail = append(s.trail[:i], s.trail[i+1:]...)
			break
		}
	}
}

// Weaken marks c as removed but restorable.  c stays in the arena until
// it is removed.
func (s *S) Weaken(c z.C) {
	if p := s.proof(); p != nil {
		p.WeakenMinus(c)
	}
	s.remember(c)
}

// WeakenPlus weakens and removes c.
func (s *S) WeakenPlus(c z.C) {
	if p := s.proof(); p != nil {
		p.WeakenPlus(c)
	}
	s.remember(c)
	s.drop(c)
}

func (s *S) remember(c z.C) {
	ms := s.Cdb.Lits(c)
	cp := make([]z.Lit, len(ms))
	copy(cp, ms)
	s.weak[s.Cdb.ID(c)] = weak{learnt: s.Cdb.Redundant(c), lits: cp}
}

// Restore adds back the clause weakened under id with a fresh id, once
// it has been removed.
func (s *S) Restore(id uint64) z.C {
	w, ok := s.weak[id]
	if !ok {
		panic(fmt.Sprintf("xo: clause %d was not weakened", id))
	}
	if _, live := s.ids[id]; live {
		panic(fmt.Sprintf("xo: restore of live clause %d", id))
	}
	delete(s.weak, id)
	nid := s.NextID()
	if p := s.proof(); p != nil {
		lits := make([]int, len(w.lits))
		for i, m := range w.lits {
			lits[i] = s.Externalize(m)
		}
		p.AddExternalOriginalClause(nid, w.learnt, lits, true)
	}
	c := s.Cdb.Alloc(nid, w.learnt, w.lits)
	s.ids[nid] = c
	return c
}

// Promote makes the learnt clause c irredundant.
func (s *S) Promote(c z.C) {
	if p := s.proof(); p != nil {
		p.Strengthen(s.Cdb.ID(c))
	}
	s.Cdb.slot(c).learnt = false
}

// Strengthen removes the outer literal m from c.  A clause left with one
// literal becomes a unit.
func (s *S) Strengthen(c z.C, m z.Lit, chain []uint64) {
	m = s.Vars.ToInner(m)
	s.growVals()
	if p := s.proof(); p != nil {
		p.StrengthenClause(c, m, chain)
	} else {
		s.rebind(c, s.NextID())
	}
	s.Cdb.remove(c, func(o z.Lit) bool { return o == m })
	s.settle(c)
}

// OtfsStrengthen replaces the literals of c by the outer literals ms,
// a subset of them.
func (s *S) OtfsStrengthen(c z.C, ms []z.Lit, chain []uint64) {
	old := s.Cdb.Lits(c)
	snap := make([]z.Lit, len(old))
	copy(snap, old)
	s.Cdb.setLits(c, s.inner(ms))
	if p := s.proof(); p != nil {
		p.OtfsStrengthenClause(c, snap, chain)
	} else {
		s.rebind(c, s.NextID())
	}
	s.settle(c)
}

func (s *S) rebind(c z.C, id uint64) {
	old := s.Cdb.ID(c)
	delete(s.ids, old)
	s.Cdb.setID(c, id)
	s.ids[id] = c
	if s.Moved != nil {
		s.Moved(old, id)
	}
}

// settle moves clauses shrunk below two literals out of the arena.
func (s *S) settle(c z.C) {
	ms := s.Cdb.Lits(c)
	if len(ms) > 1 {
		return
	}
	id := s.Cdb.ID(c)
	var m z.Lit
	if len(ms) == 1 {
		m = ms[0]
	}
	s.drop(c)
	if m == z.LitNull {
		s.store(id, true, nil)
		return
	}
	s.fix(id, m)
}

// Collect deletes the clauses satisfied at the top level and removes
// false literals from the others, until nothing changes.
func (s *S) Collect() {
	var cs []z.C
	for {
		n := len(s.trail)
		cs = s.Cdb.Clauses(cs[:0])
		for _, c := range cs {
			if !s.Cdb.Live(c) {
				continue
			}
			sat, fls := false, 0
			for _, m := range s.Cdb.Lits(c) {
				switch s.vals[m] {
				case 1:
					sat = true
				case -1:
					fls++
				}
			}
			switch {
			case sat:
				id := s.Cdb.ID(c)
				s.Remove(c)
				if s.Moved != nil {
					s.Moved(id, 0)
				}
			case fls != 0:
				s.flush(c)
			}
		}
		if len(s.trail) == n {
			return
		}
	}
}

func (s *S) flush(c z.C) {
	if p := s.proof(); p != nil {
		p.FlushClause(c)
	} else {
		s.rebind(c, s.NextID())
	}
	s.Cdb.remove(c, func(m z.Lit) bool { return s.vals[m] < 0 })
	s.settle(c)
}

// Finalize finalizes every clause and unit, then the proof, concluding
// with Bot.
func (s *S) Finalize() {
	p := s.proof()
	if p == nil {
		return
	}
	for _, c := range s.Cdb.Clauses(nil) {
		p.FinalizeClause(c)
	}
	for _, id := range s.unitSeq {
		p.FinalizeUnit(id, s.unitIDs[id])
	}
	for _, id := range s.empties {
		p.FinalizeClauseLits(id, nil)
	}
	p.FinalizeProof(s.Bot)
}

// BeginProof starts the proof after the clauses added so far.
func (s *S) BeginProof() {
	if p := s.proof(); p != nil {
		p.BeginProof(s.lastID)
	}
}
