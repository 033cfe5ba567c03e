// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package lrat reconstructs LRAT antecedent chains for clauses derived
// by a search engine which does not track them.
package lrat

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type clause struct {
	id   uint64
	lits []int
}

// Builder keeps the live clauses of a proof and computes, by reverse
// unit propagation, the antecedents of newly derived clauses.
//
// Chains list the propagating clauses in trail order followed by the
// conflicting clause, which is the order an LRAT checker consumes them.
type Builder struct {
	log     logrus.FieldLogger
	clauses []clause
	index   map[uint64]int
	dead    int

	vals   []int8   // by variable
	reason []uint64 // by variable, 0 for assumed
	trail  []int
	marks  []bool
	chain  []uint64

	stChains int64
	stProps  int64
}

// New creates an empty Builder.
func New(log logrus.FieldLogger) *Builder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Builder{
		log:   log,
		index: make(map[uint64]int),
		vals:  make([]int8, 1, 128)}
}

// Learn records clause id.
func (b *Builder) Learn(id uint64, lits []int) {
	if _, ok := b.index[id]; ok {
		panic(fmt.Sprintf("lrat: clause %d learned twice", id))
	}
	cp := make([]int, len(lits))
	copy(cp, lits)
	b.index[id] = len(b.clauses)
	b.clauses = append(b.clauses, clause{id: id, lits: cp})
	for _, l := range lits {
		b.grow(l)
	}
}

// Forget drops clause id.  Unknown ids are ignored.
func (b *Builder) Forget(id uint64, lits []int) {
	i, ok := b.index[id]
	if !ok {
		return
	}
	delete(b.index, id)
	b.clauses[i].lits = nil
	b.dead++
	if b.dead > 64 && b.dead > len(b.clauses)/2 {
		b.compact()
	}
}

// Len returns the number of live clauses.
func (b *Builder) Len() int {
	return len(b.index)
}

// Chain computes the antecedents of the clause lits, records it as id,
// and returns the chain.  The result is reused by the next call.
// Tautologies need no antecedents and get an empty chain.
//
// Chain panics if lits is not implied by unit propagation.
func (b *Builder) Chain(id uint64, lits []int) []uint64 {
	b.stChains++
	b.reset()
	for _, l := range lits {
		b.grow(l)
		switch b.val(l) {
		case 1:
			b.reset()
			b.Learn(id, lits)
			b.chain = b.chain[:0]
			return b.chain
		case -1:
			continue
		}
		b.assign(-l, 0)
	}
	confl := b.propagate()
	if confl < 0 {
		panic(fmt.Sprintf("lrat: clause %d %v is not implied by unit propagation", id, lits))
	}
	b.analyze(confl)
	b.reset()
	b.Learn(id, lits)
	return b.chain
}

// ReadStats returns the number of chains built and propagations made.
func (b *Builder) ReadStats() (chains, props int64) {
	return b.stChains, b.stProps
}

func (b *Builder) propagate() int {
	for {
		changed := false
	clauses:
		for i := range b.clauses {
			c := &b.clauses[i]
			if c.lits == nil {
				continue
			}
			unit, free := 0, 0
			for _, l := range c.lits {
				switch b.val(l) {
				case 1:
					continue clauses
				case 0:
					unit = l
					free++
					if free > 1 {
						continue clauses
					}
				}
			}
			if free == 0 {
				return i
			}
			b.assign(unit, c.id)
			b.stProps++
			changed = true
		}
		if !changed {
			return -1
		}
	}
}

// analyze collects the reasons the conflict at clause index ci
// depends on.
func (b *Builder) analyze(ci int) {
	b.chain = b.chain[:0]
	for len(b.marks) < len(b.vals) {
		b.marks = append(b.marks, false)
	}
	for _, l := range b.clauses[ci].lits {
		b.marks[abs(l)] = true
	}
	for i := len(b.trail) - 1; i >= 0; i-- {
		v := abs(b.trail[i])
		r := b.reason[v]
		if !b.marks[v] || r == 0 {
			continue
		}
		for _, l := range b.clauses[b.index[r]].lits {
			b.marks[abs(l)] = true
		}
	}
	for _, l := range b.trail {
		v := abs(l)
		if b.marks[v] && b.reason[v] != 0 {
			b.chain = append(b.chain, b.reason[v])
		}
		b.marks[v] = false
	}
	for _, l := range b.clauses[ci].lits {
		b.marks[abs(l)] = false
	}
	b.chain = append(b.chain, b.clauses[ci].id)
}

func (b *Builder) assign(l int, r uint64) {
	v := abs(l)
	if l > 0 {
		b.vals[v] = 1
	} else {
		b.vals[v] = -1
	}
	b.reason[v] = r
	b.trail = append(b.trail, l)
}

func (b *Builder) val(l int) int8 {
	if l < 0 {
		return -b.vals[-l]
	}
	return b.vals[l]
}

func (b *Builder) reset() {
	for _, l := range b.trail {
		v := abs(l)
		b.vals[v] = 0
		b.reason[v] = 0
	}
	b.trail = b.trail[:0]
}

func (b *Builder) grow(l int) {
	v := abs(l)
	for v >= len(b.vals) {
		b.vals = append(b.vals, 0)
	}
	for len(b.reason) < len(b.vals) {
		b.reason = append(b.reason, 0)
	}
}

func (b *Builder) compact() {
	j := 0
	for _, c := range b.clauses {
		if c.lits == nil {
			continue
		}
		b.index[c.id] = j
		b.clauses[j] = c
		j++
	}
	for i := j; i < len(b.clauses); i++ {
		b.clauses[i] = clause{}
	}
	b.clauses = b.clauses[:j]
	b.log.WithField("live", j).Debug("lrat builder compacted")
	b.dead = 0
}

func abs(l int) int {
	if l < 0 {
		return -l
	}
	return l
}
