// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package proof

import (
	"github.com/sirupsen/logrus"

	"github.com/go-air/gproof/inter"
	"github.com/go-air/gproof/z"
)

// ChainBuilder computes antecedent chains on behalf of a search engine
// which does not track them itself.
type ChainBuilder interface {
	// Learn records clause id for later chain computations.
	Learn(id uint64, lits []int)

	// Chain returns the antecedents of the clause id with literals
	// lits and records the clause.  The result is only valid until
	// the next call.
	Chain(id uint64, lits []int) []uint64

	// Forget drops clause id.
	Forget(id uint64, lits []int)
}

// Proof stages proof records and broadcasts them to connected tracers.
//
// A Proof builds one record at a time: every event method expects an
// empty staging buffer, fills it, emits it to every tracer in connection
// order and clears it.  Nested or concurrent use panics.
type Proof struct {
	x       inter.Internal
	tracers []inter.Tracer
	builder ChainBuilder
	log     logrus.FieldLogger
	debug   bool

	// staged record
	clause    []int
	chain     []uint64
	id        uint64
	redundant bool
}

// New creates a Proof for the engine x.  If log is nil the logrus
// standard logger is used.
func New(x inter.Internal, log logrus.FieldLogger) *Proof {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Proof{
		x:      x,
		log:    log,
		debug:  debugEnabled(log),
		clause: make([]int, 0, 32),
		chain:  make([]uint64, 0, 32)}
}

// Connect adds t to the tracers receiving events.
func (p *Proof) Connect(t inter.Tracer) {
	p.tracers = append(p.tracers, t)
}

// Disconnect removes every occurrence of t.
func (p *Proof) Disconnect(t inter.Tracer) {
	j := 0
	for _, u := range p.tracers {
		if u == t {
			continue
		}
		p.tracers[j] = u
		j++
	}
	for i := j; i < len(p.tracers); i++ {
		p.tracers[i] = nil
	}
	p.tracers = p.tracers[:j]
}

// Tracers returns the number of connected tracers.
func (p *Proof) Tracers() int {
	return len(p.tracers)
}

// SetBuilder attaches the chain builder b, nil detaches.
func (p *Proof) SetBuilder(b ChainBuilder) {
	p.builder = b
}

// Builder returns the attached chain builder, if any.
func (p *Proof) Builder() ChainBuilder {
	return p.builder
}

func (p *Proof) addLit(m z.Lit) {
	p.clause = append(p.clause, p.x.Externalize(m))
}

func (p *Proof) addLits(ms []z.Lit) {
	for _, m := range ms {
		p.addLit(m)
	}
}

func (p *Proof) addChain(chain []uint64) {
	p.chain = append(p.chain, chain...)
}

func (p *Proof) begin() {
	if len(p.clause) != 0 || len(p.chain) != 0 || p.id != 0 {
		panic("proof: staging buffer not empty")
	}
}

func (p *Proof) clear() {
	p.clause = p.clause[:0]
	p.chain = p.chain[:0]
	p.id = 0
	p.redundant = false
}

func (p *Proof) requireID() {
	if p.id == 0 {
		panic("proof: record without clause id")
	}
}

func (p *Proof) trace(msg string) {
	p.log.WithFields(logrus.Fields{
		"id":        p.id,
		"redundant": p.redundant,
		"clause":    p.clause,
		"chain":     p.chain}).Debug(msg)
}

func (p *Proof) emitOriginal(restore bool) {
	p.requireID()
	if p.debug {
		p.trace("proof adding original clause")
	}
	if p.builder != nil {
		p.builder.Learn(p.id, p.clause)
	}
	for _, t := range p.tracers {
		t.AddOriginalClause(p.id, p.redundant, p.clause, restore)
	}
	p.clear()
}

func (p *Proof) emitDerived() {
	p.requireID()
	if p.builder != nil {
		if len(p.chain) == 0 {
			p.chain = append(p.chain, p.builder.Chain(p.id, p.clause)...)
			if len(p.chain) == 0 && !tautology(p.clause) {
				panic("proof: chain builder returned no antecedents")
			}
		} else {
			p.builder.Learn(p.id, p.clause)
		}
	}
	if p.debug {
		p.trace("proof adding derived clause")
	}
	for _, t := range p.tracers {
		t.AddDerivedClause(p.id, p.redundant, p.clause, p.chain)
	}
	p.clear()
}

func (p *Proof) emitDelete() {
	p.requireID()
	if p.debug {
		p.trace("proof deleting clause")
	}
	if p.builder != nil {
		p.builder.Forget(p.id, p.clause)
	}
	for _, t := range p.tracers {
		t.DeleteClause(p.id, p.redundant, p.clause)
	}
	p.clear()
}

func (p *Proof) emitWeakenMinus() {
	p.requireID()
	if p.debug {
		p.trace("proof marking clause to restore")
	}
	for _, t := range p.tracers {
		t.WeakenMinus(p.id, p.clause)
	}
	p.clear()
}

func (p *Proof) emitFinalize() {
	p.requireID()
	if p.debug {
		p.trace("proof finalizing clause")
	}
	for _, t := range p.tracers {
		t.FinalizeClause(p.id, p.clause)
	}
	p.clear()
}

func tautology(lits []int) bool {
	for i, l := range lits {
		for _, o := range lits[:i] {
			if o == -l {
				return true
			}
		}
	}
	return false
}

func debugEnabled(log logrus.FieldLogger) bool {
	switch l := log.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}
