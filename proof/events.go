// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package proof

import "github.com/go-air/gproof/z"

// AddOriginalClause traces the input clause id with internal literals ms.
func (p *Proof) AddOriginalClause(id uint64, redundant bool, ms []z.Lit) {
	p.begin()
	p.addLits(ms)
	p.id = id
	p.redundant = redundant
	p.emitOriginal(false)
}

// AddExternalOriginalClause traces an input clause given in external
// literals.  restore marks a clause coming back after WeakenMinus.
func (p *Proof) AddExternalOriginalClause(id uint64, redundant bool, lits []int, restore bool) {
	p.begin()
	p.clause = append(p.clause, lits...)
	p.id = id
	p.redundant = redundant
	p.emitOriginal(restore)
}

// DeleteExternalOriginalClause traces deletion of a clause given in
// external literals.
func (p *Proof) DeleteExternalOriginalClause(id uint64, redundant bool, lits []int) {
	p.begin()
	p.clause = append(p.clause, lits...)
	p.id = id
	p.redundant = redundant
	p.emitDelete()
}

// AddDerivedEmptyClause traces the empty clause, concluding a refutation.
func (p *Proof) AddDerivedEmptyClause(id uint64, chain []uint64) {
	p.begin()
	p.addChain(chain)
	p.id = id
	p.emitDerived()
}

// AddDerivedUnitClause traces the derived unit clause (m).
func (p *Proof) AddDerivedUnitClause(id uint64, m z.Lit, chain []uint64) {
	p.begin()
	p.addLit(m)
	p.addChain(chain)
	p.id = id
	p.emitDerived()
}

// AddDerivedClause traces the derived clause c under its current id.
func (p *Proof) AddDerivedClause(c z.C, chain []uint64) {
	p.begin()
	p.addLits(p.x.Lits(c))
	p.addChain(chain)
	p.id = p.x.ID(c)
	p.redundant = p.x.Redundant(c)
	p.emitDerived()
}

// AddDerivedClauseLits traces a derived clause which has no handle.
func (p *Proof) AddDerivedClauseLits(id uint64, redundant bool, ms []z.Lit, chain []uint64) {
	p.begin()
	p.addLits(ms)
	p.addChain(chain)
	p.id = id
	p.redundant = redundant
	p.emitDerived()
}

// DeleteClause traces deletion of c under its current id.
func (p *Proof) DeleteClause(c z.C) {
	p.begin()
	p.addLits(p.x.Lits(c))
	p.id = p.x.ID(c)
	p.redundant = p.x.Redundant(c)
	p.emitDelete()
}

// DeleteClauseLits traces deletion of clause id with literals ms.
func (p *Proof) DeleteClauseLits(id uint64, redundant bool, ms []z.Lit) {
	p.begin()
	p.addLits(ms)
	p.id = id
	p.redundant = redundant
	p.emitDelete()
}

// DeleteUnitClause traces deletion of the unit clause (m).
func (p *Proof) DeleteUnitClause(id uint64, m z.Lit) {
	p.begin()
	p.addLit(m)
	p.id = id
	p.emitDelete()
}

// WeakenMinus traces that c is removed but may be restored later.
func (p *Proof) WeakenMinus(c z.C) {
	p.begin()
	p.addLits(p.x.Lits(c))
	p.id = p.x.ID(c)
	p.emitWeakenMinus()
}

// WeakenMinusLits is WeakenMinus for a clause without handle.
func (p *Proof) WeakenMinusLits(id uint64, ms []z.Lit) {
	p.begin()
	p.addLits(ms)
	p.id = id
	p.emitWeakenMinus()
}

// WeakenPlus traces WeakenMinus(c) followed by DeleteClause(c).
func (p *Proof) WeakenPlus(c z.C) {
	p.WeakenMinus(c)
	p.DeleteClause(c)
}

// WeakenPlusLits traces WeakenMinusLits followed by an irredundant
// delete of the same clause.
func (p *Proof) WeakenPlusLits(id uint64, ms []z.Lit) {
	p.WeakenMinusLits(id, ms)
	p.DeleteClauseLits(id, false, ms)
}

// Strengthen notifies tracers that clause id has been tightened.
func (p *Proof) Strengthen(id uint64) {
	p.begin()
	p.id = id
	p.requireID()
	if p.debug {
		p.trace("proof strengthen")
	}
	for _, t := range p.tracers {
		t.Strengthen(id)
	}
	p.clear()
}

// FinalizeClause states that c is not referenced by the proof anymore.
func (p *Proof) FinalizeClause(c z.C) {
	p.begin()
	p.addLits(p.x.Lits(c))
	p.id = p.x.ID(c)
	p.emitFinalize()
}

// FinalizeClauseLits is FinalizeClause for a clause without handle.
func (p *Proof) FinalizeClauseLits(id uint64, ms []z.Lit) {
	p.begin()
	p.addLits(ms)
	p.id = id
	p.emitFinalize()
}

// FinalizeUnit finalizes the unit clause (m).
func (p *Proof) FinalizeUnit(id uint64, m z.Lit) {
	p.begin()
	p.addLit(m)
	p.id = id
	p.emitFinalize()
}

// FinalizeExternalUnit finalizes the unit clause (lit) given as
// external literal.
func (p *Proof) FinalizeExternalUnit(id uint64, lit int) {
	p.begin()
	p.clause = append(p.clause, lit)
	p.id = id
	p.emitFinalize()
}

// FinalizeProof closes the proof.  id is the conclusion, normally the
// id of the empty clause.
func (p *Proof) FinalizeProof(id uint64) {
	p.log.WithField("id", id).Debug("proof finalized")
	for _, t := range p.tracers {
		t.FinalizeProof(id)
	}
}

// BeginProof opens the proof.  id is the largest id reserved for
// original clauses.
func (p *Proof) BeginProof(id uint64) {
	p.log.WithField("id", id).Debug("proof begin")
	for _, t := range p.tracers {
		t.BeginProof(id)
	}
}
