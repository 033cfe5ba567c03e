// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package proof

import (
	"fmt"

	"github.com/go-air/gproof/z"
)

// The functions below trace in place modifications of clauses without
// copying them.  Each traces the modified clause as derived under a
// fresh id, deletes the old id, and rebinds c to the fresh id.

// FlushClause traces removal of the literals of c which are false at
// the top level.  It must be called before the arena drops them.  The
// antecedents are the unit clauses falsifying them followed by c.
func (p *Proof) FlushClause(c z.C) {
	p.begin()
	x := p.x
	for _, m := range x.Lits(c) {
		if x.Fixed(m) < 0 {
			uid := x.UnitID(m.Not())
			if uid == 0 {
				panic(fmt.Sprintf("proof: no unit clause for falsified %s in %s", m, c))
			}
			p.chain = append(p.chain, uid)
			continue
		}
		p.addLit(m)
	}
	p.chain = append(p.chain, x.ID(c))
	p.redundant = x.Redundant(c)
	id := x.NextID()
	p.id = id
	p.emitDerived()
	p.DeleteClause(c)
	x.SetID(c, id)
}

// StrengthenClause traces removal of the literal remove from c, before
// the arena drops it.
func (p *Proof) StrengthenClause(c z.C, remove z.Lit, chain []uint64) {
	p.begin()
	x := p.x
	for _, m := range x.Lits(c) {
		if m == remove {
			continue
		}
		p.addLit(m)
	}
	id := x.NextID()
	p.id = id
	p.redundant = x.Redundant(c)
	p.addChain(chain)
	p.emitDerived()
	p.DeleteClause(c)
	x.SetID(c, id)
}

// OtfsStrengthenClause traces a clause which has already been shrunk in
// place.  old holds the literals c had before, which are the ones its
// current id is deleted with.
func (p *Proof) OtfsStrengthenClause(c z.C, old []z.Lit, chain []uint64) {
	p.begin()
	x := p.x
	p.addLits(x.Lits(c))
	id := x.NextID()
	p.id = id
	redundant := x.Redundant(c)
	p.redundant = redundant
	p.addChain(chain)
	p.emitDerived()
	p.DeleteClauseLits(x.ID(c), redundant, old)
	x.SetID(c, id)
}
