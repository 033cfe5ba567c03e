// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package check

import "github.com/sirupsen/logrus"

// Rup checks derived clauses by reverse unit propagation over all live
// clauses, ignoring antecedent chains.
type Rup struct {
	base
	ids []uint64
}

// NewRup creates a content only checker.
func NewRup(log logrus.FieldLogger) *Rup {
	return &Rup{base: newBase("rup checker", log)}
}

func (c *Rup) AddDerivedClause(id uint64, redundant bool, lits []int, chain []uint64) {
	if !c.fresh("derive", id) {
		return
	}
	ok := !c.assume(lits) || c.propagate()
	c.backtrack()
	if !ok {
		c.fail("derive", id, "clause %v is not implied by unit propagation", lits)
		return
	}
	c.st.Derived++
	c.st.Checked++
	c.store(id, lits)
}

// propagate returns whether unit propagation over the live clauses
// reaches a conflict.
func (c *Rup) propagate() bool {
	c.ids = c.ids[:0]
	for id := range c.clauses {
		c.ids = append(c.ids, id)
	}
	for {
		changed := false
	clauses:
		for _, id := range c.ids {
			unit, free := 0, 0
			for _, l := range c.clauses[id] {
				switch c.val(l) {
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
				return true
			}
			c.assign(unit)
			changed = true
		}
		if !changed {
			return false
		}
	}
}
