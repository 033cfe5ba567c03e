// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package check

import "github.com/sirupsen/logrus"

// Lrat checks derived clauses against their antecedent chains: under
// the negation of the derived clause, each antecedent in turn must be
// unit, until one is falsified.
type Lrat struct {
	base
}

// NewLrat creates a chain checker.
func NewLrat(log logrus.FieldLogger) *Lrat {
	return &Lrat{base: newBase("lrat checker", log)}
}

func (c *Lrat) AddDerivedClause(id uint64, redundant bool, lits []int, chain []uint64) {
	if !c.fresh("derive", id) {
		return
	}
	ok := c.checkChain(id, lits, chain)
	c.backtrack()
	if !ok {
		return
	}
	c.st.Derived++
	c.st.Checked++
	c.store(id, lits)
}

func (c *Lrat) checkChain(id uint64, lits []int, chain []uint64) bool {
	if !c.assume(lits) {
		return true
	}
	for _, cid := range chain {
		ante, ok := c.clauses[cid]
		if !ok {
			c.fail("derive", id, "antecedent %d is not a live clause", cid)
			return false
		}
		unit, free := 0, 0
		for _, l := range ante {
			switch c.val(l) {
			case 1:
				c.fail("derive", id, "antecedent %d is satisfied", cid)
				return false
			case 0:
				unit = l
				free++
			}
		}
		switch free {
		case 0:
			return true
		case 1:
			c.assign(unit)
		default:
			c.fail("derive", id, "antecedent %d is not unit", cid)
			return false
		}
	}
	c.fail("derive", id, "chain %v does not yield a conflict", chain)
	return false
}
