// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"fmt"

	"github.com/go-air/gproof/z"
)

// The methods below implement inter.Internal.

func (s *S) MaxVar() z.Var {
	return s.Vars.Max
}

func (s *S) Lits(c z.C) []z.Lit {
	return s.Cdb.Lits(c)
}

func (s *S) ID(c z.C) uint64 {
	return s.Cdb.ID(c)
}

func (s *S) SetID(c z.C, id uint64) {
	s.rebind(c, id)
}

func (s *S) Redundant(c z.C) bool {
	return s.Cdb.Redundant(c)
}

// Externalize panics on literals of inner only variables, which proofs
// of S never contain.
func (s *S) Externalize(m z.Lit) int {
	o := s.Vars.ToOuter(m)
	if o == z.LitNull {
		panic(fmt.Sprintf("xo: %s has no outer literal", m))
	}
	return o.Dimacs()
}

func (s *S) Fixed(m z.Lit) int8 {
	if int(m) >= len(s.vals) {
		return 0
	}
	return s.vals[m]
}

func (s *S) UnitID(m z.Lit) uint64 {
	if s.Fixed(m) <= 0 {
		return 0
	}
	return s.units[m]
}

func (s *S) NextID() uint64 {
	s.lastID++
	return s.lastID
}

// LastID returns the largest id in use or handed out so far.
func (s *S) LastID() uint64 {
	return s.lastID
}
