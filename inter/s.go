// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package inter

import "github.com/go-air/gproof/z"

// Adder encapsulates something to which
// clauses can be added by sequences of
// z.LitNull-terminated literals.
type Adder interface {
	// add a literal to the clauses.  if m is z.LitNull,
	// signals end of clause.
	Add(m z.Lit)
}

// Interface MaxVar is something which records the
// maximum variable from a stream of inputs and can
// return the maximum of all such variables.
type MaxVar interface {
	MaxVar() z.Var
}

// Clauses gives access to the clause arena of a search engine.
//
// Lits returns the live literals of c.  The result is not a copy: it is
// only valid until the clause is next modified and must not be retained.
type Clauses interface {
	Lits(c z.C) []z.Lit
	ID(c z.C) uint64
	SetID(c z.C, id uint64)
	Redundant(c z.C) bool
}

// Internal is what the proof layer sees of a search engine.
type Internal interface {
	MaxVar
	Clauses

	// Externalize maps an internal literal to the signed external
	// (dimacs) literal used in proofs.
	Externalize(m z.Lit) int

	// Fixed returns the permanent top level value of m: 1 if m is
	// true, -1 if false, 0 if unassigned.
	Fixed(m z.Lit) int8

	// UnitID returns the id of the unit clause which made m true at
	// the top level, 0 if there is none.
	UnitID(m z.Lit) uint64

	// NextID allocates the next clause identifier.  It is the only
	// source of new identifiers.
	NextID() uint64
}
