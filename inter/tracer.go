// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package inter

// Tracer receives proof events.  Literals are external (dimacs) and
// chains list antecedent clause ids in resolution order.  The slices
// passed to a Tracer are owned by the caller and only valid for the
// duration of the call.
type Tracer interface {
	// AddOriginalClause is called for input clauses, and with restore
	// set for clauses re-added after a WeakenMinus.
	AddOriginalClause(id uint64, redundant bool, lits []int, restore bool)
	AddDerivedClause(id uint64, redundant bool, lits []int, chain []uint64)
	DeleteClause(id uint64, redundant bool, lits []int)

	// WeakenMinus marks clause id as removed but restorable.
	WeakenMinus(id uint64, lits []int)

	// Strengthen notes that clause id has been tightened.
	Strengthen(id uint64)

	// FinalizeClause states that id is never referenced again.
	FinalizeClause(id uint64, lits []int)

	FinalizeProof(id uint64)
	BeginProof(id uint64)
}

// InternalTracer is a Tracer which is given access to the
// search engine it traces when it is connected.
type InternalTracer interface {
	Tracer
	ConnectInternal(x Internal)
}

// StatTracer is an InternalTracer which takes part in end of run
// statistics.
type StatTracer interface {
	InternalTracer

	// Who identifies the tracer in statistics output.
	Who() string

	// ReadStats adds the tracer's counters to st.
	ReadStats(st *Stats)
}

// FileTracer is a StatTracer writing a proof to a stream.
//
// Close flushes and closes the stream.  Close is idempotent and
// reports the first error encountered writing the proof.
type FileTracer interface {
	StatTracer
	Flush() error
	Close() error
}
