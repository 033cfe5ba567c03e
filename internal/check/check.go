// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package check provides in-memory proof checkers, connected as tracers
// to re-verify every step of a proof as it is produced.
package check

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/go-air/gproof/inter"
)

// Failure describes a proof step a checker could not verify.
type Failure struct {
	Checker string
	Op      string
	ID      uint64
	Msg     string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s %d: %s", f.Checker, f.Op, f.ID, f.Msg)
}

// base holds what both checkers track: the live clauses by id, the
// restorable clauses, and a scratch assignment over external variables.
type base struct {
	who string
	log logrus.FieldLogger
	x   inter.Internal

	// Fatal is called with a *Failure for every step which fails to
	// check.  It defaults to panicking.
	Fatal func(error)

	// Strict makes FinalizeProof fail unless every live clause has
	// been finalized.
	Strict bool

	clauses  map[uint64][]int
	restores map[string]int
	vals     []int8
	trail    []int
	st       inter.Stats
}

func newBase(who string, log logrus.FieldLogger) base {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return base{
		who:      who,
		log:      log.WithField("checker", who),
		Fatal:    func(err error) { panic(err) },
		clauses:  make(map[uint64][]int),
		restores: make(map[string]int),
		vals:     make([]int8, 1, 128)}
}

// ConnectInternal implements inter.InternalTracer.
func (b *base) ConnectInternal(x inter.Internal) {
	b.x = x
	b.growVar(int(x.MaxVar()))
}

// Who implements inter.StatTracer.
func (b *base) Who() string {
	return b.who
}

// ReadStats implements inter.StatTracer.
func (b *base) ReadStats(st *inter.Stats) {
	st.Add(&b.st)
}

// Live returns the number of clauses neither deleted nor finalized.
func (b *base) Live() int {
	return len(b.clauses)
}

func (b *base) fail(op string, id uint64, format string, args ...interface{}) {
	f := &Failure{Checker: b.who, Op: op, ID: id, Msg: fmt.Sprintf(format, args...)}
	b.log.WithError(f).Error("proof check failed")
	b.Fatal(f)
}

func (b *base) AddOriginalClause(id uint64, redundant bool, lits []int, restore bool) {
	if !b.fresh("original", id) {
		return
	}
	if restore {
		k := key(lits)
		if b.restores[k] == 0 {
			b.fail("restore", id, "clause %v was not weakened", lits)
			return
		}
		b.restores[k]--
		b.st.Restored++
	} else {
		b.st.Original++
	}
	b.store(id, lits)
}

func (b *base) DeleteClause(id uint64, redundant bool, lits []int) {
	if !b.known("delete", id, lits) {
		return
	}
	delete(b.clauses, id)
	b.st.Deleted++
}

func (b *base) WeakenMinus(id uint64, lits []int) {
	if !b.known("weaken", id, lits) {
		return
	}
	b.restores[key(lits)]++
	b.st.Weakened++
}

func (b *base) Strengthen(id uint64) {
	if _, ok := b.clauses[id]; !ok {
		b.fail("strengthen", id, "unknown clause")
		return
	}
	b.st.Strengthened++
}

func (b *base) FinalizeClause(id uint64, lits []int) {
	if !b.known("finalize", id, lits) {
		return
	}
	delete(b.clauses, id)
	b.st.Finalized++
}

func (b *base) FinalizeProof(id uint64) {
	if b.Strict && len(b.clauses) != 0 {
		b.fail("conclude", id, "%d clauses not finalized", len(b.clauses))
		return
	}
	b.log.WithFields(logrus.Fields{"id": id, "live": len(b.clauses)}).Debug("proof concluded")
}

func (b *base) BeginProof(id uint64) {
	b.log.WithField("id", id).Debug("proof begins")
}

func (b *base) fresh(op string, id uint64) bool {
	if id == 0 {
		b.fail(op, id, "clause without id")
		return false
	}
	if _, ok := b.clauses[id]; ok {
		b.fail(op, id, "id already in use")
		return false
	}
	return true
}

func (b *base) known(op string, id uint64, lits []int) bool {
	c, ok := b.clauses[id]
	if !ok {
		b.fail(op, id, "unknown clause")
		return false
	}
	if key(c) != key(lits) {
		b.fail(op, id, "literals %v differ from %v", lits, c)
		return false
	}
	return true
}

func (b *base) store(id uint64, lits []int) {
	cp := make([]int, len(lits))
	copy(cp, lits)
	b.clauses[id] = cp
	for _, l := range lits {
		b.growLit(l)
	}
}

// assume assigns the negation of lits.  It returns false if lits is
// a tautology.
func (b *base) assume(lits []int) bool {
	for _, l := range lits {
		b.growLit(l)
		switch b.val(l) {
		case 1:
			return false
		case 0:
			b.assign(-l)
		}
	}
	return true
}

func (b *base) assign(l int) {
	if l < 0 {
		b.vals[-l] = -1
	} else {
		b.vals[l] = 1
	}
	b.trail = append(b.trail, l)
}

func (b *base) val(l int) int8 {
	if l < 0 {
		return -b.vals[-l]
	}
	return b.vals[l]
}

func (b *base) backtrack() {
	for _, l := range b.trail {
		if l < 0 {
			l = -l
		}
		b.vals[l] = 0
	}
	b.trail = b.trail[:0]
}

func (b *base) growLit(l int) {
	if l < 0 {
		l = -l
	}
	b.growVar(l)
}

func (b *base) growVar(v int) {
	for v >= len(b.vals) {
		b.vals = append(b.vals, 0)
	}
}

// key is an order insensitive rendering of a literal set.
func key(lits []int) string {
	cp := make([]int, len(lits))
	copy(cp, lits)
	sort.Ints(cp)
	return fmt.Sprint(cp)
}
