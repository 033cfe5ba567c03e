// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"bytes"
	"fmt"

	"github.com/go-air/gproof/z"
)

type cslot struct {
	id     uint64
	learnt bool
	used   bool
	lits   []z.Lit
}

// Cdb is a clause arena.  A z.C handle names a slot, and stays valid
// until the clause is freed, however often its id changes.
type Cdb struct {
	slots []cslot
	free  []z.C
	live  int
}

// NewCdb creates an arena with room for capHint clauses.
func NewCdb(capHint int) *Cdb {
	return &Cdb{slots: make([]cslot, 0, capHint)}
}

// Alloc stores a copy of ms under id.
func (d *Cdb) Alloc(id uint64, learnt bool, ms []z.Lit) z.C {
	var c z.C
	if n := len(d.free); n > 0 {
		c = d.free[n-1]
		d.free = d.free[:n-1]
	} else {
		d.slots = append(d.slots, cslot{})
		c = z.C(len(d.slots))
	}
	sl := &d.slots[c-1]
	sl.id = id
	sl.learnt = learnt
	sl.used = true
	sl.lits = append(sl.lits[:0], ms...)
	d.live++
	return c
}

// Free releases c.
func (d *Cdb) Free(c z.C) {
	sl := d.slot(c)
	sl.used = false
	sl.id = 0
	sl.lits = sl.lits[:0]
	d.free = append(d.free, c)
	d.live--
}

// Live returns whether c names an allocated clause.
func (d *Cdb) Live(c z.C) bool {
	return c != z.CNull && int(c) <= len(d.slots) && d.slots[c-1].used
}

// Len returns the number of allocated clauses.
func (d *Cdb) Len() int {
	return d.live
}

// Clauses returns the allocated clauses in slot order.
func (d *Cdb) Clauses(dst []z.C) []z.C {
	for i := range d.slots {
		if d.slots[i].used {
			dst = append(dst, z.C(i+1))
		}
	}
	return dst
}

func (d *Cdb) slot(c z.C) *cslot {
	if !d.Live(c) {
		panic(fmt.Sprintf("xo: %s is not a live clause", c))
	}
	return &d.slots[c-1]
}

func (d *Cdb) Lits(c z.C) []z.Lit {
	return d.slot(c).lits
}

func (d *Cdb) ID(c z.C) uint64 {
	return d.slot(c).id
}

func (d *Cdb) Redundant(c z.C) bool {
	return d.slot(c).learnt
}

func (d *Cdb) setID(c z.C, id uint64) {
	d.slot(c).id = id
}

func (d *Cdb) setLits(c z.C, ms []z.Lit) {
	sl := d.slot(c)
	sl.lits = append(sl.lits[:0], ms...)
}

// remove drops every literal of c for which drop is true, in place.
func (d *Cdb) remove(c z.C, drop func(m z.Lit) bool) {
	sl := d.slot(c)
	j := 0
	for _, m := range sl.lits {
		if drop(m) {
			continue
		}
		sl.lits[j] = m
		j++
	}
	sl.lits = sl.lits[:j]
}

func (d *Cdb) String() string {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "cdb[%d live]", d.live)
	for i := range d.slots {
		sl := &d.slots[i]
		if !sl.used {
			continue
		}
		fmt.Fprintf(buf, " %s#%d%v", z.C(i+1), sl.id, sl.lits)
	}
	return buf.String()
}
