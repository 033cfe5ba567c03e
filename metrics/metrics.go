// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package metrics exports proof statistics as prometheus metrics.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-air/gproof/inter"
)

const (
	EventLabel = "event"

	Original     = "original"
	Restored     = "restored"
	Derived      = "derived"
	Deleted      = "deleted"
	Weakened     = "weakened"
	Strengthened = "strengthened"
	Finalized    = "finalized"
	Concluded    = "concluded"
)

// Tracer counts proof events.  It is a statistics tier consumer and
// never asks for antecedents.
type Tracer struct {
	events      *prometheus.CounterVec
	size        prometheus.Histogram
	antecedents prometheus.Counter
	st          inter.Stats
}

// New creates a Tracer and registers its collectors with reg, or with
// the default registerer if reg is nil.
func New(reg prometheus.Registerer) (*Tracer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	t := &Tracer{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gproof_events_total",
				Help: "Number of proof events by kind",
			},
			[]string{EventLabel},
		),
		size: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gproof_derived_clause_size",
				Help:    "Number of literals in derived clauses",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		antecedents: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gproof_antecedents_total",
				Help: "Number of antecedents of derived clauses",
			},
		),
	}
	for _, c := range []prometheus.Collector{t.events, t.size, t.antecedents} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "registering proof metrics")
		}
	}
	return t, nil
}

func (t *Tracer) ConnectInternal(x inter.Internal) {}

func (t *Tracer) Who() string {
	return "metrics"
}

func (t *Tracer) ReadStats(st *inter.Stats) {
	st.Add(&t.st)
}

func (t *Tracer) inc(event string) {
	t.events.WithLabelValues(event).Inc()
}

func (t *Tracer) AddOriginalClause(id uint64, redundant bool, lits []int, restore bool) {
	if restore {
		t.st.Restored++
		t.inc(Restored)
		return
	}
	t.st.Original++
	t.inc(Original)
}

func (t *Tracer) AddDerivedClause(id uint64, redundant bool, lits []int, chain []uint64) {
	t.st.Derived++
	t.inc(Derived)
	t.size.Observe(float64(len(lits)))
	t.antecedents.Add(float64(len(chain)))
}

func (t *Tracer) DeleteClause(id uint64, redundant bool, lits []int) {
	t.st.Deleted++
	t.inc(Deleted)
}

func (t *Tracer) WeakenMinus(id uint64, lits []int) {
	t.st.Weakened++
	t.inc(Weakened)
}

func (t *Tracer) Strengthen(id uint64) {
	t.st.Strengthened++
	t.inc(Strengthened)
}

func (t *Tracer) FinalizeClause(id uint64, lits []int) {
	t.st.Finalized++
	t.inc(Finalized)
}

func (t *Tracer) FinalizeProof(id uint64) {
	t.inc(Concluded)
}

func (t *Tracer) BeginProof(id uint64) {}
