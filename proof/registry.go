// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package proof

import (
	"io"

	"github.com/sirupsen/logrus"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/go-air/gproof/internal/check"
	"github.com/go-air/gproof/internal/lrat"
	"github.com/go-air/gproof/inter"
	"github.com/go-air/gproof/trace"
)

// Registry owns the tracers of one search engine.  Tracers are kept in
// one list per capability tier, in connection order, and are all
// connected to the engine's Proof, which is created on first use.
type Registry struct {
	x    inter.Internal
	opts Options
	log  logrus.FieldLogger

	proof   *Proof
	builder *lrat.Builder
	lrat    bool

	tracers   []inter.Tracer
	internals []inter.InternalTracer
	stats     []inter.StatTracer
	files     []inter.FileTracer
}

// NewRegistry creates a registry for x.  If log is nil the logrus
// standard logger is used.
func NewRegistry(x inter.Internal, opts Options, log logrus.FieldLogger) *Registry {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Registry{x: x, opts: opts, log: log}
}

// Options returns the options r was created with.
func (r *Registry) Options() Options {
	return r.opts
}

// Proof returns the Proof of the engine, creating it and, with
// ExternalLrat, its chain builder on the first call.
func (r *Registry) Proof() *Proof {
	if r.proof == nil {
		r.proof = New(r.x, r.log)
		r.log.Debug("connecting proof to internal solver")
		r.setupBuilder()
	}
	return r.proof
}

// Active returns whether any proof functionality has been requested.
func (r *Registry) Active() bool {
	return r.proof != nil
}

// Lrat returns whether the search engine must supply antecedent chains
// with derived clauses.
func (r *Registry) Lrat() bool {
	return r.lrat
}

func (r *Registry) setupBuilder() {
	if r.builder != nil || !r.opts.ExternalLrat {
		return
	}
	r.builder = lrat.New(r.log)
	r.log.Debug("connecting lrat proof chain builder")
	r.proof.SetBuilder(r.builder)
}

func (r *Registry) forceLrat() {
	if r.lrat || r.builder != nil {
		return
	}
	r.lrat = true
}

func (r *Registry) connect(t inter.Tracer, antecedents bool) {
	p := r.Proof()
	if antecedents {
		r.forceLrat()
	}
	p.Connect(t)
}

// ConnectTracer connects a base tier tracer.  antecedents requests
// antecedent chains.
func (r *Registry) ConnectTracer(t inter.Tracer, antecedents bool) {
	r.connect(t, antecedents)
	r.tracers = append(r.tracers, t)
}

// ConnectInternalTracer connects t and hands it the search engine.
func (r *Registry) ConnectInternalTracer(t inter.InternalTracer, antecedents bool) {
	t.ConnectInternal(r.x)
	r.connect(t, antecedents)
	r.internals = append(r.internals, t)
}

// ConnectStatTracer connects t and includes it in statistics.
func (r *Registry) ConnectStatTracer(t inter.StatTracer, antecedents bool) {
	t.ConnectInternal(r.x)
	r.connect(t, antecedents)
	r.stats = append(r.stats, t)
}

// ConnectFileTracer connects t; it is flushed and closed with the
// proof trace.
func (r *Registry) ConnectFileTracer(t inter.FileTracer, antecedents bool) {
	t.ConnectInternal(r.x)
	r.connect(t, antecedents)
	r.files = append(r.files, t)
}

// DisconnectTracer disconnects t from the base tier and returns
// whether it was connected there.
func (r *Registry) DisconnectTracer(t inter.Tracer) bool {
	var ok bool
	if r.tracers, ok = remove(r.tracers, t); ok {
		r.proof.Disconnect(t)
	}
	return ok
}

// DisconnectInternalTracer is DisconnectTracer for the internal tier.
func (r *Registry) DisconnectInternalTracer(t inter.InternalTracer) bool {
	var ok bool
	if r.internals, ok = remove(r.internals, t); ok {
		r.proof.Disconnect(t)
	}
	return ok
}

// DisconnectStatTracer is DisconnectTracer for the statistics tier.
func (r *Registry) DisconnectStatTracer(t inter.StatTracer) bool {
	var ok bool
	if r.stats, ok = remove(r.stats, t); ok {
		r.proof.Disconnect(t)
	}
	return ok
}

// DisconnectFileTracer is DisconnectTracer for the file tier.  The
// tracer is not closed.
func (r *Registry) DisconnectFileTracer(t inter.FileTracer) bool {
	var ok bool
	if r.files, ok = remove(r.files, t); ok {
		r.proof.Disconnect(t)
	}
	return ok
}

func remove[T comparable](ts []T, t T) ([]T, bool) {
	for i, u := range ts {
		if u == t {
			return append(ts[:i], ts[i+1:]...), true
		}
	}
	return ts, false
}

// Trace connects a file tracer writing to w in the format selected by
// the options.  If w is an io.Closer it is closed with the tracer.
func (r *Registry) Trace(w io.Writer) inter.FileTracer {
	r.Proof()
	o := &r.opts
	var ft inter.FileTracer
	switch o.Format() {
	case Veripb:
		ft = trace.NewVeripb(w, o.Binary, o.Antecedents(), o.VeripbDeletions())
	case Frat:
		ft = trace.NewFrat(w, o.Binary, o.Antecedents())
	case Lrat:
		ft = trace.NewLrat(w, o.Binary)
	default:
		ft = trace.NewDrat(w, o.Binary)
	}
	r.log.WithFields(logrus.Fields{
		"format": o.Format(),
		"binary": o.Binary}).Debug("connecting proof tracer")
	r.ConnectFileTracer(ft, o.Antecedents())
	return ft
}

// Check connects the checkers selected by the options.
func (r *Registry) Check() {
	r.Proof()
	if r.opts.CheckProof > 1 {
		r.log.Debug("connecting lrat proof checker")
		r.ConnectStatTracer(check.NewLrat(r.log), true)
	}
	if r.opts.CheckProof == 1 || r.opts.CheckProof == 3 {
		r.log.Debug("connecting proof checker")
		r.ConnectStatTracer(check.NewRup(r.log), false)
	}
}

// FlushTrace flushes every file tracer.
func (r *Registry) FlushTrace() error {
	var errs []error
	for _, ft := range r.files {
		if err := ft.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return utilerrors.NewAggregate(errs)
}

// CloseTrace closes every file tracer, also after errors.
func (r *Registry) CloseTrace() error {
	var errs []error
	for _, ft := range r.files {
		if err := ft.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return utilerrors.NewAggregate(errs)
}

// TracerStats are the statistics of one tracer.
type TracerStats struct {
	Who string
	inter.Stats
}

// Stats reads the statistics of every statistics and file tracer.
func (r *Registry) Stats() []TracerStats {
	res := make([]TracerStats, 0, len(r.stats)+len(r.files))
	read := func(t inter.StatTracer) {
		ts := TracerStats{Who: t.Who()}
		t.ReadStats(&ts.Stats)
		res = append(res, ts)
	}
	for _, t := range r.stats {
		read(t)
	}
	for _, t := range r.files {
		read(t)
	}
	return res
}

// LogStats logs Stats at info level.
func (r *Registry) LogStats() {
	for _, ts := range r.Stats() {
		r.log.WithField("tracer", ts.Who).Info(ts.Stats.String())
	}
}
