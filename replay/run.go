// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package replay

import (
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/go-air/gproof/internal/check"
	"github.com/go-air/gproof/internal/xo"
	"github.com/go-air/gproof/metrics"
	"github.com/go-air/gproof/proof"
	"github.com/go-air/gproof/z"
)

// Config configures a replay.
type Config struct {
	Options proof.Options

	// Out receives the proof in the format selected by Options, nil
	// for none.  If Out is an io.Closer it is closed.
	Out io.Writer

	// Collect removes satisfied clauses and false literals after each
	// derived unit.
	Collect bool

	// Metrics, if set, registers proof event metrics.
	Metrics prometheus.Registerer

	Log logrus.FieldLogger
}

// Result summarizes a replay.
type Result struct {
	Steps int
	Bot   uint64 // id of the empty clause in the output, 0 if none
	Stats []proof.TracerStats
}

type runner struct {
	s    *xo.S
	ids  map[uint64]uint64 // proof id -> output id, 0 once collected
	back map[uint64]uint64 // output id -> proof id
	lits map[uint64][]int  // proof id -> literals as read
}

// Run replays steps.  Clauses keep their ids in the output where
// possible, and are renumbered where Collect has taken their id.
func Run(steps []Step, cfg Config) (res *Result, err error) {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := cfg.Options.Validate(); err != nil {
		return nil, err
	}
	s := xo.NewSOptions(cfg.Options, log)
	reg := s.Tracing()
	if cfg.Out != nil {
		reg.Trace(cfg.Out)
	}
	if cfg.Options.CheckProof != 0 {
		reg.Check()
	}
	if cfg.Metrics != nil {
		mt, err := metrics.New(cfg.Metrics)
		if err != nil {
			return nil, err
		}
		reg.ConnectStatTracer(mt, false)
	}
	if reg.Lrat() {
		for i := range steps {
			st := &steps[i]
			if st.Kind == Add && len(st.Hints) == 0 {
				reg.CloseTrace()
				return nil, errors.Errorf("line %d: clause %d has no hints and no chain builder is configured", st.Line, st.ID)
			}
		}
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		f, ok := p.(*check.Failure)
		if !ok {
			panic(p)
		}
		reg.CloseTrace()
		res, err = nil, errors.Wrap(f, "proof rejected")
	}()

	r := &runner{
		s:    s,
		ids:  make(map[uint64]uint64),
		back: make(map[uint64]uint64),
		lits: make(map[uint64][]int)}
	s.Moved = r.moved
	if err := r.run(steps, cfg.Collect); err != nil {
		reg.CloseTrace()
		return nil, err
	}
	s.Finalize()
	if err := reg.CloseTrace(); err != nil {
		return nil, err
	}
	reg.LogStats()
	return &Result{Steps: len(steps), Bot: s.Bot, Stats: reg.Stats()}, nil
}

func (r *runner) run(steps []Step, collect bool) error {
	s := r.s
	begun := false
	var ms []z.Lit
	var chain []uint64
	for i := range steps {
		st := &steps[i]
		if st.Kind != Original && !begun {
			s.BeginProof()
			begun = true
		}
		switch st.Kind {
		case Original, Add:
			if _, ok := r.ids[st.ID]; ok {
				return errors.Errorf("line %d: clause id %d in use", st.Line, st.ID)
			}
			ms = ms[:0]
			for _, l := range st.Lits {
				ms = append(ms, z.Dimacs2Lit(l))
			}
			id := st.ID
			if id <= s.LastID() {
				id = s.NextID()
			}
			if st.Kind == Original {
				s.AddClause(id, ms)
				r.bind(st.ID, id, st.Lits)
				continue
			}
			chain = chain[:0]
			for _, h := range st.Hints {
				e, ok := r.ids[h]
				if !ok {
					return errors.Errorf("line %d: hint %d is not a live clause", st.Line, h)
				}
				if e == 0 {
					if e = r.satisfier(h); e == 0 {
						return errors.Errorf("line %d: hint %d was collected and no unit satisfies it", st.Line, h)
					}
				}
				if !contains(chain, e) {
					chain = append(chain, e)
				}
			}
			r.bind(st.ID, s.Derive(id, ms, chain), st.Lits)
			if collect && len(ms) == 1 {
				s.Collect()
			}
		case Delete:
			e, ok := r.ids[st.ID]
			if !ok {
				return errors.Errorf("line %d: delete of unknown clause %d", st.Line, st.ID)
			}
			delete(r.ids, st.ID)
			delete(r.lits, st.ID)
			if e != 0 {
				delete(r.back, e)
				s.Delete(e)
			}
		case Finalize:
			if _, ok := r.ids[st.ID]; !ok {
				return errors.Errorf("line %d: finalize of unknown clause %d", st.Line, st.ID)
			}
		}
	}
	if !begun {
		s.BeginProof()
	}
	return nil
}

func (r *runner) bind(in, out uint64, lits []int) {
	r.ids[in] = out
	r.back[out] = in
	r.lits[in] = lits
}

// satisfier returns the id of a unit clause which makes a literal of
// the collected proof clause in true.  In a chain that unit stands in for the
// clause: where the clause was unit on that literal the unit assigns
// it, and where the literal was already false the unit conflicts.
func (r *runner) satisfier(in uint64) uint64 {
	for _, l := range r.lits[in] {
		m := r.s.Vars.ToInner(z.Dimacs2Lit(l))
		if id := r.s.UnitID(m); id != 0 {
			return id
		}
	}
	return 0
}

func contains(ids []uint64, id uint64) bool {
	for _, o := range ids {
		if o == id {
			return true
		}
	}
	return false
}

func (r *runner) moved(old, to uint64) {
	in, ok := r.back[old]
	if !ok {
		return
	}
	delete(r.back, old)
	r.ids[in] = to
	if to != 0 {
		r.back[to] = in
	}
}
