// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package proof

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/go-air/gproof/inter"
	"github.com/go-air/gproof/trace"
	"github.com/go-air/gproof/z"
)

// refute drives p through a refutation of [1 2] [-1 2] [-2].
func refute(p *Proof) {
	p.BeginProof(2)
	p.AddOriginalClause(1, false, dimacs(1, 2))
	p.AddOriginalClause(2, false, dimacs(-1, 2))
	p.AddDerivedUnitClause(3, z.Dimacs2Lit(2), []uint64{1, 2})
	p.DeleteClauseLits(1, false, dimacs(1, 2))
	p.AddOriginalClause(4, false, dimacs(-2))
	p.AddDerivedEmptyClause(5, []uint64{3, 4})
	p.FinalizeClauseLits(2, dimacs(-1, 2))
	p.FinalizeUnit(3, z.Dimacs2Lit(2))
	p.FinalizeUnit(4, z.Dimacs2Lit(-2))
	p.FinalizeClauseLits(5, nil)
	p.FinalizeProof(5)
}

func whos(ts []TracerStats) []string {
	var res []string
	for _, t := range ts {
		res = append(res, t.Who)
	}
	return res
}

func TestRegistryLazy(t *testing.T) {
	r := NewRegistry(newEngine(), Options{}, nil)
	assert.False(t, r.Active())
	p := r.Proof()
	assert.True(t, r.Active())
	assert.Same(t, p, r.Proof())
	assert.Nil(t, p.Builder())
	assert.False(t, r.Lrat())
}

func TestRegistryTraceFormats(t *testing.T) {
	for _, tc := range []struct {
		opts Options
		want inter.FileTracer
		lrat bool
	}{
		{Options{}, &trace.Drat{}, false},
		{Options{Lrat: true}, &trace.Lrat{}, true},
		{Options{Frat: 1}, &trace.Frat{}, true},
		{Options{Frat: 2}, &trace.Frat{}, false},
		{Options{Veripb: 2}, &trace.Veripb{}, true},
		{Options{Veripb: 4}, &trace.Veripb{}, false},
		{Options{Lrat: true, ExternalLrat: true}, &trace.Lrat{}, false},
	} {
		r := NewRegistry(newEngine(), tc.opts, nil)
		ft := r.Trace(&bytes.Buffer{})
		assert.IsType(t, tc.want, ft, "%+v", tc.opts)
		assert.Equal(t, tc.lrat, r.Lrat(), "%+v", tc.opts)
		assert.Equal(t, tc.opts.ExternalLrat, r.Proof().Builder() != nil, "%+v", tc.opts)
		assert.Equal(t, 1, r.Proof().Tracers())
	}
}

func TestRegistryLratTrace(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(newEngine(), Options{Lrat: true, CheckProof: 3}, nil)
	r.Trace(&buf)
	r.Check()
	refute(r.Proof())
	require.NoError(t, r.CloseTrace())
	assert.Equal(t, "3 2 0 1 2 0\n4 d 1 0\n5 0 3 4 0\n", buf.String())

	st := r.Stats()
	assert.Equal(t, []string{"lrat checker", "rup checker", "lrat tracer"}, whos(st))
	for _, s := range st[:2] {
		assert.Equal(t, int64(3), s.Original, s.Who)
		assert.Equal(t, int64(2), s.Checked, s.Who)
		assert.Equal(t, int64(4), s.Finalized, s.Who)
	}
	assert.Equal(t, int64(buf.Len()), st[2].Bytes)
}

func TestRegistryCheckModes(t *testing.T) {
	for _, tc := range []struct {
		mode int
		whos []string
		lrat bool
	}{
		{0, nil, false},
		{1, []string{"rup checker"}, false},
		{2, []string{"lrat checker"}, true},
		{3, []string{"lrat checker", "rup checker"}, true},
	} {
		r := NewRegistry(newEngine(), Options{CheckProof: tc.mode}, nil)
		r.Check()
		assert.Equal(t, tc.whos, whos(r.Stats()), "mode %d", tc.mode)
		assert.Equal(t, tc.lrat, r.Lrat(), "mode %d", tc.mode)
	}
}

func TestRegistryExternalLrat(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(newEngine(), Options{Lrat: true, ExternalLrat: true, CheckProof: 2}, nil)
	r.Trace(&buf)
	r.Check()
	assert.False(t, r.Lrat())

	p := r.Proof()
	p.BeginProof(2)
	p.AddOriginalClause(1, false, dimacs(1, 2))
	p.AddOriginalClause(2, false, dimacs(-1, 2))
	p.AddDerivedUnitClause(3, z.Dimacs2Lit(2), nil)
	p.AddOriginalClause(4, false, dimacs(-2))
	p.AddDerivedEmptyClause(5, nil)
	p.FinalizeProof(5)
	require.NoError(t, r.CloseTrace())
	assert.Equal(t, "3 2 0 1 2 0\n5 0 3 4 0\n", buf.String())
}

func TestRegistryDisconnect(t *testing.T) {
	r := NewRegistry(newEngine(), Options{}, nil)
	a, b := &recorder{}, &recorder{}
	r.ConnectTracer(a, false)
	r.ConnectTracer(b, true)
	assert.True(t, r.Lrat())
	assert.True(t, r.DisconnectTracer(a))
	assert.False(t, r.DisconnectTracer(a))

	ft := trace.NewDrat(&bytes.Buffer{}, false)
	assert.False(t, r.DisconnectFileTracer(ft))
	r.ConnectFileTracer(ft, false)
	// connected to another tier only
	assert.False(t, r.DisconnectStatTracer(ft))
	assert.True(t, r.DisconnectFileTracer(ft))

	r.Proof().Strengthen(7)
	assert.Empty(t, a.events)
	assert.Equal(t, []string{"s 7"}, b.events)
	assert.Empty(t, r.Stats())
}

type internalRecorder struct {
	recorder
	x inter.Internal
}

func (r *internalRecorder) ConnectInternal(x inter.Internal) { r.x = x }

func TestRegistryInternalTracer(t *testing.T) {
	x := newEngine()
	r := NewRegistry(x, Options{}, nil)
	ir := &internalRecorder{}
	r.ConnectInternalTracer(ir, false)
	assert.Equal(t, inter.Internal(x), ir.x)
	r.Proof().Strengthen(2)
	assert.Equal(t, []string{"s 2"}, ir.events)
	assert.True(t, r.DisconnectInternalTracer(ir))
	assert.Equal(t, 0, r.Proof().Tracers())
}

type failWriter struct {
	closes int
}

func (w *failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func (w *failWriter) Close() error {
	w.closes++
	return nil
}

func TestRegistryTraceErrors(t *testing.T) {
	r := NewRegistry(newEngine(), Options{}, nil)
	bad, good, worse := &failWriter{}, &bytes.Buffer{}, &failWriter{}
	r.Trace(bad)
	r.Trace(good)
	r.Trace(worse)
	refute(r.Proof())

	err := r.FlushTrace()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drat tracer: flush: disk full")
	assert.NotEmpty(t, good.String())
	var agg utilerrors.Aggregate
	require.ErrorAs(t, err, &agg)
	assert.Len(t, agg.Errors(), 2)

	err = r.CloseTrace()
	require.ErrorAs(t, err, &agg)
	assert.Len(t, agg.Errors(), 2)
	assert.Equal(t, 1, bad.closes)
	assert.Equal(t, 1, worse.closes)

	good.Reset()
	r = NewRegistry(newEngine(), Options{}, nil)
	r.Trace(good)
	refute(r.Proof())
	assert.NoError(t, r.FlushTrace())
	assert.NoError(t, r.CloseTrace())
}

func TestRegistryLogStats(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := NewRegistry(newEngine(), Options{CheckProof: 1}, log)
	r.Check()
	r.Trace(&bytes.Buffer{})
	refute(r.Proof())
	require.NoError(t, r.CloseTrace())

	hook.Reset()
	r.LogStats()
	require.Len(t, hook.Entries, 2)
	for i, who := range []string{"rup checker", "drat tracer"} {
		e := hook.Entries[i]
		assert.Equal(t, logrus.InfoLevel, e.Level)
		assert.Equal(t, who, e.Data["tracer"])
	}
	assert.Contains(t, hook.Entries[0].Message, "original 3")
}
