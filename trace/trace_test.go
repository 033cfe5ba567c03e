// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package trace

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/gproof/inter"
)

// refute plays a small refutation: [2] is derived from [1 2] and
// [-1 2], its parents are deleted, and the empty clause follows with
// the unit [-2].
func refute(t *testing.T, ft inter.FileTracer) {
	ft.BeginProof(2)
	ft.AddOriginalClause(1, false, []int{1, 2}, false)
	ft.AddOriginalClause(2, false, []int{-1, 2}, false)
	ft.AddDerivedClause(3, true, []int{2}, []uint64{1, 2})
	ft.DeleteClause(1, false, []int{1, 2})
	ft.DeleteClause(2, false, []int{-1, 2})
	ft.AddOriginalClause(4, false, []int{-2}, false)
	ft.AddDerivedClause(5, true, nil, []uint64{3, 4})
	ft.Strengthen(3)
	ft.FinalizeClause(3, []int{2})
	ft.FinalizeClause(4, []int{-2})
	ft.FinalizeClause(5, nil)
	ft.FinalizeProof(5)
	require.NoError(t, ft.Close())
}

func TestTextFormats(t *testing.T) {
	g := goldie.New(t)
	for _, tc := range []struct {
		name string
		mk   func(w *bytes.Buffer) inter.FileTracer
	}{
		{"drat", func(w *bytes.Buffer) inter.FileTracer { return NewDrat(w, false) }},
		{"lrat", func(w *bytes.Buffer) inter.FileTracer { return NewLrat(w, false) }},
		{"frat", func(w *bytes.Buffer) inter.FileTracer { return NewFrat(w, false, true) }},
		{"veripb", func(w *bytes.Buffer) inter.FileTracer { return NewVeripb(w, false, true, true) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			ft := tc.mk(&buf)
			refute(t, ft)
			g.Assert(t, tc.name, buf.Bytes())

			var st inter.Stats
			ft.ReadStats(&st)
			assert.Equal(t, int64(buf.Len()), st.Bytes)
		})
	}
}

func TestFratWithoutAntecedents(t *testing.T) {
	var buf bytes.Buffer
	refute(t, NewFrat(&buf, false, false))
	assert.NotContains(t, buf.String(), " l ")
	assert.Contains(t, buf.String(), "a 3 2 0\n")
	assert.Contains(t, buf.String(), "a 5 0\n")
}

func TestVeripbOptions(t *testing.T) {
	var buf bytes.Buffer
	refute(t, NewVeripb(&buf, false, false, false))
	s := buf.String()
	assert.NotContains(t, s, "del id")
	assert.Contains(t, s, "rup 1 x2 >= 1 ;\n")
	assert.Contains(t, s, "rup >= 1 ;\n")

	buf.Reset()
	v := NewVeripb(&buf, false, false, true)
	v.AddDerivedClause(7, false, []int{-3, 4}, nil)
	v.DeleteClause(7, false, []int{-3, 4})
	require.NoError(t, v.Flush())
	assert.Equal(t, "rup 1 ~x3 1 x4 >= 1 ;\ndel id 7 ;\n", buf.String())
}

func TestVeripbIgnoresBinary(t *testing.T) {
	var text, bin bytes.Buffer
	refute(t, NewVeripb(&text, false, true, true))
	refute(t, NewVeripb(&bin, true, true, true))
	assert.Equal(t, text.String(), bin.String())
	assert.True(t, strings.HasPrefix(bin.String(), "pseudo-Boolean proof version 2.0\n"))
}

func TestBinaryDrat(t *testing.T) {
	var buf bytes.Buffer
	refute(t, NewDrat(&buf, true))
	exp := []byte{'a', 4, 0, 'd', 2, 4, 0, 'd', 3, 4, 0, 'a', 0}
	assert.Equal(t, exp, buf.Bytes())
}

func TestBinaryLrat(t *testing.T) {
	var buf bytes.Buffer
	refute(t, NewLrat(&buf, true))
	exp := []byte{
		'a', 6, 4, 0, 2, 4, 0,
		'd', 2, 4, 0,
		'a', 10, 0, 6, 8, 0}
	assert.Equal(t, exp, buf.Bytes())
}

func TestBinaryFrat(t *testing.T) {
	var buf bytes.Buffer
	f := NewFrat(&buf, true, true)
	f.AddOriginalClause(1, false, []int{1, -2}, false)
	f.AddDerivedClause(2, true, []int{1}, []uint64{1})
	f.FinalizeClause(2, []int{1})
	require.NoError(t, f.Close())
	exp := []byte{
		'o', 2, 2, 5, 0,
		'a', 4, 2, 0, 'l', 2, 0,
		'f', 4, 2, 0}
	assert.Equal(t, exp, buf.Bytes())
}

func TestVarUint(t *testing.T) {
	var buf bytes.Buffer
	f := newFile("test", &buf, true)
	f.putVarUint(300)
	f.putVarUint(127)
	f.putVarUint(128)
	f.putBinID(300)
	require.NoError(t, f.Flush())
	exp := []byte{0xac, 0x02, 0x7f, 0x80, 0x01, 0xd8, 0x04}
	assert.Equal(t, exp, buf.Bytes())
}

func TestLratDeletesOnFlush(t *testing.T) {
	var buf bytes.Buffer
	l := NewLrat(&buf, false)
	l.AddOriginalClause(9, false, []int{1}, false)
	l.DeleteClause(9, false, []int{1})
	require.NoError(t, l.Flush())
	assert.Equal(t, "9 d 9 0\n", buf.String())
	require.NoError(t, l.Flush())
	assert.Equal(t, "9 d 9 0\n", buf.String())
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

func TestStickyError(t *testing.T) {
	w := &failWriter{}
	d := NewDrat(w, false)
	d.AddDerivedClause(1, false, []int{1, 2}, nil)
	err := d.Flush()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "drat tracer: flush"), err.Error())
	assert.Contains(t, err.Error(), "disk full")

	d.AddDerivedClause(2, false, []int{3}, nil)
	assert.Equal(t, err, d.Flush())
	assert.Equal(t, err, d.Close())
	assert.Equal(t, err, d.Close())
	assert.Equal(t, 1, w.closes)
}

func TestCloseIdempotent(t *testing.T) {
	w := &closeBuffer{}
	f := NewFrat(w, false, false)
	f.AddOriginalClause(1, false, []int{1}, false)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
	f.AddOriginalClause(2, false, []int{2}, false)
	assert.Equal(t, "o 1 1 0\n", w.String())
	assert.Equal(t, 1, w.closes)
}

type closeBuffer struct {
	bytes.Buffer
	closes int
}

func (b *closeBuffer) Close() error {
	b.closes++
	return nil
}

func TestWho(t *testing.T) {
	var buf bytes.Buffer
	for who, ft := range map[string]inter.FileTracer{
		"drat tracer":   NewDrat(&buf, false),
		"lrat tracer":   NewLrat(&buf, false),
		"frat tracer":   NewFrat(&buf, false, false),
		"veripb tracer": NewVeripb(&buf, false, false, false),
	} {
		assert.Equal(t, who, ft.Who())
	}
}
