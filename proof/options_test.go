// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package proof

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	o, err := LoadOptions(strings.NewReader("frat: 1\nbinary: true\ncheckproof: 3\nexternallrat: true\n"))
	require.NoError(t, err)
	assert.Equal(t, Options{Frat: 1, Binary: true, CheckProof: 3, ExternalLrat: true}, o)

	o, err = LoadOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Options{}, o)

	_, err = LoadOptions(strings.NewReader("fratt: 1\n"))
	assert.Error(t, err)

	_, err = LoadOptions(strings.NewReader("veripb: 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "veripb must be in 0..4")
}

func TestValidate(t *testing.T) {
	for _, o := range []Options{{Frat: -1}, {Frat: 3}, {Veripb: 5}, {CheckProof: 4}} {
		assert.Error(t, o.Validate(), "%+v", o)
	}
	assert.NoError(t, (&Options{Frat: 2, Veripb: 4, CheckProof: 3}).Validate())
}

func TestFormatSelection(t *testing.T) {
	for _, tc := range []struct {
		opts        Options
		format      Format
		antecedents bool
		deletions   bool
	}{
		{Options{}, Drat, false, false},
		{Options{Lrat: true}, Lrat, true, false},
		{Options{Lrat: true, Frat: 2}, Frat, false, false},
		{Options{Frat: 1}, Frat, true, false},
		{Options{Frat: 1, Veripb: 1}, Veripb, true, false},
		{Options{Veripb: 2}, Veripb, true, true},
		{Options{Veripb: 3}, Veripb, false, false},
		{Options{Veripb: 4}, Veripb, false, true},
	} {
		assert.Equal(t, tc.format, tc.opts.Format(), "%+v", tc.opts)
		assert.Equal(t, tc.antecedents, tc.opts.Antecedents(), "%+v", tc.opts)
		assert.Equal(t, tc.deletions, tc.opts.VeripbDeletions(), "%+v", tc.opts)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{Drat, Lrat, Frat, Veripb} {
		g, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, g)
	}
	_, err := ParseFormat("tracecheck")
	assert.EqualError(t, err, `unknown proof format "tracecheck"`)
	assert.Equal(t, "unknown", Format(9).String())
}

func TestSetFormat(t *testing.T) {
	o := Options{Veripb: 3, Binary: true, CheckProof: 2}
	o.SetFormat(Lrat)
	assert.Equal(t, Options{Lrat: true, Binary: true, CheckProof: 2}, o)
	o.SetFormat(Frat)
	assert.Equal(t, Frat, o.Format())
	assert.True(t, o.Antecedents())
	o.SetFormat(Veripb)
	assert.True(t, o.VeripbDeletions())
	o.SetFormat(Drat)
	assert.Equal(t, Options{Binary: true, CheckProof: 2}, o)
}
