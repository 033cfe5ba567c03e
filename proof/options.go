// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package proof

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Options selects proof formats and checking.
type Options struct {
	// Lrat selects LRAT output and forces antecedent chains.
	Lrat bool `yaml:"lrat"`

	// Frat selects FRAT output: 1 with antecedents, 2 without.
	Frat int `yaml:"frat"`

	// Veripb selects VeriPB output:
	//
	//  1 antecedents, no deletions
	//  2 antecedents and deletions
	//  3 no antecedents, no deletions
	//  4 deletions, no antecedents
	Veripb int `yaml:"veripb"`

	// Binary selects the binary encoding where a format has one.
	Binary bool `yaml:"binary"`

	// CheckProof selects checkers: 1 content only, 2 chains only,
	// 3 both.
	CheckProof int `yaml:"checkproof"`

	// ExternalLrat computes antecedent chains in the proof layer
	// instead of expecting them from the search engine.
	ExternalLrat bool `yaml:"externallrat"`
}

// Format names a proof file format.
type Format int

const (
	Drat Format = iota
	Lrat
	Frat
	Veripb
)

var formatNames = [...]string{"drat", "lrat", "frat", "veripb"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	for i, n := range formatNames {
		if n == s {
			return Format(i), nil
		}
	}
	return 0, errors.Errorf("unknown proof format %q", s)
}

// Format returns the file format selected by o.  VeriPB takes
// precedence over FRAT which takes precedence over LRAT.
func (o *Options) Format() Format {
	switch {
	case o.Veripb != 0:
		return Veripb
	case o.Frat != 0:
		return Frat
	case o.Lrat:
		return Lrat
	}
	return Drat
}

// Antecedents returns whether the selected file format carries
// antecedent chains.
func (o *Options) Antecedents() bool {
	switch o.Format() {
	case Veripb:
		return o.Veripb == 1 || o.Veripb == 2
	case Frat:
		return o.Frat == 1
	case Lrat:
		return true
	}
	return false
}

// VeripbDeletions returns whether VeriPB output carries deletions.
func (o *Options) VeripbDeletions() bool {
	return o.Veripb == 2 || o.Veripb == 4
}

// SetFormat sets o to select f with antecedents where f allows
// choosing, keeping Binary and checking options.
func (o *Options) SetFormat(f Format) {
	o.Lrat, o.Frat, o.Veripb = false, 0, 0
	switch f {
	case Lrat:
		o.Lrat = true
	case Frat:
		o.Frat = 1
	case Veripb:
		o.Veripb = 2
	}
}

// Validate checks ranges.
func (o *Options) Validate() error {
	if o.Frat < 0 || o.Frat > 2 {
		return errors.Errorf("frat must be in 0..2, got %d", o.Frat)
	}
	if o.Veripb < 0 || o.Veripb > 4 {
		return errors.Errorf("veripb must be in 0..4, got %d", o.Veripb)
	}
	if o.CheckProof < 0 || o.CheckProof > 3 {
		return errors.Errorf("checkproof must be in 0..3, got %d", o.CheckProof)
	}
	return nil
}

// LoadOptions reads YAML options from r.  Unknown keys are errors.
func LoadOptions(r io.Reader) (Options, error) {
	var o Options
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && err != io.EOF {
		return o, errors.Wrap(err, "decoding proof options")
	}
	if err := o.Validate(); err != nil {
		return o, errors.Wrap(err, "invalid proof options")
	}
	return o, nil
}
