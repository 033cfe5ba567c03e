// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"compress/bzip2"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/go-air/gproof/proof"
	"github.com/go-air/gproof/replay"
)

// proofFlags are the proof options settable on the command line.  Flags
// which are set override the config file.
type proofFlags struct {
	format       string
	binary       bool
	frat         int
	veripb       int
	check        int
	externalLrat bool
	collect      bool
}

func (pf *proofFlags) register(fs *pflag.FlagSet, check int) {
	fs.BoolVar(&pf.binary, "binary", false, "binary proof output where the format has one")
	fs.IntVar(&pf.frat, "frat", 0, "FRAT output: 1 with antecedents, 2 without")
	fs.IntVar(&pf.veripb, "veripb", 0, "VeriPB output: 1,2 with antecedents, 2,4 with deletions")
	fs.IntVar(&pf.check, "check", check, "checking: 1 content, 2 antecedents, 3 both")
	fs.BoolVar(&pf.externalLrat, "external-lrat", false, "compute missing antecedents")
	fs.BoolVar(&pf.collect, "collect", false, "collect satisfied clauses and false literals after derived units")
}

func (pf *proofFlags) options(fs *pflag.FlagSet, config string) (proof.Options, error) {
	var o proof.Options
	if config != "" {
		f, err := os.Open(config)
		if err != nil {
			return o, errors.Wrap(err, "opening config")
		}
		defer f.Close()
		if o, err = proof.LoadOptions(f); err != nil {
			return o, errors.Wrap(err, config)
		}
	}
	if fs.Changed("format") {
		f, err := proof.ParseFormat(pf.format)
		if err != nil {
			return o, err
		}
		o.SetFormat(f)
	}
	if fs.Changed("frat") {
		o.Frat = pf.frat
	}
	if fs.Changed("veripb") {
		o.Veripb = pf.veripb
	}
	if fs.Changed("binary") {
		o.Binary = pf.binary
	}
	if fs.Changed("check") || config == "" {
		o.CheckProof = pf.check
	}
	if fs.Changed("external-lrat") {
		o.ExternalLrat = pf.externalLrat
	}
	return o, o.Validate()
}

// readSteps parses the proof at p, "-" for stdin, decompressing .gz,
// .zst and .bz2 files.
func readSteps(p string, stdin io.Reader) ([]replay.Step, error) {
	if p == "-" {
		return replay.Parse(stdin)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, errors.Wrap(err, "opening proof")
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(p, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, p)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(p, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, p)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(p, ".bz2"):
		r = bzip2.NewReader(f)
	}
	steps, err := replay.Parse(r)
	return steps, errors.Wrap(err, p)
}
