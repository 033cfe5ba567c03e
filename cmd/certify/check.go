// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/go-air/gproof/replay"
)

type checkOptions struct {
	*rootOptions
	proofFlags
}

func newCheckCommand(root *rootOptions) *cobra.Command {
	opts := &checkOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "check [flags] proof.frat",
		Short: "check a FRAT proof",
		Long: `check replays a FRAT proof through the selected checkers and prints
"s VERIFIED" followed by per checker statistics if every step checks
and the empty clause is derived.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd, args[0])
		},
	}
	opts.register(cmd.Flags(), 3)
	return cmd
}

func runCheck(opts *checkOptions, cmd *cobra.Command, in string) error {
	o, err := opts.options(cmd.Flags(), opts.Config)
	if err != nil {
		return err
	}
	if o.CheckProof == 0 {
		return errors.New("no checker selected")
	}
	steps, err := readSteps(in, cmd.InOrStdin())
	if err != nil {
		return err
	}
	res, err := replay.Run(steps, replay.Config{
		Options: o,
		Collect: opts.collect,
		Metrics: prometheus.NewRegistry(),
		Log:     opts.log})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if res.Bot == 0 {
		fmt.Fprintln(out, "s NOT VERIFIED")
		return errors.New("proof derives no empty clause")
	}
	fmt.Fprintln(out, "s VERIFIED")
	for i := range res.Stats {
		st := &res.Stats[i]
		fmt.Fprintf(out, "c %s: %s\n", st.Who, st.Stats.String())
	}
	return nil
}
