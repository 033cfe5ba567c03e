// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command certify converts and checks FRAT proofs.
//
//	certify convert -f lrat in.frat -o out.lrat
//	certify check --check 3 in.frat
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	Verbose bool
	Config  string
	log     *logrus.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{log: logrus.New()}
	cmd := &cobra.Command{
		Use:   "certify",
		Short: "convert and check clausal proofs",
		Long: `certify replays FRAT proofs, as written by SAT solvers, through a
proof broadcaster, writing them in DRAT, LRAT, FRAT or VeriPB format and
checking them on the way.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log.SetOutput(cmd.ErrOrStderr())
			if opts.Verbose {
				opts.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "YAML file with proof options")

	cmd.AddCommand(newConvertCommand(opts))
	cmd.AddCommand(newCheckCommand(opts))
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "certify: %s\n", err)
		os.Exit(1)
	}
}
