// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-air/gproof/replay"
)

type convertOptions struct {
	*rootOptions
	proofFlags
	output string
}

func newConvertCommand(root *rootOptions) *cobra.Command {
	opts := &convertOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "convert [flags] proof.frat",
		Short: "write a FRAT proof in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, cmd, args[0])
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.format, "format", "f", "drat", "output format (drat|lrat|frat|veripb)")
	fs.StringVarP(&opts.output, "output", "o", "-", "output file")
	opts.register(fs, 0)
	return cmd
}

// stdout hides the Close method of the command's output.
type stdout struct {
	io.Writer
}

func runConvert(opts *convertOptions, cmd *cobra.Command, in string) error {
	o, err := opts.options(cmd.Flags(), opts.Config)
	if err != nil {
		return err
	}
	steps, err := readSteps(in, cmd.InOrStdin())
	if err != nil {
		return err
	}
	var w io.Writer = stdout{cmd.OutOrStdout()}
	if opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		w = f
	}
	_, err = replay.Run(steps, replay.Config{
		Options: o,
		Out:     w,
		Collect: opts.collect,
		Log:     opts.log})
	return err
}
