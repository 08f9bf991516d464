// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/H0llyW00dzZ/bytebuffer/src/bytebuffer"
	"github.com/spf13/cobra"
)

type concatOptions struct {
	output string
	total  int
}

func newConcatCmd(a *app) *cobra.Command {
	opts := &concatOptions{}

	cmd := &cobra.Command{
		Use:   "concat FILE...",
		Short: "Join files into one buffer",
		Long: `Join the given files, in order, into one buffer.

With --total the result has exactly that many bytes: bytes past the end of the
inputs are zero, and a total smaller than the combined input is an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func() error { return a.concat(cmd, args, opts) })
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	cmd.Flags().IntVarP(&opts.total, "total", "n", -1, "exact length of the result (default: combined input length)")
	return cmd
}

func (a *app) concat(cmd *cobra.Command, args []string, opts *concatOptions) error {
	if len(args) == 0 {
		return ErrInputFileRequired
	}

	inputs := make([]*bytebuffer.ByteBuffer, 0, len(args))
	for _, path := range args {
		b, err := readInput([]string{path})
		if err != nil {
			return err
		}
		inputs = append(inputs, b)
	}

	var (
		joined *bytebuffer.ByteBuffer
		err    error
	)
	if opts.total >= 0 {
		joined, err = bytebuffer.ConcatN(inputs, opts.total)
	} else {
		joined, err = bytebuffer.Concat(inputs...)
	}
	if err != nil {
		return err
	}
	defer joined.Release()

	if err := writeOutput(cmd, opts.output, joined); err != nil {
		return err
	}
	if opts.output != "" {
		a.log.Printf("Wrote %d bytes from %d files to %s", joined.Len(), len(inputs), opts.output)
	}
	return nil
}
