// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/bytebuffer/src/bytebuffer"
	"github.com/H0llyW00dzZ/bytebuffer/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/bytebuffer/src/logger"
	"github.com/spf13/cobra"
)

var (
	// ErrInputFileRequired is returned when a command is run without its input file.
	ErrInputFileRequired = errors.New("input file is required")

	// OperationPerformed reports whether the last Execute ran a command
	// rather than printing help or version information.
	OperationPerformed bool
	// OperationPerformedSuccessfully reports whether that command finished without error.
	OperationPerformedSuccessfully bool
)

// app carries state shared by every subcommand.
type app struct {
	log     logger.Logger
	logJSON bool
}

// Execute runs the root command with os.Args and the given context.
// Cancelling ctx stops long-running commands such as frame decode.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false

	return newRootCmd(version, log).ExecuteContext(ctx)
}

func newRootCmd(version string, log logger.Logger) *cobra.Command {
	a := &app{log: log}

	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "Inspect, concatenate and frame fixed-length byte buffers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.logJSON {
				a.log = logger.NewJSONLogger(cmd.ErrOrStderr(), false)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "emit log lines as JSON objects")

	rootCmd.AddCommand(
		newInspectCmd(a),
		newConcatCmd(a),
		newFrameCmd(a),
	)
	return rootCmd
}

// run marks the operation as performed and records whether fn succeeded.
func run(fn func() error) error {
	OperationPerformed = true
	if err := fn(); err != nil {
		return err
	}
	OperationPerformedSuccessfully = true
	return nil
}

// readInput wraps the contents of path in a ByteBuffer.
func readInput(args []string) (*bytebuffer.ByteBuffer, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, ErrInputFileRequired
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	return bytebuffer.Wrap(data), nil
}

// writeOutput writes b to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, b *bytebuffer.ByteBuffer) (err error) {
	var w io.Writer = cmd.OutOrStdout()
	if path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("error creating output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("error closing output file: %w", closeErr)
			}
		}()
		w = f
	}

	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
