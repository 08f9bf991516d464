// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/bytebuffer/src/bytebuffer"
	"github.com/H0llyW00dzZ/bytebuffer/src/internal/layout"
	"github.com/spf13/cobra"
)

type inspectOptions struct {
	layoutFile string
	offset     int
	length     int
}

func newInspectCmd(a *app) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print a hex dump of FILE and decode it with a record layout",
		Long: `Print a hex dump of FILE, or of the window selected by --offset and --length.

When a layout file is given with --layout, or through the ` + layout.EnvLayoutFile + `
environment variable, the window is also decoded field by field and shown
as a markdown table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func() error { return a.inspect(cmd, args, opts) })
		},
	}

	cmd.Flags().StringVarP(&opts.layoutFile, "layout", "l", "", "record layout file (JSON or YAML)")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "start of the window to inspect")
	cmd.Flags().IntVar(&opts.length, "length", -1, "length of the window (default: to the end of the file)")
	return cmd
}

func (a *app) inspect(cmd *cobra.Command, args []string, opts *inspectOptions) error {
	b, err := readInput(args)
	if err != nil {
		return err
	}

	// Negative offsets count from the end, the same way Slice treats them.
	view := b.SliceFrom(opts.offset)
	if opts.length >= 0 {
		view = view.Slice(0, opts.length)
	}
	a.log.Printf("Inspecting %d of %d bytes from %s", view.Len(), b.Len(), args[0])

	out := cmd.OutOrStdout()
	dumper := hex.Dumper(out)
	if _, err := view.WriteTo(dumper); err != nil {
		return fmt.Errorf("error writing hex dump: %w", err)
	}
	if err := dumper.Close(); err != nil {
		return fmt.Errorf("error writing hex dump: %w", err)
	}

	if opts.layoutFile == "" && os.Getenv(layout.EnvLayoutFile) == "" {
		return nil
	}
	return a.decodeLayout(cmd, opts.layoutFile, view)
}

func (a *app) decodeLayout(cmd *cobra.Command, path string, view *bytebuffer.ByteBuffer) error {
	l, err := layout.Load(path)
	if err != nil {
		return err
	}
	values, err := l.Decode(view)
	if err != nil {
		return err
	}

	if l.Name != "" {
		a.log.Printf("Decoded layout %q (%d bytes)", l.Name, l.Size())
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), layout.RenderTable(values))
	return nil
}
