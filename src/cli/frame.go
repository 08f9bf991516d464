// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/bytebuffer/src/internal/frame"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

// previewBytes is how much of each payload frame decode shows.
const previewBytes = 8

type frameEncodeOptions struct {
	output  string
	msgType uint8
	id      uint32
	ack     uint32
}

func newFrameCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Encode and decode length-prefixed frames",
		Long: `Encode and decode frames made of a 13-byte header followed by a payload.

The header holds the message type (1 byte), message ID, acknowledged ID and
payload length (4 bytes each, big-endian).`,
	}
	cmd.AddCommand(newFrameEncodeCmd(a), newFrameDecodeCmd(a))
	return cmd
}

func newFrameEncodeCmd(a *app) *cobra.Command {
	opts := &frameEncodeOptions{}

	cmd := &cobra.Command{
		Use:   "encode FILE",
		Short: "Wrap FILE in a single frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func() error { return a.frameEncode(cmd, args, opts) })
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	cmd.Flags().Uint8VarP(&opts.msgType, "type", "t", uint8(frame.TypeRegular), "message type")
	cmd.Flags().Uint32Var(&opts.id, "id", 0, "message ID")
	cmd.Flags().Uint32Var(&opts.ack, "ack", 0, "acknowledged message ID")
	return cmd
}

func (a *app) frameEncode(cmd *cobra.Command, args []string, opts *frameEncodeOptions) error {
	payload, err := readInput(args)
	if err != nil {
		return err
	}

	encoded, err := frame.Encode(frame.Message{
		Type: frame.MessageType(opts.msgType),
		ID:   opts.id,
		Ack:  opts.ack,
		Data: payload,
	})
	if err != nil {
		return err
	}
	defer encoded.Release()

	if err := writeOutput(cmd, opts.output, encoded); err != nil {
		return err
	}
	a.log.Printf("Encoded %s frame %d with %d payload bytes", frame.MessageType(opts.msgType), opts.id, payload.Len())
	return nil
}

func newFrameDecodeCmd(a *app) *cobra.Command {
	var maxPayload int

	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "List the frames stored in FILE",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func() error { return a.frameDecode(cmd, args, maxPayload) })
		},
	}

	cmd.Flags().IntVar(&maxPayload, "max-payload", frame.DefaultMaxPayload, "largest payload accepted, in bytes")
	return cmd
}

func (a *app) frameDecode(cmd *cobra.Command, args []string, maxPayload int) error {
	if len(args) == 0 || args[0] == "" {
		return ErrInputFileRequired
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}
	defer f.Close()

	r := frame.NewReader(f, frame.WithMaxPayload(maxPayload))
	var messages []frame.Message
	for {
		m, err := r.Next(cmd.Context())
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", len(messages)+1, err)
		}
		messages = append(messages, m)
	}

	a.log.Printf("Decoded %d frames from %s", len(messages), args[0])
	fmt.Fprintln(cmd.OutOrStdout(), renderFrames(messages))
	return nil
}

// renderFrames renders decoded frame headers as a markdown table.
func renderFrames(messages []frame.Message) string {
	if len(messages) == 0 {
		return "No frames to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Type", "ID", "Ack", "Length", "Payload"})

	var rows [][]string
	for i, m := range messages {
		preview := m.Data.Slice(0, previewBytes)
		payload := hex.EncodeToString(preview.UnsafeBytes())
		if m.Data.Len() > previewBytes {
			payload += "..."
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			m.Type.String(),
			strconv.FormatUint(uint64(m.ID), 10),
			strconv.FormatUint(uint64(m.Ack), 10),
			strconv.Itoa(m.Data.Len()),
			payload,
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
