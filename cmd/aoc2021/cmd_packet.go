package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/internal/input"
	"github.com/katalvlaran/aoc2021/packet"
)

func newPacketCmd(a *app) *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "packet FILE",
		Short: "Decode a hex transmission and print its version sum and value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := input.FirstLine(args[0])
			if err != nil {
				return err
			}

			p, err := packet.DecodeHex(line)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			v, err := p.Eval()
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", args[0], err)
			}
			a.logger.Debug("transmission decoded",
				slog.Int("hex_digits", len(line)),
				slog.String("root", p.Type.String()),
				slog.Int("children", len(p.Children)))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.VersionSum())
			fmt.Fprintln(out, v)
			if tree {
				fmt.Fprintln(out, p)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "also print the expression tree")

	return cmd
}
