package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/astar"
	"github.com/katalvlaran/aoc2021/burrow"
	"github.com/katalvlaran/aoc2021/internal/input"
)

// progressEvery is the expansion interval of the debug progress log.
const progressEvery = 10000

func newBurrowCmd(a *app) *cobra.Command {
	var (
		noUnfold bool
		prune    int64
		trace    bool
	)

	cmd := &cobra.Command{
		Use:   "burrow FILE",
		Short: "Print the minimum energy to sort the burrow (and its unfolded variant)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input.ReadAll(args[0])
			if err != nil {
				return err
			}

			search := a.cfg.Search
			if cmd.Flags().Changed("prune") {
				if prune < 0 {
					return fmt.Errorf("--prune must be non-negative, got %d", prune)
				}
				search.MaxPriority = prune
			}
			if noUnfold {
				search.Unfold = false
			}

			diagrams := []string{text}
			b, err := burrow.ParseDiagram(text)
			if err != nil {
				return err
			}
			// Only the two-row diagram has a folded-up variant.
			if search.Unfold && b.Depth() == 2 {
				diagrams = append(diagrams, burrow.Unfold(text))
			}

			for _, d := range diagrams {
				cost, err := a.solve(cmd.OutOrStdout(), d, search.MaxPriority, trace)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), cost)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&noUnfold, "no-unfold", false, "skip the unfolded (depth 4) diagram")
	cmd.Flags().Int64Var(&prune, "prune", 0, "drop states whose cost+heuristic exceeds N (0 disables)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every board on the cheapest path")

	return cmd
}

// solve parses one diagram and runs the search. With trace set the path is
// written to out before the caller prints the cost.
func (a *app) solve(out io.Writer, diagram string, maxPriority int64, trace bool) (int64, error) {
	b, err := burrow.ParseDiagram(diagram)
	if err != nil {
		return 0, err
	}

	logger := a.logger.With(slog.Int("depth", b.Depth()))
	opts := []astar.Option{
		astar.WithOnExpand(func(expanded int, cost, priority int64) {
			if expanded%progressEvery == 0 {
				logger.Debug("search progress",
					slog.Int("expanded", expanded),
					slog.Int64("cost", cost),
					slog.Int64("priority", priority))
			}
		}),
	}
	if maxPriority > 0 {
		opts = append(opts, astar.WithMaxPriority(maxPriority))
	}
	if trace {
		opts = append(opts, astar.WithReturnPath())
	}

	sol, err := burrow.Solve(b, opts...)
	if err != nil {
		logger.Debug("search exhausted",
			slog.Int("expanded", sol.Stats.Expanded),
			slog.Int("pruned", sol.Stats.Pruned))
		return 0, err
	}
	logger.Info("burrow solved",
		slog.Int64("cost", sol.Cost),
		slog.Int("expanded", sol.Stats.Expanded),
		slog.Int("pushed", sol.Stats.Pushed),
		slog.Int("stale", sol.Stats.Stale),
		slog.Int("pruned", sol.Stats.Pruned))

	if trace {
		fmt.Fprint(out, sol.Boards[0])
		for i, m := range sol.Moves {
			fmt.Fprintln(out, m)
			fmt.Fprint(out, sol.Boards[i+1])
		}
	}

	return sol.Cost, nil
}
