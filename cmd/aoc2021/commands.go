package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/internal/config"
)

// app carries state shared by the subcommands once the root has run its
// PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "aoc2021",
		Short: "Packet decoder and burrow solver",
		Long: `aoc2021 decodes hierarchical bit-packed transmissions and computes the
minimum energy needed to sort the amphipod burrow.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML tuning file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug|info|warn|error)")

	root.AddCommand(newPacketCmd(a), newBurrowCmd(a))

	return root
}

// setup loads the config file, applies the --log-level override and
// installs the stderr logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	a.logger.Debug("configuration loaded",
		slog.String("path", a.configPath),
		slog.String("log_level", cfg.LogLevel),
		slog.Int64("max_priority", cfg.Search.MaxPriority),
		slog.Bool("unfold", cfg.Search.Unfold))

	return nil
}
