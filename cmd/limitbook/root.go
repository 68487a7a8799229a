// Package cmd wires limitbook's operator CLI: a Cobra command tree
// exercising book.Book synchronously from the command line, with
// subcommands for replaying a scenario file and for measuring
// Book.Submit throughput.
package cmd

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the limitbook root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "limitbook",
		Short: "Single-symbol limit order book matching engine",
		Long: `limitbook drives a single in-memory, price/time-priority order book
synchronously from the command line. Useful for scripted scenarios
and throughput microbenchmarks without a session/transport layer.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			runID := uuid.New().String()
			log.Logger = log.With().Str("run_id", runID).Logger()
		},
	}

	root.AddCommand(newReplayCmd())
	root.AddCommand(newBenchCmd())
	return root
}
