// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bayesnet/internal/logging"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	debug bool
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), logging.Level(o.debug))
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "bayesnet",
		Short: "Exact inference on Bayesian networks of binary variables",
		Long: `bayesnet reads a network from a text (.bn) or YAML file and computes
posterior distributions by enumeration or variable elimination.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log each inference step to stderr")

	cmd.AddCommand(
		newAskCmd(opts),
		newOrderCmd(opts),
		newFactorCmd(opts),
		newConvertCmd(opts),
		newVersionCmd(),
	)

	return cmd
}
