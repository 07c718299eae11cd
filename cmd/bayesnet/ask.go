// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bayesnet/inference"
	"github.com/katalvlaran/bayesnet/netfile"
	"github.com/katalvlaran/bayesnet/query"
)

type askOptions struct {
	*rootOptions
	heuristic string
	precision int
}

func newAskCmd(root *rootOptions) *cobra.Command {
	opts := &askOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "ask <file> <enum|elim> <query>",
		Short: "Compute P(X | evidence)",
		Long: `Loads the network in <file> and prints the posterior of the query,
for example "P(B|J=t,M=t)", computed with enumeration (enum) or
variable elimination (elim).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, opts, args[0], args[1], args[2])
		},
	}
	cmd.Flags().StringVar(&opts.heuristic, "heuristic", inference.ParentCount.String(),
		"Elimination order heuristic: parents or minscope")
	cmd.Flags().IntVar(&opts.precision, "precision", query.DefaultPrecision,
		"Decimals to print (negative for shortest exact)")

	return cmd
}

func runAsk(cmd *cobra.Command, opts *askOptions, path, algName, expr string) error {
	alg, err := inference.ParseAlgorithm(algName)
	if err != nil {
		return err
	}
	h, err := inference.ParseHeuristic(opts.heuristic)
	if err != nil {
		return err
	}
	q, err := query.Parse(expr)
	if err != nil {
		return err
	}
	net, err := netfile.Load(path)
	if err != nil {
		return err
	}

	log := opts.logger(cmd)
	log.Debug("query", "file", path, "alg", string(alg), "query", q.String())
	d, err := inference.Ask(alg, net, q.Var, q.Evidence,
		inference.WithContext(cmd.Context()),
		inference.WithLogger(log),
		inference.WithHeuristic(h),
	)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), query.FormatPrec(q, d, opts.precision))

	return err
}
