// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bayesnet/factor"
	"github.com/katalvlaran/bayesnet/netfile"
	"github.com/katalvlaran/bayesnet/query"
)

func newFactorCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "factor <file> <var> [A=t,B=f]",
		Short: "Print the factor of a variable's table under evidence",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := netfile.Load(args[0])
			if err != nil {
				return err
			}
			expr := "P(" + args[1] + ")"
			if len(args) == 3 {
				expr = "P(" + args[1] + "|" + args[2] + ")"
			}
			q, err := query.Parse(expr)
			if err != nil {
				return err
			}
			if err := net.CheckEvidence(q.Evidence); err != nil {
				return err
			}

			f, err := factor.Make(net, q.Var, q.Evidence)
			if err != nil {
				return err
			}
			root.logger(cmd).Debug("factor", "var", q.Var, "scope", f.Scope(), "len", f.Len())

			_, err = fmt.Fprint(cmd.OutOrStdout(), f.String())

			return err
		},
	}
}
