// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bayesnet/netfile"
)

func newOrderCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "order <file>",
		Short: "Print the topological order of the network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := netfile.Load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(net.TopologicalOrder(), " "))

			return err
		},
	}
}
