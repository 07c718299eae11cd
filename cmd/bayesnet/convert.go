// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bayesnet/netfile"
)

func newConvertCmd(_ *rootOptions) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Rewrite a network file in text or YAML form on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := netfile.Load(args[0])
			if err != nil {
				return err
			}
			switch to {
			case "text":
				return netfile.WriteText(cmd.OutOrStdout(), net)
			case "yaml":
				return netfile.WriteYAML(cmd.OutOrStdout(), net)
			default:
				return fmt.Errorf("--to %q: want text or yaml", to)
			}
		},
	}
	cmd.Flags().StringVar(&to, "to", "yaml", "Output format: text or yaml")

	return cmd
}
