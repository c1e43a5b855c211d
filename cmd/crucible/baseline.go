package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/runpath"
)

func newBaselineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "baseline <grid-file>",
		Short: "Print the unconstrained minimum cost",
		Long:  `Ignores run-length limits and prints the cheapest 4-neighbour route cost, a lower bound for every profile.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrid(cmd, args[0])
			if err != nil {
				return err
			}
			cost, err := runpath.Baseline(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "baseline: %d\n", cost)

			return nil
		},
	}
}
