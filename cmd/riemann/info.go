package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Branch points, base fiber, monodromy group and genus",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSurface()
		if err != nil {
			return err
		}
		g, err := s.Monodromy()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "curve:      %s\n", s.Curve())
		fmt.Fprintf(out, "sheets:     %d\n", g.Degree())
		fmt.Fprintf(out, "base point: %v\n", g.BasePoint)
		for i, y := range g.BaseSheets {
			fmt.Fprintf(out, "  sheet %d:  %v\n", i, y)
		}
		fmt.Fprintln(out, "branch points (canonical order):")
		for _, n := range g.Nodes {
			if n.Infinity {
				fmt.Fprintf(out, "  ∞ (r=%.4g)  σ = %v\n", n.Radius, n.Perm)
				continue
			}
			fmt.Fprintf(out, "  %v (r=%.4g)  σ = %v\n", n.Value, n.Radius, n.Perm)
		}
		fmt.Fprintf(out, "genus:      %d\n", g.Genus())
		return nil
	},
}
