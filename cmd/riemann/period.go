package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "A and B period matrices and the Riemann matrix τ",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSurface()
		if err != nil {
			return err
		}
		A, B, err := s.PeriodMatrices()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if A == nil {
			fmt.Fprintln(out, "genus 0: no periods")
			return nil
		}
		tau, err := s.RiemannMatrix()
		if err != nil {
			return err
		}
		printCMatrix(out, "A", A)
		printCMatrix(out, "B", B)
		printCMatrix(out, "tau", tau)
		return nil
	},
}

func printCMatrix(w io.Writer, name string, m *mat.CDense) {
	r, c := m.Dims()
	fmt.Fprintf(w, "%s (%dx%d):\n", name, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			fmt.Fprintf(w, "  %12.6f%+12.6fi", real(v), imag(v))
		}
		fmt.Fprintln(w)
	}
}
