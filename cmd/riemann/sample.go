package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sampleCycle  int
	samplePoints int
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Trace a homology generator as tab-separated samples",
	Long: `Trace generator cycle i of the homology basis and print one sample
per line: t, Re x, Im x, Re y, Im y. The y column follows the tracked
sheet, so plotting it against x shows the cycle crossing between
sheets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSurface()
		if err != nil {
			return err
		}
		pts, err := s.SampleCycle(sampleCycle, samplePoints)
		if err != nil {
			return err
		}
		w := bufio.NewWriter(cmd.OutOrStdout())
		defer w.Flush()
		fmt.Fprintln(w, "t\tre_x\tim_x\tre_y\tim_y")
		for i, p := range pts {
			t := 0.0
			if len(pts) > 1 {
				t = float64(i) / float64(len(pts)-1)
			}
			fmt.Fprintf(w, "%.6f\t%.9g\t%.9g\t%.9g\t%.9g\n",
				t, real(p.X), imag(p.X), real(p.Y), imag(p.Y))
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().IntVar(&sampleCycle, "cycle", 0, "generator cycle index, 0 … 2g-1")
	sampleCmd.Flags().IntVar(&samplePoints, "points", 512, "approximate number of samples")
}
