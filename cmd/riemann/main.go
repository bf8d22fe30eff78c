// Command riemann inspects compact Riemann surfaces of plane algebraic
// curves: branch points, monodromy, genus, homology and period
// matrices, plus raw cycle traces for plotting.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "riemann:", err)
		os.Exit(1)
	}
}
