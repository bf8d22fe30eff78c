package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/riemann/cpoly"
	"github.com/katalvlaran/riemann/surface"
)

var (
	curveExpr string
	cacheDir  string
	verbose   bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "riemann",
	Short: "Analyze compact Riemann surfaces of plane algebraic curves",
	Long: `riemann takes a plane curve f(x,y) = 0 and computes its branch
points, monodromy group, genus, homology basis and period matrices.

Curves are ordinary polynomial expressions in x and y:

    riemann info   --curve "y^2 - (x-2)*(x-1)*(x+1)*(x+2)"
    riemann period --curve "x^4 + y^4 - 1"
    riemann sample --curve "y^2 - x^3 + 1" --cycle 0 --points 256`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&curveExpr, "curve", "c", "", `plane curve, e.g. "y^2 - x^3 + 1"`)
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "persist monodromy in a badger database under this directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("curve")

	rootCmd.AddCommand(infoCmd, periodCmd, sampleCmd)
}

// newSurface parses the --curve flag and wraps it with the shared
// options.
func newSurface() (*surface.RiemannSurface, error) {
	f, err := cpoly.Parse(curveExpr)
	if err != nil {
		return nil, err
	}
	opts := []surface.Option{surface.WithLogger(logger)}
	if cacheDir != "" {
		opts = append(opts, surface.WithCacheDir(cacheDir))
	}
	return surface.New(f, opts...)
}
