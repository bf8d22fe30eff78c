package surface

import (
	"log/slog"

	"github.com/katalvlaran/riemann/continuation"
	"github.com/katalvlaran/riemann/period"
)

// Option configures a RiemannSurface at construction time.
type Option func(*config)

type config struct {
	logger           *slog.Logger
	basePoint        *complex128
	track            continuation.Options
	workers          int
	pointsPerSegment int
	differentials    []period.Differential
	cacheDir         string
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
		track:  continuation.DefaultOptions(),
	}
}

// WithLogger routes all pipeline logging through l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBasePoint pins the monodromy base point instead of the default
// strategy. The point is validated during discovery.
func WithBasePoint(x0 complex128) Option {
	return func(c *config) { c.basePoint = &x0 }
}

// WithTracking overrides the analytic continuation tolerances used by
// both monodromy discovery and period integration.
func WithTracking(opts continuation.Options) Option {
	return func(c *config) { c.track = opts }
}

// WithWorkers bounds the concurrency of period integration.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithPointsPerSegment sets the trapezoid grid size per path segment.
func WithPointsPerSegment(n int) Option {
	return func(c *config) { c.pointsPerSegment = n }
}

// WithDifferentials replaces the automatically constructed basis of
// holomorphic differentials; the slice length must equal the genus.
func WithDifferentials(omegas []period.Differential) Option {
	return func(c *config) { c.differentials = omegas }
}

// WithCacheDir persists discovered monodromy in a badger database
// under dir, keyed by the canonical curve string, and reuses it on
// later runs.
func WithCacheDir(dir string) Option {
	return func(c *config) { c.cacheDir = dir }
}
