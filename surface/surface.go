package surface

import (
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/riemann/continuation"
	"github.com/katalvlaran/riemann/cpath"
	"github.com/katalvlaran/riemann/cpoly"
	"github.com/katalvlaran/riemann/homology"
	"github.com/katalvlaran/riemann/memo"
	"github.com/katalvlaran/riemann/monodromy"
	"github.com/katalvlaran/riemann/period"
)

// ErrDifferentialBasis - the automatic differential construction does
// not produce exactly genus forms for this curve; supply a basis with
// WithDifferentials.
var ErrDifferentialBasis = errors.New("surface: differential count does not match the genus")

// RiemannSurface is the compact Riemann surface of an irreducible
// plane curve f(x,y) = 0. Every derived quantity is computed on first
// use and shared afterwards; a surface is safe for concurrent readers.
type RiemannSurface struct {
	curve *cpoly.Poly
	cfg   config

	monoOnce sync.Once
	graph    *monodromy.Graph
	monoErr  error

	homOnce sync.Once
	basis   *homology.Basis
	homErr  error

	diffOnce sync.Once
	diffs    []period.Differential
	diffErr  error

	perOnce          sync.Once
	periodA, periodB *mat.CDense
	perErr           error

	tauOnce sync.Once
	tau     *mat.CDense
	tauErr  error
}

// New wraps a curve. The polynomial must involve y; everything else is
// validated lazily by the stage that needs it.
func New(f *cpoly.Poly, opts ...Option) (*RiemannSurface, error) {
	if f == nil || f.IsZero() || f.DegY() < 1 {
		return nil, cpoly.ErrBadCurve
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &RiemannSurface{curve: f, cfg: cfg}, nil
}

// Curve returns the defining polynomial.
func (s *RiemannSurface) Curve() *cpoly.Poly { return s.curve }

// Monodromy discovers (or loads from the cache) the branch structure.
func (s *RiemannSurface) Monodromy() (*monodromy.Graph, error) {
	s.monoOnce.Do(func() {
		if s.cfg.cacheDir != "" {
			if s.monodromyViaCache() {
				return
			}
		}
		s.graph, s.monoErr = s.discover()
	})
	return s.graph, s.monoErr
}

// monodromyViaCache reports whether the cache path fully handled the
// stage, loading on a hit and storing after a fresh discovery.
func (s *RiemannSurface) monodromyViaCache() bool {
	st, err := memo.Open(s.cfg.cacheDir)
	if err != nil {
		s.cfg.logger.Warn("surface: monodromy cache unavailable", "dir", s.cfg.cacheDir, "err", err)
		return false
	}
	defer st.Close()

	if g, ok := st.LoadGraph(s.curve); ok {
		s.cfg.logger.Debug("surface: monodromy cache hit", "curve", s.curve.String())
		s.graph = g
		return true
	}
	s.graph, s.monoErr = s.discover()
	if s.monoErr == nil {
		if err := st.SaveGraph(s.graph); err != nil {
			s.cfg.logger.Warn("surface: monodromy cache write failed", "err", err)
		}
	}
	return true
}

func (s *RiemannSurface) discover() (*monodromy.Graph, error) {
	opts := monodromy.DefaultOptions()
	opts.Logger = s.cfg.logger
	opts.Track = s.cfg.track
	opts.BasePoint = s.cfg.basePoint
	return monodromy.Discover(s.curve, opts)
}

// BranchPoints returns the finite branch points in canonical order.
func (s *RiemannSurface) BranchPoints() ([]complex128, error) {
	g, err := s.Monodromy()
	if err != nil {
		return nil, err
	}
	return g.BranchPoints(), nil
}

// BasePoint returns the common loop anchor in the x-plane.
func (s *RiemannSurface) BasePoint() (complex128, error) {
	g, err := s.Monodromy()
	if err != nil {
		return 0, err
	}
	return g.BasePoint, nil
}

// BaseSheets returns the ordered fiber over the base point.
func (s *RiemannSurface) BaseSheets() ([]complex128, error) {
	g, err := s.Monodromy()
	if err != nil {
		return nil, err
	}
	return append([]complex128(nil), g.BaseSheets...), nil
}

// MonodromyGroup returns the loop permutations in canonical order.
func (s *RiemannSurface) MonodromyGroup() ([]monodromy.Perm, error) {
	g, err := s.Monodromy()
	if err != nil {
		return nil, err
	}
	return g.Group(), nil
}

// Genus returns the genus by Riemann-Hurwitz.
func (s *RiemannSurface) Genus() (int, error) {
	g, err := s.Monodromy()
	if err != nil {
		return 0, err
	}
	return g.Genus(), nil
}

// Homology returns the symplectic cycle basis.
func (s *RiemannSurface) Homology() (*homology.Basis, error) {
	s.homOnce.Do(func() {
		g, err := s.Monodromy()
		if err != nil {
			s.homErr = err
			return
		}
		s.basis, s.homErr = homology.Compute(g)
	})
	return s.basis, s.homErr
}

// HolomorphicDifferentials returns the genus-sized basis of 1-forms:
// the caller-supplied one when WithDifferentials was used, otherwise
// the canonical construction for the curve's shape.
func (s *RiemannSurface) HolomorphicDifferentials() ([]period.Differential, error) {
	s.diffOnce.Do(func() {
		genus, err := s.Genus()
		if err != nil {
			s.diffErr = err
			return
		}
		if s.cfg.differentials != nil {
			if len(s.cfg.differentials) != genus {
				s.diffErr = fmt.Errorf("%w: %d supplied for genus %d", ErrDifferentialBasis, len(s.cfg.differentials), genus)
				return
			}
			s.diffs = s.cfg.differentials
			return
		}
		s.diffs, s.diffErr = defaultDifferentials(s.curve, genus)
	})
	return s.diffs, s.diffErr
}

// CyclePath renders a homology cycle as a closed path in the x-plane.
func (s *RiemannSurface) CyclePath(cy homology.Cycle) (cpath.Path, error) {
	g, err := s.Monodromy()
	if err != nil {
		return nil, err
	}
	return period.CyclePath(g, cy)
}

// SampleCycle traces generator cycle i with roughly n points for
// plotting: the x-position and the y-value on the tracked sheet.
func (s *RiemannSurface) SampleCycle(i, n int) ([]continuation.Point, error) {
	b, err := s.Homology()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(b.Generators) {
		return nil, fmt.Errorf("surface: cycle %d out of range [0,%d)", i, len(b.Generators))
	}
	g, _ := s.Monodromy()
	path, err := period.CyclePath(g, b.Generators[i])
	if err != nil {
		return nil, err
	}
	sp, err := continuation.NewSurfacePath(g.Curve, path, g.BasePoint, g.BaseSheets, s.cfg.track)
	if err != nil {
		return nil, err
	}
	return sp.Sample(n)
}

// PeriodMatrices integrates the differential basis over the homology
// basis: A[i][j] = ∫_{aⱼ} ωᵢ, B[i][j] = ∫_{bⱼ} ωᵢ. Both are nil for
// genus 0.
func (s *RiemannSurface) PeriodMatrices() (A, B *mat.CDense, err error) {
	s.perOnce.Do(func() {
		g, err := s.Monodromy()
		if err != nil {
			s.perErr = err
			return
		}
		b, err := s.Homology()
		if err != nil {
			s.perErr = err
			return
		}
		omegas, err := s.HolomorphicDifferentials()
		if err != nil {
			s.perErr = err
			return
		}
		s.periodA, s.periodB, s.perErr = period.Matrices(g, b, omegas, s.periodOptions())
	})
	return s.periodA, s.periodB, s.perErr
}

// RiemannMatrix returns τ = A⁻¹B, symmetric with Im τ positive
// definite, or nil for genus 0.
func (s *RiemannSurface) RiemannMatrix() (*mat.CDense, error) {
	s.tauOnce.Do(func() {
		A, B, err := s.PeriodMatrices()
		if err != nil {
			s.tauErr = err
			return
		}
		if A == nil {
			return
		}
		s.tau, s.tauErr = period.RiemannMatrix(A, B)
	})
	return s.tau, s.tauErr
}

// Integrate evaluates ∫ ω over an arbitrary cycle; unlike the period
// matrices this is not memoized.
func (s *RiemannSurface) Integrate(omega period.Differential, cy homology.Cycle) (complex128, error) {
	g, err := s.Monodromy()
	if err != nil {
		return 0, err
	}
	return period.Integrate(g, cy, omega, s.periodOptions())
}

func (s *RiemannSurface) periodOptions() period.Options {
	opts := period.DefaultOptions()
	opts.Logger = s.cfg.logger
	opts.Track = s.cfg.track
	if s.cfg.workers > 0 {
		opts.Workers = s.cfg.workers
	}
	if s.cfg.pointsPerSegment > 0 {
		opts.PointsPerSegment = s.cfg.pointsPerSegment
	}
	return opts
}
