package cpoly

import (
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"
	"sort"
)

// DiscOptions tunes branch point discovery.
//
// Fields:
//   - MergeTol — relative radius (scaled by the largest root magnitude)
//     within which discriminant roots are clustered into one branch point.
//     Multiplicity-m roots of the resultant surface as clusters of radius
//     roughly ε^(1/m), so this is deliberately much coarser than machine
//     precision.
//   - CoeffTol — relative magnitude below which trailing resultant
//     coefficients are treated as interpolation noise and trimmed.
//   - Logger — destination for merge warnings; nil discards.
type DiscOptions struct {
	MergeTol float64
	CoeffTol float64
	Logger   *slog.Logger
}

// DefaultDiscOptions returns the tolerances used throughout the module.
func DefaultDiscOptions() DiscOptions {
	return DiscOptions{MergeTol: 1e-4, CoeffTol: 1e-9}
}

// Discriminant returns the coefficients (ascending, untrimmed) of the
// resultant R(x) = Res_y(f, ∂f/∂y), whose roots are the finite branch
// points of the covering x ↦ {y : f(x,y)=0}.
//
// Steps:
//  1. Bound deg R ≤ deg_x(f)·(2·deg_y(f)−1) =: D.
//  2. Evaluate R at the D+1 roots of unity as Sylvester determinants with
//     formal degrees (degree drops at special x do not matter).
//  3. Recover the coefficients by an inverse DFT.
//
// Complexity: O(D·m³) with m = deg_y(f).
func Discriminant(f *Poly) ([]complex128, error) {
	m := f.DegY()
	if m < 1 || f.IsZero() {
		return nil, ErrBadCurve
	}
	fy := f.Dy()
	D := f.DegX() * (2*m - 1)
	N := D + 1

	// 2. Sample on the unit circle.
	samples := make([]complex128, N)
	for s := 0; s < N; s++ {
		theta := 2 * math.Pi * float64(s) / float64(N)
		x := cmplx.Exp(complex(0, theta))
		p := f.YCoefficients(x)
		q := padTo(fy.YCoefficients(x), m) // formal degree m−1
		samples[s] = sylvesterDet(p, q)
	}

	// 3. Inverse DFT.
	coef := make([]complex128, N)
	for j := 0; j < N; j++ {
		var acc complex128
		for s := 0; s < N; s++ {
			theta := -2 * math.Pi * float64(j) * float64(s) / float64(N)
			acc += samples[s] * cmplx.Exp(complex(0, theta))
		}
		coef[j] = acc / complex(float64(N), 0)
	}
	return coef, nil
}

// DiscriminantRoots discovers the finite branch points of f: the
// deduplicated roots of the discriminant, cluster-merged and polished.
//
// Steps:
//  1. Compute the resultant coefficients and trim interpolation noise;
//     an identically zero resultant wraps ErrReducible.
//  2. Extract all roots with Durand–Kerner.
//  3. Cluster roots within MergeTol (relative to the root scale); each
//     cluster is one branch point with multiplicity = cluster size.
//     Multi-root merges are logged as collision warnings.
//  4. Polish each cluster centroid by Newton iteration on the (m−1)-th
//     derivative of the resultant, where the root is simple.
//  5. Sort by (Re, Im) for reproducibility.
func DiscriminantRoots(f *Poly, opts DiscOptions) ([]complex128, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.MergeTol <= 0 {
		opts.MergeTol = DefaultDiscOptions().MergeTol
	}
	if opts.CoeffTol <= 0 {
		opts.CoeffTol = DefaultDiscOptions().CoeffTol
	}

	coef, err := Discriminant(f)
	if err != nil {
		return nil, err
	}

	// 1. Trim noise; detect the degenerate resultant.
	maxc := 0.0
	for _, v := range coef {
		maxc = math.Max(maxc, cmplx.Abs(v))
	}
	if maxc == 0 || maxc < 1e-250 {
		return nil, fmt.Errorf("%w: resultant of %s is numerically zero", ErrReducible, f)
	}
	end := len(coef)
	for end > 1 && cmplx.Abs(coef[end-1]) < opts.CoeffTol*maxc {
		end--
	}
	coef = coef[:end]
	if len(coef) == 1 {
		return nil, nil // constant discriminant: unbranched over every finite x
	}

	// 2. All resultant roots, multiplicities included.
	roots, err := Roots(coef)
	if err != nil {
		return nil, fmt.Errorf("branch point discovery: %w", err)
	}

	// 3. Cluster.
	scale := 1.0
	for _, r := range roots {
		scale = math.Max(scale, cmplx.Abs(r))
	}
	tol := opts.MergeTol * scale
	clusters := clusterPoints(roots, tol)

	// 4. Polish representatives.
	out := make([]complex128, 0, len(clusters))
	for _, cl := range clusters {
		centroid := mean(cl)
		if len(cl) > 1 {
			logger.Warn("merged discriminant roots into one branch point",
				slog.Int("count", len(cl)),
				slog.String("near", fmt.Sprintf("%v", centroid)))
		}
		g := coef
		for k := 1; k < len(cl); k++ {
			g = DerivUnivariate(g)
		}
		if z, ok := NewtonUnivariate(g, centroid, 1e-14, 64); ok {
			centroid = z
		} else {
			logger.Warn("branch point polish did not converge, keeping cluster centroid",
				slog.String("near", fmt.Sprintf("%v", centroid)))
		}
		out = append(out, centroid)
	}

	// 5. Canonical order.
	sort.Slice(out, func(i, j int) bool {
		if real(out[i]) != real(out[j]) {
			return real(out[i]) < real(out[j])
		}
		return imag(out[i]) < imag(out[j])
	})
	return out, nil
}

// clusterPoints groups points whose chained pairwise distance stays under
// tol. Greedy flood fill; the point sets here are tiny.
func clusterPoints(pts []complex128, tol float64) [][]complex128 {
	used := make([]bool, len(pts))
	var clusters [][]complex128
	for i := range pts {
		if used[i] {
			continue
		}
		used[i] = true
		cl := []complex128{pts[i]}
		for grew := true; grew; {
			grew = false
			for j := range pts {
				if used[j] {
					continue
				}
				for _, q := range cl {
					if cmplx.Abs(pts[j]-q) <= tol {
						used[j] = true
						cl = append(cl, pts[j])
						grew = true
						break
					}
				}
			}
		}
		clusters = append(clusters, cl)
	}
	return clusters
}

func mean(pts []complex128) complex128 {
	var acc complex128
	for _, p := range pts {
		acc += p
	}
	return acc / complex(float64(len(pts)), 0)
}

func padTo(c []complex128, n int) []complex128 {
	for len(c) < n {
		c = append(c, 0)
	}
	return c[:n]
}

// sylvesterDet computes the resultant of p (formal degree len(p)−1) and
// q (formal degree len(q)−1) as the determinant of their Sylvester matrix,
// by LU elimination with partial pivoting.
func sylvesterDet(p, q []complex128) complex128 {
	n1, n2 := len(p)-1, len(q)-1
	size := n1 + n2
	if size == 0 {
		return 1
	}
	m := make([][]complex128, size)
	for r := range m {
		m[r] = make([]complex128, size)
	}
	// n2 staggered rows of p's coefficients, highest degree first.
	for r := 0; r < n2; r++ {
		for k := 0; k <= n1; k++ {
			m[r][r+k] = p[n1-k]
		}
	}
	// n1 staggered rows of q's coefficients.
	for r := 0; r < n1; r++ {
		for k := 0; k <= n2; k++ {
			m[n2+r][r+k] = q[n2-k]
		}
	}

	det := complex(1, 0)
	for col := 0; col < size; col++ {
		// Partial pivot.
		pivot := col
		for r := col + 1; r < size; r++ {
			if cmplx.Abs(m[r][col]) > cmplx.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if m[pivot][col] == 0 {
			return 0
		}
		if pivot != col {
			m[pivot], m[col] = m[col], m[pivot]
			det = -det
		}
		det *= m[col][col]
		for r := col + 1; r < size; r++ {
			factor := m[r][col] / m[col][col]
			if factor == 0 {
				continue
			}
			for k := col; k < size; k++ {
				m[r][k] -= factor * m[col][k]
			}
		}
	}
	return det
}
