package homology

import (
	"fmt"
)

// symplecticBasis brings an antisymmetric unimodular integer matrix to
// the standard symplectic form by a unimodular change of basis,
// pairing the cycle generators into (aᵢ, bᵢ) with aᵢ·bᵢ = +1. The
// returned rows express each basis cycle as an integer combination of
// the original generators. m is consumed.
//
// Steps:
//  1. Pick the smallest non-zero entry as pivot and shrink it to ±1 by
//     Euclidean congruence steps (a row operation always mirrored by
//     the matching column operation).
//  2. Normalize the pivot sign and sweep its row and column clean;
//     the pivot pair leaves the working set as one (a, b) couple.
//  3. Repeat on the remaining generators; anything non-zero left over,
//     or a pivot stuck above 1, means the form was not unimodular.
func symplecticBasis(m [][]int) (aRows, bRows [][]int, err error) {
	n := len(m)
	basis := make([][]int, n)
	for i := range basis {
		basis[i] = make([]int, n)
		basis[i][i] = 1
	}
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}

	// e_k += c·e_l, applied to the basis and congruently to m.
	add := func(k, l, c int) {
		for j := 0; j < n; j++ {
			basis[k][j] += c * basis[l][j]
		}
		for i := 0; i < n; i++ {
			m[i][k] += c * m[i][l]
		}
		for j := 0; j < n; j++ {
			m[k][j] += c * m[l][j]
		}
	}
	negate := func(k int) {
		for j := 0; j < n; j++ {
			basis[k][j] = -basis[k][j]
			m[k][j] = -m[k][j]
		}
		for i := 0; i < n; i++ {
			m[i][k] = -m[i][k]
		}
	}

	for {
		pi, pj := -1, -1
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if !active[j] || m[i][j] == 0 {
					continue
				}
				if pi < 0 || absInt(m[i][j]) < absInt(m[pi][pj]) {
					pi, pj = i, j
				}
			}
		}
		if pi < 0 {
			break
		}

		// 1. Euclidean shrink to a unit pivot.
		for absInt(m[pi][pj]) != 1 {
			d := m[pi][pj]
			improved := false
			for k := 0; k < n && !improved; k++ {
				if !active[k] || k == pi || k == pj {
					continue
				}
				if m[pi][k]%d != 0 {
					add(k, pj, -m[pi][k]/d)
					pj, improved = k, true
				} else if m[k][pj]%d != 0 {
					add(k, pi, -m[k][pj]/d)
					pi, improved = k, true
				}
			}
			if !improved {
				return nil, nil, fmt.Errorf("%w: intersection form has invariant factor %d", ErrConsistency, d)
			}
		}
		if m[pi][pj] == -1 {
			negate(pj)
		}

		// 2. Sweep the pivot row and column.
		for k := 0; k < n; k++ {
			if !active[k] || k == pi || k == pj {
				continue
			}
			if v := m[pi][k]; v != 0 {
				add(k, pj, -v)
			}
		}
		for k := 0; k < n; k++ {
			if !active[k] || k == pi || k == pj {
				continue
			}
			if v := m[pj][k]; v != 0 {
				add(k, pi, v)
			}
		}

		aRows = append(aRows, basis[pi])
		bRows = append(bRows, basis[pj])
		active[pi], active[pj] = false, false
	}

	for i, a := range active {
		if a {
			return nil, nil, fmt.Errorf("%w: generator %d is null under the intersection form", ErrConsistency, i)
		}
	}
	return aRows, bRows, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
