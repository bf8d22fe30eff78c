package period

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/riemann/homology"
	"github.com/katalvlaran/riemann/monodromy"
)

// Matrices integrates every differential over the full homology basis
// and returns the g×g period matrices: A[i][j] = ∫_{aⱼ} ωᵢ and
// B[i][j] = ∫_{bⱼ} ωᵢ. Work is spread over opts.Workers goroutines,
// one integration of a primitive cycle per task; the a/b entries are
// then integer combinations of those primitives. Genus 0 yields nil
// matrices.
func Matrices(g *monodromy.Graph, basis *homology.Basis, omegas []Differential, opts Options) (A, B *mat.CDense, err error) {
	opts = opts.withDefaults()
	genus := basis.Genus
	if genus == 0 || len(omegas) == 0 {
		return nil, nil, nil
	}

	// Primitive integrals P[i][k] = ∫ ωᵢ over generator k.
	prim := make([][]complex128, len(omegas))
	for i := range prim {
		prim[i] = make([]complex128, len(basis.Generators))
	}

	type task struct{ i, k int }
	tasks := make(chan task)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				v, ierr := Integrate(g, basis.Generators[t.k], omegas[t.i], opts)
				if ierr != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = ierr
					}
					mu.Unlock()
					continue
				}
				prim[t.i][t.k] = v
			}
		}()
	}
	for i := range omegas {
		for k := range basis.Generators {
			tasks <- task{i: i, k: k}
		}
	}
	close(tasks)
	wg.Wait()
	if firstErr != nil {
		return nil, nil, firstErr
	}

	combine := func(coeffs [][]int) *mat.CDense {
		m := mat.NewCDense(len(omegas), genus, nil)
		for i := range omegas {
			for j := 0; j < genus; j++ {
				var sum complex128
				for k, c := range coeffs[j] {
					if c != 0 {
						sum += complex(float64(c), 0) * prim[i][k]
					}
				}
				m.Set(i, j, sum)
			}
		}
		return m
	}
	return combine(basis.ACoeffs), combine(basis.BCoeffs), nil
}
