package homology

import (
	"fmt"
)

// reduceFaces contracts the spanning tree out of every face word and
// splices the faces into a single polygon, discarding one shared
// generator per merge. The returned word is cyclic, covers each
// surviving edge exactly once per direction, and has length twice the
// number of survivors.
func (c *cellComplex) reduceFaces() ([]occ, error) {
	var faces [][]occ
	for _, f := range c.faces {
		var word []occ
		for _, o := range f {
			if !c.isTree[o.Edge] {
				word = append(word, o)
			}
		}
		// A face word lists distinct edges, and a closed tree walk
		// would need every edge an even number of times, so the word
		// cannot collapse entirely.
		if len(word) == 0 && len(f) > 0 {
			return nil, fmt.Errorf("%w: face contracted to nothing", ErrConsistency)
		}
		if len(word) > 0 {
			faces = append(faces, word)
		}
	}
	if len(faces) == 0 {
		return nil, nil
	}

	for len(faces) > 1 {
		ai, bi, gen := findSplice(faces)
		if gen < 0 {
			return nil, fmt.Errorf("%w: %d faces left with no shared generator", ErrConsistency, len(faces))
		}
		merged := splice(faces[ai], faces[bi], gen)
		faces[ai] = merged
		faces = append(faces[:bi], faces[bi+1:]...)
		if len(merged) == 0 {
			// A fully cancelled polygon is a sphere piece and carries
			// no cycles.
			for i, f := range faces {
				if len(f) == 0 {
					faces = append(faces[:i], faces[i+1:]...)
					break
				}
			}
		}
	}
	if len(faces) == 0 {
		return nil, nil
	}
	return faces[0], nil
}

// findSplice locates the lowest-id generator whose two occurrences lie
// in two distinct faces, returning their indices (forward face first).
func findSplice(faces [][]occ) (fwdFace, bwdFace, gen int) {
	type hit struct{ fwd, bwd int }
	where := make(map[int]hit)
	best := -1
	for fi, f := range faces {
		for _, o := range f {
			h, ok := where[o.Edge]
			if !ok {
				h = hit{fwd: -1, bwd: -1}
			}
			if o.Fwd {
				h.fwd = fi
			} else {
				h.bwd = fi
			}
			where[o.Edge] = h
			if h.fwd >= 0 && h.bwd >= 0 && h.fwd != h.bwd {
				if best < 0 || o.Edge < best {
					best = o.Edge
				}
			}
		}
	}
	if best < 0 {
		return -1, -1, -1
	}
	return where[best].fwd, where[best].bwd, best
}

// splice merges the face holding +gen with the face holding −gen:
// rotate the first to start with +gen, the second to start with −gen,
// drop both occurrences and concatenate the remainders.
func splice(fwd, bwd []occ, gen int) []occ {
	p := rotateTo(fwd, occ{Edge: gen, Fwd: true})
	r := rotateTo(bwd, occ{Edge: gen, Fwd: false})
	out := make([]occ, 0, len(p)+len(r)-2)
	out = append(out, p[1:]...)
	out = append(out, r[1:]...)
	return out
}

// rotateTo returns the cyclic rotation of w starting at the unique
// occurrence o.
func rotateTo(w []occ, o occ) []occ {
	for i, v := range w {
		if v == o {
			out := make([]occ, 0, len(w))
			out = append(out, w[i:]...)
			out = append(out, w[:i]...)
			return out
		}
	}
	return w
}

// edgeEnd identifies one endpoint of a surviving edge at the single
// vertex of the spliced polygon: the tail (departure) or head
// (arrival) of the oriented edge.
type edgeEnd struct {
	Edge int
	Head bool
}

// head is the end an occurrence arrives at, tail the end it leaves
// from; a backward occurrence swaps the two.
func (o occ) head() edgeEnd { return edgeEnd{Edge: o.Edge, Head: o.Fwd} }
func (o occ) tail() edgeEnd { return edgeEnd{Edge: o.Edge, Head: !o.Fwd} }

// rotationOrder recovers the cyclic order of edge ends around the
// single vertex from the polygon word: each corner of the polygon
// makes the arriving end of one occurrence the rotation predecessor of
// the departing end of the next. The ends must close into one cycle.
func rotationOrder(word []occ) ([]edgeEnd, error) {
	if len(word) == 0 {
		return nil, nil
	}
	succ := make(map[edgeEnd]edgeEnd, len(word))
	for k, o := range word {
		next := word[(k+1)%len(word)]
		if _, dup := succ[o.head()]; dup {
			return nil, fmt.Errorf("%w: duplicated edge end in polygon word", ErrConsistency)
		}
		succ[o.head()] = next.tail()
	}
	rot := make([]edgeEnd, 0, len(word))
	start := word[0].head()
	for e := start; ; {
		rot = append(rot, e)
		next, ok := succ[e]
		if !ok {
			return nil, fmt.Errorf("%w: open rotation at edge %d", ErrConsistency, e.Edge)
		}
		if next == start {
			break
		}
		if len(rot) > len(word) {
			return nil, fmt.Errorf("%w: rotation system is not a single cycle", ErrConsistency)
		}
		e = next
	}
	if len(rot) != len(word) {
		return nil, fmt.Errorf("%w: rotation covers %d of %d edge ends", ErrConsistency, len(rot), len(word))
	}
	return rot, nil
}

// intersectionMatrix evaluates the algebraic intersection number of
// every pair of surviving cycles from the rotation order: cycle x
// crosses cycle y once for each end of y lying strictly inside the
// rotation arc from x's head around to x's tail, counted with sign.
func intersectionMatrix(rot []edgeEnd, survivors []int) [][]int {
	pos := make(map[edgeEnd]int, len(rot))
	for i, e := range rot {
		pos[e] = i
	}
	idx := make(map[int]int, len(survivors))
	for i, s := range survivors {
		idx[s] = i
	}

	m := make([][]int, len(survivors))
	for i := range m {
		m[i] = make([]int, len(survivors))
	}
	for _, x := range survivors {
		hi := pos[edgeEnd{Edge: x, Head: true}]
		ti := pos[edgeEnd{Edge: x, Head: false}]
		inArc := func(p int) bool {
			// strictly between hi and ti going forward in rotation order
			d := func(a, b int) int { return ((b-a)%len(rot) + len(rot)) % len(rot) }
			return d(hi, p) > 0 && d(hi, p) < d(hi, ti)
		}
		for _, y := range survivors {
			if x == y {
				continue
			}
			v := 0
			if inArc(pos[edgeEnd{Edge: y, Head: true}]) {
				v++
			}
			if inArc(pos[edgeEnd{Edge: y, Head: false}]) {
				v--
			}
			m[idx[x]][idx[y]] = v
		}
	}
	return m
}
