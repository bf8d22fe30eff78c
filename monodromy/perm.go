package monodromy

import (
	"fmt"
	"strings"
)

// Perm is a permutation of {0, …, n-1} in one-line notation: p[i] is the
// image of sheet i.
type Perm []int

// Identity returns the identity permutation on n sheets.
func Identity(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// NewPerm validates images and returns them as a Perm: every value must
// lie in [0, n) and appear exactly once.
func NewPerm(images []int) (Perm, error) {
	n := len(images)
	seen := make([]bool, n)
	for i, v := range images {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("monodromy: image %d of sheet %d out of range [0,%d)", v, i, n)
		}
		if seen[v] {
			return nil, fmt.Errorf("monodromy: image %d repeated", v)
		}
		seen[v] = true
	}
	p := make(Perm, n)
	copy(p, images)
	return p, nil
}

// Compose returns the permutation "p then q": sheet i travels first
// along p, then along q, landing on q[p[i]].
func (p Perm) Compose(q Perm) Perm {
	r := make(Perm, len(p))
	for i, v := range p {
		r[i] = q[v]
	}
	return r
}

// Inverse returns the permutation undoing p.
func (p Perm) Inverse() Perm {
	r := make(Perm, len(p))
	for i, v := range p {
		r[v] = i
	}
	return r
}

// IsIdentity reports whether p fixes every sheet.
func (p Perm) IsIdentity() bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}
	return true
}

// Equal reports whether p and q are the same permutation.
func (p Perm) Equal(q Perm) bool {
	if len(p) != len(q) {
		return false
	}
	for i, v := range p {
		if q[i] != v {
			return false
		}
	}
	return true
}

// Fixed reports whether p fixes sheet i.
func (p Perm) Fixed(i int) bool { return p[i] == i }

// Cycles returns the cycle decomposition of p, fixed points included.
// Each cycle starts at its smallest element, and cycles are ordered by
// that element.
func (p Perm) Cycles() [][]int {
	var cycles [][]int
	seen := make([]bool, len(p))
	for i := range p {
		if seen[i] {
			continue
		}
		cyc := []int{i}
		seen[i] = true
		for j := p[i]; j != i; j = p[j] {
			cyc = append(cyc, j)
			seen[j] = true
		}
		cycles = append(cycles, cyc)
	}
	return cycles
}

// Clone returns an independent copy of p.
func (p Perm) Clone() Perm {
	r := make(Perm, len(p))
	copy(r, p)
	return r
}

// String renders p in cycle notation, e.g. "(0 1)(2 4 3)"; the identity
// renders as "id".
func (p Perm) String() string {
	var sb strings.Builder
	for _, cyc := range p.Cycles() {
		if len(cyc) < 2 {
			continue
		}
		sb.WriteByte('(')
		for k, v := range cyc {
			if k > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte(')')
	}
	if sb.Len() == 0 {
		return "id"
	}
	return sb.String()
}
