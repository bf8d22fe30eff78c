package cpath

// Path is an ordered sequence of segments sharing one global parameter:
// t ∈ [0,1] covers the whole path, with each segment owning an equal
// parameter share. An empty path is valid and evaluates nowhere; callers
// treat it as the identity contour (winding count zero).
type Path []Segment

// Locate maps the global parameter t to (segment index, local parameter).
// t is clamped into [0,1]; t = 1 lands on the end of the last segment.
func (p Path) Locate(t float64) (int, float64) {
	n := len(p)
	if n == 0 {
		return 0, 0
	}
	if t <= 0 {
		return 0, 0
	}
	if t >= 1 {
		return n - 1, 1
	}
	scaled := t * float64(n)
	k := int(scaled)
	if k >= n {
		k = n - 1
	}
	return k, scaled - float64(k)
}

// At evaluates the path position at global parameter t.
func (p Path) At(t float64) complex128 {
	k, local := p.Locate(t)
	return p[k].At(local)
}

// Deriv evaluates dz/dt with respect to the global parameter, i.e. the
// segment derivative chain-ruled through the global→local map (factor
// len(p)).
func (p Path) Deriv(t float64) complex128 {
	k, local := p.Locate(t)
	return p[k].Deriv(local) * complex(float64(len(p)), 0)
}

// Start returns the first point of the path.
func (p Path) Start() complex128 { return p[0].Start() }

// End returns the last point of the path.
func (p Path) End() complex128 { return p[len(p)-1].End() }

// Reverse returns the path traversed backwards.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i, s := range p {
		out[len(p)-1-i] = s.Reverse()
	}
	return out
}

// Append concatenates paths without re-normalizing geometry; the caller is
// responsible for endpoint continuity.
func (p Path) Append(qs ...Path) Path {
	out := p
	for _, q := range qs {
		out = append(out, q...)
	}
	return out
}

// Sample returns n+1 points evenly spaced in the global parameter,
// including both endpoints. This is the trace consumed by external
// plotting tools.
func (p Path) Sample(n int) []complex128 {
	if n < 1 || len(p) == 0 {
		return nil
	}
	out := make([]complex128, n+1)
	for i := 0; i <= n; i++ {
		out[i] = p.At(float64(i) / float64(n))
	}
	return out
}
