package cpoly

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// Poly is an immutable bivariate polynomial over the complex numbers,
// stored as a dense coefficient grid: c[i][j] is the coefficient of x^i·y^j.
// All arithmetic returns fresh values; a Poly is safe to share between
// goroutines once constructed.
type Poly struct {
	c [][]complex128 // row i = x-degree, column j = y-degree; trimmed
}

// New builds a Poly from a coefficient grid (c[i][j] multiplies x^i·y^j).
// The grid is copied and trimmed of trailing zero rows and columns.
func New(c [][]complex128) *Poly {
	degX, degY := -1, -1
	for i := range c {
		for j := range c[i] {
			if c[i][j] != 0 {
				if i > degX {
					degX = i
				}
				if j > degY {
					degY = j
				}
			}
		}
	}
	if degX < 0 {
		return &Poly{c: [][]complex128{{0}}}
	}
	g := make([][]complex128, degX+1)
	for i := range g {
		g[i] = make([]complex128, degY+1)
		if i < len(c) {
			copy(g[i], c[i])
		}
	}
	return &Poly{c: g}
}

// Const returns the constant polynomial v.
func Const(v complex128) *Poly { return &Poly{c: [][]complex128{{v}}} }

// X returns the polynomial x.
func X() *Poly { return &Poly{c: [][]complex128{{0}, {1}}} }

// Y returns the polynomial y.
func Y() *Poly { return &Poly{c: [][]complex128{{0, 1}}} }

// DegX reports the degree in x (0 for constants).
func (p *Poly) DegX() int { return len(p.c) - 1 }

// DegY reports the degree in y (0 for constants). For a curve f(x,y)=0 this
// is the sheet count of the associated covering.
func (p *Poly) DegY() int { return len(p.c[0]) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.c) == 1 && len(p.c[0]) == 1 && p.c[0][0] == 0 }

// Coeff returns the coefficient of x^i·y^j (zero outside the grid).
func (p *Poly) Coeff(i, j int) complex128 {
	if i < 0 || j < 0 || i >= len(p.c) || j >= len(p.c[0]) {
		return 0
	}
	return p.c[i][j]
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly { return combine(p, q, 1) }

// Sub returns p − q.
func (p *Poly) Sub(q *Poly) *Poly { return combine(p, q, -1) }

func combine(p, q *Poly, sign complex128) *Poly {
	nx := max(len(p.c), len(q.c))
	ny := max(len(p.c[0]), len(q.c[0]))
	g := make([][]complex128, nx)
	for i := range g {
		g[i] = make([]complex128, ny)
		for j := range g[i] {
			g[i][j] = p.Coeff(i, j) + sign*q.Coeff(i, j)
		}
	}
	return New(g)
}

// Neg returns −p.
func (p *Poly) Neg() *Poly { return Const(0).Sub(p) }

// Mul returns p·q by schoolbook convolution over both variables.
func (p *Poly) Mul(q *Poly) *Poly {
	nx := len(p.c) + len(q.c) - 1
	ny := len(p.c[0]) + len(q.c[0]) - 1
	g := make([][]complex128, nx)
	for i := range g {
		g[i] = make([]complex128, ny)
	}
	for i := range p.c {
		for j := range p.c[i] {
			if p.c[i][j] == 0 {
				continue
			}
			for k := range q.c {
				for l := range q.c[k] {
					g[i+k][j+l] += p.c[i][j] * q.c[k][l]
				}
			}
		}
	}
	return New(g)
}

// Pow returns p^n for n ≥ 0 by repeated multiplication.
func (p *Poly) Pow(n int) *Poly {
	r := Const(1)
	for ; n > 0; n-- {
		r = r.Mul(p)
	}
	return r
}

// Dx returns the partial derivative ∂p/∂x.
func (p *Poly) Dx() *Poly {
	if len(p.c) == 1 {
		return Const(0)
	}
	g := make([][]complex128, len(p.c)-1)
	for i := range g {
		g[i] = make([]complex128, len(p.c[0]))
		for j := range g[i] {
			g[i][j] = complex(float64(i+1), 0) * p.c[i+1][j]
		}
	}
	return New(g)
}

// Dy returns the partial derivative ∂p/∂y.
func (p *Poly) Dy() *Poly {
	if len(p.c[0]) == 1 {
		return Const(0)
	}
	g := make([][]complex128, len(p.c))
	for i := range g {
		g[i] = make([]complex128, len(p.c[0])-1)
		for j := range g[i] {
			g[i][j] = complex(float64(j+1), 0) * p.c[i][j+1]
		}
	}
	return New(g)
}

// Eval evaluates p at (x, y) by nested Horner recurrences.
func (p *Poly) Eval(x, y complex128) complex128 {
	var acc complex128
	for i := len(p.c) - 1; i >= 0; i-- {
		var row complex128
		for j := len(p.c[i]) - 1; j >= 0; j-- {
			row = row*y + p.c[i][j]
		}
		acc = acc*x + row
	}
	return acc
}

// YCoefficients returns the coefficients of p(x,·) as a univariate
// polynomial in y, in ascending order and with the formal length DegY+1
// (the leading entry may evaluate to zero for special x).
func (p *Poly) YCoefficients(x complex128) []complex128 {
	out := make([]complex128, len(p.c[0]))
	for j := range out {
		var acc complex128
		for i := len(p.c) - 1; i >= 0; i-- {
			acc = acc*x + p.c[i][j]
		}
		out[j] = acc
	}
	return out
}

// MaxCoeff returns the largest coefficient magnitude, used to scale
// relative tolerances.
func (p *Poly) MaxCoeff() float64 {
	m := 0.0
	for i := range p.c {
		for j := range p.c[i] {
			m = math.Max(m, cmplx.Abs(p.c[i][j]))
		}
	}
	return m
}

// String renders p in a canonical, reproducible form: terms ordered by
// descending y-degree then descending x-degree. The output doubles as the
// curve's cache key, so equal polynomials always render identically.
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for j := len(p.c[0]) - 1; j >= 0; j-- {
		for i := len(p.c) - 1; i >= 0; i-- {
			v := p.c[i][j]
			if v == 0 {
				continue
			}
			writeTerm(&b, v, i, j, first)
			first = false
		}
	}
	return b.String()
}

func writeTerm(b *strings.Builder, v complex128, i, j int, first bool) {
	re, im := real(v), imag(v)
	neg := im == 0 && re < 0
	switch {
	case first && neg:
		b.WriteByte('-')
		re = -re
	case !first && neg:
		b.WriteString(" - ")
		re = -re
	case !first:
		b.WriteString(" + ")
	}
	mag := complex(re, im)
	vars := varPart(i, j)
	switch {
	case im == 0 && re == 1 && vars != "":
		b.WriteString(vars)
	case im == 0:
		b.WriteString(strconv.FormatFloat(re, 'g', -1, 64))
		if vars != "" {
			b.WriteByte('*')
			b.WriteString(vars)
		}
	default:
		fmt.Fprintf(b, "(%s%+si)", strconv.FormatFloat(real(mag), 'g', -1, 64),
			strconv.FormatFloat(imag(mag), 'g', -1, 64))
		if vars != "" {
			b.WriteByte('*')
			b.WriteString(vars)
		}
	}
}

func varPart(i, j int) string {
	var parts []string
	switch {
	case i == 1:
		parts = append(parts, "x")
	case i > 1:
		parts = append(parts, "x^"+strconv.Itoa(i))
	}
	switch {
	case j == 1:
		parts = append(parts, "y")
	case j > 1:
		parts = append(parts, "y^"+strconv.Itoa(j))
	}
	return strings.Join(parts, "*")
}
