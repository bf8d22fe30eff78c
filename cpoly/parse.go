package cpoly

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts a curve expression into a Poly. The grammar accepts
// decimal number literals, the variables x and y, the operators + - * ^
// (with a non-negative integer exponent), unary minus and parentheses:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor ('*' factor)*
//	factor := base ('^' uint)?
//	base   := number | 'x' | 'y' | '(' expr ')' | '-' factor
//
// Errors wrap ErrParse with the offending position.
func Parse(src string) (*Poly, error) {
	p := &parser{src: src}
	p.skipSpace()
	poly, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, p.src[p.pos], p.pos)
	}
	return poly, nil
}

// MustParse is Parse for tests and fixtures; it panics on error.
func MustParse(src string) *Poly {
	poly, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return poly
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expr() (*Poly, error) {
	acc, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			t, err := p.term()
			if err != nil {
				return nil, err
			}
			acc = acc.Add(t)
		case '-':
			p.pos++
			t, err := p.term()
			if err != nil {
				return nil, err
			}
			acc = acc.Sub(t)
		default:
			return acc, nil
		}
	}
}

func (p *parser) term() (*Poly, error) {
	acc, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.peek() != '*' {
			return acc, nil
		}
		p.pos++
		f, err := p.factor()
		if err != nil {
			return nil, err
		}
		acc = acc.Mul(f)
	}
}

func (p *parser) factor() (*Poly, error) {
	base, err := p.base()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && unicode.IsDigit(rune(p.src[p.pos])) {
		p.pos++
	}
	if start == p.pos {
		return nil, fmt.Errorf("%w: exponent expected at offset %d", ErrParse, start)
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return nil, fmt.Errorf("%w: bad exponent %q", ErrParse, p.src[start:p.pos])
	}
	return base.Pow(n), nil
}

func (p *parser) base() (*Poly, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == 0:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrParse)
	case c == '(':
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, fmt.Errorf("%w: missing ')' at offset %d", ErrParse, p.pos)
		}
		p.pos++
		return inner, nil
	case c == '-':
		p.pos++
		f, err := p.factor()
		if err != nil {
			return nil, err
		}
		return f.Neg(), nil
	case c == 'x':
		p.pos++
		return X(), nil
	case c == 'y':
		p.pos++
		return Y(), nil
	case unicode.IsDigit(rune(c)) || c == '.':
		start := p.pos
		for p.pos < len(p.src) && (unicode.IsDigit(rune(p.src[p.pos])) || p.src[p.pos] == '.') {
			p.pos++
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(p.src[start:p.pos], "."), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrParse, p.src[start:p.pos])
		}
		return Const(complex(v, 0)), nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, c, p.pos)
	}
}
