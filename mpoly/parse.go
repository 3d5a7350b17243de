package mpoly

import (
	"fmt"
	"math/big"
	"strings"
)

// ParsePoly parses a polynomial expression over the ring's variables.
//
// The grammar is sums and differences of products; factors are variable
// names, integer literals, and parenthesized subexpressions; '^' raises a
// factor to a nonnegative integer power and '/' divides by a nonzero integer
// literal. Adjacency is not multiplication: x*y must be written with '*'.
func (r *Ring) ParsePoly(src string) (Poly, error) {
	p := &parser{ring: r, src: src}
	p.skipSpace()
	if p.pos >= len(p.src) {
		return Poly{}, fmt.Errorf("mpoly: empty polynomial expression")
	}
	poly, err := p.parseExpr()
	if err != nil {
		return Poly{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Poly{}, fmt.Errorf("mpoly: unexpected %q at offset %d in %q", p.src[p.pos], p.pos, p.src)
	}
	return poly, nil
}

// MustParse is ParsePoly that panics on error, for fixed polynomials in
// examples and tests.
func (r *Ring) MustParse(src string) Poly {
	p, err := r.ParsePoly(src)
	if err != nil {
		panic(err)
	}
	return p
}

type parser struct {
	ring *Ring
	src  string
	pos  int
}

func (p *parser) parseExpr() (Poly, error) {
	p.skipSpace()
	neg := false
	if c, ok := p.peek(); ok && (c == '+' || c == '-') {
		p.pos++
		neg = c == '-'
	}
	sum, err := p.parseTerm()
	if err != nil {
		return Poly{}, err
	}
	if neg {
		sum = p.ring.Neg(sum)
	}
	for {
		p.skipSpace()
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return sum, nil
		}
		p.pos++
		t, err := p.parseTerm()
		if err != nil {
			return Poly{}, err
		}
		if c == '-' {
			sum = p.ring.Sub(sum, t)
		} else {
			sum = p.ring.Add(sum, t)
		}
	}
}

func (p *parser) parseTerm() (Poly, error) {
	prod, err := p.parsePower()
	if err != nil {
		return Poly{}, err
	}
	for {
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return prod, nil
		}
		switch c {
		case '*':
			p.pos++
			f, err := p.parsePower()
			if err != nil {
				return Poly{}, err
			}
			prod = p.ring.Mul(prod, f)
		case '/':
			p.pos++
			p.skipSpace()
			n, err := p.parseNat()
			if err != nil {
				return Poly{}, err
			}
			if n.Sign() == 0 {
				return Poly{}, fmt.Errorf("mpoly: division by zero in %q", p.src)
			}
			prod = p.ring.MulRat(new(big.Rat).SetFrac(big.NewInt(1), n), prod)
		default:
			return prod, nil
		}
	}
}

func (p *parser) parsePower() (Poly, error) {
	base, err := p.parseAtom()
	if err != nil {
		return Poly{}, err
	}
	p.skipSpace()
	c, ok := p.peek()
	if !ok || c != '^' {
		return base, nil
	}
	p.pos++
	p.skipSpace()
	n, err := p.parseNat()
	if err != nil {
		return Poly{}, err
	}
	if !n.IsInt64() || n.Int64() > 1<<16 {
		return Poly{}, fmt.Errorf("mpoly: exponent %s out of range", n)
	}
	return p.ring.Pow(base, int(n.Int64())), nil
}

func (p *parser) parseAtom() (Poly, error) {
	p.skipSpace()
	c, ok := p.peek()
	if !ok {
		return Poly{}, fmt.Errorf("mpoly: unexpected end of expression %q", p.src)
	}
	switch {
	case c == '(':
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return Poly{}, err
		}
		p.skipSpace()
		if c, ok := p.peek(); !ok || c != ')' {
			return Poly{}, fmt.Errorf("mpoly: missing ')' at offset %d in %q", p.pos, p.src)
		}
		p.pos++
		return inner, nil
	case c >= '0' && c <= '9':
		n, err := p.parseNat()
		if err != nil {
			return Poly{}, err
		}
		return p.ring.Constant(new(big.Rat).SetInt(n)), nil
	case isIdentStart(c):
		name := p.parseIdent()
		i, ok := p.ring.VarIndex(name)
		if !ok {
			return Poly{}, fmt.Errorf("mpoly: unknown variable %q, ring variables are %s", name, strings.Join(p.ring.vars, ", "))
		}
		return p.ring.Var(i), nil
	default:
		return Poly{}, fmt.Errorf("mpoly: unexpected %q at offset %d in %q", c, p.pos, p.src)
	}
}

func (p *parser) parseNat() (*big.Int, error) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		if p.pos < len(p.src) {
			return nil, fmt.Errorf("mpoly: expected number at offset %d in %q", p.pos, p.src)
		}
		return nil, fmt.Errorf("mpoly: expected number at end of %q", p.src)
	}
	n, ok := new(big.Int).SetString(p.src[start:p.pos], 10)
	if !ok {
		return nil, fmt.Errorf("mpoly: bad integer %q", p.src[start:p.pos])
	}
	return n, nil
}

func (p *parser) parseIdent() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
