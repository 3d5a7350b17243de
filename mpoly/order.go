package mpoly

import "fmt"

// Order is a monomial order. Compare returns +1 when a is larger than b under
// the order, -1 when smaller, and 0 when the monomials are equal. All orders
// here are global: 1 is the smallest monomial.
type Order interface {
	Name() string
	Compare(a, b Mono) int
}

// Lex is the lexicographic order: scan exponents from the first variable and
// the first difference decides, larger exponent first.
type Lex struct{}

func (Lex) Name() string { return "lex" }

func (Lex) Compare(a, b Mono) int {
	for i := range a {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return 0
}

// GrevLex is the graded reverse lexicographic order: higher total degree
// first, ties broken by scanning exponents from the last variable, where the
// smaller exponent wins.
type GrevLex struct{}

func (GrevLex) Name() string { return "grevlex" }

func (GrevLex) Compare(a, b Mono) int {
	da, db := a.TotalDeg(), b.TotalDeg()
	switch {
	case da > db:
		return 1
	case da < db:
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return 1
		case a[i] > b[i]:
			return -1
		}
	}
	return 0
}

// Elim is a block elimination order: the first Front variables form the front
// block, compared by grevlex; only on a tie does the tail block decide, again
// by grevlex. Any monomial containing a front variable is larger than every
// monomial in the tail variables alone, which is what makes elimination work.
type Elim struct {
	Front int
}

func (e Elim) Name() string { return fmt.Sprintf("elim(%d)", e.Front) }

func (e Elim) Compare(a, b Mono) int {
	if c := blockGrevLex(a[:e.Front], b[:e.Front]); c != 0 {
		return c
	}
	return blockGrevLex(a[e.Front:], b[e.Front:])
}

func blockGrevLex(a, b Mono) int {
	da, db := a.TotalDeg(), b.TotalDeg()
	switch {
	case da > db:
		return 1
	case da < db:
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return 1
		case a[i] > b[i]:
			return -1
		}
	}
	return 0
}
