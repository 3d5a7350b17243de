package mpoly

import (
	"fmt"
	"math/big"
	"strings"
)

var ratOne = big.NewRat(1, 1)

// Format renders p deterministically: terms descending under the ring's
// monomial order, factors within a term in variable order, coefficients as
// exact rationals. The same polynomial always formats to the same string.
func (r *Ring) Format(p Poly) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.Terms {
		neg := t.Coeff.Sign() < 0
		switch {
		case i == 0 && neg:
			b.WriteByte('-')
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		abs := new(big.Rat).Abs(t.Coeff)
		mono := r.formatMono(t.Mono)
		switch {
		case mono == "":
			b.WriteString(abs.RatString())
		case abs.Cmp(ratOne) == 0:
			b.WriteString(mono)
		default:
			b.WriteString(abs.RatString())
			b.WriteByte('*')
			b.WriteString(mono)
		}
	}
	return b.String()
}

func (r *Ring) formatMono(m Mono) string {
	var parts []string
	for i, e := range m {
		switch {
		case e == 1:
			parts = append(parts, r.vars[i])
		case e > 1:
			parts = append(parts, fmt.Sprintf("%s^%d", r.vars[i], e))
		}
	}
	return strings.Join(parts, "*")
}
