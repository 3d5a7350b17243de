package mpoly

// Mono is a monomial as a dense exponent vector. Its length always equals the
// number of variables of the ring it belongs to.
type Mono []int

// Clone returns an independent copy.
func (m Mono) Clone() Mono { return append(Mono(nil), m...) }

// TotalDeg returns the sum of exponents.
func (m Mono) TotalDeg() int {
	d := 0
	for _, e := range m {
		d += e
	}
	return d
}

// IsOne reports whether the monomial is 1 (all exponents zero).
func (m Mono) IsOne() bool {
	for _, e := range m {
		if e != 0 {
			return false
		}
	}
	return true
}

// Equal reports componentwise equality.
func (m Mono) Equal(n Mono) bool {
	if len(m) != len(n) {
		return false
	}
	for i := range m {
		if m[i] != n[i] {
			return false
		}
	}
	return true
}

// Mul returns the product m*n.
func (m Mono) Mul(n Mono) Mono {
	p := make(Mono, len(m))
	for i := range m {
		p[i] = m[i] + n[i]
	}
	return p
}

// Divides reports whether m divides n componentwise.
func (m Mono) Divides(n Mono) bool {
	if len(m) != len(n) {
		return false
	}
	for i := range m {
		if m[i] > n[i] {
			return false
		}
	}
	return true
}

// Div returns n such that m = d*n. It panics when d does not divide m.
func (m Mono) Div(d Mono) Mono {
	q := make(Mono, len(m))
	for i := range m {
		q[i] = m[i] - d[i]
		if q[i] < 0 {
			panic("mpoly: monomial division with remainder")
		}
	}
	return q
}

// LCM returns the least common multiple, the componentwise maximum.
func (m Mono) LCM(n Mono) Mono {
	l := make(Mono, len(m))
	for i := range m {
		if m[i] >= n[i] {
			l[i] = m[i]
		} else {
			l[i] = n[i]
		}
	}
	return l
}

// GCD returns the greatest common divisor, the componentwise minimum.
func (m Mono) GCD(n Mono) Mono {
	g := make(Mono, len(m))
	for i := range m {
		if m[i] <= n[i] {
			g[i] = m[i]
		} else {
			g[i] = n[i]
		}
	}
	return g
}

// Coprime reports whether m and n share no variable.
func (m Mono) Coprime(n Mono) bool {
	for i := range m {
		if m[i] > 0 && n[i] > 0 {
			return false
		}
	}
	return true
}

// DegIn returns the exponent of variable i.
func (m Mono) DegIn(i int) int { return m[i] }

// Support returns the indices of variables with positive exponent.
func (m Mono) Support() []int {
	var s []int
	for i, e := range m {
		if e > 0 {
			s = append(s, i)
		}
	}
	return s
}
