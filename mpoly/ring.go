package mpoly

import (
	"fmt"
	"math/big"
)

// Field describes the coefficient field of a polynomial ring. Only the
// rational numbers are provided; the elimination steps built on top of this
// package are valid precisely because the field is infinite.
type Field struct {
	name     string
	infinite bool
}

// QQ is the field of rational numbers.
var QQ = &Field{name: "QQ", infinite: true}

// Name returns the display name of the field.
func (f *Field) Name() string { return f.name }

// Infinite reports whether the field has infinitely many elements.
func (f *Field) Infinite() bool { return f.infinite }

func (f *Field) String() string { return f.name }

// Ring is a polynomial ring over a field: an ordered list of variable names
// plus a monomial order. Rings are immutable after construction.
type Ring struct {
	field *Field
	vars  []string
	index map[string]int
	order Order
}

// NewRing constructs a polynomial ring with the given variables and monomial
// order. Variable names must be non-empty and pairwise distinct.
func NewRing(field *Field, vars []string, order Order) (*Ring, error) {
	if field == nil {
		return nil, fmt.Errorf("mpoly: nil field")
	}
	if len(vars) == 0 {
		return nil, fmt.Errorf("mpoly: ring needs at least one variable")
	}
	if order == nil {
		order = GrevLex{}
	}
	index := make(map[string]int, len(vars))
	for i, v := range vars {
		if v == "" {
			return nil, fmt.Errorf("mpoly: empty variable name at position %d", i)
		}
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("mpoly: duplicate variable name %q", v)
		}
		index[v] = i
	}
	return &Ring{
		field: field,
		vars:  append([]string(nil), vars...),
		index: index,
		order: order,
	}, nil
}

// MustRing is NewRing that panics on error, for fixed rings in examples and
// tests.
func MustRing(field *Field, vars []string, order Order) *Ring {
	r, err := NewRing(field, vars, order)
	if err != nil {
		panic(err)
	}
	return r
}

// NumVars returns the number of ring variables.
func (r *Ring) NumVars() int { return len(r.vars) }

// Vars returns a copy of the ordered variable names.
func (r *Ring) Vars() []string { return append([]string(nil), r.vars...) }

// VarName returns the name of variable i.
func (r *Ring) VarName(i int) string { return r.vars[i] }

// VarIndex resolves a variable name to its position.
func (r *Ring) VarIndex(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Field returns the coefficient field.
func (r *Ring) Field() *Field { return r.field }

// Order returns the monomial order.
func (r *Ring) Order() Order { return r.order }

// WithOrder returns a ring over the same variables under a different order.
func (r *Ring) WithOrder(order Order) *Ring {
	if order == nil {
		order = GrevLex{}
	}
	return &Ring{field: r.field, vars: r.vars, index: r.index, order: order}
}

// SameVars reports whether s has the identical variable list (order included).
func (r *Ring) SameVars(s *Ring) bool {
	if r == nil || s == nil || len(r.vars) != len(s.vars) {
		return false
	}
	for i := range r.vars {
		if r.vars[i] != s.vars[i] {
			return false
		}
	}
	return true
}

// Zero returns the zero polynomial.
func (r *Ring) Zero() Poly { return Poly{} }

// One returns the constant polynomial 1.
func (r *Ring) One() Poly { return r.Constant(big.NewRat(1, 1)) }

// Constant lifts a rational number into the ring.
func (r *Ring) Constant(c *big.Rat) Poly {
	if c == nil || c.Sign() == 0 {
		return Poly{}
	}
	return Poly{Terms: []Term{{Coeff: new(big.Rat).Set(c), Mono: r.monoOne()}}}
}

// Int lifts an integer into the ring.
func (r *Ring) Int(n int64) Poly { return r.Constant(new(big.Rat).SetInt64(n)) }

// Var returns variable i as a polynomial.
func (r *Ring) Var(i int) Poly {
	r.checkVar(i)
	m := r.monoOne()
	m[i] = 1
	return Poly{Terms: []Term{{Coeff: big.NewRat(1, 1), Mono: m}}}
}

// Monomial returns c * prod(vars^exps). It panics if exps has the wrong
// length or a negative entry.
func (r *Ring) Monomial(c *big.Rat, exps []int) Poly {
	if len(exps) != len(r.vars) {
		panic(fmt.Sprintf("mpoly: exponent vector length %d for ring with %d variables", len(exps), len(r.vars)))
	}
	if c == nil || c.Sign() == 0 {
		return Poly{}
	}
	m := make(Mono, len(exps))
	for i, e := range exps {
		if e < 0 {
			panic(fmt.Sprintf("mpoly: negative exponent %d for variable %s", e, r.vars[i]))
		}
		m[i] = e
	}
	return Poly{Terms: []Term{{Coeff: new(big.Rat).Set(c), Mono: m}}}
}

func (r *Ring) monoOne() Mono { return make(Mono, len(r.vars)) }

func (r *Ring) checkVar(i int) {
	if i < 0 || i >= len(r.vars) {
		panic(fmt.Sprintf("mpoly: variable index %d out of range [0,%d)", i, len(r.vars)))
	}
}

func (r *Ring) String() string {
	return fmt.Sprintf("%s[%d vars, %s]", r.field.Name(), len(r.vars), r.order.Name())
}
