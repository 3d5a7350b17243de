package mpoly

import (
	"math/big"
	"strings"
	"testing"
)

func TestParseFormatRoundTrip(t *testing.T) {
	r := MustRing(QQ, []string{"x", "y", "z", "w"}, GrevLex{})
	cases := []string{
		"x^3 + y^3 + z^3 + w^3",
		"x*y - z*w",
		"x^2 - 2*y^2",
		"-x + y",
		"1/2*x + 3",
		"0",
	}
	for _, src := range cases {
		p, err := r.ParsePoly(src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if got := r.Format(p); got != src {
			t.Fatalf("format(parse(%q)) = %q", src, got)
		}
	}
}

func TestParseCollectsAndCancels(t *testing.T) {
	r := MustRing(QQ, []string{"x", "y"}, GrevLex{})
	p := r.MustParse("x + x + y - 2*x")
	if got := r.Format(p); got != "y" {
		t.Fatalf("got %q", got)
	}
	if !r.MustParse("x - x").IsZero() {
		t.Fatal("x - x must be zero")
	}
}

func TestParseParenthesesAndPowers(t *testing.T) {
	r := MustRing(QQ, []string{"x", "y"}, GrevLex{})
	p := r.MustParse("(x + y)^2 - (x - y)^2")
	if got := r.Format(p); got != "4*x*y" {
		t.Fatalf("got %q", got)
	}
	q := r.MustParse("2*(x + 3)*(y - 1)")
	want := r.MustParse("2*x*y - 2*x + 6*y - 6")
	if !r.Equal(q, want) {
		t.Fatalf("got %q", r.Format(q))
	}
}

func TestParseCaretIsNotGoXor(t *testing.T) {
	// x^3+y^3 must mean x cubed plus y cubed, never (x^3+y)^3.
	r := MustRing(QQ, []string{"x", "y"}, GrevLex{})
	p := r.MustParse("x^3+y^3")
	if p.TotalDeg() != 3 || p.NumTerms() != 2 {
		t.Fatalf("got %q", r.Format(p))
	}
}

func TestParseRationals(t *testing.T) {
	r := MustRing(QQ, []string{"x"}, GrevLex{})
	p := r.MustParse("3/4*x + x/4")
	if got := r.Format(p); got != "x" {
		t.Fatalf("got %q", got)
	}
	if _, err := r.ParsePoly("x/0"); err == nil {
		t.Fatal("division by zero must fail")
	}
}

func TestParseErrors(t *testing.T) {
	r := MustRing(QQ, []string{"x", "y"}, GrevLex{})
	bad := []string{
		"",
		"   ",
		"x +",
		"x ^",
		"(x + y",
		"x & y",
		"x^-2",
	}
	for _, src := range bad {
		if _, err := r.ParsePoly(src); err == nil {
			t.Fatalf("parse %q: expected error", src)
		}
	}
	_, err := r.ParsePoly("x + t")
	if err == nil {
		t.Fatal("unknown variable must fail")
	}
	if !strings.Contains(err.Error(), "t") {
		t.Fatalf("error does not name the variable: %v", err)
	}
}

func TestCoefficientsInGroupsByFrontVars(t *testing.T) {
	r := MustRing(QQ, []string{"s0", "s1", "x", "y", "z"}, GrevLex{})
	p := r.MustParse("s0*x + s0*y + s1*z + s0*s1*x")
	coeffs := r.CoefficientsIn(p, []int{0, 1})
	if len(coeffs) != 3 {
		t.Fatalf("got %d coefficient groups", len(coeffs))
	}
	// Groups descend by monomial in s0,s1: s0*s1 first, then s0, then s1.
	want := []string{"x", "x + y", "z"}
	for i, c := range coeffs {
		if got := r.Format(c); got != want[i] {
			t.Fatalf("group %d = %q want %q", i, got, want[i])
		}
	}
	for _, c := range coeffs {
		if c.UsesVar(0) || c.UsesVar(1) {
			t.Fatal("coefficients must be free of the grouping variables")
		}
	}
}

func TestCoefficientExact(t *testing.T) {
	r := MustRing(QQ, []string{"x", "y"}, GrevLex{})
	p := r.MustParse("5*x^2*y - 7*y + 1/3")
	if c := r.Coefficient(p, Mono{2, 1}); c.Cmp(big.NewRat(5, 1)) != 0 {
		t.Fatalf("coeff x^2*y = %s", c)
	}
	if c := r.Coefficient(p, Mono{0, 1}); c.Cmp(big.NewRat(-7, 1)) != 0 {
		t.Fatalf("coeff y = %s", c)
	}
	if c := r.Coefficient(p, Mono{1, 0}); c.Sign() != 0 {
		t.Fatalf("coeff x = %s", c)
	}
}

func TestHomogeneousIn(t *testing.T) {
	r := MustRing(QQ, []string{"s0", "s1", "x"}, GrevLex{})
	if !r.HomogeneousIn(r.MustParse("s0*x^2 + s1*x"), []int{0, 1}) {
		t.Fatal("degree 1 in s throughout")
	}
	if r.HomogeneousIn(r.MustParse("s0 + s0*s1"), []int{0, 1}) {
		t.Fatal("mixed s-degrees")
	}
}

func TestResortAcrossOrders(t *testing.T) {
	lex := MustRing(QQ, []string{"x", "y", "z"}, Lex{})
	grev := lex.WithOrder(GrevLex{})
	p := lex.MustParse("x + y^5")
	if got := lex.Format(p); got != "x + y^5" {
		t.Fatalf("lex order = %q", got)
	}
	q := grev.Resort(p)
	if got := grev.Format(q); got != "y^5 + x" {
		t.Fatalf("grevlex order = %q", got)
	}
	if !grev.Equal(q, grev.Resort(p)) {
		t.Fatal("resort must be stable")
	}
}
