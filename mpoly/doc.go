// Package mpoly implements exact multivariate polynomial arithmetic over the
// rational numbers. A Ring fixes an ordered set of variable names and a
// monomial order; Poly values are dense-exponent term lists kept sorted and
// normalized under that order. All coefficient arithmetic is exact
// (math/big.Rat); there is no floating point anywhere in the package.
//
// Polynomials do not carry a pointer to their ring. Every operation that
// needs the variable table or the monomial order is a method on Ring, and a
// Poly is only meaningful relative to the Ring that produced it.
package mpoly
