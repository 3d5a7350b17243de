// Package ideal implements ideals of multivariate polynomial rings over the
// rationals: Groebner bases, normal forms, elimination, ring homomorphisms
// with kernel computation, determinantal generators, Hilbert series driven
// dimension and degree, and splitting into components along factorable
// generators.
//
// Every ideal carries its ring. The reduced Groebner basis of an ideal under
// the ring's monomial order is unique, so two ideals in the same ring are
// equal exactly when their reduced bases coincide; Digest hashes that basis
// into a short stable fingerprint.
package ideal
