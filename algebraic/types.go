package algebraic

import "math/big"

// Value is an exact quadratic surd add + factor·√radical.
//
// Invariants (hold for every live Value):
//  1. radical is squarefree, or equals the sentinel 1.
//  2. factor == 0 implies radical == 1.
//  3. add and factor are reduced fractions with positive denominators
//     (big.Rat maintains this representation itself).
//  4. approx is the float64 projection add + factor·√radical, derived
//     once at construction and never mutated afterwards.
//
// A Value is immutable: all operators return new instances. The getters
// return defensive copies of the internal rationals so callers cannot
// break invariant 3 from outside.
type Value struct {
	add     *big.Rat
	factor  *big.Rat
	radical int64
	approx  float64
}

// AddPart returns the rational part a (a copy).
func (x *Value) AddPart() *big.Rat { return new(big.Rat).Set(x.add) }

// Factor returns the coefficient b of the radical (a copy).
// It is zero exactly when the value is purely rational.
func (x *Value) Factor() *big.Rat { return new(big.Rat).Set(x.factor) }

// Radical returns the radicand c. It is squarefree, or 1 when the value
// has no irrational part.
func (x *Value) Radical() int64 { return x.radical }

// RatParts returns copies of both rational components together with the
// radicand, in construction-argument order.
func (x *Value) RatParts() (add, factor *big.Rat, radicand int64) {
	return x.AddPart(), x.Factor(), x.radical
}

// ConjugateProduct returns the norm a² − b²·c: the (always rational)
// product of the value with its conjugate. It is zero iff the value is
// zero, which is what makes exact division possible.
func (x *Value) ConjugateProduct() *big.Rat {
	n := new(big.Rat).Mul(x.add, x.add)
	bb := new(big.Rat).Mul(x.factor, x.factor)
	bb.Mul(bb, new(big.Rat).SetInt64(x.radical))

	return n.Sub(n, bb)
}
