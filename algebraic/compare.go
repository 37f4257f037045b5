package algebraic

import (
	"hash/fnv"
	"math/big"
	"strconv"
)

// Equal reports whether x and y denote the same algebraic number.
// Because every Value is canonical, this is plain componentwise equality
// of the triples — exact, no floating point involved.
func (x *Value) Equal(y *Value) bool {
	return x.radical == y.radical &&
		x.add.Cmp(y.add) == 0 &&
		x.factor.Cmp(y.factor) == 0
}

// Hash returns a 64-bit hash of the canonical triple. Equal values hash
// identically. The triple is hashed directly rather than going through
// the float projection, so the result is stable across platforms.
func (x *Value) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(x.add.RatString()))
	h.Write([]byte{'|'})
	h.Write([]byte(x.factor.RatString()))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.FormatInt(x.radical, 10)))

	return h.Sum64()
}

// Cmp orders x and y by their float projections: −1 if x < y, 0 on a
// projection tie, +1 if x > y. The order is total and consistent with the
// real line, but mathematically distinct values whose projections collide
// in float64 compare as 0 — a documented limitation of float ordering.
func (x *Value) Cmp(y *Value) int {
	switch {
	case x.approx < y.approx:
		return -1
	case x.approx > y.approx:
		return 1
	default:
		return 0
	}
}

// Less reports x < y under Cmp.
func (x *Value) Less(y *Value) bool { return x.Cmp(y) < 0 }

// LessEq reports x ≤ y under Cmp.
func (x *Value) LessEq(y *Value) bool { return x.Cmp(y) <= 0 }

// Greater reports x > y under Cmp.
func (x *Value) Greater(y *Value) bool { return x.Cmp(y) > 0 }

// GreaterEq reports x ≥ y under Cmp.
func (x *Value) GreaterEq(y *Value) bool { return x.Cmp(y) >= 0 }

// CmpFloat64 orders x against a plain float64 through the projection.
// Approximate by nature (see Cmp).
func (x *Value) CmpFloat64(f float64) int {
	switch {
	case x.approx < f:
		return -1
	case x.approx > f:
		return 1
	default:
		return 0
	}
}

// EqualFloat64 reports projection equality with a plain float64.
// Unlike same-type Equal this is approximate: it deliberately keeps the
// original cross-type semantics instead of promoting the float.
func (x *Value) EqualFloat64(f float64) bool { return x.approx == f }

// EqualRat reports projection equality with a plain rational. Like
// EqualFloat64 this goes through float64 and is approximate for values
// the projection cannot separate.
func (x *Value) EqualRat(r *big.Rat) bool {
	f, _ := ratOrZero(r).Float64()

	return x.approx == f
}

// IsZero reports whether x is exactly the zero value. Truthiness in the
// original surface is the negation of this.
func (x *Value) IsZero() bool {
	return x.add.Sign() == 0 && x.factor.Sign() == 0
}
