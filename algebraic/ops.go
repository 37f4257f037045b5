package algebraic

import (
	"fmt"
	"math/big"
)

// commonRadical reconciles the radicands of two operands. A radicand of 1
// (a purely rational value) is compatible with anything; otherwise the
// radicands must match exactly.
func commonRadical(x, y *Value) (int64, error) {
	switch {
	case x.radical == y.radical:
		return x.radical, nil
	case x.radical == 1:
		return y.radical, nil
	case y.radical == 1:
		return x.radical, nil
	default:
		return 0, fmt.Errorf("radicals %d and %d: %w", x.radical, y.radical, ErrIncompatibleRadical)
	}
}

// Add returns x + y. Fails with ErrIncompatibleRadical when the
// operands live in different quadratic extensions.
func (x *Value) Add(y *Value) (*Value, error) {
	r, err := commonRadical(x, y)
	if err != nil {
		return nil, err
	}

	return newValue(
		new(big.Rat).Add(x.add, y.add),
		new(big.Rat).Add(x.factor, y.factor),
		r,
	)
}

// Sub returns x − y under the same compatibility rule as Add.
func (x *Value) Sub(y *Value) (*Value, error) {
	r, err := commonRadical(x, y)
	if err != nil {
		return nil, err
	}

	return newValue(
		new(big.Rat).Sub(x.add, y.add),
		new(big.Rat).Sub(x.factor, y.factor),
		r,
	)
}

// Mul returns x·y using field multiplication in Q(√r):
//
//	(a₁ + b₁√r)(a₂ + b₂√r) = (a₁a₂ + b₁b₂r) + (a₁b₂ + b₁a₂)√r
func (x *Value) Mul(y *Value) (*Value, error) {
	r, err := commonRadical(x, y)
	if err != nil {
		return nil, err
	}

	rat := new(big.Rat).SetInt64(r)

	add := new(big.Rat).Mul(x.add, y.add)
	cross := new(big.Rat).Mul(x.factor, y.factor)
	add.Add(add, cross.Mul(cross, rat))

	factor := new(big.Rat).Mul(x.add, y.factor)
	factor.Add(factor, new(big.Rat).Mul(x.factor, y.add))

	return newValue(add, factor, r)
}

// Div returns x / y by multiplying with the conjugate of y and
// dividing through by its norm a₂² − b₂²·r. Fails with ErrDivisionByZero
// when y is the zero value (equivalently, when the norm vanishes) and
// with ErrIncompatibleRadical on mismatched radicands.
func (x *Value) Div(y *Value) (*Value, error) {
	r, err := commonRadical(x, y)
	if err != nil {
		return nil, err
	}

	denom := y.ConjugateProduct()
	if denom.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	rat := new(big.Rat).SetInt64(r)

	add := new(big.Rat).Mul(x.add, y.add)
	cross := new(big.Rat).Mul(x.factor, y.factor)
	add.Sub(add, cross.Mul(cross, rat))
	add.Quo(add, denom)

	factor := new(big.Rat).Mul(x.factor, y.add)
	factor.Sub(factor, new(big.Rat).Mul(x.add, y.factor))
	factor.Quo(factor, denom)

	return newValue(add, factor, r)
}

// AddRat returns x + r for a plain rational r.
func (x *Value) AddRat(r *big.Rat) *Value {
	v, _ := newValue(new(big.Rat).Add(x.add, ratOrZero(r)), x.factor, x.radical)

	return v
}

// SubRat returns x − r for a plain rational r.
func (x *Value) SubRat(r *big.Rat) *Value {
	v, _ := newValue(new(big.Rat).Sub(x.add, ratOrZero(r)), x.factor, x.radical)

	return v
}

// MulRat returns x·r for a plain rational r.
func (x *Value) MulRat(r *big.Rat) *Value {
	r = ratOrZero(r)
	v, _ := newValue(
		new(big.Rat).Mul(x.add, r),
		new(big.Rat).Mul(x.factor, r),
		x.radical,
	)

	return v
}

// DivRat returns x / r for a plain rational r; ErrDivisionByZero when r is 0.
func (x *Value) DivRat(r *big.Rat) (*Value, error) {
	r = ratOrZero(r)
	if r.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return newValue(
		new(big.Rat).Quo(x.add, r),
		new(big.Rat).Quo(x.factor, r),
		x.radical,
	)
}

// AddInt returns x + n.
func (x *Value) AddInt(n int64) *Value { return x.AddRat(big.NewRat(n, 1)) }

// SubInt returns x − n.
func (x *Value) SubInt(n int64) *Value { return x.SubRat(big.NewRat(n, 1)) }

// MulInt returns x·n.
func (x *Value) MulInt(n int64) *Value { return x.MulRat(big.NewRat(n, 1)) }

// DivInt returns x / n; ErrDivisionByZero when n is 0.
func (x *Value) DivInt(n int64) (*Value, error) { return x.DivRat(big.NewRat(n, 1)) }

// Pow returns xⁿ for an integer exponent.
//
// Non-negative exponents expand (a + b√c)ⁿ binomially, splitting the terms
// by the parity of the power of √c; only the final triple is normalized.
// Negative exponents invert first and therefore fail with
// ErrDivisionByZero when x is zero. x⁰ is 1, including 0⁰.
func (x *Value) Pow(n int64) (*Value, error) {
	if n < 0 {
		inv, err := x.Inverse()
		if err != nil {
			return nil, err
		}

		return inv.Pow(-n)
	}
	if n == 0 {
		return One(), nil
	}

	c := new(big.Int).SetInt64(x.radical)

	add := new(big.Rat)
	factor := new(big.Rat)
	for i := int64(0); i <= n; i++ {
		// term = C(n,i)·aⁿ⁻ⁱ·bⁱ·c^⌊i/2⌋ — √c's power i contributes a
		// rational c^(i/2) when i is even, and c^((i-1)/2)·√c when odd.
		term := new(big.Rat).SetInt(new(big.Int).Binomial(n, i))
		term.Mul(term, ratPow(x.add, n-i))
		term.Mul(term, ratPow(x.factor, i))
		term.Mul(term, new(big.Rat).SetInt(new(big.Int).Exp(c, big.NewInt(i/2), nil)))

		if i%2 == 0 {
			add.Add(add, term)
		} else {
			factor.Add(factor, term)
		}
	}

	return newValue(add, factor, x.radical)
}

// ratPow raises a rational to a non-negative integer power exactly.
func ratPow(r *big.Rat, n int64) *big.Rat {
	e := big.NewInt(n)

	return new(big.Rat).SetFrac(
		new(big.Int).Exp(r.Num(), e, nil),
		new(big.Int).Exp(r.Denom(), e, nil),
	)
}

// Neg returns −x. Negation preserves canonical form, but the result is
// rebuilt through the normalizer anyway to keep a single construction path.
func (x *Value) Neg() *Value {
	v, _ := newValue(
		new(big.Rat).Neg(x.add),
		new(big.Rat).Neg(x.factor),
		x.radical,
	)

	return v
}

// Abs returns x when its projection is non-negative, and −x otherwise.
func (x *Value) Abs() *Value {
	if x.approx >= 0 {
		return x
	}

	return x.Neg()
}

// Conjugate returns a − b√c, the algebraic conjugate of x in Q(√c).
func (x *Value) Conjugate() *Value {
	v, _ := newValue(x.add, new(big.Rat).Neg(x.factor), x.radical)

	return v
}

// Inverse returns 1/x as conjugate(x) divided by the norm.
// Fails with ErrDivisionByZero when x is the zero value.
func (x *Value) Inverse() (*Value, error) {
	norm := x.ConjugateProduct()
	if norm.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return newValue(
		new(big.Rat).Quo(x.add, norm),
		new(big.Rat).Quo(new(big.Rat).Neg(x.factor), norm),
		x.radical,
	)
}
