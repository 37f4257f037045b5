package algebraic

import (
	"fmt"
	"math"
	"math/big"

	"github.com/Mushinako/absqrtc/radical"
)

// newValue canonicalizes a raw triple and freezes the result. Every
// construction path in the package funnels through here, so a live Value
// can only ever hold a canonical triple.
func newValue(add, factor *big.Rat, radicand int64) (*Value, error) {
	a, b, c, err := radical.Normalize(ratOrZero(add), ratOrZero(factor), radicand)
	if err != nil {
		return nil, err
	}

	af, _ := a.Float64()
	bf, _ := b.Float64()

	return &Value{
		add:     a,
		factor:  b,
		radical: c,
		approx:  af + bf*math.Sqrt(float64(c)),
	}, nil
}

// ratOrZero treats a nil *big.Rat as an exact zero, mirroring the big
// package's own zero-value semantics.
func ratOrZero(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}

	return r
}

// New constructs the value add + factor·√radicand in canonical form.
// It fails with ErrInvalidRadical when radicand < 0; a radicand of 0
// folds to the purely rational value add.
func New(add, factor *big.Rat, radicand int64) (*Value, error) {
	return newValue(add, factor, radicand)
}

// NewRadical constructs add + √radicand — the two-argument convenience
// form with an implicit coefficient of 1.
func NewRadical(add *big.Rat, radicand int64) (*Value, error) {
	return newValue(add, big.NewRat(1, 1), radicand)
}

// NewRat constructs a purely rational value. It cannot fail.
func NewRat(add *big.Rat) *Value {
	v, _ := newValue(add, nil, 1)

	return v
}

// NewInt constructs a purely integral value. It cannot fail.
func NewInt(n int64) *Value {
	return NewRat(big.NewRat(n, 1))
}

// Zero returns the canonical zero value (0, 0, 1).
func Zero() *Value { return NewInt(0) }

// One returns the canonical unit value (1, 0, 1).
func One() *Value { return NewInt(1) }

// Of is the dynamic constructor mirroring the positional call forms
// (add), (add, radicand) and (add, factor, radicand). Each slot accepts
// int, int64 or *big.Rat; the radicand slot must additionally be an
// integer (a *big.Rat with denominator 1 is accepted).
//
// Errors:
//   - ErrArgumentCount — fewer than 1 or more than 3 arguments.
//   - ErrTypeMismatch  — an argument of another kind, or a fractional
//     rational in the radicand slot.
//   - ErrInvalidRadical — a negative radicand.
func Of(args ...any) (*Value, error) {
	switch len(args) {
	case 1:
		add, err := toRat(args[0])
		if err != nil {
			return nil, err
		}

		return NewRat(add), nil
	case 2:
		add, err := toRat(args[0])
		if err != nil {
			return nil, err
		}
		radicand, err := toInt64(args[1])
		if err != nil {
			return nil, err
		}

		return NewRadical(add, radicand)
	case 3:
		add, err := toRat(args[0])
		if err != nil {
			return nil, err
		}
		factor, err := toRat(args[1])
		if err != nil {
			return nil, err
		}
		radicand, err := toInt64(args[2])
		if err != nil {
			return nil, err
		}

		return New(add, factor, radicand)
	default:
		return nil, fmt.Errorf("got %d arguments: %w", len(args), ErrArgumentCount)
	}
}

// toRat widens a supported operand kind to an exact rational.
func toRat(arg any) (*big.Rat, error) {
	switch v := arg.(type) {
	case int:
		return big.NewRat(int64(v), 1), nil
	case int64:
		return big.NewRat(v, 1), nil
	case *big.Rat:
		return new(big.Rat).Set(v), nil
	default:
		return nil, fmt.Errorf("argument of type %T: %w", arg, ErrTypeMismatch)
	}
}

// toInt64 narrows a supported operand kind to an integer radicand.
func toInt64(arg any) (int64, error) {
	switch v := arg.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case *big.Rat:
		if !v.IsInt() || !v.Num().IsInt64() {
			return 0, fmt.Errorf("radicand %s is not an integer: %w", v.RatString(), ErrTypeMismatch)
		}

		return v.Num().Int64(), nil
	default:
		return 0, fmt.Errorf("radicand of type %T: %w", arg, ErrTypeMismatch)
	}
}
