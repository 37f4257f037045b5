package algebraic_test

import (
	"math/big"
	"testing"

	"github.com/Mushinako/absqrtc/algebraic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_NegativeRadicand verifies construction-time rejection of
// negative radicands through every constructor form.
func TestNew_NegativeRadicand(t *testing.T) {
	_, err := algebraic.New(big.NewRat(-1, 1), big.NewRat(-1, 1), -1)
	assert.ErrorIs(t, err, algebraic.ErrInvalidRadical)

	_, err = algebraic.NewRadical(big.NewRat(0, 1), -7)
	assert.ErrorIs(t, err, algebraic.ErrInvalidRadical)

	_, err = algebraic.Of(0, 0, -5)
	assert.ErrorIs(t, err, algebraic.ErrInvalidRadical)
}

// TestNew_ZeroRadicand verifies that √0 folds into the rational-only case
// instead of erroring: the irrational term simply vanishes.
func TestNew_ZeroRadicand(t *testing.T) {
	v, err := algebraic.New(big.NewRat(3, 1), big.NewRat(5, 1), 0)
	require.NoError(t, err)
	assert.True(t, v.Equal(algebraic.NewInt(3)))
	assert.Zero(t, v.Factor().Sign())
	assert.Equal(t, int64(1), v.Radical())
}

// TestNew_Reduction ports the original reduction table: square factors
// are pulled out of the radicand and folded into the coefficient.
func TestNew_Reduction(t *testing.T) {
	t1, err := algebraic.NewRadical(big.NewRat(0, 1), 75)
	require.NoError(t, err)
	assert.Zero(t, t1.AddPart().Sign(), "add of √75")
	assert.Zero(t, big.NewRat(5, 1).Cmp(t1.Factor()), "factor of √75")
	assert.Equal(t, int64(3), t1.Radical(), "radical of √75")

	t2 := mk(t, 3, -5, 98)
	assert.Zero(t, big.NewRat(3, 1).Cmp(t2.AddPart()))
	assert.Zero(t, big.NewRat(-35, 1).Cmp(t2.Factor()))
	assert.Equal(t, int64(2), t2.Radical())

	// √9 is rational: the whole term folds into the additive part.
	t3 := mk(t, -5, 3, 9)
	assert.Zero(t, big.NewRat(4, 1).Cmp(t3.AddPart()))
	assert.Zero(t, t3.Factor().Sign())
	assert.Equal(t, int64(1), t3.Radical())

	// Zero coefficient: the radicand is irrelevant and collapses to 1.
	t4 := mk(t, -3, 0, 200)
	assert.Zero(t, big.NewRat(-3, 1).Cmp(t4.AddPart()))
	assert.Zero(t, t4.Factor().Sign())
	assert.Equal(t, int64(1), t4.Radical())
}

// TestNew_CanonicalEquality is the core correctness property: different
// argument paths to the same algebraic number produce Equal values.
func TestNew_CanonicalEquality(t *testing.T) {
	assert.True(t, mk(t, 0, 1, 75).Equal(mk(t, 0, 5, 3)), "√75 == 5·√3")
	assert.True(t, mk(t, 3, 5, 7).Equal(mk(t, 3, 1, 175)), "5·√7 == √175")
	assert.True(t, mk(t, -5, 3, 9).Equal(mk(t, 4, 0, 1)), "-5 + 3·√9 == 4")
}

// TestNew_SquarefreeInvariant constructs across a radicand range and
// checks the canonical invariants directly.
func TestNew_SquarefreeInvariant(t *testing.T) {
	for c := int64(0); c <= 200; c++ {
		v, err := algebraic.NewRadical(big.NewRat(1, 3), c)
		require.NoError(t, err)

		rad := v.Radical()
		if v.Factor().Sign() == 0 {
			assert.Equal(t, int64(1), rad, "factor 0 must pair with radical 1 (c=%d)", c)
			continue
		}
		for k := int64(2); k*k <= rad; k++ {
			assert.NotZero(t, rad%(k*k), "radical %d from c=%d is not squarefree", rad, c)
		}
	}
}

// TestNewRat_And_NewInt covers the one-argument forms.
func TestNewRat_And_NewInt(t *testing.T) {
	v := algebraic.NewRat(big.NewRat(7, 2))
	assert.Zero(t, big.NewRat(7, 2).Cmp(v.AddPart()))
	assert.Equal(t, int64(1), v.Radical())

	assert.True(t, algebraic.NewInt(4).Equal(mk(t, 4, 0, 1)))
	assert.True(t, algebraic.Zero().IsZero())
	assert.True(t, algebraic.One().Equal(algebraic.NewInt(1)))
}

// TestOf_CallForms exercises the 1/2/3-argument dynamic constructor.
func TestOf_CallForms(t *testing.T) {
	one, err := algebraic.Of(5)
	require.NoError(t, err)
	assert.True(t, one.Equal(algebraic.NewInt(5)))

	two, err := algebraic.Of(0, 75)
	require.NoError(t, err)
	assert.True(t, two.Equal(mk(t, 0, 5, 3)), "(add, radicand) form implies factor 1")

	three, err := algebraic.Of(big.NewRat(1, 2), big.NewRat(1, 2), 2)
	require.NoError(t, err)
	assert.Equal(t, "1/2 + 1/2 * √2", three.String())

	intRad, err := algebraic.Of(0, int64(1), big.NewRat(75, 1))
	require.NoError(t, err, "integral *big.Rat is accepted in the radicand slot")
	assert.True(t, intRad.Equal(two))
}

// TestOf_ArgumentCount verifies arity validation.
func TestOf_ArgumentCount(t *testing.T) {
	_, err := algebraic.Of()
	assert.ErrorIs(t, err, algebraic.ErrArgumentCount)

	_, err = algebraic.Of(1, 2, 3, 4)
	assert.ErrorIs(t, err, algebraic.ErrArgumentCount)
}

// TestOf_TypeMismatch verifies operand-kind validation, including the
// integral-radicand rule.
func TestOf_TypeMismatch(t *testing.T) {
	_, err := algebraic.Of("1")
	assert.ErrorIs(t, err, algebraic.ErrTypeMismatch, "strings are not parsed")

	_, err = algebraic.Of(1.5)
	assert.ErrorIs(t, err, algebraic.ErrTypeMismatch, "floats are not exact operands")

	_, err = algebraic.Of(1, big.NewRat(1, 2))
	assert.ErrorIs(t, err, algebraic.ErrTypeMismatch, "fractional radicand")

	_, err = algebraic.Of(1, 1, "7")
	assert.ErrorIs(t, err, algebraic.ErrTypeMismatch)
}

// TestValue_Immutability confirms getters hand out copies and operations
// leave operands untouched.
func TestValue_Immutability(t *testing.T) {
	v := mk(t, 3, -5, 98)

	v.AddPart().SetInt64(99)
	v.Factor().SetInt64(99)
	assert.Zero(t, big.NewRat(3, 1).Cmp(v.AddPart()), "mutating the copy must not leak in")
	assert.Zero(t, big.NewRat(-35, 1).Cmp(v.Factor()))

	w := mk(t, 1, 1, 2)
	_, err := v.Mul(w)
	require.Error(t, err) // different radicals, but operands must survive intact
	assert.Zero(t, big.NewRat(3, 1).Cmp(v.AddPart()))
	assert.Zero(t, big.NewRat(1, 1).Cmp(w.Factor()))
}

// TestValue_ConjugateProduct checks the norm a² − b²·c.
func TestValue_ConjugateProduct(t *testing.T) {
	// (3 − 5√7): 9 − 25·7 = −166
	assert.Zero(t, big.NewRat(-166, 1).Cmp(mk(t, 3, -5, 7).ConjugateProduct()))
	// purely rational: norm is a²
	assert.Zero(t, big.NewRat(4, 1).Cmp(mk(t, 2, 0, 1).ConjugateProduct()))
	assert.Zero(t, algebraic.Zero().ConjugateProduct().Sign())
}
