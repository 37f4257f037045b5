package algebraic_test

import (
	"math/big"
	"testing"

	"github.com/Mushinako/absqrtc/algebraic"
	"github.com/stretchr/testify/require"
)

// mk builds a Value from integer components, failing the test on error.
func mk(t *testing.T, add, factor, radicand int64) *algebraic.Value {
	t.Helper()

	v, err := algebraic.New(big.NewRat(add, 1), big.NewRat(factor, 1), radicand)
	require.NoError(t, err, "New(%d, %d, %d)", add, factor, radicand)

	return v
}

// mkRat builds a Value from rational components, failing the test on error.
func mkRat(t *testing.T, add, factor *big.Rat, radicand int64) *algebraic.Value {
	t.Helper()

	v, err := algebraic.New(add, factor, radicand)
	require.NoError(t, err)

	return v
}
