package radical

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNegativeRadicand indicates a radicand below zero was supplied.
// Negative (complex) radicands are not supported anywhere in this module.
var ErrNegativeRadicand = errors.New("radical: negative radicand not supported")

// SquareFactors splits n into sq²·remainder, where remainder is squarefree
// and sq is the largest integer whose square divides n.
//
// Contract:
//   - n < 0 returns ErrNegativeRadicand.
//   - n == 0 returns (1, 0): zero has no square factors worth extracting;
//     callers fold √0 away entirely (see Normalize).
//   - n ≥ 1 returns sq ≥ 1 and a squarefree remainder ≥ 1 with n == sq²·remainder.
//
// The loop trial-divides by every i ≥ 2 with i² ≤ remainder, dividing out
// i² repeatedly so that higher powers (e.g. 16 = 2⁴) are fully extracted.
//
// Complexity: O(√n) divisions.
func SquareFactors(n int64) (sq, remainder int64, err error) {
	if n < 0 {
		return 0, 0, fmt.Errorf("radicand %d: %w", n, ErrNegativeRadicand)
	}

	sq, remainder = 1, n
	for i := int64(2); i*i <= remainder; i++ {
		square := i * i
		for remainder%square == 0 {
			sq *= i
			remainder /= square
		}
	}

	return sq, remainder, nil
}

// Normalize reduces a raw (add, factor, radicand) triple to its canonical
// form: squarefree radicand, square factors folded into the coefficient,
// and the degenerate cases collapsed so that factor == 0 iff radicand == 1.
//
// Rules, in order:
//  1. radicand < 0 → ErrNegativeRadicand.
//  2. radicand == 0 → the irrational term vanishes (factor·√0 == 0):
//     result is (add, 0, 1) regardless of factor.
//  3. factor == 0 → the radicand is irrelevant: result is (add, 0, 1).
//  4. Otherwise split radicand = sq²·remainder. If remainder == 1 the
//     whole term is rational: (add + factor·sq, 0, 1). Else the term
//     survives as (add, factor·sq, remainder).
//
// Normalize never mutates its arguments; the returned rationals are fresh.
// Normalize is idempotent: feeding its output back in returns equal output.
func Normalize(add, factor *big.Rat, radicand int64) (*big.Rat, *big.Rat, int64, error) {
	if radicand < 0 {
		return nil, nil, 0, fmt.Errorf("radicand %d: %w", radicand, ErrNegativeRadicand)
	}
	if radicand == 0 || factor.Sign() == 0 {
		return new(big.Rat).Set(add), new(big.Rat), 1, nil
	}

	sq, remainder, err := SquareFactors(radicand)
	if err != nil {
		return nil, nil, 0, err
	}

	if remainder == 1 {
		// factor·sq·√1 is rational; fold it into the additive part.
		folded := new(big.Rat).Mul(factor, new(big.Rat).SetInt64(sq))
		return folded.Add(folded, add), new(big.Rat), 1, nil
	}

	return new(big.Rat).Set(add),
		new(big.Rat).Mul(factor, new(big.Rat).SetInt64(sq)),
		remainder,
		nil
}
