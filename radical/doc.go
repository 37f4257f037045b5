// Package radical normalizes radicands of quadratic surds: it extracts
// the largest perfect-square divisor of an integer radicand and folds it
// into the rational coefficient, leaving a squarefree radicand behind.
//
// Two entry points:
//
//   - SquareFactors — the integer kernel: split n into s²·r with r squarefree.
//   - Normalize     — the full canonicalization contract used by the
//     algebraic.Value constructors: handles √0, folds perfect squares
//     entirely into the rational part, and enforces the rule that a zero
//     coefficient always pairs with radicand 1.
//
// Trial division is deliberate: radicands in practice are small, and only
// divisors i with i² ≤ n are ever tried.
package radical
