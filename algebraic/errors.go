// Package algebraic: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations
// return these sentinels (possibly wrapped with fmt.Errorf("ctx: %w", ...))
// and tests match them via errors.Is. No operation panics on
// user-triggered conditions.

package algebraic

import (
	"errors"

	"github.com/Mushinako/absqrtc/radical"
)

var (
	// ErrInvalidRadical is returned by constructors when the radicand is
	// negative. It is the radical package's sentinel re-exported, so
	// errors.Is matches it across both packages.
	ErrInvalidRadical = radical.ErrNegativeRadicand

	// ErrIncompatibleRadical indicates a binary operation between values
	// whose irrational parts live in different extensions (e.g. √2 vs √3).
	// The wrapped message carries both radicands for diagnostics.
	ErrIncompatibleRadical = errors.New("algebraic: different radicals cannot be combined")

	// ErrDivisionByZero indicates division (or inversion) by the zero
	// value — equivalently, a divisor whose conjugate-product norm is zero.
	ErrDivisionByZero = errors.New("algebraic: division by zero value")

	// ErrArgumentCount indicates a call to the variadic constructor Of
	// with fewer than 1 or more than 3 positional arguments.
	ErrArgumentCount = errors.New("algebraic: constructor takes 1 to 3 arguments")

	// ErrTypeMismatch indicates an operand of an unsupported kind was
	// passed to Of, or a non-integral rational in the radicand slot.
	ErrTypeMismatch = errors.New("algebraic: unsupported operand type")
)
