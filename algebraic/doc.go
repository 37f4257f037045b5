// Package algebraic implements an immutable exact value type for
// quadratic surds a + b·√c, closed under the field operations of Q(√c).
//
// 🚀 What is a Value?
//
//	A canonical (add, factor, radical) triple:
//	  • add    — the rational part (a), an exact *big.Rat
//	  • factor — the coefficient of the radical (b), an exact *big.Rat
//	  • radical — the radicand (c), a squarefree integer ≥ 1
//	plus a float64 projection computed once at construction and used
//	only for ordering, truthiness and numeric conversion.
//
// Every constructor routes through the radical package's normalizer, so
// two mathematically equal values always carry the identical triple:
// New(0,1,75) and New(0,5,3) are Equal, hash alike, and print alike.
//
// ✨ Guarantees:
//
//   - Immutability – operators return fresh Values; operands are never touched
//   - Canonical form – the radicand is squarefree, and factor == 0 iff
//     radical == 1 (the "no irrational part" sentinel)
//   - Exact equality – Equal and Hash work on the triple, never on floats
//   - Closed arithmetic – results of every operation are themselves canonical
//
// ⚙️ Usage:
//
//	x, err := algebraic.New(big.NewRat(3, 1), big.NewRat(-5, 1), 98)
//	// x is 3 - 35·√2
//	y, err := x.Pow(2)
//	fmt.Println(y) // exact, canonical
//
// Two values combine only when their radicands agree, or when one of them
// is purely rational (radical 1 acts as a wildcard). Mixing √2 with √3
// fails with ErrIncompatibleRadical: sums of distinct irrational
// extensions are out of scope, and the package refuses to approximate.
//
// Ordering (Cmp, Less, ...) and the conversions (Int64, Round, Floor,
// Ceil, Trunc) go through the float projection and are therefore
// approximate for irrational values; this is a documented limitation,
// not a bug to paper over.
package algebraic
