// Package absqrtc is your exact-arithmetic playground for quadratic
// surds — numbers of the form a + b·√c with rational a, b and an
// integer radicand c.
//
// 🚀 What is absqrtc?
//
//	A small, thread-friendly library for computing with algebraic
//	numbers of degree two, without ever touching floating point for
//	the math itself:
//		• Canonical form: every value is reduced to a unique
//		  (add, factor, radical) triple with a squarefree radicand
//		• Field arithmetic: add, subtract, multiply, divide, integer
//		  powers, conjugate, norm and inverse — all exact in Q(√c)
//		• Exact equality & hashing on the canonical triple
//		• Total ordering & conversions via a float projection
//		• Optional interning table to collapse duplicate values
//
// ✨ Why choose absqrtc?
//
//   - Exactness first – results core to the algebra are bit-exact rationals
//   - Canonical by construction – √75 and 5√3 are the same value, always
//   - Pure Go library – no cgo; the CLI front-end is strictly optional
//   - Honest about limits – float-based ordering and conversions are
//     documented as approximate, never silently "fixed"
//
// Under the hood, everything is organized under two subpackages:
//
//	radical/   — the normalizer: squarefree extraction of radicands
//	algebraic/ — the Value type: construction, arithmetic, comparison,
//	             conversion and the optional intern table
//
// Quick example:
//
//	    √75  =  5 * √3
//	    (−1 + √2)¹⁰  =  3363 − 2378 * √2
//
//	both computed exactly, no epsilon anywhere.
//
// Values with different radicands (say √2 and √3) do not live in a
// common quadratic extension; operations across them fail loudly with
// ErrIncompatibleRadical rather than approximating.
//
//	go get github.com/Mushinako/absqrtc
package absqrtc
