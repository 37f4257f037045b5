package algebraic

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// oneRat is a comparison-only constant; it is never mutated.
var oneRat = big.NewRat(1, 1)

// Float64 returns the projection add + factor·√radical, computed once at
// construction. It is the IEEE double nearest the true value up to the
// rounding of the three-term evaluation.
func (x *Value) Float64() float64 { return x.approx }

// Int64 truncates the projection toward zero. Lossy for irrational values.
func (x *Value) Int64() int64 { return int64(math.Trunc(x.approx)) }

// Round rounds the projection half-to-even. Lossy for irrational values.
func (x *Value) Round() int64 { return int64(math.RoundToEven(x.approx)) }

// Floor returns the greatest integer ≤ the projection.
func (x *Value) Floor() int64 { return int64(math.Floor(x.approx)) }

// Ceil returns the least integer ≥ the projection.
func (x *Value) Ceil() int64 { return int64(math.Ceil(x.approx)) }

// Trunc is Int64 under its conventional name.
func (x *Value) Trunc() int64 { return x.Int64() }

// String renders the canonical human-readable form:
//
//	"a"                    factor == 0
//	"a + √c", "a - √c"     |factor| == 1
//	"a + f * √c"           otherwise, f = |factor|
//
// dropping the leading rational when it is zero ("√2", "-3 * √2") and
// rendering rationals as p or p/q. The output matches the canonical
// triple exactly; it is not derived from the float projection.
func (x *Value) String() string {
	if x.factor.Sign() == 0 {
		return x.add.RatString()
	}

	var sb strings.Builder
	if x.add.Sign() != 0 {
		sb.WriteString(x.add.RatString())
		if x.factor.Sign() > 0 {
			sb.WriteString(" + ")
		} else {
			sb.WriteString(" - ")
		}
	} else if x.factor.Sign() < 0 {
		sb.WriteString("-")
	}

	factorAbs := x.Factor()
	factorAbs.Abs(factorAbs)
	if factorAbs.Cmp(oneRat) != 0 {
		sb.WriteString(factorAbs.RatString())
		sb.WriteString(" * ")
	}

	sb.WriteString("√")
	sb.WriteString(strconv.FormatInt(x.radical, 10))

	return sb.String()
}
