package approxmath

import (
	"math"
	"math/big"

	"github.com/gocomputable/creal/approx"
)

// Exp returns an enclosure of e^x at midpoint bit-bound mb. It range-
// reduces x = k·ln2 + r with |r| ≤ ln2/2 (k chosen from x's midpoint,
// the same "pick an integer shift from a float64 estimate, then do the
// rest in validated arithmetic" move this package's trig range reduction
// also makes) and sums e^r by
// Taylor series, since a small r makes that series converge in O(mb)
// terms — the direct generalization of the teacher's own expm1T, which
// sums exactly this series without any range reduction because
// *decimal.Decimal never needs to handle |x| far from 1.
func Exp(x *approx.Approx, mb uint) *approx.Approx {
	if x.IsBottom() {
		return x
	}
	guard := mb + 48
	k := int64(math.Round(x.Centre().Float64() / math.Ln2))
	ln2 := Ln2(guard)
	r := approx.LimitAndBound(approx.Sub(x, approx.Mul(approx.FromDyadic(big.NewInt(k), 0), ln2)), guard)

	er := expTaylor(r, guard)
	if k == 0 {
		return approx.LimitAndBound(er, mb)
	}
	scaled := approx.FromDyadic(big.NewInt(1), int(k))
	return approx.LimitAndBound(approx.Mul(er, scaled), mb)
}

// expTaylor sums Σ r^n/n! directly (no further range reduction), valid
// for |r| ≤ ln2/2 ≈ 0.347, where successive terms shrink by at least a
// factor of 2 once n exceeds a small constant.
func expTaylor(r *approx.Approx, mb uint) *approx.Approx {
	prevFact := approx.FromDyadic(big.NewInt(1), 0)
	coeff := approx.CoeffFunc(func(n int, guard uint) *approx.Approx {
		if n == 0 {
			prevFact = approx.FromDyadic(big.NewInt(1), 0)
			return prevFact
		}
		prevFact = approx.LimitAndBound(approx.Quo(prevFact, approx.FromDyadic(big.NewInt(int64(n)), 0), guard), guard)
		return prevFact
	})
	return approx.TaylorA(r, mb, coeff, 1, 2, 4096)
}

// ExpBinarySplitting computes e^r (for |r| ≤ ln2/2, after the same
// range reduction Exp performs) by evaluating Σ r^n/n! with
// approx.ABPQ instead of direct term accumulation, as a benchmarking
// alternative: a_n=1, b_n=1, p_n=r (so P(0,n+1)=r^n), q_n=n (so
// Q(0,n+1)=n!, with q_0 defined as 1).
func ExpBinarySplitting(x *approx.Approx, mb uint) *approx.Approx {
	if x.IsBottom() {
		return x
	}
	guard := mb + 48
	k := int64(math.Round(x.Centre().Float64() / math.Ln2))
	ln2 := Ln2(guard)
	r := approx.LimitAndBound(approx.Sub(x, approx.Mul(approx.FromDyadic(big.NewInt(k), 0), ln2)), guard)

	// ABPQ's callbacks are exact-integer sequences, so the series is
	// evaluated at r's midpoint only; the radius r carries is folded
	// back in afterwards as an explicit error-only term, bounded by
	// e^r's derivative (e^r itself, ≤ 2 over this range) times r's
	// radius.
	rNum, rDen, _ := rationalize(r, guard)
	terms := int64(guard)/2 + 8

	f := approx.ABPQFuncs{
		A: func(n int64) *big.Int { return big.NewInt(1) },
		B: func(n int64) *big.Int { return big.NewInt(1) },
		P: func(n int64) *big.Int {
			if n == 0 {
				return big.NewInt(1)
			}
			return new(big.Int).Set(rNum)
		},
		Q: func(n int64) *big.Int {
			if n == 0 {
				return big.NewInt(1)
			}
			return new(big.Int).Mul(big.NewInt(n), rDen)
		},
	}
	s := approx.ABPQ(0, terms, f, guard)
	rad := r.Radius()
	propagated := approx.ApproxMB(guard, big.NewInt(0), new(big.Int).Mul(new(big.Int).Abs(rad.M), big.NewInt(2)), rad.S)
	er := approx.LimitAndBound(approx.Add(s, propagated), guard)

	if k == 0 {
		return approx.LimitAndBound(er, mb)
	}
	return approx.LimitAndBound(approx.Mul(er, approx.FromDyadic(big.NewInt(1), int(k))), mb)
}

// rationalize approximates a's midpoint as an exact fraction num/den
// (den a power of two) suitable for feeding into ABPQ's integer-sequence
// callbacks; shift records the binary exponent already folded into
// num/den so the caller can track scale if needed.
func rationalize(a *approx.Approx, guard uint) (num, den *big.Int, shift int) {
	c := a.Centre()
	if c.S >= 0 {
		return new(big.Int).Lsh(c.M, uint(c.S)), big.NewInt(1), 0
	}
	return c.M, new(big.Int).Lsh(big.NewInt(1), uint(-c.S)), c.S
}
