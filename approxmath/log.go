package approxmath

import (
	"math/big"

	"github.com/gocomputable/creal/approx"
	"github.com/gocomputable/creal/dyadic"
)

// Ln2 wraps dyadic.Ln2 as a validated Approx, the same way PiMachin wraps
// dyadic.PiMachin.
func Ln2(mb uint) *approx.Approx {
	return wrapDyadicConst(dyadic.Ln2, mb)
}

// Log returns an enclosure of ln(x) at midpoint bit-bound mb. It panics
// with approx.ErrDomain if x's interval is not entirely positive. The
// default algorithm range-reduces x to m ∈ [1,2) by removing an integer
// power of two (ln x = ln m + k·ln2) and then sums the rapidly-
// converging atanh series ln m = 2·atanh((m-1)/(m+1)), the same
// arctanh-identity trick dyadic.Ln2 itself uses for the constant ln2 —
// only here driven at the validated Approx level with the interval's
// own range reduction rather than a single fixed dyadic value.
func Log(x *approx.Approx, mb uint) *approx.Approx {
	if x.IsBottom() {
		return x
	}
	if x.Lower().Sign() <= 0 {
		panic(approx.ErrDomain)
	}
	guard := mb + 48
	k := x.Significance()
	m := approx.LimitAndBound(approx.Mul(x, approx.FromDyadic(big.NewInt(1), -k)), guard)

	t := approx.LimitAndBound(approx.Quo(approx.Sub(m, one()), approx.Add(m, one()), guard), guard)
	lnm := atanhSeries(t, guard)
	lnm = approx.Mul(lnm, approx.FromDyadic(big.NewInt(2), 0))

	if k == 0 {
		return approx.LimitAndBound(lnm, mb)
	}
	kLn2 := approx.Mul(approx.FromDyadic(big.NewInt(int64(k)), 0), Ln2(guard))
	return approx.LimitAndBound(approx.Add(lnm, kLn2), mb)
}

// atanhSeries sums Σ t^(2n+1)/(2n+1) via TaylorA, the series
// dyadic.Atanh also uses at the unvalidated dyadic level; here x^(2n+1)
// is tracked by squaring the argument once and folding the extra factor
// of t into the coefficient, since TaylorA's power accumulator advances
// by one power of its argument per term.
func atanhSeries(t *approx.Approx, mb uint) *approx.Approx {
	t2 := approx.LimitAndBound(approx.Sqr(t), mb)
	coeff := approx.CoeffFunc(func(n int, guard uint) *approx.Approx {
		return approx.LimitAndBound(approx.Quo(t, approx.FromDyadic(big.NewInt(int64(2*n+1)), 0), guard), guard)
	})
	return approx.TaylorA(t2, mb, coeff, 1, 3, 4096)
}

func one() *approx.Approx { return approx.FromDyadic(big.NewInt(1), 0) }

// LogAGM returns an enclosure of ln(x) at midpoint bit-bound mb using the
// Gauss-Legendre AGM algorithm (Michael Beeler, R. William Gosper,
// Richard Schroeppel, HAKMEM, Item 143), grounded directly on the
// teacher's own math/log.go agm/Log implementation: scale x by 2^m so
// x·2^m > 2/√ε with ε = 2^-guard, run the AGM loop on (1, 4/scaled-x)
// and divide π by twice the result, then subtract back m·ln2.
func LogAGM(x *approx.Approx, mb uint) *approx.Approx {
	if x.IsBottom() {
		return x
	}
	if x.Lower().Sign() <= 0 {
		panic(approx.ErrDomain)
	}
	guard := mb + 64
	sig := x.Significance()
	m := int(guard)/2 + 2 - sig
	if m < 0 {
		m = 0
	}
	z := approx.LimitAndBound(approx.Mul(x, approx.FromDyadic(big.NewInt(1), m)), guard)

	u := approx.LimitAndBound(approx.Quo(approx.FromDyadic(big.NewInt(4), 0), z, guard), guard)
	a := agmA(one(), u, guard)
	lnz := approx.LimitAndBound(approx.Quo(Pi(guard), approx.Mul(a, approx.FromDyadic(big.NewInt(2), 0)), guard), guard)

	if m > 0 {
		mLn2 := approx.Mul(approx.FromDyadic(big.NewInt(int64(m)), 0), Ln2(guard))
		lnz = approx.Sub(lnz, mLn2)
	}
	return approx.LimitAndBound(lnz, mb)
}

// agmA runs the arithmetic-geometric mean iteration to convergence at
// working precision guard and returns the common limit.
func agmA(a, b *approx.Approx, guard uint) *approx.Approx {
	half := approx.FromDyadic(big.NewInt(1), -1)
	for i := 0; i < 64; i++ {
		an := approx.LimitAndBound(approx.Mul(approx.Add(a, b), half), guard)
		bn := approx.LimitAndBound(approx.SqrtA(approx.Mul(a, b), guard), guard)
		d := approx.Sub(a, an)
		a, b = an, bn
		if i > 2 && d.Significance() < -int(guard) {
			break
		}
	}
	return a
}
