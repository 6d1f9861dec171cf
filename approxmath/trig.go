package approxmath

import (
	"math"
	"math/big"

	"github.com/gocomputable/creal/approx"
	"github.com/gocomputable/creal/dyadic"
)

// reduceQuadrant reduces x to r = x - k·(π/2) with |r| ≤ π/4, returning r
// and k mod 4 (normalized to 0..3) so Sin/Cos can read the answer for r
// off the sin(r)/cos(r) pair computed once and a small rotation table —
// the same two-level reduction (mod 2π, then mod π/2) every elementary
// trig implementation uses, chosen here via a float64 estimate of k
// exactly the way Exp picks its range-reduction shift from a float64
// estimate of x/ln2.
func reduceQuadrant(x *approx.Approx, guard uint) (r *approx.Approx, quadrant int64) {
	halfPi := approx.LimitAndBound(approx.Quo(Pi(guard), approx.FromDyadic(big.NewInt(2), 0), guard), guard)
	k := int64(math.Round(x.Centre().Float64() / halfPi.Centre().Float64()))
	r = approx.LimitAndBound(approx.Sub(x, approx.Mul(approx.FromDyadic(big.NewInt(k), 0), halfPi)), guard)
	quadrant = ((k % 4) + 4) % 4
	return
}

// sincosSmall computes sin(r), cos(r) for |r| ≤ π/4 by direct Taylor
// series, each coefficient advanced by the standard factorial
// recurrence (c_0=1, c_n = -c_{n-1}/((2n-1)·2n) for cos and
// c_n = -c_{n-1}/(2n(2n+1)) for sin) the same way expTaylor advances 1/n! — a division
// per term rather than an exact dyadic coefficient, since neither
// series' coefficients are dyadic.
func sincosSmall(r *approx.Approx, mb uint) (sinR, cosR *approx.Approx) {
	r2 := approx.LimitAndBound(approx.Sqr(r), mb)

	var prevCos *approx.Approx
	cosCoeff := approx.CoeffFunc(func(n int, guard uint) *approx.Approx {
		if n == 0 {
			prevCos = approx.FromDyadic(big.NewInt(1), 0)
			return prevCos
		}
		denom := big.NewInt(int64(2*n - 1))
		denom.Mul(denom, big.NewInt(int64(2*n)))
		prevCos = approx.LimitAndBound(approx.Neg(approx.Quo(prevCos, approx.FromDyadic(denom, 0), guard)), guard)
		return prevCos
	})
	cosR = approx.TaylorA(r2, mb, cosCoeff, 1, 4, 4096)

	var prevSin *approx.Approx
	sinCoeff := approx.CoeffFunc(func(n int, guard uint) *approx.Approx {
		if n == 0 {
			prevSin = approx.FromDyadic(big.NewInt(1), 0)
			return prevSin
		}
		denom := big.NewInt(int64(2 * n))
		denom.Mul(denom, big.NewInt(int64(2*n+1)))
		prevSin = approx.LimitAndBound(approx.Neg(approx.Quo(prevSin, approx.FromDyadic(denom, 0), guard)), guard)
		return prevSin
	})
	sinSeries := approx.TaylorA(r2, mb, sinCoeff, 1, 4, 4096)
	sinR = approx.LimitAndBound(approx.Mul(r, sinSeries), mb)
	return sinR, cosR
}

// rotate applies the sin(r+k·π/2), cos(r+k·π/2) identities for
// quadrant k ∈ {0,1,2,3}.
func rotate(sinR, cosR *approx.Approx, quadrant int64) (sinX, cosX *approx.Approx) {
	switch quadrant {
	case 0:
		return sinR, cosR
	case 1:
		return cosR, approx.Neg(sinR)
	case 2:
		return approx.Neg(sinR), approx.Neg(cosR)
	default: // 3
		return approx.Neg(cosR), sinR
	}
}

// Sin returns an enclosure of sin(x) at midpoint bit-bound mb.
func Sin(x *approx.Approx, mb uint) *approx.Approx {
	if x.IsBottom() {
		return x
	}
	guard := mb + 48
	r, q := reduceQuadrant(x, guard)
	sinR, cosR := sincosSmall(r, guard)
	sinX, _ := rotate(sinR, cosR, q)
	return approx.LimitAndBound(sinX, mb)
}

// Cos returns an enclosure of cos(x) at midpoint bit-bound mb.
func Cos(x *approx.Approx, mb uint) *approx.Approx {
	if x.IsBottom() {
		return x
	}
	guard := mb + 48
	r, q := reduceQuadrant(x, guard)
	sinR, cosR := sincosSmall(r, guard)
	_, cosX := rotate(sinR, cosR, q)
	return approx.LimitAndBound(cosX, mb)
}

// Atan returns an enclosure of atan(x) at midpoint bit-bound mb.
// |x| > 1 is reduced via atan(x) = π/2 - atan(1/x) (atan(-x) = -atan(x)
// handles negative x), and the remaining |x| ≤ 1 is halved towards zero
// a fixed number of times via the half-angle identity
// tan(θ/2) = t/(1+√(1+t²)) before summing the arctangent Taylor series,
// so the series always runs on an argument small enough to converge in
// a bounded number of terms regardless of the input's own precision.
func Atan(x *approx.Approx, mb uint) *approx.Approx {
	if x.IsBottom() {
		return x
	}
	guard := mb + 48
	if approxIsNegative(x) {
		return approx.Neg(Atan(approx.Neg(x), mb))
	}
	if exceedsOne(x) {
		halfPi := approx.LimitAndBound(approx.Quo(Pi(guard), approx.FromDyadic(big.NewInt(2), 0), guard), guard)
		recip := approx.Recip(x, guard)
		return approx.LimitAndBound(approx.Sub(halfPi, Atan(recip, guard)), mb)
	}

	const halvings = 6
	t := x
	for i := 0; i < halvings; i++ {
		t2 := approx.LimitAndBound(approx.Sqr(t), guard)
		denom := approx.LimitAndBound(approx.Add(one(), approx.SqrtA(approx.Add(one(), t2), guard)), guard)
		t = approx.LimitAndBound(approx.Quo(t, denom, guard), guard)
	}
	series := atanTaylor(t, guard)
	scaled := approx.LimitAndBound(approx.Mul(series, approx.FromDyadic(big.NewInt(1), halvings)), guard)
	return approx.LimitAndBound(scaled, mb)
}

// atanTaylor sums Σ (-1)^n t^(2n+1)/(2n+1) for small t.
func atanTaylor(t *approx.Approx, mb uint) *approx.Approx {
	t2 := approx.LimitAndBound(approx.Sqr(t), mb)
	coeff := approx.CoeffFunc(func(n int, guard uint) *approx.Approx {
		c := approx.LimitAndBound(approx.Quo(t, approx.FromDyadic(big.NewInt(int64(2*n+1)), 0), guard), guard)
		if n%2 == 1 {
			c = approx.Neg(c)
		}
		return c
	})
	return approx.TaylorA(t2, mb, coeff, 1, 4, 4096)
}

func approxIsNegative(x *approx.Approx) bool {
	return x.Upper().Sign() < 0
}

// exceedsOne reports whether x's interval lies entirely above 1.
func exceedsOne(x *approx.Approx) bool {
	return dyadic.Cmp(x.Lower(), dyadic.One) > 0
}
