package approx

import (
	"math/big"

	"github.com/gocomputable/creal/dyadic"
)

// CoeffFunc supplies the nth coefficient of a power series Σ c_n·x^n as
// an already-validated Approx computed to at least mb bits. Most
// elementary-function coefficients (1/n!, 1/(2n+1), ...) are not exact
// dyadics, so unlike x itself the coefficient is produced by the caller
// at whatever precision Taylor asks for — typically via a recurrence
// evaluated with approx.Quo — rather than being lifted once from an
// exact rational.
type CoeffFunc func(n int, mb uint) *Approx

// DyadicCoeff adapts a coefficient sequence that happens to be exact
// dyadic rationals (as binomial/integer-coefficient series are) into a
// CoeffFunc, ignoring the requested precision since the value is exact.
func DyadicCoeff(f func(n int) dyadic.Dyadic) CoeffFunc {
	return func(n int, _ uint) *Approx {
		d := f(n)
		return FromDyadic(d.M, d.S)
	}
}

// TaylorA sums Σ_{n=0}^{∞} c_n·x^n to midpoint bit-bound mb, terminating
// once the current term is judged negligible relative to the working
// precision and then calling Fudge to bound the discarded tail under the
// assumption that |c_{n+1}·x^{n+1}| ≤ (num/den)·|c_n·x^n| for all n
// beyond the cutoff — true of every elementary-function series this
// module evaluates once its argument has been range-reduced below 1.
// maxTerms bounds the loop so a caller's bad ratio bound cannot spin
// forever. See Taylor for the unvalidated dyadic-level counterpart of this
// function, which sums the same kind of series without interval bookkeeping.
func TaylorA(x *Approx, mb uint, coeff CoeffFunc, num, den int64, maxTerms int) *Approx {
	guard := mb + errorBits + 16
	sum := FromDyadic(big.NewInt(0), 0)
	xn := FromDyadic(big.NewInt(1), 0) // x^0

	for n := 0; n < maxTerms; n++ {
		c := coeff(n, guard)
		term := LimitAndBound(Mul(c, xn), guard)
		sum = LimitAndBound(Add(sum, term), guard)
		if n > 0 && termNegligible(term, guard) {
			return LimitAndBound(Add(sum, Fudge(term, num, den)), mb)
		}
		xn = LimitAndBound(Mul(xn, x), guard)
	}
	// maxTerms exhausted without the ratio test converging: fall back to
	// a wide fudge sized from the accumulated sum itself (±|sum|) rather
	// than returning a silently truncated sum.
	return LimitAndBound(Add(sum, Fudge(sum, 1, 2)), mb)
}

// termNegligible reports whether term's magnitude is already below the
// working precision, i.e. roughly 2^-prec.
func termNegligible(term *Approx, prec uint) bool {
	if term.IsBottom() {
		return false
	}
	mag := new(big.Int).Add(new(big.Int).Abs(term.m), term.e)
	if mag.Sign() == 0 {
		return true
	}
	return int(term.s)+mag.BitLen() < -int(prec)
}

// Taylor sums Σ_{n=0}^{∞} c_n·x^n as exact dyadic arithmetic, stopping
// once a term underflows prec bits and rounding the accumulated sum to
// prec bits, without the interval bookkeeping TaylorA performs. It is
// the direct, unvalidated analogue of the teacher's own expm1T — useful
// when a caller already knows the series converges comfortably and only
// wants a fast fixed-precision value, not a certified enclosure.
// (dyadic.Atanh sums its own series with the same stopping rule; it does
// not call this function.)
func Taylor(x dyadic.Dyadic, prec uint, coeff func(n int) dyadic.Dyadic, maxTerms int) dyadic.Dyadic {
	sum := dyadic.Zero
	xn := dyadic.One
	for n := 0; n < maxTerms; n++ {
		c := coeff(n)
		term := dyadic.Mul(c, xn)
		sum = dyadic.Add(sum, term)
		if term.IsZero() || term.BitLen()+term.S < -int(prec) {
			break
		}
		xn = dyadic.Mul(xn, x)
	}
	sum, _ = dyadic.Round(sum, prec)
	return sum
}

// Fudge bounds the tail of a series whose terms decay geometrically with
// ratio bounded by num/den < 1, given the last term actually computed:
// Σ_{k≥1} (num/den)^k · |last| = |last| · num/(den-num).
func Fudge(last *Approx, num, den int64) *Approx {
	if last.IsBottom() {
		return Bottom()
	}
	mag := new(big.Int).Add(new(big.Int).Abs(last.m), last.e)
	bound := new(big.Int).Mul(mag, big.NewInt(num))
	bound = ceilDiv(bound, big.NewInt(den-num))
	return ApproxMB(uint(last.mb), big.NewInt(0), bound, int(last.s))
}
