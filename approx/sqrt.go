package approx

import (
	"math/big"

	"github.com/gocomputable/creal/dyadic"
)

// SqrtA returns an enclosure of √a with midpoint bit-bound mb. It panics
// with ErrDomain if a's interval lies entirely below zero, and otherwise
// clamps the lower endpoint to zero before taking square roots — √ is
// monotone, so computing √lo and √hi (dyadic.Sqrt, a higher-precision
// Newton iteration under the hood) and widening each outward by a small
// safety margin yields a sound enclosure without needing a derivative
// bound the way Recip does.
func SqrtA(a *Approx, mb uint) *Approx {
	if a.IsBottom() {
		return a
	}
	lo := a.lowerM()
	hi := a.upperM()
	if hi.Sign() < 0 {
		panic(ErrDomain)
	}
	if lo.Sign() < 0 {
		lo = big.NewInt(0)
	}
	prec := mb + errorBits + 8
	loD := dyadic.New(lo, int(a.s))
	hiD := dyadic.New(hi, int(a.s))
	sLo := dyadic.Sqrt(loD, prec)
	sHi := dyadic.Sqrt(hiD, prec)
	margin := safetyMargin(sLo, sHi)
	loOut := dyadic.Sub(sLo, margin)
	hiOut := dyadic.Add(sHi, margin)
	return EndToApprox(mb, dyadic.Finite(loOut), dyadic.Finite(hiOut))
}

// SqrtRecA returns an enclosure of 1/√a with midpoint bit-bound mb. It
// panics with ErrDomain if a's interval is entirely ≤ 0, and returns ⊥ if
// a's interval touches zero without being entirely negative, since 1/√0
// has no finite enclosure.
func SqrtRecA(a *Approx, mb uint) *Approx {
	if a.IsBottom() {
		return a
	}
	lo := a.lowerM()
	hi := a.upperM()
	if hi.Sign() <= 0 {
		panic(ErrDomain)
	}
	if lo.Sign() <= 0 {
		return Bottom()
	}
	prec := mb + errorBits + 8
	loD := dyadic.New(lo, int(a.s))
	hiD := dyadic.New(hi, int(a.s))
	// 1/√x is decreasing: the smaller operand gives the larger result.
	rHi := dyadic.SqrtRec(loD, prec)
	rLo := dyadic.SqrtRec(hiD, prec)
	margin := safetyMargin(rLo, rHi)
	loOut := dyadic.Sub(rLo, margin)
	hiOut := dyadic.Add(rHi, margin)
	return EndToApprox(mb, dyadic.Finite(loOut), dyadic.Finite(hiOut))
}

// safetyMargin returns a dyadic value a few bits below the scale of x, y
// — comfortably larger than the internal rounding error of the Newton
// iterations dyadic.Sqrt/dyadic.SqrtRec make at the precision they were
// asked for, so widening an interval's endpoints by it keeps the
// enclosure sound without needing to track that error exactly.
func safetyMargin(x, y dyadic.Dyadic) dyadic.Dyadic {
	s := x.S
	if y.S < s {
		s = y.S
	}
	return dyadic.New(big.NewInt(1), s-4)
}

// sqrtHeronA computes one step of Heron's (Babylonian) iteration
// t' = (t + x/t)/2 on the Approx x starting from guess t. It is kept
// unexported and unused: SqrtA takes its endpoint square roots with
// dyadic.Sqrt, and SqrtRecA uses Newton's method on 1/t² - x
// (dyadic.SqrtRec), which converges at the same quadratic rate with one
// fewer division per step — but the simpler Heron form is worth keeping
// around as the textbook reference point for anyone adapting this file.
func sqrtHeronA(x *Approx, t *Approx, mb uint) *Approx {
	q := Quo(x, t, mb+errorBits)
	sum := Add(t, q)
	half := FromDyadic(big.NewInt(1), -1)
	return LimitAndBound(Mul(sum, half), mb)
}
