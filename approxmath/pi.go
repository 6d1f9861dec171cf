package approxmath

import (
	"math/big"

	"github.com/gocomputable/creal/approx"
	"github.com/gocomputable/creal/dyadic"
)

var (
	chudA  = big.NewInt(13591409)
	chudB  = big.NewInt(545140134)
	chudC  = big.NewInt(640320)
	chudC3 = func() *big.Int {
		c3 := new(big.Int).Exp(chudC, big.NewInt(3), nil)
		return new(big.Int).Quo(c3, big.NewInt(24))
	}()
)

// _pi caches the highest-precision π computed so far, mirroring the
// teacher's own package-level `var _pi = pi(...)` plus "recompute only if
// the cached value is too short" pattern in math/pi.go.
var _pi *approx.Approx = PiRaw(256)

// Pi returns an enclosure of π at midpoint bit-bound mb, served from a
// package-level cache that grows (never shrinks) as higher precision is
// requested.
func Pi(mb uint) *approx.Approx {
	if _pi.MB() < mb {
		_pi = PiRaw(mb * 2)
	}
	return approx.LimitSize(_pi, mb)
}

// PiRaw computes π to midpoint bit-bound mb using the Chudnovsky brothers'
// rapidly-converging series, evaluated by binary splitting via
// approx.ABPQ — each term contributes roughly 47 bits (14.18 decimal
// digits), so this is this module's fastest π algorithm and the one
// Pi/cr.Pi use by default. PiMachin, PiBorwein and PiAGM below exist as
// independently-grounded cross-checks, not because any of them is faster.
func PiRaw(mb uint) *approx.Approx {
	guard := mb + 64
	terms := int64(mb)/45 + 3

	f := approx.ABPQFuncs{
		A: func(n int64) *big.Int {
			t := new(big.Int).Mul(chudB, big.NewInt(n))
			t.Add(t, chudA)
			if n&1 != 0 {
				t.Neg(t)
			}
			return t
		},
		B: func(n int64) *big.Int { return big.NewInt(1) },
		P: func(n int64) *big.Int {
			if n == 0 {
				return big.NewInt(1)
			}
			a := big.NewInt(6*n - 5)
			b := big.NewInt(2*n - 1)
			c := big.NewInt(6*n - 1)
			a.Mul(a, b)
			a.Mul(a, c)
			return a
		},
		Q: func(n int64) *big.Int {
			if n == 0 {
				return big.NewInt(1)
			}
			n3 := new(big.Int).Exp(big.NewInt(n), big.NewInt(3), nil)
			return n3.Mul(n3, chudC3)
		},
	}

	s := approx.ABPQ(1, terms, f, guard) // Σ_{n=1}^{terms-1} term_n; term_0 is chudA
	sqrt10005 := approx.SqrtA(approx.FromDyadic(big.NewInt(10005), 0), guard)
	numerator := approx.Mul(approx.FromDyadic(big.NewInt(426880), 0), sqrt10005)
	denom := approx.Add(approx.FromDyadic(chudA, 0), s)
	return approx.LimitAndBound(approx.Quo(numerator, denom, guard), mb)
}

// PiMachin wraps dyadic.PiMachin (Machin's arctangent formula) as a
// validated Approx, padding with a conservative error margin since the
// dyadic-level routine itself returns an unvalidated last-few-bits
// approximation rather than a certified enclosure.
func PiMachin(mb uint) *approx.Approx {
	return wrapDyadicConst(dyadic.PiMachin, mb)
}

// PiBorwein wraps dyadic.PiBorwein (the Gauss-Legendre/Brent-Salamin AGM
// iteration) the same way PiMachin wraps dyadic.PiMachin.
func PiBorwein(mb uint) *approx.Approx {
	return wrapDyadicConst(dyadic.PiBorwein, mb)
}

// PiAGM computes π at the Approx level via the same Gauss-Legendre AGM
// iteration the teacher's own math/pi.go runs at the Decimal level,
// giving a fully validated (rather than wrapped-unvalidated) cross-check
// independent of both PiRaw's binary splitting and dyadic.PiBorwein's
// fixed-precision Newton-free loop.
func PiAGM(mb uint) *approx.Approx {
	guard := mb + 64
	a := approx.FromDyadic(big.NewInt(1), 0)
	b := approx.SqrtRecA(approx.FromDyadic(big.NewInt(2), 0), guard)
	t := approx.FromDyadic(big.NewInt(1), -2) // 1/4
	pw := approx.FromDyadic(big.NewInt(1), 0)
	half := approx.FromDyadic(big.NewInt(1), -1)

	for i := 0; i < 64; i++ {
		an := approx.LimitAndBound(approx.Mul(approx.Add(a, b), half), guard)
		bn := approx.LimitAndBound(approx.SqrtA(approx.Mul(a, b), guard), guard)
		d := approx.Sub(a, an)
		d2 := approx.LimitAndBound(approx.Sqr(d), guard)
		t = approx.LimitAndBound(approx.Sub(t, approx.Mul(pw, d2)), guard)
		pw = approx.Mul(pw, approx.FromDyadic(big.NewInt(2), 0))
		a, b = an, bn
		if i > 2 && d.Significance() < -int(guard) {
			break
		}
	}
	sum := approx.LimitAndBound(approx.Add(a, b), guard)
	asq := approx.Sqr(sum)
	return approx.LimitAndBound(approx.Quo(asq, approx.Mul(t, approx.FromDyadic(big.NewInt(4), 0)), mb), mb)
}

func wrapDyadicConst(f func(prec uint) dyadic.Dyadic, mb uint) *approx.Approx {
	guard := mb + 32
	d := f(guard)
	margin := dyadic.New(big.NewInt(1), d.S+1)
	lo := dyadic.Sub(d, margin)
	hi := dyadic.Add(d, margin)
	return approx.EndToApprox(mb, dyadic.Finite(lo), dyadic.Finite(hi))
}
