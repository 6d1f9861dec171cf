package dyadic

import (
	"math"
	"math/big"
)

// Sqrt returns an approximation of √x good to at least prec bits after the
// binary point of the mantissa, for x > 0. The result is a truncation
// (floor) of the true value, i.e. the returned value is never greater than
// the true square root by more than one unit in the last place returned.
//
// Sqrt panics if x is negative; callers (approx.SqrtA) are responsible for
// rejecting negative operands before reaching this primitive, exactly as
// the teacher's own (*Decimal).Sqrt rejects negative operands before
// delegating to sqrtInverse.
func Sqrt(x Dyadic, prec uint) Dyadic {
	if x.Sign() < 0 {
		panic("dyadic: Sqrt of negative operand")
	}
	if x.IsZero() {
		return Zero
	}
	// value = m·2^s; normalize so the exponent is even.
	m, s := new(big.Int).Set(x.M), x.S
	if s%2 != 0 {
		m.Lsh(m, 1)
		s--
	}
	// We want floor(sqrt(m)) to have roughly prec+guard bits: scale m up
	// by an even number of bits first.
	const guard = 8
	want := 2 * int(prec+guard)
	have := m.BitLen()
	shift := want - have
	shift -= shift % 2
	if shift > 0 {
		m = new(big.Int).Lsh(m, uint(shift))
		s -= shift
	} else if shift < 0 {
		m = new(big.Int).Rsh(m, uint(-shift))
		s -= shift
	}
	r := new(big.Int).Sqrt(m)
	return Dyadic{M: r, S: s / 2}
}

// SqrtRec returns an approximation of 1/√x good to at least prec bits, for
// x > 0, computed by Newton's method on f(t) = 1/t² - x, i.e.
// t_{n+1} = ½t_n·(3 - x·t_n²), doubling the working precision at each step.
// This mirrors (*Decimal).sqrtInverse's iteration, translated from base-10
// fixed point to base-2 fixed point.
func SqrtRec(x Dyadic, prec uint) Dyadic {
	if x.Sign() <= 0 {
		panic("dyadic: SqrtRec of non-positive operand")
	}
	xf := x.Float64()
	seed := 1 / math.Sqrt(xf)
	t := FromFloat64(seed)

	three := FromInt64(3, 0)
	half := FromInt64(1, -1)

	p := uint(40)
	for p < prec+8 {
		p = p*2 - 4
		if p > prec+8 {
			p = prec + 8
		}
		u := Mul(t, t)       // t²
		u = Mul(x, u)        // x·t²
		v := Sub(three, u)   // 3 - x·t²
		u = Mul(t, v)        // t·(3 - x·t²)
		t, _ = Round(Mul(u, half), p)
	}
	return t
}
