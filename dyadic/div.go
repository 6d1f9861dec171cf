package dyadic

import "math/big"

// Div returns x/y rounded to at least prec bits of precision (round to
// nearest). Div panics if y is zero.
func Div(x, y Dyadic, prec uint) Dyadic {
	if y.IsZero() {
		panic("dyadic: Div by zero")
	}
	// x/y = (xm/ym)·2^(xs-ys). Scale xm up so the integer quotient carries
	// at least prec+guard bits.
	const guard = 8
	num := new(big.Int).Set(x.M)
	den := new(big.Int).Set(y.M)
	negNum, negDen := num.Sign() < 0, den.Sign() < 0
	num.Abs(num)
	den.Abs(den)

	shift := int(prec+guard) - (num.BitLen() - den.BitLen())
	if shift < 0 {
		shift = 0
	}
	num.Lsh(num, uint(shift))

	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	// round to nearest: compare 2r to den
	r2 := new(big.Int).Lsh(r, 1)
	if r2.CmpAbs(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if negNum != negDen {
		q.Neg(q)
	}
	return Dyadic{M: q, S: x.S - y.S - shift}
}
