package dyadic

// atan returns atan(x) = x - x³/3 + x⁵/5 - … to at least prec bits, for
// |x| < 1/2 (the only range PiMachin needs).
func atan(x Dyadic, prec uint) Dyadic {
	p := prec + 16
	x2, _ := Round(Mul(x, x), p)
	x2 = Neg(x2)
	term := x
	sum := x
	n := int64(1)
	for {
		term, _ = Round(Mul(term, x2), p)
		n += 2
		t := Div(term, FromInt64(n, 0), p)
		sum = Add(sum, t)
		sum, _ = Round(sum, p)
		if t.IsZero() || t.BitLen()+t.S < -int(prec) {
			break
		}
	}
	r, _ := Round(sum, prec)
	return r
}

// PiMachin returns π to at least prec bits via Machin's formula
//
//	π/4 = 4·atan(1/5) - atan(1/239)
//
// This is the slower of the two fallback π algorithms the approx package
// never calls from its hot path but keeps available for cross-checking
// approxmath.PiRaw (the Chudnovsky binary-splitting series that is the
// package's default).
func PiMachin(prec uint) Dyadic {
	p := prec + 16
	a := atan(Div(One, FromInt64(5, 0), p), p)
	b := atan(Div(One, FromInt64(239, 0), p), p)
	s := Sub(Mul(FromInt64(4, 0), a), b)
	r, _ := Round(Mul(s, FromInt64(4, 0)), prec)
	return r
}

// PiBorwein returns π to at least prec bits via the Gauss-Legendre/Brent-
// Salamin quadratically convergent AGM iteration: starting from a₀=1,
// b₀=1/√2, t₀=¼, p₀=1,
//
//	a_{n+1} = (a_n+b_n)/2, b_{n+1} = √(a_n·b_n)
//	t_{n+1} = t_n - p_n·(a_n-a_{n+1})², p_{n+1} = 2·p_n
//
// π ≈ (a+b)²/(4t). This mirrors the AGM loop in the teacher's own
// math/pi.go, translated from base-10 Decimal fixed point to base-2 Dyadic
// fixed point.
func PiBorwein(prec uint) Dyadic {
	p := prec + 24
	a := One
	b := Div(One, Sqrt(FromInt64(2, 0), p), p) // 1/√2
	t := FromInt64(1, -2)                      // 1/4
	pw := One

	for i := 0; i < 64; i++ {
		an, _ := Round(Mul(Add(a, b), FromInt64(1, -1)), p)
		bn, _ := Round(Sqrt(Mul(a, b), p), p)
		d := Sub(a, an)
		d2, _ := Round(Mul(d, d), p)
		t = Sub(t, Mul(pw, d2))
		t, _ = Round(t, p)
		pw = Mul(pw, FromInt64(2, 0))
		a, b = an, bn
		if d.IsZero() || d.BitLen()+d.S < -int(prec) {
			break
		}
	}
	num, _ := Round(Mul(Add(a, b), Add(a, b)), p)
	den, _ := Round(Mul(FromInt64(4, 0), t), p)
	r := Div(num, den, prec+8)
	r, _ = Round(r, prec)
	return r
}
