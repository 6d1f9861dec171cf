package dyadic

// Atanh returns atanh(x) = x + x³/3 + x⁵/5 + … to at least prec bits,
// for |x| < 1/2. The series is geometrically convergent for such x (ratio
// of successive terms ~ x²), which is the precondition its caller (Ln2,
// which passes x = 1/3) satisfies.
func Atanh(x Dyadic, prec uint) Dyadic {
	p := prec + 16
	x2, _ := Round(Mul(x, x), p)
	term := x
	sum := x
	n := int64(1)
	for {
		term, _ = Round(Mul(term, x2), p)
		n += 2
		t := Div(term, FromInt64(n, 0), p)
		sum = Add(sum, t)
		sum, _ = Round(sum, p)
		if t.IsZero() || t.S+t.BitLen() < -int(prec) {
			break
		}
	}
	r, _ := Round(sum, prec)
	return r
}

// Ln2 returns ln 2 to at least prec bits, computed as 2·atanh(1/3), the
// same identity approxmath.Log's default path applies to ln m =
// 2·atanh((m-1)/(m+1)).
func Ln2(prec uint) Dyadic {
	third := Div(One, FromInt64(3, 0), prec+16)
	a := Atanh(third, prec+4)
	r, _ := Round(Mul(a, FromInt64(2, 0)), prec)
	return r
}
