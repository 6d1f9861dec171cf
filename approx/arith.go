package approx

import (
	"math/big"

	"github.com/gocomputable/creal/dyadic"
)

// Add returns an enclosure of a+b.
func Add(a, b *Approx) *Approx {
	if a.IsBottom() || b.IsBottom() {
		return Bottom()
	}
	am, ae, bm, be, s := alignPair(a, b)
	m := new(big.Int).Add(am, bm)
	e := new(big.Int).Add(ae, be)
	return ApproxMB2([]uint{uint(a.mb), uint(b.mb)}, m, e, int(s))
}

// Sub returns an enclosure of a-b.
func Sub(a, b *Approx) *Approx {
	return Add(a, Neg(b))
}

// Neg returns an enclosure of -a.
func Neg(a *Approx) *Approx {
	if a.IsBottom() {
		return a
	}
	return &Approx{mb: a.mb, m: new(big.Int).Neg(a.m), e: new(big.Int).Set(a.e), s: a.s}
}

// Abs returns an enclosure of |a|.
func Abs(a *Approx) *Approx {
	if a.IsBottom() {
		return a
	}
	lo := a.lowerM()
	hi := a.upperM()
	switch {
	case lo.Sign() >= 0:
		return a
	case hi.Sign() <= 0:
		return Neg(a)
	default:
		// straddles zero: the tight image is [0, max(|lo|,|hi|)]
		top := maxBig(new(big.Int).Abs(lo), new(big.Int).Abs(hi))
		m, e := centerRadius(big.NewInt(0), top)
		return ApproxMB(uint(a.mb), m, e, int(a.s))
	}
}

// SignA returns -1, 0 or +1 according to the sign of a's interval, and
// panics with ErrUncomparable if the interval straddles zero without
// being the single point {0}.
func SignA(a *Approx) int {
	if a.IsBottom() {
		panic(ErrUncomparable)
	}
	lo := a.lowerM()
	hi := a.upperM()
	switch {
	case lo.Sign() > 0:
		return 1
	case hi.Sign() < 0:
		return -1
	case lo.Sign() == 0 && hi.Sign() == 0:
		return 0
	default:
		panic(ErrUncomparable)
	}
}

// Mul returns an enclosure of a*b, computed from the four endpoint
// products so the result is exact wherever a and b's signs are already
// known and no tighter than genuinely necessary when either straddles
// zero — the interval-arithmetic generalization of the sign-case
// analysis the teacher's own Decimal.Mul special-cases for ±0 and ±Inf.
func Mul(a, b *Approx) *Approx {
	if a.IsBottom() || b.IsBottom() {
		return Bottom()
	}
	aLo, aHi := a.lowerM(), a.upperM()
	bLo, bHi := b.lowerM(), b.upperM()
	p1 := new(big.Int).Mul(aLo, bLo)
	p2 := new(big.Int).Mul(aLo, bHi)
	p3 := new(big.Int).Mul(aHi, bLo)
	p4 := new(big.Int).Mul(aHi, bHi)
	lo := minBig(minBig(p1, p2), minBig(p3, p4))
	hi := maxBig(maxBig(p1, p2), maxBig(p3, p4))
	s := int(a.s) + int(b.s)
	m, e := centerRadius(lo, hi)
	return ApproxMB2([]uint{uint(a.mb), uint(b.mb)}, m, e, s)
}

// Sqr returns a tight enclosure of a*a, per spec.md §4.E's sqrA: if
// |m|>e then m'=m²+e², e'=2|m|e, s'=2s; otherwise (a's interval
// straddles or touches zero) m'=e'=(|m|+e)², s'=2s-1. This avoids the
// dependency inflation Mul(a, a) suffers from on a zero-straddling
// interval — a=[-2,3] squares to the tight [0,9] here, rather than the
// widened [-6,9] naive squaring would produce.
func Sqr(a *Approx) *Approx {
	if a.IsBottom() {
		return a
	}
	magM := new(big.Int).Abs(a.m)
	s := int(a.s)
	if magM.Cmp(a.e) > 0 {
		mOut := new(big.Int).Add(new(big.Int).Mul(a.m, a.m), new(big.Int).Mul(a.e, a.e))
		eOut := new(big.Int).Mul(new(big.Int).Lsh(magM, 1), a.e)
		return ApproxMB(uint(a.mb), mOut, eOut, 2*s)
	}
	sum := new(big.Int).Add(magM, a.e)
	sq := new(big.Int).Mul(sum, sum)
	return ApproxMB(uint(a.mb), sq, new(big.Int).Set(sq), 2*s-1)
}

// Recip returns an enclosure of 1/a with midpoint bit-bound mb, or ⊥ if
// a's interval contains (or straddles) zero, since 1/0 has no finite
// enclosure. The reciprocal is computed directly from a's mantissa by
// scaled integer division rather than by routing through dyadic.Div,
// so the rounding direction and the propagated error bound can be
// tracked exactly (Boehm's classic approach to interval reciprocal).
func Recip(a *Approx, mb uint) *Approx {
	if a.IsBottom() {
		return a
	}
	lo := a.lowerM()
	hi := a.upperM()
	if lo.Sign() <= 0 && hi.Sign() >= 0 {
		return Bottom()
	}
	neg := a.m.Sign() < 0
	m := new(big.Int).Abs(a.m)
	e := a.e
	lowBound := new(big.Int).Sub(m, e) // |m|-e > 0 here, guaranteed by the straddle check above
	if lowBound.Sign() <= 0 {
		return Bottom()
	}
	guard := uint(errorBits + 8)
	k := uint(m.BitLen()) + mb + guard

	num := new(big.Int).Lsh(big.NewInt(1), k)
	q, _ := new(big.Int).QuoRem(num, m, new(big.Int))

	// propagated error, in units of 2^-k: |1/x - 1/m| <= e / (m*(m-e))
	// for x ranging over [m-e, m+e]; scale by 2^k and round up.
	denom := new(big.Int).Mul(m, lowBound)
	eScaled := new(big.Int).Lsh(e, k)
	propErr := ceilDiv(eScaled, denom)
	// +1 to cover the truncation in computing q itself.
	totalErr := new(big.Int).Add(propErr, big.NewInt(1))

	if neg {
		q.Neg(q)
	}
	s := -int(k) - int(a.s)
	return ApproxMB(mb, q, totalErr, s)
}

// ceilDiv returns ⌈x/y⌉ for x ≥ 0, y > 0.
func ceilDiv(x, y *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// Quo returns an enclosure of a/b with midpoint bit-bound mb, or ⊥ if b's
// interval contains zero.
func Quo(a, b *Approx, mb uint) *Approx {
	if a.IsBottom() || b.IsBottom() {
		return Bottom()
	}
	r := Recip(b, mb+errorBits+8)
	if r.IsBottom() {
		return Bottom()
	}
	return LimitAndBound(Mul(a, r), mb)
}

// Powers returns [a^0, a^1, ..., a^n] computed by repeated squaring-free
// left-to-right multiplication, each entry canonicalized to mb bits.
func Powers(a *Approx, n int, mb uint) []*Approx {
	out := make([]*Approx, n+1)
	out[0] = FromDyadic(big.NewInt(1), 0)
	for i := 1; i <= n; i++ {
		out[i] = LimitAndBound(Mul(out[i-1], a), mb)
	}
	return out
}

// DivMod returns the Euclidean (floor) quotient and remainder of a/b as
// Approx values, or (⊥, ⊥) if b's interval contains zero or if a/b's
// interval straddles an integer boundary closely enough that the floor
// quotient cannot be determined at the requested working precision —
// the integer quotient genuinely is ambiguous there, and this module
// never silently picks a side.
func DivMod(a, b *Approx, mb uint) (*Approx, *Approx) {
	if a.IsBottom() || b.IsBottom() {
		return Bottom(), Bottom()
	}
	q := Quo(a, b, mb+errorBits+8)
	if q.IsBottom() {
		return Bottom(), Bottom()
	}
	qLoInt := floorDyadic(q.Lower())
	qHiInt := floorDyadic(q.Upper())
	if qLoInt.Cmp(qHiInt) != 0 {
		return Bottom(), Bottom()
	}
	qInt := FromDyadic(qLoInt, 0)
	r := LimitAndBound(Sub(a, Mul(qInt, b)), mb)
	return qInt, r
}

// Mod returns the remainder half of DivMod.
func Mod(a, b *Approx, mb uint) *Approx {
	_, r := DivMod(a, b, mb)
	return r
}

// floorDyadic returns ⌊d⌋ as an integer.
func floorDyadic(d dyadic.Dyadic) *big.Int {
	if d.S >= 0 {
		return new(big.Int).Lsh(d.M, uint(d.S))
	}
	return new(big.Int).Rsh(d.M, uint(-d.S))
}

// Poly evaluates, by Horner's rule, the polynomial with dyadic
// coefficients coeffs (coeffs[i] is the coefficient of x^i) at x=a,
// canonicalizing each partial sum to mb bits.
func Poly(coeffs []dyadic.Dyadic, a *Approx, mb uint) *Approx {
	if len(coeffs) == 0 {
		return FromDyadic(big.NewInt(0), 0)
	}
	acc := FromDyadic(coeffs[len(coeffs)-1].M, coeffs[len(coeffs)-1].S)
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = LimitAndBound(Mul(acc, a), mb)
		c := FromDyadic(coeffs[i].M, coeffs[i].S)
		acc = LimitAndBound(Add(acc, c), mb)
	}
	return acc
}
