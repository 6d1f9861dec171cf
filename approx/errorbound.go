package approx

import "math/big"

// errorBits is the number of bits of precision this package keeps in an
// Approx's error mantissa. Once an operation's bookkeeping has pushed e's
// bit length past this, BoundErrorTerm re-centres the interval so e is
// cheap to carry through further arithmetic again; this is the same
// "error term is allowed to be sloppy, the midpoint is what we protect"
// tradeoff every one of this package's binary operations relies on to
// keep mantissas from growing without bound across a long computation.
const errorBits = 10

// BoundErrorTerm returns an Approx enclosing a whose error mantissa has
// at most errorBits bits, by rounding m to the nearest multiple of
// 2^d (d chosen so e's bit length drops to errorBits) and inflating e to
// cover the rounding. The result is Better(a, ·)-comparable: it never
// claims more than a did, only possibly less.
func BoundErrorTerm(a *Approx) *Approx {
	if a.IsBottom() {
		return a
	}
	bl := a.e.BitLen()
	if bl <= errorBits {
		return a
	}
	d := uint(bl - errorBits)
	m, rem := shrRound(a.m, d)
	e := ceilRsh(a.e, d)
	if rem {
		e.Add(e, big.NewInt(1))
	}
	return &Approx{mb: a.mb, m: m, e: e, s: a.s + int32(d)}
}

// shrRound returns x>>d rounded to nearest (ties away from zero) and
// whether that rounding was inexact.
func shrRound(x *big.Int, d uint) (*big.Int, bool) {
	if d == 0 {
		return new(big.Int).Set(x), false
	}
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), d), big.NewInt(1))
	r := new(big.Int).And(x, mask)
	q := new(big.Int).Rsh(x, d)
	half := new(big.Int).Lsh(big.NewInt(1), d-1)
	// q is the floor and r ≥ 0 the remainder, so rounding up means q+1 for
	// either sign; an exact tie rounds up only when x is non-negative.
	if c := r.Cmp(half); c > 0 || (c == 0 && x.Sign() >= 0) {
		q.Add(q, big.NewInt(1))
	}
	return q, r.Sign() != 0
}

// LimitSize returns an Approx enclosing a whose midpoint bit-bound is at
// most mb, discarding low-order midpoint bits and inflating the error
// term to compensate — precisely enforceMB under a (possibly tighter)
// externally supplied bound rather than a's own.
func LimitSize(a *Approx, mb uint) *Approx {
	if a.IsBottom() {
		return a
	}
	if a.mb <= uint32(mb) {
		return a
	}
	return enforceMB(&Approx{mb: uint32(mb), m: a.m, e: a.e, s: a.s})
}

// LimitAndBound composes LimitSize and BoundErrorTerm, the canonicalizing
// step every approxmath series-summation routine applies to each partial
// sum so that neither the midpoint nor the error term grows without
// bound across iterations.
func LimitAndBound(a *Approx, mb uint) *Approx {
	return BoundErrorTerm(LimitSize(a, mb))
}
