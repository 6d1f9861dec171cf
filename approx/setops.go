package approx

import "math/big"

// lowerM and upperM return a's interval endpoints as exact dyadic mantissas
// expressed at exponent a.s, i.e. [m-e, m+e]·2^s.
func (a *Approx) lowerM() *big.Int { return new(big.Int).Sub(a.m, a.e) }
func (a *Approx) upperM() *big.Int { return new(big.Int).Add(a.m, a.e) }

// alignPair rescales a and b's mantissas to the lower of their two
// exponents, returning (am, ae, bm, be, s) such that a = [(am-ae)*2^s, ...]
// and likewise for b.
func alignPair(a, b *Approx) (am, ae, bm, be *big.Int, s int32) {
	switch {
	case a.s == b.s:
		return a.m, a.e, b.m, b.e, a.s
	case a.s < b.s:
		d := uint(b.s - a.s)
		bm = new(big.Int).Lsh(b.m, d)
		be = new(big.Int).Lsh(b.e, d)
		return a.m, a.e, bm, be, a.s
	default:
		d := uint(a.s - b.s)
		am = new(big.Int).Lsh(a.m, d)
		ae = new(big.Int).Lsh(a.e, d)
		return am, ae, b.m, b.e, b.s
	}
}

// ConsistentA reports whether a and b's intervals overlap, i.e. whether
// they could be approximations of the same real.
func ConsistentA(a, b *Approx) bool {
	if a.IsBottom() || b.IsBottom() {
		return true
	}
	am, ae, bm, be, _ := alignPair(a, b)
	// overlap iff |am-bm| <= ae+be
	diff := new(big.Int).Sub(am, bm)
	diff.Abs(diff)
	sum := new(big.Int).Add(ae, be)
	return diff.Cmp(sum) <= 0
}

// IntersectionA returns the tightest interval enclosed by both a and b,
// or ⊥ if they are inconsistent. Per spec.md's documented quirk (kept
// here deliberately, see DESIGN.md), IntersectionA(⊥, x) = x rather than
// x itself being further intersected with "everything" — ⊥ is absorbed.
func IntersectionA(a, b *Approx) *Approx {
	if a.IsBottom() {
		return b
	}
	if b.IsBottom() {
		return a
	}
	am, ae, bm, be, s := alignPair(a, b)
	lo := maxBig(new(big.Int).Sub(am, ae), new(big.Int).Sub(bm, be))
	hi := minBig(new(big.Int).Add(am, ae), new(big.Int).Add(bm, be))
	if lo.Cmp(hi) > 0 {
		return Bottom()
	}
	m, e := centerRadius(lo, hi)
	mb := a.mb
	if b.mb > mb {
		mb = b.mb
	}
	return ApproxMB(uint(mb), m, e, int(s))
}

// UnionA returns the tightest Approx whose interval encloses both a and
// b's intervals. It returns ⊥ if either input is ⊥.
func UnionA(a, b *Approx) *Approx {
	if a.IsBottom() || b.IsBottom() {
		return Bottom()
	}
	am, ae, bm, be, s := alignPair(a, b)
	lo := minBig(new(big.Int).Sub(am, ae), new(big.Int).Sub(bm, be))
	hi := maxBig(new(big.Int).Add(am, ae), new(big.Int).Add(bm, be))
	m, e := centerRadius(lo, hi)
	mb := a.mb
	if b.mb > mb {
		mb = b.mb
	}
	return ApproxMB(uint(mb), m, e, int(s))
}

// Equal reports whether a and b denote exactly the same interval (not
// whether they could approximate the same real — see ConsistentA for
// that). Two ⊥ values are equal.
func Equal(a, b *Approx) bool {
	if a.IsBottom() != b.IsBottom() {
		return false
	}
	if a.IsBottom() {
		return true
	}
	am, ae, bm, be, _ := alignPair(a, b)
	return am.Cmp(bm) == 0 && ae.Cmp(be) == 0
}

// Better reports whether a is at least as informative as b, i.e. a's
// interval is contained in b's (the partial order under which ⊥ is top:
// every a is Better than ⊥, and ⊥ is Better only than ⊥).
func Better(a, b *Approx) bool {
	if b.IsBottom() {
		return true
	}
	if a.IsBottom() {
		return false
	}
	am, ae, bm, be, _ := alignPair(a, b)
	lo := new(big.Int).Sub(am, ae)
	hi := new(big.Int).Add(am, ae)
	blo := new(big.Int).Sub(bm, be)
	bhi := new(big.Int).Add(bm, be)
	return lo.Cmp(blo) >= 0 && hi.Cmp(bhi) <= 0
}

// Cmp performs a bounded three-way comparison, returning -1, 0 or +1 when
// the two intervals are disjoint or one is a single point equal to the
// other's single point, and panicking with ErrUncomparable when neither
// interval lies strictly to one side of the other. Cmp is intentionally
// partial: this module never silently approximates a comparison the
// input precision cannot support.
func Cmp(a, b *Approx) int {
	if a.IsBottom() || b.IsBottom() {
		panic(ErrUncomparable)
	}
	am, ae, bm, be, _ := alignPair(a, b)
	lo := new(big.Int).Sub(am, ae)
	hi := new(big.Int).Add(am, ae)
	blo := new(big.Int).Sub(bm, be)
	bhi := new(big.Int).Add(bm, be)
	switch {
	case hi.Cmp(blo) < 0:
		return -1
	case lo.Cmp(bhi) > 0:
		return 1
	case lo.Cmp(hi) == 0 && blo.Cmp(bhi) == 0 && lo.Cmp(blo) == 0:
		return 0
	default:
		panic(ErrUncomparable)
	}
}

func maxBig(a, b *big.Int) *big.Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func minBig(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
