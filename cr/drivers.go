package cr

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/gocomputable/creal/approx"
)

// maxRequireSteps bounds how many resource levels Require will walk
// before giving up and returning whatever ⊥-or-not value it has, so a
// genuinely divergent term (see spec.md §6: "require on a divergent
// term eventually yields ⊥") cannot spin this driver forever.
const maxRequireSteps = 4096

// Require returns the first element of x's stream whose precision
// exceeds d bits, walking the resource sequence from index 0. A
// divergent term exhausts maxRequireSteps and Require returns ⊥;
// callers decide whether that is fatal.
func Require(d int, x CR) *approx.Approx {
	for k := 0; k < maxRequireSteps; k++ {
		a := x.at(k)
		if !a.IsBottom() && a.Precision() > d {
			return a
		}
	}
	return approx.Bottom()
}

// ToDouble returns the float64 nearest x, driven to 64 bits of
// precision, or ok=false if x could not be resolved that far (i.e.
// Require bottomed out).
func ToDouble(x CR) (f float64, ok bool) {
	a := Require(64, x)
	if a.IsBottom() {
		return 0, false
	}
	return a.Centre().Float64(), true
}

// ToRational returns x as an exact big.Rat at 64 bits of precision —
// necessarily only an approximation of x's true (possibly irrational)
// value, exactly as the centre of any finite-precision enclosure must
// be.
func ToRational(x CR) *big.Rat {
	a := Require(64, x)
	if a.IsBottom() {
		panic(approx.ErrUncomparable)
	}
	c := a.Centre()
	r := new(big.Rat).SetInt(c.M)
	if c.S >= 0 {
		r.Mul(r, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(c.S))))
	} else {
		r.Quo(r, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(-c.S))))
	}
	return r
}

// Sign returns -1, 0 or 1 according to x's sign, once precision d bits
// distinguishes x from zero, or panics wrapping ErrInsufficientPrecision
// otherwise. This is the bounded sign test of SPEC_FULL §5.6 — explicit
// about the precision budget it needs, not the uncomputable total sign
// test spec.md's Non-goals exclude.
func (x CR) Sign(d int) int {
	a := Require(d, x)
	if a.IsBottom() {
		panic(errors.Wrapf(ErrInsufficientPrecision, "Sign: could not resolve to %d bits", d))
	}
	lo, hi := a.Lower(), a.Upper()
	switch {
	case lo.Sign() > 0:
		return 1
	case hi.Sign() < 0:
		return -1
	case lo.Sign() == 0 && hi.Sign() == 0:
		return 0
	default:
		panic(errors.Wrapf(ErrInsufficientPrecision, "Sign: interval still straddles zero at %d bits", d))
	}
}

// Compare returns -1, 0 or 1 according to whether x < y, x == y or
// x > y, once precision d bits distinguishes them, or panics wrapping
// ErrInsufficientPrecision otherwise — the CR analogue of big.Float.Cmp,
// explicit about the precision budget it spends rather than silent
// about it.
func (x CR) Compare(y CR, d int) int {
	return Sub(x, y).Sign(d)
}
