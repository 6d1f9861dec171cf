// Package approx implements the centred dyadic interval approximation
// Approx = [(m-e)·2^s, (m+e)·2^s], the value type at the core of this
// module's computable real arithmetic, together with the distinguished
// bottom element ⊥ that denotes "no information".
//
// Approx plays the role db47h/decimal's *Decimal plays for that package:
// the one concrete numeric type every other package in this module is
// built on top of. Unlike *Decimal, an Approx is immutable and carries an
// explicit error radius instead of a rounding mode — every operation
// returns a fresh value that is a validated *enclosure* of its
// mathematical result, never just a rounded midpoint.
package approx

import (
	"fmt"
	"math"
	"math/big"

	"github.com/gocomputable/creal/dyadic"
)

// debugApprox enables the extra consistency check ApproxMB performs (a
// negative error radius panics), mirroring the teacher's debugDecimal flag.
const debugApprox = true

// Approx is a centred dyadic interval [(m-e)·2^s, (m+e)·2^s] with a cap mb
// on the bit-length of the midpoint m, or the bottom value ⊥ when
// bottom is true (in which case mb, m, e and s are meaningless).
type Approx struct {
	mb     uint32
	m      *big.Int
	e      *big.Int
	s      int32
	bottom bool
}

// Bottom returns ⊥, the approximation containing every real.
func Bottom() *Approx {
	return &Approx{bottom: true}
}

// IsBottom reports whether a is ⊥.
func (a *Approx) IsBottom() bool {
	return a == nil || a.bottom
}

// MB returns a's midpoint bit-bound, or 0 if a is ⊥. Per spec.md's open
// question, mBound(⊥) is left undefined by the source; this
// implementation returns the documented sentinel 0 rather than panicking,
// since Go callers routinely probe accessors without first branching on
// IsBottom.
func (a *Approx) MB() uint {
	if a.IsBottom() {
		return 0
	}
	return uint(a.mb)
}

// M returns a's midpoint mantissa. It panics if a is ⊥.
func (a *Approx) M() *big.Int {
	a.mustNotBeBottom("M")
	return a.m
}

// E returns a's error mantissa (e ≥ 0). It panics if a is ⊥.
func (a *Approx) E() *big.Int {
	a.mustNotBeBottom("E")
	return a.e
}

// S returns a's binary exponent. It panics if a is ⊥.
func (a *Approx) S() int {
	a.mustNotBeBottom("S")
	return int(a.s)
}

func (a *Approx) mustNotBeBottom(op string) {
	if a.IsBottom() {
		panic("approx: " + op + " called on ⊥")
	}
}

// enforceMB renormalizes a so that the bit-length of its midpoint does not
// exceed a.mb: if it does, both m and e are shifted right by the excess,
// m truncated toward zero and e rounded up (ceiling) and widened by one
// unit when m lost any set bits, so the interval still encloses the
// original one, and s increased accordingly.
func enforceMB(a *Approx) *Approx {
	if a.IsBottom() {
		return a
	}
	bl := a.m.BitLen()
	if bl <= int(a.mb) || a.m.CmpAbs(big.NewInt(1)) <= 0 {
		return a
	}
	d := uint(bl - int(a.mb))
	// truncate m toward zero, which drops its bit length to exactly a.mb;
	// the exact midpoint then lies less than one new unit away, so e is
	// inflated by one unit whenever the discarded remainder is nonzero.
	m, r := new(big.Int).QuoRem(a.m, new(big.Int).Lsh(big.NewInt(1), d), new(big.Int))
	e := ceilRsh(a.e, d)
	if r.Sign() != 0 {
		e.Add(e, big.NewInt(1))
	}
	return &Approx{mb: a.mb, m: m, e: e, s: a.s + int32(d)}
}

// ceilRsh returns ⌈x / 2^d⌉ for x ≥ 0.
func ceilRsh(x *big.Int, d uint) *big.Int {
	if d == 0 {
		return new(big.Int).Set(x)
	}
	q := new(big.Int).Rsh(x, d)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), d), big.NewInt(1))
	r := new(big.Int).And(x, mask)
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// ApproxMB builds [(m-e)·2^s, (m+e)·2^s] with the given midpoint bit-bound,
// normalizing via enforceMB.
func ApproxMB(mb uint, m, e *big.Int, s int) *Approx {
	if debugApprox && e.Sign() < 0 {
		panic("approx: negative error radius")
	}
	return enforceMB(&Approx{mb: uint32(mb), m: new(big.Int).Set(m), e: new(big.Int).Set(e), s: int32(s)})
}

// ApproxMB2 is like ApproxMB but takes the larger of several candidate
// bit-bounds, the shape every binary arithmetic operation needs when
// propagating mb from two operands. For an exact result (e = 0) the bound
// is also raised to the midpoint's own bit length, so exact operands give
// an exact result rather than a truncated one.
func ApproxMB2(mbs []uint, m, e *big.Int, s int) *Approx {
	mb := uint(0)
	for _, x := range mbs {
		if x > mb {
			mb = x
		}
	}
	if bl := uint(m.BitLen()); e.Sign() == 0 && bl > mb {
		mb = bl
	}
	return ApproxMB(mb, m, e, s)
}

// ApproxAutoMB builds [(m-e)·2^s, (m+e)·2^s] with mb set to the minimal
// legal bound for the given operands: max(2, 1+⌊log2(|m|+e-1)⌋).
func ApproxAutoMB(m, e *big.Int, s int) *Approx {
	mb := autoMB(m, e)
	return ApproxMB(mb, m, e, s)
}

func autoMB(m, e *big.Int) uint {
	t := new(big.Int).Add(new(big.Int).Abs(m), e)
	t.Sub(t, big.NewInt(1))
	if t.Sign() <= 0 {
		return 2
	}
	mb := uint(t.BitLen())
	if mb < 2 {
		mb = 2
	}
	return mb
}

// FromDyadic returns the exact Approx for the dyadic value m·2^s, with mb
// set automatically.
func FromDyadic(m *big.Int, s int) *Approx {
	return ApproxAutoMB(m, big.NewInt(0), s)
}

// FromDyadicMB is like FromDyadic but fixes mb explicitly.
func FromDyadicMB(mb uint, m *big.Int, s int) *Approx {
	return ApproxMB(mb, m, big.NewInt(0), s)
}

// EndToApprox builds the centred Approx whose endpoints are lower and
// upper (given as extended dyadics, ±∞ permitted). It returns ⊥ whenever
// the interval is unbounded on either side, since a centred Approx has no
// way to represent an infinite error radius, or whenever upper < lower.
func EndToApprox(mb uint, lower, upper dyadic.ExtendedDyadic) *Approx {
	if !lower.IsFinite() || !upper.IsFinite() {
		return Bottom()
	}
	if dyadic.Cmp(lower.D, upper.D) > 0 {
		return Bottom()
	}
	// centre = (lower+upper)/2 at exponent s = min(exponents)-1 to keep
	// m, e exact dyadics.
	s := minInt(lower.D.S, upper.D.S) - 1
	lo := alignTo(lower.D, s)
	hi := alignTo(upper.D, s)
	m, e := centerRadius(lo, hi)
	return ApproxMB(mb, m, e, s)
}

// centerRadius returns (m, e) such that [m-e, m+e] encloses [lo, hi]:
// m = ⌊(lo+hi)/2⌋, e = ⌈(hi-lo)/2⌉. Using floor for m and ceiling for e
// (rather than the same rounding for both) guarantees m+e ≥ hi and
// m-e ≤ lo exactly, even when hi-lo is odd — every call site that builds
// an Approx from a pair of endpoints relies on this.
func centerRadius(lo, hi *big.Int) (m, e *big.Int) {
	sum := new(big.Int).Add(lo, hi)
	diff := new(big.Int).Sub(hi, lo)
	m = new(big.Int).Rsh(sum, 1)
	e = new(big.Int).Rsh(diff, 1)
	if diff.Bit(0) != 0 {
		e.Add(e, big.NewInt(1))
	}
	return m, e
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// alignTo returns d's mantissa rescaled to exponent s (s must be ≤ d.S).
func alignTo(d dyadic.Dyadic, s int) *big.Int {
	return new(big.Int).Lsh(d.M, uint(d.S-s))
}

// Lower returns a's lower interval endpoint as an exact dyadic. It
// panics if a is ⊥.
func (a *Approx) Lower() dyadic.Dyadic {
	a.mustNotBeBottom("Lower")
	return dyadic.New(a.lowerM(), int(a.s))
}

// Upper returns a's upper interval endpoint as an exact dyadic. It
// panics if a is ⊥.
func (a *Approx) Upper() dyadic.Dyadic {
	a.mustNotBeBottom("Upper")
	return dyadic.New(a.upperM(), int(a.s))
}

// Centre returns a's midpoint m·2^s as an exact dyadic. It panics if a
// is ⊥.
func (a *Approx) Centre() dyadic.Dyadic {
	a.mustNotBeBottom("Centre")
	return dyadic.New(a.m, int(a.s))
}

// Radius returns a's error radius e·2^s as an exact dyadic. It panics if
// a is ⊥.
func (a *Approx) Radius() dyadic.Dyadic {
	a.mustNotBeBottom("Radius")
	return dyadic.New(a.e, int(a.s))
}

// Diameter returns a's full interval width 2e·2^s as an exact dyadic. It
// panics if a is ⊥.
func (a *Approx) Diameter() dyadic.Dyadic {
	a.mustNotBeBottom("Diameter")
	return dyadic.New(new(big.Int).Lsh(a.e, 1), int(a.s))
}

// IsExact reports whether a's error radius is exactly zero.
func (a *Approx) IsExact() bool {
	a.mustNotBeBottom("IsExact")
	return a.e.Sign() == 0
}

// Precision returns the number of bits after the binary point that a's
// error bound certifies, -(s + bit-length of e), so that the radius e·2^s
// is below 2^-Precision(). A larger (more positive) value means a more
// informative approximation; an exact value returns math.MaxInt.
func (a *Approx) Precision() int {
	a.mustNotBeBottom("Precision")
	if a.e.Sign() == 0 {
		return math.MaxInt
	}
	return -(int(a.s) + a.e.BitLen())
}

// Significance returns the position (as a power-of-two exponent) of the
// most significant bit of a's midpoint, i.e. ⌊log2|m|⌋+s — the magnitude
// of the value a approximates, independent of how precisely it is known.
func (a *Approx) Significance() int {
	a.mustNotBeBottom("Significance")
	if a.m.Sign() == 0 {
		return int(a.s)
	}
	return a.m.BitLen() - 1 + int(a.s)
}

func (x *Approx) String() string {
	if x.IsBottom() {
		return "⊥"
	}
	return fmt.Sprintf("[(%v±%v)*2^%d]", x.m, x.e, x.s)
}
