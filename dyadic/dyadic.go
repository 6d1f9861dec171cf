// Package dyadic implements exact dyadic rationals D = m·2^s and the small
// set of precision-indexed helpers (square root, division, atanh, ln 2 and
// two fallback π algorithms) that the approx package treats as primitive.
//
// Unlike db47h/decimal's mantissa, which is stored in base 10**9/10**19
// "declets" purely so that decimal string conversion is cheap, a Dyadic's
// mantissa is a plain *big.Int: the value's natural base is already 2, so
// math/big's own binary representation and Lsh/Rsh/Mul give us exact,
// fast arithmetic for free.
package dyadic

import (
	"fmt"
	"math/big"
)

// A Dyadic is the exact rational m·2^s.
type Dyadic struct {
	M *big.Int // mantissa
	S int      // binary exponent
}

// Zero is the dyadic value 0.
var Zero = Dyadic{M: big.NewInt(0), S: 0}

// One is the dyadic value 1.
var One = Dyadic{M: big.NewInt(1), S: 0}

// New returns the dyadic value m·2^s.
func New(m *big.Int, s int) Dyadic {
	return Dyadic{M: new(big.Int).Set(m), S: s}
}

// FromInt64 returns the dyadic value m·2^s.
func FromInt64(m int64, s int) Dyadic {
	return Dyadic{M: big.NewInt(m), S: s}
}

// FromBigInt returns the dyadic value of the exact integer x.
func FromBigInt(x *big.Int) Dyadic {
	return Dyadic{M: new(big.Int).Set(x), S: 0}
}

// IsZero reports whether x is exactly zero.
func (x Dyadic) IsZero() bool { return x.M.Sign() == 0 }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x Dyadic) Sign() int { return x.M.Sign() }

// Shift returns x·2^n.
func (x Dyadic) Shift(n int) Dyadic {
	return Dyadic{M: x.M, S: x.S + n}
}

// align returns mantissas for x and y expressed at the same (the lower)
// exponent, and that common exponent.
func align(x, y Dyadic) (mx, my *big.Int, s int) {
	switch {
	case x.S == y.S:
		return x.M, y.M, x.S
	case x.S < y.S:
		my = new(big.Int).Lsh(y.M, uint(y.S-x.S))
		return x.M, my, x.S
	default:
		mx = new(big.Int).Lsh(x.M, uint(x.S-y.S))
		return mx, y.M, y.S
	}
}

// Add returns x+y.
func Add(x, y Dyadic) Dyadic {
	mx, my, s := align(x, y)
	return Dyadic{M: new(big.Int).Add(mx, my), S: s}
}

// Sub returns x-y.
func Sub(x, y Dyadic) Dyadic {
	mx, my, s := align(x, y)
	return Dyadic{M: new(big.Int).Sub(mx, my), S: s}
}

// Neg returns -x.
func Neg(x Dyadic) Dyadic {
	return Dyadic{M: new(big.Int).Neg(x.M), S: x.S}
}

// Abs returns |x|.
func Abs(x Dyadic) Dyadic {
	return Dyadic{M: new(big.Int).Abs(x.M), S: x.S}
}

// Mul returns x*y.
func Mul(x, y Dyadic) Dyadic {
	return Dyadic{M: new(big.Int).Mul(x.M, y.M), S: x.S + y.S}
}

// Cmp compares x and y: -1 if x<y, 0 if x==y, +1 if x>y.
func Cmp(x, y Dyadic) int {
	mx, my, _ := align(x, y)
	return mx.Cmp(my)
}

// BitLen returns the bit length of x's mantissa (0 for x == 0).
func (x Dyadic) BitLen() int { return x.M.BitLen() }

// Float64 returns x rounded to the nearest float64.
func (x Dyadic) Float64() float64 {
	f := new(big.Float).SetPrec(64).SetInt(x.M)
	f.SetMantExp(f, x.S)
	v, _ := f.Float64()
	return v
}

// FromFloat64 returns the exact dyadic value of f (f must be finite).
func FromFloat64(f float64) Dyadic {
	bf := new(big.Float).SetFloat64(f)
	mant := new(big.Int)
	exp := bf.MantExp(bf)
	// bf now holds the mantissa in [0.5, 1); scale up to an integer.
	const bits = 120
	bf.SetMantExp(bf, bits)
	bf.Int(mant)
	return Dyadic{M: mant, S: exp - bits}
}

// Round returns x rounded to at most prec bits of mantissa, rounding to
// nearest (ties away from zero), along with whether the value was already
// exact at that precision.
func Round(x Dyadic, prec uint) (Dyadic, bool) {
	b := x.M.BitLen()
	if prec == 0 || b <= int(prec) {
		return x, true
	}
	shift := uint(b) - prec
	half := new(big.Int).Lsh(big.NewInt(1), shift-1)
	mag := new(big.Int).Abs(x.M)
	rem := new(big.Int)
	q, rem := new(big.Int).QuoRem(mag, new(big.Int).Lsh(big.NewInt(1), shift), rem)
	if rem.CmpAbs(half) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if x.M.Sign() < 0 {
		q.Neg(q)
	}
	return Dyadic{M: q, S: x.S + int(shift)}, rem.Sign() == 0
}

func (x Dyadic) String() string {
	f := new(big.Float).SetPrec(256).SetInt(x.M)
	f.SetMantExp(f, x.S)
	return fmt.Sprintf("%v", f)
}
