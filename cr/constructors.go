package cr

import (
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/gocomputable/creal/approx"
	"github.com/gocomputable/creal/dyadic"
)

// FromInteger returns the exact computable real n.
func FromInteger(n *big.Int) CR {
	a := approx.FromDyadic(new(big.Int).Set(n), 0)
	return newCR(func(k int) *approx.Approx { return a })
}

// FromRational returns the computable real p/q, q != 0, refined to the
// resource level at each stream index the way FromRational.at(k) =
// toApprox(Lₖ, p/q) is specified.
func FromRational(p, q *big.Int) CR {
	if q.Sign() == 0 {
		panic("cr: FromRational with zero denominator")
	}
	pa := approx.FromDyadic(new(big.Int).Set(p), 0)
	qa := approx.FromDyadic(new(big.Int).Set(q), 0)
	return newCR(func(k int) *approx.Approx {
		return approx.Quo(pa, qa, resourceAt(k))
	})
}

// FromDouble decodes the IEEE-754 float64 f into a constant CR stream.
// A non-finite f (±Inf or NaN) has no enclosure and yields a stream that
// is constantly ⊥ rather than panicking, since "this float carries no
// information" is exactly what ⊥ means.
func FromDouble(f float64) CR {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return newCR(func(k int) *approx.Approx { return approx.Bottom() })
	}
	d := dyadic.FromFloat64(f)
	a := approx.ApproxMB(64, d.M, big.NewInt(1), d.S)
	return newCR(func(k int) *approx.Approx { return a })
}

// FromDoubleExact is like FromDouble but records f as an exact value
// (zero error radius) rather than carrying the ±1-ulp uncertainty
// FromDouble budgets for a value that might itself have been the result
// of an earlier lossy floating-point computation.
func FromDoubleExact(f float64) CR {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return newCR(func(k int) *approx.Approx { return approx.Bottom() })
	}
	d := dyadic.FromFloat64(f)
	a := approx.FromDyadic(d.M, d.S)
	return newCR(func(k int) *approx.Approx { return a })
}

// Parse reads a decimal floating-point literal (e.g. "3.14159",
// "-0.001", "2.5e10") as an exact integer numerator over a power-of-ten
// denominator and returns the resulting CR, or ok=false if s is not a
// valid literal of that form.
func Parse(s string) (x CR, ok bool) {
	neg := false
	rest := s
	switch {
	case strings.HasPrefix(rest, "-"):
		neg, rest = true, rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}
	mantissa, exp10 := rest, int64(0)
	if i := strings.IndexAny(rest, "eE"); i >= 0 {
		mantissa = rest[:i]
		e, err := parseExp(rest[i+1:])
		if err != nil {
			return CR{}, false
		}
		exp10 = e
	}
	intPart, fracPart := mantissa, ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart, fracPart = mantissa[:i], mantissa[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return CR{}, false
	}
	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	num, success := new(big.Int).SetString(digits, 10)
	if !success {
		return CR{}, false
	}
	if neg {
		num.Neg(num)
	}
	shift := exp10 - int64(len(fracPart))

	var p, q *big.Int
	if shift >= 0 {
		p = new(big.Int).Mul(num, new(big.Int).Exp(big.NewInt(10), big.NewInt(shift), nil))
		q = big.NewInt(1)
	} else {
		p = num
		q = new(big.Int).Exp(big.NewInt(10), big.NewInt(-shift), nil)
	}
	return FromRational(p, q), true
}

func parseExp(s string) (int64, error) {
	n := new(big.Int)
	_, ok := n.SetString(s, 10)
	if !ok {
		return 0, errBadExponent
	}
	return n.Int64(), nil
}

var errBadExponent = errors.New("cr: bad exponent in literal")
