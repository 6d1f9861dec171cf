package cr

import (
	"math/big"

	"github.com/gocomputable/creal/approx"
	"github.com/gocomputable/creal/approxmath"
)

func bigOneZ() *big.Int { return big.NewInt(1) }
func bigTwoZ() *big.Int { return big.NewInt(2) }

// Sqrt returns √x, lifted from approx.SqrtA. Unlike Recip/Quo, an x
// whose interval still straddles zero at a given stream index does not
// yield ⊥ for that reason alone: approx.SqrtA clamps the lower endpoint
// to zero and encloses √ of the non-negative part, while an
// interval entirely below zero propagates approx.ErrDomain's panic —
// per spec.md's error taxonomy: fail fast only when the sign is already
// certain to be wrong.
func Sqrt(x CR) CR { return liftUnary(approx.SqrtA)(x) }

// Exp returns e^x.
func Exp(x CR) CR { return liftUnary(approxmath.Exp)(x) }

// Log returns ln(x).
func Log(x CR) CR { return liftUnary(approxmath.Log)(x) }

// Sin returns sin(x).
func Sin(x CR) CR { return liftUnary(approxmath.Sin)(x) }

// Cos returns cos(x).
func Cos(x CR) CR { return liftUnary(approxmath.Cos)(x) }

// Atan returns atan(x).
func Atan(x CR) CR { return liftUnary(approxmath.Atan)(x) }

// Tan returns sin(x)/cos(x), exercising CR's own Quo rather than a
// dedicated approxmath primitive — tan has no range-reduction story
// distinct from sin and cos's, so there is nothing to gain from
// re-deriving it at the Approx level.
func Tan(x CR) CR { return Quo(Sin(x), Cos(x)) }

// Asin returns asin(x) = atan(x / √(1-x²)), valid for |x| < 1 (x = ±1
// drives the denominator to ⊥, which Require reports as insufficient
// precision rather than silently returning ±π/2).
func Asin(x CR) CR {
	one := FromInteger(bigOneZ())
	denom := Sqrt(Sub(one, Mul(x, x)))
	return Atan(Quo(x, denom))
}

// Acos returns acos(x) = π/2 - asin(x).
func Acos(x CR) CR {
	return Sub(Quo(Pi, FromInteger(bigTwoZ())), Asin(x))
}

// Sinh returns sinh(x) = (e^x - e^-x)/2.
func Sinh(x CR) CR {
	ex := Exp(x)
	enx := Recip(ex)
	return Quo(Sub(ex, enx), FromInteger(bigTwoZ()))
}

// Cosh returns cosh(x) = (e^x + e^-x)/2.
func Cosh(x CR) CR {
	ex := Exp(x)
	enx := Recip(ex)
	return Quo(Add(ex, enx), FromInteger(bigTwoZ()))
}

// Tanh returns sinh(x)/cosh(x).
func Tanh(x CR) CR { return Quo(Sinh(x), Cosh(x)) }

// Asinh returns asinh(x) = ln(x + √(x²+1)).
func Asinh(x CR) CR {
	one := FromInteger(bigOneZ())
	return Log(Add(x, Sqrt(Add(Mul(x, x), one))))
}

// Acosh returns acosh(x) = ln(x + √(x²-1)), valid for x ≥ 1.
func Acosh(x CR) CR {
	one := FromInteger(bigOneZ())
	return Log(Add(x, Sqrt(Sub(Mul(x, x), one))))
}

// Atanh returns atanh(x) = ln((1+x)/(1-x))/2, valid for |x| < 1.
func Atanh(x CR) CR {
	one := FromInteger(bigOneZ())
	return Quo(Log(Quo(Add(one, x), Sub(one, x))), FromInteger(bigTwoZ()))
}
