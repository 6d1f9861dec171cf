package cr

import (
	"math/big"

	"github.com/gocomputable/creal/approx"
)

var (
	bigZero   = big.NewInt(0)
	bigOne    = big.NewInt(1)
	bigNegOne = big.NewInt(-1)
)

// Add, Sub, Mul, Neg and Abs are exact operations (they never need a
// precision argument of their own) and are lifted via liftUnaryPure /
// a two-operand analogue defined inline below, matching approx.Add's
// own signature (a, b *Approx) *Approx with no mb parameter — the
// extra guard bits TaylorA-style operations need come entirely from
// liftBinary's Lₖ.
func liftBinaryPure(f func(a, b *approx.Approx) *approx.Approx) func(x, y CR) CR {
	return liftBinary(func(a, b *approx.Approx, _ uint) *approx.Approx { return f(a, b) })
}

// Add returns x+y.
func Add(x, y CR) CR { return liftBinaryPure(approx.Add)(x, y) }

// Sub returns x-y.
func Sub(x, y CR) CR { return liftBinaryPure(approx.Sub)(x, y) }

// Mul returns x*y.
func Mul(x, y CR) CR { return liftBinaryPure(approx.Mul)(x, y) }

// Neg returns -x.
func Neg(x CR) CR { return liftUnaryPure(approx.Neg)(x) }

// Abs returns |x|.
func Abs(x CR) CR { return liftUnaryPure(approx.Abs)(x) }

// Quo returns x/y. Quo is not total: it returns ⊥ at stream index k if
// y's enclosure at that index still straddles zero, exactly as
// approx.Quo does at the Approx level, and the refinement protocol
// relies on the caller retrying at a deeper resource index (i.e. a
// larger k) rather than on Quo itself looping.
func Quo(x, y CR) CR { return liftBinary(approx.Quo)(x, y) }

// Recip returns 1/x, with the same ⊥-near-zero behavior as Quo.
func Recip(x CR) CR { return liftUnary(approx.Recip)(x) }

// Signum returns a CR whose value is -1, 0 or 1 according to x's sign;
// unlike SignA it never panics — indices where x's element is ⊥ are
// resolved to the wide enclosure [0±1] (per spec's error-handling rule
// 5: "the only exceptions [to ⊥ absorption] are signum(⊥) = [0±1] and
// intersectionA(⊥, x) = x"), and indices where x's interval still
// straddles zero yield ⊥, which later stream indices narrow as x itself
// narrows.
func Signum(x CR) CR {
	return newCR(func(k int) *approx.Approx {
		lk := resourceAt(k)
		a := approx.SetMB(x.at(k), lk)
		if a.IsBottom() {
			return approx.ApproxMB(lk, bigZero, bigOne, 0)
		}
		lo, hi := a.Lower(), a.Upper()
		switch {
		case lo.Sign() > 0:
			return approx.FromDyadic(bigOne, 0)
		case hi.Sign() < 0:
			return approx.FromDyadic(bigNegOne, 0)
		case lo.Sign() == 0 && hi.Sign() == 0:
			return approx.FromDyadic(bigZero, 0)
		default:
			// still straddling but not yet known to be ⊥: not resolvable
			// at this resource level, try again deeper.
			return approx.Bottom()
		}
	})
}
