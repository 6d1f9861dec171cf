package cr_test

import (
	"fmt"
	"math/big"

	"github.com/gocomputable/creal/cr"
)

// solveQuadratic returns the two real roots of ax²+bx+c, as computable
// reals, or ok=false if the discriminant is negative (at the precision
// requested). Mirrors the teacher's own context.Example solve helper,
// with CR's ⊥-on-insufficient-precision taking the place of Context's
// sticky NaN flag.
func solveQuadratic(a, b, c cr.CR, d int) (x0, x1 cr.CR, ok bool) {
	two := cr.FromInteger(big.NewInt(2))
	four := cr.FromInteger(big.NewInt(4))
	disc := cr.Sub(cr.Mul(b, b), cr.Mul(four, cr.Mul(a, c)))
	if disc.Sign(d) < 0 {
		return cr.CR{}, cr.CR{}, false
	}
	sq := cr.Sqrt(disc)
	twoA := cr.Mul(two, a)
	x0 = cr.Quo(cr.Add(cr.Neg(b), sq), twoA)
	x1 = cr.Quo(cr.Sub(cr.Neg(b), sq), twoA)
	return x0, x1, true
}

// Example solves x²+2x-3=0, whose roots are 1 and -3.
func Example() {
	a := cr.FromInteger(big.NewInt(1))
	b := cr.FromInteger(big.NewInt(2))
	c := cr.FromInteger(big.NewInt(-3))

	x0, x1, ok := solveQuadratic(a, b, c, 40)
	if !ok {
		fmt.Println("no real roots")
		return
	}
	fmt.Println(cr.ShowCR(40, x0), cr.ShowCR(40, x1))
}
