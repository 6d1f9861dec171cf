package dyadic_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocomputable/creal/dyadic"
)

func TestArithRoundTrip(t *testing.T) {
	a := dyadic.FromInt64(3, -2)  // 3/4
	b := dyadic.FromInt64(5, -3)  // 5/8
	sum := dyadic.Add(a, b)       // 11/8
	require.Equal(t, 0, dyadic.Cmp(sum, dyadic.FromInt64(11, -3)))

	diff := dyadic.Sub(a, b) // 1/8
	require.Equal(t, 0, dyadic.Cmp(diff, dyadic.FromInt64(1, -3)))

	prod := dyadic.Mul(a, b) // 15/32
	require.Equal(t, 0, dyadic.Cmp(prod, dyadic.FromInt64(15, -5)))
}

func TestSqrtSquareIsClose(t *testing.T) {
	for _, x := range []dyadic.Dyadic{
		dyadic.FromInt64(2, 0),
		dyadic.FromInt64(3, 0),
		dyadic.FromInt64(1, -10),
		dyadic.FromBigInt(big.NewInt(123456789)),
	} {
		const prec = 200
		r := dyadic.Sqrt(x, prec)
		sq := dyadic.Mul(r, r)
		// |r² - x| must be small compared to x at the requested precision:
		// r = √x·(1+ε) with |ε| < 2^-prec, so r²-x ≈ 2x·ε, well under
		// 2^-(prec-8)·x for the magnitudes under test.
		diff := dyadic.Sub(sq, x)
		bound := x.Shift(-(int(prec) - 8))
		require.LessOrEqual(t, dyadic.Cmp(dyadic.Abs(diff), dyadic.Abs(bound)), 0,
			"sqrt(%v)^2 = %v too far from %v", x, sq, x)
	}
}

func TestSqrtRecMatchesSqrt(t *testing.T) {
	const prec = 128
	x := dyadic.FromInt64(2, 0)
	r := dyadic.SqrtRec(x, prec)
	s := dyadic.Sqrt(x, prec)
	prod := dyadic.Mul(r, s)
	one := dyadic.One
	diff := dyadic.Abs(dyadic.Sub(prod, one))
	require.LessOrEqual(t, dyadic.Cmp(diff, dyadic.FromInt64(1, -100)), 0)
}

func TestDivExact(t *testing.T) {
	x := dyadic.FromInt64(6, 0)
	y := dyadic.FromInt64(3, 0)
	q := dyadic.Div(x, y, 64)
	require.Equal(t, 0, dyadic.Cmp(q, dyadic.FromInt64(2, 0)))
}

func TestIntegerLog2(t *testing.T) {
	require.Equal(t, 3, dyadic.IntegerLog2(big.NewInt(9)))
	require.Equal(t, 0, dyadic.IntegerLog2(big.NewInt(1)))
	require.Panics(t, func() { dyadic.IntegerLog2(big.NewInt(0)) })
}

func TestPiAlgorithmsAgree(t *testing.T) {
	const prec = 100
	m := dyadic.PiMachin(prec)
	b := dyadic.PiBorwein(prec)
	diff := dyadic.Abs(dyadic.Sub(m, b))
	require.LessOrEqual(t, dyadic.Cmp(diff, dyadic.FromInt64(1, -90)), 0,
		"PiMachin and PiBorwein disagree: %v vs %v", m, b)
}

func TestLn2MatchesAtanhIdentity(t *testing.T) {
	const prec = 80
	l := dyadic.Ln2(prec)
	// ln 2 = 2*atanh(1/3); sanity check it is positive and less than 1.
	require.Equal(t, 1, l.Sign())
	require.Equal(t, -1, dyadic.Cmp(l, dyadic.One))
}
