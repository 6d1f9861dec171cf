package approx_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocomputable/creal/approx"
	"github.com/gocomputable/creal/dyadic"
)

func exactA(n int64, s int) *approx.Approx {
	return approx.FromDyadic(big.NewInt(n), s)
}

func TestBottomAccessorsPanic(t *testing.T) {
	b := approx.Bottom()
	require.True(t, b.IsBottom())
	require.Equal(t, uint(0), b.MB())
	require.Panics(t, func() { b.M() })
	require.Panics(t, func() { b.E() })
	require.Panics(t, func() { b.S() })
}

func TestApproxMBNormalizes(t *testing.T) {
	a := approx.ApproxMB(4, big.NewInt(255), big.NewInt(0), 0)
	require.LessOrEqual(t, a.MB(), uint(4))
	require.True(t, a.E().Sign() >= 0)
}

func TestConsistentAndIntersection(t *testing.T) {
	a := exactA(10, -3) // 10/8
	b := approx.ApproxMB(8, big.NewInt(10), big.NewInt(2), -3)
	require.True(t, approx.ConsistentA(a, b))

	i := approx.IntersectionA(a, b)
	require.False(t, i.IsBottom())
	require.True(t, approx.Better(i, b))
}

func TestIntersectionBottomIsAbsorbed(t *testing.T) {
	a := exactA(3, 0)
	require.True(t, approx.Equal(approx.IntersectionA(approx.Bottom(), a), a))
	require.True(t, approx.Equal(approx.IntersectionA(a, approx.Bottom()), a))
}

func TestUnionWidensOrBottoms(t *testing.T) {
	a := exactA(1, 0)
	b := exactA(2, 0)
	u := approx.UnionA(a, b)
	require.False(t, u.IsBottom())
	require.True(t, approx.Better(a, u))
	require.True(t, approx.Better(b, u))
	require.True(t, approx.UnionA(approx.Bottom(), a).IsBottom())
}

func TestBetterOrdersBottomAsTop(t *testing.T) {
	a := exactA(1, 0)
	require.True(t, approx.Better(a, approx.Bottom()))
	require.False(t, approx.Better(approx.Bottom(), a))
	require.True(t, approx.Better(approx.Bottom(), approx.Bottom()))
}

func TestCmpDisjointAndPanics(t *testing.T) {
	a := exactA(1, 0)
	b := exactA(5, 0)
	require.Equal(t, -1, approx.Cmp(a, b))
	require.Equal(t, 1, approx.Cmp(b, a))

	wide := approx.ApproxMB(8, big.NewInt(3), big.NewInt(5), 0) // [-2,8]
	require.Panics(t, func() { approx.Cmp(wide, exactA(0, 0)) })
	require.Panics(t, func() { approx.Cmp(approx.Bottom(), a) })
}

func TestAddSubNeg(t *testing.T) {
	a := exactA(3, -2) // 3/4
	b := exactA(5, -3) // 5/8
	sum := approx.Add(a, b)
	require.Equal(t, 0, approx.Cmp(sum, exactA(11, -3)))

	diff := approx.Sub(a, b)
	require.Equal(t, 0, approx.Cmp(diff, exactA(1, -3)))

	require.Equal(t, 0, approx.Cmp(approx.Neg(approx.Neg(a)), a))
}

func TestAbsStraddlingZero(t *testing.T) {
	a := approx.ApproxMB(8, big.NewInt(0), big.NewInt(5), 0) // [-5,5]
	abs := approx.Abs(a)
	require.False(t, abs.IsBottom())
	require.GreaterOrEqual(t, abs.M().Sign(), 0)
	require.Equal(t, 1, approx.SignA(approx.ApproxMB(8, big.NewInt(3), big.NewInt(0), 0)))
}

func TestMulSignCases(t *testing.T) {
	pos := exactA(3, 0)
	neg := exactA(-3, 0)
	require.Equal(t, 0, approx.Cmp(approx.Mul(pos, pos), exactA(9, 0)))
	require.Equal(t, 0, approx.Cmp(approx.Mul(pos, neg), exactA(-9, 0)))
	require.Equal(t, 0, approx.Cmp(approx.Mul(neg, neg), exactA(9, 0)))
}

func TestRecipAndQuo(t *testing.T) {
	four := exactA(4, 0)
	r := approx.Recip(four, 64)
	require.False(t, r.IsBottom())
	prod := approx.Mul(four, r)
	require.True(t, approx.ConsistentA(prod, exactA(1, 0)))

	straddles := approx.ApproxMB(8, big.NewInt(0), big.NewInt(2), 0)
	require.True(t, approx.Recip(straddles, 32).IsBottom())

	q := approx.Quo(exactA(6, 0), exactA(3, 0), 64)
	require.True(t, approx.ConsistentA(q, exactA(2, 0)))
}

func TestLimitAndBound(t *testing.T) {
	a := approx.ApproxMB(64, big.NewInt(1<<40), big.NewInt(1), 0)
	b := approx.LimitSize(a, 8)
	require.LessOrEqual(t, b.MB(), uint(8))
	require.True(t, approx.Better(a, b))
}

func TestSqrtAEnclosesTrueValue(t *testing.T) {
	two := exactA(2, 0)
	r := approx.SqrtA(two, 64)
	sq := approx.Mul(r, r)
	require.True(t, approx.ConsistentA(sq, two))
}

func TestSqrtANegativeDomainPanics(t *testing.T) {
	neg := exactA(-1, 0)
	require.Panics(t, func() { approx.SqrtA(neg, 32) })
}

// TestSqrStraddlingZeroIsTight checks spec.md §4.E's sqrA formula
// against the dependency inflation Mul(a, a) suffers from: squaring
// [-2,4] (m=1, e=3) must produce the tight [0,16], not the wider
// [-8,16] naive interval multiplication yields for the same interval.
func TestSqrStraddlingZeroIsTight(t *testing.T) {
	a := approx.ApproxMB(8, big.NewInt(1), big.NewInt(3), 0)

	sq := approx.Sqr(a)
	require.Equal(t, 0, sq.Lower().Sign())
	require.Equal(t, 0, dyadic.Cmp(sq.Upper(), dyadic.FromInt64(16, 0)))

	naive := approx.Mul(a, a)
	require.Equal(t, -1, naive.Lower().Sign())
}

// TestSqrNonStraddlingMatchesMul checks the |m|>e branch of sqrA agrees
// with plain interval multiplication when the interval doesn't
// straddle zero (no dependency inflation to avoid in that case).
func TestSqrNonStraddlingMatchesMul(t *testing.T) {
	a := exactA(5, 0)
	require.True(t, approx.ConsistentA(approx.Sqr(a), approx.Mul(a, a)))
}

func TestSqrtRecA(t *testing.T) {
	four := exactA(4, 0)
	r := approx.SqrtRecA(four, 64)
	require.True(t, approx.ConsistentA(approx.Mul(r, r), exactA(1, -2))) // 1/4
}

func TestPowersAndPoly(t *testing.T) {
	x := exactA(2, 0)
	ps := approx.Powers(x, 4, 32)
	require.Len(t, ps, 5)
	require.True(t, approx.ConsistentA(ps[4], exactA(16, 0)))

	coeffs := []dyadic.Dyadic{dyadic.FromInt64(1, 0), dyadic.FromInt64(0, 0), dyadic.FromInt64(1, 0)} // 1 + x^2
	v := approx.Poly(coeffs, x, 32)
	require.True(t, approx.ConsistentA(v, exactA(5, 0)))
}

func TestTaylorConvergesOnGeometricSeries(t *testing.T) {
	// 1/n! isn't an exact dyadic for n>1, so this test instead exercises
	// Taylor/Fudge on a series whose coefficients ARE exact dyadics:
	// Σ (x/2)^n with coeff(n) = 2^-n, at x = 1/2, sums to 1/(1-x/2) = 4/3.
	half := exactA(1, -1)
	coeff := approx.DyadicCoeff(func(n int) dyadic.Dyadic { return dyadic.FromInt64(1, -n) })
	sum := approx.TaylorA(half, 48, coeff, 1, 2, 1000)
	require.True(t, approx.ConsistentA(sum, approx.Quo(exactA(4, 0), exactA(3, 0), 48)))
}

func TestTaylorDyadicLevel(t *testing.T) {
	half := dyadic.FromInt64(1, -1)
	coeff := func(n int) dyadic.Dyadic { return dyadic.FromInt64(1, -n) }
	sum := approx.Taylor(half, 48, coeff, 1000)
	// Σ (1/2)^n*(1/2)^n = Σ (1/4)^n = 4/3
	expected, _ := dyadic.Round(dyadic.Div(dyadic.FromInt64(4, 0), dyadic.FromInt64(3, 0), 48), 48)
	diff := dyadic.Abs(dyadic.Sub(sum, expected))
	require.LessOrEqual(t, dyadic.Cmp(diff, dyadic.FromInt64(1, -40)), 0)
}

func TestABPQGeometricSeries(t *testing.T) {
	// Σ_{n=0}^{N-1} 1/2^n as a degenerate ABPQ instance: a_n=1, b_n=1,
	// p_n=1, q_n=2 for n>0 and q_0=1.
	f := approx.ABPQFuncs{
		A: func(n int64) *big.Int { return big.NewInt(1) },
		B: func(n int64) *big.Int { return big.NewInt(1) },
		P: func(n int64) *big.Int { return big.NewInt(1) },
		Q: func(n int64) *big.Int {
			if n == 0 {
				return big.NewInt(1)
			}
			return big.NewInt(2)
		},
	}
	s := approx.ABPQ(0, 20, f, 64)
	// partial sum of Σ 2^-n for n=0..19 is just under 2.
	require.Equal(t, -1, approx.Cmp(s, exactA(2, 0)))
	require.Equal(t, 1, approx.Cmp(s, exactA(1, 0)))
}

func TestGobRoundTrip(t *testing.T) {
	a := approx.ApproxMB(40, big.NewInt(-12345), big.NewInt(7), -10)
	data, err := a.GobEncode()
	require.NoError(t, err)

	var b approx.Approx
	require.NoError(t, b.GobDecode(data))
	require.True(t, approx.Equal(a, &b))

	bot := approx.Bottom()
	data, err = bot.GobEncode()
	require.NoError(t, err)
	var b2 approx.Approx
	require.NoError(t, b2.GobDecode(data))
	require.True(t, b2.IsBottom())
}

func TestShowInBase(t *testing.T) {
	a := exactA(1, -1) // 0.5
	s := approx.ShowInBaseA(a, 10, 4)
	require.Contains(t, s, "0.5000")
	require.Equal(t, "⊥", approx.ShowInBaseA(approx.Bottom(), 10, 4))
}

// TestShowAExact covers the exact branch of showA: e = 0 renders a
// plain signed decimal with no trailing symbol.
func TestShowAExact(t *testing.T) {
	require.Equal(t, "0.5", exactA(1, -1).Show())
	require.Equal(t, "-3", exactA(-3, 0).Show())
	require.Equal(t, "⊥", approx.Bottom().Show())
}

// TestShowAKnownInexact is scenario S6: showA(Approx(_, 1, 1, 0)) must
// be exactly "1.~".
func TestShowAKnownInexact(t *testing.T) {
	a := approx.ApproxMB(8, big.NewInt(1), big.NewInt(1), 0)
	require.Equal(t, "1.~", a.Show())
}

// TestShowANearZero covers the near-zero branch: |m| < e renders a
// "±"-prefixed run of the midpoint's genuine leading zero digits, cut
// short by "~" at the first digit that could be nonzero.
func TestShowANearZero(t *testing.T) {
	a := approx.ApproxMB(8, big.NewInt(0), big.NewInt(1), -4) // m=0, e=1/16
	s := a.Show()
	require.True(t, strings.HasPrefix(s, "±"))
	require.True(t, strings.HasSuffix(s, "~"))
}

// TestShowAInexactShowsMoreDigitsWithSmallerError checks that a
// tighter error bound certifies more fractional digits before the
// trailing "~".
func TestShowAInexactShowsMoreDigitsWithSmallerError(t *testing.T) {
	// value 1, error 2^-8: small enough that several fractional digits
	// of 1.000... are certain before the error catches up.
	a := approx.ApproxMB(16, big.NewInt(256), big.NewInt(1), -8)
	s := a.Show()
	require.True(t, strings.HasPrefix(s, "1."))
	require.True(t, strings.HasSuffix(s, "~"))
	require.Greater(t, len(s), len("1.~"))
}
