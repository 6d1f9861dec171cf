package cr_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocomputable/creal/approx"
	"github.com/gocomputable/creal/cr"
)

func TestFromIntegerIsExact(t *testing.T) {
	x := cr.FromInteger(big.NewInt(42))
	a := cr.Require(64, x)
	require.True(t, a.IsExact())
	require.Equal(t, 0, approx.Cmp(a, approx.FromDyadic(big.NewInt(42), 0)))
}

func TestFromRationalConverges(t *testing.T) {
	x := cr.FromRational(big.NewInt(1), big.NewInt(3))
	a := cr.Require(64, x)
	require.False(t, a.IsBottom())
	require.Greater(t, a.Precision(), 64)
}

func TestParseRoundTrip(t *testing.T) {
	x, ok := cr.Parse("3.14159")
	require.True(t, ok)
	expect := cr.FromRational(big.NewInt(314159), big.NewInt(100000))
	require.True(t, approx.ConsistentA(cr.Require(60, x), cr.Require(60, expect)))

	_, ok = cr.Parse("not a number")
	require.False(t, ok)
}

func TestFromDoubleNonFiniteIsBottom(t *testing.T) {
	inf := cr.FromDouble(math.Inf(1))
	require.True(t, cr.Require(32, inf).IsBottom())

	finite := cr.FromDouble(1.0)
	require.False(t, cr.Require(32, finite).IsBottom())
}

func TestFieldLawsAssociativityAndCommutativity(t *testing.T) {
	a := cr.FromRational(big.NewInt(1), big.NewInt(3))
	b := cr.FromRational(big.NewInt(2), big.NewInt(7))
	c := cr.FromRational(big.NewInt(5), big.NewInt(11))

	lhs := cr.Require(80, cr.Add(cr.Add(a, b), c))
	rhs := cr.Require(80, cr.Add(a, cr.Add(b, c)))
	require.True(t, approx.ConsistentA(lhs, rhs))

	comm := cr.Require(80, cr.Mul(a, b))
	commRev := cr.Require(80, cr.Mul(b, a))
	require.True(t, approx.ConsistentA(comm, commRev))
}

func TestTranscendentalIdentities(t *testing.T) {
	one := cr.FromRational(big.NewInt(1), big.NewInt(1))
	two := cr.FromRational(big.NewInt(2), big.NewInt(1))

	pyth := cr.Require(64, cr.Sub(cr.Add(cr.Mul(cr.Sin(cr.Pi), cr.Sin(cr.Pi)), cr.Mul(cr.Cos(cr.Pi), cr.Cos(cr.Pi))), one))
	require.True(t, approx.ConsistentA(pyth, approx.FromDyadic(big.NewInt(0), 0)))

	expLog := cr.Require(100, cr.Sub(cr.Exp(cr.Log(two)), two))
	require.True(t, approx.ConsistentA(expLog, approx.FromDyadic(big.NewInt(0), 0)))

	logExp := cr.Require(100, cr.Sub(cr.Log(cr.Exp(two)), two))
	require.True(t, approx.ConsistentA(logExp, approx.FromDyadic(big.NewInt(0), 0)))
}

// TestRump1 is scenario S1: Rump's classic ill-conditioned polynomial,
// whose correctly-rounded value has the opposite sign from what
// naive double-precision evaluation produces.
func TestRump1(t *testing.T) {
	a := cr.FromInteger(big.NewInt(77617))
	b := cr.FromInteger(big.NewInt(33096))
	two := cr.FromInteger(big.NewInt(2))

	a2 := cr.Mul(a, a)
	b2 := cr.Mul(b, b)
	b4 := cr.Mul(b2, b2)

	term1 := cr.Mul(cr.FromInteger(big.NewInt(21)), b2)
	term2 := cr.Mul(cr.FromInteger(big.NewInt(2)), a2)
	term3 := cr.Mul(cr.FromInteger(big.NewInt(55)), b4)
	term4 := cr.Mul(cr.FromInteger(big.NewInt(10)), cr.Mul(a2, b2))
	term5 := cr.Quo(a, cr.Mul(two, b))

	value := cr.Add(cr.Sub(cr.Add(cr.Sub(term1, term2), term3), term4), term5)
	got := cr.Require(80, value)

	// -0.8273960599... lies strictly between -0.8273961 and -0.8273960.
	lo := approx.Quo(approx.FromDyadic(big.NewInt(-8273961), 0), approx.FromDyadic(big.NewInt(10000000), 0), 80)
	hi := approx.Quo(approx.FromDyadic(big.NewInt(-8273960), 0), approx.FromDyadic(big.NewInt(10000000), 0), 80)
	require.Equal(t, -1, approx.Cmp(lo, got))
	require.Equal(t, 1, approx.Cmp(hi, got))
}

// TestPiContainsKnownDigits is scenario S3 (partial): require(d, pi) lies
// strictly between the Archimedes bounds 223/71 and 22/7 at deep
// precision, and showCR produces
// a non-bottom rendering.
func TestPiContainsKnownDigits(t *testing.T) {
	a := cr.Require(256, cr.Pi)
	lo := approx.Quo(approx.FromDyadic(big.NewInt(223), 0), approx.FromDyadic(big.NewInt(71), 0), 256)
	hi := approx.Quo(approx.FromDyadic(big.NewInt(22), 0), approx.FromDyadic(big.NewInt(7), 0), 256)
	require.Equal(t, -1, approx.Cmp(lo, a))
	require.Equal(t, 1, approx.Cmp(hi, a))
	require.NotEqual(t, "⊥", cr.ShowCR(256, cr.Pi))
}

// TestExpLogRoundTripWidth is scenario S4.
func TestExpLogRoundTripWidth(t *testing.T) {
	two := cr.FromRational(big.NewInt(2), big.NewInt(1))
	a := cr.Require(300, cr.Exp(cr.Log(two)))
	require.True(t, approx.ConsistentA(a, approx.FromDyadic(big.NewInt(2), 0)))
	require.LessOrEqual(t, a.Diameter().Float64(), 1.0/(1<<20))
}

// TestSinCosOfPi is scenario S5.
func TestSinCosOfPi(t *testing.T) {
	sinPi := cr.Require(200, cr.Sin(cr.Pi))
	cosPi := cr.Require(200, cr.Cos(cr.Pi))
	require.True(t, approx.ConsistentA(sinPi, approx.FromDyadic(big.NewInt(0), 0)))
	require.True(t, approx.ConsistentA(cosPi, approx.FromDyadic(big.NewInt(-1), 0)))
}

// TestTanAtanRoundTrip is scenario S7.
func TestTanAtanRoundTrip(t *testing.T) {
	x := cr.FromDouble(-0.2939788524332769)
	got := cr.Require(10, cr.Tan(cr.Atan(x)))
	require.True(t, approx.ConsistentA(got, cr.Require(10, x)))
}

func TestSignAndCompare(t *testing.T) {
	pos := cr.FromInteger(big.NewInt(5))
	neg := cr.FromInteger(big.NewInt(-3))
	zero := cr.FromInteger(big.NewInt(0))

	require.Equal(t, 1, pos.Sign(32))
	require.Equal(t, -1, neg.Sign(32))
	require.Equal(t, 0, zero.Sign(32))

	require.Equal(t, -1, neg.Compare(pos, 32))
	require.Equal(t, 1, pos.Compare(neg, 32))
	require.Equal(t, 0, pos.Compare(pos, 32))
}

func TestToDoubleAndToRational(t *testing.T) {
	x := cr.FromRational(big.NewInt(1), big.NewInt(4))
	f, ok := cr.ToDouble(x)
	require.True(t, ok)
	require.InDelta(t, 0.25, f, 1e-9)

	r := cr.ToRational(x)
	require.Equal(t, big.NewRat(1, 4), r)
}
