package cr_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/gocomputable/creal/approx"
	"github.com/gocomputable/creal/cr"
)

// randomRational returns a small nonzero-denominator rational drawn from
// src, biased toward values that fit comfortably in an int64 so the
// resulting CR streams converge quickly.
func randomRational(src *rand.Rand) (p, q *big.Int) {
	num := src.Int63n(2_000_001) - 1_000_000
	den := src.Int63n(999) + 1
	return big.NewInt(num), big.NewInt(den)
}

// TestPropertyAdditionCommutes checks a + b == b + a over many random
// rational samples, the way the teacher's own stress tests lean on a
// seeded golang.org/x/exp/rand source for repeatable randomized coverage.
func TestPropertyAdditionCommutes(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		ap, aq := randomRational(src)
		bp, bq := randomRational(src)
		a := cr.FromRational(ap, aq)
		b := cr.FromRational(bp, bq)

		lhs := cr.Require(48, cr.Add(a, b))
		rhs := cr.Require(48, cr.Add(b, a))
		require.True(t, approx.ConsistentA(lhs, rhs), "a=%s/%s b=%s/%s", ap, aq, bp, bq)
	}
}

// TestPropertyMultiplicationDistributesOverAddition checks
// a*(b+c) == a*b + a*c over many random rational samples.
func TestPropertyMultiplicationDistributesOverAddition(t *testing.T) {
	src := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		ap, aq := randomRational(src)
		bp, bq := randomRational(src)
		cp, cq := randomRational(src)
		a := cr.FromRational(ap, aq)
		b := cr.FromRational(bp, bq)
		c := cr.FromRational(cp, cq)

		lhs := cr.Require(48, cr.Mul(a, cr.Add(b, c)))
		rhs := cr.Require(48, cr.Add(cr.Mul(a, b), cr.Mul(a, c)))
		require.True(t, approx.ConsistentA(lhs, rhs), "a=%s/%s b=%s/%s c=%s/%s", ap, aq, bp, bq, cp, cq)
	}
}

// TestPropertyNegationInvolutes checks -(-x) == x over many random
// rational samples, including values straddling zero.
func TestPropertyNegationInvolutes(t *testing.T) {
	src := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		p, q := randomRational(src)
		x := cr.FromRational(p, q)

		got := cr.Require(48, cr.Neg(cr.Neg(x)))
		want := cr.Require(48, x)
		require.True(t, approx.ConsistentA(got, want), "p=%s q=%s", p, q)
	}
}

// TestPropertyAbsIsNonNegative checks |x| never signs negative for a
// random sample of nonzero rationals, at a precision deep enough to
// resolve the sign.
func TestPropertyAbsIsNonNegative(t *testing.T) {
	src := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		p, q := randomRational(src)
		if p.Sign() == 0 {
			continue
		}
		x := cr.FromRational(p, q)
		require.GreaterOrEqual(t, cr.Abs(x).Sign(48), 0, "p=%s q=%s", p, q)
	}
}
