package approx

import "math/big"

// ABPQFuncs supplies the four integer sequences a_n, b_n, p_n, q_n of a
// linearly-convergent series Σ_{n≥0} (a_n/b_n)·(p_0·p_1·...·p_n)/(q_0·
// q_1·...·q_n) — the shape of Ramanujan's and Chudnovsky's π series, and
// of factorial-denominator series generally once written as a product of
// per-term ratios rather than accumulated one term at a time.
type ABPQFuncs struct {
	A, B, P, Q func(n int64) *big.Int
}

// ABPQ evaluates Σ_{n=n1}^{n2-1} (a_n/b_n)·P(n1,n+1)/Q(n1,n+1) to
// midpoint bit-bound mb using binary splitting: the recursion computes
// the partial products P, Q, B and the combined numerator T for the
// whole range in a recursion of depth O(log(n2-n1)) whose multiplications
// combine numbers that grow with the range, rather than n2-n1 separate, ever-more-expensive
// term evaluations — the standard technique for the factorial-heavy
// series this module's default π algorithm uses, where a direct
// term-by-term Taylor sum would spend almost all its time on big.Int
// division.
func ABPQ(n1, n2 int64, f ABPQFuncs, mb uint) *Approx {
	if n2 <= n1 {
		panic("approx: ABPQ called on an empty range")
	}
	_, Q, B, T := abpqRange(n1, n2, f)
	denom := new(big.Int).Mul(B, Q)
	return ratioToApprox(T, denom, mb)
}

// abpqRange computes (P, Q, B, T) for the half-open range [n1, n2),
// where T = B(n1,n2)·Q(n1,n2)·Σ_{n=n1}^{n2-1} a_n·P(n1,n+1)/(b_n·Q(n1,n+1)).
func abpqRange(n1, n2 int64, f ABPQFuncs) (P, Q, B, T *big.Int) {
	if n2-n1 == 1 {
		P = f.P(n1)
		Q = f.Q(n1)
		B = f.B(n1)
		T = new(big.Int).Mul(f.A(n1), P)
		return
	}
	m := n1 + (n2-n1)/2
	P1, Q1, B1, T1 := abpqRange(n1, m, f)
	P2, Q2, B2, T2 := abpqRange(m, n2, f)
	P = new(big.Int).Mul(P1, P2)
	Q = new(big.Int).Mul(Q1, Q2)
	B = new(big.Int).Mul(B1, B2)
	left := new(big.Int).Mul(B2, new(big.Int).Mul(Q2, T1))
	right := new(big.Int).Mul(B1, new(big.Int).Mul(P1, T2))
	T = new(big.Int).Add(left, right)
	return
}

// ratioToApprox returns an enclosure of the exact rational num/den at
// midpoint bit-bound mb, with a one-ulp error term covering the
// truncation of the scaled integer division used to compute it.
func ratioToApprox(num, den *big.Int, mb uint) *Approx {
	if den.Sign() == 0 {
		panic("approx: division by zero")
	}
	neg := (num.Sign() < 0) != (den.Sign() < 0)
	n := new(big.Int).Abs(num)
	d := new(big.Int).Abs(den)
	k := mb + errorBits + 8
	scaled := new(big.Int).Lsh(n, k)
	q, _ := new(big.Int).QuoRem(scaled, d, new(big.Int))
	if neg {
		q.Neg(q)
	}
	return ApproxMB(mb, q, big.NewInt(1), -int(k))
}
