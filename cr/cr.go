package cr

import (
	"github.com/gocomputable/creal/approx"
)

// CR is an immutable, lazily-memoized computable real: a function from
// resource index to approx.Approx, each indexed element at least as
// precise as the requested resource level demands. Values are cheap to
// copy — the underlying generator and its memo table live behind a
// pointer, mirroring the once-computed-never-recomputed discipline the
// teacher's own package-level π cache uses, but per-stream rather than
// process-wide.
//
// CR is not safe for concurrent use from multiple goroutines; the
// scheduling model this module targets is single-threaded cooperative
// laziness, so at never needs to guard its memo table with a lock.
type CR struct {
	state *crState
}

type crState struct {
	gen   func(k int) *approx.Approx
	cache []*approx.Approx
}

// newCR wraps a generator function as a CR.
func newCR(gen func(k int) *approx.Approx) CR {
	return CR{state: &crState{gen: gen}}
}

// at returns the k'th element of x's stream, computing and memoizing it
// on first access.
func (x CR) at(k int) *approx.Approx {
	s := x.state
	for len(s.cache) <= k {
		s.cache = append(s.cache, nil)
	}
	if s.cache[k] == nil {
		s.cache[k] = s.gen(k)
	}
	return s.cache[k]
}

// resourceAt returns the k'th element of the resource sequence
// L₀=80, Lₖ₊₁=⌊3Lₖ/2⌋ — the precision, in bits, a well-behaved CR
// generator is expected to supply at stream index k.
func resourceAt(k int) uint {
	l := uint(80)
	for i := 0; i < k; i++ {
		l = l * 3 / 2
	}
	return l
}

// ok returns a unchanged if its precision certifiably exceeds d bits,
// or ⊥ otherwise, so that a stalling term cannot leak a misleadingly
// tight-looking but under-precise result downstream.
func ok(d int, a *approx.Approx) *approx.Approx {
	if a.IsBottom() {
		return a
	}
	if a.Precision() > d {
		return a
	}
	return approx.Bottom()
}

// liftUnary lifts an Approx-level unary operation into a CR -> CR
// combinator: CR(f)(x).at(k) = ok(10, limitAndBound(Lₖ, f(setMB(Lₖ,
// x.at(k))))), per the refinement protocol.
func liftUnary(f func(a *approx.Approx, mb uint) *approx.Approx) func(x CR) CR {
	return func(x CR) CR {
		return newCR(func(k int) *approx.Approx {
			lk := resourceAt(k)
			a := approx.SetMB(x.at(k), lk)
			return ok(10, approx.LimitAndBound(f(a, lk), lk))
		})
	}
}

// liftBinary is liftUnary's two-operand counterpart: both operands are
// sampled at the same stream index k and raised to the same resource
// level Lₖ before f is applied.
func liftBinary(f func(a, b *approx.Approx, mb uint) *approx.Approx) func(x, y CR) CR {
	return func(x, y CR) CR {
		return newCR(func(k int) *approx.Approx {
			lk := resourceAt(k)
			a := approx.SetMB(x.at(k), lk)
			b := approx.SetMB(y.at(k), lk)
			return ok(10, approx.LimitAndBound(f(a, b, lk), lk))
		})
	}
}

// liftUnaryPure lifts an Approx-level unary operation that does not
// itself take a precision argument (Neg, Abs) the same way liftUnary does.
func liftUnaryPure(f func(a *approx.Approx) *approx.Approx) func(x CR) CR {
	return liftUnary(func(a *approx.Approx, _ uint) *approx.Approx { return f(a) })
}
