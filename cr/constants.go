package cr

import (
	"math/big"

	"github.com/gocomputable/creal/approx"
	"github.com/gocomputable/creal/approxmath"
)

// Pi, E and Ln2 are memoized package-level computable-real constants,
// grounded on the teacher's own `var _pi = pi(...)` caching pattern in
// math/pi.go (itself echoed inside approxmath.Pi) — each stream index
// simply asks approxmath for at least Lₖ bits. Pi relies on approxmath's
// own grow-only cache to avoid recomputing work already done at a
// shallower depth; Ln2 recomputes dyadic.Ln2 at each index, and E is
// memoized only by its own CR stream.
var (
	Pi  = newCR(func(k int) *approx.Approx { return approxmath.Pi(resourceAt(k)) })
	E   = Exp(FromInteger(big.NewInt(1)))
	Ln2 = newCR(func(k int) *approx.Approx { return approxmath.Ln2(resourceAt(k)) })
)
