package approx

import "github.com/pkg/errors"

// ErrUncomparable is the panic value Cmp raises when two intervals
// overlap enough that no order between them can be established at the
// operands' current precision — the same "this is the caller's problem,
// fail loudly rather than guess" stance the teacher's decimal package
// takes with ErrNaN for IEEE-754 invalid operations.
var ErrUncomparable = errors.New("approx: intervals overlap, comparison undecidable at this precision")

// ErrDomain is the panic value domain-restricted operations raise on an
// input interval outside the range they accept: SqrtA when the interval
// lies entirely below zero, SqrtRecA when it lies entirely at or below
// zero, and approxmath.Log whenever it is not entirely positive.
var ErrDomain = errors.New("approx: operand outside the function's domain")
