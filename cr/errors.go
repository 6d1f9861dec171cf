package cr

import "github.com/pkg/errors"

// ErrInsufficientPrecision is the error the bounded Sign/Compare
// operations panic with when the requested precision d does not suffice to
// distinguish the operands from zero or from each other, wrapped with
// context identifying the call, the same "fail loudly rather than
// guess" stance approx.ErrUncomparable takes for Approx-level Cmp.
var ErrInsufficientPrecision = errors.New("cr: requested precision does not distinguish the value")
