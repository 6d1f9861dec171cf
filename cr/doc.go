// Package cr implements CR, a lazily-memoized computable real: an
// immutable stream of approx.Approx enclosures indexed by resource
// level, each one at least as precise as the last. Require drives the
// stream to whatever depth is needed to certify a requested number of
// bits and returns the enclosure found there.
//
// CR plays the role the teacher's own context.Context plays for
// *decimal.Decimal — a precision-driving wrapper around a lower-level
// numeric type — except where Context rounds to a fixed precision
// up front, CR defers that choice to whoever calls Require, and where
// Context catches errors with a sticky NaN flag, CR's error channel is
// ⊥ propagating silently through the stream until a caller asks for
// more precision than the computation can currently supply.
package cr
