/*
Package approx implements centred dyadic interval approximations

	Approx = [(m-e)·2^s, (m+e)·2^s]

and the distinguished bottom value ⊥ (no information), the building
block the cr package's lazy computable reals are streams of.

Every exported arithmetic function here (Add, Sub, Mul, Recip, Quo,
SqrtA, ...) returns a validated enclosure of its mathematical result: the
true value, whatever it is, is guaranteed to lie in the returned
interval. Canonicalization helpers (LimitSize, BoundErrorTerm,
LimitAndBound) trade tightness for a bounded representation size, never
the other way around — every one of them returns an interval at least as
wide as the one it was given. ABPQ and TaylorA are the two series-
evaluation engines approxmath builds exp, log, the trigonometric
functions and π out of.
*/
package approx
