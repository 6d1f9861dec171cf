/*
Package dyadic implements the exact dyadic rationals D = m·2^s that back
the approx package's centred dyadic intervals, plus the handful of
precision-indexed helpers (Sqrt, SqrtRec, Div, Atanh, Ln2, PiMachin,
PiBorwein) that approx and approxmath treat as primitives rather than
reimplement: Newton's method for square roots, Taylor series for atanh,
and two classical π algorithms used as cross-checks for the package's
default Chudnovsky binary-splitting series.

Dyadic arithmetic (Add, Sub, Mul, Neg, Abs, Cmp) is exact; the
precision-indexed helpers are not — each accepts a target bit precision
and returns a value within roughly one unit in the last place of the true
result, truncated or rounded as documented on each function. Callers that
need a validated enclosure (everything in approx) wrap the returned value
with an explicit error radius rather than trusting it as exact.
*/
package dyadic
