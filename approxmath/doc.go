// Package approxmath provides validated Approx-level elementary
// functions — Exp, Log, Sin, Cos, Atan and several independently
// grounded ways of computing π — built out of approx's arithmetic,
// ABPQ binary splitting and TaylorA series summation.
//
// Every function here takes a midpoint bit-bound mb and returns a sound
// enclosure at that precision; none of them mutate their arguments.
package approxmath
