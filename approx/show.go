package approx

import (
	"math/big"
	"strings"
)

// ShowInBaseA renders a as "midpoint±error" in the given base (2..36),
// with digits fractional digits after the point in that base. This is
// a debug aid exposing the raw centre and radius separately — it is
// not the showA format spec.md §6 defines (that's Show, base 10 only)
// and is not a parser round-trip format: digits beyond the requested
// count are truncated, not rounded outward, so the printed error bound
// is advisory rather than itself an enclosure guarantee — callers that
// need a certified bound should read E()/MB()/S() directly.
func ShowInBaseA(a *Approx, base, digits int) string {
	if a.IsBottom() {
		return "⊥"
	}
	if base < 2 || base > 36 {
		panic("approx: ShowInBaseA base out of range")
	}
	mid := formatDyadicInBase(a.m, int(a.s), base, digits)
	errS := formatDyadicInBase(a.e, int(a.s), base, digits)
	return mid + "±" + errS
}

// Show renders a in base 10 following the showA textual format: "⊥" for
// bottom; a plain signed integer/fraction with no trailing symbol for
// exact values (e = 0); a "±" prefix followed by the leading zero
// digits of the midpoint cut short by "~" at the first digit that could
// be nonzero, for values near zero (|m| < e); and otherwise a signed
// integer part — always shown in full — followed by "." and the
// fractional digits still certified by a's error bound, cut short by a
// trailing "~" at the first digit the error reaches (possibly zero
// fractional digits, e.g. Show on Approx(_, 1, 1, 0) is "1.~").
func (a *Approx) Show() string {
	if a.IsBottom() {
		return "⊥"
	}
	s := int(a.s)
	if a.e.Sign() == 0 {
		return formatExact(a.m, s)
	}
	magM := new(big.Int).Abs(a.m)
	if magM.Cmp(a.e) < 0 {
		return "±" + formatNearZero(magM, s, a.mb)
	}
	sign := ""
	if a.m.Sign() < 0 {
		sign = "-"
	}
	return sign + formatInexact(magM, a.e, s)
}

// formatExact renders mag*2^s (mag may be negative) in base 10 exactly;
// 2^s always terminates in base 10, so no rounding is involved.
func formatExact(m *big.Int, s int) string {
	neg := m.Sign() < 0
	mag := new(big.Int).Abs(m)
	var sign string
	if neg {
		sign = "-"
	}
	if s >= 0 {
		return sign + new(big.Int).Lsh(mag, uint(s)).Text(10)
	}
	k := -s
	scaled := new(big.Int).Mul(mag, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil))
	digitsStr := scaled.Text(10)
	for len(digitsStr) <= k {
		digitsStr = "0" + digitsStr
	}
	intPart := digitsStr[:len(digitsStr)-k]
	fracPart := strings.TrimRight(digitsStr[len(digitsStr)-k:], "0")
	if fracPart == "" {
		return sign + intPart
	}
	return sign + intPart + "." + fracPart
}

// decimalDigits returns the base-10 integer and fractional digits of
// mag*2^s, truncated (not rounded) to the requested number of
// fractional digits.
func decimalDigits(mag *big.Int, s, digits int) (intPart, fracPart string) {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	var scaled *big.Int
	if s >= 0 {
		scaled = new(big.Int).Lsh(mag, uint(s))
		scaled.Mul(scaled, scale)
	} else {
		scaled = new(big.Int).Mul(mag, scale)
		scaled.Rsh(scaled, uint(-s))
	}
	digitsStr := scaled.Text(10)
	for len(digitsStr) <= digits {
		digitsStr = "0" + digitsStr
	}
	return digitsStr[:len(digitsStr)-digits], digitsStr[len(digitsStr)-digits:]
}

// errBelowUnit reports whether the error magnitude magE*2^s is strictly
// less than 10^-d, i.e. whether d fractional decimal digits would still
// be within the error bound's resolution.
func errBelowUnit(magE *big.Int, s, d int) bool {
	if s >= 0 {
		return magE.Sign() == 0
	}
	lhs := new(big.Int).Mul(magE, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d)), nil))
	rhs := new(big.Int).Lsh(big.NewInt(1), uint(-s))
	return lhs.Cmp(rhs) < 0
}

// formatInexact renders the inexact-otherwise case of showA: the full
// integer part of magM*2^s, then the fractional digits that remain
// certain given magE, then "~".
func formatInexact(magM, magE *big.Int, s int) string {
	safeDigits := 0
	for errBelowUnit(magE, s, safeDigits+1) {
		safeDigits++
	}
	intPart, fracPart := decimalDigits(magM, s, safeDigits)
	var b strings.Builder
	b.WriteString(intPart)
	b.WriteByte('.')
	b.WriteString(fracPart)
	b.WriteByte('~')
	return b.String()
}

// formatNearZero renders the near-zero case of showA: the actual
// leading zero digits of magM (these are genuinely 0, not merely
// within the error bound), cut short by "~" at the first digit that
// could be nonzero. mb caps how many digits are generated before
// giving up and treating the value as indistinguishable from zero at
// this resolution.
func formatNearZero(magM *big.Int, s int, mb uint32) string {
	maxDigits := int(mb)/3 + 4
	if maxDigits < 4 {
		maxDigits = 4
	}
	intPart, fracPart := decimalDigits(magM, s, maxDigits)
	var b strings.Builder
	for _, c := range intPart + "." + fracPart {
		if c == '0' || c == '.' {
			b.WriteRune(c)
			continue
		}
		b.WriteByte('~')
		return b.String()
	}
	b.WriteByte('~')
	return b.String()
}

// formatDyadicInBase renders |m|*2^s (m may be negative) as a signed
// base-b number with digits fractional digits.
func formatDyadicInBase(m *big.Int, s, base, digits int) string {
	neg := m.Sign() < 0
	mag := new(big.Int).Abs(m)

	scale := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(digits)), nil)
	var scaled *big.Int
	if s >= 0 {
		scaled = new(big.Int).Lsh(mag, uint(s))
		scaled.Mul(scaled, scale)
	} else {
		scaled = new(big.Int).Mul(mag, scale)
		scaled.Rsh(scaled, uint(-s))
	}

	digitsStr := scaled.Text(base)
	for len(digitsStr) <= digits {
		digitsStr = "0" + digitsStr
	}
	intPart := digitsStr[:len(digitsStr)-digits]
	fracPart := digitsStr[len(digitsStr)-digits:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	if digits > 0 {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
