package cr

import (
	"strconv"
	"strings"

	"github.com/gocomputable/creal/approx"
)

// ShowCR returns require(d, x) rendered via approx.Show, the showA
// textual format (exact, near-zero, or "~"-truncated inexact) that
// approx.Approx itself implements.
func ShowCR(d int, x CR) string {
	return Require(d, x).Show()
}

// ShowCRN returns the first n elements of x's stream, one per line,
// each rendered via approx.Show — a debugging aid for watching a
// stream converge (or fail to) element by element.
func ShowCRN(n int, x CR) string {
	var b strings.Builder
	for k := 0; k < n; k++ {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(k))
		b.WriteString(": ")
		b.WriteString(x.at(k).Show())
	}
	return b.String()
}

// ShowA delegates to approx.Approx's own Show, re-exported here so
// callers working at the CR level don't need to import approx just to
// print a driven-out enclosure.
func ShowA(a *approx.Approx) string { return a.Show() }

// ShowInBaseA delegates to approx.ShowInBaseA.
func ShowInBaseA(a *approx.Approx, base, digits int) string {
	return approx.ShowInBaseA(a, base, digits)
}
