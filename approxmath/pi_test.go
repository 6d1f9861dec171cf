package approxmath_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocomputable/creal/approx"
	"github.com/gocomputable/creal/approxmath"
)

func TestPiAlgorithmsAgree(t *testing.T) {
	const mb = 256
	raw := approxmath.PiRaw(mb)
	machin := approxmath.PiMachin(mb)
	borwein := approxmath.PiBorwein(mb)
	agm := approxmath.PiAGM(mb)

	require.True(t, approx.ConsistentA(raw, machin))
	require.True(t, approx.ConsistentA(raw, borwein))
	require.True(t, approx.ConsistentA(raw, agm))
}

func TestPiCachedAccessorGrows(t *testing.T) {
	small := approxmath.Pi(32)
	large := approxmath.Pi(200)
	require.True(t, approx.ConsistentA(small, large))
	require.LessOrEqual(t, small.MB(), uint(32))
	require.LessOrEqual(t, large.MB(), uint(200))
}

func TestPiKnownBounds(t *testing.T) {
	// Archimedes' classical bounds: 223/71 < π < 22/7.
	pi := approxmath.PiRaw(64)
	lo := approx.Quo(approx.FromDyadic(big.NewInt(223), 0), approx.FromDyadic(big.NewInt(71), 0), 64)
	hi := approx.Quo(approx.FromDyadic(big.NewInt(22), 0), approx.FromDyadic(big.NewInt(7), 0), 64)
	require.Equal(t, -1, approx.Cmp(lo, pi))
	require.Equal(t, 1, approx.Cmp(hi, pi))
}
