package approx

// SetMB returns a with its midpoint bit-bound raised to at least mb,
// widening the cap later operations use to size their guard digits
// without fabricating any precision a doesn't already have — the
// mirror image of LimitSize, which only ever lowers the cap. ⊥ is
// returned unchanged, and a is returned unchanged (not copied) if its
// bound is already at least mb.
func SetMB(a *Approx, mb uint) *Approx {
	if a.IsBottom() || a.mb >= uint32(mb) {
		return a
	}
	return &Approx{mb: uint32(mb), m: a.m, e: a.e, s: a.s}
}
