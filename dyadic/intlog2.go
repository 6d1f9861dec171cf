package dyadic

import "math/big"

// IntegerLog2 returns ⌊log₂|x|⌋ for nonzero x. It panics on x == 0, the
// same "this query is undefined, fail fast" stance spec.md §9 takes for
// mBound(⊥): the caller is responsible for never asking a meaningless
// question of this primitive.
func IntegerLog2(x *big.Int) int {
	if x.Sign() == 0 {
		panic("dyadic: IntegerLog2 of zero")
	}
	return x.BitLen() - 1
}
