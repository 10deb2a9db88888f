// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

import "math/bits"

const maxUint32 = 1<<32 - 1

// Add64 returns a+b modulo 2^64.  Overflow wraps silently.
func Add64(a, b uint64) uint64 {
	sum, _ := bits.Add64(a, b, 0)
	return sum
}

// WideMul64 returns the full 128-bit product of a and b split into its low and
// high 64-bit halves.
func WideMul64(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// limbProducts breaks a and b into two 32-bit digits each and returns the four
// 32x32->64 partial products.  The name of each product is the digit of a
// followed by the digit of b, so lh is the low digit of a times the high digit
// of b.
func limbProducts(a, b uint64) (ll, lh, hl, hh uint64) {
	a0, a1 := a&maxUint32, a>>32
	b0, b1 := b&maxUint32, b>>32
	return a0 * b0, a0 * b1, a1 * b0, a1 * b1
}

// mul64Limbs is the schoolbook form of WideMul64 for targets without a native
// widening multiply.  It must agree with WideMul64 for every input.
func mul64Limbs(a, b uint64) (lo, hi uint64) {
	// Both operands fit in a single digit, so the product fits in 64 bits.
	if a>>32 == 0 && b>>32 == 0 {
		return a * b, 0
	}

	ll, lh, hl, hh := limbProducts(a, b)

	// The middle column collects the high digit of ll and the low digits of
	// the cross products.  It is at most 3*(2^32-1), so its carry into the
	// high word is computed once here and never again.
	mid := ll>>32 + lh&maxUint32 + hl&maxUint32
	lo = mid<<32 | ll&maxUint32
	hi = hh + lh>>32 + hl>>32 + mid>>32
	return lo, hi
}
