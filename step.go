// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

import "math/bits"

const (
	// increment is the odd constant added to the state on every step.
	increment = 0xa0761d6478bd642f

	// mixer is xored into the advanced state to form the second multiplicand.
	mixer = 0xe7037ed1a0b428db
)

// mix returns the precise WyRand output for an already advanced state.  The
// full 128-bit product of the state and its mixed form is folded by xoring its
// two halves together.
func mix(state uint64) uint64 {
	lo, hi := WideMul64(state, state^mixer)
	return lo ^ hi
}

// fastMix returns the fast WyRand output for an already advanced state.
//
// It computes the same four partial products as mul64Limbs, but folds them
// together with xor instead of propagating carries between them.  The cross
// products have their 32-bit halves swapped so each half lands in the same
// position it would occupy after the carry-exact fold.  The result is not
// equal to mix for the same state.
func fastMix(state uint64) uint64 {
	ll, lh, hl, hh := limbProducts(state, state^mixer)
	return hh ^ bits.RotateLeft64(hl, 32) ^ bits.RotateLeft64(lh, 32) ^ ll
}

// step advances the state by the increment and returns the new state.
func (r *Rand) step() uint64 {
	r.state = Add64(r.state, increment)
	return r.state
}

// Next64 advances the generator and returns a uniform random uint64 produced
// by the precise step function.
func (r *Rand) Next64() uint64 {
	return mix(r.step())
}

// FastNext64 advances the generator and returns a uniform random uint64
// produced by the fast step function.  The fast sequence for a seed differs
// from the sequence produced by Next64.
func (r *Rand) FastNext64() uint64 {
	return fastMix(r.step())
}

// Next32 returns the low 32 bits of Next64.
func (r *Rand) Next32() uint32 {
	return uint32(r.Next64())
}

// FastNext32 returns the low 32 bits of FastNext64.
func (r *Rand) FastNext32() uint32 {
	return uint32(r.FastNext64())
}

// Uint64 is an alias for Next64.  It allows the generator to be used where a
// Uint64 method is expected.
func (r *Rand) Uint64() uint64 {
	return r.Next64()
}

// Uint32 is an alias for Next32.
func (r *Rand) Uint32() uint32 {
	return r.Next32()
}
