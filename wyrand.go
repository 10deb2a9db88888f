// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

import "fmt"

// snapshotLen is the number of 32-bit words in a state snapshot.
const snapshotLen = 2

// Rand is a WyRand pseudorandom number generator.  Its entire state is a single
// 64-bit word, so copying a Rand value forks the stream.
//
// The zero value is a valid generator seeded with zero.  Rand methods are not
// safe for concurrent access.  See Locked for a generator that may be shared.
type Rand struct {
	state uint64
}

// New returns a generator seeded with the provided 64-bit seed.
func New(seed uint64) *Rand {
	return &Rand{state: seed}
}

// NewFromHalves returns a generator whose seed is formed from the provided low
// and high 32-bit halves.
func NewFromHalves(lo, hi uint32) *Rand {
	return &Rand{state: joinHalves(lo, hi)}
}

// NewFromSnapshot returns a generator restored from a snapshot previously
// obtained via Snapshot.  ErrInvalidSeedShape is returned when the snapshot
// does not contain exactly two words.
func NewFromSnapshot(snap []uint32) (*Rand, error) {
	r := new(Rand)
	if err := r.Restore(snap); err != nil {
		return nil, err
	}
	return r, nil
}

// joinHalves combines two 32-bit halves into a 64-bit state word.
func joinHalves(lo, hi uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

// Seed resets the generator to the provided 64-bit seed.
func (r *Rand) Seed(seed uint64) {
	r.state = seed
}

// State returns the current state split into its low and high 32-bit halves.
func (r *Rand) State() (lo, hi uint32) {
	return uint32(r.state), uint32(r.state >> 32)
}

// SetState sets the current state from its low and high 32-bit halves.  Setting
// the halves returned by State resumes the exact same sequence.
func (r *Rand) SetState(lo, hi uint32) {
	r.state = joinHalves(lo, hi)
}

// Uint64State returns the current state as a single 64-bit word.  Passing it
// to New produces a generator that continues the same sequence.
func (r *Rand) Uint64State() uint64 {
	return r.state
}

// Snapshot returns the current state as a two word slice of the low and high
// halves, suitable for Restore and NewFromSnapshot.
func (r *Rand) Snapshot() []uint32 {
	lo, hi := r.State()
	return []uint32{lo, hi}
}

// Restore sets the current state from a snapshot previously obtained via
// Snapshot.  ErrInvalidSeedShape is returned and the state is left unchanged
// when the snapshot does not contain exactly two words.
func (r *Rand) Restore(snap []uint32) error {
	if len(snap) != snapshotLen {
		str := fmt.Sprintf("state snapshot has %d words instead of %d",
			len(snap), snapshotLen)
		return makeError(ErrInvalidSeedShape, str)
	}
	r.SetState(snap[0], snap[1])
	return nil
}
