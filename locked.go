// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

import "sync"

// Locked is a generator that is safe for concurrent access.  Every method
// acquires a mutex around the corresponding Rand method, so callers that do
// not share a generator should use Rand directly and avoid the locking
// overhead.
type Locked struct {
	mu  sync.Mutex
	rng Rand
}

// NewLocked returns a concurrency safe generator that continues the sequence
// of r from its current state.  r itself is not modified.
func NewLocked(r *Rand) *Locked {
	return &Locked{rng: *r}
}

// State returns the low and high halves of the current state.
func (l *Locked) State() (lo, hi uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.State()
}

// SetState sets the current state from its low and high halves.
func (l *Locked) SetState(lo, hi uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rng.SetState(lo, hi)
}

// Next32 returns the low 32 bits of Next64.
func (l *Locked) Next32() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.Next32()
}

// Next64 returns a uniform random uint64 from the precise step function.
func (l *Locked) Next64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.Next64()
}

// FastNext64 returns a uniform random uint64 from the fast step function.
func (l *Locked) FastNext64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.FastNext64()
}

// Uint32 is an alias for Next32.  It allows a Locked generator to serve as an
// EntropySource.
func (l *Locked) Uint32() uint32 {
	return l.Next32()
}

// Bounded returns a uniform random uint32 in the range [0,bound) without
// modulo bias.
func (l *Locked) Bounded(bound uint32) (uint32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.Bounded(bound)
}

// Range returns a uniform random int32 in the range [min,max) without modulo
// bias.
func (l *Locked) Range(min, max int32) (int32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.Range(min, max)
}

// Uint64N returns a uniform random uint64 in the range [0,n) without modulo
// bias.
func (l *Locked) Uint64N(n uint64) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.Uint64N(n)
}

// IntN returns a uniform random int in the range [0,n) without modulo bias.
func (l *Locked) IntN(n int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.IntN(n)
}

// Float64 returns a uniform random float64 in [0,1).
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.Float64()
}

// Bool returns a uniform random bool.
func (l *Locked) Bool() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.Bool()
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.  The swap function must not call back into l.
// Panics if n < 0.
func (l *Locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rng.Shuffle(n, swap)
}

// Read fills p with pseudorandom bytes.  It always returns len(p) and a nil
// error.
func (l *Locked) Read(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.Read(p)
}
