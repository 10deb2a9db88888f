// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

import "math/rand"

// source adapts a Rand to the math/rand Source64 interface.
type source struct {
	r *Rand
}

// Source64 returns a math/rand Source64 driven by the precise step function of
// r, so that r can back a *rand.Rand.  The returned source shares state with r.
// Like r, it is not safe for concurrent access.
func Source64(r *Rand) rand.Source64 {
	return source{r: r}
}

// Int63 returns a non-negative pseudorandom 63-bit integer.
func (s source) Int63() int64 {
	return int64(s.r.Next64() & 0x7FFFFFFF_FFFFFFFF)
}

// Uint64 returns a pseudorandom 64-bit value.
func (s source) Uint64() uint64 {
	return s.r.Next64()
}

// Seed resets the underlying generator to the provided seed.
func (s source) Seed(seed int64) {
	s.r.Seed(uint64(seed))
}
