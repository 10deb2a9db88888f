// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
//
// Uniform random algorithms modified from the Go math/rand/v2 package with
// the following license:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package wyrand

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
)

// float53Scale is 2^-53 assembled from its IEEE-754 representation: a zero
// sign, a biased exponent of 1023-53, and an empty mantissa.
var float53Scale = math.Float64frombits(uint64(1023-53) << 52)

// Bounded returns a uniform random uint32 in the range [0,bound) without
// modulo bias.  ErrInvalidRange is returned and the generator is not advanced
// when bound is zero.
//
// Candidates are the low 32 bits of FastNext64, so the sequence consumed is
// the fast one.
func (r *Rand) Bounded(bound uint32) (uint32, error) {
	if bound == 0 {
		return 0, makeError(ErrInvalidRange, "bound must be nonzero")
	}
	return r.bounded(bound), nil
}

// bounded implements Bounded for a known nonzero bound.
func (r *Rand) bounded(n uint32) uint32 {
	// Treat the 64-bit product x*n as the fixed point value x*(n/2^32).  The
	// high half is the candidate result and the low half the fractional
	// part.  The candidates for which the fractional part is below
	// 2^32 mod n are exactly the surplus that would bias the result, so
	// they are rejected.  Since 2^32 mod n < n, the modulo is only needed
	// when the fractional part is already below n.
	//
	// See also:
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
	// https://lemire.me/blog/2016/06/30/fast-random-shuffling
	hi, lo := bits.Mul32(r.FastNext32(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul32(r.FastNext32(), n)
		}
	}
	return hi
}

// Range returns a uniform random int32 in the range [min,max) without modulo
// bias.  ErrInvalidRange is returned and the generator is not advanced when
// max <= min.
func (r *Rand) Range(min, max int32) (int32, error) {
	if max <= min {
		str := fmt.Sprintf("range maximum %d does not exceed minimum %d", max,
			min)
		return 0, makeError(ErrInvalidRange, str)
	}

	// The span of any nonempty int32 range fits in a uint32 and the
	// addition back to min wraps into the range.
	span := uint32(max) - uint32(min)
	return min + int32(r.bounded(span)), nil
}

// Uint64N returns a uniform random uint64 in the range [0,n) without modulo
// bias.  Candidates are drawn from Next64.  ErrInvalidRange is returned and the
// generator is not advanced when n is zero.
func (r *Rand) Uint64N(n uint64) (uint64, error) {
	if n == 0 {
		return 0, makeError(ErrInvalidRange, "bound must be nonzero")
	}
	return r.uint64n(n), nil
}

// uint64n implements Uint64N for a known nonzero n.
func (r *Rand) uint64n(n uint64) uint64 {
	if n&(n-1) == 0 { // n is power of two, can mask
		return r.Next64() & (n - 1)
	}

	// This is the 64-bit analog of bounded.  The threshold requires a 64-bit
	// division, which is again avoided unless lo < n.
	hi, lo := bits.Mul64(r.Next64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.Next64(), n)
		}
	}
	return hi
}

// IntN returns, as an int, a uniform random non-negative integer in the range
// [0,n) without modulo bias.  ErrInvalidRange is returned and the generator is
// not advanced when n <= 0.
func (r *Rand) IntN(n int) (int, error) {
	if n <= 0 {
		str := fmt.Sprintf("bound %d is not positive", n)
		return 0, makeError(ErrInvalidRange, str)
	}
	return int(r.uint64n(uint64(n))), nil
}

// Float64 returns a uniform random float64 in the half-open interval [0,1).
//
// The top 53 bits of Next64 form the mantissa of the result, so every value
// is a multiple of 2^-53 and the conversion is exact.
func (r *Rand) Float64() float64 {
	return float64(r.Next64()>>11) * float53Scale
}

// Bool returns a uniform random bool taken from the lowest bit of FastNext64.
func (r *Rand) Bool() bool {
	return r.FastNext64()&1 == 1
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("wyrand: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle walking forward: position i is swapped with a
	// uniformly chosen position in [i,n).  The final position still draws
	// once so the number of values consumed is always n.
	// https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	for i := 0; i < n; i++ {
		remaining := n - i
		var j int
		if uint64(remaining) <= maxUint32 {
			j = i + int(r.bounded(uint32(remaining)))
		} else {
			j = i + int(r.uint64n(uint64(remaining)))
		}
		swap(i, j)
	}
}

// Read fills p with pseudorandom bytes taken from successive Next64 outputs in
// little-endian order.  Any unused bytes of the final output are discarded.
// It always returns len(p) and a nil error.
func (r *Rand) Read(p []byte) (n int, err error) {
	n = len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.Next64())
		p = p[8:]
	}
	if len(p) > 0 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], r.Next64())
		copy(p, b[:])
	}
	return n, nil
}
