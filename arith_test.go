// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

import (
	"testing"

	"github.com/decred/dcrd/math/uint256"
)

// TestAdd64 ensures 64-bit addition wraps modulo 2^64.
func TestAdd64(t *testing.T) {
	tests := []struct {
		name string // test description
		a, b uint64 // operands
		want uint64 // expected sum
	}{{
		name: "zero",
		a:    0,
		b:    0,
		want: 0,
	}, {
		name: "no overflow",
		a:    0x12345678,
		b:    0x87654321,
		want: 0x99999999,
	}, {
		name: "carry into high half",
		a:    0xffffffff,
		b:    1,
		want: 0x100000000,
	}, {
		name: "max plus one wraps to zero",
		a:    0xffffffffffffffff,
		b:    1,
		want: 0,
	}, {
		name: "max plus max",
		a:    0xffffffffffffffff,
		b:    0xffffffffffffffff,
		want: 0xfffffffffffffffe,
	}, {
		name: "increment wraps",
		a:    0x8000000000000000,
		b:    increment,
		want: 0x20761d6478bd642f,
	}}

	for _, test := range tests {
		got := Add64(test.a, test.b)
		if got != test.want {
			t.Errorf("%q: unexpected sum -- got %#x, want %#x", test.name,
				got, test.want)
		}
	}
}

// oracleMul64 returns the 128-bit product of a and b computed with 256-bit
// integer arithmetic.
func oracleMul64(a, b uint64) (lo, hi uint64) {
	prod := new(uint256.Uint256).SetUint64(a)
	prod.Mul(new(uint256.Uint256).SetUint64(b))
	hi = new(uint256.Uint256).RshVal(prod, 64).Uint64()
	return prod.Uint64(), hi
}

// TestWideMul64 ensures both the native and limb based widening multiplies
// produce the exact 128-bit product for a set of known vectors.
func TestWideMul64(t *testing.T) {
	tests := []struct {
		name   string // test description
		a, b   uint64 // operands
		lo, hi uint64 // expected product halves
	}{{
		name: "zero",
		a:    0,
		b:    0xffffffffffffffff,
		lo:   0,
		hi:   0,
	}, {
		name: "small",
		a:    2,
		b:    3,
		lo:   6,
		hi:   0,
	}, {
		name: "max 32-bit squared stays in low word",
		a:    0xffffffff,
		b:    0xffffffff,
		lo:   0xfffffffe00000001,
		hi:   0,
	}, {
		name: "one operand just past 32 bits",
		a:    0xffffffff,
		b:    0x100000000,
		lo:   0xffffffff00000000,
		hi:   0,
	}, {
		name: "2^32 squared",
		a:    0x100000000,
		b:    0x100000000,
		lo:   0,
		hi:   1,
	}, {
		name: "max times two",
		a:    0xffffffffffffffff,
		b:    2,
		lo:   0xfffffffffffffffe,
		hi:   1,
	}, {
		name: "max squared",
		a:    0xffffffffffffffff,
		b:    0xffffffffffffffff,
		lo:   0x0000000000000001,
		hi:   0xfffffffffffffffe,
	}, {
		name: "mixed digits",
		a:    0x123456789abcdef0,
		b:    0x0fedcba987654321,
		lo:   0x2236d88fe5618cf0,
		hi:   0x0121fa00ad77d742,
	}, {
		name: "algorithm constants",
		a:    increment,
		b:    mixer,
		lo:   0x8f3907f7b2b80c35,
		hi:   0x90ccc56588c08119,
	}}

	for _, test := range tests {
		lo, hi := WideMul64(test.a, test.b)
		if lo != test.lo || hi != test.hi {
			t.Errorf("%q: unexpected native product -- got (%#x, %#x), "+
				"want (%#x, %#x)", test.name, lo, hi, test.lo, test.hi)
			continue
		}

		lo, hi = mul64Limbs(test.a, test.b)
		if lo != test.lo || hi != test.hi {
			t.Errorf("%q: unexpected limb product -- got (%#x, %#x), "+
				"want (%#x, %#x)", test.name, lo, hi, test.lo, test.hi)
			continue
		}

		lo, hi = oracleMul64(test.a, test.b)
		if lo != test.lo || hi != test.hi {
			t.Errorf("%q: bad test vector -- oracle got (%#x, %#x), "+
				"want (%#x, %#x)", test.name, lo, hi, test.lo, test.hi)
			continue
		}
	}
}

// TestWideMul64Agreement ensures the native and limb based widening multiplies
// agree with each other and with an independent 256-bit implementation over a
// large number of pseudorandom operands, including operands restricted to 32
// bits to exercise the single digit fast path.
func TestWideMul64Agreement(t *testing.T) {
	r := New(0x4d595df4d0f33173)
	const numIterations = 20000
	for i := 0; i < numIterations; i++ {
		a, b := r.Next64(), r.Next64()
		switch i % 4 {
		case 1:
			a &= maxUint32
		case 2:
			b &= maxUint32
		case 3:
			a, b = a&maxUint32, b&maxUint32
		}

		wantLo, wantHi := oracleMul64(a, b)
		lo, hi := WideMul64(a, b)
		if lo != wantLo || hi != wantHi {
			t.Fatalf("native product of %#x and %#x -- got (%#x, %#x), "+
				"want (%#x, %#x)", a, b, lo, hi, wantLo, wantHi)
		}
		lo, hi = mul64Limbs(a, b)
		if lo != wantLo || hi != wantHi {
			t.Fatalf("limb product of %#x and %#x -- got (%#x, %#x), "+
				"want (%#x, %#x)", a, b, lo, hi, wantLo, wantHi)
		}
	}
}

// TestFastMixFold ensures the fast step function folds the limb products
// exactly as documented and differs from the precise step function.
func TestFastMixFold(t *testing.T) {
	states := []uint64{0, 1, increment, 0x8765432112345678,
		0xffffffffffffffff}
	for _, state := range states {
		m := state ^ mixer
		a0, a1 := state&maxUint32, state>>32
		b0, b1 := m&maxUint32, m>>32
		ll, lh, hl, hh := a0*b0, a0*b1, a1*b0, a1*b1

		// Low half: low of hh and ll, high of the cross products.  High
		// half: the opposite.
		wantLo := uint32(hh) ^ uint32(hl>>32) ^ uint32(lh>>32) ^ uint32(ll)
		wantHi := uint32(hh>>32) ^ uint32(hl) ^ uint32(lh) ^ uint32(ll>>32)
		want := uint64(wantHi)<<32 | uint64(wantLo)
		if got := fastMix(state); got != want {
			t.Errorf("state %#x: unexpected fast output -- got %#x, want %#x",
				state, got, want)
		}

		lo, hi := oracleMul64(state, m)
		if got := mix(state); got != lo^hi {
			t.Errorf("state %#x: unexpected precise output -- got %#x, "+
				"want %#x", state, got, lo^hi)
		}
	}
}
