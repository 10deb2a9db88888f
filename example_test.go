// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand_test

import (
	"errors"
	"fmt"

	"github.com/decred/wyrand"
)

// This example demonstrates creating a generator from a fixed seed and drawing
// bounded integers, floats and bools from it.
func Example_basicUsage() {
	r := wyrand.NewFromHalves(0x12345678, 0x87654321)

	roll, err := r.Range(1, 7)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("die roll:", roll)
	fmt.Printf("float: %.6f\n", r.Float64())
	fmt.Println("coin:", r.Bool())

	// Output:
	// die roll: 2
	// float: 0.566305
	// coin: false
}

// This example demonstrates saving the state of a generator and later
// resuming the exact same sequence from it.
func Example_saveAndRestore() {
	r := wyrand.New(42)
	r.Next64()

	snap := r.Snapshot()
	first := r.Next64()

	restored, err := wyrand.NewFromSnapshot(snap)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(restored.Next64() == first)

	// A snapshot must contain exactly two words.
	_, err = wyrand.NewFromSnapshot([]uint32{1, 2, 3})
	fmt.Println(errors.Is(err, wyrand.ErrInvalidSeedShape))

	// Output:
	// true
	// true
}

// This example demonstrates shuffling a copy of a slice and choosing a random
// element from it.
func Example_shuffleAndChoose() {
	r := wyrand.NewFromHalves(0x12345678, 0x87654321)
	deck := []string{"a", "b", "c", "d", "e"}

	pick, err := wyrand.Choose(r, deck)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("pick:", pick)

	shuffled := wyrand.Shuffled(r, deck)
	fmt.Println("original:", deck)
	fmt.Println("shuffled length:", len(shuffled))

	_, err = wyrand.Choose(r, []string{})
	fmt.Println(errors.Is(err, wyrand.ErrEmptyCollection))

	// Output:
	// pick: b
	// original: [a b c d e]
	// shuffled length: 5
	// true
}
