// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

// Choose returns a uniformly chosen element of items.  ErrEmptyCollection is
// returned and the generator is not advanced when items is empty.
func Choose[T any](r *Rand, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, makeError(ErrEmptyCollection, "cannot choose from an "+
			"empty collection")
	}
	if uint64(len(items)) > maxUint32 {
		return items[r.uint64n(uint64(len(items)))], nil
	}
	return items[r.bounded(uint32(len(items)))], nil
}

// Shuffled returns a copy of items in a uniformly random order.  The passed
// slice is not modified.
func Shuffled[T any](r *Rand, items []T) []T {
	result := make([]T, len(items))
	copy(result, items)
	r.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}
