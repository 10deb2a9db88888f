// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wyrand implements the WyRand pseudorandom number generator along with
uniform integers, floats, bools, element choice and shuffling built on top of
it.

WyRand is fast, seedable and fully deterministic: generators created with the
same seed produce the same values for the same sequence of calls.  It is NOT a
cryptographically secure generator and must not be used where unpredictability
matters.  Use github.com/decred/dcrd/crypto/rand for those cases.

# Step Functions

Every value is derived from one of two step functions.  Both add a fixed odd
constant to the 64-bit state and multiply the result by a mixed copy of
itself:

  - Next64 folds the exact 128-bit product by xoring its halves
  - FastNext64 folds the four 32-bit partial products by xor without carry
    propagation

The two produce different sequences for the same seed.  Next32, Float64,
Uint64N, IntN and Read consume Next64.  Bounded, Range, Bool, Choose, Shuffle
and Shuffled consume FastNext64.

# Seeding

Generators are created from a 64-bit seed with New, from two 32-bit halves
with NewFromHalves, from a state snapshot with NewFromSnapshot, or from an
EntropySource with NewFromEntropy.  NewRandom seeds from the dcrd userspace
CSPRNG.  The state may be saved and restored with State/SetState,
Snapshot/Restore or MarshalBinary/UnmarshalBinary, and restoring a saved state
resumes the exact same sequence.

# Errors

Operations that can fail return an error which may be checked against the
ErrorKind constants with errors.Is.  A failed call never advances the
generator.

# Concurrency

Rand is not safe for concurrent access.  Locked wraps a generator with a mutex
for the cases where one stream must be shared.
*/
package wyrand
