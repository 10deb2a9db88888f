// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/dcrd/crypto/rand"
)

// EntropySource is the interface that provides seed material to
// NewFromEntropy.  Implementations are required to never fail.
//
// *Rand implements EntropySource, so an existing generator may seed new ones.
type EntropySource interface {
	Uint32() uint32
}

// EntropyFunc is an adapter to allow the use of an ordinary function as an
// EntropySource.
type EntropyFunc func() uint32

// Uint32 calls f().
func (f EntropyFunc) Uint32() uint32 {
	return f()
}

// cryptoSource draws seed material from the dcrd userspace CSPRNG.
type cryptoSource struct{}

func (cryptoSource) Uint32() uint32 {
	return rand.Uint32()
}

// CryptoSource returns an EntropySource backed by the default dcrd CSPRNG.  It
// is safe for concurrent access.
func CryptoSource() EntropySource {
	return cryptoSource{}
}

// readerSource draws seed material from an io.Reader.
type readerSource struct {
	r io.Reader
}

func (s readerSource) Uint32() uint32 {
	var b [4]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		panic(fmt.Errorf("wyrand: read of entropy source errored: %w", err))
	}
	return binary.LittleEndian.Uint32(b[:])
}

// ReaderSource returns an EntropySource that reads 4 bytes from r, interpreted
// as a little-endian uint32, for each value it produces.  The reader is
// required to never error; any errors reading it will result in a panic.
func ReaderSource(r io.Reader) EntropySource {
	return readerSource{r: r}
}

// NewFromEntropy returns a generator seeded with two 32-bit values drawn from
// src, the low half first.
//
// The generator is exactly as predictable as the source.  Seeding from a weak
// source yields a weak seed.
func NewFromEntropy(src EntropySource) *Rand {
	lo := src.Uint32()
	hi := src.Uint32()
	r := NewFromHalves(lo, hi)
	log.Debugf("Seeded generator from %T", src)
	log.Tracef("Initial state: lo=0x%08x hi=0x%08x", lo, hi)
	return r
}

// NewRandom returns a generator seeded from CryptoSource.
func NewRandom() *Rand {
	return NewFromEntropy(CryptoSource())
}

// DeriveSeed maps arbitrary seed material, such as a human-readable phrase, to
// a 64-bit seed.  The seed is the first 8 bytes, read as little endian, of the
// BLAKE-256 digest of the material.
func DeriveSeed(material []byte) uint64 {
	digest := blake256.Sum256(material)
	return binary.LittleEndian.Uint64(digest[:8])
}
