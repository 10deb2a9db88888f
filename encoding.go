// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

import (
	"encoding/binary"
	"fmt"
)

// encodedStateLen is the length of the binary encoding of a Rand.
const encodedStateLen = 8

// MarshalBinary implements encoding.BinaryMarshaler.  The encoding is the low
// half of the state followed by the high half, each as a little-endian uint32.
// It never returns an error.
func (r *Rand) MarshalBinary() ([]byte, error) {
	lo, hi := r.State()
	b := make([]byte, encodedStateLen)
	binary.LittleEndian.PutUint32(b[0:4], lo)
	binary.LittleEndian.PutUint32(b[4:8], hi)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.  ErrInvalidSeedShape
// is returned and the state is left unchanged when data is not exactly 8 bytes.
func (r *Rand) UnmarshalBinary(data []byte) error {
	if len(data) != encodedStateLen {
		str := fmt.Sprintf("encoded state is %d bytes instead of %d",
			len(data), encodedStateLen)
		return makeError(ErrInvalidSeedShape, str)
	}
	lo := binary.LittleEndian.Uint32(data[0:4])
	hi := binary.LittleEndian.Uint32(data[4:8])
	r.SetState(lo, hi)
	return nil
}
