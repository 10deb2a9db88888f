// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidSeedShape indicates a state snapshot or encoded state does
	// not have the expected number of components.
	ErrInvalidSeedShape = ErrorKind("ErrInvalidSeedShape")

	// ErrInvalidRange indicates a bounded draw was requested over an empty
	// range, such as a zero bound or a maximum that does not exceed the
	// minimum.
	ErrInvalidRange = ErrorKind("ErrInvalidRange")

	// ErrEmptyCollection indicates an element was requested from an empty
	// collection.
	ErrEmptyCollection = ErrorKind("ErrEmptyCollection")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to seeding or sampling.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
