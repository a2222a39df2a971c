package domain

import "errors"

// Error taxonomy for the store. Absence of a document is never an error;
// it is signaled through zero counts and nil results.
var (
	// ErrInvalidArgument marks a call missing a required id or carrying a
	// conflicting one.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStorageIO marks an unreadable, unwritable, or undecodable
	// collection file. An I/O failure is never downgraded to an empty
	// result.
	ErrStorageIO = errors.New("storage i/o failure")
)
