package domain

import "errors"

var (
	// ErrNotFound reports a referenced id that is absent from the snapshot or store.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument reports empty or malformed input such as a blank title.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPersistence wraps failures surfaced by a storage collaborator.
	ErrPersistence = errors.New("persistence failure")
)
