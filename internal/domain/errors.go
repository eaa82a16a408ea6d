package domain

import "errors"

// Error kinds returned by repositories and services. Callers match them
// with errors.Is; anything else is an unanticipated store failure and
// propagates as-is.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrExternalFailure = errors.New("external failure")
)
