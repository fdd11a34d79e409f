package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown dataset kind or option value.
	ErrUnsupportedType = errors.New("unsupported type")

	// Backend Errors.

	// ErrBackendUnavailable indicates the FIR backend could not be reached
	// or rejected the request.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrDocumentMissing indicates the backend has no document for a record.
	ErrDocumentMissing = errors.New("document not available")

	// Assistant Errors.

	// ErrInvalidTransition indicates an event that is not valid in the
	// assistant's current state.
	ErrInvalidTransition = errors.New("invalid transition")
)
