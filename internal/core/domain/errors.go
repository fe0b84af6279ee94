package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Slide indices outside the deck are reported with it.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown slide type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidDocument indicates a presentation document that is not a
	// JSON slide array. Imports failing with it leave the deck unchanged.
	ErrInvalidDocument = errors.New("invalid presentation document")
)
