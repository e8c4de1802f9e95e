// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidInput is returned when a caller supplies an argument outside
	// the documented range, e.g. a review quality outside [0,5]. This is a
	// caller bug, never a transient condition, and must not be retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidActivityType is returned when an activity outcome carries an
	// unknown activity type.
	ErrInvalidActivityType = errors.New("invalid activity type")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
