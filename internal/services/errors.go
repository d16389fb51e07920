package services

import "errors"

var (
	// Authentication outcomes, all pre-request: the caller never reaches a
	// handler with any of these pending.
	ErrAuthMalformed   = errors.New("authorization header is missing or malformed")
	ErrAuthRejected    = errors.New("credential rejected")
	ErrAuthIncomplete  = errors.New("credential verified but carries no subject")
	ErrAuthUnavailable = errors.New("identity provider unavailable")

	// ErrValidation wraps a field-level message describing what was wrong
	// with the input. Nothing is persisted when it is returned.
	ErrValidation = errors.New("validation failed")

	ErrPlanNotFound    = errors.New("plan not found")
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotOwner marks an attempt to touch another user's session. The API
	// layer collapses it to the same response as a missing session so ids
	// cannot be probed.
	ErrNotOwner = errors.New("session belongs to another user")
)
