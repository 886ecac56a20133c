package services

import "errors"

// Validation errors raised before any network call. The store is never
// mutated when one of these is returned.
var (
	ErrFieldRequired    = errors.New("field required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

// MinPasswordLen is the minimum accepted password length for signup and
// password reset.
const MinPasswordLen = 6
