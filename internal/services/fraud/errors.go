package fraud

import "errors"

// Input errors, rejected before any state mutation.
var (
	ErrInvalidAmount  = errors.New("transaction amount must be positive")
	ErrMissingAccount = errors.New("missing account identifier")
	ErrInvalidAddress = errors.New("invalid network address")
)

// ErrInvalidConfig wraps configuration validation failures. These are
// fatal at startup and never surface per transaction.
var ErrInvalidConfig = errors.New("invalid fraud engine configuration")

// ErrProfileNotFound is returned for read access to an account that has
// never transacted. A missing profile is not an error on the scoring
// path, where it means first-observation initialization.
var ErrProfileNotFound = errors.New("account profile not found")
