package common

import "github.com/go-errors/errors"

// Error kinds shared by the prime search and key derivation. Match them with errors.Is.
var (
	ErrRandomSource         = errors.New("secure random source unavailable")
	ErrInvariantViolation   = errors.New("internal invariant violated")
	ErrSearchExhausted      = errors.New("search exhausted")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// RandomSourceError attaches the read failure cause to ErrRandomSource.
func RandomSourceError(cause error) error {
	return errors.Errorf("%w: %v", ErrRandomSource, cause)
}
