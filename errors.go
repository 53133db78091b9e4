package paillier

import "github.com/privacybydesign/paillier/internal/common"

// Error kinds returned by Finalize and Derive. Use errors.Is to test for them.
var (
	// ErrRandomSource means the random source could not be read. No key material
	// is returned alongside it.
	ErrRandomSource = common.ErrRandomSource
	// ErrInvariantViolation means a value that must exist by construction, such as
	// mu, could not be computed, or a key pair failed validation.
	ErrInvariantViolation = common.ErrInvariantViolation
	// ErrSearchExhausted is only returned when an attempt limit is configured.
	ErrSearchExhausted = common.ErrSearchExhausted
	// ErrInvalidConfiguration is returned for parameters no key can be generated from.
	ErrInvalidConfiguration = common.ErrInvalidConfiguration
)
