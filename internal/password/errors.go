// Package password implements composable password generation policies
// for parola.
package password

import "errors"

// Configuration and generation errors.
var (
	// ErrInvalidLength is returned when a length setting is less than 1,
	// either for the process-wide default or an explicit policy length.
	ErrInvalidLength = errors.New("password: length must be at least 1")

	// ErrEmptyAlphabet is returned when a policy is constructed over an
	// empty alphabet.
	ErrEmptyAlphabet = errors.New("password: alphabet must not be empty")

	// ErrInsufficientLength is returned by Composite.Generate when the
	// final password length does not exceed the number of registered
	// policies, leaving no room for one guaranteed character per policy.
	ErrInsufficientLength = errors.New("password: too short to hold one character per policy")
)
