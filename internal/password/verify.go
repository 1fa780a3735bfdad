// Package password implements composable password generation policies
// for parola.
package password

import (
	"fmt"
	"strings"
)

// VerificationError represents a password verification failure.
type VerificationError struct {
	Code    VerificationErrorCode
	Message string
}

// Error implements the error interface.
func (e *VerificationError) Error() string {
	return e.Message
}

// VerificationErrorCode represents specific verification failure types.
type VerificationErrorCode int

const (
	// ErrCodeWrongLength indicates the password length differs from the
	// expected final length.
	ErrCodeWrongLength VerificationErrorCode = iota + 1

	// ErrCodeMissingClass indicates no character from a required
	// alphabet is present.
	ErrCodeMissingClass
)

// Requirements captures the class coverage a merged password must
// satisfy: an exact final length and at least one character from each
// registered alphabet.
type Requirements struct {
	length    int
	alphabets []string
}

// RequirementsFor derives Requirements from a set of policies. The
// expected length is the maximum of the policies' lengths, matching
// what a Composite over the same policies would produce.
func RequirementsFor(policies ...Policy) *Requirements {
	r := &Requirements{}
	for _, p := range policies {
		if l := p.Length(); l > r.length {
			r.length = l
		}
		r.alphabets = append(r.alphabets, p.AllowedChars())
	}
	return r
}

// Length returns the expected final password length.
func (r *Requirements) Length() int {
	return r.length
}

// Verify checks a password against the requirements.
// Returns nil when the password has exactly the expected length and
// contains at least one character from every registered alphabet, or a
// VerificationError describing the first failure.
//
// When alphabets overlap, a single character can satisfy more than one
// class; membership is checked per alphabet, not provenance.
func (r *Requirements) Verify(password string) error {
	if n := len([]rune(password)); n != r.length {
		return &VerificationError{
			Code:    ErrCodeWrongLength,
			Message: fmt.Sprintf("password has %d characters, expected %d", n, r.length),
		}
	}

	for _, alphabet := range r.alphabets {
		if !strings.ContainsAny(password, alphabet) {
			return &VerificationError{
				Code:    ErrCodeMissingClass,
				Message: fmt.Sprintf("password has no character from alphabet %q", alphabet),
			}
		}
	}

	return nil
}
