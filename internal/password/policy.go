// Package password implements composable password generation policies
// for parola.
package password

import "github.com/KilimcininKorOglu/parola/internal/randstr"

// Policy is a single character-class rule. It produces one random
// fragment per Generate call, drawn from a fixed alphabet at a fixed
// length. Leaf policies carry no Add operation; only Composite
// aggregates other policies.
type Policy interface {
	// Generate returns a fresh random string of Length() characters,
	// each drawn from AllowedChars().
	Generate() (string, error)

	// AllowedChars returns the fixed character set for this policy.
	AllowedChars() string

	// Length returns the fixed target length for this policy.
	Length() int
}

// Option configures a policy at construction time.
type Option func(*settings)

// settings collects construction-time values before validation.
type settings struct {
	length int
}

// WithLength sets an explicit fragment length, overriding the policy's
// default. The length is validated by the constructor; values below 1
// cause construction to fail with ErrInvalidLength.
func WithLength(n int) Option {
	return func(s *settings) {
		s.length = n
	}
}

// BasicPolicy is a leaf policy with a fixed alphabet and length.
// It is immutable after construction and safe for concurrent use.
type BasicPolicy struct {
	alphabet string
	length   int
}

// NewBasic constructs a leaf policy over the given alphabet.
// The length defaults to the process-wide default (see SetDefaultLength)
// unless overridden with WithLength.
func NewBasic(alphabet string, opts ...Option) (*BasicPolicy, error) {
	s := settings{length: DefaultLength()}
	for _, opt := range opts {
		opt(&s)
	}

	if s.length < 1 {
		return nil, ErrInvalidLength
	}
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}

	return &BasicPolicy{
		alphabet: alphabet,
		length:   s.length,
	}, nil
}

// Generate returns a fresh random fragment for this policy.
func (p *BasicPolicy) Generate() (string, error) {
	return randstr.Generate(p.length, p.alphabet)
}

// AllowedChars returns the policy's fixed alphabet.
func (p *BasicPolicy) AllowedChars() string {
	return p.alphabet
}

// Length returns the policy's fixed fragment length.
func (p *BasicPolicy) Length() int {
	return p.length
}
