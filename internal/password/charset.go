// Package password implements composable password generation policies
// for parola.
package password

import "strings"

// Fixed class alphabets. The letter sets are an 18-character subset that
// leaves out lookalike letters; treat them as example data.
const (
	// Digits is the alphabet used by digit policies.
	Digits = "0123456789"

	// Symbols is the alphabet used by symbol policies.
	Symbols = "-/.;#@%)*"

	// UpperLetters is the alphabet used by uppercase letter policies.
	UpperLetters = "ABCDEFGHKLMNIOPRST"

	// LowerLetters is the alphabet used by lowercase letter policies.
	LowerLetters = "abcdefghklmnioprst"
)

// fixedDefaultLength is the construction default for symbol and lowercase
// policies. These two classes do not defer to the process-wide default.
const fixedDefaultLength = 12

// NewDigit returns a digit-class policy. The length defaults to the
// process-wide default length.
func NewDigit(opts ...Option) (*BasicPolicy, error) {
	return NewBasic(Digits, opts...)
}

// NewSymbol returns a symbol-class policy. The length defaults to 12
// regardless of the process-wide default.
func NewSymbol(opts ...Option) (*BasicPolicy, error) {
	return NewBasic(Symbols, append([]Option{WithLength(fixedDefaultLength)}, opts...)...)
}

// NewUpperLetter returns an uppercase-letter policy. The length defaults
// to the process-wide default length.
func NewUpperLetter(opts ...Option) (*BasicPolicy, error) {
	return NewBasic(UpperLetters, opts...)
}

// NewLowerLetter returns a lowercase-letter policy. The length defaults
// to 12 regardless of the process-wide default.
func NewLowerLetter(opts ...Option) (*BasicPolicy, error) {
	return NewBasic(LowerLetters, append([]Option{WithLength(fixedDefaultLength)}, opts...)...)
}

// Union concatenates alphabets with duplicate characters removed,
// preserving first-occurrence order.
func Union(alphabets ...string) string {
	var b strings.Builder
	seen := make(map[rune]bool)

	for _, alphabet := range alphabets {
		for _, r := range alphabet {
			if seen[r] {
				continue
			}
			seen[r] = true
			b.WriteRune(r)
		}
	}

	return b.String()
}
