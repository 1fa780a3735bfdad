// Package randstr generates random strings drawn uniformly from a
// caller-supplied alphabet.
package randstr

import (
	"errors"
	"math/rand/v2"
	"strings"
)

// Input validation errors.
var (
	// ErrInvalidLength is returned when the requested length is less than 1.
	ErrInvalidLength = errors.New("randstr: length must be at least 1")

	// ErrEmptyAlphabet is returned when the alphabet contains no characters.
	ErrEmptyAlphabet = errors.New("randstr: alphabet must not be empty")
)

// Generate returns a string of exactly length characters, each drawn
// independently and uniformly at random from alphabet.
// Duplicate characters in the alphabet weight the distribution; they are
// not removed. The alphabet is treated as a sequence of runes.
func Generate(length int, alphabet string) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}

	chars := []rune(alphabet)

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteRune(chars[rand.IntN(len(chars))])
	}

	return b.String(), nil
}
