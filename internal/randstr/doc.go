// Package randstr generates random strings drawn uniformly from a
// caller-supplied alphabet.
//
// # Overview
//
// The randstr package is the primitive underneath all password policies
// in parola: given a length and an alphabet, it produces a string of
// exactly that length where every character is chosen independently and
// uniformly at random from the alphabet.
//
//	s, err := randstr.Generate(16, "0123456789")
//	if err != nil {
//	    // length < 1 or empty alphabet
//	}
//
// # Randomness
//
// Generation uses the automatically seeded, process-global source from
// math/rand/v2, which is safe for concurrent use and produces different
// output across process runs. The output is suitable for generated
// passwords but carries no cryptographic guarantee.
//
// # Alphabets
//
// Alphabets are plain strings; duplicate characters are permitted and
// weight the distribution toward the repeated character. Alphabets are
// interpreted as sequences of runes, so multi-byte characters are drawn
// as whole characters.
package randstr
