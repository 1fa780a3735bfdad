// Package password implements composable password generation policies
// for parola.
//
// # Overview
//
// A password is assembled from character-class policies. Each policy
// produces a random fragment from a fixed alphabet at a fixed length;
// a Composite merges the fragments of its registered policies into a
// single password that contains at least one character from each
// policy's alphabet.
//
// # Policies
//
// Four character classes ship with the package:
//
//	digits, _ := password.NewDigit()       // 0123456789
//	symbols, _ := password.NewSymbol()     // -/.;#@%)*
//	upper, _ := password.NewUpperLetter()  // ABCDEFGHKLMNIOPRST
//	lower, _ := password.NewLowerLetter()  // abcdefghklmnioprst
//
// NewDigit and NewUpperLetter default to the process-wide default length;
// NewSymbol and NewLowerLetter default to a fixed length of 12. Any policy
// accepts an explicit length:
//
//	digits, err := password.NewDigit(password.WithLength(20))
//
// Policies are immutable once constructed.
//
// # Default length
//
// Policies built without WithLength read the process-wide default at
// construction time:
//
//	if err := password.SetDefaultLength(16); err != nil {
//	    // n < 1
//	}
//
// Changing the default never affects policies that already exist.
//
// # Composition
//
// A Composite owns an ordered set of policies and merges their fragments:
//
//	gen := password.NewComposite(digits, symbols, upper, lower)
//	pw, err := gen.Generate()
//
// The final password has length equal to the longest child length. Its
// last character per registered policy is sampled from that policy's
// fragment, so each class is represented at least once; the remaining
// positions are filled from the pooled fragment characters. Generate
// fails with ErrInsufficientLength when the final length does not exceed
// the number of registered policies.
//
// # Verification
//
// Requirements captures the class coverage a merged password must
// satisfy and checks it after the fact:
//
//	reqs := password.RequirementsFor(digits, symbols, upper, lower)
//	if err := reqs.Verify(pw); err != nil {
//	    if verr, ok := err.(*password.VerificationError); ok {
//	        switch verr.Code {
//	        case password.ErrCodeMissingClass:
//	            // a class alphabet is unrepresented
//	        case password.ErrCodeWrongLength:
//	            // length differs from the expected final length
//	        }
//	    }
//	}
//
// When two alphabets share characters, coverage means membership in the
// alphabet, not provenance from that policy's fragment.
package password
