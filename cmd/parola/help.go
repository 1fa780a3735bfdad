package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `parola - Composable random password generator

Usage:
  parola <command> [options]

Commands:
  generate    Generate a password from character-class policies
  version     Show version information

Use "parola <command> -h" for more information about a command.
`)
}

// printGenerateUsage prints the generate command usage.
func printGenerateUsage(w io.Writer) {
	fmt.Fprint(w, `Generate a password from character-class policies

The password length is the longest class fragment length. Digit and
uppercase classes use the default length; symbol and lowercase classes
use a fixed length of 12. Each selected class is represented by at
least one character.

Usage:
  parola generate [options]

Options:
  -length int
        Default fragment length for classes without a fixed one
        (0 = keep current default of 10)
  -no-digits
        Exclude the digit class
  -no-symbols
        Exclude the symbol class
  -no-upper
        Exclude the uppercase letter class
  -no-lower
        Exclude the lowercase letter class
  -check
        Verify class coverage of the generated password
  -log-level string
        Log level: debug, info, warn, error (default "warn")
  -log-format string
        Log format: text, json (default "text")
  -h, -help
        Show this help message
`)
}

// printVersionUsage prints the version command usage.
func printVersionUsage(w io.Writer) {
	fmt.Fprint(w, `Show version information

Usage:
  parola version [options]

Options:
  -short
        Show only version number
  -h, -help
        Show this help message
`)
}
