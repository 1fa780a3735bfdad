// Package main provides the generate command for the parola CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KilimcininKorOglu/parola/internal/logging"
	"github.com/KilimcininKorOglu/parola/internal/password"
)

// generateCmd handles the generate command.
func generateCmd(args []string) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	length := fs.Int("length", 0, "Default fragment length for classes without a fixed one (0 = keep current default)")
	noDigits := fs.Bool("no-digits", false, "Exclude the digit class")
	noSymbols := fs.Bool("no-symbols", false, "Exclude the symbol class")
	noUpper := fs.Bool("no-upper", false, "Exclude the uppercase letter class")
	noLower := fs.Bool("no-lower", false, "Exclude the lowercase letter class")
	check := fs.Bool("check", false, "Verify class coverage of the generated password")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "text", "Log format: text, json")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printGenerateUsage(os.Stdout)
		return 0
	}

	logger := logging.New(logging.Config{
		Level:  *logLevel,
		Format: *logFormat,
		Output: "stderr",
	}).WithFields("command", "generate")

	if *length != 0 {
		if err := password.SetDefaultLength(*length); err != nil {
			fmt.Fprintf(os.Stderr, "generate: %v\n", err)
			return 1
		}
		logger.Debug("default length set", "length", *length)
	}

	policies, err := buildPolicies(!*noDigits, !*noSymbols, !*noUpper, !*noLower)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		return 1
	}
	if len(policies) == 0 {
		fmt.Fprintln(os.Stderr, "generate: at least one character class is required")
		return 1
	}

	gen := password.NewComposite(policies...)
	logger.Debug("composite assembled", "policies", len(policies), "length", gen.Length())

	pw, err := gen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		return 1
	}

	if *check {
		if err := password.RequirementsFor(policies...).Verify(pw); err != nil {
			fmt.Fprintf(os.Stderr, "generate: verification failed: %v\n", err)
			return 1
		}
		logger.Debug("verification passed", "classes", len(policies))
	}

	fmt.Println(pw)
	return 0
}

// buildPolicies constructs the selected character-class policies in the
// canonical order: digits, symbols, uppercase, lowercase.
func buildPolicies(digits, symbols, upper, lower bool) ([]password.Policy, error) {
	classes := []struct {
		enabled   bool
		construct func(opts ...password.Option) (*password.BasicPolicy, error)
	}{
		{digits, password.NewDigit},
		{symbols, password.NewSymbol},
		{upper, password.NewUpperLetter},
		{lower, password.NewLowerLetter},
	}

	var policies []password.Policy
	for _, c := range classes {
		if !c.enabled {
			continue
		}
		p, err := c.construct()
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}

	return policies, nil
}
