package main

import (
	"strings"
	"testing"

	"github.com/KilimcininKorOglu/parola/internal/password"
)

// resetDefaultLength restores the process-wide default after tests that
// run generateCmd with -length.
func resetDefaultLength(t *testing.T) {
	t.Helper()

	prev := password.DefaultLength()
	t.Cleanup(func() {
		if err := password.SetDefaultLength(prev); err != nil {
			t.Fatalf("failed to restore default length: %v", err)
		}
	})
}

func TestGenerateCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"defaults", []string{}, 0},
		{"explicit length", []string{"-length", "16"}, 0},
		{"with check", []string{"-length", "16", "-check"}, 0},
		{"digits only", []string{"-no-symbols", "-no-upper", "-no-lower", "-length", "16"}, 0},
		{"help short", []string{"-h"}, 0},
		{"help long", []string{"-help"}, 0},
		{"invalid length", []string{"-length", "-3"}, 1},
		{"no classes", []string{"-no-digits", "-no-symbols", "-no-upper", "-no-lower"}, 1},
		{"too short for classes", []string{"-no-symbols", "-no-lower", "-length", "2"}, 1},
		{"bad flag", []string{"-bogus"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetDefaultLength(t)

			exitCode := generateCmd(tt.args)
			if exitCode != tt.wantCode {
				t.Errorf("generateCmd(%v) = %d, want %d", tt.args, exitCode, tt.wantCode)
			}
		})
	}
}

func TestBuildPolicies(t *testing.T) {
	tests := []struct {
		name                          string
		digits, symbols, upper, lower bool
		wantCount                     int
		wantFirstAlphabet             string
	}{
		{"all classes", true, true, true, true, 4, password.Digits},
		{"no digits", false, true, true, true, 3, password.Symbols},
		{"letters only", false, false, true, true, 2, password.UpperLetters},
		{"none", false, false, false, false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policies, err := buildPolicies(tt.digits, tt.symbols, tt.upper, tt.lower)
			if err != nil {
				t.Fatalf("buildPolicies failed: %v", err)
			}

			if len(policies) != tt.wantCount {
				t.Fatalf("expected %d policies, got %d", tt.wantCount, len(policies))
			}

			if tt.wantCount > 0 && policies[0].AllowedChars() != tt.wantFirstAlphabet {
				t.Errorf("expected first alphabet %q, got %q",
					tt.wantFirstAlphabet, policies[0].AllowedChars())
			}
		})
	}
}

func TestBuildPolicies_Order(t *testing.T) {
	policies, err := buildPolicies(true, true, true, true)
	if err != nil {
		t.Fatalf("buildPolicies failed: %v", err)
	}

	want := []string{
		password.Digits,
		password.Symbols,
		password.UpperLetters,
		password.LowerLetters,
	}

	var got []string
	for _, p := range policies {
		got = append(got, p.AllowedChars())
	}

	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("unexpected class order: got %v, want %v", got, want)
	}
}
