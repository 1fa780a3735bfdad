package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setDefault sets the process-wide default length for the duration of a
// test and restores the previous value afterwards.
func setDefault(t *testing.T, n int) {
	t.Helper()

	prev := DefaultLength()
	require.NoError(t, SetDefaultLength(n))
	t.Cleanup(func() {
		if err := SetDefaultLength(prev); err != nil {
			t.Fatalf("failed to restore default length: %v", err)
		}
	})
}

// TestDefaultLength_Initial verifies the initial process-wide default.
func TestDefaultLength_Initial(t *testing.T) {
	assert.Equal(t, initialDefaultLength, 10)
}

// TestSetDefaultLength verifies valid updates are visible through
// DefaultLength.
func TestSetDefaultLength(t *testing.T) {
	setDefault(t, 16)
	assert.Equal(t, 16, DefaultLength())

	require.NoError(t, SetDefaultLength(7))
	assert.Equal(t, 7, DefaultLength())
}

// TestSetDefaultLength_Invalid verifies non-positive values are rejected
// and leave the current default unchanged.
func TestSetDefaultLength_Invalid(t *testing.T) {
	setDefault(t, 16)

	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"negative", -1},
		{"very negative", -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetDefaultLength(tt.n)
			assert.ErrorIs(t, err, ErrInvalidLength)
			assert.Equal(t, 16, DefaultLength())
		})
	}
}

// TestSetDefaultLength_DoesNotAffectExistingPolicies verifies the default
// is read once at construction time.
func TestSetDefaultLength_DoesNotAffectExistingPolicies(t *testing.T) {
	setDefault(t, 16)

	p, err := NewDigit()
	require.NoError(t, err)
	require.Equal(t, 16, p.Length())

	require.NoError(t, SetDefaultLength(8))
	assert.Equal(t, 16, p.Length())
}
