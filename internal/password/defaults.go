// Package password implements composable password generation policies
// for parola.
package password

import "sync"

// initialDefaultLength is the default length before any SetDefaultLength call.
const initialDefaultLength = 10

var (
	defaultMu     sync.RWMutex
	defaultLength = initialDefaultLength
)

// SetDefaultLength updates the process-wide default fragment length used
// by policies constructed without an explicit length.
// Returns ErrInvalidLength if n is less than 1; the current default is
// left unchanged in that case. Policies that already exist are never
// affected.
func SetDefaultLength(n int) error {
	if n < 1 {
		return ErrInvalidLength
	}

	defaultMu.Lock()
	defaultLength = n
	defaultMu.Unlock()

	return nil
}

// DefaultLength returns the current process-wide default fragment length.
func DefaultLength() int {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLength
}
