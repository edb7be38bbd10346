// Package exitcode provides the process exit-code policy for CI/CD
// integration.
//
// Exit codes:
//   - 0: Success (including the zero-violations case)
//   - 1: Fatal input error (missing file, invalid JSON) or unknown framework
package exitcode

import (
	"strings"
	"sync"
)

// Code represents a process exit code.
type Code int

const (
	// Success indicates all requested reports were generated.
	Success Code = 0
	// Failure indicates an input error or an unknown framework.
	Failure Code = 1
)

// Manager collects failure reasons across independent report runs, such as
// the per-framework goroutines of "all frameworks" mode. It is safe for
// concurrent use.
type Manager struct {
	mu      sync.Mutex
	reasons []string
}

// New creates an empty exit code manager.
func New() *Manager {
	return &Manager{}
}

// RecordFailure notes one failed report run. Other runs continue
// unaffected; the failure only influences the final exit code.
func (m *Manager) RecordFailure(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reasons = append(m.reasons, reason)
}

// ExitCode returns the process exit code and a human-readable reason.
func (m *Manager) ExitCode() (Code, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.reasons) == 0 {
		return Success, "success"
	}
	return Failure, strings.Join(m.reasons, "; ")
}

// Failures returns the number of recorded failures.
func (m *Manager) Failures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reasons)
}
