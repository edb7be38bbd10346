package exitcode

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeSuccess(t *testing.T) {
	m := New()
	code, reason := m.ExitCode()
	assert.Equal(t, Success, code)
	assert.Equal(t, "success", reason)
	assert.Zero(t, m.Failures())
}

func TestExitCodeFailure(t *testing.T) {
	m := New()
	m.RecordFailure(`compliance: unknown framework: "hipaa"`)
	m.RecordFailure("pci: create output directory: permission denied")

	code, reason := m.ExitCode()
	assert.Equal(t, Failure, code)
	assert.Equal(t, `compliance: unknown framework: "hipaa"; pci: create output directory: permission denied`, reason)
	assert.Equal(t, 2, m.Failures())
}

func TestManagerConcurrent(t *testing.T) {
	m := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordFailure("boom")
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, m.Failures())
}
