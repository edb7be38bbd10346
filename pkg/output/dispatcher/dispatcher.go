// Package dispatcher provides the central report routing for output.
// It fans one assembled report out to the registered writers, which handle
// serialization into concrete formats (JSON, CSV, HTML, templates).
//
// The dispatcher decouples report assembly from report serialization: the
// CLI builds the report once and registers one writer per requested format.
package dispatcher

import (
	"sync"

	"github.com/opareport/opareport/pkg/report"
)

// Writer is the interface for all output writers. Writers are responsible
// for persisting a report in one output format.
type Writer interface {
	// Write serializes the report (or buffers it until Close).
	Write(rep *report.Report) error

	// Flush ensures all buffered output is written.
	Flush() error

	// Close finalizes the output and releases any resources.
	Close() error
}

// Dispatcher routes one report to all registered writers.
// It is safe for concurrent use.
type Dispatcher struct {
	writers []Writer
	mu      sync.RWMutex
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{writers: make([]Writer, 0)}
}

// RegisterWriter adds a writer to the dispatcher.
func (d *Dispatcher) RegisterWriter(w Writer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writers = append(d.writers, w)
}

// Dispatch sends the report to every registered writer. The first writer
// error is returned, but all writers still receive the report so one
// failing format does not starve the others.
func (d *Dispatcher) Dispatch(rep *report.Report) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var firstErr error
	for _, w := range d.writers {
		if err := w.Write(rep); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Flush flushes all registered writers.
func (d *Dispatcher) Flush() error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var firstErr error
	for _, w := range d.writers {
		if err := w.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close flushes and closes all writers. After Close is called, the
// dispatcher should not be used.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var firstErr error
	for _, w := range d.writers {
		if err := w.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
