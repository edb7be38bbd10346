package dispatcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opareport/opareport/pkg/report"
)

// recordingWriter counts calls and can fail any operation.
type recordingWriter struct {
	writes   int
	flushes  int
	closes   int
	writeErr error
	closeErr error
}

func (w *recordingWriter) Write(*report.Report) error { w.writes++; return w.writeErr }
func (w *recordingWriter) Flush() error               { w.flushes++; return nil }
func (w *recordingWriter) Close() error               { w.closes++; return w.closeErr }

func TestDispatchFansOut(t *testing.T) {
	d := New()
	a := &recordingWriter{}
	b := &recordingWriter{}
	d.RegisterWriter(a)
	d.RegisterWriter(b)

	require.NoError(t, d.Dispatch(&report.Report{}))
	assert.Equal(t, 1, a.writes)
	assert.Equal(t, 1, b.writes)
}

func TestDispatchContinuesPastFailure(t *testing.T) {
	d := New()
	failing := &recordingWriter{writeErr: errors.New("disk full")}
	ok := &recordingWriter{}
	d.RegisterWriter(failing)
	d.RegisterWriter(ok)

	err := d.Dispatch(&report.Report{})
	require.EqualError(t, err, "disk full")
	// The healthy writer still received the report.
	assert.Equal(t, 1, ok.writes)
}

func TestDispatchFirstErrorWins(t *testing.T) {
	d := New()
	first := &recordingWriter{writeErr: errors.New("first")}
	second := &recordingWriter{writeErr: errors.New("second")}
	d.RegisterWriter(first)
	d.RegisterWriter(second)

	assert.EqualError(t, d.Dispatch(&report.Report{}), "first")
}

func TestCloseFlushesAndCloses(t *testing.T) {
	d := New()
	a := &recordingWriter{}
	b := &recordingWriter{closeErr: errors.New("close failed")}
	d.RegisterWriter(a)
	d.RegisterWriter(b)

	err := d.Close()
	require.EqualError(t, err, "close failed")
	assert.Equal(t, 1, a.flushes)
	assert.Equal(t, 1, a.closes)
	assert.Equal(t, 1, b.closes)
}

func TestEmptyDispatcher(t *testing.T) {
	d := New()
	assert.NoError(t, d.Dispatch(&report.Report{}))
	assert.NoError(t, d.Flush())
	assert.NoError(t, d.Close())
}
