// Package writers provides output writers for the supported report formats.
package writers

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/opareport/opareport/pkg/jsonutil"
	"github.com/opareport/opareport/pkg/output/dispatcher"
	"github.com/opareport/opareport/pkg/report"
)

// Compile-time interface check.
var _ dispatcher.Writer = (*JSONWriter)(nil)

// JSONWriter writes the report as a single JSON document. The report is
// buffered on Write and encoded when Close is called, which suits
// batch/file output.
type JSONWriter struct {
	w    io.Writer
	mu   sync.Mutex
	opts JSONOptions
	rep  *report.Report
}

// JSONOptions configures the JSON writer behavior.
type JSONOptions struct {
	// Pretty enables indented JSON output.
	Pretty bool

	// IndentSize sets the number of spaces for indentation (default 2).
	IndentSize int
}

// NewJSONWriter creates a new JSON writer that writes to w.
// The writer is safe for concurrent use.
func NewJSONWriter(w io.Writer, opts JSONOptions) *JSONWriter {
	if opts.IndentSize == 0 {
		opts.IndentSize = 2
	}
	return &JSONWriter{w: w, opts: opts}
}

// Write buffers the report for output on Close.
func (jw *JSONWriter) Write(rep *report.Report) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()
	jw.rep = rep
	return nil
}

// Flush is a no-op for the JSON writer; the document is written on Close.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close encodes the buffered report and closes the underlying writer if it
// implements io.Closer.
func (jw *JSONWriter) Close() error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	if jw.rep != nil {
		encoder := jsonutil.NewStreamEncoder(jw.w)
		if jw.opts.Pretty {
			encoder.SetIndent("", strings.Repeat(" ", jw.opts.IndentSize))
		}
		if err := encoder.Encode(jw.rep); err != nil {
			return fmt.Errorf("json: encode: %w", err)
		}
	}

	if closer, ok := jw.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
