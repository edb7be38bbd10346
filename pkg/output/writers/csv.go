package writers

import (
	"encoding/csv"
	"fmt"
	"io"
	"sync"

	"github.com/opareport/opareport/pkg/defaults"
	"github.com/opareport/opareport/pkg/output/dispatcher"
	"github.com/opareport/opareport/pkg/report"
)

// Compile-time interface check.
var _ dispatcher.Writer = (*CSVWriter)(nil)

// UTF-8 BOM for Excel compatibility.
const utf8BOM = "\xEF\xBB\xBF"

// csvColumns is the fixed violation column set. Order is part of the
// output contract and consumed by downstream spreadsheet imports.
var csvColumns = []string{"policy", "resource", "severity", "message", "remediation", "compliance"}

// emptyPlaceholder is the single row written when a report carries no
// violations.
const emptyPlaceholder = "No violations found"

// CSVWriter writes the report's violations as CSV rows, one row per
// violation, making the output ideal for Excel, pandas, or database
// imports.
type CSVWriter struct {
	w         io.Writer
	csvWriter *csv.Writer
	mu        sync.Mutex
	opts      CSVOptions
}

// CSVOptions configures the CSV writer behavior.
type CSVOptions struct {
	// Delimiter sets the field delimiter character.
	// Default is comma when zero value.
	Delimiter rune

	// ExcelCompatible adds a UTF-8 BOM so Excel displays Unicode properly.
	ExcelCompatible bool

	// SanitizeFormulas prevents CSV injection by prefixing dangerous
	// leading characters: = + - @ TAB CR
	SanitizeFormulas bool
}

// sanitizeForCSV prevents CSV injection by prefixing dangerous characters.
// This is a SECURITY feature to prevent formula execution in spreadsheets.
func sanitizeForCSV(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

// NewCSVWriter creates a new CSV writer.
// The writer is safe for concurrent use.
func NewCSVWriter(w io.Writer, opts CSVOptions) *CSVWriter {
	if opts.ExcelCompatible {
		_, _ = w.Write([]byte(utf8BOM))
	}

	csvWriter := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		csvWriter.Comma = opts.Delimiter
	}

	return &CSVWriter{w: w, csvWriter: csvWriter, opts: opts}
}

// Write writes the header row and one row per violation. An empty report
// produces the single placeholder row instead of a header.
func (cw *CSVWriter) Write(rep *report.Report) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if len(rep.Violations) == 0 {
		return cw.csvWriter.Write([]string{emptyPlaceholder})
	}

	if err := cw.csvWriter.Write(csvColumns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, v := range rep.Violations {
		compliance := v.Compliance()
		if compliance == "" {
			compliance = defaults.ComplianceNA
		}
		row := []string{
			v.Policy(),
			v.Resource(),
			v.Severity().String(),
			v.Message(),
			v.Remediation(),
			compliance,
		}
		if cw.opts.SanitizeFormulas {
			for i, field := range row {
				row[i] = sanitizeForCSV(field)
			}
		}
		if err := cw.csvWriter.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	return nil
}

// Flush flushes the CSV writer's internal buffer.
func (cw *CSVWriter) Flush() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.csvWriter.Flush()
	return cw.csvWriter.Error()
}

// Close flushes buffered rows and closes the underlying writer if it
// implements io.Closer.
func (cw *CSVWriter) Close() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	cw.csvWriter.Flush()
	if err := cw.csvWriter.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}

	if closer, ok := cw.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
