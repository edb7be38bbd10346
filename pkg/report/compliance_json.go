package report

import (
	"fmt"
	"io"

	"github.com/opareport/opareport/pkg/compliance"
	"github.com/opareport/opareport/pkg/jsonutil"
)

// ComplianceReport wraps a framework result with run metadata for
// machine-readable output.
type ComplianceReport struct {
	Metadata Metadata                   `json:"metadata"`
	Result   compliance.FrameworkResult `json:"result"`
}

// NewComplianceReport assembles a compliance report document.
func NewComplianceReport(result compliance.FrameworkResult, scanTarget string) *ComplianceReport {
	meta := NewMetadata(scanTarget)
	meta.Framework = result.Framework
	return &ComplianceReport{Metadata: meta, Result: result}
}

// WriteJSON writes the compliance report as indented JSON.
func (cr *ComplianceReport) WriteJSON(w io.Writer) error {
	enc := jsonutil.NewStreamEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cr); err != nil {
		return fmt.Errorf("report: encode compliance json: %w", err)
	}
	return nil
}
