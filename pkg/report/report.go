// Package report assembles the report documents produced by opareport and
// renders the compliance-specific output formats.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/opareport/opareport/pkg/defaults"
	"github.com/opareport/opareport/pkg/summary"
	"github.com/opareport/opareport/pkg/violation"
)

// Metadata identifies one report-generation run.
type Metadata struct {
	GeneratedAt string `json:"generated_at"`
	Tool        string `json:"tool"`
	Version     string `json:"version"`
	ReportID    string `json:"report_id"`
	ScanTarget  string `json:"scan_target,omitempty"`
	Framework   string `json:"framework,omitempty"`
}

// NewMetadata returns metadata stamped with the current UTC time and a
// fresh report ID.
func NewMetadata(scanTarget string) Metadata {
	return Metadata{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Tool:        defaults.ToolName,
		Version:     defaults.Version,
		ReportID:    uuid.NewString(),
		ScanTarget:  scanTarget,
	}
}

// Report is the general (non-compliance) report document. Violations are
// embedded verbatim as normalized; summary statistics are derived once at
// assembly time.
type Report struct {
	Metadata   Metadata           `json:"metadata"`
	Summary    summary.Summary    `json:"summary"`
	Violations []violation.Record `json:"violations"`
}

// New assembles a general report from normalized violations.
func New(violations []violation.Record, scanTarget string) *Report {
	if violations == nil {
		violations = []violation.Record{}
	}
	return &Report{
		Metadata:   NewMetadata(scanTarget),
		Summary:    summary.Summarize(violations),
		Violations: violations,
	}
}
