// Package defaults provides canonical default values for the entire codebase.
// This is the SINGLE SOURCE OF TRUTH for runtime configuration defaults.
//
// Usage:
//
//	cfg.OutputDir = defaults.OutputDir
//	name := fmt.Sprintf("policy-report-%s.html", now.Format(defaults.FileTimestampLayout))
//
// DO NOT hardcode values like `"reports"` at call sites.
// Instead, reference the appropriate constant from this package.
package defaults

// ToolName is the canonical tool identifier embedded in report metadata.
const ToolName = "opareport"

// Version is the current opareport version.
const Version = "0.3.1"

// ============================================================================
// OUTPUT SETTINGS
// ============================================================================

const (
	// OutputDir is the default directory for generated reports.
	OutputDir = "reports"

	// ComplianceOutputDir is the default directory for "all frameworks" mode.
	ComplianceOutputDir = "reports/compliance"

	// FileTimestampLayout is the timestamp embedded in report file names.
	FileTimestampLayout = "20060102_150405"

	// ReportTimestampLayout is the human-readable timestamp shown in reports.
	ReportTimestampLayout = "2006-01-02 15:04:05 MST"
)

// ============================================================================
// FILE PERMISSIONS
// ============================================================================

const (
	// DirPerm is the permission mode for created report directories.
	DirPerm = 0o755

	// FilePerm is the permission mode for written report files.
	FilePerm = 0o644
)

// ============================================================================
// VIOLATION FIELD DEFAULTS
// ============================================================================
//
// Missing fields on a violation record resolve to these values at read
// time; the normalizer never backfills them.
// ============================================================================

const (
	// ResourceUnknown is the resource shown when a violation omits one.
	ResourceUnknown = "unknown"

	// MessageMissing is the finding text for a violation without a message.
	MessageMissing = "No message"

	// ComplianceNA is the CSV compliance column value for untagged violations.
	ComplianceNA = "N/A"
)
