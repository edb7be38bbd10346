package violation

// Severity represents the severity tag of a policy violation.
// Values are uppercase strings matching the convention used by the
// policy bundles this tool consumes.
type Severity string

const (
	// SeverityCritical represents immediate exposure (public data, open access).
	SeverityCritical Severity = "CRITICAL"

	// SeverityHigh represents significant risk requiring a prompt fix.
	SeverityHigh Severity = "HIGH"

	// SeverityMedium represents moderate risk and is the default for
	// violations that carry no severity tag.
	SeverityMedium Severity = "MEDIUM"

	// SeverityLow represents limited risk (tagging, hygiene).
	SeverityLow Severity = "LOW"

	// SeverityUnknown is the overflow bucket for unrecognized values.
	SeverityUnknown Severity = "UNKNOWN"
)

// Canonical lists the recognized severities in descending order of weight.
var Canonical = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// IsValid reports whether s is one of the four recognized severities.
// SeverityUnknown is a bucketing artifact, not a valid input value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Bucket maps s onto the canonical four-severity scale, coercing any
// unrecognized value to SeverityUnknown. All severity counting in this
// codebase goes through Bucket so reports agree with the console summary.
func (s Severity) Bucket() Severity {
	if s.IsValid() {
		return s
	}
	return SeverityUnknown
}

// Weight returns a numeric weight for sorting and comparison.
// Critical=4, High=3, Medium=2, Low=1, anything else 0.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// String returns the severity as a string.
func (s Severity) String() string {
	return string(s)
}
