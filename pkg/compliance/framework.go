// Package compliance maps policy violations onto named regulatory controls
// and derives per-control statuses and framework-level compliance scores.
//
// The control catalog is process-wide configuration data: the built-in
// registry is constructed once and never mutated. Adding a framework means
// extending the table, not changing the evaluator.
package compliance

// Control is one named regulatory requirement, mapped to the policy
// identifiers relevant to it. A violation belongs to the control when its
// policy identifier starts with any of PolicyPrefixes.
type Control struct {
	ID             string   `json:"control_id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description" yaml:"description"`
	PolicyPrefixes []string `json:"policy_mappings" yaml:"policy_mappings"`
}

// Framework is an ordered set of controls representing one regulatory
// standard. Control order is significant: it determines report ordering and
// is stable across runs.
type Framework struct {
	// Name is the registry key, lowercase (e.g. "sox").
	Name string `json:"-" yaml:"name"`

	// DisplayName is the human-readable standard name shown in reports.
	DisplayName string `json:"framework" yaml:"display_name"`

	Description string    `json:"description" yaml:"description"`
	Controls    []Control `json:"controls" yaml:"controls"`
}

// Status is the outcome of evaluating one control.
type Status string

const (
	// StatusPass indicates no violations mapped to the control.
	StatusPass Status = "PASS"

	// StatusPartial indicates one or two mapped violations.
	StatusPartial Status = "PARTIAL"

	// StatusFail indicates three or more mapped violations.
	StatusFail Status = "FAIL"
)

// Control scores are a deliberately coarse three-bucket step function.
// The breakpoints (<=2 vs >2) and the constants are the report's
// pass/fail bar and must not drift.
const (
	ScorePass    = 100
	ScorePartial = 65
	ScoreFail    = 25
)

// ControlResult is the derived outcome for one control in one evaluation run.
// Findings is non-empty only when Status != PASS; Evidence carries a single
// explanatory entry only when Status == PASS.
type ControlResult struct {
	ControlID   string   `json:"control_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Score       int      `json:"score"`
	Findings    []string `json:"findings"`
	Evidence    []string `json:"evidence"`
}

// FrameworkResult is the derived outcome for one framework. PassCount,
// PartialCount and FailCount always sum to len(Controls); OverallScore is
// the arithmetic mean of the control scores rounded to one decimal place.
type FrameworkResult struct {
	Framework    string          `json:"framework"`
	Description  string          `json:"description"`
	Controls     []ControlResult `json:"controls"`
	OverallScore float64         `json:"overall_score"`
	PassCount    int             `json:"pass_count"`
	PartialCount int             `json:"partial_count"`
	FailCount    int             `json:"fail_count"`
}
