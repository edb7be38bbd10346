package compliance

import (
	"errors"
	"fmt"
	"math"

	"github.com/opareport/opareport/pkg/defaults"
	"github.com/opareport/opareport/pkg/violation"
)

// ErrUnknownFramework indicates a framework name that is not in the
// registry. Callers should use errors.Is() to check for it. This is the
// only error condition in the evaluation core; everything else resolves
// through structural fallbacks.
var ErrUnknownFramework = errors.New("compliance: unknown framework")

// passEvidence is the single evidence entry attached to a passing control.
const passEvidence = "No policy violations found for this control"

// EvaluateControl scans violations in order, selects those whose policy
// identifier starts with any of the control's prefixes, and derives the
// status/score/findings triple:
//
//	0 matches  -> PASS, 100
//	1-2        -> PARTIAL, 65
//	>=3        -> FAIL, 25
//
// It always returns a result; empty input resolves to PASS by the
// zero-match rule. A violation may match several controls independently.
func EvaluateControl(ctl Control, violations []violation.Record) ControlResult {
	result := ControlResult{
		ControlID:   ctl.ID,
		Title:       ctl.Title,
		Description: ctl.Description,
		Status:      StatusPass,
		Score:       ScorePass,
		Findings:    []string{},
		Evidence:    []string{},
	}

	var matched []violation.Record
	for _, v := range violations {
		if v.Matches(ctl.PolicyPrefixes) {
			matched = append(matched, v)
		}
	}

	switch {
	case len(matched) == 0:
		result.Evidence = append(result.Evidence, passEvidence)
	case len(matched) <= 2:
		result.Status = StatusPartial
		result.Score = ScorePartial
		result.Findings = formatFindings(matched)
	default:
		result.Status = StatusFail
		result.Score = ScoreFail
		result.Findings = formatFindings(matched)
	}

	return result
}

// formatFindings renders one "{severity}: {message}" line per matched
// violation in encounter order.
func formatFindings(matched []violation.Record) []string {
	findings := make([]string, 0, len(matched))
	for _, v := range matched {
		message := v.Message()
		if message == "" {
			message = defaults.MessageMissing
		}
		findings = append(findings, fmt.Sprintf("%s: %s", v.Severity(), message))
	}
	return findings
}

// EvaluateFramework evaluates every control of the named framework in its
// fixed order and aggregates the results. The name is matched
// case-insensitively; an unregistered name fails with ErrUnknownFramework.
func (r *Registry) EvaluateFramework(name string, violations []violation.Record) (FrameworkResult, error) {
	fw, ok := r.Lookup(name)
	if !ok {
		return FrameworkResult{}, fmt.Errorf("%w: %q", ErrUnknownFramework, name)
	}

	result := FrameworkResult{
		Framework:   fw.DisplayName,
		Description: fw.Description,
		Controls:    make([]ControlResult, 0, len(fw.Controls)),
	}

	total := 0
	for _, ctl := range fw.Controls {
		cr := EvaluateControl(ctl, violations)
		result.Controls = append(result.Controls, cr)
		total += cr.Score

		switch cr.Status {
		case StatusPass:
			result.PassCount++
		case StatusPartial:
			result.PartialCount++
		default:
			result.FailCount++
		}
	}

	// A framework with zero controls scores 0 rather than dividing by zero.
	if n := len(result.Controls); n > 0 {
		result.OverallScore = round1(float64(total) / float64(n))
	}

	return result, nil
}

// round1 rounds to one decimal place.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
