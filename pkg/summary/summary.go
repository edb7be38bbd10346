// Package summary derives aggregate statistics from a violation sequence.
// It is pure aggregation, independent of any framework or control concept,
// and feeds the general (non-compliance) reports and the console summary.
package summary

import (
	"strings"

	"github.com/opareport/opareport/pkg/violation"
)

// Cloud provider labels used in the by-cloud breakdown. Policies outside
// these prefixes are ignored for cloud and category purposes.
const (
	CloudAWS   = "AWS"
	CloudAzure = "Azure"
)

// Summary holds violation statistics for one report run.
type Summary struct {
	TotalViolations int            `json:"total_violations"`
	BySeverity      map[string]int `json:"by_severity"`
	ByPolicy        map[string]int `json:"by_policy"`
	ByCloud         map[string]int `json:"by_cloud"`
	ByCategory      map[string]int `json:"by_category"`
}

// Summarize counts violations by severity, policy, cloud provider and
// category. Unrecognized severities are coerced into the UNKNOWN bucket;
// this single rule applies to every severity breakdown the tool emits.
// Category is the second dot-delimited segment of the policy name, counted
// only when a recognized cloud prefix matched and the name has at least
// three segments.
func Summarize(violations []violation.Record) Summary {
	s := Summary{
		TotalViolations: len(violations),
		BySeverity:      make(map[string]int),
		ByPolicy:        make(map[string]int),
		ByCloud:         make(map[string]int),
		ByCategory:      make(map[string]int),
	}

	for _, v := range violations {
		s.BySeverity[v.Severity().Bucket().String()]++

		policy := v.Policy()
		if policy == "" {
			policy = "unknown"
		}
		s.ByPolicy[policy]++

		cloud := ""
		switch {
		case strings.HasPrefix(policy, "aws."):
			cloud = CloudAWS
		case strings.HasPrefix(policy, "azure."):
			cloud = CloudAzure
		default:
			continue
		}
		s.ByCloud[cloud]++

		if parts := strings.Split(policy, "."); len(parts) > 2 {
			s.ByCategory[parts[1]]++
		}
	}

	return s
}

// Count returns the number of violations in the given severity bucket.
func (s Summary) Count(sev violation.Severity) int {
	return s.BySeverity[sev.String()]
}
