// Package violation defines the canonical policy-violation record and the
// normalizer that converts heterogeneous policy-engine output (OPA, conftest,
// raw violation lists) into an ordered sequence of records.
package violation

import (
	"strings"

	"github.com/opareport/opareport/pkg/defaults"
)

// Record is one reported policy non-compliance. It preserves every field of
// the source document so violations pass through to reports verbatim; the
// typed accessors apply get-with-default semantics at read time. Callers must
// not assume any field is present.
type Record map[string]any

// get returns the string value for key, or def when the key is missing or
// not a string.
func (r Record) get(key, def string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Policy returns the dotted-namespace policy identifier, or "" when absent.
func (r Record) Policy() string {
	return r.get("policy", "")
}

// Resource returns the affected resource, defaulting to "unknown".
func (r Record) Resource() string {
	return r.get("resource", defaults.ResourceUnknown)
}

// Severity returns the severity tag, defaulting to MEDIUM.
func (r Record) Severity() Severity {
	return Severity(r.get("severity", string(SeverityMedium)))
}

// Message returns the violation message, or "" when absent.
func (r Record) Message() string {
	return r.get("message", "")
}

// Remediation returns the remediation guidance, or "" when absent.
func (r Record) Remediation() string {
	return r.get("remediation", "")
}

// Compliance returns the free-text framework/control tag, or "" when absent.
func (r Record) Compliance() string {
	return r.get("compliance", "")
}

// Matches reports whether the record's policy identifier starts with any of
// the given prefixes. Comparison is case-sensitive with no wildcard expansion.
func (r Record) Matches(prefixes []string) bool {
	policy := r.Policy()
	for _, prefix := range prefixes {
		if strings.HasPrefix(policy, prefix) {
			return true
		}
	}
	return false
}
