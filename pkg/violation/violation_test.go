package violation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordAccessorDefaults(t *testing.T) {
	empty := Record{}

	assert.Equal(t, "", empty.Policy())
	assert.Equal(t, "unknown", empty.Resource())
	assert.Equal(t, SeverityMedium, empty.Severity())
	assert.Equal(t, "", empty.Message())
	assert.Equal(t, "", empty.Remediation())
	assert.Equal(t, "", empty.Compliance())
}

func TestRecordAccessorsPresent(t *testing.T) {
	r := Record{
		"policy":      "aws.security.s3_encryption",
		"resource":    "my-bucket",
		"severity":    "HIGH",
		"message":     "Bucket is not encrypted",
		"remediation": "Enable SSE-KMS",
		"compliance":  "PCI-DSS 3.4",
	}

	assert.Equal(t, "aws.security.s3_encryption", r.Policy())
	assert.Equal(t, "my-bucket", r.Resource())
	assert.Equal(t, SeverityHigh, r.Severity())
	assert.Equal(t, "Bucket is not encrypted", r.Message())
	assert.Equal(t, "Enable SSE-KMS", r.Remediation())
	assert.Equal(t, "PCI-DSS 3.4", r.Compliance())
}

func TestRecordNonStringFieldFallsBack(t *testing.T) {
	// A numeric severity is not a string; the accessor default applies.
	r := Record{"severity": 3, "resource": true}

	assert.Equal(t, SeverityMedium, r.Severity())
	assert.Equal(t, "unknown", r.Resource())
}

func TestRecordPreservesExtraFields(t *testing.T) {
	r := Record{
		"policy":     "aws.security.s3_encryption",
		"account_id": "123456789012",
		"tags":       []any{"prod"},
	}

	assert.Equal(t, "123456789012", r["account_id"])
	assert.Equal(t, []any{"prod"}, r["tags"])
}

func TestRecordMatches(t *testing.T) {
	tests := []struct {
		name     string
		policy   string
		prefixes []string
		want     bool
	}{
		{"exact match", "aws.security.s3_encryption", []string{"aws.security.s3_encryption"}, true},
		{"prefix match", "aws.security.s3_encryption.versioning", []string{"aws.security.s3_encryption"}, true},
		{"second prefix matches", "azure.security.key_vault", []string{"aws.security.iam_mfa", "azure.security.key_vault"}, true},
		{"no match", "gcp.security.gcs", []string{"aws.", "azure."}, false},
		{"case sensitive", "AWS.security.s3_encryption", []string{"aws.security"}, false},
		{"empty prefixes", "aws.security.s3_encryption", nil, false},
		{"empty policy", "", []string{"aws."}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{"policy": tt.policy}
			assert.Equal(t, tt.want, r.Matches(tt.prefixes))
		})
	}
}

func TestSeverityBucket(t *testing.T) {
	assert.Equal(t, SeverityCritical, SeverityCritical.Bucket())
	assert.Equal(t, SeverityHigh, SeverityHigh.Bucket())
	assert.Equal(t, SeverityMedium, SeverityMedium.Bucket())
	assert.Equal(t, SeverityLow, SeverityLow.Bucket())

	// Anything outside the canonical four lands in UNKNOWN.
	assert.Equal(t, SeverityUnknown, Severity("WARNING").Bucket())
	assert.Equal(t, SeverityUnknown, Severity("critical").Bucket())
	assert.Equal(t, SeverityUnknown, Severity("").Bucket())
	assert.Equal(t, SeverityUnknown, SeverityUnknown.Bucket())
}

func TestSeverityWeightOrdering(t *testing.T) {
	assert.Greater(t, SeverityCritical.Weight(), SeverityHigh.Weight())
	assert.Greater(t, SeverityHigh.Weight(), SeverityMedium.Weight())
	assert.Greater(t, SeverityMedium.Weight(), SeverityLow.Weight())
	assert.Greater(t, SeverityLow.Weight(), SeverityUnknown.Weight())
	assert.Equal(t, 0, Severity("bogus").Weight())
}

func TestSeverityIsValid(t *testing.T) {
	for _, sev := range Canonical {
		assert.True(t, sev.IsValid(), sev)
	}
	assert.False(t, SeverityUnknown.IsValid())
	assert.False(t, Severity("HIGHEST").IsValid())
}
