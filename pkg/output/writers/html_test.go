package writers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opareport/opareport/pkg/report"
	"github.com/opareport/opareport/pkg/violation"
)

func renderHTML(t *testing.T, rep *report.Report, cfg HTMLConfig) string {
	t.Helper()
	var buf bytes.Buffer
	w := NewHTMLWriter(&buf, cfg)
	require.NoError(t, w.Write(rep))
	require.NoError(t, w.Close())
	return buf.String()
}

func TestHTMLWriter(t *testing.T) {
	rep := report.New([]violation.Record{
		{"policy": "aws.security.s3_encryption", "resource": "bucket-a", "severity": "HIGH", "message": "Not encrypted", "remediation": "Enable SSE-KMS"},
		{"policy": "azure.security.key_vault", "severity": "CRITICAL"},
		{"policy": "aws.tagging.required_tags", "severity": "LOW"},
	}, "prod account")

	out := renderHTML(t, rep, HTMLConfig{})

	assert.Contains(t, out, "<title>Policy Violation Report</title>")
	assert.Contains(t, out, "Scan target: prod account")
	assert.Contains(t, out, "aws.security.s3_encryption")
	assert.Contains(t, out, "Remediation: Enable SSE-KMS")
	assert.Contains(t, out, "By Cloud Provider")
	assert.Contains(t, out, "By Category")

	// Groups render in severity order: CRITICAL before HIGH before LOW.
	crit := bytes.Index([]byte(out), []byte("CRITICAL (1)"))
	high := bytes.Index([]byte(out), []byte("HIGH (1)"))
	low := bytes.Index([]byte(out), []byte("LOW (1)"))
	require.Positive(t, crit)
	assert.Less(t, crit, high)
	assert.Less(t, high, low)
}

func TestHTMLWriterCustomTitle(t *testing.T) {
	out := renderHTML(t, report.New(nil, ""), HTMLConfig{Title: "Nightly Policy Scan"})
	assert.Contains(t, out, "<title>Nightly Policy Scan</title>")
}

func TestHTMLWriterEmptyReport(t *testing.T) {
	out := renderHTML(t, report.New(nil, ""), HTMLConfig{})
	assert.Contains(t, out, "No policy violations found")
	assert.NotContains(t, out, `class="group`)
}

func TestHTMLWriterUnknownSeverityGroup(t *testing.T) {
	rep := report.New([]violation.Record{
		{"policy": "aws.security.iam_mfa", "severity": "WARNING"},
	}, "")

	out := renderHTML(t, rep, HTMLConfig{})

	// Unrecognized severities group under UNKNOWN and surface the card.
	assert.Contains(t, out, "UNKNOWN (1)")
	assert.Contains(t, out, `class="card unknown"`)
	// The original tag is still shown on the violation row.
	assert.Contains(t, out, "Severity: WARNING")
}

func TestHTMLWriterEscapesContent(t *testing.T) {
	rep := report.New([]violation.Record{
		{"policy": "aws.security.iam_mfa", "message": "<script>alert(1)</script>"},
	}, "")

	out := renderHTML(t, rep, HTMLConfig{})
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestSortedBreakdown(t *testing.T) {
	rows := sortedBreakdown(map[string]int{"security": 3, "tagging": 1, "compliance": 3})

	require.Len(t, rows, 3)
	// Descending count, alphabetical on ties.
	assert.Equal(t, breakdownRow{Label: "compliance", Count: 3}, rows[0])
	assert.Equal(t, breakdownRow{Label: "security", Count: 3}, rows[1])
	assert.Equal(t, breakdownRow{Label: "tagging", Count: 1}, rows[2])
}
