package writers

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opareport/opareport/pkg/report"
	"github.com/opareport/opareport/pkg/violation"
)

func writeCSV(t *testing.T, rep *report.Report, opts CSVOptions) string {
	t.Helper()
	var buf bytes.Buffer
	w := NewCSVWriter(&buf, opts)
	require.NoError(t, w.Write(rep))
	require.NoError(t, w.Close())
	return buf.String()
}

func TestCSVWriterColumns(t *testing.T) {
	rep := report.New([]violation.Record{
		{
			"policy":      "aws.security.s3_encryption",
			"resource":    "bucket-a",
			"severity":    "HIGH",
			"message":     "Not encrypted",
			"remediation": "Enable SSE-KMS",
			"compliance":  "PCI-DSS 3.4",
		},
	}, "")

	out := writeCSV(t, rep, CSVOptions{})

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"policy", "resource", "severity", "message", "remediation", "compliance"}, rows[0])
	assert.Equal(t, []string{
		"aws.security.s3_encryption", "bucket-a", "HIGH",
		"Not encrypted", "Enable SSE-KMS", "PCI-DSS 3.4",
	}, rows[1])
}

func TestCSVWriterDefaults(t *testing.T) {
	rep := report.New([]violation.Record{{"policy": "aws.security.iam_mfa"}}, "")

	out := writeCSV(t, rep, CSVOptions{})

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Missing fields resolve to the canonical defaults, with N/A for the
	// compliance column.
	assert.Equal(t, []string{"aws.security.iam_mfa", "unknown", "MEDIUM", "", "", "N/A"}, rows[1])
}

func TestCSVWriterEmptyReport(t *testing.T) {
	out := writeCSV(t, report.New(nil, ""), CSVOptions{})
	assert.Equal(t, "No violations found\n", out)
}

func TestCSVWriterFormulaSanitization(t *testing.T) {
	rep := report.New([]violation.Record{
		{"policy": "=SUM(A1:A9)", "message": "+cmd", "remediation": "@import"},
	}, "")

	out := writeCSV(t, rep, CSVOptions{SanitizeFormulas: true})

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "'=SUM(A1:A9)", rows[1][0])
	assert.Equal(t, "'+cmd", rows[1][3])
	assert.Equal(t, "'@import", rows[1][4])
}

func TestCSVWriterExcelBOM(t *testing.T) {
	out := writeCSV(t, report.New(nil, ""), CSVOptions{ExcelCompatible: true})
	assert.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"))
}

func TestCSVWriterCustomDelimiter(t *testing.T) {
	rep := report.New([]violation.Record{{"policy": "aws.security.iam_mfa"}}, "")

	out := writeCSV(t, rep, CSVOptions{Delimiter: ';'})
	assert.Contains(t, out, "policy;resource;severity")
}
