package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opareport/opareport/pkg/compliance"
	"github.com/opareport/opareport/pkg/jsonutil"
)

func sampleResult() compliance.FrameworkResult {
	return compliance.FrameworkResult{
		Framework:   "SOX (Sarbanes-Oxley Act)",
		Description: "Financial reporting integrity and internal controls",
		Controls: []compliance.ControlResult{
			{
				ControlID:   "SOX-302",
				Title:       "Management Assessment of Internal Controls",
				Description: "CEO/CFO certification of internal controls over financial reporting",
				Status:      compliance.StatusPass,
				Score:       compliance.ScorePass,
				Findings:    []string{},
				Evidence:    []string{"No policy violations found for this control"},
			},
			{
				ControlID:   "SOX-404",
				Title:       "Internal Control Assessment",
				Description: "Document and assess effectiveness of internal controls",
				Status:      compliance.StatusFail,
				Score:       compliance.ScoreFail,
				Findings:    []string{"HIGH: Bucket is not encrypted", "HIGH: Bucket is not encrypted"},
				Evidence:    []string{},
			},
		},
		OverallScore: 62.5,
		PassCount:    1,
		FailCount:    1,
	}
}

func TestWriteComplianceHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteComplianceHTML(&buf, sampleResult()))
	out := buf.String()

	assert.Contains(t, out, "<title>SOX (Sarbanes-Oxley Act) Compliance Report</title>")
	assert.Contains(t, out, "62.5%")
	assert.Contains(t, out, "SOX-302: Management Assessment of Internal Controls")
	assert.Contains(t, out, `class="control pass"`)
	assert.Contains(t, out, `class="control fail"`)
	assert.Contains(t, out, "HIGH: Bucket is not encrypted")
	assert.Contains(t, out, "No policy violations found for this control")
	// 62.5 falls in the 60-79 band, rendered orange.
	assert.Contains(t, out, "#e67e22")
}

func TestWriteComplianceHTMLFindingsCriticalClass(t *testing.T) {
	result := sampleResult()

	var buf bytes.Buffer
	require.NoError(t, WriteComplianceHTML(&buf, result))

	// FAIL scores 25, below the 50 threshold for the critical styling.
	assert.Contains(t, buf.String(), `class="findings critical"`)
}

func TestScoreColorBands(t *testing.T) {
	assert.EqualValues(t, "#27ae60", scoreColor(100))
	assert.EqualValues(t, "#27ae60", scoreColor(80))
	assert.EqualValues(t, "#e67e22", scoreColor(79.9))
	assert.EqualValues(t, "#e67e22", scoreColor(60))
	assert.EqualValues(t, "#e74c3c", scoreColor(59.9))
	assert.EqualValues(t, "#e74c3c", scoreColor(0))
}

func TestComplianceReportJSON(t *testing.T) {
	cr := NewComplianceReport(sampleResult(), "")
	assert.Equal(t, "SOX (Sarbanes-Oxley Act)", cr.Metadata.Framework)

	var buf bytes.Buffer
	require.NoError(t, cr.WriteJSON(&buf))

	var decoded map[string]any
	require.NoError(t, jsonutil.Unmarshal(buf.Bytes(), &decoded))

	result, ok := decoded["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "SOX (Sarbanes-Oxley Act)", result["framework"])
	assert.Equal(t, 62.5, result["overall_score"])

	controls, ok := result["controls"].([]any)
	require.True(t, ok)
	require.Len(t, controls, 2)
	first := controls[0].(map[string]any)
	assert.Equal(t, "SOX-302", first["control_id"])
	assert.Equal(t, "PASS", first["status"])
	// Empty findings serialize as [], not null.
	assert.Equal(t, []any{}, first["findings"])
}

func TestWriteCompliancePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCompliancePDF(&buf, sampleResult()))

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"), "output should start with the PDF magic")
	assert.Greater(t, buf.Len(), 1000)
}
