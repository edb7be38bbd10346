package compliance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFrameworksFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frameworks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrameworks(t *testing.T) {
	path := writeFrameworksFile(t, `
frameworks:
  - name: hipaa
    display_name: HIPAA
    description: Health Insurance Portability and Accountability Act
    controls:
      - id: HIPAA-164.312
        title: Technical Safeguards
        description: Access control and encryption of ePHI
        policy_mappings:
          - aws.security.kms_encryption
          - azure.security.storage_encryption
`)

	frameworks, err := LoadFrameworks(path)
	require.NoError(t, err)
	require.Len(t, frameworks, 1)

	fw := frameworks[0]
	assert.Equal(t, "hipaa", fw.Name)
	assert.Equal(t, "HIPAA", fw.DisplayName)
	require.Len(t, fw.Controls, 1)
	assert.Equal(t, "HIPAA-164.312", fw.Controls[0].ID)
	assert.Equal(t, []string{"aws.security.kms_encryption", "azure.security.storage_encryption"},
		fw.Controls[0].PolicyPrefixes)
}

func TestLoadFrameworksValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing name",
			"frameworks:\n  - display_name: X\n    controls:\n      - id: X-1\n",
			"has no name",
		},
		{
			"no controls",
			"frameworks:\n  - name: x\n    display_name: X\n",
			"has no controls",
		},
		{
			"control without id",
			"frameworks:\n  - name: x\n    controls:\n      - title: only a title\n",
			"control without an id",
		},
		{
			"malformed yaml",
			"frameworks: [",
			"parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFrameworksFile(t, tt.content)
			_, err := LoadFrameworks(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFrameworksMissingFile(t *testing.T) {
	_, err := LoadFrameworks(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read frameworks file")
}

func TestLoadedFrameworkEvaluates(t *testing.T) {
	path := writeFrameworksFile(t, `
frameworks:
  - name: hipaa
    display_name: HIPAA
    controls:
      - id: HIPAA-164.312
        title: Technical Safeguards
        policy_mappings:
          - aws.security.kms_encryption
`)

	frameworks, err := LoadFrameworks(path)
	require.NoError(t, err)

	registry := Builtin().Extend(frameworks...)
	result, err := registry.EvaluateFramework("hipaa", makeViolations("aws.security.kms_encryption"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.PartialCount)
	assert.Equal(t, 65.0, result.OverallScore)
}
