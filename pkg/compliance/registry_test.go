package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinFrameworks(t *testing.T) {
	names := Builtin().Names()
	assert.Equal(t, []string{"sox", "pci", "ffiec", "glba"}, names)
}

func TestBuiltinControlCatalog(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		controlIDs  []string
	}{
		{"sox", "SOX (Sarbanes-Oxley Act)", []string{"SOX-302", "SOX-404", "SOX-ITGC"}},
		{"pci", "PCI DSS", []string{"PCI-REQ-1", "PCI-REQ-2", "PCI-REQ-3", "PCI-REQ-7", "PCI-REQ-8", "PCI-REQ-10"}},
		{"ffiec", "FFIEC Cybersecurity Assessment", []string{"FFIEC-D1", "FFIEC-D2", "FFIEC-D3", "FFIEC-D4", "FFIEC-D5"}},
		{"glba", "GLBA", []string{"GLBA-SAFEGUARDS", "GLBA-ACCESS", "GLBA-MONITORING", "GLBA-VENDOR", "GLBA-BREACH"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fw, ok := Builtin().Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.displayName, fw.DisplayName)

			ids := make([]string, 0, len(fw.Controls))
			for _, ctl := range fw.Controls {
				ids = append(ids, ctl.ID)
				assert.NotEmpty(t, ctl.Title, ctl.ID)
				assert.NotEmpty(t, ctl.PolicyPrefixes, ctl.ID)
			}
			assert.Equal(t, tt.controlIDs, ids)
		})
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	for _, name := range []string{"pci", "PCI", "Pci"} {
		fw, ok := Builtin().Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "pci", fw.Name)
	}

	_, ok := Builtin().Lookup("nist")
	assert.False(t, ok)
}

func TestNamesReturnsCopy(t *testing.T) {
	names := Builtin().Names()
	names[0] = "mutated"
	assert.Equal(t, "sox", Builtin().Names()[0])
}

func TestExtendLeavesReceiverUntouched(t *testing.T) {
	custom := Framework{
		Name:        "hipaa",
		DisplayName: "HIPAA",
		Controls:    []Control{{ID: "HIPAA-164.312"}},
	}

	extended := Builtin().Extend(custom)

	_, ok := extended.Lookup("hipaa")
	assert.True(t, ok)
	assert.Equal(t, []string{"sox", "pci", "ffiec", "glba", "hipaa"}, extended.Names())

	_, ok = Builtin().Lookup("hipaa")
	assert.False(t, ok, "built-in registry must not gain the custom framework")
}

func TestExtendOverridesInPlace(t *testing.T) {
	override := Framework{
		Name:        "SOX",
		DisplayName: "SOX (custom)",
		Controls:    []Control{{ID: "SOX-1"}},
	}

	extended := Builtin().Extend(override)

	fw, ok := extended.Lookup("sox")
	require.True(t, ok)
	assert.Equal(t, "SOX (custom)", fw.DisplayName)
	// The replaced framework keeps its original registry position.
	assert.Equal(t, []string{"sox", "pci", "ffiec", "glba"}, extended.Names())
}
