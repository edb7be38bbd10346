// Package config holds the CLI configuration for report generation.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Format names accepted by the generate command.
var generateFormats = map[string]bool{
	"html":     true,
	"json":     true,
	"csv":      true,
	"template": true,
}

// Format names accepted by the compliance command.
var complianceFormats = map[string]bool{
	"html": true,
	"json": true,
	"pdf":  true,
}

// Framework selectors accepted by the compliance command, beyond whatever
// a custom frameworks file adds.
const FrameworkAll = "all"

// Config holds all CLI configuration options.
type Config struct {
	// Input settings
	InputFile  string // JSON file with policy-evaluation output
	ScanTarget string // Description of what was scanned

	// Output settings
	OutputDir  string   // Directory for generated reports
	OutputFile string   // Explicit output path (single compliance report)
	Formats    []string // Report formats to generate

	// Template settings (generate command)
	TemplateFile string // Custom template file for -format template

	// Compliance settings
	Framework      string // Framework selector: sox, pci, ffiec, glba, all
	FrameworksFile string // YAML file with additional framework definitions
}

// ValidateGenerate checks the configuration for the generate command.
func (c *Config) ValidateGenerate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	return validateFormats(c.Formats, generateFormats)
}

// ValidateCompliance checks the configuration for the compliance command.
func (c *Config) ValidateCompliance() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if c.Framework == "" {
		return fmt.Errorf("%w: framework", ErrMissingRequired)
	}
	if c.OutputFile != "" && strings.EqualFold(c.Framework, FrameworkAll) {
		return fmt.Errorf("%w: -output applies to a single framework; use -output-dir with -framework all", ErrInvalidConfig)
	}
	return validateFormats(c.Formats, complianceFormats)
}

// validateInput verifies the input file is set and exists. A missing file
// is a fatal input error; the caller exits non-zero without writing output.
func (c *Config) validateInput() error {
	if c.InputFile == "" {
		return fmt.Errorf("%w: input file", ErrMissingRequired)
	}
	if _, err := os.Stat(c.InputFile); err != nil {
		return fmt.Errorf("%w: input file %s: %v", ErrInvalidConfig, c.InputFile, err)
	}
	return nil
}

func validateFormats(formats []string, allowed map[string]bool) error {
	if len(formats) == 0 {
		return fmt.Errorf("%w: output format", ErrMissingRequired)
	}
	for _, f := range formats {
		if !allowed[f] {
			return fmt.Errorf("%w: unknown format %q (supported: %s)",
				ErrInvalidConfig, f, strings.Join(formatNames(allowed), ", "))
		}
	}
	return nil
}

func formatNames(allowed map[string]bool) []string {
	names := make([]string, 0, len(allowed))
	for name := range allowed {
		names = append(names, name)
	}
	// Alphabetical keeps error messages stable.
	sort.Strings(names)
	return names
}

// ParseFormats splits a comma-separated format list, lowercasing and
// trimming each entry and dropping empties.
func ParseFormats(s string) []string {
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.ToLower(strings.TrimSpace(p)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
