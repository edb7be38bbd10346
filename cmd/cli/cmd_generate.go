package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/opareport/opareport/pkg/config"
	"github.com/opareport/opareport/pkg/defaults"
	"github.com/opareport/opareport/pkg/output/dispatcher"
	"github.com/opareport/opareport/pkg/output/writers"
	"github.com/opareport/opareport/pkg/report"
	"github.com/opareport/opareport/pkg/ui"
	"github.com/opareport/opareport/pkg/violation"
)

// runGenerate executes the generate command: loads policy-evaluation
// output, normalizes it, and writes the general report in each requested
// format.
func runGenerate() {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	input := fs.String("input", "", "Input JSON file with policy-evaluation output")
	fs.StringVar(input, "i", *input, "Alias for -input")
	outputDir := fs.String("output", defaults.OutputDir, "Output directory for reports")
	fs.StringVar(outputDir, "o", *outputDir, "Alias for -output")
	formats := fs.String("format", "html", "Report formats, comma-separated: html, json, csv, template")
	templateFile := fs.String("template", "", "Custom template file (with -format template)")
	scanTarget := fs.String("scan-target", "", "Description of what was scanned")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	fs.Parse(os.Args[2:])

	if *noColor {
		ui.SetNoColor(true)
	}

	cfg := &config.Config{
		InputFile:    *input,
		OutputDir:    *outputDir,
		Formats:      config.ParseFormats(*formats),
		TemplateFile: *templateFile,
		ScanTarget:   *scanTarget,
	}
	if err := cfg.ValidateGenerate(); err != nil {
		exitWithUsage(err.Error(), "opareport generate -input violations.json -output reports -format html,json,csv")
	}

	ui.PrintBanner()
	ui.PrintSection("Report Generation")
	ui.PrintConfigLine("Input", cfg.InputFile)
	ui.PrintConfigLine("Output", cfg.OutputDir)

	violations := loadViolations(cfg.InputFile)
	rep := report.New(violations, cfg.ScanTarget)

	if err := os.MkdirAll(cfg.OutputDir, defaults.DirPerm); err != nil {
		exitWithError("Creating output directory: %v", err)
	}

	d := dispatcher.New()
	timestamp := time.Now().Format(defaults.FileTimestampLayout)
	var generated []string

	for _, format := range cfg.Formats {
		path := filepath.Join(cfg.OutputDir, generateFileName(format, timestamp))
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaults.FilePerm)
		if err != nil {
			exitWithError("Creating %s: %v", path, err)
		}
		w, err := newGenerateWriter(format, f, cfg)
		if err != nil {
			f.Close()
			exitWithError("Configuring %s writer: %v", format, err)
		}
		d.RegisterWriter(w)
		generated = append(generated, path)
	}

	if err := d.Dispatch(rep); err != nil {
		exitWithError("Writing reports: %v", err)
	}
	if err := d.Close(); err != nil {
		exitWithError("Finalizing reports: %v", err)
	}

	for _, path := range generated {
		ui.PrintSuccess("Generated report: " + path)
	}
	fmt.Fprintln(os.Stderr)
	ui.PrintSeveritySummary(rep.Summary)
}

// loadViolations reads and normalizes the input file. A missing file or
// invalid JSON is fatal; no partial output has been written at this point.
func loadViolations(path string) []violation.Record {
	data, err := os.ReadFile(path)
	if err != nil {
		exitWithError("Reading input file: %v", err)
	}
	violations, err := violation.Parse(data)
	if err != nil {
		exitWithError("Invalid JSON in input file: %v", err)
	}
	return violations
}

// generateFileName returns the timestamped output file name for a format.
func generateFileName(format, timestamp string) string {
	switch format {
	case "html":
		return fmt.Sprintf("policy-report-%s.html", timestamp)
	case "json":
		return fmt.Sprintf("policy-violations-%s.json", timestamp)
	case "csv":
		return fmt.Sprintf("policy-violations-%s.csv", timestamp)
	default:
		return fmt.Sprintf("policy-report-%s.txt", timestamp)
	}
}

// newGenerateWriter constructs the writer for one general-report format.
func newGenerateWriter(format string, f *os.File, cfg *config.Config) (dispatcher.Writer, error) {
	switch format {
	case "html":
		return writers.NewHTMLWriter(f, writers.HTMLConfig{}), nil
	case "json":
		return writers.NewJSONWriter(f, writers.JSONOptions{Pretty: true}), nil
	case "csv":
		return writers.NewCSVWriter(f, writers.CSVOptions{SanitizeFormulas: true}), nil
	case "template":
		tc := writers.TemplateConfig{TemplatePath: cfg.TemplateFile}
		if tc.TemplatePath == "" {
			tc.BuiltIn = "text-summary"
		}
		return writers.NewTemplateWriter(f, tc)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
