package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/opareport/opareport/pkg/compliance"
	"github.com/opareport/opareport/pkg/config"
	"github.com/opareport/opareport/pkg/defaults"
	"github.com/opareport/opareport/pkg/output/exitcode"
	"github.com/opareport/opareport/pkg/report"
	"github.com/opareport/opareport/pkg/ui"
	"github.com/opareport/opareport/pkg/violation"
)

// runCompliance executes the compliance command: evaluates one framework
// (or all of them) against the normalized violations and writes the
// compliance reports.
func runCompliance() {
	fs := flag.NewFlagSet("compliance", flag.ExitOnError)
	framework := fs.String("framework", "", "Framework: sox, pci, ffiec, glba, or all")
	fs.StringVar(framework, "f", *framework, "Alias for -framework")
	input := fs.String("input", "", "Input JSON file with policy violations")
	fs.StringVar(input, "i", *input, "Alias for -input")
	outputFile := fs.String("output", "", "Output report path (single framework)")
	outputDir := fs.String("output-dir", "", "Output directory (defaults per mode)")
	formats := fs.String("format", "html", "Report formats, comma-separated: html, json, pdf")
	frameworksFile := fs.String("frameworks-file", "", "YAML file with additional framework definitions")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	fs.Parse(os.Args[2:])

	if *noColor {
		ui.SetNoColor(true)
	}

	cfg := &config.Config{
		InputFile:      *input,
		OutputFile:     *outputFile,
		OutputDir:      *outputDir,
		Formats:        config.ParseFormats(*formats),
		Framework:      *framework,
		FrameworksFile: *frameworksFile,
	}
	if err := cfg.ValidateCompliance(); err != nil {
		exitWithUsage(err.Error(), "opareport compliance -framework sox -input violations.json -output sox.html")
	}

	registry := compliance.Builtin()
	if cfg.FrameworksFile != "" {
		extra, err := compliance.LoadFrameworks(cfg.FrameworksFile)
		if err != nil {
			exitWithError("Loading frameworks file: %v", err)
		}
		registry = registry.Extend(extra...)
	}

	ui.PrintBanner()
	ui.PrintSection("Compliance Reporting")
	ui.PrintConfigLine("Input", cfg.InputFile)
	ui.PrintConfigLine("Framework", strings.ToLower(cfg.Framework))

	violations := loadViolations(cfg.InputFile)
	ui.PrintInfo(fmt.Sprintf("Loaded %d policy violations", len(violations)))

	if strings.EqualFold(cfg.Framework, config.FrameworkAll) {
		runAllFrameworks(registry, violations, cfg)
		return
	}

	result, err := registry.EvaluateFramework(cfg.Framework, violations)
	if err != nil {
		exitWithError("%v", err)
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = defaults.OutputDir
	}
	paths, err := writeComplianceReports(result, strings.ToLower(cfg.Framework), cfg.OutputFile, outDir, cfg.Formats)
	if err != nil {
		exitWithError("%v", err)
	}

	ui.PrintComplianceSummary(result)
	for _, path := range paths {
		ui.PrintSuccess("Generated compliance report: " + path)
	}
}

// runAllFrameworks fans one goroutine out per registered framework. Each
// evaluation reads only the immutable registry and violation sequence and
// writes to a distinct path, so a failure in one framework never aborts
// the others; it only surfaces in the final exit code.
func runAllFrameworks(registry *compliance.Registry, violations []violation.Record, cfg *config.Config) {
	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = defaults.ComplianceOutputDir
	}

	names := registry.Names()
	results := make([]*compliance.FrameworkResult, len(names))
	codes := exitcode.New()

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			result, err := registry.EvaluateFramework(name, violations)
			if err != nil {
				codes.RecordFailure(err.Error())
				return
			}
			if _, err := writeComplianceReports(result, name, "", outDir, cfg.Formats); err != nil {
				codes.RecordFailure(fmt.Sprintf("%s: %v", name, err))
				return
			}
			results[i] = &result
		}(i, name)
	}
	wg.Wait()

	for i, name := range names {
		if results[i] == nil {
			continue
		}
		fmt.Fprintln(os.Stderr)
		ui.PrintSection(strings.ToUpper(name))
		ui.PrintComplianceSummary(*results[i])
	}

	if code, reason := codes.ExitCode(); code != exitcode.Success {
		ui.PrintError(reason)
		os.Exit(int(code))
	}
	fmt.Fprintln(os.Stderr)
	ui.PrintSuccess("Compliance reporting complete")
}

// writeComplianceReports renders one framework result in each requested
// format. With an explicit output file, only the first format is written
// to exactly that path; otherwise files are named
// <framework>-compliance-report.<ext> under dir.
func writeComplianceReports(result compliance.FrameworkResult, name, outputFile, dir string, formats []string) ([]string, error) {
	var paths []string

	for _, format := range formats {
		path := outputFile
		if path == "" {
			if err := os.MkdirAll(dir, defaults.DirPerm); err != nil {
				return paths, fmt.Errorf("create output directory: %w", err)
			}
			path = filepath.Join(dir, fmt.Sprintf("%s-compliance-report.%s", name, format))
		}

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaults.FilePerm)
		if err != nil {
			return paths, fmt.Errorf("create %s: %w", path, err)
		}
		err = renderCompliance(f, result, format)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)

		if outputFile != "" {
			break
		}
	}

	return paths, nil
}

func renderCompliance(f *os.File, result compliance.FrameworkResult, format string) error {
	switch format {
	case "html":
		return report.WriteComplianceHTML(f, result)
	case "json":
		return report.NewComplianceReport(result, "").WriteJSON(f)
	case "pdf":
		return report.WriteCompliancePDF(f, result)
	default:
		return errors.New("unsupported compliance format " + format)
	}
}
