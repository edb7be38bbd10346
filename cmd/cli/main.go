// Command opareport generates policy compliance reports from
// policy-engine evaluation output (OPA, conftest).
package main

import (
	"fmt"
	"os"

	"github.com/opareport/opareport/pkg/defaults"
	"github.com/opareport/opareport/pkg/ui"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate", "report":
		runGenerate()
	case "compliance", "comply":
		runCompliance()
	case "extract":
		runExtract()
	case "frameworks", "framework", "list":
		runFrameworks()
	case "-h", "--help", "help":
		printUsage()
		os.Exit(0)
	case "-v", "--version", "version":
		fmt.Println(defaults.ToolName + " v" + defaults.Version)
		os.Exit(0)
	default:
		ui.PrintError(fmt.Sprintf("Unknown command %q", os.Args[1]))
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `%s v%s - policy-as-code compliance reporting

Usage:
  %s <command> [flags]

Commands:
  generate    Generate policy violation reports (html, json, csv, template)
  compliance  Generate compliance framework reports (sox, pci, ffiec, glba)
  extract     Extract violations from 'opa eval' JSON on stdin
  frameworks  List registered compliance frameworks and controls
  version     Print version
  help        Show this help

Examples:
  %[3]s generate -input violations.json -output reports -format html,json,csv
  %[3]s compliance -framework sox -input violations.json -output sox.html
  %[3]s compliance -framework all -input violations.json -output-dir reports/compliance
  opa eval -d policies/ -i plan.json --format json 'data' | %[3]s extract
`, defaults.ToolName, defaults.Version, defaults.ToolName)
}
