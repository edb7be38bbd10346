package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/opareport/opareport/pkg/jsonutil"
	"github.com/opareport/opareport/pkg/ui"
	"github.com/opareport/opareport/pkg/violation"
)

// runExtract reads `opa eval --format json` output from stdin, collects
// every deny-array violation, and writes a {"violations": [...]} document
// to stdout for feeding back into generate or compliance.
func runExtract() {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	fs.Parse(os.Args[2:])

	if ui.StdoutIsTerminal() {
		ui.PrintWarning("Writing JSON to a terminal; pipe stdout to a file or to 'opareport generate'")
	}

	violations, err := violation.ExtractOPAEval(os.Stdin)
	if err != nil {
		exitWithError("Extracting violations: %v", err)
	}
	if violations == nil {
		violations = []violation.Record{}
	}

	out := map[string]any{"violations": violations}
	enc := jsonutil.NewStreamEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		exitWithError("Encoding violations: %v", err)
	}

	ui.PrintInfo(fmt.Sprintf("Extracted %d violations", len(violations)))
}
