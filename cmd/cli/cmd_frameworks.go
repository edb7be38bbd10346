package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/opareport/opareport/pkg/compliance"
	"github.com/opareport/opareport/pkg/ui"
)

// runFrameworks lists the registered compliance frameworks and their
// controls, including any loaded from a custom frameworks file.
func runFrameworks() {
	fs := flag.NewFlagSet("frameworks", flag.ExitOnError)
	frameworksFile := fs.String("frameworks-file", "", "YAML file with additional framework definitions")
	fs.Parse(os.Args[2:])

	registry := compliance.Builtin()
	if *frameworksFile != "" {
		extra, err := compliance.LoadFrameworks(*frameworksFile)
		if err != nil {
			exitWithError("Loading frameworks file: %v", err)
		}
		registry = registry.Extend(extra...)
	}

	ui.PrintBanner()
	ui.PrintSection("Registered Frameworks")
	for _, name := range registry.Names() {
		fw, _ := registry.Lookup(name)
		fmt.Fprintln(os.Stderr)
		ui.PrintFramework(fw)
	}
}
