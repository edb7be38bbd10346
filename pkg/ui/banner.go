// Package ui provides console output styling for the opareport CLI.
// All status output goes to stderr so stdout stays clean for piped data
// (e.g. the extract command).
package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/opareport/opareport/pkg/defaults"
)

// Global UI state
var (
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetNoColor disables colored output.
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// init honors the NO_COLOR convention and non-TTY output.
func init() {
	if os.Getenv("NO_COLOR") != "" || !StderrIsTerminal() {
		SetNoColor(true)
	}
}

// PrintBanner prints the tool banner with version badge.
func PrintBanner() {
	banner := BannerStyle.Render(defaults.ToolName) + " " + VersionStyle.Render("v"+defaults.Version)
	fmt.Fprintln(os.Stderr, banner)
	fmt.Fprintln(os.Stderr, SubtitleStyle.Render("  policy-as-code compliance reporting"))
	fmt.Fprintln(os.Stderr)
}

// PrintSection prints a section header.
func PrintSection(title string) {
	fmt.Fprintln(os.Stderr, SectionStyle.Render(title))
}

// PrintConfigLine prints one aligned key/value configuration line.
func PrintConfigLine(key, value string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n", ConfigLabelStyle.Render(key+":"), ConfigValueStyle.Render(value))
}

// PrintSuccess prints a success message (to stderr).
func PrintSuccess(message string) {
	fmt.Fprintln(os.Stderr, PassStyle.Render("  [+] "+message))
}

// PrintError prints an error message (to stderr).
func PrintError(message string) {
	fmt.Fprintln(os.Stderr, FailStyle.Render("  [X] "+message))
}

// PrintWarning prints a warning message (to stderr).
func PrintWarning(message string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("  [!] "+message))
}

// PrintInfo prints an info message (to stderr).
func PrintInfo(message string) {
	fmt.Fprintln(os.Stderr, HelpStyle.Render("  [i] "+message))
}
