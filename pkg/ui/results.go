package ui

import (
	"fmt"
	"os"

	"github.com/opareport/opareport/pkg/compliance"
	"github.com/opareport/opareport/pkg/summary"
	"github.com/opareport/opareport/pkg/violation"
)

// severityOrder lists the console breakdown order; UNKNOWN renders last.
var severityOrder = []violation.Severity{
	violation.SeverityCritical,
	violation.SeverityHigh,
	violation.SeverityMedium,
	violation.SeverityLow,
	violation.SeverityUnknown,
}

// PrintSeveritySummary prints the violations-by-severity breakdown.
// Buckets with zero violations are omitted.
func PrintSeveritySummary(s summary.Summary) {
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		StatLabelStyle.Render("Total violations:"),
		StatValueStyle.Render(fmt.Sprintf("%d", s.TotalViolations)))

	if s.TotalViolations == 0 {
		return
	}

	fmt.Fprintln(os.Stderr, StatLabelStyle.Render("  Violations by severity:"))
	for _, sev := range severityOrder {
		if count := s.Count(sev); count > 0 {
			fmt.Fprintf(os.Stderr, "    %s: %d\n", SeverityStyle(sev.String()).Render(sev.String()), count)
		}
	}
}

// PrintComplianceSummary prints the framework score and status counts.
func PrintComplianceSummary(res compliance.FrameworkResult) {
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		StatLabelStyle.Render("Compliance score:"),
		StatValueStyle.Render(fmt.Sprintf("%.1f%%", res.OverallScore)))
	fmt.Fprintf(os.Stderr, "    %s: %d, %s: %d, %s: %d\n",
		PassStyle.Render("Pass"), res.PassCount,
		PartialStyle.Render("Partial"), res.PartialCount,
		FailStyle.Render("Fail"), res.FailCount)
}

// PrintFramework prints one framework's catalog entry for the frameworks
// command: display name, description, and its control list.
func PrintFramework(fw compliance.Framework) {
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		StatValueStyle.Render(fw.Name),
		SubtitleStyle.Render("- "+fw.DisplayName))
	fmt.Fprintf(os.Stderr, "    %s\n", HelpStyle.Render(fw.Description))
	for _, ctl := range fw.Controls {
		fmt.Fprintf(os.Stderr, "    %s  %s\n",
			ConfigValueStyle.Render(ctl.ID),
			HelpStyle.Render(ctl.Title))
	}
}
