package ui

import "github.com/charmbracelet/lipgloss"

// Color palette inspired by top security tools
var (
	// Brand colors
	Primary   = lipgloss.Color("#7D56F4") // Purple - brand color
	Secondary = lipgloss.Color("#00D4AA") // Cyan/Teal

	// Severity colors (matching OWASP/Nuclei standards)
	Critical = lipgloss.Color("#FF0000") // Bright red
	High     = lipgloss.Color("#FF6B6B") // Red/Orange
	Medium   = lipgloss.Color("#FFD93D") // Yellow
	Low      = lipgloss.Color("#6BCB77") // Green
	Unknown  = lipgloss.Color("#6B7280") // Gray

	// Status colors
	Success = lipgloss.Color("#00D26A") // Bright green
	Warning = lipgloss.Color("#FFB800") // Amber
	Error   = lipgloss.Color("#FF3838") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray

	// Control status colors
	Pass    = lipgloss.Color("#00D26A") // Green
	Partial = lipgloss.Color("#FFB800") // Amber
	Fail    = lipgloss.Color("#FF3838") // Red
)

// Pre-configured styles
var (
	// Title and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(Primary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Banner style
	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Version badge
	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Section headers
	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true).
			MarginTop(1)

	// Configuration display
	ConfigLabelStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Width(15)

	ConfigValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA"))

	// Statistics
	StatLabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	// Status styles
	PassStyle = lipgloss.NewStyle().
			Foreground(Pass).
			Bold(true)

	PartialStyle = lipgloss.NewStyle().
			Foreground(Partial).
			Bold(true)

	FailStyle = lipgloss.NewStyle().
			Foreground(Fail).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// SeverityStyle returns the style for a severity tag.
func SeverityStyle(severity string) lipgloss.Style {
	var color lipgloss.Color
	switch severity {
	case "CRITICAL":
		color = Critical
	case "HIGH":
		color = High
	case "MEDIUM":
		color = Medium
	case "LOW":
		color = Low
	default:
		color = Unknown
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// StatusStyle returns the style for a control status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "PASS":
		return PassStyle
	case "PARTIAL":
		return PartialStyle
	default:
		return FailStyle
	}
}
