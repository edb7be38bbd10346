package writers

import (
	"fmt"
	"html/template"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/opareport/opareport/pkg/defaults"
	"github.com/opareport/opareport/pkg/output/dispatcher"
	"github.com/opareport/opareport/pkg/report"
	"github.com/opareport/opareport/pkg/violation"
)

// Compile-time interface check.
var _ dispatcher.Writer = (*HTMLWriter)(nil)

// HTMLConfig configures the HTML report writer.
type HTMLConfig struct {
	// Title is the report title (default: "Policy Violation Report").
	Title string
}

// HTMLWriter writes the report as a styled HTML dashboard. The report is
// buffered on Write and the complete document is rendered on Close.
type HTMLWriter struct {
	w      io.Writer
	mu     sync.Mutex
	config HTMLConfig
	rep    *report.Report
}

// NewHTMLWriter creates a new HTML report writer.
func NewHTMLWriter(w io.Writer, config HTMLConfig) *HTMLWriter {
	if config.Title == "" {
		config.Title = "Policy Violation Report"
	}
	return &HTMLWriter{w: w, config: config}
}

// Write buffers the report for rendering on Close.
func (hw *HTMLWriter) Write(rep *report.Report) error {
	hw.mu.Lock()
	defer hw.mu.Unlock()
	hw.rep = rep
	return nil
}

// Flush is a no-op; the document is rendered as a whole on Close.
func (hw *HTMLWriter) Flush() error {
	return nil
}

// Close renders and writes the complete HTML report.
func (hw *HTMLWriter) Close() error {
	hw.mu.Lock()
	defer hw.mu.Unlock()

	if hw.rep != nil {
		if err := htmlTemplate.Execute(hw.w, hw.prepareTemplateData()); err != nil {
			return fmt.Errorf("html: render: %w", err)
		}
	}

	if closer, ok := hw.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// severityGroup holds the violations of one severity bucket for display.
type severityGroup struct {
	Severity   string
	CSSClass   string
	Violations []violationRow
}

// violationRow is one violation flattened for the template.
type violationRow struct {
	Policy      string
	Resource    string
	Severity    string
	Message     string
	Remediation string
}

// breakdownRow is one label/count pair for the breakdown tables.
type breakdownRow struct {
	Label string
	Count int
}

type htmlData struct {
	Config      HTMLConfig
	Metadata    report.Metadata
	GeneratedAt string
	Total       int
	Critical    int
	High        int
	Medium      int
	Low         int
	Unknown     int
	ByCloud     []breakdownRow
	ByCategory  []breakdownRow
	Groups      []severityGroup
}

// displayOrder lists the severity buckets in display order; the UNKNOWN
// group renders last, after the recognized severities.
var displayOrder = []violation.Severity{
	violation.SeverityCritical,
	violation.SeverityHigh,
	violation.SeverityMedium,
	violation.SeverityLow,
	violation.SeverityUnknown,
}

var severityCSS = map[violation.Severity]string{
	violation.SeverityCritical: "critical",
	violation.SeverityHigh:     "high",
	violation.SeverityMedium:   "medium",
	violation.SeverityLow:      "low",
	violation.SeverityUnknown:  "unknown",
}

func (hw *HTMLWriter) prepareTemplateData() htmlData {
	rep := hw.rep
	data := htmlData{
		Config:      hw.config,
		Metadata:    rep.Metadata,
		GeneratedAt: time.Now().Format(defaults.ReportTimestampLayout),
		Total:       rep.Summary.TotalViolations,
		Critical:    rep.Summary.Count(violation.SeverityCritical),
		High:        rep.Summary.Count(violation.SeverityHigh),
		Medium:      rep.Summary.Count(violation.SeverityMedium),
		Low:         rep.Summary.Count(violation.SeverityLow),
		Unknown:     rep.Summary.Count(violation.SeverityUnknown),
		ByCloud:     sortedBreakdown(rep.Summary.ByCloud),
		ByCategory:  sortedBreakdown(rep.Summary.ByCategory),
	}

	grouped := make(map[violation.Severity][]violationRow)
	for _, v := range rep.Violations {
		bucket := v.Severity().Bucket()
		grouped[bucket] = append(grouped[bucket], violationRow{
			Policy:      v.Policy(),
			Resource:    v.Resource(),
			Severity:    v.Severity().String(),
			Message:     v.Message(),
			Remediation: v.Remediation(),
		})
	}
	for _, sev := range displayOrder {
		if rows := grouped[sev]; len(rows) > 0 {
			data.Groups = append(data.Groups, severityGroup{
				Severity:   sev.String(),
				CSSClass:   severityCSS[sev],
				Violations: rows,
			})
		}
	}

	return data
}

// sortedBreakdown flattens a count map into rows ordered by descending
// count, ties broken alphabetically, so report ordering is deterministic.
func sortedBreakdown(m map[string]int) []breakdownRow {
	rows := make([]breakdownRow, 0, len(m))
	for label, count := range m {
		rows = append(rows, breakdownRow{Label: label, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Config.Title}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: #f5f5f5;
            padding: 20px;
            line-height: 1.6;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
        }
        .header {
            background: linear-gradient(135deg, #2c3e50 0%, #34495e 100%);
            color: white;
            padding: 30px;
            border-radius: 8px 8px 0 0;
        }
        .header h1 { font-size: 28px; margin-bottom: 8px; }
        .header p { opacity: 0.9; font-size: 14px; }
        .cards {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(150px, 1fr));
            gap: 16px;
            padding: 30px;
            border-bottom: 2px solid #eee;
        }
        .card { background: #f8f9fa; border-radius: 8px; padding: 18px; text-align: center; }
        .card .value { font-size: 32px; font-weight: bold; }
        .card.total .value { color: #2c3e50; }
        .card.critical .value { color: #c0392b; }
        .card.high .value { color: #e74c3c; }
        .card.medium .value { color: #e67e22; }
        .card.low .value { color: #27ae60; }
        .card.unknown .value { color: #7f8c8d; }
        .breakdowns { display: flex; gap: 30px; padding: 30px; border-bottom: 2px solid #eee; flex-wrap: wrap; }
        .breakdown { flex: 1; min-width: 220px; }
        .breakdown h3 { margin-bottom: 10px; color: #2c3e50; }
        .breakdown table { width: 100%; border-collapse: collapse; }
        .breakdown td { padding: 6px 8px; border-bottom: 1px solid #eee; }
        .breakdown td:last-child { text-align: right; font-weight: bold; }
        .violations { padding: 30px; }
        .group { margin-bottom: 25px; }
        .group h3 { margin-bottom: 12px; }
        .group.critical h3 { color: #c0392b; }
        .group.high h3 { color: #e74c3c; }
        .group.medium h3 { color: #e67e22; }
        .group.low h3 { color: #27ae60; }
        .group.unknown h3 { color: #7f8c8d; }
        .violation {
            background: #f8f9fa;
            border-left: 4px solid #bdc3c7;
            border-radius: 4px;
            padding: 14px;
            margin-bottom: 10px;
        }
        .group.critical .violation { border-left-color: #c0392b; }
        .group.high .violation { border-left-color: #e74c3c; }
        .group.medium .violation { border-left-color: #e67e22; }
        .group.low .violation { border-left-color: #27ae60; }
        .violation .policy { font-family: monospace; font-weight: bold; color: #2c3e50; }
        .violation .meta { color: #666; font-size: 13px; margin: 4px 0; }
        .violation .remediation { color: #155724; font-size: 13px; }
        .empty { padding: 40px; text-align: center; color: #27ae60; font-size: 20px; }
        .footer {
            padding: 16px 30px;
            background: #f8f9fa;
            border-radius: 0 0 8px 8px;
            text-align: center;
            color: #666;
            font-size: 13px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Config.Title}}</h1>
            {{if .Metadata.ScanTarget}}<p>Scan target: {{.Metadata.ScanTarget}}</p>{{end}}
            <p>Generated: {{.GeneratedAt}} &middot; Report {{.Metadata.ReportID}}</p>
        </div>

        <div class="cards">
            <div class="card total"><div class="value">{{.Total}}</div><div>Total</div></div>
            <div class="card critical"><div class="value">{{.Critical}}</div><div>Critical</div></div>
            <div class="card high"><div class="value">{{.High}}</div><div>High</div></div>
            <div class="card medium"><div class="value">{{.Medium}}</div><div>Medium</div></div>
            <div class="card low"><div class="value">{{.Low}}</div><div>Low</div></div>
            {{if .Unknown}}<div class="card unknown"><div class="value">{{.Unknown}}</div><div>Unknown</div></div>{{end}}
        </div>

        {{if or .ByCloud .ByCategory}}
        <div class="breakdowns">
            {{if .ByCloud}}
            <div class="breakdown">
                <h3>By Cloud Provider</h3>
                <table>
                {{range .ByCloud}}<tr><td>{{.Label}}</td><td>{{.Count}}</td></tr>
                {{end}}</table>
            </div>
            {{end}}
            {{if .ByCategory}}
            <div class="breakdown">
                <h3>By Category</h3>
                <table>
                {{range .ByCategory}}<tr><td>{{.Label}}</td><td>{{.Count}}</td></tr>
                {{end}}</table>
            </div>
            {{end}}
        </div>
        {{end}}

        <div class="violations">
        {{if .Groups}}
            {{range .Groups}}
            <div class="group {{.CSSClass}}">
                <h3>{{.Severity}} ({{len .Violations}})</h3>
                {{range .Violations}}
                <div class="violation">
                    <div class="policy">{{.Policy}}</div>
                    <div class="meta">Resource: {{.Resource}} &middot; Severity: {{.Severity}}</div>
                    {{if .Message}}<div class="meta">{{.Message}}</div>{{end}}
                    {{if .Remediation}}<div class="remediation">Remediation: {{.Remediation}}</div>{{end}}
                </div>
                {{end}}
            </div>
            {{end}}
        {{else}}
            <div class="empty">No policy violations found</div>
        {{end}}
        </div>

        <div class="footer">Generated by {{.Metadata.Tool}} v{{.Metadata.Version}}</div>
    </div>
</body>
</html>
`))
