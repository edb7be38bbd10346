package report

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/opareport/opareport/pkg/compliance"
	"github.com/opareport/opareport/pkg/defaults"
)

// complianceData is the template payload for one framework report.
type complianceData struct {
	Result      compliance.FrameworkResult
	GeneratedAt string
	ScoreColor  template.CSS
	Tool        string
	Version     string
}

// scoreColor returns the banner color for an overall score:
// green at 80 and above, orange at 60-79, red below.
func scoreColor(score float64) template.CSS {
	switch {
	case score >= 80:
		return "#27ae60"
	case score >= 60:
		return "#e67e22"
	default:
		return "#e74c3c"
	}
}

var complianceFuncs = template.FuncMap{
	"lower": func(s compliance.Status) string {
		switch s {
		case compliance.StatusPass:
			return "pass"
		case compliance.StatusPartial:
			return "partial"
		default:
			return "fail"
		}
	},
	"critical": func(score int) string {
		if score < 50 {
			return "critical"
		}
		return ""
	},
}

// WriteComplianceHTML renders a framework result as a standalone HTML
// document: overall score, pass/partial/fail counts, and one section per
// control with status badge, score, findings and evidence.
func WriteComplianceHTML(w io.Writer, result compliance.FrameworkResult) error {
	data := complianceData{
		Result:      result,
		GeneratedAt: time.Now().UTC().Format(defaults.ReportTimestampLayout),
		ScoreColor:  scoreColor(result.OverallScore),
		Tool:        defaults.ToolName,
		Version:     defaults.Version,
	}
	if err := complianceTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("report: render compliance html: %w", err)
	}
	return nil
}

var complianceTemplate = template.Must(template.New("compliance").Funcs(complianceFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Result.Framework}} Compliance Report</title>
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
        .header h1 { font-size: 32px; margin-bottom: 10px; }
        .header p { opacity: 0.9; }
        .summary { padding: 30px; border-bottom: 2px solid #eee; }
        .score-card {
            text-align: center;
            padding: 20px;
            background: #f8f9fa;
            border-radius: 8px;
            margin-bottom: 20px;
        }
        .score-value { font-size: 64px; font-weight: bold; color: {{.ScoreColor}}; }
        .score-label { font-size: 18px; color: #666; margin-top: 10px; }
        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 20px;
            margin-top: 20px;
        }
        .stat { background: #f8f9fa; padding: 20px; border-radius: 8px; text-align: center; }
        .stat-value { font-size: 36px; font-weight: bold; margin-bottom: 5px; }
        .stat-pass { color: #27ae60; }
        .stat-partial { color: #e67e22; }
        .stat-fail { color: #e74c3c; }
        .controls { padding: 30px; }
        .control {
            background: #f8f9fa;
            padding: 25px;
            margin-bottom: 20px;
            border-radius: 8px;
            border-left: 5px solid;
        }
        .control.pass { border-left-color: #27ae60; }
        .control.partial { border-left-color: #e67e22; }
        .control.fail { border-left-color: #e74c3c; }
        .control-header {
            display: flex;
            justify-content: space-between;
            align-items: center;
            margin-bottom: 15px;
        }
        .control-title { font-size: 20px; font-weight: bold; color: #2c3e50; }
        .status-badge {
            padding: 6px 16px;
            border-radius: 20px;
            font-size: 14px;
            font-weight: bold;
            color: white;
        }
        .status-badge.pass { background: #27ae60; }
        .status-badge.partial { background: #e67e22; }
        .status-badge.fail { background: #e74c3c; }
        .control-description { color: #666; margin-bottom: 15px; }
        .findings {
            background: #fff3cd;
            border-left: 4px solid #ffc107;
            padding: 15px;
            margin-top: 15px;
            border-radius: 4px;
        }
        .findings.critical { background: #f8d7da; border-left-color: #dc3545; }
        .findings h4 { margin-bottom: 10px; color: #856404; }
        .findings.critical h4 { color: #721c24; }
        .findings ul { margin-left: 20px; }
        .findings li { margin-bottom: 5px; }
        .evidence {
            background: #d4edda;
            border-left: 4px solid #28a745;
            padding: 15px;
            margin-top: 15px;
            border-radius: 4px;
        }
        .evidence h4 { margin-bottom: 10px; color: #155724; }
        .footer {
            padding: 20px 30px;
            background: #f8f9fa;
            border-radius: 0 0 8px 8px;
            text-align: center;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Result.Framework}} Compliance Report</h1>
            <p>{{.Result.Description}}</p>
            <p>Generated: {{.GeneratedAt}}</p>
        </div>

        <div class="summary">
            <div class="score-card">
                <div class="score-value">{{.Result.OverallScore}}%</div>
                <div class="score-label">Overall Compliance Score</div>
            </div>

            <div class="stats">
                <div class="stat">
                    <div class="stat-value stat-pass">{{.Result.PassCount}}</div>
                    <div>Passing Controls</div>
                </div>
                <div class="stat">
                    <div class="stat-value stat-partial">{{.Result.PartialCount}}</div>
                    <div>Partial Compliance</div>
                </div>
                <div class="stat">
                    <div class="stat-value stat-fail">{{.Result.FailCount}}</div>
                    <div>Failing Controls</div>
                </div>
                <div class="stat">
                    <div class="stat-value">{{len .Result.Controls}}</div>
                    <div>Total Controls</div>
                </div>
            </div>
        </div>

        <div class="controls">
            <h2 style="margin-bottom: 20px;">Control Assessment Results</h2>
{{- range .Result.Controls }}
            <div class="control {{lower .Status}}">
                <div class="control-header">
                    <div class="control-title">{{.ControlID}}: {{.Title}}</div>
                    <div>
                        <span class="status-badge {{lower .Status}}">{{.Status}}</span>
                        <span style="margin-left: 10px; font-weight: bold; color: #666;">
                            Score: {{.Score}}%
                        </span>
                    </div>
                </div>
                <div class="control-description">{{.Description}}</div>
{{- if .Findings }}
                <div class="findings {{critical .Score}}">
                    <h4>Findings ({{len .Findings}})</h4>
                    <ul>
{{- range .Findings }}
                        <li>{{.}}</li>
{{- end }}
                    </ul>
                </div>
{{- end }}
{{- if .Evidence }}
                <div class="evidence">
                    <h4>Evidence</h4>
                    <ul>
{{- range .Evidence }}
                        <li>{{.}}</li>
{{- end }}
                    </ul>
                </div>
{{- end }}
            </div>
{{- end }}
        </div>

        <div class="footer">
            <p>This report was generated by {{.Tool}} v{{.Version}}.</p>
            <p>For questions or concerns, please contact your DevSecOps team.</p>
        </div>
    </div>
</body>
</html>
`))
