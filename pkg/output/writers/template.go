package writers

import (
	"fmt"
	"io"
	"os"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/opareport/opareport/pkg/output/dispatcher"
	"github.com/opareport/opareport/pkg/report"
)

// Compile-time interface check.
var _ dispatcher.Writer = (*TemplateWriter)(nil)

// TemplateConfig configures the template writer.
type TemplateConfig struct {
	// TemplatePath is the path to a custom template file.
	TemplatePath string

	// TemplateString is an inline template string (alternative to TemplatePath).
	TemplateString string

	// BuiltIn is the name of a built-in template: "text-summary" or "csv".
	BuiltIn string
}

// builtInTemplates contains pre-defined templates for common text outputs.
// Templates execute against the report document and have the full sprig
// function map available.
var builtInTemplates = map[string]string{
	"text-summary": `{{ .Metadata.Tool }} v{{ .Metadata.Version }} - policy violation summary
Generated: {{ .Metadata.GeneratedAt }}{{ if .Metadata.ScanTarget }}
Target:    {{ .Metadata.ScanTarget }}{{ end }}
Total violations: {{ .Summary.TotalViolations }}
{{- range $severity, $count := .Summary.BySeverity }}
  {{ $severity }}: {{ $count }}
{{- end }}
{{- if .Summary.ByCloud }}
By cloud:
{{- range $cloud, $count := .Summary.ByCloud }}
  {{ $cloud }}: {{ $count }}
{{- end }}
{{- end }}
`,
	"csv": `policy,resource,severity,message
{{- range .Violations }}
{{ .Policy }},{{ .Resource }},{{ .Severity }},{{ .Message | quote }}
{{- end }}
`,
}

// TemplateWriter renders the report through a user-supplied or built-in
// text/template. It buffers the report on Write and renders on Close.
type TemplateWriter struct {
	w    io.Writer
	mu   sync.Mutex
	tmpl *template.Template
	rep  *report.Report
}

// NewTemplateWriter creates a template writer from the given configuration.
// Exactly one template source must resolve: an explicit path, an inline
// string, or a built-in name.
func NewTemplateWriter(w io.Writer, cfg TemplateConfig) (*TemplateWriter, error) {
	text := cfg.TemplateString

	switch {
	case cfg.TemplatePath != "":
		data, err := os.ReadFile(cfg.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("template: read %s: %w", cfg.TemplatePath, err)
		}
		text = string(data)
	case cfg.BuiltIn != "":
		builtin, ok := builtInTemplates[cfg.BuiltIn]
		if !ok {
			return nil, fmt.Errorf("template: unknown built-in %q", cfg.BuiltIn)
		}
		text = builtin
	case text == "":
		return nil, fmt.Errorf("template: no template source configured")
	}

	tmpl, err := template.New("output").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("template: parse: %w", err)
	}

	return &TemplateWriter{w: w, tmpl: tmpl}, nil
}

// Write buffers the report for rendering on Close.
func (tw *TemplateWriter) Write(rep *report.Report) error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.rep = rep
	return nil
}

// Flush is a no-op; the template renders as a whole on Close.
func (tw *TemplateWriter) Flush() error {
	return nil
}

// Close renders the template and closes the underlying writer if it
// implements io.Closer.
func (tw *TemplateWriter) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.rep != nil {
		if err := tw.tmpl.Execute(tw.w, tw.rep); err != nil {
			return fmt.Errorf("template: execute: %w", err)
		}
	}

	if closer, ok := tw.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
