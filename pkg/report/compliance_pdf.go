package report

import (
	"fmt"
	"io"
	"time"

	gofpdf "github.com/go-pdf/fpdf"

	"github.com/opareport/opareport/pkg/compliance"
	"github.com/opareport/opareport/pkg/defaults"
)

// Status colors used by the PDF renderer, matching the HTML palette.
var pdfStatusColors = map[compliance.Status][3]int{
	compliance.StatusPass:    {39, 174, 96},
	compliance.StatusPartial: {230, 126, 34},
	compliance.StatusFail:    {231, 76, 60},
}

// WriteCompliancePDF renders a framework result as a printable PDF:
// title page header, overall score, status counts, and one block per
// control with its findings and evidence.
func WriteCompliancePDF(w io.Writer, result compliance.FrameworkResult) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header band.
	pdf.SetFillColor(44, 62, 80)
	pdf.Rect(0, 0, 210, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(10, 10)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s Compliance Report", result.Framework), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(10)
	pdf.CellFormat(0, 6, result.Description, "", 1, "L", false, 0, "")
	pdf.SetX(10)
	pdf.CellFormat(0, 6, "Generated: "+time.Now().UTC().Format(defaults.ReportTimestampLayout), "", 1, "L", false, 0, "")

	// Overall score.
	pdf.SetY(50)
	r, g, b := scoreRGB(result.OverallScore)
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 36)
	pdf.CellFormat(0, 16, fmt.Sprintf("%.1f%%", result.OverallScore), "", 1, "C", false, 0, "")
	pdf.SetTextColor(100, 100, 100)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "Overall Compliance Score", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Status counts.
	pdf.SetFont("Helvetica", "B", 11)
	counts := []struct {
		label string
		value int
		color [3]int
	}{
		{"Passing", result.PassCount, pdfStatusColors[compliance.StatusPass]},
		{"Partial", result.PartialCount, pdfStatusColors[compliance.StatusPartial]},
		{"Failing", result.FailCount, pdfStatusColors[compliance.StatusFail]},
		{"Total Controls", len(result.Controls), [3]int{44, 62, 80}},
	}
	colW := 190.0 / float64(len(counts))
	for _, c := range counts {
		pdf.SetTextColor(c.color[0], c.color[1], c.color[2])
		pdf.CellFormat(colW, 8, fmt.Sprintf("%d %s", c.value, c.label), "", 0, "C", false, 0, "")
	}
	pdf.Ln(14)

	// Per-control sections.
	pdf.SetTextColor(44, 62, 80)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Control Assessment Results", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, ctl := range result.Controls {
		writeControlBlock(pdf, ctl)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: render compliance pdf: %w", err)
	}
	return nil
}

func writeControlBlock(pdf *gofpdf.Fpdf, ctl compliance.ControlResult) {
	c := pdfStatusColors[ctl.Status]

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(140, 7, fmt.Sprintf("%s: %s", ctl.ControlID, ctl.Title), "", 0, "L", false, 0, "")
	pdf.SetTextColor(c[0], c[1], c[2])
	pdf.CellFormat(50, 7, fmt.Sprintf("%s (%d%%)", ctl.Status, ctl.Score), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, ctl.Description, "", "L", false)

	if len(ctl.Findings) > 0 {
		pdf.SetTextColor(133, 100, 4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Findings (%d)", len(ctl.Findings)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, f := range ctl.Findings {
			pdf.MultiCell(0, 5, "- "+f, "", "L", false)
		}
	}
	for _, e := range ctl.Evidence {
		pdf.SetTextColor(21, 87, 36)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, e, "", "L", false)
	}
	pdf.Ln(4)
}

// scoreRGB maps an overall score to the banner color used across formats.
func scoreRGB(score float64) (int, int, int) {
	switch {
	case score >= 80:
		return 39, 174, 96
	case score >= 60:
		return 230, 126, 34
	default:
		return 231, 76, 60
	}
}
