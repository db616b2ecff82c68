// Package report renders the downloadable PDF evaluation report.
package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Data carries the fields the report shows; the orchestrator selects
// them from the finished analysis.
type Data struct {
	GeneratedOn   string
	CandidateName string
	TargetRole    string
	FinalScore    float64
	KeywordScore  float64
	AIScore       float64
	Strengths     []string
	Improvements  []string
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Render writes an A4 report to path. Callers treat any error as a
// rendering failure to log and swallow; it must never fail the
// analysis itself.
func (g *Generator) Render(path string, data Data) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "ATS Resume Evaluation Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated on: %s", data.GeneratedOn))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Candidate Details")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Candidate: %s", data.CandidateName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Target Role: %s", data.TargetRole))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Scoring Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Final ATS Score: %.2f/100", data.FinalScore))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Keyword Match: %.2f%%", data.KeywordScore))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("AI Analysis Score: %.2f/100", data.AIScore))
	pdf.Ln(12)

	writeList(pdf, "Key Strengths", data.Strengths)
	writeList(pdf, "Improvements", data.Improvements)

	return pdf.OutputFileAndClose(path)
}

func writeList(pdf *fpdf.Fpdf, heading string, items []string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, heading)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)

	if len(items) > 5 {
		items = items[:5]
	}
	for _, item := range items {
		pdf.MultiCell(0, 5, fmt.Sprintf("- %s", item), "", "L", false)
		pdf.Ln(1)
	}
	pdf.Ln(6)
}
