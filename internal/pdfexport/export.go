// Package pdfexport renders a date range of meal plans into a single
// PDF document.
package pdfexport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"mealplan-mcp/internal/mealplan"
	"mealplan-mcp/internal/paths"
)

// Exporter writes consolidated PDF exports next to the grocery lists.
type Exporter struct {
	paths paths.Paths
	query *mealplan.Query
}

// NewExporter creates an exporter over the given query.
func NewExporter(p paths.Paths, query *mealplan.Query) *Exporter {
	return &Exporter{paths: p, query: query}
}

// Export renders every meal plan in [start, end] inclusive to the
// derived export path and returns that path. The records come from the
// full-content query, so the PDF reflects exactly what is on disk. An
// empty range produces a placeholder page rather than an error.
func (e *Exporter) Export(start, end string) (string, error) {
	records, _, err := e.query.RangeWithContent(start, end)
	if err != nil {
		return "", err
	}

	startDay, endDay, err := mealplan.ParseRange(start, end)
	if err != nil {
		return "", err
	}

	path := e.paths.PDFExportPath(startDay, endDay)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Meal Plans Export", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0, 122, 204)
	pdf.CellFormat(0, 14, "Meal Plans Export", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(128, 128, 128)
	subtitle := start
	if start != end {
		subtitle = start + " to " + end
	}
	pdf.CellFormat(0, 10, subtitle, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	if len(records) == 0 {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(0, 122, 204)
		pdf.CellFormat(0, 10, "No meal plans found", "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 8, "No meal plans were found for the specified date range.", "", 1, "C", false, 0, "")
	} else {
		currentDate := ""
		for _, rec := range records {
			if rec.Date != currentDate {
				if currentDate != "" {
					pdf.AddPage()
				}
				currentDate = rec.Date
			}
			writeRecord(pdf, rec)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing PDF export: %w", err)
	}
	return path, nil
}

func writeRecord(pdf *fpdf.Fpdf, rec mealplan.ContentRecord) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 122, 204)
	pdf.MultiCell(0, 8, rec.Title, "", "L", false)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s - %s", rec.Date, rec.MealType), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range strings.Split(rec.Content, "\n") {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(6)
}
