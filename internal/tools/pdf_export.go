package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"mealplan-mcp/internal/pdfexport"
)

// PDFExportTool handles the export_mealplans_pdf MCP tool.
type PDFExportTool struct {
	exporter *pdfexport.Exporter
}

// NewPDFExportTool creates a PDFExportTool over the given exporter.
func NewPDFExportTool(exporter *pdfexport.Exporter) *PDFExportTool {
	return &PDFExportTool{exporter: exporter}
}

// Definition returns the MCP tool definition for registration.
func (t *PDFExportTool) Definition() mcp.Tool {
	return mcp.NewTool("export_mealplans_pdf",
		mcp.WithDescription(
			"Export every meal plan in a date range (inclusive) to a single "+
				"PDF document and return its path. An empty range produces a "+
				"PDF saying no plans were found.",
		),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("Range start as YYYY-MM-DD."),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("Range end as YYYY-MM-DD, inclusive."),
		),
	)
}

// Handle processes the export_mealplans_pdf tool call.
func (t *PDFExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := t.exporter.Export(req.GetString("start_date", ""), req.GetString("end_date", ""))
	if err != nil {
		if isValidationErr(err) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("exporting meal plans: %w", err)
	}

	return mcp.NewToolResultText(fmt.Sprintf("Meal plans exported to `%s`", path)), nil
}
