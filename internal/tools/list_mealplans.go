package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"mealplan-mcp/internal/mealplan"
)

// ListMealplansTool handles the list_mealplans MCP tool.
type ListMealplansTool struct {
	query  *mealplan.Query
	logger *log.Logger
}

// NewListMealplansTool creates a ListMealplansTool over the given query.
func NewListMealplansTool(query *mealplan.Query, logger *log.Logger) *ListMealplansTool {
	return &ListMealplansTool{query: query, logger: logger}
}

// Definition returns the MCP tool definition for registration.
func (t *ListMealplansTool) Definition() mcp.Tool {
	return mcp.NewTool("list_mealplans",
		mcp.WithDescription(
			"List meal plans in a date range (inclusive) as JSON records "+
				"sorted by date, then meal type, then title. "+
				"An end date before the start date yields an empty list.",
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

// Handle processes the list_mealplans tool call.
func (t *ListMealplansTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, skipped, err := t.query.Range(req.GetString("start_date", ""), req.GetString("end_date", ""))
	if err != nil {
		if isValidationErr(err) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("listing meal plans: %w", err)
	}
	for _, s := range skipped {
		t.logger.Warn("skipping corrupt meal plan", "path", s.Path, "err", s.Err)
	}

	if records == nil {
		records = []mealplan.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding meal plans: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
