package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"mealplan-mcp/internal/grocery"
)

// GroceryTool handles the generate_grocery_list MCP tool.
type GroceryTool struct {
	generator *grocery.Generator
}

// NewGroceryTool creates a GroceryTool over the given generator.
func NewGroceryTool(generator *grocery.Generator) *GroceryTool {
	return &GroceryTool{generator: generator}
}

// Definition returns the MCP tool definition for registration.
func (t *GroceryTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_grocery_list",
		mcp.WithDescription(
			"Generate a grocery list markdown file for all meal plans in a "+
				"date range (inclusive). Ingredients are merged across dishes; "+
				"ignored ingredients are struck through instead of dropped. "+
				"Returns the path of the written file.",
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

// Handle processes the generate_grocery_list tool call.
func (t *GroceryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := t.generator.Generate(req.GetString("start_date", ""), req.GetString("end_date", ""))
	if err != nil {
		if isValidationErr(err) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("generating grocery list: %w", err)
	}

	return mcp.NewToolResultText(fmt.Sprintf("Grocery list written to `%s`", path)), nil
}
