package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"mealplan-mcp/internal/ignored"
)

// AddIgnoredTool handles the add_ignored_ingredient MCP tool.
type AddIgnoredTool struct {
	store *ignored.Store
}

// NewAddIgnoredTool creates an AddIgnoredTool over the given store.
func NewAddIgnoredTool(store *ignored.Store) *AddIgnoredTool {
	return &AddIgnoredTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *AddIgnoredTool) Definition() mcp.Tool {
	return mcp.NewTool("add_ignored_ingredient",
		mcp.WithDescription(
			"Add an ingredient to the ignored set. Ignored ingredients still "+
				"appear on grocery lists but struck through, so pantry staples "+
				"like salt don't clutter the shopping. Names are lowercased "+
				"and deduplicated.",
		),
		mcp.WithString("ingredient_name",
			mcp.Required(),
			mcp.Description("Ingredient name to ignore. Example: 'salt'"),
		),
	)
}

// Handle processes the add_ignored_ingredient tool call.
func (t *AddIgnoredTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("ingredient_name", "")
	if err := t.store.Add(name); err != nil {
		if errors.Is(err, ignored.ErrEmptyName) {
			return mcp.NewToolResultError("'ingredient_name' is required — provide a non-empty ingredient name"), nil
		}
		return nil, fmt.Errorf("adding ignored ingredient: %w", err)
	}

	normalized := strings.ToLower(strings.TrimSpace(name))
	return mcp.NewToolResultText(fmt.Sprintf("Added %q to ignored ingredients.", normalized)), nil
}
