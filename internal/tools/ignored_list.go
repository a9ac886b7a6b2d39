package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"mealplan-mcp/internal/ignored"
)

// ListIgnoredTool handles the list_ignored_ingredients MCP tool.
type ListIgnoredTool struct {
	store *ignored.Store
}

// NewListIgnoredTool creates a ListIgnoredTool over the given store.
func NewListIgnoredTool(store *ignored.Store) *ListIgnoredTool {
	return &ListIgnoredTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ListIgnoredTool) Definition() mcp.Tool {
	return mcp.NewTool("list_ignored_ingredients",
		mcp.WithDescription("List the ignored ingredients, sorted alphabetically."),
	)
}

// Handle processes the list_ignored_ingredients tool call.
func (t *ListIgnoredTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := t.store.Load()
	if len(names) == 0 {
		return mcp.NewToolResultText("No ignored ingredients."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Ignored Ingredients (%d)\n", len(names))
	for _, name := range names {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	return mcp.NewToolResultText(b.String()), nil
}
