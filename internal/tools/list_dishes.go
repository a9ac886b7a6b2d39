package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"mealplan-mcp/internal/dish"
)

// ListDishesTool handles the list_dishes MCP tool.
type ListDishesTool struct {
	store  *dish.Store
	logger *log.Logger
}

// NewListDishesTool creates a ListDishesTool over the given store.
func NewListDishesTool(store *dish.Store, logger *log.Logger) *ListDishesTool {
	return &ListDishesTool{store: store, logger: logger}
}

// Definition returns the MCP tool definition for registration.
func (t *ListDishesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_dishes",
		mcp.WithDescription(
			"List all stored dishes sorted by name, with their ingredients. "+
				"Unreadable dish files are skipped.",
		),
	)
}

// Handle processes the list_dishes tool call.
func (t *ListDishesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dishes, skipped, err := t.store.List()
	if err != nil {
		return nil, fmt.Errorf("listing dishes: %w", err)
	}
	for _, s := range skipped {
		t.logger.Warn("skipping corrupt dish file", "path", s.Path, "err", s.Err)
	}

	if len(dishes) == 0 {
		return mcp.NewToolResultText("No dishes stored."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Dishes (%d)\n", len(dishes))
	for _, d := range dishes {
		fmt.Fprintf(&b, "\n## %s\n", d.Name)
		if len(d.Ingredients) == 0 {
			b.WriteString("- None specified\n")
			continue
		}
		for _, ing := range d.Ingredients {
			fmt.Fprintf(&b, "- %s: %s\n", ing.Name, ing.Amount)
		}
	}
	if len(skipped) > 0 {
		fmt.Fprintf(&b, "\n_%d unreadable dish file(s) skipped._\n", len(skipped))
	}
	return mcp.NewToolResultText(b.String()), nil
}
