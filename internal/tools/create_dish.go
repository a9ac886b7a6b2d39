package tools

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"mealplan-mcp/internal/dish"
	"mealplan-mcp/internal/model"
)

// CreateDishTool handles the create_dish MCP tool.
// It stores a dish as a JSON file keyed by a slug of its name.
type CreateDishTool struct {
	store *dish.Store
}

// NewCreateDishTool creates a CreateDishTool over the given store.
func NewCreateDishTool(store *dish.Store) *CreateDishTool {
	return &CreateDishTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateDishTool) Definition() mcp.Tool {
	return mcp.NewTool("create_dish",
		mcp.WithDescription(
			"Store a dish for later use in meal plans and grocery lists. "+
				"The dish is saved under a URL-safe slug of its name; "+
				"a numeric suffix is added if a dish with the same slug already exists.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Dish name. Example: 'Spaghetti Carbonara'"),
		),
		mcp.WithArray("ingredients",
			mcp.Description("Ingredients as objects with 'name' and 'amount' fields. Example: [{\"name\": \"eggs\", \"amount\": \"4\"}]"),
		),
		mcp.WithString("instructions",
			mcp.Description("Free-form preparation instructions."),
		),
		mcp.WithArray("nutrients",
			mcp.Description("Nutrients as objects with 'name', 'amount' (number), and 'unit' fields."),
		),
	)
}

// Handle processes the create_dish tool call.
func (t *CreateDishTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if strings.TrimSpace(name) == "" {
		return mcp.NewToolResultError("'name' is required — provide the dish name"), nil
	}

	ingredients, err := decodeArg[[]model.Ingredient](req, "ingredients")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	nutrients, err := decodeArg[[]model.Nutrient](req, "nutrients")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	d := model.Dish{
		Name:         name,
		Ingredients:  ingredients,
		Instructions: req.GetString("instructions", ""),
		Nutrients:    nutrients,
	}

	path, err := t.store.Store(d)
	if err != nil {
		return nil, fmt.Errorf("storing dish: %w", err)
	}
	slug := strings.TrimSuffix(filepath.Base(path), ".json")

	response := fmt.Sprintf(
		"# Dish Stored\n\n"+
			"**Name:** %s\n"+
			"**Slug:** `%s`\n"+
			"**Ingredients:** %d\n"+
			"**Nutrients:** %d\n\n"+
			"Saved to `%s`\n",
		d.CleanedName(), slug, len(ingredients), len(nutrients), path,
	)
	return mcp.NewToolResultText(response), nil
}
