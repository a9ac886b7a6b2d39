package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"mealplan-mcp/internal/mealplan"
	"mealplan-mcp/internal/model"
)

// CreateMealplanTool handles the create_mealplan MCP tool.
// It writes the matched markdown and JSON artifacts for one
// (date, meal type) slot, replacing any existing pair.
type CreateMealplanTool struct {
	store *mealplan.Store
}

// NewCreateMealplanTool creates a CreateMealplanTool over the given store.
func NewCreateMealplanTool(store *mealplan.Store) *CreateMealplanTool {
	return &CreateMealplanTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateMealplanTool) Definition() mcp.Tool {
	return mcp.NewTool("create_mealplan",
		mcp.WithDescription(
			"Create a meal plan for a date and meal type. "+
				"Writes a human-readable markdown file and a structured JSON file "+
				"side by side. Creating a plan for a slot that already has one "+
				"replaces it.",
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Plan date as YYYY-MM-DD. Timestamps are accepted and truncated to the day."),
		),
		mcp.WithString("meal_type",
			mcp.Required(),
			mcp.Description("One of: breakfast, lunch, dinner, snack."),
		),
		mcp.WithString("title",
			mcp.Description("Meal title. Defaults to 'Untitled Meal'."),
		),
		mcp.WithString("cook",
			mcp.Description("Who cooks. Defaults to 'Unknown'."),
		),
		mcp.WithArray("dishes",
			mcp.Description("Dishes as objects with 'name', 'ingredients', 'instructions', and 'nutrients' fields."),
		),
	)
}

// Handle processes the create_mealplan tool call.
func (t *CreateMealplanTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := parsePlanDate(req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mealType, err := model.ParseMealType(req.GetString("meal_type", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dishes, err := decodeArg[[]model.Dish](req, "dishes")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mp := model.MealPlan{
		Date:     date,
		MealType: mealType,
		Title:    req.GetString("title", ""),
		Cook:     req.GetString("cook", ""),
		Dishes:   dishes,
	}

	mdPath, jsonPath, err := t.store.Store(mp)
	if err != nil {
		return nil, fmt.Errorf("storing meal plan: %w", err)
	}

	response := fmt.Sprintf(
		"# Meal Plan Stored\n\n"+
			"**Title:** %s\n"+
			"**Date:** %s\n"+
			"**Meal Type:** %s\n"+
			"**Cook:** %s\n"+
			"**Dishes:** %d\n\n"+
			"Saved to `%s` and `%s`\n",
		mp.CleanedTitle(), dayString(date), mealType, mp.CleanedCook(),
		len(dishes), mdPath, jsonPath,
	)
	return mcp.NewToolResultText(response), nil
}
