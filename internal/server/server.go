// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it builds the stores and services from the
// resolved configuration and injects them into the tools that depend on
// them. No business logic lives here, only wiring.
package server

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"mealplan-mcp/internal/config"
	"mealplan-mcp/internal/dish"
	"mealplan-mcp/internal/grocery"
	"mealplan-mcp/internal/ignored"
	"mealplan-mcp/internal/mealplan"
	"mealplan-mcp/internal/paths"
	"mealplan-mcp/internal/pdfexport"
	"mealplan-mcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools registered.
// This is the single place where all dependencies are resolved.
func New(cfg config.Config, logger *log.Logger) *server.MCPServer {
	p := paths.New(cfg.Root)

	dishStore := dish.NewStore(p)
	planStore := mealplan.NewStore(p)
	planQuery := mealplan.NewQuery(p)
	ignoredStore := ignored.NewStore(p)
	generator := grocery.NewGenerator(p, dishStore, ignoredStore, logger)
	exporter := pdfexport.NewExporter(p, planQuery)

	s := server.NewMCPServer(
		"mealplan-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	createDish := tools.NewCreateDishTool(dishStore)
	s.AddTool(createDish.Definition(), createDish.Handle)

	listDishes := tools.NewListDishesTool(dishStore, logger)
	s.AddTool(listDishes.Definition(), listDishes.Handle)

	createMealplan := tools.NewCreateMealplanTool(planStore)
	s.AddTool(createMealplan.Definition(), createMealplan.Handle)

	listMealplans := tools.NewListMealplansTool(planQuery, logger)
	s.AddTool(listMealplans.Definition(), listMealplans.Handle)

	groceryTool := tools.NewGroceryTool(generator)
	s.AddTool(groceryTool.Definition(), groceryTool.Handle)

	addIgnored := tools.NewAddIgnoredTool(ignoredStore)
	s.AddTool(addIgnored.Definition(), addIgnored.Handle)

	listIgnored := tools.NewListIgnoredTool(ignoredStore)
	s.AddTool(listIgnored.Definition(), listIgnored.Handle)

	pdfExport := tools.NewPDFExportTool(exporter)
	s.AddTool(pdfExport.Definition(), pdfExport.Handle)

	return s
}

// serverInstructions returns the system instructions that tell the AI
// how to use the meal-planning tools effectively.
func serverInstructions() string {
	return `You have access to a meal-planning MCP server backed by plain files.

## Workflow

1. Store dishes once with create_dish (name, ingredients, instructions,
   nutrients). Dishes are reusable across meal plans.
2. Schedule meals with create_mealplan (date, meal type, title, cook,
   dishes). One plan per (date, meal type); creating again replaces it.
3. Query what is scheduled with list_mealplans (start_date, end_date).
4. Generate a shopping list for a period with generate_grocery_list.
   Ingredients with the same name are merged across dishes.
5. Keep pantry staples off the shopping radar with
   add_ignored_ingredient — they still appear, struck through.
6. Export a printable document for a period with export_mealplans_pdf.

## Conventions

- All dates are YYYY-MM-DD. Ranges are inclusive on both ends.
- Meal types: breakfast, lunch, dinner, snack.
- Grocery lists match meal plans to stored dishes by the plan title.
  For the matching to work, title the meal plan with the dish name.
- Everything is written under the configured root directory as markdown
  and JSON files the user can read and edit directly.`
}
