package mealplan

import (
	"strings"
	"testing"
	"time"

	"mealplan-mcp/internal/model"
)

var june15 = time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)

func testPlan() model.MealPlan {
	return model.MealPlan{
		Date:     june15,
		MealType: model.Dinner,
		Title:    "Taco Night",
		Cook:     "Alice",
		Dishes: []model.Dish{{
			Name: "Tacos",
			Ingredients: []model.Ingredient{
				{Name: "beef", Amount: "500g"},
				{Name: "shells", Amount: "12"},
			},
			Instructions: "Brown the beef.\nFill the shells.",
			Nutrients:    []model.Nutrient{{Name: "calories", Amount: 650, Unit: "kcal"}},
		}},
	}
}

func TestRenderMarkdown(t *testing.T) {
	want := "- [ ] Taco Night (dinner,Alice) #mealplan [scheduled:: 2023-06-15]\n" +
		"\n" +
		"# Taco Night\n" +
		"\n" +
		"**Date:** 2023-06-15  \n" +
		"**Meal Type:** dinner  \n" +
		"**Cook:** Alice  \n" +
		"\n" +
		"## Dishes (1)\n" +
		"\n" +
		"### 1. Tacos\n" +
		"\n" +
		"#### Ingredients\n" +
		"\n" +
		"- beef: 500g\n" +
		"- shells: 12\n" +
		"\n" +
		"#### Instructions\n" +
		"\n" +
		"Brown the beef.\n" +
		"\n" +
		"Fill the shells.\n" +
		"\n" +
		"#### Nutrients\n" +
		"\n" +
		"- calories: 650 kcal\n"

	got := RenderMarkdown(testPlan())
	if got != want {
		t.Errorf("RenderMarkdown mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMarkdownDefaults(t *testing.T) {
	mp := model.MealPlan{Date: june15, MealType: model.Lunch}
	got := RenderMarkdown(mp)

	if !strings.HasPrefix(got, "- [ ] Untitled Meal (lunch,Unknown) #mealplan [scheduled:: 2023-06-15]\n") {
		t.Errorf("task line not defaulted:\n%s", got)
	}
	if !strings.Contains(got, "# Untitled Meal\n") {
		t.Errorf("title heading not defaulted:\n%s", got)
	}
	if !strings.Contains(got, "## Dishes (0)\n") {
		t.Errorf("dish count missing:\n%s", got)
	}
}

func TestRenderMarkdownNoIngredients(t *testing.T) {
	mp := model.MealPlan{
		Date:     june15,
		MealType: model.Snack,
		Title:    "Fruit",
		Dishes:   []model.Dish{{Name: "Apple"}},
	}
	got := RenderMarkdown(mp)

	if !strings.Contains(got, "#### Ingredients\n\n- None specified\n") {
		t.Errorf("missing None specified placeholder:\n%s", got)
	}
}

func TestRenderMarkdownNutrientFormatting(t *testing.T) {
	mp := testPlan()
	mp.Dishes[0].Nutrients = []model.Nutrient{{Name: "protein", Amount: 12.5, Unit: "g"}}
	got := RenderMarkdown(mp)

	if !strings.Contains(got, "- protein: 12.5 g\n") {
		t.Errorf("fractional nutrient formatting wrong:\n%s", got)
	}
}
