package mealplan

import (
	"fmt"
	"strconv"
	"strings"

	"mealplan-mcp/internal/model"
	"mealplan-mcp/internal/paths"
)

// Markdown labels shared by the renderer and the fallback parser in
// mdparse.go. They are a durable on-disk contract: existing files were
// written with exactly these strings, so renderer and parser must change
// together or not at all.
const (
	titlePrefix         = "# "
	dateLabel           = "**Date:** "
	mealTypeLabel       = "**Meal Type:** "
	cookLabel           = "**Cook:** "
	dishesHeading       = "## Dishes"
	dishPrefix          = "### "
	sectionPrefix       = "## "
	ingredientsHeading  = "#### Ingredients"
	instructionsHeading = "#### Instructions"
	nutrientsHeading    = "#### Nutrients"
	noIngredients       = "- None specified"
)

// RenderMarkdown produces the human-readable artifact for a meal plan:
// a checkbox task line, a metadata block, and one section per dish.
func RenderMarkdown(mp model.MealPlan) string {
	var b strings.Builder

	date := mp.Date.Format(paths.DayFormat)
	title := mp.CleanedTitle()
	cook := mp.CleanedCook()
	mealType := string(mp.MealType)

	fmt.Fprintf(&b, "- [ ] %s (%s,%s) #mealplan [scheduled:: %s]\n\n", title, mealType, cook, date)
	fmt.Fprintf(&b, "%s%s\n\n", titlePrefix, title)
	fmt.Fprintf(&b, "%s%s  \n", dateLabel, date)
	fmt.Fprintf(&b, "%s%s  \n", mealTypeLabel, mealType)
	fmt.Fprintf(&b, "%s%s  \n\n", cookLabel, cook)
	fmt.Fprintf(&b, "%s (%d)\n\n", dishesHeading, len(mp.Dishes))

	for i, d := range mp.Dishes {
		renderDishSection(&b, d, i+1)
	}
	return b.String()
}

func renderDishSection(b *strings.Builder, d model.Dish, index int) {
	fmt.Fprintf(b, "%s%d. %s\n\n", dishPrefix, index, d.Name)

	b.WriteString(ingredientsHeading + "\n\n")
	if len(d.Ingredients) == 0 {
		b.WriteString(noIngredients + "\n\n")
	} else {
		for _, ing := range d.Ingredients {
			fmt.Fprintf(b, "- %s: %s\n", ing.Name, ing.Amount)
		}
		b.WriteString("\n")
	}

	// Single newlines become markdown paragraph breaks.
	b.WriteString(instructionsHeading + "\n\n")
	b.WriteString(strings.ReplaceAll(d.Instructions, "\n", "\n\n"))
	b.WriteString("\n\n")

	if len(d.Nutrients) > 0 {
		b.WriteString(nutrientsHeading + "\n\n")
		for _, n := range d.Nutrients {
			fmt.Fprintf(b, "- %s: %s %s\n", n.Name, formatNutrientAmount(n.Amount), n.Unit)
		}
		b.WriteString("\n")
	}
}

func formatNutrientAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
