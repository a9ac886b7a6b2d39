package grocery

import (
	"strings"

	"mealplan-mcp/internal/model"
)

// extractIngredients recovers ingredient lines from a meal-plan markdown
// file when no stored dish matched the plan. Three shapes are tried in
// order, most to least structured:
//
//  1. a heading-delimited block ("#### Ingredients" up to the next
//     heading)
//  2. a colon-prefixed block ("Ingredients:" up to the next blank line)
//  3. any bare "- name: amount" bullet list in the file
func extractIngredients(content string) []model.Ingredient {
	lines := strings.Split(content, "\n")

	if ings := headingBlock(lines); len(ings) > 0 {
		return ings
	}
	if ings := colonBlock(lines); len(ings) > 0 {
		return ings
	}
	return bulletLines(lines)
}

// headingBlock collects bullets between an "Ingredients" heading and the
// next heading of any level.
func headingBlock(lines []string) []model.Ingredient {
	var ings []model.Ingredient
	in := false
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "#") && strings.Contains(line, "Ingredients"):
			in = true
		case strings.HasPrefix(line, "#"):
			if in {
				return ings
			}
		case in:
			if ing, ok := parseBullet(line); ok {
				ings = append(ings, ing)
			}
		}
	}
	return ings
}

// colonBlock collects bullets after a bare "Ingredients:" label line,
// stopping at the first blank line once bullets have started.
func colonBlock(lines []string) []model.Ingredient {
	var ings []model.Ingredient
	in := false
	for _, line := range lines {
		switch {
		case strings.TrimSpace(line) == "Ingredients:":
			in = true
		case in && strings.TrimSpace(line) == "" && len(ings) > 0:
			return ings
		case in:
			if ing, ok := parseBullet(line); ok {
				ings = append(ings, ing)
			}
		}
	}
	return ings
}

// bulletLines collects every "- name: amount" bullet in the file.
func bulletLines(lines []string) []model.Ingredient {
	var ings []model.Ingredient
	for _, line := range lines {
		if ing, ok := parseBullet(line); ok {
			ings = append(ings, ing)
		}
	}
	return ings
}

// parseBullet splits a "- name: amount" bullet. Bullets without a colon
// become an ingredient with an empty amount; the "None specified"
// placeholder and checkbox task lines are not ingredients.
func parseBullet(line string) (model.Ingredient, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "- [") {
		return model.Ingredient{}, false
	}
	body := strings.TrimSpace(strings.TrimPrefix(trimmed, "- "))
	if body == "" || body == "None specified" {
		return model.Ingredient{}, false
	}

	name, amount, found := strings.Cut(body, ":")
	if !found {
		return model.Ingredient{Name: body}, true
	}
	return model.Ingredient{
		Name:   strings.TrimSpace(name),
		Amount: strings.TrimSpace(amount),
	}, true
}
