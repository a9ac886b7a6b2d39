package mealplan

import (
	"regexp"
	"strings"

	"mealplan-mcp/internal/model"
)

// Partial is a record recovered from a meal plan's markdown artifact.
// It exists for the case where the structured sidecar is missing: the
// markdown layout produced by RenderMarkdown is stable enough to recover
// the title, cook, and dish names. The Found flags distinguish fields
// that were actually present from defaulted ones.
type Partial struct {
	Title      string
	Cook       string
	Dishes     []string
	TitleFound bool
	CookFound  bool
}

// dishIndex strips the "1. " ordering prefix the renderer writes before
// each dish name.
var dishIndex = regexp.MustCompile(`^\d+\.\s+`)

// ParseMarkdown recovers a Partial from rendered meal-plan markdown.
// Grammar, line by line:
//
//   - title: the first "# " heading
//   - cook: the "**Cook:** " label line
//   - dish names: "### " headings strictly inside the "## Dishes"
//     section (any other "## " heading closes it), ordering prefix
//     stripped
//
// Missing fields fall back to the model defaults. The function never
// fails: unrecognized lines are ignored.
func ParseMarkdown(content string) Partial {
	p := Partial{Title: model.DefaultTitle, Cook: model.DefaultCook}

	inDishes := false
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, titlePrefix) && !p.TitleFound:
			p.Title = strings.TrimSpace(strings.TrimPrefix(line, titlePrefix))
			p.TitleFound = true
		case strings.HasPrefix(line, cookLabel):
			p.Cook = strings.TrimSpace(strings.TrimPrefix(line, cookLabel))
			p.CookFound = true
		case strings.HasPrefix(line, dishesHeading):
			inDishes = true
		case strings.HasPrefix(line, sectionPrefix):
			inDishes = false
		case inDishes && strings.HasPrefix(line, dishPrefix):
			name := strings.TrimSpace(strings.TrimPrefix(line, dishPrefix))
			p.Dishes = append(p.Dishes, dishIndex.ReplaceAllString(name, ""))
		}
	}
	return p
}
