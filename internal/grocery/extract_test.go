package grocery

import (
	"testing"

	"mealplan-mcp/internal/model"
)

func TestExtractIngredientsHeadingBlock(t *testing.T) {
	content := "# Stew\n\n" +
		"#### Ingredients\n\n" +
		"- carrots: 3\n" +
		"- potatoes: 4\n\n" +
		"#### Instructions\n\n" +
		"- this bullet is not an ingredient\n"

	got := extractIngredients(content)
	want := []model.Ingredient{{Name: "carrots", Amount: "3"}, {Name: "potatoes", Amount: "4"}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExtractIngredientsColonBlock(t *testing.T) {
	content := "Some meal\n\n" +
		"Ingredients:\n" +
		"- rice: 200g\n" +
		"\n" +
		"- after the blank line\n"

	got := extractIngredients(content)
	if len(got) != 1 || got[0].Name != "rice" || got[0].Amount != "200g" {
		t.Errorf("got %v, want [rice 200g]", got)
	}
}

func TestExtractIngredientsBareBullets(t *testing.T) {
	content := "no headings here\n- flour: 1 cup\n- sugar\n"

	got := extractIngredients(content)
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 ingredients", got)
	}
	if got[0].Name != "flour" || got[0].Amount != "1 cup" {
		t.Errorf("got[0] = %v", got[0])
	}
	// A colon-less bullet is a name with no amount.
	if got[1].Name != "sugar" || got[1].Amount != "" {
		t.Errorf("got[1] = %v", got[1])
	}
}

func TestExtractIngredientsSkipsNoise(t *testing.T) {
	content := "- [ ] a task checkbox\n" +
		"- None specified\n" +
		"not a bullet\n"

	if got := extractIngredients(content); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}
