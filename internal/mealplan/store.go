// Package mealplan persists meal plans as matched pairs of markdown and
// JSON artifacts and answers date-range queries over them.
package mealplan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/renameio/v2"

	"mealplan-mcp/internal/model"
	"mealplan-mcp/internal/paths"
)

// Store persists meal plans under the configured root.
type Store struct {
	paths paths.Paths
}

// NewStore creates a meal plan store over the given path layout.
func NewStore(p paths.Paths) *Store {
	return &Store{paths: p}
}

// document is the JSON sidecar shape. The date is serialized as a plain
// YYYY-MM-DD day — the directory name already keys the calendar day —
// and the cleaned-title helper is never written.
type document struct {
	Date     string       `json:"date"`
	MealType string       `json:"meal_type"`
	Title    string       `json:"title"`
	Cook     string       `json:"cook"`
	Dishes   []model.Dish `json:"dishes"`
}

// Store writes both artifacts for the plan's (date, meal type) key and
// returns the markdown and JSON paths. An existing pair is overwritten
// in place: the key identifies the logical record, so re-storing the
// same dinner is an update, not a second record.
//
// Each artifact is written via a same-directory temp file, fsync, and
// atomic rename; on failure the temp file is removed before the error is
// returned. A crash between the two renames can leave the markdown
// updated without its sidecar — accepted limitation of the dual-file
// layout, and the query layer tolerates it by falling back to markdown.
func (s *Store) Store(mp model.MealPlan) (string, string, error) {
	dir := s.paths.MealplanDir(mp.Date)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating meal plan directory: %w", err)
	}

	mdPath := s.paths.MealplanPath(mp.Date, string(mp.MealType))
	jsonPath := s.paths.MealplanJSONPath(mp.Date, string(mp.MealType))

	doc := document{
		Date:     mp.Date.Format(paths.DayFormat),
		MealType: string(mp.MealType),
		Title:    mp.CleanedTitle(),
		Cook:     mp.CleanedCook(),
		Dishes:   mp.Dishes,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("marshaling meal plan: %w", err)
	}

	if err := renameio.WriteFile(mdPath, []byte(RenderMarkdown(mp)), 0o644); err != nil {
		return "", "", fmt.Errorf("writing meal plan markdown: %w", err)
	}
	if err := renameio.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("writing meal plan sidecar: %w", err)
	}
	return mdPath, jsonPath, nil
}
