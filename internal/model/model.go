// Package model defines the meal-planning domain values and their
// on-disk JSON shape.
//
// Values arrive pre-validated from the tool layer; the cleaning helpers
// here exist because truncation and defaulting feed directly into
// filesystem naming, which is part of the storage contract.
package model

import (
	"fmt"
	"strings"
	"time"
)

// maxNameLength bounds cleaned names and titles; it matches the slug
// length bound so a cleaned name always slugs without further loss.
const maxNameLength = 100

const (
	// DefaultDishName replaces an empty dish name.
	DefaultDishName = "Unnamed Dish"
	// DefaultTitle replaces an empty meal plan title.
	DefaultTitle = "Untitled Meal"
	// DefaultCook replaces an empty cook.
	DefaultCook = "Unknown"
)

// Ingredient is one line of a dish's ingredient list. Amount is free
// text ("500g", "2 tbsp", "a pinch").
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Nutrient is an optional nutrition entry on a dish.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Dish is a stored recipe. Its on-disk identity is the slug derived from
// CleanedName; the struct carries only caller-supplied data, so the
// cleaned form is computed, never serialized.
type Dish struct {
	Name         string       `json:"name"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions string       `json:"instructions"`
	Nutrients    []Nutrient   `json:"nutrients,omitempty"`
}

// CleanedName returns the dish name trimmed, truncated to 100
// characters, and defaulted to "Unnamed Dish" when empty.
func (d Dish) CleanedName() string {
	return cleanName(d.Name, DefaultDishName)
}

// MealType identifies which meal of the day a plan covers.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealTypes lists the known meal types in chronological order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// ParseMealType coerces a string to a known MealType.
func ParseMealType(s string) (MealType, error) {
	mt := MealType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range MealTypes {
		if mt == known {
			return mt, nil
		}
	}
	return "", fmt.Errorf("invalid meal type %q: must be one of breakfast, lunch, dinner, snack", s)
}

// MealTypeOrder returns the chronological sort position for a meal type
// string (breakfast first). Unknown types sort after the known ones so
// legacy or suffixed entries still get a stable place.
func MealTypeOrder(mealType string) int {
	for i, known := range MealTypes {
		if MealType(mealType) == known {
			return i
		}
	}
	return len(MealTypes)
}

// MealPlan is a dated set of dishes. The (date, meal type) pair is the
// storage key; dishes are embedded values, not references, so a plan
// owns its own copies of dish data.
type MealPlan struct {
	Date     time.Time `json:"date"`
	MealType MealType  `json:"meal_type"`
	Title    string    `json:"title"`
	Cook     string    `json:"cook"`
	Dishes   []Dish    `json:"dishes"`
}

// CleanedTitle returns the title trimmed, truncated to 100 characters,
// and defaulted to "Untitled Meal" when empty.
func (m MealPlan) CleanedTitle() string {
	return cleanName(m.Title, DefaultTitle)
}

// CleanedCook returns the cook trimmed and defaulted to "Unknown".
func (m MealPlan) CleanedCook() string {
	cook := strings.TrimSpace(m.Cook)
	if cook == "" {
		return DefaultCook
	}
	return cook
}

// cleanName trims, truncates to maxNameLength characters (runes, not
// bytes), and falls back when the result is empty.
func cleanName(name, fallback string) string {
	cleaned := strings.TrimSpace(name)
	if runes := []rune(cleaned); len(runes) > maxNameLength {
		cleaned = strings.TrimSpace(string(runes[:maxNameLength]))
	}
	if cleaned == "" {
		return fallback
	}
	return cleaned
}

// CleanName applies the dish/title cleaning rules to an arbitrary string
// with the given fallback. Exposed for query-side re-cleaning of titles
// read back from disk.
func CleanName(name, fallback string) string {
	return cleanName(name, fallback)
}
