// Package paths derives every on-disk location from a single root
// directory.
//
// The formats here are load-bearing: the query layer re-derives dates and
// meal types by pattern-matching directory and file names, so any change
// must be mirrored there. Layout under the root:
//
//	dishes/{slug}.json
//	{YYYY}/{MM}-{MonthName}/{MM}-{DD}-{YYYY}/{MM}-{DD}-{YYYY}-{meal_type}.md
//	{YYYY}/{MM}-{MonthName}/{MM}-{DD}-{YYYY}/{MM}-{DD}-{YYYY}-{meal_type}.json
//	{YYYY}/{MM}-{MonthName}/{start}_to_{end}.md
//	{YYYY}/{MM}-{MonthName}/mealplans_{start}_to_{end}.pdf
//	ignored_ingredients.json
package paths

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	// DishesDir is the subdirectory under the root where dishes live.
	DishesDir = "dishes"
	// IgnoredFile is the filename for the ignored-ingredient set.
	IgnoredFile = "ignored_ingredients.json"
	// DayFormat is the wire format for calendar days in filenames and
	// tool inputs.
	DayFormat = "2006-01-02"
)

// Paths derives file locations under a fixed root. Construct one per
// configuration and inject it; there is no package-level root.
type Paths struct {
	root string
}

// New creates a Paths rooted at the given directory.
func New(root string) Paths {
	return Paths{root: root}
}

// Root returns the configured root directory.
func (p Paths) Root() string { return p.root }

// DishDir returns the directory holding dish JSON files.
func (p Paths) DishDir() string {
	return filepath.Join(p.root, DishesDir)
}

// DishPath returns the JSON file for a dish slug.
func (p Paths) DishPath(slug string) string {
	return filepath.Join(p.DishDir(), slug+".json")
}

// IgnoredPath returns the ignored-ingredients file.
func (p Paths) IgnoredPath() string {
	return filepath.Join(p.root, IgnoredFile)
}

// MonthDir returns root/YYYY/MM-MonthName for a date. Month names are
// full English names ("06-June").
func (p Paths) MonthDir(date time.Time) string {
	return filepath.Join(p.root,
		fmt.Sprintf("%04d", date.Year()),
		fmt.Sprintf("%02d-%s", int(date.Month()), date.Month().String()),
	)
}

// MealplanDir returns the per-day directory for a date.
func (p Paths) MealplanDir(date time.Time) string {
	return filepath.Join(p.MonthDir(date), DateDirName(date))
}

// MealplanPath returns the markdown artifact for a date + meal type.
func (p Paths) MealplanPath(date time.Time, mealType string) string {
	return filepath.Join(p.MealplanDir(date), MealplanBase(date, mealType)+".md")
}

// MealplanJSONPath returns the structured sidecar for a date + meal type.
// It shares its base name with the markdown artifact so the pair groups
// together during query walks.
func (p Paths) MealplanJSONPath(date time.Time, mealType string) string {
	return filepath.Join(p.MealplanDir(date), MealplanBase(date, mealType)+".json")
}

// GroceryPath returns the grocery-list file for a date range. The file
// lives in the start date's month directory and is named {start}.md for
// a single-day range, {start}_to_{end}.md otherwise.
func (p Paths) GroceryPath(start, end time.Time) string {
	return filepath.Join(p.MonthDir(start), rangeName(start, end)+".md")
}

// PDFExportPath returns the PDF export file for a date range, following
// the grocery naming convention with a "mealplans_" prefix.
func (p Paths) PDFExportPath(start, end time.Time) string {
	return filepath.Join(p.MonthDir(start), "mealplans_"+rangeName(start, end)+".pdf")
}

// DateDirName formats a date as the MM-DD-YYYY directory name.
func DateDirName(date time.Time) string {
	return fmt.Sprintf("%02d-%02d-%04d", int(date.Month()), date.Day(), date.Year())
}

// MealplanBase returns the base filename shared by a meal plan's two
// artifacts: MM-DD-YYYY-{meal_type}.
func MealplanBase(date time.Time, mealType string) string {
	return DateDirName(date) + "-" + mealType
}

func rangeName(start, end time.Time) string {
	name := start.Format(DayFormat)
	if !sameDay(start, end) {
		name += "_to_" + end.Format(DayFormat)
	}
	return name
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
