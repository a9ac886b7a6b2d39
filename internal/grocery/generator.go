// Package grocery aggregates meal-plan ingredients over a date range
// into a grocery-list markdown document.
package grocery

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/renameio/v2"

	"mealplan-mcp/internal/dish"
	"mealplan-mcp/internal/ignored"
	"mealplan-mcp/internal/mealplan"
	"mealplan-mcp/internal/model"
	"mealplan-mcp/internal/paths"
)

// Generator builds and writes grocery lists.
type Generator struct {
	paths   paths.Paths
	dishes  *dish.Store
	ignored *ignored.Store
	logger  *log.Logger
}

// NewGenerator creates a generator over the given stores.
func NewGenerator(p paths.Paths, dishes *dish.Store, ign *ignored.Store, logger *log.Logger) *Generator {
	return &Generator{paths: p, dishes: dishes, ignored: ign, logger: logger}
}

// planEntry is one meal plan found in range. DishName is the plan's H1
// title — the name the plan was stored under, matched against the dish
// store by exact name.
type planEntry struct {
	Date     string
	MealType string
	DishName string
	Path     string
}

// neededDish is a dish whose ingredients go on the list: either resolved
// from the dish store, or inferred from a meal-plan file's ingredient
// text when nothing in the store matched. An inferred dish has no slug
// and no instructions and never touches the store.
type neededDish struct {
	Name        string
	Ingredients []model.Ingredient
	Inferred    bool
}

var titleLine = regexp.MustCompile(`(?m)^# (.*)$`)

// Generate builds the grocery list for [start, end] inclusive, writes it
// to the derived path, and returns the path relative to the root (or
// absolute if it somehow falls outside the root). Write failures
// propagate. An empty range still produces a document saying so.
func (g *Generator) Generate(start, end string) (string, error) {
	startDay, endDay, err := mealplan.ParseRange(start, end)
	if err != nil {
		return "", err
	}

	entries := g.findPlans(startDay, endDay)
	needed := g.resolveDishes(entries)
	ignoredSet := make(map[string]bool)
	for _, name := range g.ignored.Load() {
		ignoredSet[name] = true
	}

	content := render(start, end, entries, needed, ignoredSet)

	path := g.paths.GroceryPath(startDay, endDay)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating grocery directory: %w", err)
	}
	if err := renameio.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing grocery list: %w", err)
	}

	rel, err := filepath.Rel(g.paths.Root(), path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path, nil
	}
	return rel, nil
}

// findPlans walks the per-day directories in range and collects one
// entry per markdown artifact, reading the title directly from the file.
func (g *Generator) findPlans(start, end time.Time) []planEntry {
	var entries []planEntry
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dir := g.paths.MealplanDir(day)
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		prefix := paths.DateDirName(day) + "-"
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
				continue
			}
			base := strings.TrimSuffix(f.Name(), ".md")
			mealType := strings.TrimPrefix(base, prefix)

			path := filepath.Join(dir, f.Name())
			content, err := os.ReadFile(path)
			if err != nil {
				g.logger.Warn("skipping unreadable meal plan", "path", path, "err", err)
				continue
			}

			dishName := "Unknown Dish"
			if m := titleLine.FindStringSubmatch(string(content)); m != nil {
				dishName = strings.TrimSpace(m[1])
			}

			entries = append(entries, planEntry{
				Date:     day.Format(paths.DayFormat),
				MealType: mealType,
				DishName: dishName,
				Path:     path,
			})
		}
	}
	return entries
}

// resolveDishes matches plan entries against the dish store by exact
// name. When no entry matches any stored dish, it falls back to
// extracting ingredient lines from the plan files themselves so the
// list is still useful.
func (g *Generator) resolveDishes(entries []planEntry) []neededDish {
	stored, skipped, err := g.dishes.List()
	if err != nil {
		g.logger.Warn("listing dishes", "err", err)
	}
	for _, s := range skipped {
		g.logger.Warn("skipping corrupt dish file", "path", s.Path, "err", s.Err)
	}

	byName := make(map[string]model.Dish, len(stored))
	for _, d := range stored {
		byName[d.Name] = d
	}

	var needed []neededDish
	for _, e := range entries {
		if d, ok := byName[e.DishName]; ok {
			needed = append(needed, neededDish{Name: d.Name, Ingredients: d.Ingredients})
		}
	}
	if len(needed) > 0 || len(entries) == 0 {
		return needed
	}

	for _, e := range entries {
		content, err := os.ReadFile(e.Path)
		if err != nil {
			continue
		}
		ingredients := extractIngredients(string(content))
		if len(ingredients) == 0 {
			continue
		}
		needed = append(needed, neededDish{
			Name:        e.DishName,
			Ingredients: ingredients,
			Inferred:    true,
		})
	}
	return needed
}

// render produces the grocery markdown: range header, meal plans grouped
// by date, the merged ingredient list with ignored entries struck
// through, and a per-dish detail section.
func render(start, end string, entries []planEntry, needed []neededDish, ignoredSet map[string]bool) string {
	var b strings.Builder

	if start == end {
		fmt.Fprintf(&b, "## %s\n\n", start)
	} else {
		fmt.Fprintf(&b, "## %s to %s\n\n", start, end)
	}

	if len(entries) == 0 {
		b.WriteString("No meal plans found for this period.\n\n")
	} else {
		b.WriteString("## Meal Plans\n")
		sorted := make([]planEntry, len(entries))
		copy(sorted, entries)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Date != sorted[j].Date {
				return sorted[i].Date < sorted[j].Date
			}
			return model.MealTypeOrder(sorted[i].MealType) < model.MealTypeOrder(sorted[j].MealType)
		})
		currentDate := ""
		for _, e := range sorted {
			if e.Date != currentDate {
				currentDate = e.Date
				fmt.Fprintf(&b, "### %s\n", e.Date)
			}
			fmt.Fprintf(&b, "- %s: %s\n", e.MealType, e.DishName)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Grocery List\n")
	if len(needed) == 0 {
		b.WriteString("No ingredients needed for this period.\n")
	} else {
		renderIngredients(&b, needed, ignoredSet)
	}

	if len(needed) > 0 {
		b.WriteString("\n## Dish Details\n")
		for _, d := range needed {
			fmt.Fprintf(&b, "### %s\n", d.Name)
			for _, ing := range d.Ingredients {
				fmt.Fprintf(&b, "- [ ] %s: %s\n", ing.Name, ing.Amount)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderIngredients merges ingredients by exact (case-sensitive) name,
// deduplicates amounts, and marks ignored entries instead of dropping
// them so the reader sees what was filtered.
func renderIngredients(b *strings.Builder, needed []neededDish, ignoredSet map[string]bool) {
	all := make(map[string][]string)
	var order []string

	for _, d := range needed {
		for _, ing := range d.Ingredients {
			if ing.Name == "" {
				continue
			}
			if _, ok := all[ing.Name]; !ok {
				order = append(order, ing.Name)
			}
			all[ing.Name] = append(all[ing.Name], ing.Amount)
		}
	}
	sort.Strings(order)

	for _, name := range order {
		if ignoredSet[strings.ToLower(name)] {
			fmt.Fprintf(b, "- [ ] ~~%s~~ (IGNORED)\n", name)
			continue
		}

		unique := make(map[string]bool)
		var amounts []string
		for _, a := range all[name] {
			if a != "" && !unique[a] {
				unique[a] = true
				amounts = append(amounts, a)
			}
		}

		line := "- [ ] " + name
		if len(amounts) > 0 {
			line += " (" + strings.Join(amounts, ", ") + ")"
		}
		b.WriteString(line + "\n")
	}
}
