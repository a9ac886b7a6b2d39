// Package dish persists dish records as JSON files keyed by
// collision-suffixed slugs.
package dish

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/renameio/v2"

	"mealplan-mcp/internal/model"
	"mealplan-mcp/internal/paths"
	"mealplan-mcp/internal/slug"
)

// Store persists and lists dishes under the configured root.
type Store struct {
	paths paths.Paths
}

// NewStore creates a dish store over the given path layout.
func NewStore(p paths.Paths) *Store {
	return &Store{paths: p}
}

// ParseError records one file skipped during a listing scan.
type ParseError struct {
	Path string
	Err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Store writes the dish as JSON under a collision-free slug and returns
// the final path. A name that slugs to an existing file gets a -1, -2,
// ... suffix; a name change therefore produces a new file and orphans
// the old one, which is accepted. The write goes through a
// same-directory temp file, fsync, and atomic rename, so a concurrent
// reader sees either the previous content or the complete new file.
func (s *Store) Store(d model.Dish) (string, error) {
	dir := s.paths.DishDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating dish directory: %w", err)
	}

	existing, err := s.existingSlugs()
	if err != nil {
		return "", err
	}

	final := slug.SuffixIfExists(slug.Slugify(d.CleanedName()), existing)
	path := s.paths.DishPath(final)

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling dish: %w", err)
	}

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing dish %s: %w", path, err)
	}
	return path, nil
}

// List returns all parseable dishes sorted by name, plus a side channel
// of files that were skipped because they could not be read or parsed.
// One corrupt file never makes the directory unreadable; callers decide
// whether to log the skips.
func (s *Store) List() ([]model.Dish, []ParseError, error) {
	entries, err := os.ReadDir(s.paths.DishDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("reading dish directory: %w", err)
	}

	var dishes []model.Dish
	var skipped []ParseError
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.paths.DishDir(), entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			skipped = append(skipped, ParseError{Path: path, Err: err})
			continue
		}
		var d model.Dish
		if err := json.Unmarshal(data, &d); err != nil {
			skipped = append(skipped, ParseError{Path: path, Err: err})
			continue
		}
		dishes = append(dishes, d)
	}

	sort.Slice(dishes, func(i, j int) bool {
		return dishes[i].Name < dishes[j].Name
	})
	return dishes, skipped, nil
}

// existingSlugs scans the dish directory filenames, extension stripped.
func (s *Store) existingSlugs() (map[string]bool, error) {
	entries, err := os.ReadDir(s.paths.DishDir())
	if err != nil {
		return nil, fmt.Errorf("reading dish directory: %w", err)
	}

	slugs := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".json"); ok && !entry.IsDir() {
			slugs[name] = true
		}
	}
	return slugs, nil
}
