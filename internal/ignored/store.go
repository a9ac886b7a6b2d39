// Package ignored persists the set of ingredient names excluded from
// grocery lists.
package ignored

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/renameio/v2"

	"mealplan-mcp/internal/paths"
)

// ErrEmptyName reports an add with a blank ingredient name.
var ErrEmptyName = errors.New("ingredient name cannot be empty")

// Store persists a normalized list of ignored ingredient names: always
// lowercase, deduplicated, and sorted on save.
type Store struct {
	path string
}

// NewStore creates an ignored-ingredient store over the given layout.
func NewStore(p paths.Paths) *Store {
	return &Store{path: p.IgnoredPath()}
}

// Load returns the persisted list. A missing, empty, or unparseable
// file yields an empty list, never an error — the set is advisory and a
// corrupt file must not block grocery generation.
func (s *Store) Load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil || len(data) == 0 {
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil
	}
	return names
}

// Save normalizes the list (trim, lowercase, dedupe, sort) and
// atomically overwrites the file.
func (s *Store) Save(names []string) error {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		cleaned := strings.ToLower(strings.TrimSpace(name))
		if cleaned != "" {
			set[cleaned] = true
		}
	}

	normalized := make([]string, 0, len(set))
	for name := range set {
		normalized = append(normalized, name)
	}
	sort.Strings(normalized)

	data, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling ignored ingredients: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating root directory: %w", err)
	}
	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing ignored ingredients: %w", err)
	}
	return nil
}

// Add appends one name and rewrites the file (load-append-save; fine
// for a small single-user list). The name must be non-empty after
// trimming.
func (s *Store) Add(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return s.Save(append(s.Load(), name))
}
