package dish

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"mealplan-mcp/internal/model"
	"mealplan-mcp/internal/paths"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	root := t.TempDir()
	return NewStore(paths.New(root)), root
}

func TestStoreWritesSluggedFile(t *testing.T) {
	store, root := newTestStore(t)

	path, err := store.Store(model.Dish{
		Name:        "Spaghetti Carbonara",
		Ingredients: []model.Ingredient{{Name: "eggs", Amount: "4"}},
	})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	want := filepath.Join(root, "dishes", "spaghetti-carbonara.json")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading stored dish: %v", err)
	}
	var d model.Dish
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatalf("unmarshaling stored dish: %v", err)
	}
	if d.Name != "Spaghetti Carbonara" {
		t.Errorf("stored name = %q", d.Name)
	}
	if len(d.Ingredients) != 1 || d.Ingredients[0].Name != "eggs" {
		t.Errorf("stored ingredients = %+v", d.Ingredients)
	}
}

func TestStoreSuffixesCollisions(t *testing.T) {
	store, root := newTestStore(t)

	for range 2 {
		if _, err := store.Store(model.Dish{Name: "Tacos"}); err != nil {
			t.Fatalf("Store: %v", err)
		}
	}
	third, err := store.Store(model.Dish{Name: "tacos"})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	if want := filepath.Join(root, "dishes", "tacos-2.json"); third != want {
		t.Errorf("third path = %q, want %q", third, want)
	}
	for _, name := range []string{"tacos.json", "tacos-1.json", "tacos-2.json"} {
		if _, err := os.Stat(filepath.Join(root, "dishes", name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestStoreDefaultsEmptyName(t *testing.T) {
	store, root := newTestStore(t)

	path, err := store.Store(model.Dish{Name: "   "})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if want := filepath.Join(root, "dishes", "unnamed-dish.json"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestListSortsByName(t *testing.T) {
	store, _ := newTestStore(t)

	for _, name := range []string{"Zucchini Pasta", "Apple Pie", "Meatballs"} {
		if _, err := store.Store(model.Dish{Name: name}); err != nil {
			t.Fatalf("Store(%s): %v", name, err)
		}
	}

	dishes, skipped, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v, want none", skipped)
	}

	want := []string{"Apple Pie", "Meatballs", "Zucchini Pasta"}
	if len(dishes) != len(want) {
		t.Fatalf("got %d dishes, want %d", len(dishes), len(want))
	}
	for i, name := range want {
		if dishes[i].Name != name {
			t.Errorf("dishes[%d].Name = %q, want %q", i, dishes[i].Name, name)
		}
	}
}

func TestListSkipsCorruptFiles(t *testing.T) {
	store, root := newTestStore(t)

	if _, err := store.Store(model.Dish{Name: "Good Dish"}); err != nil {
		t.Fatalf("Store: %v", err)
	}
	corrupt := filepath.Join(root, "dishes", "broken.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	dishes, skipped, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(dishes) != 1 || dishes[0].Name != "Good Dish" {
		t.Errorf("dishes = %+v, want just Good Dish", dishes)
	}
	if len(skipped) != 1 || skipped[0].Path != corrupt {
		t.Errorf("skipped = %+v, want one entry for %s", skipped, corrupt)
	}
}

func TestListMissingDirectory(t *testing.T) {
	store, _ := newTestStore(t)

	dishes, skipped, err := store.List()
	if err != nil {
		t.Fatalf("List on missing directory: %v", err)
	}
	if len(dishes) != 0 || len(skipped) != 0 {
		t.Errorf("got %d dishes, %d skipped, want none", len(dishes), len(skipped))
	}
}
