package paths

import (
	"path/filepath"
	"testing"
	"time"
)

var june15 = time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestDishPaths(t *testing.T) {
	p := New("/data")

	if got, want := p.DishDir(), filepath.Join("/data", "dishes"); got != want {
		t.Errorf("DishDir() = %q, want %q", got, want)
	}
	if got, want := p.DishPath("spaghetti-carbonara"), filepath.Join("/data", "dishes", "spaghetti-carbonara.json"); got != want {
		t.Errorf("DishPath() = %q, want %q", got, want)
	}
	if got, want := p.IgnoredPath(), filepath.Join("/data", "ignored_ingredients.json"); got != want {
		t.Errorf("IgnoredPath() = %q, want %q", got, want)
	}
}

func TestMealplanPaths(t *testing.T) {
	p := New("/data")

	if got, want := p.MonthDir(june15), filepath.Join("/data", "2023", "06-June"); got != want {
		t.Errorf("MonthDir() = %q, want %q", got, want)
	}
	if got, want := p.MealplanDir(june15), filepath.Join("/data", "2023", "06-June", "06-15-2023"); got != want {
		t.Errorf("MealplanDir() = %q, want %q", got, want)
	}
	if got, want := p.MealplanPath(june15, "dinner"), filepath.Join("/data", "2023", "06-June", "06-15-2023", "06-15-2023-dinner.md"); got != want {
		t.Errorf("MealplanPath() = %q, want %q", got, want)
	}
	if got, want := p.MealplanJSONPath(june15, "dinner"), filepath.Join("/data", "2023", "06-June", "06-15-2023", "06-15-2023-dinner.json"); got != want {
		t.Errorf("MealplanJSONPath() = %q, want %q", got, want)
	}
}

func TestGroceryPath(t *testing.T) {
	p := New("/data")
	end := time.Date(2023, time.June, 20, 0, 0, 0, 0, time.UTC)

	if got, want := p.GroceryPath(june15, end), filepath.Join("/data", "2023", "06-June", "2023-06-15_to_2023-06-20.md"); got != want {
		t.Errorf("range GroceryPath() = %q, want %q", got, want)
	}
	if got, want := p.GroceryPath(june15, june15), filepath.Join("/data", "2023", "06-June", "2023-06-15.md"); got != want {
		t.Errorf("single-day GroceryPath() = %q, want %q", got, want)
	}
}

func TestPDFExportPath(t *testing.T) {
	p := New("/data")
	end := time.Date(2023, time.June, 20, 0, 0, 0, 0, time.UTC)

	if got, want := p.PDFExportPath(june15, end), filepath.Join("/data", "2023", "06-June", "mealplans_2023-06-15_to_2023-06-20.pdf"); got != want {
		t.Errorf("PDFExportPath() = %q, want %q", got, want)
	}
}

func TestDateDirName(t *testing.T) {
	if got := DateDirName(june15); got != "06-15-2023" {
		t.Errorf("DateDirName() = %q, want 06-15-2023", got)
	}
	if got := MealplanBase(june15, "breakfast"); got != "06-15-2023-breakfast" {
		t.Errorf("MealplanBase() = %q, want 06-15-2023-breakfast", got)
	}
}
