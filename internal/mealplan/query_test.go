package mealplan

import (
	"errors"
	"os"
	"testing"
	"time"

	"mealplan-mcp/internal/model"
	"mealplan-mcp/internal/paths"
)

func newTestQuery(t *testing.T) (*Store, *Query) {
	t.Helper()
	p := paths.New(t.TempDir())
	return NewStore(p), NewQuery(p)
}

func TestRangeRoundTrip(t *testing.T) {
	store, query := newTestQuery(t)

	if _, _, err := store.Store(testPlan()); err != nil {
		t.Fatalf("Store: %v", err)
	}

	records, skipped, err := query.Range("2023-06-10", "2023-06-20")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v, want none", skipped)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.Title != "Taco Night" || rec.Date != "2023-06-15" || rec.MealType != "dinner" || rec.Cook != "Alice" {
		t.Errorf("record = %+v", rec)
	}
	if len(rec.Dishes) != 1 || rec.Dishes[0] != "Tacos" {
		t.Errorf("record dishes = %v, want [Tacos]", rec.Dishes)
	}
}

func TestRangeExcludesOutsideDates(t *testing.T) {
	store, query := newTestQuery(t)

	for _, day := range []time.Time{
		time.Date(2023, time.June, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.June, 21, 0, 0, 0, 0, time.UTC),
	} {
		mp := testPlan()
		mp.Date = day
		if _, _, err := store.Store(mp); err != nil {
			t.Fatalf("Store: %v", err)
		}
	}

	records, _, err := query.Range("2023-06-10", "2023-06-20")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(records) != 1 || records[0].Date != "2023-06-15" {
		t.Errorf("records = %+v, want only 2023-06-15", records)
	}
}

func TestRangeSortsByMealType(t *testing.T) {
	store, query := newTestQuery(t)

	// Stored out of chronological meal order.
	for _, mt := range []model.MealType{model.Snack, model.Dinner, model.Breakfast, model.Lunch} {
		mp := testPlan()
		mp.MealType = mt
		if _, _, err := store.Store(mp); err != nil {
			t.Fatalf("Store(%s): %v", mt, err)
		}
	}

	records, _, err := query.Range("2023-06-15", "2023-06-15")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	want := []string{"breakfast", "lunch", "dinner", "snack"}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, mt := range want {
		if records[i].MealType != mt {
			t.Errorf("records[%d].MealType = %q, want %q", i, records[i].MealType, mt)
		}
	}
}

func TestRangeInvertedIsEmpty(t *testing.T) {
	store, query := newTestQuery(t)

	if _, _, err := store.Store(testPlan()); err != nil {
		t.Fatalf("Store: %v", err)
	}

	records, skipped, err := query.Range("2023-06-20", "2023-06-10")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(records) != 0 || len(skipped) != 0 {
		t.Errorf("inverted range: records = %v, skipped = %v, want empty", records, skipped)
	}
}

func TestRangeInvalidDate(t *testing.T) {
	_, query := newTestQuery(t)

	_, _, err := query.Range("not-a-date", "2023-06-20")
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
	_, _, err = query.Range("2023-06-10", "2023/06/20")
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}

func TestRangeEmptyRoot(t *testing.T) {
	_, query := newTestQuery(t)

	records, skipped, err := query.Range("2023-06-10", "2023-06-20")
	if err != nil {
		t.Fatalf("Range on empty root: %v", err)
	}
	if len(records) != 0 || len(skipped) != 0 {
		t.Errorf("got records = %v, skipped = %v, want empty", records, skipped)
	}
}

func TestRangeFallsBackToMarkdown(t *testing.T) {
	store, query := newTestQuery(t)

	_, jsonPath, err := store.Store(testPlan())
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := os.Remove(jsonPath); err != nil {
		t.Fatalf("removing sidecar: %v", err)
	}

	records, skipped, err := query.Range("2023-06-15", "2023-06-15")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v, want none", skipped)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.Title != "Taco Night" || rec.Cook != "Alice" {
		t.Errorf("fallback record = %+v", rec)
	}
	if len(rec.Dishes) != 1 || rec.Dishes[0] != "Tacos" {
		t.Errorf("fallback dishes = %v, want [Tacos]", rec.Dishes)
	}
}

func TestRangeCorruptSidecarWithMarkdown(t *testing.T) {
	store, query := newTestQuery(t)

	_, jsonPath, err := store.Store(testPlan())
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := os.WriteFile(jsonPath, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("corrupting sidecar: %v", err)
	}

	records, skipped, err := query.Range("2023-06-15", "2023-06-15")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v, want fallback instead", skipped)
	}
	if len(records) != 1 || records[0].Title != "Taco Night" {
		t.Errorf("records = %+v, want markdown fallback record", records)
	}
}

func TestRangeSkipsCorruptPair(t *testing.T) {
	store, query := newTestQuery(t)

	mdPath, jsonPath, err := store.Store(testPlan())
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := os.WriteFile(jsonPath, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("corrupting sidecar: %v", err)
	}
	if err := os.Remove(mdPath); err != nil {
		t.Fatalf("removing markdown: %v", err)
	}

	records, skipped, err := query.Range("2023-06-15", "2023-06-15")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %+v, want none", records)
	}
	if len(skipped) != 1 || skipped[0].Path != jsonPath {
		t.Errorf("skipped = %+v, want one entry for %s", skipped, jsonPath)
	}
}

func TestRangeWithContent(t *testing.T) {
	store, query := newTestQuery(t)

	mdPath, _, err := store.Store(testPlan())
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	records, _, err := query.RangeWithContent("2023-06-15", "2023-06-15")
	if err != nil {
		t.Fatalf("RangeWithContent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("reading markdown: %v", err)
	}
	if records[0].Content != string(md) {
		t.Error("content does not match markdown artifact")
	}
	if records[0].Title != "Taco Night" {
		t.Errorf("title = %q", records[0].Title)
	}
}

func TestRangeWithContentRerendersFromSidecar(t *testing.T) {
	store, query := newTestQuery(t)

	mdPath, _, err := store.Store(testPlan())
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := os.Remove(mdPath); err != nil {
		t.Fatalf("removing markdown: %v", err)
	}

	records, _, err := query.RangeWithContent("2023-06-15", "2023-06-15")
	if err != nil {
		t.Fatalf("RangeWithContent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Content != RenderMarkdown(testPlan()) {
		t.Error("re-rendered content does not match the original rendering")
	}
}
