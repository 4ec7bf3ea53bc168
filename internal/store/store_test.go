package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/j1me/burntrack/internal/db"
	"github.com/j1me/burntrack/internal/model"
	"github.com/j1me/burntrack/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "burntrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	return sqldb
}

func floatPtr(v float64) *float64 { return &v }

func TestProfileGetAfterSet(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	got, err := store.GetProfile(sqldb)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil profile on empty db, got %+v", got)
	}

	now := time.Now().Truncate(time.Second)
	p := model.UserProfile{
		ID: "p1", Name: "Ravi", Age: 30, Gender: model.GenderMale,
		HeightCm: 175, WeightKg: 70,
		ActivityLevel: model.ActivityModerate, WeightGoal: model.WeightGoalMaintain,
		GoalCalories: 2691, CreatedAt: now, UpdatedAt: now,
	}
	if err := store.SaveProfile(sqldb, p); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	got, err = store.GetProfile(sqldb)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.Name != "Ravi" || got.GoalCalories != 2691 || got.ActivityLevel != model.ActivityModerate {
		t.Fatalf("unexpected profile %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at %v, got %v", now, got.CreatedAt)
	}

	p.WeightKg = 72
	if err := store.SaveProfile(sqldb, p); err != nil {
		t.Fatalf("resave profile: %v", err)
	}
	got, err = store.GetProfile(sqldb)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.WeightKg != 72 {
		t.Fatalf("expected upserted weight 72, got %.1f", got.WeightKg)
	}
}

func TestReplaceFoodItemsPreservesOrder(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	items := []model.FoodItem{
		{ID: "c", Name: "Third", Calories: 3, ServingSize: 1, ServingUnit: "g"},
		{ID: "a", Name: "First", Calories: 1, ServingSize: 1, ServingUnit: "g", ProteinG: floatPtr(2.5)},
		{ID: "b", Name: "Second", Calories: 2, ServingSize: 1, ServingUnit: "g", IsCustom: true},
	}
	if err := store.ReplaceFoodItems(sqldb, items); err != nil {
		t.Fatalf("replace items: %v", err)
	}

	got, err := store.GetFoodItems(sqldb)
	if err != nil {
		t.Fatalf("get items: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	for i := range items {
		if got[i].ID != items[i].ID {
			t.Fatalf("position %d: expected %s, got %s", i, items[i].ID, got[i].ID)
		}
	}
	if got[1].ProteinG == nil || *got[1].ProteinG != 2.5 {
		t.Fatalf("expected protein 2.5, got %v", got[1].ProteinG)
	}
	if got[0].ProteinG != nil {
		t.Fatalf("expected nil protein for item without one")
	}
	if !got[2].IsCustom {
		t.Fatalf("expected custom flag persisted")
	}

	// A second replace fully swaps the set.
	if err := store.ReplaceFoodItems(sqldb, items[:1]); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	got, err = store.GetFoodItems(sqldb)
	if err != nil {
		t.Fatalf("get items: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("expected only item c, got %+v", got)
	}
}

func TestFoodEntriesByDateInInsertionOrder(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	base := time.Now().Truncate(time.Second)
	mk := func(id, day string, offset time.Duration) model.FoodEntry {
		return model.FoodEntry{
			ID: id, FoodItemID: "item",
			FoodItem:  model.FoodItem{ID: "item", Name: "Chapati", Calories: 120, ServingSize: 1, ServingUnit: "piece"},
			Servings:  1, MealType: model.MealLunch, Date: day,
			CreatedAt: base.Add(offset),
		}
	}
	for _, e := range []model.FoodEntry{
		mk("e1", "2026-08-27", 0),
		mk("e2", "2026-08-28", time.Second),
		mk("e3", "2026-08-27", 2*time.Second),
	} {
		if err := store.AppendFoodEntry(sqldb, e); err != nil {
			t.Fatalf("append %s: %v", e.ID, err)
		}
	}

	got, err := store.GetFoodEntriesByDate(sqldb, "2026-08-27")
	if err != nil {
		t.Fatalf("entries by date: %v", err)
	}
	if len(got) != 2 || got[0].ID != "e1" || got[1].ID != "e3" {
		t.Fatalf("expected [e1 e3], got %+v", got)
	}
	if got[0].FoodItem.Name != "Chapati" {
		t.Fatalf("expected snapshot name, got %q", got[0].FoodItem.Name)
	}

	all, err := store.GetFoodEntries(sqldb)
	if err != nil {
		t.Fatalf("all entries: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
}

func TestUpdateFoodEntryOnlyTouchesMutableColumns(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	e := model.FoodEntry{
		ID: "e1", FoodItemID: "item",
		FoodItem:  model.FoodItem{ID: "item", Name: "Dal", Calories: 230, ServingSize: 100, ServingUnit: "g"},
		Servings:  1, MealType: model.MealLunch, Date: "2026-08-27",
		CreatedAt: time.Now(),
	}
	if err := store.AppendFoodEntry(sqldb, e); err != nil {
		t.Fatalf("append entry: %v", err)
	}

	e.Servings = 2
	e.MealType = model.MealDinner
	e.Date = "2026-08-28"
	e.FoodItem.Calories = 999 // must be ignored
	if err := store.UpdateFoodEntry(sqldb, e); err != nil {
		t.Fatalf("update entry: %v", err)
	}

	got, err := store.GetFoodEntry(sqldb, "e1")
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if got.Servings != 2 || got.MealType != model.MealDinner || got.Date != "2026-08-28" {
		t.Fatalf("unexpected entry %+v", got)
	}
	if got.FoodItem.Calories != 230 {
		t.Fatalf("snapshot calories must stay 230, got %.0f", got.FoodItem.Calories)
	}

	if err := store.UpdateFoodEntry(sqldb, model.FoodEntry{ID: "missing", MealType: model.MealLunch}); err == nil {
		t.Fatalf("expected not-found error")
	}
	if err := store.DeleteFoodEntry(sqldb, "e1"); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if err := store.DeleteFoodEntry(sqldb, "e1"); err == nil {
		t.Fatalf("expected not-found error after delete")
	}
}

func TestUpsertWeightEntryByDay(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := store.UpsertWeightEntry(sqldb, model.WeightEntry{Date: "2026-08-27", WeightKg: 70}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.UpsertWeightEntry(sqldb, model.WeightEntry{Date: "2026-08-27", WeightKg: 69.4}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if err := store.UpsertWeightEntry(sqldb, model.WeightEntry{Date: "2026-08-25", WeightKg: 71}); err != nil {
		t.Fatalf("third upsert: %v", err)
	}

	got, err := store.GetWeightEntries(sqldb)
	if err != nil {
		t.Fatalf("get entries: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Date != "2026-08-25" || got[1].Date != "2026-08-27" {
		t.Fatalf("expected ascending days, got %+v", got)
	}
	if got[1].WeightKg != 69.4 {
		t.Fatalf("expected overwritten weight 69.4, got %.1f", got[1].WeightKg)
	}
}

func TestClearAllKeepsAppConfig(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := store.ReplaceFoodItems(sqldb, []model.FoodItem{{ID: "a", Name: "X", Calories: 1, ServingSize: 1, ServingUnit: "g"}}); err != nil {
		t.Fatalf("seed items: %v", err)
	}
	if err := store.UpsertWeightEntry(sqldb, model.WeightEntry{Date: "2026-08-27", WeightKg: 70}); err != nil {
		t.Fatalf("seed weight: %v", err)
	}
	if _, err := sqldb.Exec(`INSERT INTO app_config(key, value) VALUES('k', 'v')`); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if err := store.ClearAll(sqldb); err != nil {
		t.Fatalf("clear all: %v", err)
	}

	items, err := store.GetFoodItems(sqldb)
	if err != nil {
		t.Fatalf("get items: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected items cleared, got %d", len(items))
	}
	weights, err := store.GetWeightEntries(sqldb)
	if err != nil {
		t.Fatalf("get weights: %v", err)
	}
	if len(weights) != 0 {
		t.Fatalf("expected weights cleared, got %d", len(weights))
	}
	var count int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM app_config`).Scan(&count); err != nil {
		t.Fatalf("count config: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected config untouched, got %d rows", count)
	}
}
