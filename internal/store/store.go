// Package store is the persistence layer: a small set of synchronous
// operations over the local sqlite database. Callers get get-after-set
// consistency within a session; all ordering contracts (catalog position,
// entry insertion order, weight series by day) live here.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/j1me/burntrack/internal/model"
)

func SaveProfile(db *sql.DB, p model.UserProfile) error {
	_, err := db.Exec(`
INSERT INTO user_profile(id, name, age, gender, height_cm, weight_kg, activity_level, weight_goal, goal_calories, created_at, updated_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  age=excluded.age,
  gender=excluded.gender,
  height_cm=excluded.height_cm,
  weight_kg=excluded.weight_kg,
  activity_level=excluded.activity_level,
  weight_goal=excluded.weight_goal,
  goal_calories=excluded.goal_calories,
  updated_at=excluded.updated_at
`, p.ID, p.Name, p.Age, string(p.Gender), p.HeightCm, p.WeightKg, string(p.ActivityLevel), string(p.WeightGoal), p.GoalCalories,
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func GetProfile(db *sql.DB) (*model.UserProfile, error) {
	var p model.UserProfile
	var gender, activity, goal string
	var createdRaw, updatedRaw string
	err := db.QueryRow(`
SELECT id, name, age, gender, height_cm, weight_kg, activity_level, weight_goal, goal_calories, created_at, updated_at
FROM user_profile
LIMIT 1
`).Scan(&p.ID, &p.Name, &p.Age, &gender, &p.HeightCm, &p.WeightKg, &activity, &goal, &p.GoalCalories, &createdRaw, &updatedRaw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.Gender = model.Gender(gender)
	p.ActivityLevel = model.ActivityLevel(activity)
	p.WeightGoal = model.WeightGoal(goal)
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdRaw); err != nil {
		return nil, fmt.Errorf("parse profile created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedRaw); err != nil {
		return nil, fmt.Errorf("parse profile updated_at: %w", err)
	}
	return &p, nil
}

// ReplaceFoodItems swaps the whole catalog in one transaction. The slice
// order becomes the stored position, which GetFoodItems preserves.
func ReplaceFoodItems(db *sql.DB, items []model.FoodItem) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace food items tx: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM food_items`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear food items: %w", err)
	}
	for i, item := range items {
		if _, err := tx.Exec(`
INSERT INTO food_items(id, name, calories, serving_size, serving_unit, protein_g, carbs_g, fat_g, is_custom, position)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, item.ID, item.Name, item.Calories, item.ServingSize, item.ServingUnit, item.ProteinG, item.CarbsG, item.FatG, item.IsCustom, i); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert food item %q: %w", item.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace food items: %w", err)
	}
	return nil
}

func GetFoodItems(db *sql.DB) ([]model.FoodItem, error) {
	rows, err := db.Query(`
SELECT id, name, calories, serving_size, serving_unit, protein_g, carbs_g, fat_g, is_custom
FROM food_items
ORDER BY position ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	defer rows.Close()

	items := make([]model.FoodItem, 0)
	for rows.Next() {
		item, err := scanFoodItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food items: %w", err)
	}
	return items, nil
}

func scanFoodItem(rows *sql.Rows) (model.FoodItem, error) {
	var item model.FoodItem
	var protein, carbs, fat sql.NullFloat64
	if err := rows.Scan(&item.ID, &item.Name, &item.Calories, &item.ServingSize, &item.ServingUnit, &protein, &carbs, &fat, &item.IsCustom); err != nil {
		return model.FoodItem{}, fmt.Errorf("scan food item: %w", err)
	}
	item.ProteinG = nullableFloat(protein)
	item.CarbsG = nullableFloat(carbs)
	item.FatG = nullableFloat(fat)
	return item, nil
}

func AppendFoodEntry(db *sql.DB, e model.FoodEntry) error {
	_, err := db.Exec(`
INSERT INTO food_entries(id, food_item_id, item_name, item_calories, item_serving_size, item_serving_unit, item_protein_g, item_carbs_g, item_fat_g, item_is_custom, servings, meal_type, day, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, e.ID, e.FoodItemID, e.FoodItem.Name, e.FoodItem.Calories, e.FoodItem.ServingSize, e.FoodItem.ServingUnit,
		e.FoodItem.ProteinG, e.FoodItem.CarbsG, e.FoodItem.FatG, e.FoodItem.IsCustom,
		e.Servings, string(e.MealType), e.Date, e.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("append food entry: %w", err)
	}
	return nil
}

// UpdateFoodEntry rewrites servings, meal type, and day. The item snapshot
// columns stay as logged.
func UpdateFoodEntry(db *sql.DB, e model.FoodEntry) error {
	res, err := db.Exec(`
UPDATE food_entries
SET servings = ?, meal_type = ?, day = ?
WHERE id = ?
`, e.Servings, string(e.MealType), e.Date, e.ID)
	if err != nil {
		return fmt.Errorf("update food entry %s: %w", e.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for entry %s: %w", e.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("food entry %s not found", e.ID)
	}
	return nil
}

func DeleteFoodEntry(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM food_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete food entry %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for entry %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("food entry %s not found", id)
	}
	return nil
}

func GetFoodEntry(db *sql.DB, id string) (*model.FoodEntry, error) {
	row := db.QueryRow(foodEntrySelect+` WHERE id = ?`, id)
	e, err := scanFoodEntry(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("food entry %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func GetFoodEntries(db *sql.DB) ([]model.FoodEntry, error) {
	return queryFoodEntries(db, foodEntrySelect+` ORDER BY created_at ASC, rowid ASC`)
}

func GetFoodEntriesByDate(db *sql.DB, day string) ([]model.FoodEntry, error) {
	return queryFoodEntries(db, foodEntrySelect+` WHERE day = ? ORDER BY created_at ASC, rowid ASC`, day)
}

const foodEntrySelect = `
SELECT id, food_item_id, item_name, item_calories, item_serving_size, item_serving_unit, item_protein_g, item_carbs_g, item_fat_g, item_is_custom, servings, meal_type, day, created_at
FROM food_entries`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFoodEntry(row rowScanner) (model.FoodEntry, error) {
	var e model.FoodEntry
	var protein, carbs, fat sql.NullFloat64
	var mealType, createdRaw string
	if err := row.Scan(&e.ID, &e.FoodItemID, &e.FoodItem.Name, &e.FoodItem.Calories, &e.FoodItem.ServingSize, &e.FoodItem.ServingUnit,
		&protein, &carbs, &fat, &e.FoodItem.IsCustom, &e.Servings, &mealType, &e.Date, &createdRaw); err != nil {
		return model.FoodEntry{}, err
	}
	e.FoodItem.ID = e.FoodItemID
	e.FoodItem.ProteinG = nullableFloat(protein)
	e.FoodItem.CarbsG = nullableFloat(carbs)
	e.FoodItem.FatG = nullableFloat(fat)
	e.MealType = model.MealType(mealType)
	created, err := time.Parse(time.RFC3339, createdRaw)
	if err != nil {
		return model.FoodEntry{}, fmt.Errorf("parse created_at for entry %s: %w", e.ID, err)
	}
	e.CreatedAt = created
	return e, nil
}

func queryFoodEntries(db *sql.DB, query string, args ...any) ([]model.FoodEntry, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list food entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.FoodEntry, 0)
	for rows.Next() {
		e, err := scanFoodEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food entries: %w", err)
	}
	return entries, nil
}

// UpsertWeightEntry keeps at most one entry per day; a second write for the
// same day overwrites the stored weight.
func UpsertWeightEntry(db *sql.DB, e model.WeightEntry) error {
	_, err := db.Exec(`
INSERT INTO weight_entries(day, weight_kg)
VALUES(?, ?)
ON CONFLICT(day) DO UPDATE SET weight_kg=excluded.weight_kg
`, e.Date, e.WeightKg)
	if err != nil {
		return fmt.Errorf("upsert weight entry for %s: %w", e.Date, err)
	}
	return nil
}

func GetWeightEntries(db *sql.DB) ([]model.WeightEntry, error) {
	rows, err := db.Query(`SELECT day, weight_kg FROM weight_entries ORDER BY day ASC`)
	if err != nil {
		return nil, fmt.Errorf("list weight entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.WeightEntry, 0)
	for rows.Next() {
		var e model.WeightEntry
		if err := rows.Scan(&e.Date, &e.WeightKg); err != nil {
			return nil, fmt.Errorf("scan weight entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight entries: %w", err)
	}
	return entries, nil
}

// ClearAll wipes profile, catalog, entries, and the weight series. App
// config survives a reset.
func ClearAll(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin clear tx: %w", err)
	}
	for _, table := range []string{"user_profile", "food_items", "food_entries", "weight_entries"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear: %w", err)
	}
	return nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
