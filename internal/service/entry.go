package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/j1me/burntrack/internal/model"
	"github.com/j1me/burntrack/internal/store"
)

type AddFoodEntryInput struct {
	FoodItemID string
	Servings   float64
	MealType   string
	Date       string
}

type UpdateFoodEntryInput struct {
	ID       string
	Servings float64
	MealType string
	Date     string
}

// AddFoodEntry logs an item for a day, snapshotting the item so later
// catalog edits do not change this entry's contribution.
func AddFoodEntry(db *sql.DB, in AddFoodEntryInput) (model.FoodEntry, error) {
	if err := validatePositiveFloat("servings", in.Servings); err != nil {
		return model.FoodEntry{}, err
	}
	mealType, err := ParseMealType(in.MealType)
	if err != nil {
		return model.FoodEntry{}, err
	}
	date, err := resolveEntryDate(in.Date)
	if err != nil {
		return model.FoodEntry{}, err
	}

	items, err := store.GetFoodItems(db)
	if err != nil {
		return model.FoodEntry{}, err
	}
	var item *model.FoodItem
	for i := range items {
		if items[i].ID == in.FoodItemID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return model.FoodEntry{}, fmt.Errorf("food item %s not found", in.FoodItemID)
	}

	entry := model.FoodEntry{
		ID:         NewID(),
		FoodItemID: item.ID,
		FoodItem:   *item,
		Servings:   in.Servings,
		MealType:   mealType,
		Date:       date,
		CreatedAt:  time.Now(),
	}
	if err := store.AppendFoodEntry(db, entry); err != nil {
		return model.FoodEntry{}, err
	}
	return entry, nil
}

// UpdateFoodEntry rewrites servings, meal type, and day; the item snapshot
// stays as logged.
func UpdateFoodEntry(db *sql.DB, in UpdateFoodEntryInput) (model.FoodEntry, error) {
	if strings.TrimSpace(in.ID) == "" {
		return model.FoodEntry{}, fmt.Errorf("entry id is required")
	}
	if err := validatePositiveFloat("servings", in.Servings); err != nil {
		return model.FoodEntry{}, err
	}
	mealType, err := ParseMealType(in.MealType)
	if err != nil {
		return model.FoodEntry{}, err
	}
	date, err := resolveEntryDate(in.Date)
	if err != nil {
		return model.FoodEntry{}, err
	}

	entry, err := store.GetFoodEntry(db, in.ID)
	if err != nil {
		return model.FoodEntry{}, err
	}
	entry.Servings = in.Servings
	entry.MealType = mealType
	entry.Date = date
	if err := store.UpdateFoodEntry(db, *entry); err != nil {
		return model.FoodEntry{}, err
	}
	return *entry, nil
}

func DeleteFoodEntry(db *sql.DB, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("entry id is required")
	}
	return store.DeleteFoodEntry(db, id)
}

func resolveEntryDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Today(), nil
	}
	day, err := ParseDay(value)
	if err != nil {
		return "", err
	}
	return FormatDay(day), nil
}
