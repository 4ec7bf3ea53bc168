package service

import (
	"database/sql"

	"github.com/j1me/burntrack/internal/model"
	"github.com/j1me/burntrack/internal/store"
)

// DefaultGoalCalories is used when no profile exists yet.
const DefaultGoalCalories = 2000

// BuildDailyLog derives the per-day view from the full entry collection:
// exact day-string equality, per-entry calories from the logged snapshot
// times servings. It is recomputed after every mutation, never patched.
func BuildDailyLog(date string, entries []model.FoodEntry, goalCalories int) model.DailyLog {
	if goalCalories <= 0 {
		goalCalories = DefaultGoalCalories
	}
	dayEntries := make([]model.FoodEntry, 0)
	total := 0.0
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		dayEntries = append(dayEntries, e)
		total += e.Calories()
	}
	return model.DailyLog{
		Date:          date,
		Entries:       dayEntries,
		TotalCalories: total,
		GoalCalories:  goalCalories,
	}
}

// GroupEntriesByMeal partitions entries into the four meal buckets,
// preserving insertion order within each bucket. Display-only, never
// persisted.
func GroupEntriesByMeal(entries []model.FoodEntry) model.MealBreakdown {
	var b model.MealBreakdown
	for _, e := range entries {
		switch e.MealType {
		case model.MealBreakfast:
			b.Breakfast = append(b.Breakfast, e)
		case model.MealLunch:
			b.Lunch = append(b.Lunch, e)
		case model.MealDinner:
			b.Dinner = append(b.Dinner, e)
		case model.MealSnack:
			b.Snack = append(b.Snack, e)
		}
	}
	return b
}

// DailyLogFor loads the entry collection and current goal and aggregates
// them for the given day.
func DailyLogFor(db *sql.DB, date string) (model.DailyLog, error) {
	entries, err := store.GetFoodEntries(db)
	if err != nil {
		return model.DailyLog{}, err
	}
	goal := 0
	profile, err := store.GetProfile(db)
	if err != nil {
		return model.DailyLog{}, err
	}
	if profile != nil {
		goal = profile.GoalCalories
	}
	return BuildDailyLog(date, entries, goal), nil
}
