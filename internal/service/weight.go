package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/j1me/burntrack/internal/model"
	"github.com/j1me/burntrack/internal/store"
)

type AddWeightEntryInput struct {
	Weight float64
	Unit   string
	Date   string
}

// AddWeightEntry upserts the weight for a calendar day. When the entry is
// for today and a profile exists, the profile's current weight follows it
// and the calorie goal is recomputed.
func AddWeightEntry(db *sql.DB, in AddWeightEntryInput) (model.WeightEntry, error) {
	weightKg, err := weightToKg(in.Weight, in.Unit)
	if err != nil {
		return model.WeightEntry{}, err
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = Today()
	} else {
		day, err := ParseDay(date)
		if err != nil {
			return model.WeightEntry{}, err
		}
		date = FormatDay(day)
	}
	future, err := IsFutureDay(date)
	if err != nil {
		return model.WeightEntry{}, err
	}
	if future {
		return model.WeightEntry{}, fmt.Errorf("weight date %s is in the future", date)
	}

	entry := model.WeightEntry{Date: date, WeightKg: weightKg}
	if err := store.UpsertWeightEntry(db, entry); err != nil {
		return model.WeightEntry{}, err
	}

	if date == Today() {
		profile, err := store.GetProfile(db)
		if err != nil {
			return model.WeightEntry{}, err
		}
		if profile != nil {
			profile.WeightKg = weightKg
			profile.GoalCalories = DailyCalorieNeeds(*profile)
			if err := store.SaveProfile(db, *profile); err != nil {
				return model.WeightEntry{}, err
			}
		}
	}
	return entry, nil
}

// WeightHistory returns the series sorted by day ascending.
func WeightHistory(db *sql.DB) ([]model.WeightEntry, error) {
	return store.GetWeightEntries(db)
}

func weightToKg(value float64, unit string) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		u = "kg"
	}
	switch u {
	case "kg":
		return value, nil
	case "lb", "lbs":
		return LbsToKg(value), nil
	default:
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lb)", unit)
	}
}
