package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/j1me/burntrack/internal/model"
	"github.com/j1me/burntrack/internal/store"
)

type ProfileInput struct {
	Name          string
	Age           int
	Gender        string
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string
	WeightGoal    string
}

// SaveProfile creates or replaces the profile. GoalCalories is always
// recomputed from the stored attributes; the first save also seeds the
// weight series with today's weight.
func SaveProfile(db *sql.DB, in ProfileInput) (model.UserProfile, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return model.UserProfile{}, fmt.Errorf("profile name is required")
	}
	if in.Age < 0 {
		return model.UserProfile{}, fmt.Errorf("age must be >= 0")
	}
	if err := validatePositiveFloat("height", in.HeightCm); err != nil {
		return model.UserProfile{}, err
	}
	if err := validatePositiveFloat("weight", in.WeightKg); err != nil {
		return model.UserProfile{}, err
	}
	gender, err := ParseGender(in.Gender)
	if err != nil {
		return model.UserProfile{}, err
	}
	activity, err := ParseActivityLevel(in.ActivityLevel)
	if err != nil {
		return model.UserProfile{}, err
	}
	goal, err := ParseWeightGoal(in.WeightGoal)
	if err != nil {
		return model.UserProfile{}, err
	}

	existing, err := store.GetProfile(db)
	if err != nil {
		return model.UserProfile{}, err
	}

	now := time.Now()
	p := model.UserProfile{
		Name:          in.Name,
		Age:           in.Age,
		Gender:        gender,
		HeightCm:      in.HeightCm,
		WeightKg:      in.WeightKg,
		ActivityLevel: activity,
		WeightGoal:    goal,
		UpdatedAt:     now,
	}
	if existing != nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		p.ID = NewID()
		p.CreatedAt = now
	}
	p.GoalCalories = DailyCalorieNeeds(p)

	if err := store.SaveProfile(db, p); err != nil {
		return model.UserProfile{}, err
	}
	if existing == nil {
		if err := store.UpsertWeightEntry(db, model.WeightEntry{Date: Today(), WeightKg: p.WeightKg}); err != nil {
			return model.UserProfile{}, err
		}
	}
	return p, nil
}

func Profile(db *sql.DB) (*model.UserProfile, error) {
	return store.GetProfile(db)
}
