package burntrack

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/j1me/burntrack/internal/app"
	"github.com/j1me/burntrack/internal/db"
	"github.com/j1me/burntrack/internal/model"
	"github.com/j1me/burntrack/internal/provider/foodsource"
	"github.com/j1me/burntrack/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// resolveSourceURL picks the catalog CSV location: --source flag, then env,
// then the persisted config key, then the provider default.
func resolveSourceURL(sqldb *sql.DB) (string, error) {
	if strings.TrimSpace(sourceURL) != "" {
		return strings.TrimSpace(sourceURL), nil
	}
	if fromEnv := os.Getenv("BURNTRACK_FOOD_SOURCE_URL"); fromEnv != "" {
		return fromEnv, nil
	}
	value, found, err := service.GetConfig(sqldb, service.ConfigFoodSourceURL)
	if err != nil {
		return "", err
	}
	if found {
		return value, nil
	}
	return "", nil
}

func newCatalog(sqldb *sql.DB) (*service.CatalogService, error) {
	url, err := resolveSourceURL(sqldb)
	if err != nil {
		return nil, err
	}
	return service.NewCatalogService(&foodsource.Client{SourceURL: url}), nil
}

func formatOptionalGrams(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1fg", *v)
}

func printFoodItems(w io.Writer, items []model.FoodItem) {
	fmt.Fprintln(w, "ID\tNAME\tKCAL\tSERVING\tP\tC\tF\tCUSTOM")
	for _, item := range items {
		custom := ""
		if item.IsCustom {
			custom = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.1f %s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Name, item.Calories, item.ServingSize, item.ServingUnit,
			formatOptionalGrams(item.ProteinG), formatOptionalGrams(item.CarbsG), formatOptionalGrams(item.FatG), custom)
	}
}

func printDailyLog(w io.Writer, dailyLog model.DailyLog) {
	fmt.Fprintf(w, "Date: %s\n", dailyLog.Date)
	breakdown := service.GroupEntriesByMeal(dailyLog.Entries)
	for _, meal := range []struct {
		label   string
		entries []model.FoodEntry
	}{
		{"Breakfast", breakdown.Breakfast},
		{"Lunch", breakdown.Lunch},
		{"Dinner", breakdown.Dinner},
		{"Snacks", breakdown.Snack},
	} {
		if len(meal.entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", meal.label)
		for _, e := range meal.entries {
			fmt.Fprintf(w, "  %s\t%s\tx%.1f\t%.0f kcal\n", e.ID, e.FoodItem.Name, e.Servings, e.Calories())
		}
	}
	fmt.Fprintf(w, "Total: %.0f / %d kcal\n", dailyLog.TotalCalories, dailyLog.GoalCalories)
}

func showDailyLog(w io.Writer, sqldb *sql.DB, date string) error {
	if strings.TrimSpace(date) == "" {
		date = service.Today()
	}
	dailyLog, err := service.DailyLogFor(sqldb, date)
	if err != nil {
		return err
	}
	printDailyLog(w, dailyLog)
	return nil
}

func optionalGrams(v float64) *float64 {
	if v < 0 {
		return nil
	}
	return &v
}
