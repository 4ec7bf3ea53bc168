package burntrack

import (
	"database/sql"
	"fmt"

	"github.com/j1me/burntrack/internal/service"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log food intake and view the daily log",
}

var (
	logFoodID   string
	logServings float64
	logMeal     string
	logDate     string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food item for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.AddFoodEntryInput{
			FoodItemID: logFoodID,
			Servings:   logServings,
			MealType:   logMeal,
			Date:       logDate,
		}
		return withDB(func(sqldb *sql.DB) error {
			entry, err := service.AddFoodEntry(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s x%.1f (%s)\n", entry.FoodItem.Name, entry.Servings, entry.ID)
			return showDailyLog(cmd.OutOrStdout(), sqldb, entry.Date)
		})
	},
}

var logUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update servings, meal, or day of a logged entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.UpdateFoodEntryInput{
			ID:       args[0],
			Servings: logServings,
			MealType: logMeal,
			Date:     logDate,
		}
		return withDB(func(sqldb *sql.DB) error {
			entry, err := service.UpdateFoodEntry(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %s\n", entry.ID)
			return showDailyLog(cmd.OutOrStdout(), sqldb, entry.Date)
		})
	},
}

var logDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteFoodEntry(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", args[0])
			return showDailyLog(cmd.OutOrStdout(), sqldb, logDate)
		})
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the daily log for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			return showDailyLog(cmd.OutOrStdout(), sqldb, logDate)
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logUpdateCmd, logDeleteCmd, logShowCmd)

	logAddCmd.Flags().StringVar(&logFoodID, "food", "", "Food item id")
	_ = logAddCmd.MarkFlagRequired("food")

	for _, c := range []*cobra.Command{logAddCmd, logUpdateCmd} {
		c.Flags().Float64Var(&logServings, "servings", 1, "Number of servings")
		c.Flags().StringVar(&logMeal, "meal", "", "Meal type: breakfast, lunch, dinner, snack")
		c.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
		_ = c.MarkFlagRequired("meal")
	}
	logDeleteCmd.Flags().StringVar(&logDate, "date", "", "Date to reprint after deleting (default today)")
	logShowCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
}
