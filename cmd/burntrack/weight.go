package burntrack

import (
	"database/sql"
	"fmt"

	"github.com/j1me/burntrack/internal/service"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight over time",
}

var (
	weightValue float64
	weightUnit  string
	weightDate  string
)

var weightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record weight for a day (overwrites the same day)",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.AddWeightEntryInput{
			Weight: weightValue,
			Unit:   weightUnit,
			Date:   weightDate,
		}
		return withDB(func(sqldb *sql.DB) error {
			entry, err := service.AddWeightEntry(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f kg on %s\n", entry.WeightKg, entry.Date)
			return nil
		})
	},
}

var weightOutUnit string

var weightHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the weight series sorted by date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.WeightHistory(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tWEIGHT")
			for _, e := range entries {
				switch weightOutUnit {
				case "", "kg":
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f kg\n", e.Date, e.WeightKg)
				case "lb", "lbs":
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f lbs\n", e.Date, service.KgToLbs(e.WeightKg))
				default:
					return fmt.Errorf("invalid weight unit %q (use kg or lb)", weightOutUnit)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightHistoryCmd)

	weightAddCmd.Flags().Float64Var(&weightValue, "weight", 0, "Weight value")
	weightAddCmd.Flags().StringVar(&weightUnit, "unit", "kg", "Weight unit: kg or lb")
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = weightAddCmd.MarkFlagRequired("weight")

	weightHistoryCmd.Flags().StringVar(&weightOutUnit, "unit", "kg", "Output unit: kg or lb")
}
