package burntrack

import (
	"database/sql"
	"fmt"

	"github.com/j1me/burntrack/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile and calorie goal",
}

var (
	profileName     string
	profileAge      int
	profileGender   string
	profileHeightCm float64
	profileFeet     int
	profileInches   int
	profileWeight   float64
	profileUnit     string
	profileActivity string
	profileGoal     string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile; recomputes the calorie goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		heightCm := profileHeightCm
		if heightCm == 0 && (profileFeet > 0 || profileInches > 0) {
			heightCm = service.FeetInchesToCm(profileFeet, profileInches)
		}
		weightKg := profileWeight
		switch profileUnit {
		case "", "kg":
		case "lb", "lbs":
			weightKg = service.LbsToKg(profileWeight)
		default:
			return fmt.Errorf("invalid weight unit %q (use kg or lb)", profileUnit)
		}
		in := service.ProfileInput{
			Name:          profileName,
			Age:           profileAge,
			Gender:        profileGender,
			HeightCm:      heightCm,
			WeightKg:      weightKg,
			ActivityLevel: profileActivity,
			WeightGoal:    profileGoal,
		}
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.SaveProfile(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s\n", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily calorie goal: %d kcal\n", p.GoalCalories)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile, BMI, and calorie goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.Profile(sqldb)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile configured; run 'burntrack profile set'")
				return nil
			}
			feet, inches := service.CmToFeetInches(p.HeightCm)
			bmi := service.CalculateBMI(p.WeightKg, p.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\n", p.Gender)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.0f cm (%d'%d\")\n", p.HeightCm, feet, inches)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg (%.1f lbs)\n", p.WeightKg, service.KgToLbs(p.WeightKg))
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s\n", p.ActivityLevel)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", p.WeightGoal)
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f (%s)\n", bmi.BMI, bmi.Category)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily calorie goal: %d kcal\n", p.GoalCalories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: male, female, or other")
	profileSetCmd.Flags().Float64Var(&profileHeightCm, "height-cm", 0, "Height in centimeters")
	profileSetCmd.Flags().IntVar(&profileFeet, "height-ft", 0, "Height feet component (with --height-in)")
	profileSetCmd.Flags().IntVar(&profileInches, "height-in", 0, "Height inches component")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Current weight")
	profileSetCmd.Flags().StringVar(&profileUnit, "unit", "kg", "Weight unit: kg or lb")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level: sedentary, light, moderate, active, very_active")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Weight goal: lose, maintain, gain")
	_ = profileSetCmd.MarkFlagRequired("name")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("activity")
	_ = profileSetCmd.MarkFlagRequired("goal")
}
