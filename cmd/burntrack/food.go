package burntrack

import (
	"database/sql"
	"fmt"

	"github.com/j1me/burntrack/internal/service"
	"github.com/j1me/burntrack/internal/store"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food catalog",
}

var foodReloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload the catalog from the external source, keeping custom items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			catalog, err := newCatalog(sqldb)
			if err != nil {
				return err
			}
			items, err := catalog.Initialize(cmd.Context(), sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog %s with %d items\n", catalog.State(), len(items))
			return nil
		})
	},
}

var foodResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the whole catalog, discarding custom items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			catalog, err := newCatalog(sqldb)
			if err != nil {
				return err
			}
			items, err := catalog.Reset(cmd.Context(), sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog %s with %d items\n", catalog.State(), len(items))
			return nil
		})
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog by name (empty query lists everything)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		return withDB(func(sqldb *sql.DB) error {
			items, err := store.GetFoodItems(sqldb)
			if err != nil {
				return err
			}
			printFoodItems(cmd.OutOrStdout(), service.SearchFoodItems(items, query))
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the full catalog in catalog order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := store.GetFoodItems(sqldb)
			if err != nil {
				return err
			}
			printFoodItems(cmd.OutOrStdout(), items)
			return nil
		})
	},
}

var (
	foodName        string
	foodCalories    float64
	foodServingSize float64
	foodServingUnit string
	foodProtein     float64
	foodCarbs       float64
	foodFat         float64
)

func foodItemInput() service.FoodItemInput {
	return service.FoodItemInput{
		Name:        foodName,
		Calories:    foodCalories,
		ServingSize: foodServingSize,
		ServingUnit: foodServingUnit,
		ProteinG:    optionalGrams(foodProtein),
		CarbsG:      optionalGrams(foodCarbs),
		FatG:        optionalGrams(foodFat),
	}
}

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom food item",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			catalog, err := newCatalog(sqldb)
			if err != nil {
				return err
			}
			item, err := catalog.AddCustomItem(sqldb, foodItemInput())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added custom food %s (%s)\n", item.Name, item.ID)
			return nil
		})
	},
}

var foodUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a food item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			catalog, err := newCatalog(sqldb)
			if err != nil {
				return err
			}
			item, err := catalog.UpdateItem(sqldb, args[0], foodItemInput())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated food %s\n", item.ID)
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			catalog, err := newCatalog(sqldb)
			if err != nil {
				return err
			}
			if err := catalog.DeleteItem(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodReloadCmd, foodResetCmd, foodSearchCmd, foodListCmd, foodAddCmd, foodUpdateCmd, foodDeleteCmd)

	for _, c := range []*cobra.Command{foodAddCmd, foodUpdateCmd} {
		c.Flags().StringVar(&foodName, "name", "", "Food name")
		c.Flags().Float64Var(&foodCalories, "calories", 0, "Calories per serving")
		c.Flags().Float64Var(&foodServingSize, "serving-size", 1, "Serving size")
		c.Flags().StringVar(&foodServingUnit, "serving-unit", "", "Serving unit label (g, piece, cup, ...)")
		c.Flags().Float64Var(&foodProtein, "protein", -1, "Protein grams per serving (optional)")
		c.Flags().Float64Var(&foodCarbs, "carbs", -1, "Carb grams per serving (optional)")
		c.Flags().Float64Var(&foodFat, "fat", -1, "Fat grams per serving (optional)")
		_ = c.MarkFlagRequired("name")
		_ = c.MarkFlagRequired("calories")
	}
}
