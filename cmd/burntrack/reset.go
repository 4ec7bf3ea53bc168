package burntrack

import (
	"database/sql"
	"fmt"

	"github.com/j1me/burntrack/internal/service"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe profile, logs, and weight history and reload the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("reset deletes all local data; re-run with --force to confirm")
		}
		return withDB(func(sqldb *sql.DB) error {
			catalog, err := newCatalog(sqldb)
			if err != nil {
				return err
			}
			items, err := service.ResetApp(cmd.Context(), sqldb, catalog)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset complete; catalog %s with %d items\n", catalog.State(), len(items))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Confirm the reset")
}
