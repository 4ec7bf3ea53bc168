package burntrack

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dbPath    string
	sourceURL string
)

var rootCmd = &cobra.Command{
	Use:   "burntrack",
	Short: "burntrack tracks calories, weight, and goals from your terminal",
	Long:  "burntrack is a local-first calorie tracking CLI with a searchable food catalog, per-day food logs, weight history, and a computed daily calorie goal.",
}

func Execute() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&sourceURL, "source", "", "Food catalog CSV URL override")
}
