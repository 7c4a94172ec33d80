package commands

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torvane/daybook/config"
	"github.com/torvane/daybook/db"
	"github.com/torvane/daybook/errors"
)

// DbCmd manages the daybook database.
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the daybook database",
	Long: `Manage database operations.

Examples:
  daybook db migrate    # apply pending schema migrations
  daybook db stats      # show item, alias, and day counts`,
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runDbMigrate,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	RunE:  runDbStats,
}

func init() {
	DbCmd.AddCommand(dbMigrateCmd)
	DbCmd.AddCommand(dbStatsCmd)
}

func runDbMigrate(cmd *cobra.Command, args []string) error {
	database, err := openDatabase("")
	if err != nil {
		return err
	}
	defer database.Close()

	versions, err := db.AppliedVersions(database)
	if err != nil {
		return err
	}
	fmt.Printf("schema up to date, %d migrations applied\n", len(versions))
	return nil
}

func runDbStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	database, err := openDatabase("")
	if err != nil {
		return err
	}
	defer database.Close()

	var totalItems, totalAliases, distinctDays int
	err = database.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM items),
			(SELECT COUNT(*) FROM aliases),
			(SELECT COUNT(DISTINCT head_day) FROM items WHERE head_day IS NOT NULL)
	`).Scan(&totalItems, &totalAliases, &distinctDays)
	if err != nil && err != sql.ErrNoRows {
		return errors.Wrap(err, "failed to query stats")
	}

	fmt.Printf("Database: %s\n", cfg.Database.Path)
	fmt.Printf("Items:    %d\n", totalItems)
	fmt.Printf("Aliases:  %d\n", totalAliases)
	fmt.Printf("Days:     %d\n", distinctDays)
	return nil
}
