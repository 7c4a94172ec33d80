package commands

import (
	"database/sql"
	"time"

	"github.com/spf13/cobra"

	"github.com/torvane/daybook/config"
	"github.com/torvane/daybook/db"
	"github.com/torvane/daybook/errors"
	"github.com/torvane/daybook/logger"
	"github.com/torvane/daybook/placement"
	"github.com/torvane/daybook/resolve"
	"github.com/torvane/daybook/storage"
	"github.com/torvane/daybook/workflow"
)

// environment bundles everything a command needs: config, an open database,
// the stores, the resolver anchored at today, and the workflow service.
type environment struct {
	cfg       *config.Config
	database  *sql.DB
	items     *storage.ItemStore
	aliases   *storage.AliasStore
	resolver  *resolve.Resolver
	workflows *workflow.Service
}

// newEnvironment loads config, opens and migrates the database, and wires
// the service stack. Callers must Close.
func newEnvironment() (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	database, err := openDatabase("")
	if err != nil {
		return nil, err
	}

	items := storage.NewItemStore(database, logger.Logger)
	aliases := storage.NewAliasStore(database, logger.Logger)

	today, err := localToday(cfg.Resolver.Timezone)
	if err != nil {
		database.Close()
		return nil, err
	}

	resolver := resolve.New(items, aliases, today,
		resolve.WithTimezone(cfg.Resolver.Timezone),
		resolve.WithWeekdaySameDay(cfg.Resolver.WeekdaySameDay),
		resolve.WithPriorityWindow(cfg.Resolver.PriorityWindowDays),
		resolve.WithLogger(logger.Logger),
	)

	return &environment{
		cfg:       cfg,
		database:  database,
		items:     items,
		aliases:   aliases,
		resolver:  resolver,
		workflows: workflow.NewService(items, aliases, resolver, logger.Logger),
	}, nil
}

func (e *environment) Close() {
	e.database.Close()
}

// cwd returns the placement relative locators resolve against: the --cwd
// flag when set, otherwise today.
func (e *environment) cwd(cmd *cobra.Command) (placement.Placement, error) {
	raw, _ := cmd.Root().PersistentFlags().GetString("cwd")
	if raw == "" {
		return placement.DatePlacement(e.resolver.Today()), nil
	}
	p, err := placement.Parse(raw)
	if err != nil {
		return placement.Placement{}, errors.Wrapf(err, "invalid --cwd %q", raw)
	}
	return p, nil
}

// localToday anchors "today" in the configured zone; an empty zone means
// the process-local one.
func localToday(timezone string) (placement.CalendarDay, error) {
	loc := time.Local
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return placement.CalendarDay{}, errors.Wrapf(err, "resolver.timezone %q", timezone)
		}
	}
	return placement.DayOf(time.Now().In(loc)), nil
}

// openDatabase opens and migrates a database at the given path, falling
// back to the configured path when empty.
func openDatabase(dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		path, err := config.GetDatabasePath()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get database path")
		}
		dbPath = path
	}

	database, err := db.Open(dbPath, logger.Logger)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database at %s", dbPath)
	}

	if err := db.Migrate(database, logger.Logger); err != nil {
		database.Close()
		return nil, errors.Wrapf(err, "failed to run migrations on %s", dbPath)
	}

	return database, nil
}
