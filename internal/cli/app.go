/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/catalog"
	"dirpx.dev/dresult/internal/config"
	"dirpx.dev/dresult/internal/logger"
	"dirpx.dev/dresult/mapper"
	"dirpx.dev/dresult/message"
	"dirpx.dev/dresult/validate"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// App holds what every command works on: the loaded configuration, the
// message registry built from it and the status mapper.
type App struct {
	configFile string
	stats      bool

	cfg      *config.Config
	log      zerolog.Logger
	locale   language.Tag
	format   catalog.Format
	catalog  *catalog.Catalog
	registry *message.Registry
	metrics  *prometheus.Registry
	mapper   apis.Mapper

	db    *sql.DB
	store *catalog.SQL
}

// NewApp returns an App that is set up by the root command before any
// subcommand runs.
func NewApp() *App {
	return &App{log: zerolog.Nop()}
}

// setup loads the configuration and builds the registry. Sources are
// queried in this order: file catalogs, the SQL table, the validation
// messages, the builtin catalog.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(viper.New(), a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Console)

	if a.locale, err = language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}
	if a.format, err = catalog.ParseFormat(cfg.Format); err != nil {
		return err
	}

	a.catalog = catalog.New(language.English)
	for _, dir := range cfg.Catalogs {
		n, err := a.catalog.LoadDir(dir, a.format)
		if err != nil {
			return fmt.Errorf("failed to load catalogs: %w", err)
		}
		a.log.Debug().Str("dir", dir).Int("files", n).Msg("Catalog directory loaded")
	}

	a.metrics = prometheus.NewRegistry()
	a.registry = message.NewRegistry(
		message.WithLogger(a.log),
		message.WithMetrics(a.metrics),
	)
	a.registry.Register(a.catalog)

	if cfg.Database != "" {
		if err := a.openStore(cmd.Context()); err != nil {
			return err
		}
		a.registry.Register(a.store)
	}

	a.registry.Register(validate.Messages())
	a.registry.Register(catalog.Builtin())

	a.mapper, err = mapper.New(mapper.WithRules(cfg.Rules...))
	if err != nil {
		return err
	}
	return nil
}

func (a *App) openStore(ctx context.Context) error {
	db, err := sql.Open("sqlite3", a.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	store, err := catalog.NewSQL(db,
		catalog.WithTable(a.cfg.Table),
		catalog.WithSQLLogger(a.log),
	)
	if err != nil {
		_ = db.Close()
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := store.Migrate(ctx); err != nil {
		_ = db.Close()
		return err
	}
	a.db, a.store = db, store
	return nil
}

// Close releases the database, if one was opened.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db, a.store = nil, nil
	return err
}

// printStats writes the registry counters in the Prometheus text style,
// one line per outcome.
func (a *App) printStats(w io.Writer) error {
	if a.metrics == nil {
		return nil
	}
	families, err := a.metrics.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var outcome string
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "outcome" {
					outcome = lp.GetValue()
				}
			}
			if _, err := fmt.Fprintf(w, "%s{outcome=%q} %g\n", mf.GetName(), outcome, m.GetCounter().GetValue()); err != nil {
				return err
			}
		}
	}
	return nil
}

// ErrNoDatabase is returned by commands that need --database when none is
// configured.
var ErrNoDatabase = errors.New("no database configured (use --database or DRESULT_DATABASE)")

// NewRootCmd returns the dresult command with every subcommand attached.
func NewRootCmd(app *App, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dresult",
		Short: "Inspect error codes, message catalogs and status mappings",
		Long: `dresult works with the message catalogs and status rules used by
dirpx.dev/dresult:
- resolve codes to localized messages
- lint catalog files
- show how a category and code map to HTTP and gRPC statuses
- print the JSON schema of the wire error
- import catalogs into a SQL message table`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if app.stats {
				if err := app.printStats(cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			return app.Close()
		},
	}
	cmd.SetOut(out)

	f := cmd.PersistentFlags()
	f.StringVar(&app.configFile, "config", "", "Config file (default ./dresult.toml or $HOME/.config/dresult/dresult.toml)")
	f.String("locale", "en", "Locale messages are resolved in")
	f.StringSlice("catalogs", nil, "Directories of <locale>.toml|.yaml catalog files")
	f.String("format", "auto", "Catalog file format: auto, toml or yaml")
	f.String("database", "", "SQLite DSN of a message table")
	f.String("table", catalog.DefaultTable, "Message table name")
	f.String("log-level", "warn", "Log level: trace, debug, info, warn or error")
	f.Bool("console", true, "Human-readable log output")
	f.BoolVar(&app.stats, "stats", false, "Print message lookup counters to stderr after the command")

	cmd.AddCommand(app.newResolveCmd())
	cmd.AddCommand(app.newLintCmd())
	cmd.AddCommand(app.newMapCmd())
	cmd.AddCommand(app.newSchemaCmd())
	cmd.AddCommand(app.newImportCmd())

	return cmd
}
