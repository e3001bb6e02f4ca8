package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/anuj140/hireengine/internal/app"
	"github.com/anuj140/hireengine/internal/config"
	"github.com/anuj140/hireengine/internal/database"
	"github.com/anuj140/hireengine/internal/logging"
	"github.com/anuj140/hireengine/internal/monitoring"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	logFormat string
	logLevel  string
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hirectl",
		Short:        "Operator tools for the hiring platform",
		Long:         `hirectl runs schema migrations, seeds the plan catalog and triggers plan reconciliation outside the API server.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newMigrateCommand(),
		newSeedPlansCommand(),
		newReconcileCommand(),
		newExpireCommand(),
		newCreateAdminCommand(),
	)
	return cmd
}

// env is what every subcommand needs: configuration, a logger and a database.
type env struct {
	cfg *config.Config
	log *slog.Logger
	db  *gorm.DB
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logging.New(os.Stderr, logFormat, logLevel)

	db, err := database.Open(cfg.Database, logger.Warn)
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}
	return &env{cfg: cfg, log: log, db: db}, nil
}

func (e *env) close() {
	if err := database.Close(e.db); err != nil {
		e.log.Warn("closing database", "error", err)
	}
}

// withApp runs fn against a fully wired application.
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	a := app.New(e.db, e.cfg, e.log, monitoring.NewMonitor("hirectl"))
	defer a.Close()

	return fn(ctx, a)
}
