package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anuj140/hireengine/internal/app"
	"github.com/anuj140/hireengine/internal/config"
	"github.com/anuj140/hireengine/internal/database"
	"github.com/anuj140/hireengine/internal/logging"
	"github.com/anuj140/hireengine/internal/monitoring"
	"github.com/anuj140/hireengine/internal/repository"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(os.Stdout, cfg.Log.Format, cfg.Log.Level)
	log = log.With("service", "hireengine-api")

	db, err := database.Open(cfg.Database, logger.Warn)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	defer database.Close(db)

	if err := repository.Migrate(db); err != nil {
		return err
	}

	a := app.New(db, cfg, log, monitoring.NewMonitor("hireengine"))
	defer a.Close()

	a.Maintenance.Start()
	defer a.Maintenance.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           a.Router(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Info("shutdown complete")
	return nil
}
