package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"classbench/adapters/memory"
	"classbench/adapters/postgres"
	"classbench/app"
	"classbench/internal"
	"classbench/internal/config"
	"classbench/internal/errors"
	"classbench/ports"
	"classbench/ui"
)

func main() {
	logger := internal.NewDefaultLogger()

	// Load .env file if it exists (development convenience)
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	repository, cleanup, err := buildRepository(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage (%s): %v", errors.GetCode(err), err)
		os.Exit(1)
	}
	defer cleanup()

	service := app.NewBenchmarkService(repository)
	defaults := app.BenchmarkRequest{
		Seed:      cfg.Simulation.Seed,
		TrainSize: cfg.Simulation.TrainSize,
		TestSize:  cfg.Simulation.TestSize,
		Mixture:   cfg.Simulation.Mixture,
	}
	application := ui.NewApp(service, repository, defaults)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      application.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("Benchmark API listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}

func buildRepository(cfg *config.Config, logger *internal.Logger) (ports.ExperimentRepository, func(), error) {
	if cfg.Database.URL == "" {
		logger.Warn("DATABASE_URL not set, experiments are kept in memory only")
		return memory.NewExperimentRepository(), func() {}, nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, nil, errors.DatabaseError("failed to connect to postgres", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, nil, errors.DatabaseError("failed to prepare experiments schema", err)
	}

	logger.Info("Connected to PostgreSQL")
	return postgres.NewExperimentRepository(db), func() { db.Close() }, nil
}
