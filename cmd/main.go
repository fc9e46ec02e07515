package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "github.com/Eliseu75766/dashboard-riscos-logisticos/docs"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/config"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/repository"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/service"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/pkg/logger"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/pkg/postgres"
)

const (
	appName = "riscos"
	Version = "0.1.0"
)

// @title Logistics Risk Dashboard API
// @version 1.0
// @description Synthetic logistics risk incidents (Brazil, H1 2025) and dashboard metrics.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Synthetic logistics risk incidents and report API",
		Long: `Generates the synthetic logistics risk incident dataset (Brazil, H1 2025)
consumed by the risk dashboard and serves its aggregated metrics over HTTP.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(generateCmd(), serveCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})
	return cmd
}

// setup загружает конфигурацию и создаёт логгер
func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger.New(cfg.LogLevel, cfg.LogFormat), nil
}

func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// openStorage собирает хранилище набора: CSV-файл всегда, PostgreSQL - если
// задан DATABASE_URL. При наличии базы она становится основным источником чтения.
func openStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.IncidentRepository, func(), error) {
	csvRepo := repository.NewCSVIncidentRepository(cfg.OutputCSV)
	if cfg.DatabaseURL == "" {
		log.WithField("path", cfg.OutputCSV).Info("DATABASE_URL is not set, using CSV storage only")
		return csvRepo, func() {}, nil
	}

	if err := runMigrations(cfg, log); err != nil {
		return nil, nil, err
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL")

	pgRepo := repository.NewPostgresIncidentRepository(dbpool)
	return repository.NewMirroredRepository(pgRepo, csvRepo), dbpool.Close, nil
}
