package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/ogurasousui/learning-dashboard/internal/adapters/repository/postgres"
	"github.com/ogurasousui/learning-dashboard/internal/platform/config"
	pg "github.com/ogurasousui/learning-dashboard/internal/platform/db/postgres"
	"github.com/ogurasousui/learning-dashboard/internal/platform/logging"
	"github.com/ogurasousui/learning-dashboard/internal/platform/seed"
)

func main() {
	var (
		configPath    = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		migrationsDir = flag.String("dir", "assets/migrations", "directory containing migration files")
	)
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfgPath := effectiveConfigPath(*configPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}
	// data.source が memory の設定でもマイグレーションは実行できるようにする。
	if err := cfg.ValidateDatabase(); err != nil {
		slog.Error("invalid database config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.Log)

	if action == "seed" {
		err = runSeed(context.Background(), cfg, logger)
	} else {
		err = runMigration(logger, action, *migrationsDir, cfg.Database.DSN())
	}
	if err != nil {
		logger.Error("migration failed", "action", action, "error", err)
		os.Exit(1)
	}

	logger.Info("migration completed", "action", action)
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func runMigration(logger *slog.Logger, action, dir, dsn string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	absDir = filepath.ToSlash(absDir)

	m, err := migrate.New(fmt.Sprintf("file://%s", absDir), dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				logger.Info("no migration applied")
				return nil
			}
			return err
		}
		logger.Info("current version", "version", version, "dirty", dirty)
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}

// runSeed はデータセットをハッシュ化してテーブルへ投入します。up 済みのスキーマが前提です。
func runSeed(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ds, err := seed.Load(cfg.Data.SeedFile)
	if err != nil {
		return err
	}
	creds, err := ds.Credentials(cfg.Data.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash credentials: %w", err)
	}

	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	seeder := postgres.NewSeeder(pool, pg.NewTransactionManager(pool))
	if err := seeder.Seed(ctx, ds, creds); err != nil {
		return err
	}

	logger.Info("dataset seeded",
		"users", len(ds.Users),
		"employees", len(ds.Employees),
		"courses", len(ds.Courses),
		"assessments", len(ds.Assessments),
	)
	return nil
}
