package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/learning-dashboard/internal/adapters/grpc/handler"
	"github.com/ogurasousui/learning-dashboard/internal/adapters/repository/memory"
	"github.com/ogurasousui/learning-dashboard/internal/adapters/repository/postgres"
	"github.com/ogurasousui/learning-dashboard/internal/adapters/sessionstore"
	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	"github.com/ogurasousui/learning-dashboard/internal/core/dashboard"
	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	"github.com/ogurasousui/learning-dashboard/internal/core/session"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
	"github.com/ogurasousui/learning-dashboard/internal/platform/config"
	pg "github.com/ogurasousui/learning-dashboard/internal/platform/db/postgres"
	"github.com/ogurasousui/learning-dashboard/internal/platform/logging"
	"github.com/ogurasousui/learning-dashboard/internal/platform/redisclient"
	"github.com/ogurasousui/learning-dashboard/internal/platform/seed"
	"github.com/ogurasousui/learning-dashboard/internal/platform/server"
)

type repositories struct {
	users     user.Repository
	employees employee.Repository
	catalog   catalog.Repository
	tx        *pg.TransactionManager
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env が無い環境 (コンテナなど) では環境変数だけを使います。
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.Log)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repos, cleanupRepos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanupRepos()

	store, cleanupStore, err := openSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanupStore()

	userSvc := user.NewService(repos.users)
	employeeSvc := employee.NewService(repos.employees, repos.tx)
	catalogSvc := catalog.NewService(repos.catalog, repos.tx)

	sessions := session.NewManager(userSvc, store, nil)
	restored, err := sessions.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore session from %s store: %w", cfg.Session.Store, err)
	}
	if restored != nil {
		logger.Info("session restored", "username", restored.User.Username, "role", string(restored.User.Role))
	}

	dashboardSvc := dashboard.NewService(sessions, userSvc, employeeSvc, catalogSvc, nil)

	grpcServer := server.New(cfg.Server.ListenAddr, logger, server.Services{
		Auth:      handler.NewAuthGrpcHandler(sessions),
		Dashboard: handler.NewDashboardGrpcHandler(dashboardSvc),
		Catalog:   handler.NewCatalogGrpcHandler(catalogSvc),
		Directory: handler.NewDirectoryGrpcHandler(sessions, userSvc, employeeSvc),
	})

	logger.Info("starting learning dashboard",
		"data_source", cfg.Data.Source,
		"session_store", cfg.Session.Store,
	)

	return grpcServer.Run(ctx)
}

func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*repositories, func(), error) {
	if cfg.Data.Source == config.DataSourcePostgres {
		dbPool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize database pool: %w", err)
		}
		return &repositories{
			users:     postgres.NewUserRepository(dbPool),
			employees: postgres.NewEmployeeRepository(dbPool),
			catalog:   postgres.NewCatalogRepository(dbPool),
			tx:        pg.NewTransactionManager(dbPool),
		}, dbPool.Close, nil
	}

	ds, err := seed.Load(cfg.Data.SeedFile)
	if err != nil {
		return nil, nil, err
	}
	mem, err := memory.FromDataset(ds, cfg.Data.BcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("build memory repositories: %w", err)
	}
	logger.Info("dataset loaded",
		"users", len(ds.Users),
		"employees", len(ds.Employees),
		"courses", len(ds.Courses),
		"assessments", len(ds.Assessments),
	)
	return &repositories{
		users:     mem.Users,
		employees: mem.Employees,
		catalog:   mem.Catalog,
	}, func() {}, nil
}

func openSessionStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client, err := redisclient.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return sessionstore.NewRedisStore(client, cfg.Session.RedisKey), func() { _ = client.Close() }, nil
	case config.SessionStoreMemory:
		return sessionstore.NewMemoryStore(), func() {}, nil
	default:
		return sessionstore.NewFileStore(cfg.Session.FilePath), func() {}, nil
	}
}
