package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cityDesk/internal/api"
	"cityDesk/internal/api/handlers/http/system"
	"cityDesk/internal/config"
	"cityDesk/internal/redis"
	"cityDesk/internal/service"
	"cityDesk/internal/sla"
	"cityDesk/internal/storage/firestore"
	"cityDesk/internal/storage/postgres"
	"cityDesk/internal/workers"
	"cityDesk/pkg/logger"
)

const slaMonitorPoolSize = 4

// repositories is what both storage drivers expose.
type repositories interface {
	Issues() service.IssueRepository
	Users() service.UserRepository
	Areas() service.AreaRepository
	Ping(ctx context.Context) error
}

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Firestore  *firestore.Firestore
	Redis      *redis.Redis
	SLAMonitor *workers.SLAMonitor
	Notifier   *workers.EscalationNotifier // nil when webhooks are disabled
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}

	var repos repositories
	switch cfg.Storage.Driver {
	case config.DriverFirestore:
		logger.Info("Initializing Firestore")
		fs, err := firestore.NewFirestore(ctx, cfg.Firestore, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init firestore: %w", err)
		}
		c.Firestore = fs
		repos = fs
	default:
		logger.Info("Initializing Postgres")
		pg, err := postgres.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Error("Failed to init postgres", slog.Any("error", err))
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Postgres = pg
		repos = pg
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		c.ShutdownAll()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}
	c.Redis = redisClient

	table := sla.DefaultTable()
	if cfg.SLA.TablePath != "" {
		table, err = sla.LoadTable(cfg.SLA.TablePath)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to load sla table: %w", err)
		}
		logger.Info("SLA table loaded", slog.String("path", cfg.SLA.TablePath))
	}
	calc := sla.NewCalculator(table)

	cache := redis.NewIssueCache(redisClient.Client)
	queue := redis.NewEscalationQueue(redisClient.Client, redis.EscalationQueueKey)

	issueSvc := service.NewIssueService(
		repos.Issues(), repos.Users(), repos.Areas(),
		cache, calc, logger, cfg.Redis.CacheTTL, nil,
	)
	areaSvc := service.NewAreaService(repos.Areas(), repos.Users(), logger)
	srv := service.NewService(issueSvc, areaSvc)

	checks := map[string]system.Pinger{
		cfg.Storage.Driver: repos,
		"redis":            redisClient,
	}
	c.HttpServer = api.NewServer(ctx, cfg, logger, srv, checks)
	logger.Info("Initialized server")

	c.SLAMonitor = workers.NewSLAMonitor(
		repos.Issues(), queue, cache, calc, logger,
		cfg.SLA.SweepInterval, slaMonitorPoolSize,
	)

	if !cfg.Escalation.Disabled {
		c.Notifier = workers.NewEscalationNotifier(logger, queue, workers.NotifierOptions{
			URL: cfg.Escalation.WebhookURL,
		})
	}

	return c, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	if c.Postgres != nil {
		if err := c.Postgres.Close(); err != nil {
			c.logger.Error("postgres close failed", slog.Any("error", err))
		}
	}
	if c.Firestore != nil {
		if err := c.Firestore.Close(); err != nil {
			c.logger.Error("firestore close failed", slog.Any("error", err))
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.Any("error", err))
		}
	}

	c.logger.Info("components stopped", slog.Duration("latency", time.Since(start)))
}
