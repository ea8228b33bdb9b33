package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/gs1ops/edimon/config"
	redisadapters "github.com/gs1ops/edimon/internal/adapters/redis"
	"github.com/gs1ops/edimon/internal/data"
	"github.com/gs1ops/edimon/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Monitor *service.MonitorService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices constructs the service container from shared infrastructure.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	jobRepo := data.NewJobRepo(deps.DB)
	filterStore := redisadapters.NewFilterStateStore(deps.RedisClient, cfg.Monitor.SessionTTL)
	cacheRepo := data.NewRedisCacheRepo(deps.RedisClient)

	monitorSvc := service.NewMonitorService(service.MonitorServiceOptions{
		Store:           jobRepo,
		Filters:         filterStore,
		Cache:           cacheRepo,
		DefaultPageSize: cfg.Monitor.PageSize,
		WindowDays:      cfg.Monitor.WindowDays,
		QueryTimeout:    cfg.Monitor.QueryTimeout,
		CacheTTL:        cfg.Monitor.CacheTTL,
		Logger:          logger,
	})

	return ServiceContainer{Monitor: monitorSvc}
}
