package main

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/meeting-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/meeting-scheduler/internal/db"
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/meeting-scheduler/internal/infra/calendar"
	"github.com/BruksfildServices01/meeting-scheduler/internal/infra/idempotency"
	"github.com/BruksfildServices01/meeting-scheduler/internal/logging"
)

// bootstrap loads configuration and the process logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(log)
	return cfg, log, nil
}

func openDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := dbpkg.Migrate(db); err != nil {
		dbpkg.Close(db)
		return nil, err
	}
	return db, nil
}

func newGateway(ctx context.Context, cfg *config.Config) (domain.CalendarGateway, error) {
	client, err := calendar.HTTPClientFromFile(ctx, cfg.GoogleCredentialsFile)
	if err != nil {
		return nil, err
	}
	return calendar.NewGoogleGateway(ctx, calendar.Options{
		CalendarID: cfg.GoogleCalendarID,
		Location:   cfg.Location(),
		HTTPClient: client,
		Endpoint:   cfg.GoogleAPIEndpoint,
	})
}

// newLocker returns a Redis-backed idempotency lock, or a no-op one when
// REDIS_ADDR is empty. The returned close func is never nil.
func newLocker(ctx context.Context, cfg *config.Config, log *zap.Logger) (domain.Locker, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("redis not configured, idempotency lock disabled")
		return domain.NoopLocker{}, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	log.Info("redis connected", zap.String("addr", cfg.RedisAddr))
	return idempotency.NewRedisLocker(client, cfg.IdempotencyLockTTL(), log), func() { client.Close() }, nil
}
