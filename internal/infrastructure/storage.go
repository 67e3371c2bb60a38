// Package infrastructure собирает хранилища по конфигурации: коллекции в памяти или Postgres,
// очередь экспорта в Redis или в памяти процесса.
package infrastructure

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"epi-tracker/internal/repositories"
	"epi-tracker/internal/services"
	"epi-tracker/pkg/config"
	"epi-tracker/pkg/database/postgresql"
)

const memoryExportQueueLimit = 1000

type Storage struct {
	Repos services.Repositories
	pool  *pgxpool.Pool
}

// OpenStorage выбирает хранилище по STORAGE_DRIVER. Для postgres применяет миграции, если включено.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory, "":
		logger.Info("Хранилище: in-memory")
		return &Storage{Repos: services.NewMemoryRepositories()}, nil

	case config.StoragePostgres:
		pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.Migrate {
			if err := postgresql.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
			logger.Info("Миграции применены")
		}
		return &Storage{
			Repos: services.Repositories{
				Employees:  repositories.NewEmployeeRepository(pool, logger),
				EPIs:       repositories.NewEPIRepository(pool, logger),
				Deliveries: repositories.NewDeliveryRepository(pool, logger),
			},
			pool: pool,
		}, nil

	default:
		return nil, fmt.Errorf("неизвестный STORAGE_DRIVER %q (ожидается %s или %s)", cfg.Storage.Driver, config.StorageMemory, config.StoragePostgres)
	}
}

// Ping проверяет доступность базы; для in-memory всегда nil.
func (s *Storage) Ping(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// OpenExportQueue: при заданном REDIS_ADDRESS - список Redis, иначе очередь в памяти.
// Возвращаемая функция закрывает клиент Redis.
func OpenExportQueue(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (repositories.ExportQueueInterface, func(), error) {
	if cfg.Address == "" {
		logger.Info("Очередь экспорта: in-memory")
		return repositories.NewMemoryExportQueue(memoryExportQueueLimit), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       0,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("не удалось подключиться к Redis %s: %w", cfg.Address, err)
	}
	logger.Info("Очередь экспорта: Redis", zap.String("address", cfg.Address), zap.String("key", cfg.ExportQueueKey))
	return repositories.NewRedisExportQueue(client, cfg.ExportQueueKey), func() { _ = client.Close() }, nil
}
