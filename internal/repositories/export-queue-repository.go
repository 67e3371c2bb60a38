package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"

	"epi-tracker/internal/entities"
)

// RedisExportQueue - запросы на экспорт складываются в список Redis (LPUSH),
// внешний генератор забирает их через BRPOP.
type RedisExportQueue struct {
	client *redis.Client
	key    string
}

func NewRedisExportQueue(client *redis.Client, key string) ExportQueueInterface {
	return &RedisExportQueue{client: client, key: key}
}

func (q *RedisExportQueue) Push(ctx context.Context, ticket entities.ExportTicket) error {
	payload, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("ошибка сериализации запроса на экспорт: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("ошибка записи в очередь экспорта %s: %w", q.key, err)
	}
	return nil
}

// MemoryExportQueue - очередь в памяти процесса, хранит не больше limit последних запросов.
type MemoryExportQueue struct {
	mu    sync.Mutex
	items []entities.ExportTicket
	limit int
}

func NewMemoryExportQueue(limit int) *MemoryExportQueue {
	if limit <= 0 {
		limit = 100
	}
	return &MemoryExportQueue{limit: limit}
}

func (q *MemoryExportQueue) Push(_ context.Context, ticket entities.ExportTicket) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, ticket)
	if len(q.items) > q.limit {
		q.items = q.items[len(q.items)-q.limit:]
	}
	return nil
}

// Pending - копия накопленных запросов в порядке поступления.
func (q *MemoryExportQueue) Pending() []entities.ExportTicket {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]entities.ExportTicket, len(q.items))
	copy(out, q.items)
	return out
}
