package backup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisRunGuard хранит пометку о выполняющемся резервном копировании в Redis,
// что даёт защиту от одновременных запусков и между экземплярами сервиса.
// TTL ограничивает время удержания пометки на случай аварийного завершения.
type RedisRunGuard struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisRunGuard(redisURL, password string, db int, ttl time.Duration, logger *slog.Logger) (*RedisRunGuard, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ошибка при подключении к Redis: %w", err)
	}

	logger.Info("Соединение с Redis успешно установлено")

	return &RedisRunGuard{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func guardKey(guildID string) string {
	return "backup:inflight:" + guildID
}

func (g *RedisRunGuard) TryAcquire(ctx context.Context, guildID string) (bool, error) {
	acquired, err := g.client.SetNX(ctx, guardKey(guildID), 1, g.ttl).Result()
	if err != nil {
		g.logger.Error("Ошибка при захвате пометки о запуске в Redis",
			"guildID", guildID,
			"error", err,
		)

		return false, fmt.Errorf("ошибка при захвате пометки о запуске: %w", err)
	}

	return acquired, nil
}

func (g *RedisRunGuard) Release(ctx context.Context, guildID string) {
	if err := g.client.Del(ctx, guardKey(guildID)).Err(); err != nil {
		g.logger.Error("Ошибка при снятии пометки о запуске в Redis",
			"guildID", guildID,
			"error", err,
		)
	}
}

func (g *RedisRunGuard) Close() error {
	return g.client.Close()
}
