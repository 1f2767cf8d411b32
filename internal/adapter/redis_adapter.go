package adapter

import (
	"NovedadesAPI/internal/config"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(cfg *config.AppConfig) (*RedisAdapter, error) {
	addr := fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", "error", err, "addr", addr)
		return nil, err
	}

	slog.Info("Connected to Redis", "addr", addr)

	return &RedisAdapter{
		client: client,
	}, nil
}

func (r *RedisAdapter) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisAdapter) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisAdapter) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// LPush and BRPop back the render task queue.
func (r *RedisAdapter) LPush(ctx context.Context, key string, value interface{}) error {
	return r.client.LPush(ctx, key, value).Err()
}

func (r *RedisAdapter) BRPop(ctx context.Context, timeout time.Duration, key string) ([]string, error) {
	return r.client.BRPop(ctx, timeout, key).Result()
}

func (r *RedisAdapter) Client() *redis.Client {
	return r.client
}
