// Package queue carries render tasks from the synchronous creation path
// to the background worker. Tasks survive a process crash; delivery is
// at-least-once and the (report id, version) pair makes re-delivery
// harmless.
package queue

import (
	"NovedadesAPI/internal/adapter"
	"NovedadesAPI/internal/config"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RenderTask identifies one rendering unit of work. Version doubles as
// the idempotency key: the worker drops tasks whose version no longer
// matches the report row.
type RenderTask struct {
	ReportID uuid.UUID `json:"report_id"`
	Version  int       `json:"version"`
}

type RenderQueue struct {
	redis *adapter.RedisAdapter
	name  string
}

func NewRenderQueue(redisAdapter *adapter.RedisAdapter, cfg *config.AppConfig) *RenderQueue {
	return &RenderQueue{
		redis: redisAdapter,
		name:  cfg.RenderQueueName,
	}
}

func (q *RenderQueue) Enqueue(ctx context.Context, task RenderTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return q.redis.LPush(ctx, q.name, payload)
}

// Dequeue blocks up to timeout. It returns (nil, nil) when no task
// arrived in time.
func (q *RenderQueue) Dequeue(ctx context.Context, timeout time.Duration) (*RenderTask, error) {
	res, err := q.redis.BRPop(ctx, timeout, q.name)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	if len(res) != 2 {
		return nil, nil
	}

	var task RenderTask
	if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
		return nil, err
	}
	return &task, nil
}
