package applicationinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CleanupJob is the payload queued for an orphaned upload: a stored resume
// whose application record never materialized.
type CleanupJob struct {
	PublicID string    `json:"public_id"`
	QueuedAt time.Time `json:"queued_at"`
}

// RedisCleanupQueue implements application.CleanupQueue using a Redis list.
type RedisCleanupQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisCleanupQueue creates a Redis-backed cleanup queue.
func NewRedisCleanupQueue(client *redis.Client, queueName string) *RedisCleanupQueue {
	return &RedisCleanupQueue{
		client:    client,
		queueName: queueName,
	}
}

// Enqueue adds an orphaned upload to the queue.
func (q *RedisCleanupQueue) Enqueue(ctx context.Context, publicID string) error {
	data, err := json.Marshal(CleanupJob{
		PublicID: publicID,
		QueuedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshal cleanup job for %s: %w", publicID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue cleanup job for %s: %w", publicID, err)
	}

	return nil
}

// Dequeue gets a cleanup job from the queue (blocking with timeout). A nil
// job with nil error means the timeout elapsed with nothing queued.
func (q *RedisCleanupQueue) Dequeue(ctx context.Context, timeout time.Duration) (*CleanupJob, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when the timeout elapses
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue cleanup job: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	var job CleanupJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		return nil, fmt.Errorf("unmarshal cleanup job: %w", err)
	}

	return &job, nil
}

// Len returns the number of pending cleanup jobs.
func (q *RedisCleanupQueue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("cleanup queue length: %w", err)
	}
	return n, nil
}
