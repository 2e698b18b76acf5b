// Package redisqueue implements the background job queue on Redis.
//
// Each named queue is backed by five keys:
//
//	queue:{name}:ready      list of jobs waiting for a worker
//	queue:{name}:processing list of jobs currently held by a worker
//	queue:{name}:delayed    sorted set of retried jobs, scored by their
//	                        not-before time in unix milliseconds
//	queue:{name}:completed  capped list of recently finished jobs
//	queue:{name}:failed     capped list of dead-lettered jobs
//
// Producers push to the ready list. Workers move jobs from the opposite end
// into the processing list, so jobs are processed in enqueue order and a
// crash mid-job leaves the envelope in processing rather than losing it;
// Worker.Start requeues such leftovers before consuming. The entry is removed
// from processing only after the attempt's bookkeeping (completion, retry, or
// dead-letter) is done, which makes delivery at-least-once. A failed attempt
// goes to the delayed set with exponential backoff and is promoted back to
// ready once due.
package redisqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"logistima/internal/core/ports"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Retention caps for the bookkeeping lists. Older entries are trimmed away.
const (
	completedRetention = 100
	failedRetention    = 50
)

// Job is the wire envelope carried through the queue keys.
type Job struct {
	ID         string          `json:"id"`
	Queue      string          `json:"queue"`
	Name       string          `json:"name"`
	Payload    json.RawMessage `json:"payload"`
	Attempt    int             `json:"attempt"`
	EnqueuedAt time.Time       `json:"enqueuedAt"`
}

func readyKey(queue string) string {
	return fmt.Sprintf("queue:%s:ready", queue)
}

func processingKey(queue string) string {
	return fmt.Sprintf("queue:%s:processing", queue)
}

func delayedKey(queue string) string {
	return fmt.Sprintf("queue:%s:delayed", queue)
}

func completedKey(queue string) string {
	return fmt.Sprintf("queue:%s:completed", queue)
}

func failedKey(queue string) string {
	return fmt.Sprintf("queue:%s:failed", queue)
}

// RedisJobQueue implements ports.JobQueue on a Redis connection.
type RedisJobQueue struct {
	client *redis.Client
}

// NewRedisJobQueue creates a job queue producer over the given Redis client.
func NewRedisJobQueue(client *redis.Client) *RedisJobQueue {
	return &RedisJobQueue{client: client}
}

// Enqueue serializes the payload and pushes a new job onto the named queue.
// Returns the generated job ID.
func (q *RedisJobQueue) Enqueue(ctx context.Context, queue string, name string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal job payload: %w", err)
	}

	job := Job{
		ID:         uuid.NewString(),
		Queue:      queue,
		Name:       name,
		Payload:    body,
		EnqueuedAt: time.Now().UTC(),
	}

	raw, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshal job envelope: %w", err)
	}

	if err := q.client.LPush(ctx, readyKey(queue), raw).Err(); err != nil {
		return "", fmt.Errorf("push job to %s: %w", queue, err)
	}

	return job.ID, nil
}

// FailedJobs returns up to limit dead-lettered jobs, most recent first.
func (q *RedisJobQueue) FailedJobs(ctx context.Context, queue string, limit int) ([]ports.FailedJob, error) {
	if limit <= 0 {
		limit = failedRetention
	}

	entries, err := q.client.LRange(ctx, failedKey(queue), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read failed jobs from %s: %w", queue, err)
	}

	jobs := make([]ports.FailedJob, 0, len(entries))
	for _, entry := range entries {
		var job ports.FailedJob
		if err := json.Unmarshal([]byte(entry), &job); err != nil {
			return nil, fmt.Errorf("decode failed job from %s: %w", queue, err)
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
