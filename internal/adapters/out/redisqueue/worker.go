package redisqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"logistima/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// pollInterval is how long an idle worker goroutine sleeps between pops.
const pollInterval = 100 * time.Millisecond

// Handler processes a single job. Returning an error schedules a retry or,
// once attempts are exhausted, dead-letters the job.
type Handler func(ctx context.Context, job Job) error

// QueueConfig describes one queue's worker pool.
type QueueConfig struct {
	Queue       string
	Concurrency int
	MaxAttempts int
	RetryBase   time.Duration
}

// RouteCalculationConfig returns the default worker configuration for the
// route calculation queue.
func RouteCalculationConfig() QueueConfig {
	return QueueConfig{
		Queue:       ports.RouteCalculationQueue,
		Concurrency: 5,
		MaxAttempts: 3,
		RetryBase:   time.Second,
	}
}

// ReceiptGenerationConfig returns the default worker configuration for the
// receipt generation queue.
func ReceiptGenerationConfig() QueueConfig {
	return QueueConfig{
		Queue:       ports.ReceiptGenerationQueue,
		Concurrency: 3,
		MaxAttempts: 3,
		RetryBase:   500 * time.Millisecond,
	}
}

// Worker runs a pool of goroutines consuming one queue. A cron-driven
// promoter moves due retries from the delayed set back to the ready list
// every second.
type Worker struct {
	client  *redis.Client
	config  QueueConfig
	handler Handler
	logger  *slog.Logger
	cron    *cron.Cron
	wg      sync.WaitGroup
	stopCh  chan struct{}
}

// NewWorker creates a worker pool for the configured queue.
// Jobs are dispatched to the given handler.
func NewWorker(client *redis.Client, config QueueConfig, handler Handler, logger *slog.Logger) *Worker {
	return &Worker{
		client:  client,
		config:  config,
		handler: handler,
		logger:  logger.With("component", "queue_worker", "queue", config.Queue),
		cron:    cron.New(cron.WithSeconds()),
		stopCh:  make(chan struct{}),
	}
}

// Start launches the consumer goroutines and the delayed-job promoter.
// Jobs left in the processing list by a previous run are requeued first.
func (w *Worker) Start() error {
	if err := w.requeueInFlight(context.Background()); err != nil {
		return fmt.Errorf("requeue in-flight jobs: %w", err)
	}

	_, err := w.cron.AddFunc("* * * * * *", func() {
		if err := w.promoteDelayed(context.Background()); err != nil {
			w.logger.Error("promoting delayed jobs failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule delayed-job promoter: %w", err)
	}
	w.cron.Start()

	for i := 0; i < w.config.Concurrency; i++ {
		w.wg.Add(1)
		go w.run()
	}

	w.logger.Info("queue worker started", "concurrency", w.config.Concurrency)
	return nil
}

// Stop halts the promoter and waits for in-flight jobs to finish.
func (w *Worker) Stop() {
	close(w.stopCh)
	w.cron.Stop()
	w.wg.Wait()
	w.logger.Info("queue worker stopped")
}

func (w *Worker) run() {
	defer w.wg.Done()

	ctx := context.Background()
	for {
		select {
		case <-w.stopCh:
			return
		default:
		}

		raw, err := w.client.LMove(ctx,
			readyKey(w.config.Queue), processingKey(w.config.Queue), "RIGHT", "LEFT").Result()
		if errors.Is(err, redis.Nil) {
			w.idle()
			continue
		}
		if err != nil {
			w.logger.Error("claiming job failed", "error", err)
			w.idle()
			continue
		}

		var job Job
		if err := json.Unmarshal([]byte(raw), &job); err != nil {
			w.logger.Error("discarding undecodable job", "error", err)
			w.release(ctx, raw)
			continue
		}

		w.process(ctx, job)
		w.release(ctx, raw)
	}
}

// release drops a claimed envelope from the processing list once its
// attempt has been accounted for.
func (w *Worker) release(ctx context.Context, raw string) {
	if err := w.client.LRem(ctx, processingKey(w.config.Queue), 1, raw).Err(); err != nil {
		w.logger.Error("releasing processed job failed", "error", err)
	}
}

// requeueInFlight moves envelopes stranded in the processing list back to the
// ready list. Such entries belong to a worker that crashed mid-job; pushing
// them onto the consuming end makes them run before the backlog. A job that
// had in fact finished its handler gets run twice, which the at-least-once
// contract allows.
func (w *Worker) requeueInFlight(ctx context.Context) error {
	requeued := 0
	for {
		_, err := w.client.LMove(ctx,
			processingKey(w.config.Queue), readyKey(w.config.Queue), "RIGHT", "RIGHT").Result()
		if errors.Is(err, redis.Nil) {
			break
		}
		if err != nil {
			return err
		}
		requeued++
	}

	if requeued > 0 {
		w.logger.Warn("requeued jobs from interrupted run", "count", requeued)
	}
	return nil
}

func (w *Worker) idle() {
	select {
	case <-w.stopCh:
	case <-time.After(pollInterval):
	}
}

func (w *Worker) process(ctx context.Context, job Job) {
	job.Attempt++

	if err := w.handler(ctx, job); err != nil {
		w.retryOrFail(ctx, job, err)
		return
	}

	w.logger.Info("job completed", "job_id", job.ID, "name", job.Name, "attempt", job.Attempt)
	if err := w.markCompleted(ctx, job); err != nil {
		w.logger.Error("recording completed job failed", "job_id", job.ID, "error", err)
	}
}

// retryOrFail reschedules the job with exponential backoff, or dead-letters
// it once its attempts are exhausted. Backoff doubles per attempt starting
// from the queue's base delay.
func (w *Worker) retryOrFail(ctx context.Context, job Job, jobErr error) {
	if job.Attempt >= w.config.MaxAttempts {
		w.logger.Error("job exhausted retries, dead-lettering",
			"job_id", job.ID, "name", job.Name, "attempt", job.Attempt, "error", jobErr)
		if err := w.deadLetter(ctx, job, jobErr); err != nil {
			w.logger.Error("dead-lettering job failed", "job_id", job.ID, "error", err)
		}
		return
	}

	delay := w.config.RetryBase << (job.Attempt - 1)
	w.logger.Warn("job failed, scheduling retry",
		"job_id", job.ID, "name", job.Name, "attempt", job.Attempt, "delay", delay, "error", jobErr)

	raw, err := json.Marshal(job)
	if err != nil {
		w.logger.Error("marshaling retry failed", "job_id", job.ID, "error", err)
		return
	}

	notBefore := float64(time.Now().Add(delay).UnixMilli())
	err = w.client.ZAdd(ctx, delayedKey(w.config.Queue), redis.Z{Score: notBefore, Member: raw}).Err()
	if err != nil {
		w.logger.Error("scheduling retry failed", "job_id", job.ID, "error", err)
	}
}

func (w *Worker) markCompleted(ctx context.Context, job Job) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}

	key := completedKey(w.config.Queue)
	if err := w.client.LPush(ctx, key, raw).Err(); err != nil {
		return err
	}
	return w.client.LTrim(ctx, key, 0, completedRetention-1).Err()
}

func (w *Worker) deadLetter(ctx context.Context, job Job, jobErr error) error {
	failed := ports.FailedJob{
		ID:          job.ID,
		Queue:       job.Queue,
		Name:        job.Name,
		Payload:     job.Payload,
		Attempt:     job.Attempt,
		MaxAttempts: w.config.MaxAttempts,
		Error:       jobErr.Error(),
		FailedAt:    time.Now().UTC(),
	}

	raw, err := json.Marshal(failed)
	if err != nil {
		return err
	}

	key := failedKey(w.config.Queue)
	if err := w.client.LPush(ctx, key, raw).Err(); err != nil {
		return err
	}
	return w.client.LTrim(ctx, key, 0, failedRetention-1).Err()
}

// promoteDelayed moves due jobs from the delayed set to the ready list.
// ZRem gates the push so concurrent promoters cannot double-deliver a job.
func (w *Worker) promoteDelayed(ctx context.Context) error {
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	due, err := w.client.ZRangeByScore(ctx, delayedKey(w.config.Queue), &redis.ZRangeBy{
		Min: "-inf",
		Max: now,
	}).Result()
	if err != nil {
		return err
	}

	for _, entry := range due {
		removed, err := w.client.ZRem(ctx, delayedKey(w.config.Queue), entry).Result()
		if err != nil {
			return err
		}
		if removed == 0 {
			continue
		}
		if err := w.client.LPush(ctx, readyKey(w.config.Queue), entry).Err(); err != nil {
			return err
		}
	}

	return nil
}
