package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	StatusIdle      = "idle"
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

const (
	statusKey = "job:daily-quiz:status"
	lockKey   = "lock:daily-quiz-job"

	// A run that outlives this is assumed hung; the lock expires so the next
	// trigger is not blocked forever.
	lockTTL = 30 * time.Minute
)

// JobStatus is the queryable record of the most recent pipeline run.
type JobStatus struct {
	Status     string    `json:"status"`
	StartedAt  time.Time `json:"started_at,omitempty"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
	Questions  int       `json:"questions"`
	Error      string    `json:"error,omitempty"`
}

// Tracker guards against overlapping runs and records run state.
type Tracker interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
	SetRunning(ctx context.Context) error
	SetFinished(ctx context.Context, status string, questions int, errText string) error
	Status(ctx context.Context) (JobStatus, error)
}

// RedisTracker keeps the run lock and status record in redis, so the guard
// holds across replicas of the service.
type RedisTracker struct {
	rdb *redis.Client
}

func NewRedisTracker(rdb *redis.Client) *RedisTracker {
	return &RedisTracker{rdb: rdb}
}

func (t *RedisTracker) TryLock(ctx context.Context) (bool, error) {
	ok, err := t.rdb.SetNX(ctx, lockKey, "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	return ok, nil
}

func (t *RedisTracker) Unlock(ctx context.Context) error {
	return t.rdb.Del(ctx, lockKey).Err()
}

func (t *RedisTracker) SetRunning(ctx context.Context) error {
	return t.write(ctx, JobStatus{Status: StatusRunning, StartedAt: time.Now()})
}

func (t *RedisTracker) SetFinished(ctx context.Context, status string, questions int, errText string) error {
	current, err := t.Status(ctx)
	if err != nil {
		current = JobStatus{}
	}
	return t.write(ctx, JobStatus{
		Status:     status,
		StartedAt:  current.StartedAt,
		FinishedAt: time.Now(),
		Questions:  questions,
		Error:      errText,
	})
}

func (t *RedisTracker) Status(ctx context.Context) (JobStatus, error) {
	raw, err := t.rdb.Get(ctx, statusKey).Result()
	if errors.Is(err, redis.Nil) {
		return JobStatus{Status: StatusIdle}, nil
	}
	if err != nil {
		return JobStatus{}, fmt.Errorf("failed to read job status: %w", err)
	}
	var status JobStatus
	if err := json.Unmarshal([]byte(raw), &status); err != nil {
		return JobStatus{}, fmt.Errorf("corrupt job status record: %w", err)
	}
	return status, nil
}

func (t *RedisTracker) write(ctx context.Context, status JobStatus) error {
	raw, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return t.rdb.Set(ctx, statusKey, raw, 0).Err()
}
