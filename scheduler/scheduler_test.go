package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawwork/config"
	"lawwork/session"
)

type stubCounter struct {
	since time.Time
	count int
	err   error
}

func (c *stubCounter) CountSubmissionsSince(_ context.Context, since time.Time) (int, error) {
	c.since = since
	return c.count, c.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.SweepIntervalSec = 60
	cfg.Scheduler.DigestHour = 8
	cfg.Scheduler.DigestMinute = 30
	return cfg
}

func TestGetNextTimePoint(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 11, 8, 30, 0, 0, time.UTC), getNextTimePoint(now, 8, 30))
	assert.Equal(t, time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), getNextTimePoint(now, 18, 0))
}

func TestValidateHourMinute(t *testing.T) {
	h, m := validateHourMinute(25, -1)
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, m)
}

func TestInitTasksOnlyRegistersAvailable(t *testing.T) {
	s := NewScheduler(testConfig(), nil, nil)
	s.initTasks(time.Now())
	assert.Empty(t, s.tasks)

	s = NewScheduler(testConfig(), session.NewMemoryStore(time.Minute), &stubCounter{})
	s.initTasks(time.Now())
	assert.Len(t, s.tasks, 2)
}

func TestSweepTaskRemovesExpiredSessions(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "a", "k", "v"))
	require.NoError(t, store.Set(ctx, "b", "k", "v"))

	s := NewScheduler(testConfig(), store, nil)
	start := time.Now()
	s.initTasks(start)

	later := start.Add(2 * time.Hour)
	s.runTask(ctx, TaskSessionSweep, later)

	// 过期会话已在任务中清掉，再扫一次没有可删的
	assert.Equal(t, 0, store.Sweep(later))
	status := s.tasks[TaskSessionSweep]
	assert.False(t, status.IsRunning)
	assert.Equal(t, later.Add(time.Minute), status.NextRun)
}

func TestDigestTaskCountsLastDay(t *testing.T) {
	counter := &stubCounter{count: 4}
	s := NewScheduler(testConfig(), nil, counter)
	now := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	s.initTasks(now.Add(-time.Hour))

	s.runTask(context.Background(), TaskLeadDigest, now)
	assert.Equal(t, now.Add(-24*time.Hour), counter.since)
	assert.Equal(t, time.Date(2026, 3, 11, 8, 30, 0, 0, time.UTC), s.tasks[TaskLeadDigest].NextRun)

	counter.err = errors.New("db down")
	s.runTask(context.Background(), TaskLeadDigest, now.Add(24*time.Hour))
	assert.False(t, s.tasks[TaskLeadDigest].IsRunning)
}

func TestStartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := Start(ctx, testConfig(), nil, nil)
	cancel()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
