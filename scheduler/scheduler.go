package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lawwork/config"
	"lawwork/logger"
	"lawwork/metrics"
	"lawwork/session"
)

// SubmissionCounter 线索库统计
type SubmissionCounter interface {
	CountSubmissionsSince(ctx context.Context, since time.Time) (int, error)
}

// 将秒数转换为时间间隔，非正数时使用默认值
func secondsToDuration(seconds, def int) time.Duration {
	if seconds <= 0 {
		seconds = def
	}
	return time.Duration(seconds) * time.Second
}

// 验证小时和分钟是否有效
func validateHourMinute(hour, minute int) (int, int) {
	if hour < 0 || hour > 23 {
		logger.Warn("无效的小时值", "hour", hour, "default", 0)
		hour = 0
	}
	if minute < 0 || minute > 59 {
		logger.Warn("无效的分钟值", "minute", minute, "default", 0)
		minute = 0
	}
	return hour, minute
}

// 计算下一个指定时间点
func getNextTimePoint(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// 任务类型
type TaskType int

const (
	TaskSessionSweep TaskType = iota
	TaskLeadDigest
)

// 任务状态
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// 任务调度器
type Scheduler struct {
	cfg     *config.Config
	sweeper session.Sweeper   // 内存会话存储才需要
	counter SubmissionCounter // 未启用线索库时为nil
	tasks   map[TaskType]*TaskStatus
	mutex   sync.Mutex
	wg      sync.WaitGroup
}

// 创建新的调度器
func NewScheduler(cfg *config.Config, sweeper session.Sweeper, counter SubmissionCounter) *Scheduler {
	return &Scheduler{
		cfg:     cfg,
		sweeper: sweeper,
		counter: counter,
		tasks:   make(map[TaskType]*TaskStatus),
	}
}

// Start 启动调度器，ctx取消后主循环退出
func Start(ctx context.Context, cfg *config.Config, sweeper session.Sweeper, counter SubmissionCounter) *Scheduler {
	s := NewScheduler(cfg, sweeper, counter)
	s.initTasks(time.Now())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()

	logger.Info("调度器已启动", "check_interval_sec", cfg.Scheduler.CheckIntervalSec, "task_count", len(s.tasks))
	return s
}

// Wait 等待主循环和正在执行的任务结束
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// 初始化任务
func (s *Scheduler) initTasks(now time.Time) {
	if s.sweeper != nil {
		interval := secondsToDuration(s.cfg.Scheduler.SweepIntervalSec, 300)
		s.tasks[TaskSessionSweep] = &TaskStatus{
			LastRun:     now,
			NextRun:     now.Add(interval),
			Description: fmt.Sprintf("清理过期会话 (每%d秒)", int(interval.Seconds())),
		}
	}

	if s.counter != nil {
		hour, minute := validateHourMinute(s.cfg.Scheduler.DigestHour, s.cfg.Scheduler.DigestMinute)
		next := getNextTimePoint(now, hour, minute)
		s.tasks[TaskLeadDigest] = &TaskStatus{
			LastRun:     next.Add(-24 * time.Hour),
			NextRun:     next,
			Description: fmt.Sprintf("线索日报 (%02d:%02d)", hour, minute),
		}
	}

	logger.Info("定时任务初始化完成", "task_count", len(s.tasks))
}

// 主循环
func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(secondsToDuration(s.cfg.Scheduler.CheckIntervalSec, 60))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("调度器已停止")
			return
		case now := <-ticker.C:
			s.checkTasks(ctx, now)
		}
	}
}

// 检查任务
func (s *Scheduler) checkTasks(ctx context.Context, now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		if status.IsRunning {
			continue
		}
		if !now.Before(status.NextRun) {
			status.IsRunning = true
			s.wg.Add(1)
			go func(t TaskType) {
				defer s.wg.Done()
				s.runTask(ctx, t, now)
			}(taskType)
		}
	}
}

// 运行任务
func (s *Scheduler) runTask(ctx context.Context, taskType TaskType, now time.Time) {
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now

		switch taskType {
		case TaskSessionSweep:
			status.NextRun = now.Add(secondsToDuration(s.cfg.Scheduler.SweepIntervalSec, 300))
		case TaskLeadDigest:
			hour, minute := validateHourMinute(s.cfg.Scheduler.DigestHour, s.cfg.Scheduler.DigestMinute)
			status.NextRun = getNextTimePoint(now.Add(time.Minute), hour, minute)
		}

		logger.Debug("任务执行完成", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	switch taskType {
	case TaskSessionSweep:
		removed := s.sweeper.Sweep(now)
		metrics.SessionsSwept.Add(float64(removed))
		if removed > 0 {
			logger.Info("已清理过期会话", "count", removed)
		}

	case TaskLeadDigest:
		since := now.Add(-24 * time.Hour)
		count, err := s.counter.CountSubmissionsSince(ctx, since)
		if err != nil {
			logger.Error("统计线索失败", "error", err)
			return
		}
		logger.Info("过去24小时线索统计", "count", count, "since", since.Format("2006-01-02 15:04:05"))
	}
}
