// Package scheduler runs a named maintenance task at a fixed interval.
package scheduler

import (
	"context"
	"sync"
	"time"

	"fixmygame/backend/internal/logger"
)

type Scheduler struct {
	name       string
	task       func(context.Context) error
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current task run
	mu         sync.Mutex         // protects cancelFunc
}

func New(name string, interval time.Duration, task func(context.Context) error) *Scheduler {
	return &Scheduler{
		name:     name,
		task:     task,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "task", s.name, "interval", s.interval)
}

func (s *Scheduler) Stop() {
	// Cancel any ongoing run first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "task", s.name)
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.runTask()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runTask()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) runTask() {
	// Use the same timeout as the interval
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	// Store cancel function so Stop() can cancel an ongoing run
	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	if err := s.task(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Info("scheduled task cancelled", "task", s.name)
			return
		}
		logger.Error("scheduled task", "task", s.name, "error", err)
	}
}
