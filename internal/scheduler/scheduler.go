// Package scheduler runs batch scoring on a cron schedule (watch mode).
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"TickerRank/internal/batch"
	"TickerRank/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Scheduler fires batch runs from a cron expression and notifies the summary.
type Scheduler struct {
	Cron     *cron.Cron
	Runner   *batch.Runner
	Notifier *notifier.TelegramNotifier
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, runner *batch.Runner, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Runner:   runner,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register registers the batch task under the given cron expression.
func (s *Scheduler) Register(batchCron string) error {
	if _, err := s.Cron.AddFunc(batchCron, s.batchTask); err != nil {
		return fmt.Errorf("register batch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the batch task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.batchTask()
}

func (s *Scheduler) batchTask() {
	log.Println("[INFO] running scheduled batch")
	summary, err := s.Runner.Run(time.Now(), false)
	if err != nil {
		log.Printf("[ERROR] batch run: %v", err)
		s.trySend(fmt.Sprintf("❌ batch run failed: %v", err))
		return
	}
	if summary == nil {
		return // already ran today
	}
	s.trySend(notifier.FormatRunSummary(summary))
}

func (s *Scheduler) trySend(text string) {
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
