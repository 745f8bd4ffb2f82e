package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"fxcharter/internal/pipeline"
)

// Scheduler re-runs the pipeline on a cron schedule (watch mode).
type Scheduler struct {
	Cron     *cron.Cron
	Pipeline *pipeline.Pipeline
}

// NewScheduler creates a new Scheduler.
func NewScheduler(p *pipeline.Pipeline) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Pipeline: p,
	}
}

// Register adds the refresh task under the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
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

// RunNow executes the pipeline immediately.
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running refresh task")
	if err := s.Pipeline.Run(); err != nil {
		log.Printf("[ERROR] refresh: %v", err)
		fmt.Printf("❌ Refresh failed: %v\n", err)
	}
}
