package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/dmorneau/sabrpage/internal/service"
)

type Scheduler struct {
	s              gocron.Scheduler
	publishService *service.PublishService
	notify         func(string) error
	schedule       string
}

func NewScheduler(publishService *service.PublishService, notify func(string) error, schedule string) (*Scheduler, error) {
	location, err := time.LoadLocation("America/New_York") // league time
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:              s,
		publishService: publishService,
		notify:         notify,
		schedule:       schedule,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.CronJob(s.schedule, false),
		gocron.NewTask(s.runPublish),
	)
	if err != nil {
		return fmt.Errorf("failed to create publish job: %w", err)
	}

	s.s.Start()
	slog.Info("Publish schedule active", "schedule", s.schedule)
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) runPublish() {
	summary, err := s.publishService.Publish()
	if err != nil {
		slog.Error("Scheduled publish failed", "error", err)
		s.notify(fmt.Sprintf("Publish failed: %v", err))
		return
	}
	s.notify(summary)
}
