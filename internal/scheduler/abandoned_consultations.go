// Package scheduler holds the background jobs of the API.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/business-doctor-api/internal/config"
	"github.com/vfg2006/business-doctor-api/internal/usecases/consulting"
)

// AbandonedSweepConfig configures the abandoned consultation sweeper.
type AbandonedSweepConfig struct {
	CronSchedule string
	IdleMinutes  int
	SweepEnabled bool
}

// AbandonedConsultationService periodically completes in_progress consultations
// whose clients went silent, so stale sessions do not linger open forever.
type AbandonedConsultationService struct {
	scheduler           *gocron.Scheduler
	config              AbandonedSweepConfig
	consultingService   consulting.Consulting
	sweepRunning        bool
	sweepMutex          sync.Mutex
	lastSweepStartedAt  time.Time
	lastSweepFinishedAt time.Time
}

func NewAbandonedConsultationService(
	consultingService consulting.Consulting,
	appConfig *config.Config,
) *AbandonedConsultationService {
	sweepConfig := AbandonedSweepConfig{
		CronSchedule: appConfig.AbandonSweep.CronSchedule,
		IdleMinutes:  appConfig.AbandonSweep.IdleMinutes,
		SweepEnabled: appConfig.AbandonSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"idle_minutes":  sweepConfig.IdleMinutes,
		"sweep_enabled": sweepConfig.SweepEnabled,
	}).Info("abandoned consultation sweeper configuration loaded")

	return &AbandonedConsultationService{
		scheduler:         scheduler,
		config:            sweepConfig,
		consultingService: consultingService,
		sweepRunning:      false,
	}
}

// Start schedules the sweeper. When disabled by configuration it does nothing.
func (s *AbandonedConsultationService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("abandoned consultation sweeper disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting abandoned consultation sweeper")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweepAbandonedConsultations()
	})
	if err != nil {
		return fmt.Errorf("scheduling abandoned consultation sweep: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping abandoned consultation sweeper")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AbandonedConsultationService) sweepAbandonedConsultations() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("abandoned consultation sweep already running, skipping")
		return
	}
	s.sweepRunning = true
	s.lastSweepStartedAt = time.Now()
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.lastSweepFinishedAt = time.Now()
		s.sweepMutex.Unlock()
	}()

	idleSince := time.Now().Add(-time.Duration(s.config.IdleMinutes) * time.Minute)

	closed, err := s.consultingService.CloseIdle(idleSince)
	if err != nil {
		logrus.WithError(err).Error("abandoned consultation sweep failed")
		return
	}

	if closed > 0 {
		logrus.WithField("closed", closed).Info("abandoned consultations completed")
	}
}
