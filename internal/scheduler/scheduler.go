package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/config"
	"github.com/mamadbah2/dairyledger/internal/repository/jsonfile"
	"github.com/mamadbah2/dairyledger/internal/service/ledger"
)

// Scheduler runs the periodic backup snapshot. The original application only
// offered a manual export button; a cron job removes the need to remember.
type Scheduler struct {
	cron   *cron.Cron
	store  *ledger.Store
	repo   jsonfile.Repository
	cfg    config.BackupConfig
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.BackupConfig, store *ledger.Store, repo jsonfile.Repository, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:   cron.New(),
		store:  store,
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers the backup job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.writeBackup)
	if err != nil {
		s.logger.Error("failed to schedule backup job", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) writeBackup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	path, err := s.repo.WriteBackup(ctx, s.store.Export())
	if err != nil {
		s.logger.Error("scheduled backup failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled backup complete", zap.String("path", path))
}
