// Package scheduler runs the cron job that evicts idle dashboard sessions.
package scheduler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Evictor removes sessions idle for longer than ttl and reports how many it removed.
type Evictor interface {
	EvictIdle(ctx context.Context, ttl time.Duration) (int, error)
}

// Config holds the scheduler configuration
type Config struct {
	// Schedule is a cron expression for when to sweep sessions (e.g., "*/5 * * * *")
	Schedule string
	// TTL is how long a session may stay idle before it is evicted
	TTL time.Duration
	// Timeout is the maximum duration of one sweep
	Timeout time.Duration
	// Enabled determines if the scheduler should run
	Enabled bool
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		Schedule: "*/5 * * * *",
		TTL:      30 * time.Minute,
		Timeout:  30 * time.Second,
		Enabled:  true,
	}
}

// Scheduler manages the session sweep job
type Scheduler struct {
	cron    *cron.Cron
	evictor Evictor
	config  Config
	logger  *slog.Logger
	entryID cron.EntryID
}

// New creates a new Scheduler instance
func New(cfg Config, evictor Evictor, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		evictor: evictor,
		config:  cfg,
		logger:  logger,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		s.logger.Info("Scheduler is disabled, skipping start")
		return nil
	}

	entryID, err := s.cron.AddFunc(withSeconds(s.config.Schedule), func() {
		s.runSweep()
	})
	if err != nil {
		return err
	}

	s.entryID = entryID
	s.cron.Start()

	s.logger.Info("Scheduler started",
		slog.String("schedule", s.config.Schedule),
		slog.Duration("ttl", s.config.TTL),
	)

	return nil
}

// withSeconds converts a standard 5-field cron expression to the 6-field form.
// Descriptors such as "@every 1m" pass through.
func withSeconds(schedule string) string {
	if strings.HasPrefix(schedule, "@") {
		return schedule
	}
	return "0 " + schedule
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("Stopping scheduler...")
	return s.cron.Stop()
}

// RunNow sweeps synchronously and returns the number of evicted sessions.
func (s *Scheduler) RunNow() (int, error) {
	return s.sweep()
}

func (s *Scheduler) runSweep() {
	_, _ = s.sweep()
}

func (s *Scheduler) sweep() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	count, err := s.evictor.EvictIdle(ctx, s.config.TTL)
	duration := time.Since(startTime)

	if err != nil {
		s.logger.Error("Session sweep failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", duration),
		)
		return count, err
	}

	s.logger.Debug("Session sweep completed",
		slog.Int("sessions_evicted", count),
		slog.Duration("duration", duration),
	)
	return count, nil
}

// GetNextRunTime returns the next scheduled run time
func (s *Scheduler) GetNextRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	entry := s.cron.Entry(s.entryID)
	return entry.Next
}

// GetLastRunTime returns the last run time
func (s *Scheduler) GetLastRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	entry := s.cron.Entry(s.entryID)
	return entry.Prev
}

// IsRunning returns true if the scheduler is running
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
