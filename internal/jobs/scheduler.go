// Package jobs runs the catalog's scheduled maintenance jobs.
package jobs

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/storefront-catalog/internal/metrics"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// JobPromotionExpiry clears category promotions past their expiry date.
const JobPromotionExpiry = "promotion_expiry"

// historyLimit is the number of runs kept per job.
const historyLimit = 50

// PromotionExpirer is the store capability the expiry job needs.
type PromotionExpirer interface {
	ExpirePromotions(ctx context.Context, now time.Time) (int, error)
}

// Scheduler manages periodic catalog maintenance and keeps an in-memory
// history of recent runs.
type Scheduler struct {
	cron    *cron.Cron
	expirer PromotionExpirer
	log     *slog.Logger
	now     func() time.Time

	mu   sync.Mutex
	runs map[string][]domain.JobRun // newest first
}

// NewScheduler creates a Scheduler that expires promotions every
// expiryInterval.
func NewScheduler(
	expirer PromotionExpirer,
	expiryInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if expiryInterval <= 0 {
		return nil, fmt.Errorf("promotion expiry interval must be positive, got %s", expiryInterval)
	}

	s := &Scheduler{
		cron:    cron.New(),
		expirer: expirer,
		log:     log,
		now:     time.Now,
		runs:    make(map[string][]domain.JobRun),
	}

	if _, err := s.cron.AddFunc(
		"@every "+expiryInterval.String(),
		func() { _, _ = s.RunPromotionExpiry(context.Background()) },
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// RunPromotionExpiry clears expired promotions now and records the run.
func (s *Scheduler) RunPromotionExpiry(ctx context.Context) (int, error) {
	run := domain.JobRun{JobName: JobPromotionExpiry, StartedAt: s.now()}

	n, err := ExpirePromotions(ctx, s.expirer, run.StartedAt, s.log)

	run.FinishedAt = s.now()
	run.Affected = n
	run.Status = domain.JobStatusSucceeded
	if err != nil {
		run.Status = domain.JobStatusFailed
		run.Error = err.Error()
	}
	s.record(run)
	metrics.SchedulerRunsTotal.WithLabelValues(JobPromotionExpiry, run.Status).Inc()

	return n, err
}

// ExpirePromotions clears promotions that expired before now. It is the
// body of the scheduled job and of the expire-promotions command.
func ExpirePromotions(ctx context.Context, e PromotionExpirer, now time.Time, log *slog.Logger) (int, error) {
	n, err := e.ExpirePromotions(ctx, now)
	if err != nil {
		log.Error("expiring promotions failed", "error", err)
		return 0, err
	}

	metrics.PromotionsExpiredTotal.Add(float64(n))
	if n > 0 {
		log.Info("expired category promotions", "count", n)
	} else {
		log.Debug("no promotions to expire")
	}
	return n, nil
}

func (s *Scheduler) record(run domain.JobRun) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs := append([]domain.JobRun{run}, s.runs[run.JobName]...)
	if len(runs) > historyLimit {
		runs = runs[:historyLimit]
	}
	s.runs[run.JobName] = runs
}

// ListLatestJobRuns returns the most recent run of each job that has run,
// ordered by job name.
func (s *Scheduler) ListLatestJobRuns(_ context.Context) ([]domain.JobRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.JobRun, 0, len(s.runs))
	for _, runs := range s.runs {
		out = append(out, runs[0])
	}
	slices.SortFunc(out, func(a, b domain.JobRun) int { return cmp.Compare(a.JobName, b.JobName) })
	return out, nil
}

// ListJobRuns returns up to limit runs of jobName, newest first.
func (s *Scheduler) ListJobRuns(_ context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs := s.runs[jobName]
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return append([]domain.JobRun(nil), runs...), nil
}
