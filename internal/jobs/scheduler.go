package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"tartarus/api/internal/repository"
	"tartarus/api/internal/service"
)

// Scheduler rolls the live redis visit counters into the visit_stats table so
// the numbers survive a cache flush.
type Scheduler struct {
	cron   *cron.Cron
	visits *service.VisitService
	stats  *repository.StatsRepository
	log    zerolog.Logger
}

func NewScheduler(visits *service.VisitService, stats *repository.StatsRepository, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:   c,
		visits: visits,
		stats:  stats,
		log:    log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 5 0 * * *", s.rollupVisits); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits briefly for a running rollup to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) rollupVisits() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	visits, err := s.visits.Visits(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("rollup: read visits failed")
		return
	}
	visitors, err := s.visits.Visitors(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("rollup: read visitors failed")
		return
	}

	day := time.Now().UTC().Truncate(24 * time.Hour)
	if err := s.stats.UpsertDay(ctx, day, visits, visitors); err != nil {
		s.log.Error().Err(err).Msg("rollup: upsert visit stats failed")
		return
	}

	s.log.Info().Int64("visits", visits).Int64("visitors", visitors).Msg("visit stats rolled up")
}
