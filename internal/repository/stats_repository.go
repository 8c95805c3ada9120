package repository

import (
	"context"
	"time"
)

// StatsRepository persists daily visit rollups written by the scheduler.
type StatsRepository struct {
	pool Querier
}

func NewStatsRepository(pool Querier) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) UpsertDay(ctx context.Context, day time.Time, visits int64, visitors int64) error {
	const query = `
		INSERT INTO visit_stats (day, visits, visitors)
		VALUES ($1, $2, $3)
		ON CONFLICT (day)
		DO UPDATE SET visits = EXCLUDED.visits, visitors = EXCLUDED.visitors
	`

	_, err := r.pool.Exec(ctx, query, day, visits, visitors)
	return err
}
