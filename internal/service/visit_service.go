package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	visitCountKey = "visits:total"
	visitorSetKey = "visits:ips"
	trackTimeout  = 2 * time.Second
)

// VisitService keeps the site's visit counter and unique-visitor set in redis.
type VisitService struct {
	cache *redis.Client
	log   zerolog.Logger
}

func NewVisitService(cache *redis.Client, log zerolog.Logger) *VisitService {
	return &VisitService{
		cache: cache,
		log:   log,
	}
}

// Track counts one visit from ip. Errors are logged and swallowed; tracking
// never fails a request.
func (s *VisitService) Track(ctx context.Context, ip string) {
	ctx, cancel := context.WithTimeout(ctx, trackTimeout)
	defer cancel()

	pipe := s.cache.Pipeline()
	pipe.Incr(ctx, visitCountKey)
	if ip != "" {
		pipe.SAdd(ctx, visitorSetKey, ip)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warn().Err(err).Msg("visit tracking failed")
	}
}

func (s *VisitService) Visits(ctx context.Context) (int64, error) {
	count, err := s.cache.Get(ctx, visitCountKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}

func (s *VisitService) Visitors(ctx context.Context) (int64, error) {
	return s.cache.SCard(ctx, visitorSetKey).Result()
}
