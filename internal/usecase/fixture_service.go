package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/matchday-app/matchday/internal/domain/fixture"
	"github.com/matchday-app/matchday/internal/domain/league"
	"github.com/matchday-app/matchday/internal/platform/cache"
	"github.com/matchday-app/matchday/internal/platform/logging"
)

// FixtureProvider fetches one league's fixtures for one calendar date.
type FixtureProvider interface {
	FetchEventsForDay(ctx context.Context, date string, lg league.League) ([]fixture.Fixture, error)
}

type FixtureServiceConfig struct {
	Provider   FixtureProvider
	Catalog    league.Catalog
	Cache      *cache.Store
	TodayTTL   time.Duration
	HistoryTTL time.Duration
	Logger     *logging.Logger
	Now        func() time.Time
}

// FixtureService aggregates the per-league provider feeds into one cached
// slice per date. A date is cached all-or-nothing: if any league fetch fails
// the whole day fails and nothing is stored, so a later request retries every
// league instead of serving a silently incomplete day.
type FixtureService struct {
	provider   FixtureProvider
	catalog    league.Catalog
	cache      *cache.Store
	todayTTL   time.Duration
	historyTTL time.Duration
	logger     *logging.Logger
	now        func() time.Time
}

func NewFixtureService(cfg FixtureServiceConfig) *FixtureService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	todayTTL := cfg.TodayTTL
	if todayTTL <= 0 {
		todayTTL = 2 * time.Minute
	}
	historyTTL := cfg.HistoryTTL
	if historyTTL <= 0 {
		historyTTL = 24 * time.Hour
	}
	store := cfg.Cache
	if store == nil {
		store = cache.NewStore(now)
	}

	return &FixtureService{
		provider:   cfg.Provider,
		catalog:    cfg.Catalog,
		cache:      store,
		todayTTL:   todayTTL,
		historyTTL: historyTTL,
		logger:     logger,
		now:        now,
	}
}

// ListByDate returns every tracked league's fixtures for the date, sorted by
// kickoff time.
func (s *FixtureService) ListByDate(ctx context.Context, date string) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.ListByDate")
	defer span.End()

	if !fixture.ValidDate(date) {
		return nil, fmt.Errorf("%w: date must be formatted YYYY-MM-DD", ErrInvalidInput)
	}

	value, err := s.cache.GetOrLoad(ctx, fixtureCacheKey(date), func(ctx context.Context) (any, time.Duration, error) {
		fixtures, err := s.fetchDate(ctx, date)
		if err != nil {
			return nil, 0, err
		}
		return fixtures, s.ttlFor(date), nil
	})
	if err != nil {
		return nil, err
	}

	fixtures, ok := value.([]fixture.Fixture)
	if !ok {
		return nil, fmt.Errorf("unexpected cache payload type %T for date %s", value, date)
	}

	out := make([]fixture.Fixture, len(fixtures))
	copy(out, fixtures)
	return out, nil
}

// RefreshDate drops any cached entry for the date and fetches it again.
func (s *FixtureService) RefreshDate(ctx context.Context, date string) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.RefreshDate")
	defer span.End()

	if !fixture.ValidDate(date) {
		return nil, fmt.Errorf("%w: date must be formatted YYYY-MM-DD", ErrInvalidInput)
	}

	s.cache.Delete(ctx, fixtureCacheKey(date))
	return s.ListByDate(ctx, date)
}

// fetchDate fans out one provider request per tracked league. The first
// failure cancels the remaining fetches and fails the whole date.
func (s *FixtureService) fetchDate(ctx context.Context, date string) ([]fixture.Fixture, error) {
	leagues := s.catalog.All()
	if len(leagues) == 0 {
		return []fixture.Fixture{}, nil
	}

	workers := pool.NewWithResults[[]fixture.Fixture]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(len(leagues))

	for _, lg := range leagues {
		lg := lg
		workers.Go(func(ctx context.Context) ([]fixture.Fixture, error) {
			fixtures, err := s.provider.FetchEventsForDay(ctx, date, lg)
			if err != nil {
				return nil, fmt.Errorf("fetch league=%s date=%s: %w", lg.ID, date, err)
			}
			return fixtures, nil
		})
	}

	perLeague, err := workers.Wait()
	if err != nil {
		s.logger.WarnContext(ctx, "fixture aggregation failed, day not cached", "date", date, "error", err)
		return nil, err
	}

	merged := make([]fixture.Fixture, 0, 32)
	for _, fixtures := range perLeague {
		merged = append(merged, fixtures...)
	}
	fixture.SortByKickoff(merged)

	s.logger.InfoContext(ctx, "fixture day aggregated", "date", date, "leagues", len(leagues), "fixtures", len(merged))
	return merged, nil
}

// ttlFor keeps today (and future) days on a short leash since scores and
// kickoffs still move, while finished days are effectively immutable.
func (s *FixtureService) ttlFor(date string) time.Duration {
	today := fixture.FormatDate(s.now())
	if date >= today {
		return s.todayTTL
	}
	return s.historyTTL
}

func fixtureCacheKey(date string) string {
	return "fixtures:day:" + date
}
