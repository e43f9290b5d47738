package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/matchday-app/matchday/internal/domain/fixture"
	"github.com/matchday-app/matchday/internal/platform/logging"
)

const warmupMaxDays = 31

type WarmupInput struct {
	// DaysBack and DaysAhead define the warmed window around today, inclusive
	// of today itself.
	DaysBack   int
	DaysAhead  int
	MaxWorkers int
}

type WarmupDayResult struct {
	Date     string
	Fixtures int
	Err      string
}

type WarmupResult struct {
	Warmed int
	Failed int
	Days   []WarmupDayResult
}

// WarmupService pre-fills the fixture cache around today so the first user
// request of the morning does not pay the full provider fan-out.
type WarmupService struct {
	fixtures *FixtureService
	logger   *logging.Logger
	now      func() time.Time
}

func NewWarmupService(fixtures *FixtureService, logger *logging.Logger, now func() time.Time) *WarmupService {
	if logger == nil {
		logger = logging.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &WarmupService{fixtures: fixtures, logger: logger, now: now}
}

// WarmWindow fetches every date in the window through the regular aggregation
// path. Per-day failures are reported, not fatal: a provider hiccup on one
// date must not abort warming the rest of the window.
func (s *WarmupService) WarmWindow(ctx context.Context, input WarmupInput) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "WarmupService.WarmWindow")
	defer span.End()

	if input.DaysBack < 0 || input.DaysAhead < 0 {
		return WarmupResult{}, fmt.Errorf("%w: window bounds must not be negative", ErrInvalidInput)
	}
	totalDays := input.DaysBack + input.DaysAhead + 1
	if totalDays > warmupMaxDays {
		return WarmupResult{}, fmt.Errorf("%w: window spans %d days, max %d", ErrInvalidInput, totalDays, warmupMaxDays)
	}

	today := s.now()
	dates := make([]string, 0, totalDays)
	for offset := -input.DaysBack; offset <= input.DaysAhead; offset++ {
		dates = append(dates, fixture.FormatDate(today.AddDate(0, 0, offset)))
	}

	workerCount := input.MaxWorkers
	if workerCount < 1 {
		workerCount = 4
	}
	if workerCount > len(dates) {
		workerCount = len(dates)
	}

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	results := make([]WarmupDayResult, len(dates))
	var workers sync.WaitGroup
	for i, date := range dates {
		i, date := i, date
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			fixtures, err := s.fixtures.ListByDate(ctx, date)
			if err != nil {
				results[i] = WarmupDayResult{Date: date, Err: err.Error()}
				return
			}
			results[i] = WarmupDayResult{Date: date, Fixtures: len(fixtures)}
		}); err != nil {
			workers.Done()
			results[i] = WarmupDayResult{Date: date, Err: fmt.Sprintf("submit warmup task: %v", err)}
		}
	}
	workers.Wait()

	out := WarmupResult{Days: results}
	for _, day := range results {
		if day.Err != "" {
			out.Failed++
			continue
		}
		out.Warmed++
	}

	s.logger.InfoContext(ctx, "fixture warmup finished", "warmed", out.Warmed, "failed", out.Failed)
	return out, nil
}
