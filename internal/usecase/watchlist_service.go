package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matchday-app/matchday/internal/domain/watchlist"
)

// WatchlistStats summarises a user's marks for the profile screen.
type WatchlistStats struct {
	WatchedTotal int
}

// WatchlistService manages per-user watched and notified marks. Marks carry a
// fixture snapshot taken at mark time so history screens render without
// re-fetching provider data for old dates.
type WatchlistService struct {
	repo watchlist.Repository
	now  func() time.Time
}

func NewWatchlistService(repo watchlist.Repository, now func() time.Time) *WatchlistService {
	if now == nil {
		now = time.Now
	}
	return &WatchlistService{repo: repo, now: now}
}

func (s *WatchlistService) MarkWatched(ctx context.Context, mark watchlist.WatchedMark) error {
	ctx, span := startUsecaseSpan(ctx, "WatchlistService.MarkWatched")
	defer span.End()

	if err := validateMarkIdentity(mark.UserID, mark.FixtureID, mark.Date); err != nil {
		return err
	}
	mark.CreatedAt = s.now()

	if err := s.repo.UpsertWatched(ctx, mark); err != nil {
		return fmt.Errorf("upsert watched mark: %w", err)
	}
	return nil
}

// UnmarkWatched removes a watched mark. Removing a mark that does not exist
// is a no-op, not an error, so retried unmark requests stay idempotent.
func (s *WatchlistService) UnmarkWatched(ctx context.Context, userID, fixtureID string) error {
	ctx, span := startUsecaseSpan(ctx, "WatchlistService.UnmarkWatched")
	defer span.End()

	userID = strings.TrimSpace(userID)
	fixtureID = strings.TrimSpace(fixtureID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if fixtureID == "" {
		return fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	if err := s.repo.DeleteWatched(ctx, userID, fixtureID); err != nil {
		return fmt.Errorf("delete watched mark: %w", err)
	}
	return nil
}

func (s *WatchlistService) ListWatched(ctx context.Context, userID string) ([]watchlist.WatchedMark, error) {
	ctx, span := startUsecaseSpan(ctx, "WatchlistService.ListWatched")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	marks, err := s.repo.ListWatchedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list watched marks: %w", err)
	}
	return marks, nil
}

// WatchedIDsForDate returns the fixture ids the user marked watched on one
// date, for decorating the day view.
func (s *WatchlistService) WatchedIDsForDate(ctx context.Context, userID, date string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "WatchlistService.WatchedIDsForDate")
	defer span.End()

	marks, err := s.listWatchedForDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(marks))
	for _, mark := range marks {
		ids = append(ids, mark.FixtureID)
	}
	return ids, nil
}

func (s *WatchlistService) listWatchedForDate(ctx context.Context, userID, date string) ([]watchlist.WatchedMark, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	marks, err := s.repo.ListWatchedByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list watched marks by date: %w", err)
	}
	return marks, nil
}

func (s *WatchlistService) Stats(ctx context.Context, userID string) (WatchlistStats, error) {
	ctx, span := startUsecaseSpan(ctx, "WatchlistService.Stats")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return WatchlistStats{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	total, err := s.repo.CountWatchedByUser(ctx, userID)
	if err != nil {
		return WatchlistStats{}, fmt.Errorf("count watched marks: %w", err)
	}
	return WatchlistStats{WatchedTotal: total}, nil
}

func (s *WatchlistService) MarkNotified(ctx context.Context, mark watchlist.NotifiedMark) error {
	ctx, span := startUsecaseSpan(ctx, "WatchlistService.MarkNotified")
	defer span.End()

	if err := validateMarkIdentity(mark.UserID, mark.FixtureID, mark.Date); err != nil {
		return err
	}
	mark.CreatedAt = s.now()

	if err := s.repo.UpsertNotified(ctx, mark); err != nil {
		return fmt.Errorf("upsert notified mark: %w", err)
	}
	return nil
}

func (s *WatchlistService) UnmarkNotified(ctx context.Context, userID, fixtureID string) error {
	ctx, span := startUsecaseSpan(ctx, "WatchlistService.UnmarkNotified")
	defer span.End()

	userID = strings.TrimSpace(userID)
	fixtureID = strings.TrimSpace(fixtureID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if fixtureID == "" {
		return fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	if err := s.repo.DeleteNotified(ctx, userID, fixtureID); err != nil {
		return fmt.Errorf("delete notified mark: %w", err)
	}
	return nil
}

func (s *WatchlistService) ListNotified(ctx context.Context, userID string) ([]watchlist.NotifiedMark, error) {
	ctx, span := startUsecaseSpan(ctx, "WatchlistService.ListNotified")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	marks, err := s.repo.ListNotifiedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notified marks: %w", err)
	}
	return marks, nil
}

func (s *WatchlistService) NotifiedIDsForDate(ctx context.Context, userID, date string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "WatchlistService.NotifiedIDsForDate")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	marks, err := s.repo.ListNotifiedByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list notified marks by date: %w", err)
	}
	ids := make([]string, 0, len(marks))
	for _, mark := range marks {
		ids = append(ids, mark.FixtureID)
	}
	return ids, nil
}

func validateMarkIdentity(userID, fixtureID, date string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(fixtureID) == "" {
		return fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	return validateDate(date)
}
