package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/matchday-app/matchday/internal/domain/watchlist"
	watchlistmock "github.com/matchday-app/matchday/internal/mocks/domain/watchlist"
)

func TestWatchlistService_MarkWatched_StampsCreatedAtUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := watchlistmock.NewRepository(t)
	at := time.Date(2026, 2, 1, 16, 45, 0, 0, time.UTC)
	service := NewWatchlistService(repo, func() time.Time { return at })

	repo.
		On("UpsertWatched", mock.MatchedBy(func(v context.Context) bool { return v != nil }), mock.MatchedBy(func(mark watchlist.WatchedMark) bool {
			return mark.FixtureID == "fx-1" && mark.CreatedAt.Equal(at)
		})).
		Return(nil).
		Once()

	err := service.MarkWatched(ctx, watchlist.WatchedMark{
		UserID:    "u-1",
		FixtureID: "fx-1",
		Date:      "2026-02-01",
		HomeTeam:  "Arsenal",
		AwayTeam:  "Chelsea",
	})
	if err != nil {
		t.Fatalf("mark watched: %v", err)
	}
}

func TestWatchlistService_MarkWatched_InvalidDateSkipsRepositoryUsingMockery(t *testing.T) {
	t.Parallel()

	repo := watchlistmock.NewRepository(t)
	service := NewWatchlistService(repo, nil)

	err := service.MarkWatched(context.Background(), watchlist.WatchedMark{
		UserID:    "u-1",
		FixtureID: "fx-1",
		Date:      "01-02-2026",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestWatchlistService_Stats_CountErrorWrappedUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := watchlistmock.NewRepository(t)
	service := NewWatchlistService(repo, nil)
	wantErr := errors.New("query timeout")

	repo.
		On("CountWatchedByUser", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "u-1").
		Return(0, wantErr).
		Once()

	if _, err := service.Stats(ctx, "u-1"); !errors.Is(err, wantErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
