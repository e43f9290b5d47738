package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/matchday-app/matchday/internal/domain/watchlist"
)

// WatchlistRepository keeps marks in process memory. It backs tests and the
// database-less development mode.
type WatchlistRepository struct {
	mu       sync.RWMutex
	watched  map[string]map[string]watchlist.WatchedMark
	notified map[string]map[string]watchlist.NotifiedMark
}

func NewWatchlistRepository() *WatchlistRepository {
	return &WatchlistRepository{
		watched:  make(map[string]map[string]watchlist.WatchedMark),
		notified: make(map[string]map[string]watchlist.NotifiedMark),
	}
}

func (r *WatchlistRepository) UpsertWatched(_ context.Context, mark watchlist.WatchedMark) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byFixture, ok := r.watched[mark.UserID]
	if !ok {
		byFixture = make(map[string]watchlist.WatchedMark)
		r.watched[mark.UserID] = byFixture
	}
	byFixture[mark.FixtureID] = mark
	return nil
}

func (r *WatchlistRepository) DeleteWatched(_ context.Context, userID, fixtureID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.watched[userID], fixtureID)
	return nil
}

func (r *WatchlistRepository) ListWatchedByUser(_ context.Context, userID string) ([]watchlist.WatchedMark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]watchlist.WatchedMark, 0, len(r.watched[userID]))
	for _, mark := range r.watched[userID] {
		out = append(out, mark)
	}
	sortWatched(out)
	return out, nil
}

func (r *WatchlistRepository) ListWatchedByUserAndDate(_ context.Context, userID, date string) ([]watchlist.WatchedMark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]watchlist.WatchedMark, 0, 4)
	for _, mark := range r.watched[userID] {
		if mark.Date == date {
			out = append(out, mark)
		}
	}
	sortWatched(out)
	return out, nil
}

func (r *WatchlistRepository) CountWatchedByUser(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.watched[userID]), nil
}

func (r *WatchlistRepository) UpsertNotified(_ context.Context, mark watchlist.NotifiedMark) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byFixture, ok := r.notified[mark.UserID]
	if !ok {
		byFixture = make(map[string]watchlist.NotifiedMark)
		r.notified[mark.UserID] = byFixture
	}
	byFixture[mark.FixtureID] = mark
	return nil
}

func (r *WatchlistRepository) DeleteNotified(_ context.Context, userID, fixtureID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.notified[userID], fixtureID)
	return nil
}

func (r *WatchlistRepository) ListNotifiedByUser(_ context.Context, userID string) ([]watchlist.NotifiedMark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]watchlist.NotifiedMark, 0, len(r.notified[userID]))
	for _, mark := range r.notified[userID] {
		out = append(out, mark)
	}
	sortNotified(out)
	return out, nil
}

func (r *WatchlistRepository) ListNotifiedByUserAndDate(_ context.Context, userID, date string) ([]watchlist.NotifiedMark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]watchlist.NotifiedMark, 0, 4)
	for _, mark := range r.notified[userID] {
		if mark.Date == date {
			out = append(out, mark)
		}
	}
	sortNotified(out)
	return out, nil
}

func sortWatched(marks []watchlist.WatchedMark) {
	sort.SliceStable(marks, func(i, j int) bool {
		if marks[i].Date != marks[j].Date {
			return marks[i].Date > marks[j].Date
		}
		if marks[i].KickoffTime != marks[j].KickoffTime {
			return marks[i].KickoffTime < marks[j].KickoffTime
		}
		return marks[i].FixtureID < marks[j].FixtureID
	})
}

func sortNotified(marks []watchlist.NotifiedMark) {
	sort.SliceStable(marks, func(i, j int) bool {
		if marks[i].Date != marks[j].Date {
			return marks[i].Date > marks[j].Date
		}
		if marks[i].KickoffTime != marks[j].KickoffTime {
			return marks[i].KickoffTime < marks[j].KickoffTime
		}
		return marks[i].FixtureID < marks[j].FixtureID
	})
}
