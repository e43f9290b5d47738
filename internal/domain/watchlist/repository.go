package watchlist

import "context"

// Repository persists per-user watched and notified marks. Every operation
// is scoped by user id; implementations must apply the user filter in the
// query itself, never as an application-side convention.
type Repository interface {
	UpsertWatched(ctx context.Context, mark WatchedMark) error
	DeleteWatched(ctx context.Context, userID, fixtureID string) error
	ListWatchedByUser(ctx context.Context, userID string) ([]WatchedMark, error)
	ListWatchedByUserAndDate(ctx context.Context, userID, date string) ([]WatchedMark, error)
	CountWatchedByUser(ctx context.Context, userID string) (int, error)

	UpsertNotified(ctx context.Context, mark NotifiedMark) error
	DeleteNotified(ctx context.Context, userID, fixtureID string) error
	ListNotifiedByUser(ctx context.Context, userID string) ([]NotifiedMark, error)
	ListNotifiedByUserAndDate(ctx context.Context, userID, date string) ([]NotifiedMark, error)
}
