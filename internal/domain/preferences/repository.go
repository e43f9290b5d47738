package preferences

import (
	"context"
	"time"
)

// Repository persists one preference document per user. UpsertMerge must be
// atomic at the storage layer so concurrent partial updates from two devices
// cannot lose each other's keys to a read-modify-write race.
type Repository interface {
	Get(ctx context.Context, userID string) (Document, time.Time, bool, error)
	UpsertMerge(ctx context.Context, userID string, partial Partial) (Document, time.Time, error)
	Delete(ctx context.Context, userID string) error
}
