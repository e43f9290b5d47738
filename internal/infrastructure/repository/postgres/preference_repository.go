package postgres

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/matchday-app/matchday/internal/domain/preferences"
	qb "github.com/matchday-app/matchday/internal/platform/querybuilder"
)

// The JSONB || operator replaces top-level keys from the right operand, which
// is exactly the per-key merge contract: storing only the keys present in the
// partial makes the upsert itself the merge, with no read-modify-write race.
const preferenceUpsertQuery = `
INSERT INTO user_preferences (user_id, prefs, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET
	prefs = user_preferences.prefs || EXCLUDED.prefs,
	updated_at = EXCLUDED.updated_at
RETURNING prefs, updated_at`

type PreferenceRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPreferenceRepository(db *sqlx.DB, now func() time.Time) *PreferenceRepository {
	if now == nil {
		now = time.Now
	}
	return &PreferenceRepository{db: db, now: now}
}

func (r *PreferenceRepository) Get(ctx context.Context, userID string) (preferences.Document, time.Time, bool, error) {
	query, args, err := qb.Select("prefs", "updated_at").
		From("user_preferences").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return preferences.Document{}, time.Time{}, false, fmt.Errorf("build get preferences query: %w", err)
	}

	var row preferenceRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return preferences.Document{}, time.Time{}, false, nil
		}
		return preferences.Document{}, time.Time{}, false, fmt.Errorf("get preferences: %w", err)
	}

	doc, err := decodeDocument(row.Prefs)
	if err != nil {
		return preferences.Document{}, time.Time{}, false, err
	}
	return doc, row.UpdatedAt, true, nil
}

func (r *PreferenceRepository) UpsertMerge(ctx context.Context, userID string, partial preferences.Partial) (preferences.Document, time.Time, error) {
	payload, err := sonic.Marshal(partial)
	if err != nil {
		return preferences.Document{}, time.Time{}, fmt.Errorf("encode preference partial: %w", err)
	}

	var row preferenceRow
	if err := r.db.GetContext(ctx, &row, preferenceUpsertQuery, userID, payload, r.now().UTC()); err != nil {
		return preferences.Document{}, time.Time{}, fmt.Errorf("upsert preferences: %w", err)
	}

	doc, err := decodeDocument(row.Prefs)
	if err != nil {
		return preferences.Document{}, time.Time{}, err
	}
	return doc, row.UpdatedAt, nil
}

func (r *PreferenceRepository) Delete(ctx context.Context, userID string) error {
	query, args, err := qb.DeleteFrom("user_preferences").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete preferences query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete preferences: %w", err)
	}
	return nil
}

// decodeDocument unmarshals the stored JSONB. Keys the user never set are
// absent from the row, so the decoded document is re-normalized to keep the
// non-nil-slices contract.
func decodeDocument(raw []byte) (preferences.Document, error) {
	var doc preferences.Document
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &doc); err != nil {
			return preferences.Document{}, fmt.Errorf("decode preference document: %w", err)
		}
	}
	return preferences.Merge(doc, preferences.Partial{}), nil
}
