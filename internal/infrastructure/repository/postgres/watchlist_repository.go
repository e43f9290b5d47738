package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchday-app/matchday/internal/domain/watchlist"
	qb "github.com/matchday-app/matchday/internal/platform/querybuilder"
)

const (
	watchedUpsertSuffix = "ON CONFLICT (user_id, fixture_id) DO UPDATE SET " +
		"league_id = EXCLUDED.league_id, league_name = EXCLUDED.league_name, " +
		"event_date = EXCLUDED.event_date, kickoff_time = EXCLUDED.kickoff_time, " +
		"home_team = EXCLUDED.home_team, away_team = EXCLUDED.away_team, " +
		"home_score = EXCLUDED.home_score, away_score = EXCLUDED.away_score, " +
		"created_at = EXCLUDED.created_at"

	notifiedUpsertSuffix = "ON CONFLICT (user_id, fixture_id) DO UPDATE SET " +
		"league_id = EXCLUDED.league_id, league_name = EXCLUDED.league_name, " +
		"event_date = EXCLUDED.event_date, kickoff_time = EXCLUDED.kickoff_time, " +
		"home_team = EXCLUDED.home_team, away_team = EXCLUDED.away_team, " +
		"notification_handle = EXCLUDED.notification_handle, " +
		"created_at = EXCLUDED.created_at"
)

var watchedColumns = []string{
	"user_id", "fixture_id", "league_id", "league_name", "event_date",
	"kickoff_time", "home_team", "away_team", "home_score", "away_score", "created_at",
}

var notifiedColumns = []string{
	"user_id", "fixture_id", "league_id", "league_name", "event_date",
	"kickoff_time", "home_team", "away_team", "notification_handle", "created_at",
}

type WatchlistRepository struct {
	db *sqlx.DB
}

func NewWatchlistRepository(db *sqlx.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

func (r *WatchlistRepository) UpsertWatched(ctx context.Context, mark watchlist.WatchedMark) error {
	query, args, err := qb.InsertModel("watched_marks", newWatchedMarkModel(mark), watchedUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert watched query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert watched mark: %w", err)
	}
	return nil
}

// DeleteWatched is deliberately quiet about missing rows so unmark stays
// idempotent.
func (r *WatchlistRepository) DeleteWatched(ctx context.Context, userID, fixtureID string) error {
	query, args, err := qb.DeleteFrom("watched_marks").
		Where(qb.Eq("user_id", userID), qb.Eq("fixture_id", fixtureID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete watched query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete watched mark: %w", err)
	}
	return nil
}

func (r *WatchlistRepository) ListWatchedByUser(ctx context.Context, userID string) ([]watchlist.WatchedMark, error) {
	return r.listWatched(ctx, qb.Eq("user_id", userID))
}

func (r *WatchlistRepository) ListWatchedByUserAndDate(ctx context.Context, userID, date string) ([]watchlist.WatchedMark, error) {
	return r.listWatched(ctx, qb.Eq("user_id", userID), qb.Eq("event_date", date))
}

func (r *WatchlistRepository) listWatched(ctx context.Context, conditions ...qb.Condition) ([]watchlist.WatchedMark, error) {
	query, args, err := qb.Select(watchedColumns...).
		From("watched_marks").
		Where(conditions...).
		OrderBy("event_date DESC", "kickoff_time", "fixture_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list watched query: %w", err)
	}

	var rows []watchedMarkModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list watched marks: %w", err)
	}

	out := make([]watchlist.WatchedMark, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *WatchlistRepository) CountWatchedByUser(ctx context.Context, userID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("watched_marks").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count watched query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count watched marks: %w", err)
	}
	return total, nil
}

func (r *WatchlistRepository) UpsertNotified(ctx context.Context, mark watchlist.NotifiedMark) error {
	query, args, err := qb.InsertModel("notified_marks", newNotifiedMarkModel(mark), notifiedUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert notified query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert notified mark: %w", err)
	}
	return nil
}

func (r *WatchlistRepository) DeleteNotified(ctx context.Context, userID, fixtureID string) error {
	query, args, err := qb.DeleteFrom("notified_marks").
		Where(qb.Eq("user_id", userID), qb.Eq("fixture_id", fixtureID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete notified query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete notified mark: %w", err)
	}
	return nil
}

func (r *WatchlistRepository) ListNotifiedByUser(ctx context.Context, userID string) ([]watchlist.NotifiedMark, error) {
	return r.listNotified(ctx, qb.Eq("user_id", userID))
}

func (r *WatchlistRepository) ListNotifiedByUserAndDate(ctx context.Context, userID, date string) ([]watchlist.NotifiedMark, error) {
	return r.listNotified(ctx, qb.Eq("user_id", userID), qb.Eq("event_date", date))
}

func (r *WatchlistRepository) listNotified(ctx context.Context, conditions ...qb.Condition) ([]watchlist.NotifiedMark, error) {
	query, args, err := qb.Select(notifiedColumns...).
		From("notified_marks").
		Where(conditions...).
		OrderBy("event_date DESC", "kickoff_time", "fixture_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list notified query: %w", err)
	}

	var rows []notifiedMarkModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list notified marks: %w", err)
	}

	out := make([]watchlist.NotifiedMark, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
