package postgres

import (
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/matchday-app/matchday/internal/domain/watchlist"
)

type watchedMarkModel struct {
	UserID      string    `db:"user_id"`
	FixtureID   string    `db:"fixture_id"`
	LeagueID    string    `db:"league_id"`
	LeagueName  string    `db:"league_name"`
	EventDate   string    `db:"event_date"`
	KickoffTime string    `db:"kickoff_time"`
	HomeTeam    string    `db:"home_team"`
	AwayTeam    string    `db:"away_team"`
	HomeScore   *int      `db:"home_score"`
	AwayScore   *int      `db:"away_score"`
	CreatedAt   time.Time `db:"created_at"`
}

func newWatchedMarkModel(mark watchlist.WatchedMark) watchedMarkModel {
	return watchedMarkModel{
		UserID:      mark.UserID,
		FixtureID:   mark.FixtureID,
		LeagueID:    mark.LeagueID,
		LeagueName:  mark.LeagueName,
		EventDate:   mark.Date,
		KickoffTime: mark.KickoffTime,
		HomeTeam:    mark.HomeTeam,
		AwayTeam:    mark.AwayTeam,
		HomeScore:   mark.HomeScore,
		AwayScore:   mark.AwayScore,
		CreatedAt:   mark.CreatedAt,
	}
}

func (m watchedMarkModel) toDomain() watchlist.WatchedMark {
	return watchlist.WatchedMark{
		UserID:      m.UserID,
		FixtureID:   m.FixtureID,
		LeagueID:    m.LeagueID,
		LeagueName:  m.LeagueName,
		Date:        m.EventDate,
		KickoffTime: m.KickoffTime,
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		CreatedAt:   m.CreatedAt,
	}
}

type notifiedMarkModel struct {
	UserID             string    `db:"user_id"`
	FixtureID          string    `db:"fixture_id"`
	LeagueID           string    `db:"league_id"`
	LeagueName         string    `db:"league_name"`
	EventDate          string    `db:"event_date"`
	KickoffTime        string    `db:"kickoff_time"`
	HomeTeam           string    `db:"home_team"`
	AwayTeam           string    `db:"away_team"`
	NotificationHandle string    `db:"notification_handle"`
	CreatedAt          time.Time `db:"created_at"`
}

func newNotifiedMarkModel(mark watchlist.NotifiedMark) notifiedMarkModel {
	return notifiedMarkModel{
		UserID:             mark.UserID,
		FixtureID:          mark.FixtureID,
		LeagueID:           mark.LeagueID,
		LeagueName:         mark.LeagueName,
		EventDate:          mark.Date,
		KickoffTime:        mark.KickoffTime,
		HomeTeam:           mark.HomeTeam,
		AwayTeam:           mark.AwayTeam,
		NotificationHandle: mark.NotificationHandle,
		CreatedAt:          mark.CreatedAt,
	}
}

func (m notifiedMarkModel) toDomain() watchlist.NotifiedMark {
	return watchlist.NotifiedMark{
		UserID:             m.UserID,
		FixtureID:          m.FixtureID,
		LeagueID:           m.LeagueID,
		LeagueName:         m.LeagueName,
		Date:               m.EventDate,
		KickoffTime:        m.KickoffTime,
		HomeTeam:           m.HomeTeam,
		AwayTeam:           m.AwayTeam,
		NotificationHandle: m.NotificationHandle,
		CreatedAt:          m.CreatedAt,
	}
}

type preferenceRow struct {
	Prefs     types.JSONText `db:"prefs"`
	UpdatedAt time.Time      `db:"updated_at"`
}
