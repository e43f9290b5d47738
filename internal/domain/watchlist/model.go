package watchlist

import "time"

// WatchedMark records that a user watched a fixture. The fixture fields are
// a snapshot taken at mark time; re-marking the same fixture replaces the
// snapshot rather than erroring.
type WatchedMark struct {
	UserID      string
	FixtureID   string
	LeagueID    string
	LeagueName  string
	Date        string
	KickoffTime string
	HomeTeam    string
	AwayTeam    string
	HomeScore   *int
	AwayScore   *int
	CreatedAt   time.Time
}

// NotifiedMark records that a local reminder was scheduled for a fixture.
// Unique per (user, fixture).
type NotifiedMark struct {
	UserID             string
	FixtureID          string
	LeagueID           string
	LeagueName         string
	Date               string
	KickoffTime        string
	HomeTeam           string
	AwayTeam           string
	NotificationHandle string
	CreatedAt          time.Time
}
