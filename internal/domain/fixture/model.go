package fixture

import (
	"sort"
	"time"
)

// TBDName is the sentinel shown when the upstream feed omits a team name.
// Display-bound text fields never carry null; scores keep nil to mean
// "not played yet" as distinct from zero.
const TBDName = "TBD"

const dateLayout = "2006-01-02"

// Fixture is one scheduled or played match, normalized away from any
// provider-specific schema. Identity is the upstream-assigned ID.
type Fixture struct {
	ID          string
	LeagueID    string
	LeagueName  string
	Date        string
	KickoffTime string
	HomeTeam    string
	AwayTeam    string
	HomeScore   *int
	AwayScore   *int
}

// ValidDate reports whether value is a well-formed YYYY-MM-DD calendar date.
func ValidDate(value string) bool {
	if len(value) != len(dateLayout) {
		return false
	}
	_, err := time.Parse(dateLayout, value)
	return err == nil
}

// FormatDate renders t as the calendar date string used throughout the API.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// SortByKickoff orders fixtures by kickoff time in place. Times share a
// fixed HH:MM(:SS) format, so lexical comparison is sufficient; fixtures
// without a kickoff time sort first. Ties break on fixture id to keep the
// order stable across refreshes.
func SortByKickoff(items []Fixture) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].KickoffTime != items[j].KickoffTime {
			return items[i].KickoffTime < items[j].KickoffTime
		}
		return items[i].ID < items[j].ID
	})
}
