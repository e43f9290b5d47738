package sportsdb

import (
	"strconv"
	"strings"

	"github.com/matchday-app/matchday/internal/domain/fixture"
	"github.com/matchday-app/matchday/internal/domain/league"
)

// mapEvents converts provider rows into domain fixtures. Rows without an
// event id or date are unusable downstream and are dropped rather than
// surfaced as errors.
func mapEvents(events []event, lg league.League) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(events))
	for _, ev := range events {
		id := strings.TrimSpace(ev.IDEvent)
		date := strings.TrimSpace(ev.DateEvent)
		if id == "" || date == "" {
			continue
		}

		leagueName := strings.TrimSpace(ev.StrLeague)
		if leagueName == "" {
			leagueName = lg.DisplayName
		}

		out = append(out, fixture.Fixture{
			ID:          id,
			LeagueID:    lg.ID,
			LeagueName:  leagueName,
			Date:        date,
			KickoffTime: strings.TrimSpace(ev.StrTime),
			HomeTeam:    teamNameOrTBD(ev.StrHomeTeam),
			AwayTeam:    teamNameOrTBD(ev.StrAwayTeam),
			HomeScore:   parseScore(ev.IntHomeScore),
			AwayScore:   parseScore(ev.IntAwayScore),
		})
	}
	return out
}

func teamNameOrTBD(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fixture.TBDName
	}
	return name
}

// parseScore returns nil for matches that have not been played yet. The
// provider sends scores as strings, empty or "null" before kickoff.
func parseScore(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return nil
	}
	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 {
		return nil
	}
	return &score
}
