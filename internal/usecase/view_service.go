package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchday-app/matchday/internal/domain/fixture"
	"github.com/matchday-app/matchday/internal/domain/league"
)

// LeagueSection is one league's slice of a day view. Collapsed is a display
// hint only; collapsed sections still carry their fixtures so the client can
// expand them without another round trip.
type LeagueSection struct {
	LeagueID   string
	LeagueName string
	BadgeURL   string
	Collapsed  bool
	Fixtures   []fixture.Fixture
}

// DayViewStats summarises the user's watched marks for the header widget.
type DayViewStats struct {
	WatchedTotal  int
	WatchedOnDate int
}

// DayView is the composed per-user screen for one date.
type DayView struct {
	Date        string
	Sections    []LeagueSection
	WatchedIDs  []string
	NotifiedIDs []string
	Stats       DayViewStats
}

// ViewService composes the per-user day view from the aggregated fixtures,
// the user's preferences, and the user's marks.
type ViewService struct {
	fixtures  *FixtureService
	prefs     *PreferenceService
	watchlist *WatchlistService
	catalog   league.Catalog
}

func NewViewService(fixtures *FixtureService, prefs *PreferenceService, watchlist *WatchlistService, catalog league.Catalog) *ViewService {
	return &ViewService{
		fixtures:  fixtures,
		prefs:     prefs,
		watchlist: watchlist,
		catalog:   catalog,
	}
}

// ComposeDay builds the day view for one user. Hidden leagues are excluded
// outright. Section order is resolved as request override, then the stored
// preference, then the static catalog order; ids the chosen order does not
// mention keep their catalog position after the ordered ones.
func (s *ViewService) ComposeDay(ctx context.Context, userID, date string, orderOverride []string) (DayView, error) {
	ctx, span := startUsecaseSpan(ctx, "ViewService.ComposeDay")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return DayView{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := validateDate(date); err != nil {
		return DayView{}, err
	}

	fixtures, err := s.fixtures.ListByDate(ctx, date)
	if err != nil {
		return DayView{}, err
	}

	doc, _, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return DayView{}, err
	}

	watchedIDs, err := s.watchlist.WatchedIDsForDate(ctx, userID, date)
	if err != nil {
		return DayView{}, err
	}
	notifiedIDs, err := s.watchlist.NotifiedIDsForDate(ctx, userID, date)
	if err != nil {
		return DayView{}, err
	}
	stats, err := s.watchlist.Stats(ctx, userID)
	if err != nil {
		return DayView{}, err
	}

	byLeague := make(map[string][]fixture.Fixture, s.catalog.Len())
	for _, item := range fixtures {
		byLeague[item.LeagueID] = append(byLeague[item.LeagueID], item)
	}

	hidden := toSet(doc.HiddenLeagues)
	collapsed := toSet(doc.CollapsedLeagues)
	order := resolveLeagueOrder(orderOverride, doc.LeagueOrder, s.catalog.DefaultOrder())

	sections := make([]LeagueSection, 0, len(order))
	for _, leagueID := range order {
		if hidden[leagueID] {
			continue
		}
		dayFixtures, ok := byLeague[leagueID]
		if !ok {
			continue
		}
		lg, ok := s.catalog.ByID(leagueID)
		if !ok {
			continue
		}
		fixture.SortByKickoff(dayFixtures)
		sections = append(sections, LeagueSection{
			LeagueID:   lg.ID,
			LeagueName: lg.DisplayName,
			BadgeURL:   lg.BadgeURL,
			Collapsed:  collapsed[leagueID],
			Fixtures:   dayFixtures,
		})
	}

	return DayView{
		Date:        date,
		Sections:    sections,
		WatchedIDs:  watchedIDs,
		NotifiedIDs: notifiedIDs,
		Stats: DayViewStats{
			WatchedTotal:  stats.WatchedTotal,
			WatchedOnDate: len(watchedIDs),
		},
	}, nil
}

// resolveLeagueOrder picks the strongest available ordering, then appends
// any catalog ids the chosen ordering omits, in catalog order. Unknown ids in
// the chosen ordering are dropped rather than rejected.
func resolveLeagueOrder(override, stored, catalog []string) []string {
	chosen := catalog
	if len(stored) > 0 {
		chosen = stored
	}
	if len(override) > 0 {
		chosen = override
	}

	known := toSet(catalog)
	seen := make(map[string]bool, len(catalog))
	out := make([]string, 0, len(catalog))
	for _, id := range chosen {
		if !known[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	for _, id := range catalog {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}

func toSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}
