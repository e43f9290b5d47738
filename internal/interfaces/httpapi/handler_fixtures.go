package httpapi

import (
	"net/http"
	"strings"
)

type leagueSectionDTO struct {
	LeagueID   string       `json:"leagueId"`
	LeagueName string       `json:"leagueName"`
	BadgeURL   string       `json:"badgeUrl,omitempty"`
	Collapsed  bool         `json:"collapsed"`
	Fixtures   []fixtureDTO `json:"fixtures"`
}

type dayViewStatsDTO struct {
	WatchedTotal  int `json:"watchedTotal"`
	WatchedOnDate int `json:"watchedOnDate"`
}

type dayViewDTO struct {
	Date        string             `json:"date"`
	Leagues     []leagueSectionDTO `json:"leagues"`
	WatchedIDs  []string           `json:"watchedIds"`
	NotifiedIDs []string           `json:"notifiedIds"`
	Stats       dayViewStatsDTO    `json:"stats"`
}

// GetDayView serves the composed fixtures screen for one date. An optional
// leagueOrder query parameter (comma-separated league ids) overrides the
// stored ordering for this response only.
func (h *Handler) GetDayView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDayView")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	orderOverride := splitCommaList(r.URL.Query().Get("leagueOrder"))

	view, err := h.viewService.ComposeDay(ctx, principal.UserID, date, orderOverride)
	if err != nil {
		h.logger.WarnContext(ctx, "compose day view failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	sections := make([]leagueSectionDTO, 0, len(view.Sections))
	for _, section := range view.Sections {
		fixtures := make([]fixtureDTO, 0, len(section.Fixtures))
		for _, item := range section.Fixtures {
			fixtures = append(fixtures, fixtureToDTO(item))
		}
		sections = append(sections, leagueSectionDTO{
			LeagueID:   section.LeagueID,
			LeagueName: section.LeagueName,
			BadgeURL:   section.BadgeURL,
			Collapsed:  section.Collapsed,
			Fixtures:   fixtures,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, dayViewDTO{
		Date:        view.Date,
		Leagues:     sections,
		WatchedIDs:  view.WatchedIDs,
		NotifiedIDs: view.NotifiedIDs,
		Stats: dayViewStatsDTO{
			WatchedTotal:  view.Stats.WatchedTotal,
			WatchedOnDate: view.Stats.WatchedOnDate,
		},
	})
}

func splitCommaList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
