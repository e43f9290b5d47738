package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/matchday-app/matchday/internal/domain/watchlist"
)

type markWatchedRequest struct {
	FixtureID   string `json:"fixtureId" validate:"required"`
	LeagueID    string `json:"leagueId"`
	LeagueName  string `json:"leagueName"`
	Date        string `json:"date" validate:"required"`
	KickoffTime string `json:"kickoffTime"`
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	HomeScore   *int   `json:"homeScore"`
	AwayScore   *int   `json:"awayScore"`
}

type markNotifiedRequest struct {
	FixtureID          string `json:"fixtureId" validate:"required"`
	LeagueID           string `json:"leagueId"`
	LeagueName         string `json:"leagueName"`
	Date               string `json:"date" validate:"required"`
	KickoffTime        string `json:"kickoffTime"`
	HomeTeam           string `json:"homeTeam"`
	AwayTeam           string `json:"awayTeam"`
	NotificationHandle string `json:"notificationHandle"`
}

type watchedMarkDTO struct {
	FixtureID   string `json:"fixtureId"`
	LeagueID    string `json:"leagueId"`
	LeagueName  string `json:"leagueName"`
	Date        string `json:"date"`
	KickoffTime string `json:"kickoffTime"`
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	HomeScore   *int   `json:"homeScore"`
	AwayScore   *int   `json:"awayScore"`
	CreatedAt   string `json:"createdAt"`
}

type notifiedMarkDTO struct {
	FixtureID          string `json:"fixtureId"`
	LeagueID           string `json:"leagueId"`
	LeagueName         string `json:"leagueName"`
	Date               string `json:"date"`
	KickoffTime        string `json:"kickoffTime"`
	HomeTeam           string `json:"homeTeam"`
	AwayTeam           string `json:"awayTeam"`
	NotificationHandle string `json:"notificationHandle"`
	CreatedAt          string `json:"createdAt"`
}

type statsDTO struct {
	WatchedTotal int `json:"watchedTotal"`
}

func (h *Handler) MarkWatched(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkWatched")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req markWatchedRequest
	if err := decodeJSONBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	mark := watchlist.WatchedMark{
		UserID:      principal.UserID,
		FixtureID:   strings.TrimSpace(req.FixtureID),
		LeagueID:    strings.TrimSpace(req.LeagueID),
		LeagueName:  strings.TrimSpace(req.LeagueName),
		Date:        strings.TrimSpace(req.Date),
		KickoffTime: strings.TrimSpace(req.KickoffTime),
		HomeTeam:    strings.TrimSpace(req.HomeTeam),
		AwayTeam:    strings.TrimSpace(req.AwayTeam),
		HomeScore:   req.HomeScore,
		AwayScore:   req.AwayScore,
	}
	if err := h.watchlistService.MarkWatched(ctx, mark); err != nil {
		h.logger.WarnContext(ctx, "mark watched failed", "fixture_id", mark.FixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) UnmarkWatched(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnmarkWatched")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	if err := h.watchlistService.UnmarkWatched(ctx, principal.UserID, fixtureID); err != nil {
		h.logger.WarnContext(ctx, "unmark watched failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListWatched(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWatched")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	marks, err := h.watchlistService.ListWatched(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list watched failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]watchedMarkDTO, 0, len(marks))
	for _, mark := range marks {
		items = append(items, watchedMarkDTO{
			FixtureID:   mark.FixtureID,
			LeagueID:    mark.LeagueID,
			LeagueName:  mark.LeagueName,
			Date:        mark.Date,
			KickoffTime: mark.KickoffTime,
			HomeTeam:    mark.HomeTeam,
			AwayTeam:    mark.AwayTeam,
			HomeScore:   mark.HomeScore,
			AwayScore:   mark.AwayScore,
			CreatedAt:   mark.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) MarkNotified(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkNotified")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req markNotifiedRequest
	if err := decodeJSONBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	mark := watchlist.NotifiedMark{
		UserID:             principal.UserID,
		FixtureID:          strings.TrimSpace(req.FixtureID),
		LeagueID:           strings.TrimSpace(req.LeagueID),
		LeagueName:         strings.TrimSpace(req.LeagueName),
		Date:               strings.TrimSpace(req.Date),
		KickoffTime:        strings.TrimSpace(req.KickoffTime),
		HomeTeam:           strings.TrimSpace(req.HomeTeam),
		AwayTeam:           strings.TrimSpace(req.AwayTeam),
		NotificationHandle: strings.TrimSpace(req.NotificationHandle),
	}
	if err := h.watchlistService.MarkNotified(ctx, mark); err != nil {
		h.logger.WarnContext(ctx, "mark notified failed", "fixture_id", mark.FixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) UnmarkNotified(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnmarkNotified")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	if err := h.watchlistService.UnmarkNotified(ctx, principal.UserID, fixtureID); err != nil {
		h.logger.WarnContext(ctx, "unmark notified failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListNotified(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNotified")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	marks, err := h.watchlistService.ListNotified(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list notified failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]notifiedMarkDTO, 0, len(marks))
	for _, mark := range marks {
		items = append(items, notifiedMarkDTO{
			FixtureID:          mark.FixtureID,
			LeagueID:           mark.LeagueID,
			LeagueName:         mark.LeagueName,
			Date:               mark.Date,
			KickoffTime:        mark.KickoffTime,
			HomeTeam:           mark.HomeTeam,
			AwayTeam:           mark.AwayTeam,
			NotificationHandle: mark.NotificationHandle,
			CreatedAt:          mark.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMyStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyStats")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	stats, err := h.watchlistService.Stats(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsDTO{WatchedTotal: stats.WatchedTotal})
}
