package httpapi

import (
	"net/http"
	"time"

	"github.com/matchday-app/matchday/internal/domain/preferences"
)

type preferencesDTO struct {
	CollapsedLeagues []string `json:"collapsedLeagues"`
	HiddenLeagues    []string `json:"hiddenLeagues"`
	LeagueOrder      []string `json:"leagueOrder"`
	UpdatedAt        string   `json:"updatedAt,omitempty"`
}

type preferencesUpdateRequest struct {
	CollapsedLeagues *[]string `json:"collapsedLeagues"`
	HiddenLeagues    *[]string `json:"hiddenLeagues"`
	LeagueOrder      *[]string `json:"leagueOrder"`
}

func preferencesToDTO(doc preferences.Document, updatedAt time.Time) preferencesDTO {
	dto := preferencesDTO{
		CollapsedLeagues: doc.CollapsedLeagues,
		HiddenLeagues:    doc.HiddenLeagues,
		LeagueOrder:      doc.LeagueOrder,
	}
	if !updatedAt.IsZero() {
		dto.UpdatedAt = updatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPreferences")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	doc, updatedAt, err := h.preferenceService.Get(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get preferences failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, preferencesToDTO(doc, updatedAt))
}

func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePreferences")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req preferencesUpdateRequest
	if err := decodeJSONBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	partial := preferences.Partial{
		CollapsedLeagues: req.CollapsedLeagues,
		HiddenLeagues:    req.HiddenLeagues,
		LeagueOrder:      req.LeagueOrder,
	}
	doc, updatedAt, err := h.preferenceService.Update(ctx, principal.UserID, partial)
	if err != nil {
		h.logger.WarnContext(ctx, "update preferences failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, preferencesToDTO(doc, updatedAt))
}

func (h *Handler) ResetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetPreferences")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	if err := h.preferenceService.Reset(ctx, principal.UserID); err != nil {
		h.logger.WarnContext(ctx, "reset preferences failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
