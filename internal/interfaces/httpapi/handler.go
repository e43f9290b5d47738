package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/matchday-app/matchday/internal/domain/league"
	"github.com/matchday-app/matchday/internal/usecase"
)

type Handler struct {
	viewService       *usecase.ViewService
	watchlistService  *usecase.WatchlistService
	preferenceService *usecase.PreferenceService
	warmupService     *usecase.WarmupService
	catalog           league.Catalog
	logger            *slog.Logger
	validator         *validator.Validate
}

func NewHandler(
	viewService *usecase.ViewService,
	watchlistService *usecase.WatchlistService,
	preferenceService *usecase.PreferenceService,
	warmupService *usecase.WarmupService,
	catalog league.Catalog,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		viewService:       viewService,
		watchlistService:  watchlistService,
		preferenceService: preferenceService,
		warmupService:     warmupService,
		catalog:           catalog,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type leaguePublicDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	BadgeURL string `json:"badgeUrl,omitempty"`
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues := h.catalog.All()
	items := make([]leaguePublicDTO, 0, len(leagues))
	for _, lg := range leagues {
		items = append(items, leaguePublicDTO{
			ID:       lg.ID,
			Name:     lg.DisplayName,
			BadgeURL: lg.BadgeURL,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
