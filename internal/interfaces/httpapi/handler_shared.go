package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/matchday-app/matchday/internal/domain/fixture"
	"github.com/matchday-app/matchday/internal/domain/user"
	"github.com/matchday-app/matchday/internal/usecase"
)

func (h *Handler) requirePrincipal(ctx context.Context, w http.ResponseWriter) (user.Principal, bool) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return user.Principal{}, false
	}
	return principal, true
}

func decodeJSONBody(body io.Reader, target any) error {
	decoder := jsoniter.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return fmt.Errorf("validate request: %w", err)
		}
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type fixtureDTO struct {
	ID          string `json:"id"`
	LeagueID    string `json:"leagueId"`
	LeagueName  string `json:"leagueName"`
	Date        string `json:"date"`
	KickoffTime string `json:"kickoffTime"`
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	HomeScore   *int   `json:"homeScore"`
	AwayScore   *int   `json:"awayScore"`
}

func fixtureToDTO(item fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:          item.ID,
		LeagueID:    item.LeagueID,
		LeagueName:  item.LeagueName,
		Date:        item.Date,
		KickoffTime: item.KickoffTime,
		HomeTeam:    item.HomeTeam,
		AwayTeam:    item.AwayTeam,
		HomeScore:   item.HomeScore,
		AwayScore:   item.AwayScore,
	}
}
