package httpapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/matchday-app/matchday/internal/usecase"
)

type warmFixturesRequest struct {
	DaysBack   int `json:"daysBack" validate:"min=0,max=30"`
	DaysAhead  int `json:"daysAhead" validate:"min=0,max=30"`
	MaxWorkers int `json:"maxWorkers" validate:"min=0,max=16"`
}

type warmFixturesDayDTO struct {
	Date     string `json:"date"`
	Fixtures int    `json:"fixtures"`
	Error    string `json:"error,omitempty"`
}

type warmFixturesResponse struct {
	Warmed int                  `json:"warmed"`
	Failed int                  `json:"failed"`
	Days   []warmFixturesDayDTO `json:"days"`
}

// RunWarmFixturesJob pre-fetches the fixture cache around today. An empty
// request body runs with the default window.
func (h *Handler) RunWarmFixturesJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWarmFixturesJob")
	defer span.End()

	req := warmFixturesRequest{DaysBack: 1, DaysAhead: 2}
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := decodeJSONBody(bytes.NewReader(body), &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.warmupService.WarmWindow(ctx, usecase.WarmupInput{
		DaysBack:   req.DaysBack,
		DaysAhead:  req.DaysAhead,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "warm fixtures job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	days := make([]warmFixturesDayDTO, 0, len(result.Days))
	for _, day := range result.Days {
		days = append(days, warmFixturesDayDTO{Date: day.Date, Fixtures: day.Fixtures, Error: day.Err})
	}

	writeSuccess(ctx, w, http.StatusOK, warmFixturesResponse{
		Warmed: result.Warmed,
		Failed: result.Failed,
		Days:   days,
	})
}
