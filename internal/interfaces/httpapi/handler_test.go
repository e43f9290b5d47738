package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/matchday-app/matchday/internal/domain/fixture"
	"github.com/matchday-app/matchday/internal/domain/league"
	"github.com/matchday-app/matchday/internal/domain/user"
	"github.com/matchday-app/matchday/internal/infrastructure/repository/memory"
	"github.com/matchday-app/matchday/internal/usecase"
)

const testJobToken = "job-secret"

type stubVerifier struct {
	principal user.Principal
	err       error
}

func (s stubVerifier) VerifyAccessToken(_ context.Context, _ string) (user.Principal, error) {
	if s.err != nil {
		return user.Principal{}, s.err
	}
	return s.principal, nil
}

type stubDayProvider struct{}

func (stubDayProvider) FetchEventsForDay(_ context.Context, date string, lg league.League) ([]fixture.Fixture, error) {
	if lg.ID != "L1" {
		return nil, nil
	}
	return []fixture.Fixture{
		{ID: "fx-1", LeagueID: lg.ID, LeagueName: lg.DisplayName, Date: date, KickoffTime: "15:00:00", HomeTeam: "Arsenal", AwayTeam: "Chelsea"},
	}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	catalog := league.NewCatalog([]league.League{
		{ID: "L1", DisplayName: "League One", UpstreamQueryKey: "League_One"},
		{ID: "L2", DisplayName: "League Two", UpstreamQueryKey: "League_Two"},
	})

	fixtures := usecase.NewFixtureService(usecase.FixtureServiceConfig{
		Provider: stubDayProvider{},
		Catalog:  catalog,
	})
	prefs := usecase.NewPreferenceService(memory.NewPreferenceRepository(nil))
	marks := usecase.NewWatchlistService(memory.NewWatchlistRepository(), nil)
	view := usecase.NewViewService(fixtures, prefs, marks, catalog)
	warmup := usecase.NewWarmupService(fixtures, nil, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(view, marks, prefs, warmup, catalog, logger)
	verifier := stubVerifier{principal: user.Principal{UserID: "u-1", Email: "u1@example.com"}}

	return NewRouter(handler, verifier, logger, nil, testJobToken)
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer token")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	data, _ := envelope["data"].(map[string]any)
	return data
}

func TestRouter_RejectsMissingBearerToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/fixtures?date=2026-02-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_DayViewHappyPath(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/fixtures?date=2026-02-01", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec)
	if data["date"] != "2026-02-01" {
		t.Fatalf("unexpected date: %v", data["date"])
	}
	sections, _ := data["leagues"].([]any)
	if len(sections) != 1 {
		t.Fatalf("expected 1 league group (league without fixtures dropped), got %v", data["leagues"])
	}
	section, _ := sections[0].(map[string]any)
	if section["leagueId"] != "L1" || section["collapsed"] != false {
		t.Fatalf("unexpected section: %v", section)
	}
}

func TestRouter_DayViewRequiresValidDate(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/fixtures?date=01-02-2026", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_WatchedMarkLifecycle(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"fixtureId":"fx-1","leagueId":"L1","date":"2026-02-01","kickoffTime":"15:00:00","homeTeam":"Arsenal","awayTeam":"Chelsea"}`
	rec := doRequest(t, router, http.MethodPost, "/v1/watched", payload, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("mark watched: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/watched", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list watched: expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0]["fixtureId"] != "fx-1" {
		t.Fatalf("unexpected watched list: %+v", envelope.Data)
	}

	rec = doRequest(t, router, http.MethodDelete, "/v1/watched/fx-1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unmark watched: expected 200, got %d", rec.Code)
	}

	// Deleting again stays a 200 no-op.
	rec = doRequest(t, router, http.MethodDelete, "/v1/watched/fx-1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat unmark: expected 200, got %d", rec.Code)
	}
}

func TestRouter_MarkWatchedRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/watched", `{"fixtureId":"fx-1","date":"2026-02-01","bogus":true}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rec.Code)
	}
}

func TestRouter_HiddenLeaguePreferenceShapesDayView(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/v1/preferences", `{"hiddenLeagues":["L1"]}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("update preferences: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/fixtures?date=2026-02-01", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("day view: expected 200, got %d", rec.Code)
	}
	data := decodeData(t, rec)
	sections, _ := data["leagues"].([]any)
	if len(sections) != 0 {
		t.Fatalf("expected hidden league removed from view, got %v", sections)
	}
}

func TestRouter_UpdatePreferencesRejectsEmptyPartial(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/v1/preferences", `{}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty partial, got %d", rec.Code)
	}
}

func TestRouter_InternalJobRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/warm-fixtures", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without job token, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/internal/jobs/warm-fixtures", "", map[string]string{
		"X-Internal-Job-Token": testJobToken,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with job token, got %d body=%s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	warmed, _ := data["warmed"].(float64)
	if warmed != 4 {
		t.Fatalf("expected default window of 4 warmed days, got %v", data["warmed"])
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestRouter_WarmFixturesJobReportsBodyReadFailure(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/warm-fixtures", failingReader{})
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when the request body cannot be read, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %s", rec.Body.String())
	}
}

func TestRouter_VerifierFailurePropagates(t *testing.T) {
	catalog := league.NewCatalog([]league.League{{ID: "L1", DisplayName: "League One", UpstreamQueryKey: "League_One"}})
	fixtures := usecase.NewFixtureService(usecase.FixtureServiceConfig{Provider: stubDayProvider{}, Catalog: catalog})
	prefs := usecase.NewPreferenceService(memory.NewPreferenceRepository(nil))
	marks := usecase.NewWatchlistService(memory.NewWatchlistRepository(), nil)
	view := usecase.NewViewService(fixtures, prefs, marks, catalog)
	warmup := usecase.NewWarmupService(fixtures, nil, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(view, marks, prefs, warmup, catalog, logger)
	verifier := stubVerifier{err: fmt.Errorf("%w: token expired", usecase.ErrUnauthorized)}
	router := NewRouter(handler, verifier, logger, nil, testJobToken)

	rec := doRequest(t, router, http.MethodGet, "/v1/watched", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from failing verifier, got %d", rec.Code)
	}
}
