package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/fixtures", RequireAuth(verifier, http.HandlerFunc(handler.GetDayView)))

	mux.Handle("GET /v1/watched", RequireAuth(verifier, http.HandlerFunc(handler.ListWatched)))
	mux.Handle("POST /v1/watched", RequireAuth(verifier, http.HandlerFunc(handler.MarkWatched)))
	mux.Handle("DELETE /v1/watched/{fixtureID}", RequireAuth(verifier, http.HandlerFunc(handler.UnmarkWatched)))

	mux.Handle("GET /v1/notified", RequireAuth(verifier, http.HandlerFunc(handler.ListNotified)))
	mux.Handle("POST /v1/notified", RequireAuth(verifier, http.HandlerFunc(handler.MarkNotified)))
	mux.Handle("DELETE /v1/notified/{fixtureID}", RequireAuth(verifier, http.HandlerFunc(handler.UnmarkNotified)))

	mux.Handle("GET /v1/preferences", RequireAuth(verifier, http.HandlerFunc(handler.GetPreferences)))
	mux.Handle("PUT /v1/preferences", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePreferences)))
	mux.Handle("DELETE /v1/preferences", RequireAuth(verifier, http.HandlerFunc(handler.ResetPreferences)))

	mux.Handle("GET /v1/me/stats", RequireAuth(verifier, http.HandlerFunc(handler.GetMyStats)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/warm-fixtures", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunWarmFixturesJob)))
}
