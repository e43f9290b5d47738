package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/matchday-app/matchday/external/sportsdb"
	"github.com/matchday-app/matchday/internal/config"
	"github.com/matchday-app/matchday/internal/domain/league"
	"github.com/matchday-app/matchday/internal/domain/preferences"
	"github.com/matchday-app/matchday/internal/domain/watchlist"
	"github.com/matchday-app/matchday/internal/infrastructure/account/passport"
	"github.com/matchday-app/matchday/internal/infrastructure/repository/memory"
	"github.com/matchday-app/matchday/internal/infrastructure/repository/postgres"
	"github.com/matchday-app/matchday/internal/interfaces/httpapi"
	"github.com/matchday-app/matchday/internal/platform/logging"
	"github.com/matchday-app/matchday/internal/platform/resilience"
	"github.com/matchday-app/matchday/internal/usecase"
)

// NewHTTPServer wires the service together. With DB_URL set the mark and
// preference stores live in Postgres; without it everything runs in memory,
// which is how local development and the test suite run. The returned cleanup
// releases the database pool and is safe to call on the memory path too.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func(), error) {
	cleanup := func() {}

	var (
		watchRepo watchlist.Repository
		prefRepo  preferences.Repository
	)
	if cfg.DBURL != "" {
		db, err := sqlx.Connect("postgres", cfg.DBURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
		cleanup = func() { _ = db.Close() }

		watchRepo = postgres.NewWatchlistRepository(db)
		prefRepo = postgres.NewPreferenceRepository(db, nil)
	} else {
		watchRepo = memory.NewWatchlistRepository()
		prefRepo = memory.NewPreferenceRepository(nil)
	}

	catalog := league.NewCatalog(league.DefaultLeagues())

	provider := sportsdb.NewClient(sportsdb.ClientConfig{
		BaseURL: cfg.SportsDBBaseURL,
		APIKey:  cfg.SportsDBAPIKey,
		Timeout: cfg.SportsDBTimeout,
		Logger:  logging.Default(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SportsDBCircuitEnabled,
			FailureThreshold: cfg.SportsDBCircuitFailureCount,
			OpenTimeout:      cfg.SportsDBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SportsDBCircuitHalfOpenMaxReq,
		},
	})

	fixtureSvc := usecase.NewFixtureService(usecase.FixtureServiceConfig{
		Provider:   provider,
		Catalog:    catalog,
		TodayTTL:   cfg.FixturesTodayTTL,
		HistoryTTL: cfg.FixturesHistoryTTL,
		Logger:     logging.Default(),
	})
	preferenceSvc := usecase.NewPreferenceService(prefRepo)
	watchlistSvc := usecase.NewWatchlistService(watchRepo, nil)
	viewSvc := usecase.NewViewService(fixtureSvc, preferenceSvc, watchlistSvc, catalog)
	warmupSvc := usecase.NewWarmupService(fixtureSvc, logging.Default(), nil)

	passportClient := passport.NewClient(
		&http.Client{Timeout: cfg.PassportTimeout},
		cfg.PassportBaseURL,
		cfg.PassportIntrospectPath,
		logger,
	)

	handler := httpapi.NewHandler(viewSvc, watchlistSvc, preferenceSvc, warmupSvc, catalog, logger)
	router := httpapi.NewRouter(handler, passportClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}
