package config

import (
	"testing"
	"time"

	"github.com/matchday-app/matchday/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty DBURL by default, got %q", cfg.DBURL)
	}
	if cfg.SportsDBAPIKey != "3" {
		t.Fatalf("unexpected SportsDBAPIKey: %q", cfg.SportsDBAPIKey)
	}
	if cfg.FixturesTodayTTL != 2*time.Minute {
		t.Fatalf("unexpected FixturesTodayTTL: %s", cfg.FixturesTodayTTL)
	}
	if cfg.FixturesHistoryTTL != 24*time.Hour {
		t.Fatalf("unexpected FixturesHistoryTTL: %s", cfg.FixturesHistoryTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_FixtureTTLParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FIXTURES_TODAY_TTL", "45s")
	t.Setenv("FIXTURES_HISTORY_TTL", "12h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FixturesTodayTTL != 45*time.Second {
		t.Fatalf("unexpected FixturesTodayTTL: %s", cfg.FixturesTodayTTL)
	}
	if cfg.FixturesHistoryTTL != 12*time.Hour {
		t.Fatalf("unexpected FixturesHistoryTTL: %s", cfg.FixturesHistoryTTL)
	}
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FIXTURES_TODAY_TTL", "-1m")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive FIXTURES_TODAY_TTL")
	}
}

func TestLoad_ProdRequiresInternalJobToken(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("INTERNAL_JOB_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without INTERNAL_JOB_TOKEN")
	}

	t.Setenv("INTERNAL_JOB_TOKEN", "job-token")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.InternalJobToken != "job-token" {
		t.Fatalf("unexpected InternalJobToken: %q", cfg.InternalJobToken)
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}
