package sportsdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/matchday-app/matchday/internal/domain/fixture"
	"github.com/matchday-app/matchday/internal/domain/league"
	"github.com/matchday-app/matchday/internal/platform/logging"
	"github.com/matchday-app/matchday/internal/platform/resilience"
	"github.com/matchday-app/matchday/internal/usecase"
)

const (
	defaultBaseURL  = "https://www.thesportsdb.com/api/v1/json"
	defaultAPIKey   = "3"
	maxResponseSize = 4 << 20
)

var errSportsDBTransient = crerr.New("sportsdb transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches match events from the provider. Requests are made at most
// once; callers decide whether a failed day is retried later.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		apiKey = defaultAPIKey
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         apiKey,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchEventsForDay returns the provider's fixtures for one league on one
// date. A day the provider knows nothing about comes back as an empty slice,
// not an error.
func (c *Client) FetchEventsForDay(ctx context.Context, date string, lg league.League) ([]fixture.Fixture, error) {
	if !fixture.ValidDate(date) {
		return nil, fmt.Errorf("%w: date must be formatted YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	if strings.TrimSpace(lg.UpstreamQueryKey) == "" {
		return nil, fmt.Errorf("%w: league %s has no provider query key", usecase.ErrInvalidInput, lg.ID)
	}

	// The breaker gate stays outside the singleflight: a rejected caller must
	// not be recorded as a probe outcome, or a burst of concurrent league
	// fetches would close a half-open breaker before its real probe finishes.
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sportsdb circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: match data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	values.Set("d", date)
	values.Set("l", lg.UpstreamQueryKey)

	path := "/eventsday.php"
	fullURL := c.baseURL + "/" + c.apiKey + path + "?" + values.Encode()

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	var envelope eventsEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode provider payload: %v", usecase.ErrDependencyUnavailable, err)
	}

	return mapEvents(envelope.Events, lg), nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.WarnContext(ctx, "sportsdb request failed", "url", redactAPIURL(fullURL, c.apiKey), "error", err)
		return nil, fmt.Errorf("%w: send request: %v", wrapTransient(usecase.ErrDependencyUnavailable), err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", wrapTransient(usecase.ErrDependencyUnavailable), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "sportsdb responded with non-success status",
			"url", redactAPIURL(fullURL, c.apiKey),
			"status", resp.StatusCode,
		)
		base := usecase.ErrDependencyUnavailable
		if isTransientStatus(resp.StatusCode) {
			return nil, fmt.Errorf("%w: provider status=%d", wrapTransient(base), resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: provider status=%d", base, resp.StatusCode)
	}

	return raw, nil
}

func wrapTransient(base error) error {
	return crerr.Mark(base, errSportsDBTransient)
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errSportsDBTransient)
}

func isTransientStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func redactAPIURL(fullURL, apiKey string) string {
	if apiKey == "" {
		return fullURL
	}
	return strings.ReplaceAll(fullURL, "/"+apiKey+"/", "/REDACTED/")
}
