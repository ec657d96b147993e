// Package yahoo talks to the Yahoo Fantasy Sports API: OAuth2-protected
// REST whose JSON rendering keeps the XML-era resource tree, so responses
// are decoded into untyped maps and normalized downstream.
package yahoo

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/logging"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-hoops/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL   = "https://fantasysports.yahooapis.com/fantasy/v2"
	userLeaguesPath  = "/users;use_login=1/games;game_keys=nba/leagues"
	maxResponseBytes = 6 << 20
)

var leagueKeyRegex = regexp.MustCompile(`^\d+\.l\.\d+$`)
var bearerHeaderRegex = regexp.MustCompile(`Bearer\s+[^\s"']+`)
var errYahooTransient = crerr.New("yahoo transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Tokens         *TokenSource
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	tokens         *TokenSource
	timeout        time.Duration
	maxRetries     int
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

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBytes,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		tokens:         cfg.Tokens,
		timeout:        timeout,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// GetLeagueInfo fetches league metadata: name, team count, week window,
// season and scoring type.
func (c *Client) GetLeagueInfo(ctx context.Context, leagueKey string) (map[string]any, error) {
	if err := validateLeagueKey(leagueKey); err != nil {
		return nil, err
	}
	return c.fetchJSON(ctx, "/league/"+leagueKey)
}

// GetLeagueStandings fetches the league table with per-team records.
func (c *Client) GetLeagueStandings(ctx context.Context, leagueKey string) (map[string]any, error) {
	if err := validateLeagueKey(leagueKey); err != nil {
		return nil, err
	}
	return c.fetchJSON(ctx, "/league/"+leagueKey+"/standings")
}

// GetLeagueScoreboard fetches one week's matchups. Week 0 means whatever
// week the league is currently in.
func (c *Client) GetLeagueScoreboard(ctx context.Context, leagueKey string, week int) (map[string]any, error) {
	if err := validateLeagueKey(leagueKey); err != nil {
		return nil, err
	}
	path := "/league/" + leagueKey + "/scoreboard"
	if week > 0 {
		path += ";week=" + strconv.Itoa(week)
	}
	return c.fetchJSON(ctx, path)
}

// GetLeagueTransactions fetches the most recent transactions, newest first.
// Count 0 leaves the page size to the provider.
func (c *Client) GetLeagueTransactions(ctx context.Context, leagueKey string, count int) (map[string]any, error) {
	if err := validateLeagueKey(leagueKey); err != nil {
		return nil, err
	}
	path := "/league/" + leagueKey + "/transactions"
	if count > 0 {
		path += ";count=" + strconv.Itoa(count)
	}
	return c.fetchJSON(ctx, path)
}

// GetUserLeagues lists the NBA leagues visible to the authorized account.
func (c *Client) GetUserLeagues(ctx context.Context) (map[string]any, error) {
	return c.fetchJSON(ctx, userLeaguesPath)
}

func validateLeagueKey(leagueKey string) error {
	if !leagueKeyRegex.MatchString(leagueKey) {
		return fmt.Errorf("%w: malformed league key %q", usecase.ErrInvalidInput, leagueKey)
	}
	return nil
}

func (c *Client) fetchJSON(ctx context.Context, path string) (map[string]any, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "yahoo circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: fantasy data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path + "?format=json"

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil {
				if isYahooCircuitFailure(reqErr) {
					c.breaker.RecordFailure()
				} else {
					c.breaker.RecordSuccess()
				}
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

	var payload map[string]any
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}
	return payload, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	if c.tokens == nil {
		return nil, fmt.Errorf("no token source configured")
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("acquire access token: %w", err)
		}

		raw, status, err := c.send(ctx, fullURL, token)
		switch {
		case err != nil:
			lastErr = fmt.Errorf("%w: send request: %s", errYahooTransient, sanitizeSensitiveText(err.Error(), token))
		case status >= 200 && status < 300:
			return raw, nil
		case status == http.StatusUnauthorized:
			// Grants can be revoked before their recorded expiry.
			c.tokens.Invalidate()
			lastErr = fmt.Errorf("%w: provider rejected access token status=%d", errYahooTransient, status)
		case isRetryableStatus(status):
			lastErr = fmt.Errorf("%w: provider status=%d body=%s", errYahooTransient, status, abbreviateBody(raw))
		default:
			return nil, fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(raw))
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "yahoo request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) send(ctx context.Context, fullURL, token string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	if err := c.httpClient.DoTimeout(req, resp, requestTimeout(ctx, c.timeout)); err != nil {
		return nil, 0, err
	}

	// The response object returns to fasthttp's pool on release; the body
	// must be copied out first.
	raw := append([]byte(nil), resp.Body()...)
	return raw, resp.StatusCode(), nil
}

// requestTimeout caps the per-attempt timeout at the context deadline so
// fasthttp, which has no context support, still honors it.
func requestTimeout(ctx context.Context, fallback time.Duration) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < fallback {
			return remaining
		}
	}
	return fallback
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return bearerHeaderRegex.ReplaceAllString(value, "Bearer REDACTED")
}

func isYahooCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errYahooTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
