package yahoo

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/logging"
	"github.com/valyala/fasthttp"
)

const defaultTokenURL = "https://api.login.yahoo.com/oauth2/get_token"

// refreshBuffer forces a refresh while the current token still works so
// requests in flight never straddle the expiry.
const refreshBuffer = 5 * time.Minute

// Token is one OAuth2 grant. The provider rotates the refresh token on
// every exchange, so both halves must be persisted together.
type Token struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Valid reports whether the access token is usable at now with refresh
// headroom to spare.
func (t Token) Valid(now time.Time) bool {
	return t.AccessToken != "" && now.Add(refreshBuffer).Before(t.ExpiresAt)
}

// TokenStore persists rotated grants across restarts.
type TokenStore interface {
	Load(ctx context.Context) (Token, bool, error)
	Save(ctx context.Context, token Token) error
}

type TokenSourceConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string // seed grant, superseded once the store holds a newer one
	TokenURL     string
	Store        TokenStore
	HTTPClient   *fasthttp.Client
	Timeout      time.Duration
	Logger       *logging.Logger
}

// TokenSource hands out bearer tokens, exchanging the refresh grant when
// the cached access token nears expiry. Concurrent callers share a single
// refresh.
type TokenSource struct {
	clientID     string
	clientSecret string
	tokenURL     string
	store        TokenStore
	httpClient   *fasthttp.Client
	timeout      time.Duration
	logger       *logging.Logger

	mu      sync.Mutex
	current Token
}

func NewTokenSource(cfg TokenSourceConfig) *TokenSource {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{ReadTimeout: timeout, WriteTimeout: timeout}
	}

	tokenURL := strings.TrimSpace(cfg.TokenURL)
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	return &TokenSource{
		clientID:     strings.TrimSpace(cfg.ClientID),
		clientSecret: strings.TrimSpace(cfg.ClientSecret),
		tokenURL:     tokenURL,
		store:        cfg.Store,
		httpClient:   httpClient,
		timeout:      timeout,
		logger:       logger,
		current:      Token{RefreshToken: strings.TrimSpace(cfg.RefreshToken)},
	}
}

// AccessToken returns a bearer token valid for at least the refresh buffer,
// refreshing through the store-backed grant when needed.
func (s *TokenSource) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if s.current.Valid(now) {
		return s.current.AccessToken, nil
	}

	if s.store != nil {
		stored, found, err := s.store.Load(ctx)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "load persisted oauth grant failed", "error", err)
		case found && stored.Valid(now):
			s.current = stored
			return s.current.AccessToken, nil
		case found && stored.RefreshToken != "":
			s.current.RefreshToken = stored.RefreshToken
		}
	}

	if s.current.RefreshToken == "" {
		return "", fmt.Errorf("no refresh token available")
	}

	refreshed, err := s.exchange(ctx, s.current.RefreshToken)
	if err != nil {
		return "", err
	}
	s.current = refreshed

	if s.store != nil {
		if err := s.store.Save(ctx, refreshed); err != nil {
			s.logger.WarnContext(ctx, "persist rotated oauth grant failed", "error", err)
		}
	}
	return s.current.AccessToken, nil
}

// Invalidate drops the cached access token so the next call refreshes.
// Used when the provider rejects a token before its recorded expiry.
func (s *TokenSource) Invalidate() {
	s.mu.Lock()
	s.current.AccessToken = ""
	s.current.ExpiresAt = time.Time{}
	s.mu.Unlock()
}

func (s *TokenSource) exchange(ctx context.Context, refreshToken string) (Token, error) {
	if err := ctx.Err(); err != nil {
		return Token{}, err
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("redirect_uri", "oob")
	form.Set("refresh_token", refreshToken)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.tokenURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	credentials := base64.StdEncoding.EncodeToString([]byte(s.clientID + ":" + s.clientSecret))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.SetBodyString(form.Encode())

	if err := s.httpClient.DoTimeout(req, resp, requestTimeout(ctx, s.timeout)); err != nil {
		return Token{}, fmt.Errorf("exchange refresh token: %w", err)
	}
	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return Token{}, fmt.Errorf("token endpoint status=%d body=%s", code, abbreviateBody(resp.Body()))
	}

	var grant struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int64  `json:"expires_in"`
	}
	if err := sonic.Unmarshal(resp.Body(), &grant); err != nil {
		return Token{}, fmt.Errorf("decode token response: %w", err)
	}
	if grant.AccessToken == "" {
		return Token{}, fmt.Errorf("token endpoint returned an empty access token")
	}

	return Token{
		AccessToken:  grant.AccessToken,
		RefreshToken: firstNonEmpty(grant.RefreshToken, refreshToken),
		ExpiresAt:    time.Now().UTC().Add(time.Duration(grant.ExpiresIn) * time.Second),
	}, nil
}
