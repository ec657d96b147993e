package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/fantasy-hoops/internal/usecase"
)

func TestStaticTokenVerifier(t *testing.T) {
	t.Run("accepts the configured token", func(t *testing.T) {
		verifier := NewStaticTokenVerifier("sekret")
		principal, err := verifier.VerifyAccessToken(context.Background(), "sekret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if principal.UserID == "" {
			t.Fatalf("expected a principal, got %+v", principal)
		}
	})

	t.Run("rejects a mismatched token", func(t *testing.T) {
		verifier := NewStaticTokenVerifier("sekret")
		_, err := verifier.VerifyAccessToken(context.Background(), "wrong")
		if !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("fails closed when unconfigured", func(t *testing.T) {
		verifier := NewStaticTokenVerifier("  ")
		_, err := verifier.VerifyAccessToken(context.Background(), "anything")
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
		}
	})
}

func TestRequireAuth(t *testing.T) {
	verifier := NewStaticTokenVerifier("sekret")

	t.Run("missing header", func(t *testing.T) {
		handler := RequireAuth(verifier, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodPost, "/v1/leagues/sync", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		handler := RequireAuth(verifier, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodPost, "/v1/leagues/sync", nil)
		req.Header.Set("Authorization", "Token sekret")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("wrong token", func(t *testing.T) {
		handler := RequireAuth(verifier, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodPost, "/v1/leagues/sync", nil)
		req.Header.Set("Authorization", "Bearer wrong")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("valid token injects principal", func(t *testing.T) {
		var seen Principal
		handler := RequireAuth(verifier, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := principalFromContext(r.Context())
			if !ok {
				t.Fatal("expected principal in request context")
			}
			seen = principal
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodPost, "/v1/leagues/sync", nil)
		req.Header.Set("Authorization", "Bearer sekret")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if seen.UserID == "" {
			t.Fatalf("expected a resolved principal, got %+v", seen)
		}
	})
}

func TestRequireInternalJobToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("unconfigured token fails closed", func(t *testing.T) {
		handler := RequireInternalJobToken("", next)

		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/refresh-sweep", nil)
		req.Header.Set("X-Internal-Job-Token", "anything")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status 503, got %d", rec.Code)
		}
	})

	t.Run("mismatched token", func(t *testing.T) {
		handler := RequireInternalJobToken("job-token", next)

		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/refresh-sweep", nil)
		req.Header.Set("X-Internal-Job-Token", "wrong")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("valid token passes through", func(t *testing.T) {
		handler := RequireInternalJobToken("job-token", next)

		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/refresh-sweep", nil)
		req.Header.Set("X-Internal-Job-Token", "job-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
	})
}
