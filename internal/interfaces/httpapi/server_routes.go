package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}/scoreboard", handler.GetScoreboard)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}/analytics/totals", handler.GetWeeklyTotals)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}/analytics/rankings", handler.GetWeeklyRankings)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}/analytics/h2h", handler.GetWeeklyH2H)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}/analytics/period", handler.GetPeriodAnalytics)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}/transactions", handler.ListTransactions)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}/transactions/summary", handler.GetTransactionSummary)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues/sync", RequireAuth(verifier, http.HandlerFunc(handler.SyncLeagues)))
	mux.Handle("POST /v1/leagues/{leagueKey}/transactions/sync", RequireAuth(verifier, http.HandlerFunc(handler.SyncTransactions)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/refresh-sweep", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRefreshSweepJob)))
	mux.Handle("POST /v1/internal/jobs/league-refresh", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunLeagueRefreshJob)))
}
