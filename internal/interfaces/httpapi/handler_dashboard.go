package httpapi

import "net/http"

// GetLeague serves the normalized league header with cache metadata.
func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueKey := r.PathValue("leagueKey")
	refresh := parseRefreshParam(r)

	payload, meta, err := h.dashboardService.GetLeagueInfo(ctx, leagueKey, refresh)
	if err != nil {
		h.logger.WarnContext(ctx, "get league info failed", "league_key", leagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cachedPayloadDTO{Data: payload, Cache: meta})
}

// GetStandings serves the normalized standings table with cache metadata.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	leagueKey := r.PathValue("leagueKey")
	refresh := parseRefreshParam(r)

	payload, meta, err := h.dashboardService.GetStandings(ctx, leagueKey, refresh)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "league_key", leagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cachedPayloadDTO{Data: payload, Cache: meta})
}

// GetScoreboard serves one week's normalized matchups with cache metadata.
// Week 0 or absent means the league's current week.
func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoreboard")
	defer span.End()

	leagueKey := r.PathValue("leagueKey")
	week, err := parseWeekParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	refresh := parseRefreshParam(r)

	payload, meta, err := h.dashboardService.GetScoreboard(ctx, leagueKey, week, refresh)
	if err != nil {
		h.logger.WarnContext(ctx, "get scoreboard failed", "league_key", leagueKey, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cachedPayloadDTO{Data: payload, Cache: meta})
}
