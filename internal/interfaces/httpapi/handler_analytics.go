package httpapi

import (
	"net/http"
	"strings"
)

// GetWeeklyTotals serves formatted per-team stat lines for one week.
func (h *Handler) GetWeeklyTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeeklyTotals")
	defer span.End()

	leagueKey := r.PathValue("leagueKey")
	week, err := parseWeekParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	refresh := parseRefreshParam(r)

	rows, meta, err := h.analyticsService.WeeklyTotals(ctx, leagueKey, week, refresh)
	if err != nil {
		h.logger.WarnContext(ctx, "weekly totals failed", "league_key", leagueKey, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cachedPayloadDTO{Data: rows, Cache: meta})
}

// GetWeeklyRankings serves per-category competition ranks for one week.
func (h *Handler) GetWeeklyRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeeklyRankings")
	defer span.End()

	leagueKey := r.PathValue("leagueKey")
	week, err := parseWeekParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	refresh := parseRefreshParam(r)

	rows, meta, err := h.analyticsService.WeeklyRankings(ctx, leagueKey, week, refresh)
	if err != nil {
		h.logger.WarnContext(ctx, "weekly rankings failed", "league_key", leagueKey, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cachedPayloadDTO{Data: rows, Cache: meta})
}

// GetWeeklyH2H serves the all-play matrix for one week.
func (h *Handler) GetWeeklyH2H(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeeklyH2H")
	defer span.End()

	leagueKey := r.PathValue("leagueKey")
	week, err := parseWeekParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	refresh := parseRefreshParam(r)

	matrix, meta, err := h.analyticsService.WeeklyH2H(ctx, leagueKey, week, refresh)
	if err != nil {
		h.logger.WarnContext(ctx, "weekly h2h failed", "league_key", leagueKey, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cachedPayloadDTO{Data: matrix, Cache: meta})
}

// GetPeriodAnalytics aggregates a week range into a totals or rankings view.
// Both bounds are required; the view defaults to totals.
func (h *Handler) GetPeriodAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPeriodAnalytics")
	defer span.End()

	leagueKey := r.PathValue("leagueKey")
	startWeek, err := parseRequiredIntParam(r, "start_week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endWeek, err := parseRequiredIntParam(r, "end_week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	view := strings.TrimSpace(r.URL.Query().Get("view"))

	result, err := h.analyticsService.PeriodAggregate(ctx, leagueKey, startWeek, endWeek, view)
	if err != nil {
		h.logger.WarnContext(ctx, "period aggregate failed",
			"league_key", leagueKey,
			"start_week", startWeek,
			"end_week", endWeek,
			"view", view,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
