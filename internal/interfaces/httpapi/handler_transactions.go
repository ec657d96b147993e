package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/transaction"
	"github.com/riskibarqy/fantasy-hoops/internal/usecase"
)

// ListTransactions serves the stored transaction log, newest first.
// Supported filters: type, team_key, limit, offset.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransactions")
	defer span.End()

	leagueKey := r.PathValue("leagueKey")

	filter := transaction.Filter{
		Type:    strings.TrimSpace(r.URL.Query().Get("type")),
		TeamKey: strings.TrimSpace(r.URL.Query().Get("team_key")),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		filter.Limit = v
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("offset")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			writeError(ctx, w, fmt.Errorf("%w: offset must be a non-negative integer", usecase.ErrInvalidInput))
			return
		}
		filter.Offset = v
	}

	records, err := h.transactionService.List(ctx, leagueKey, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list transactions failed", "league_key", leagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, records)
}

// SyncTransactions pulls the league's transaction feed and stores records
// not seen before.
func (h *Handler) SyncTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncTransactions")
	defer span.End()

	leagueKey := r.PathValue("leagueKey")
	principal, _ := principalFromContext(ctx)

	outcome, err := h.transactionService.SyncLeague(ctx, leagueKey)
	if err != nil {
		h.logger.WarnContext(ctx, "sync transactions failed",
			"league_key", leagueKey,
			"user_id", principal.UserID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outcome)
}

// GetTransactionSummary serves manager activity tallies and the most added
// and dropped players over the stored log.
func (h *Handler) GetTransactionSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTransactionSummary")
	defer span.End()

	leagueKey := r.PathValue("leagueKey")

	summary, err := h.transactionService.Summary(ctx, leagueKey)
	if err != nil {
		h.logger.WarnContext(ctx, "transaction summary failed", "league_key", leagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}
