package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-hoops/internal/usecase"
)

type refreshSweepRequest struct {
	// LeagueKey narrows the sweep to one league; empty sweeps the directory.
	LeagueKey string `json:"league_key"`
	// Force runs the refreshes inline instead of enqueueing them.
	Force bool `json:"force"`
}

type leagueRefreshJobRequest struct {
	LeagueKey  string `json:"league_key" validate:"required"`
	DispatchID string `json:"dispatch_id"`
}

// RunRefreshSweepJob enqueues one league-refresh job per directory league,
// or runs them inline when forced.
func (h *Handler) RunRefreshSweepJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshSweepJob")
	defer span.End()

	if h.jobOrchestrator == nil {
		writeError(ctx, w, fmt.Errorf("%w: job orchestrator is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req refreshSweepRequest
	if err := decodeJobRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.RefreshSweepInput{LeagueKey: req.LeagueKey}
	run := h.jobOrchestrator.RunRefreshSweep
	if req.Force {
		run = h.jobOrchestrator.RunRefreshSweepDirect
	}

	result, err := run(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh sweep failed", "league_key", req.LeagueKey, "force", req.Force, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// RunLeagueRefreshJob re-fetches one league's dashboard payloads. A non-2xx
// response makes the queue redeliver, so step failures only error the job
// when nothing succeeded.
func (h *Handler) RunLeagueRefreshJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunLeagueRefreshJob")
	defer span.End()

	if h.jobOrchestrator == nil {
		writeError(ctx, w, fmt.Errorf("%w: job orchestrator is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req leagueRefreshJobRequest
	if err := decodeJobRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.jobOrchestrator.RunLeagueRefreshJob(ctx, req.LeagueKey, req.DispatchID)
	if err != nil {
		h.logger.WarnContext(ctx, "league refresh job failed",
			"league_key", req.LeagueKey,
			"dispatch_id", req.DispatchID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// decodeJobRequest decodes an internal job body. An empty body decodes to
// the zero request so queue providers may POST without one.
func decodeJobRequest(r *http.Request, out any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
