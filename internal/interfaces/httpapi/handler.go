package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/league"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/logging"
	"github.com/riskibarqy/fantasy-hoops/internal/usecase"
)

type Handler struct {
	dashboardService   *usecase.DashboardService
	analyticsService   *usecase.AnalyticsService
	transactionService *usecase.TransactionService
	leagueService      *usecase.LeagueService
	jobOrchestrator    *usecase.JobOrchestratorService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	dashboardService *usecase.DashboardService,
	analyticsService *usecase.AnalyticsService,
	transactionService *usecase.TransactionService,
	leagueService *usecase.LeagueService,
	jobOrchestrator *usecase.JobOrchestratorService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		dashboardService:   dashboardService,
		analyticsService:   analyticsService,
		transactionService: transactionService,
		leagueService:      leagueService,
		jobOrchestrator:    jobOrchestrator,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// cachedPayloadDTO pairs a dashboard payload with how it was served. The
// cache block carries cached, cache_age_minutes and last_updated.
type cachedPayloadDTO struct {
	Data  any               `json:"data"`
	Cache usecase.CacheMeta `json:"cache"`
}

type leagueDTO struct {
	LeagueKey    string `json:"league_key"`
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	NumTeams     int    `json:"num_teams"`
	CurrentWeek  int    `json:"current_week"`
	StartWeek    int    `json:"start_week"`
	EndWeek      int    `json:"end_week"`
	Season       string `json:"season"`
	ScoringType  string `json:"scoring_type"`
	LastSyncedAt string `json:"last_synced_at,omitempty"`
}

func leagueToDTO(ctx context.Context, v league.League) leagueDTO {
	_, span := startSpan(ctx, "httpapi.leagueToDTO")
	defer span.End()

	return leagueDTO{
		LeagueKey:    v.LeagueKey,
		LeagueID:     v.LeagueID,
		Name:         v.Name,
		NumTeams:     v.NumTeams,
		CurrentWeek:  v.CurrentWeek,
		StartWeek:    v.StartWeek,
		EndWeek:      v.EndWeek,
		Season:       v.Season,
		ScoringType:  v.ScoringType,
		LastSyncedAt: formatOptionalTime(v.LastSyncedAt),
	}
}

func formatOptionalTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

// parseWeekParam reads the optional week query parameter. Absent means 0,
// which downstream resolves to the league's current week.
func parseWeekParam(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("week"))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: week must be a non-negative integer", usecase.ErrInvalidInput)
	}
	return value, nil
}

// parseRefreshParam reads the cache-bypass flag. Values strconv rejects
// count as false instead of failing the read.
func parseRefreshParam(r *http.Request) bool {
	raw := strings.TrimSpace(r.URL.Query().Get("refresh"))
	if raw == "" {
		return false
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return value
}

func parseRequiredIntParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}
