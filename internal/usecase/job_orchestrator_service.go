package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/jobscheduler"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/league"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/logging"
	"go.opentelemetry.io/otel/trace"
)

const (
	jobNameLeagueRefresh = "league-refresh"
	jobPathLeagueRefresh = "/v1/internal/jobs/league-refresh"

	refreshStepCount = 3
)

// JobQueue hands a job to the external queue. Implementations deduplicate
// on deduplicationID within the provider's dedup window.
type JobQueue interface {
	Enqueue(ctx context.Context, path string, payload any, delay time.Duration, deduplicationID string) error
}

type noopJobQueue struct{}

func (noopJobQueue) Enqueue(_ context.Context, _ string, _ any, _ time.Duration, _ string) error {
	return nil
}

func NewNoopJobQueue() JobQueue {
	return noopJobQueue{}
}

// LeagueRefresher re-fetches a league's dashboard payloads, bypassing the
// snapshot cache. *DashboardService satisfies it.
type LeagueRefresher interface {
	GetStandings(ctx context.Context, leagueKey string, refresh bool) (any, CacheMeta, error)
	GetScoreboard(ctx context.Context, leagueKey string, week int, refresh bool) (any, CacheMeta, error)
}

// TransactionSyncer pulls a league's transaction feed into the store.
// *TransactionService satisfies it.
type TransactionSyncer interface {
	SyncLeague(ctx context.Context, leagueKey string) (LeagueSyncOutcome, error)
}

type JobOrchestratorConfig struct {
	// SweepInterval buckets refresh dedup keys: one enqueue per league per
	// interval slot.
	SweepInterval time.Duration
}

type RefreshSweepInput struct {
	// LeagueKey narrows the sweep to one league; empty sweeps the whole
	// directory.
	LeagueKey string
}

type RefreshSweepResult struct {
	Mode           string                `json:"mode"`
	LeagueCount    int                   `json:"league_count"`
	QueuedCount    int                   `json:"queued_count"`
	QueuedJobs     []string              `json:"queued_jobs,omitempty"`
	RefreshedCount int                   `json:"refreshed_count"`
	FailedCount    int                   `json:"failed_count"`
	Results        []LeagueRefreshResult `json:"results,omitempty"`
}

// LeagueRefreshResult reports one league's refresh pass, step by step.
// Step fields hold "ok" or the failure text.
type LeagueRefreshResult struct {
	LeagueKey    string `json:"league_key"`
	Standings    string `json:"standings"`
	Scoreboard   string `json:"scoreboard"`
	Transactions string `json:"transactions"`
	DurationMs   int64  `json:"duration_ms"`
}

type JobOrchestratorService struct {
	leagueRepo   league.Repository
	refresher    LeagueRefresher
	txSyncer     TransactionSyncer
	queue        JobQueue
	dispatchRepo jobscheduler.Repository
	cfg          JobOrchestratorConfig
	logger       *logging.Logger
	now          func() time.Time
}

var dedupUnsafeCharRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

func NewJobOrchestratorService(
	leagueRepo league.Repository,
	refresher LeagueRefresher,
	txSyncer TransactionSyncer,
	queue JobQueue,
	dispatchRepo jobscheduler.Repository,
	cfg JobOrchestratorConfig,
	logger *logging.Logger,
) *JobOrchestratorService {
	if queue == nil {
		queue = NewNoopJobQueue()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 30 * time.Minute
	}

	return &JobOrchestratorService{
		leagueRepo:   leagueRepo,
		refresher:    refresher,
		txSyncer:     txSyncer,
		queue:        queue,
		dispatchRepo: dispatchRepo,
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// RunRefreshSweep fans out one league-refresh job per directory league. The
// dedup key buckets by SweepInterval, so re-running the sweep inside a slot
// enqueues nothing new.
func (s *JobOrchestratorService) RunRefreshSweep(ctx context.Context, input RefreshSweepInput) (RefreshSweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.JobOrchestratorService.RunRefreshSweep")
	defer span.End()

	leagues, err := s.pickLeagues(ctx, input.LeagueKey)
	if err != nil {
		return RefreshSweepResult{}, err
	}

	now := s.now().UTC()
	result := RefreshSweepResult{
		Mode:        "sweep",
		LeagueCount: len(leagues),
		QueuedJobs:  make([]string, 0, len(leagues)),
	}

	for _, item := range leagues {
		if err := s.enqueueLeagueRefresh(ctx, item.LeagueKey, now); err != nil {
			return RefreshSweepResult{}, err
		}
		result.QueuedCount++
		result.QueuedJobs = append(result.QueuedJobs, jobNameLeagueRefresh+":"+item.LeagueKey)
	}

	return result, nil
}

// RunRefreshSweepDirect refreshes every picked league inline. Used when no
// queue is configured and by the force path of the internal sweep endpoint.
func (s *JobOrchestratorService) RunRefreshSweepDirect(ctx context.Context, input RefreshSweepInput) (RefreshSweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.JobOrchestratorService.RunRefreshSweepDirect")
	defer span.End()

	leagues, err := s.pickLeagues(ctx, input.LeagueKey)
	if err != nil {
		return RefreshSweepResult{}, err
	}

	result := RefreshSweepResult{
		Mode:        "sweep-direct",
		LeagueCount: len(leagues),
		Results:     make([]LeagueRefreshResult, 0, len(leagues)),
	}

	for _, item := range leagues {
		refresh, refreshErr := s.RunLeagueRefreshJob(ctx, item.LeagueKey, "")
		result.Results = append(result.Results, refresh)
		if refreshErr != nil {
			result.FailedCount++
			s.logger.WarnContext(ctx, "direct league refresh failed",
				"league_key", item.LeagueKey,
				"error", refreshErr,
			)
			continue
		}
		result.RefreshedCount++
	}

	return result, nil
}

// RunLeagueRefreshJob re-fetches standings, the current-week scoreboard and
// the transaction feed for one league. Steps are isolated; the job only
// errors when every step failed, so the queue retries it. A non-empty
// dispatchID marks the dispatch log row completed or failed.
func (s *JobOrchestratorService) RunLeagueRefreshJob(ctx context.Context, leagueKey, dispatchID string) (LeagueRefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.JobOrchestratorService.RunLeagueRefreshJob")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return LeagueRefreshResult{}, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}

	start := time.Now()
	result := LeagueRefreshResult{LeagueKey: leagueKey}
	failures := 0

	_, _, err := s.refresher.GetStandings(ctx, leagueKey, true)
	result.Standings = stepStatus(err)
	if err != nil {
		failures++
	}

	_, _, err = s.refresher.GetScoreboard(ctx, leagueKey, 0, true)
	result.Scoreboard = stepStatus(err)
	if err != nil {
		failures++
	}

	_, err = s.txSyncer.SyncLeague(ctx, leagueKey)
	result.Transactions = stepStatus(err)
	if err != nil {
		failures++
	}

	result.DurationMs = time.Since(start).Milliseconds()

	var jobErr error
	if failures == refreshStepCount {
		jobErr = fmt.Errorf("refresh league %s: all steps failed", leagueKey)
	}
	s.markDispatch(ctx, dispatchID, leagueKey, jobErr)
	return result, jobErr
}

func stepStatus(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}

func (s *JobOrchestratorService) pickLeagues(ctx context.Context, leagueKey string) ([]league.League, error) {
	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		items, err := s.leagueRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list leagues for refresh: %w", err)
		}
		return items, nil
	}

	item, exists, err := s.leagueRepo.GetByKey(ctx, leagueKey)
	if err != nil {
		return nil, fmt.Errorf("get league for refresh: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueKey)
	}

	return []league.League{item}, nil
}

func (s *JobOrchestratorService) enqueueLeagueRefresh(ctx context.Context, leagueKey string, now time.Time) error {
	dedupID := dedupKey("refresh", leagueKey, now, s.cfg.SweepInterval)
	payload := map[string]any{
		"league_key":  leagueKey,
		"dispatch_id": dedupID,
	}
	if err := s.queue.Enqueue(ctx, jobPathLeagueRefresh, payload, 0, dedupID); err != nil {
		s.recordDispatchEvent(ctx, jobscheduler.DispatchEvent{
			DispatchID:   dedupID,
			JobName:      jobNameLeagueRefresh,
			JobPath:      jobPathLeagueRefresh,
			LeagueKey:    leagueKey,
			Status:       jobscheduler.StatusFailed,
			Payload:      payload,
			ErrorMessage: err.Error(),
			OccurredAt:   now.UTC(),
		})
		return fmt.Errorf("enqueue league-refresh league=%s: %w", leagueKey, err)
	}
	s.recordDispatchEvent(ctx, jobscheduler.DispatchEvent{
		DispatchID: dedupID,
		JobName:    jobNameLeagueRefresh,
		JobPath:    jobPathLeagueRefresh,
		LeagueKey:  leagueKey,
		Status:     jobscheduler.StatusSent,
		Payload:    payload,
		OccurredAt: now.UTC(),
	})
	return nil
}

func (s *JobOrchestratorService) markDispatch(ctx context.Context, dispatchID, leagueKey string, jobErr error) {
	if strings.TrimSpace(dispatchID) == "" {
		return
	}
	event := jobscheduler.DispatchEvent{
		DispatchID: dispatchID,
		JobName:    jobNameLeagueRefresh,
		JobPath:    jobPathLeagueRefresh,
		LeagueKey:  leagueKey,
		Status:     jobscheduler.StatusCompleted,
		OccurredAt: s.now().UTC(),
	}
	if jobErr != nil {
		event.Status = jobscheduler.StatusFailed
		event.ErrorMessage = jobErr.Error()
	}
	s.recordDispatchEvent(ctx, event)
}

func dedupKey(prefix, leagueKey string, at time.Time, bucket time.Duration) string {
	if bucket <= 0 {
		bucket = time.Minute
	}
	slot := at.UTC().Truncate(bucket).Format("20060102T150405Z")
	prefix = sanitizeDedupSegment(prefix)
	leagueKey = sanitizeDedupSegment(leagueKey)
	return prefix + "-" + leagueKey + "-" + slot
}

func sanitizeDedupSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	return dedupUnsafeCharRegex.ReplaceAllString(value, "-")
}

func (s *JobOrchestratorService) recordDispatchEvent(ctx context.Context, event jobscheduler.DispatchEvent) {
	if s.dispatchRepo == nil || strings.TrimSpace(event.DispatchID) == "" {
		return
	}
	traceID, spanID := traceMetaFromContext(ctx)
	event.TraceID = traceID
	event.SpanID = spanID
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now().UTC()
	}
	if err := s.dispatchRepo.UpsertEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "record job dispatch event failed",
			"dispatch_id", event.DispatchID,
			"status", event.Status,
			"error", err,
		)
	}
}

func traceMetaFromContext(ctx context.Context) (string, string) {
	spanContext := trace.SpanFromContext(ctx).SpanContext()
	if !spanContext.IsValid() {
		return "", ""
	}
	return spanContext.TraceID().String(), spanContext.SpanID().String()
}
