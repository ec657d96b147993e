package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/analytics"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// Period views selectable on the aggregation endpoint.
const (
	PeriodViewTotals   = "totals"
	PeriodViewRankings = "rankings"
)

const defaultPeriodFetchWorkers = 4

// ScoreboardSource supplies typed weekly scoreboards through the snapshot
// cache. *DashboardService satisfies it.
type ScoreboardSource interface {
	ScoreboardSnapshot(ctx context.Context, leagueKey string, week int, refresh bool) (matchup.Scoreboard, CacheMeta, error)
}

// AnalyticsService computes table-ready weekly views and multi-week
// aggregates on top of cached scoreboards.
type AnalyticsService struct {
	scoreboards  ScoreboardSource
	fetchWorkers int
	logger       *logging.Logger
}

func NewAnalyticsService(scoreboards ScoreboardSource, fetchWorkers int, logger *logging.Logger) *AnalyticsService {
	if fetchWorkers <= 0 {
		fetchWorkers = defaultPeriodFetchWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AnalyticsService{
		scoreboards:  scoreboards,
		fetchWorkers: fetchWorkers,
		logger:       logger,
	}
}

// WeeklyTotals builds one formatted stat line per team for a week. Week 0
// means the league's current week.
func (s *AnalyticsService) WeeklyTotals(ctx context.Context, leagueKey string, week int, refresh bool) ([]analytics.TotalsRow, CacheMeta, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.WeeklyTotals")
	defer span.End()

	sb, meta, err := s.scoreboards.ScoreboardSnapshot(ctx, leagueKey, week, refresh)
	if err != nil {
		return nil, CacheMeta{}, err
	}
	return analytics.BuildTotals(analytics.Flatten(sb)), meta, nil
}

// WeeklyRankings ranks every team per category for a week and averages the
// ranks per team.
func (s *AnalyticsService) WeeklyRankings(ctx context.Context, leagueKey string, week int, refresh bool) ([]analytics.RankingRow, CacheMeta, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.WeeklyRankings")
	defer span.End()

	sb, meta, err := s.scoreboards.ScoreboardSnapshot(ctx, leagueKey, week, refresh)
	if err != nil {
		return nil, CacheMeta{}, err
	}
	return analytics.BuildRankings(analytics.Flatten(sb)), meta, nil
}

// WeeklyH2H simulates every team-pair matchup for a week and returns the
// all-play matrix.
func (s *AnalyticsService) WeeklyH2H(ctx context.Context, leagueKey string, week int, refresh bool) (analytics.H2HMatrix, CacheMeta, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.WeeklyH2H")
	defer span.End()

	sb, meta, err := s.scoreboards.ScoreboardSnapshot(ctx, leagueKey, week, refresh)
	if err != nil {
		return analytics.H2HMatrix{}, CacheMeta{}, err
	}
	return analytics.BuildH2H(analytics.Flatten(sb)), meta, nil
}

// PeriodResult is a multi-week aggregate rendered as one of the weekly view
// shapes.
type PeriodResult struct {
	StartWeek int                    `json:"start_week"`
	EndWeek   int                    `json:"end_week"`
	View      string                 `json:"view"`
	Totals    []analytics.TotalsRow  `json:"totals,omitempty"`
	Rankings  []analytics.RankingRow `json:"rankings,omitempty"`
}

// PeriodAggregate fetches every week in [startWeek, endWeek] through the
// snapshot cache, bounded by the worker count, and aggregates the stat
// lines. Any week failing to load fails the whole request: a partially
// aggregated period would be silently wrong.
func (s *AnalyticsService) PeriodAggregate(ctx context.Context, leagueKey string, startWeek, endWeek int, view string) (PeriodResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.PeriodAggregate")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return PeriodResult{}, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}
	view = strings.TrimSpace(strings.ToLower(view))
	if view == "" {
		view = PeriodViewTotals
	}
	if view != PeriodViewTotals && view != PeriodViewRankings {
		return PeriodResult{}, fmt.Errorf("%w: view must be %q or %q", ErrInvalidInput, PeriodViewTotals, PeriodViewRankings)
	}
	if err := analytics.ValidateWeekRange(startWeek, endWeek); err != nil {
		return PeriodResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	scoreboards := make([]matchup.Scoreboard, endWeek-startWeek+1)
	fetch := pool.New().WithMaxGoroutines(s.fetchWorkers).WithContext(ctx).WithCancelOnError()
	for week := startWeek; week <= endWeek; week++ {
		fetch.Go(func(ctx context.Context) error {
			sb, _, err := s.scoreboards.ScoreboardSnapshot(ctx, leagueKey, week, false)
			if err != nil {
				return fmt.Errorf("week %d scoreboard: %w", week, err)
			}
			scoreboards[week-startWeek] = sb
			return nil
		})
	}
	if err := fetch.Wait(); err != nil {
		return PeriodResult{}, err
	}

	aggregated, err := analytics.AggregateWeeks(scoreboards, startWeek, endWeek)
	if err != nil {
		return PeriodResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	result := PeriodResult{StartWeek: startWeek, EndWeek: endWeek, View: view}
	switch view {
	case PeriodViewRankings:
		result.Rankings = analytics.BuildRankings(aggregated)
	default:
		result.Totals = analytics.BuildTotals(aggregated)
	}
	return result, nil
}
