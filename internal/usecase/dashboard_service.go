package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/league"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/standings"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/logging"
)

// FantasyProvider is the upstream fantasy API surface the services consume.
// external/yahoo.Client satisfies it.
type FantasyProvider interface {
	GetLeagueInfo(ctx context.Context, leagueKey string) (map[string]any, error)
	GetLeagueStandings(ctx context.Context, leagueKey string) (map[string]any, error)
	GetLeagueScoreboard(ctx context.Context, leagueKey string, week int) (map[string]any, error)
	GetLeagueTransactions(ctx context.Context, leagueKey string, count int) (map[string]any, error)
	GetUserLeagues(ctx context.Context) (map[string]any, error)
}

// CacheMeta tells clients how a payload was served: from the snapshot store
// (with its age) or freshly fetched.
type CacheMeta struct {
	Cached          bool    `json:"cached"`
	CacheAgeMinutes float64 `json:"cache_age_minutes"`
	LastUpdated     string  `json:"last_updated"`
}

const defaultCacheTTL = 15 * time.Minute

// DashboardService serves normalized league payloads, going upstream only
// when the snapshot store has nothing fresh enough.
type DashboardService struct {
	provider     FantasyProvider
	snapshotRepo snapshot.Repository
	leagueRepo   league.Repository
	cacheTTL     time.Duration
	logger       *logging.Logger
	now          func() time.Time
}

func NewDashboardService(
	provider FantasyProvider,
	snapshotRepo snapshot.Repository,
	leagueRepo league.Repository,
	cacheTTL time.Duration,
	logger *logging.Logger,
) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardService{
		provider:     provider,
		snapshotRepo: snapshotRepo,
		leagueRepo:   leagueRepo,
		cacheTTL:     cacheTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// GetLeagueInfo serves the normalized league header. A payload without a
// league node is served as an empty object, never an error.
func (s *DashboardService) GetLeagueInfo(ctx context.Context, leagueKey string, refresh bool) (any, CacheMeta, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetLeagueInfo")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return nil, CacheMeta{}, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}

	return s.getOrFetch(ctx, leagueKey, 0, snapshot.DataTypeLeagueInfo, refresh, func(ctx context.Context) (any, error) {
		root, err := s.provider.GetLeagueInfo(ctx, leagueKey)
		if err != nil {
			return nil, fmt.Errorf("fetch league info: %w", err)
		}
		info, ok := league.ParseInfo(root)
		if !ok {
			return map[string]any{}, nil
		}
		s.upsertLeagueHeader(ctx, info)
		return info, nil
	})
}

// GetStandings serves the normalized standings table for a league.
func (s *DashboardService) GetStandings(ctx context.Context, leagueKey string, refresh bool) (any, CacheMeta, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetStandings")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return nil, CacheMeta{}, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}

	return s.getOrFetch(ctx, leagueKey, 0, snapshot.DataTypeStandings, refresh, func(ctx context.Context) (any, error) {
		root, err := s.provider.GetLeagueStandings(ctx, leagueKey)
		if err != nil {
			return nil, fmt.Errorf("fetch standings: %w", err)
		}
		parsed := standings.Parse(root)
		if info, ok := parsed.League.(league.Info); ok {
			s.upsertLeagueHeader(ctx, info)
		}
		return parsed, nil
	})
}

// GetScoreboard serves the normalized weekly scoreboard. Week 0 means the
// league's current week; it is resolved through the cached league header
// when possible so repeat current-week reads stay off the upstream.
func (s *DashboardService) GetScoreboard(ctx context.Context, leagueKey string, week int, refresh bool) (any, CacheMeta, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetScoreboard")
	defer span.End()

	return s.scoreboardPayload(ctx, leagueKey, week, refresh)
}

// ScoreboardSnapshot is GetScoreboard with a typed result, for callers that
// compute on the scoreboard instead of passing it through.
func (s *DashboardService) ScoreboardSnapshot(ctx context.Context, leagueKey string, week int, refresh bool) (matchup.Scoreboard, CacheMeta, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.ScoreboardSnapshot")
	defer span.End()

	payload, meta, err := s.scoreboardPayload(ctx, leagueKey, week, refresh)
	if err != nil {
		return matchup.Scoreboard{}, CacheMeta{}, err
	}
	sb, err := payloadAs[matchup.Scoreboard](payload)
	if err != nil {
		return matchup.Scoreboard{}, CacheMeta{}, fmt.Errorf("decode scoreboard snapshot: %w", err)
	}
	return sb, meta, nil
}

func (s *DashboardService) scoreboardPayload(ctx context.Context, leagueKey string, week int, refresh bool) (any, CacheMeta, error) {
	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return nil, CacheMeta{}, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}
	if week < 0 {
		return nil, CacheMeta{}, fmt.Errorf("%w: week must not be negative", ErrInvalidInput)
	}

	lookupWeek := week
	if lookupWeek == 0 {
		lookupWeek = s.resolveCurrentWeek(ctx, leagueKey)
	}

	if !refresh && lookupWeek > 0 {
		snap, ok, err := s.snapshotRepo.Get(ctx, leagueKey, lookupWeek, snapshot.DataTypeScoreboard)
		if err != nil {
			return nil, CacheMeta{}, fmt.Errorf("get scoreboard snapshot: %w", err)
		}
		if ok && snap.Fresh(s.now(), s.cacheTTL) {
			return snap.Payload, s.servedFromCache(snap), nil
		}
	}

	root, err := s.provider.GetLeagueScoreboard(ctx, leagueKey, week)
	if err != nil {
		return nil, CacheMeta{}, fmt.Errorf("fetch scoreboard: %w", err)
	}
	parsed := matchup.ParseScoreboard(root)
	if info, ok := parsed.League.(league.Info); ok {
		s.upsertLeagueHeader(ctx, info)
	}

	// Store under the week the payload actually covers so explicit-week
	// reads hit the same row a current-week fetch wrote.
	storeWeek := parsed.Week
	if storeWeek == 0 {
		storeWeek = lookupWeek
	}
	meta := s.storeSnapshot(ctx, snapshot.Snapshot{
		LeagueKey: leagueKey,
		Week:      storeWeek,
		DataType:  snapshot.DataTypeScoreboard,
		Payload:   parsed,
	})
	return parsed, meta, nil
}

func (s *DashboardService) getOrFetch(
	ctx context.Context,
	leagueKey string,
	week int,
	dataType string,
	refresh bool,
	fetch func(context.Context) (any, error),
) (any, CacheMeta, error) {
	if !refresh {
		snap, ok, err := s.snapshotRepo.Get(ctx, leagueKey, week, dataType)
		if err != nil {
			return nil, CacheMeta{}, fmt.Errorf("get %s snapshot: %w", dataType, err)
		}
		if ok && snap.Fresh(s.now(), s.cacheTTL) {
			return snap.Payload, s.servedFromCache(snap), nil
		}
	}

	payload, err := fetch(ctx)
	if err != nil {
		return nil, CacheMeta{}, err
	}

	meta := s.storeSnapshot(ctx, snapshot.Snapshot{
		LeagueKey: leagueKey,
		Week:      week,
		DataType:  dataType,
		Payload:   payload,
	})
	return payload, meta, nil
}

// storeSnapshot persists a freshly fetched payload. Serving the payload
// matters more than persisting it, so upsert failures only log.
func (s *DashboardService) storeSnapshot(ctx context.Context, snap snapshot.Snapshot) CacheMeta {
	snap.FetchedAt = s.now().UTC()
	if err := s.snapshotRepo.Upsert(ctx, snap); err != nil {
		s.logger.WarnContext(ctx, "snapshot upsert failed",
			"league_key", snap.LeagueKey,
			"data_type", snap.DataType,
			"week", snap.Week,
			"error", err,
		)
	}
	return CacheMeta{LastUpdated: snap.FetchedAt.Format(time.RFC3339)}
}

func (s *DashboardService) servedFromCache(snap snapshot.Snapshot) CacheMeta {
	meta := CacheMeta{
		Cached:          true,
		CacheAgeMinutes: math.Round(snap.Age(s.now()).Minutes()*10) / 10,
	}
	if !snap.FetchedAt.IsZero() {
		meta.LastUpdated = snap.FetchedAt.UTC().Format(time.RFC3339)
	}
	return meta
}

// resolveCurrentWeek maps week 0 to the league's current week using the
// cached header. Zero means unresolved; the caller falls back to asking the
// upstream for its notion of the current week.
func (s *DashboardService) resolveCurrentWeek(ctx context.Context, leagueKey string) int {
	snap, ok, err := s.snapshotRepo.Get(ctx, leagueKey, 0, snapshot.DataTypeLeagueInfo)
	if err != nil || !ok || !snap.Fresh(s.now(), s.cacheTTL) {
		return 0
	}
	info, err := payloadAs[league.Info](snap.Payload)
	if err != nil {
		return 0
	}
	return info.CurrentWeek
}

// upsertLeagueHeader keeps the league directory current as a side effect of
// dashboard reads. Directory failures never fail the read.
func (s *DashboardService) upsertLeagueHeader(ctx context.Context, info league.Info) {
	if s.leagueRepo == nil || info.LeagueKey == "" {
		return
	}
	if err := s.leagueRepo.Upsert(ctx, league.FromInfo(info, s.now().UTC())); err != nil {
		s.logger.WarnContext(ctx, "league directory upsert failed",
			"league_key", info.LeagueKey,
			"error", err,
		)
	}
}

// payloadAs converts a stored snapshot payload to its normalized type. The
// in-process cache hands back the original struct; payloads read from
// postgres come back as generic maps and take a sonic round-trip.
func payloadAs[T any](payload any) (T, error) {
	if typed, ok := payload.(T); ok {
		return typed, nil
	}
	var out T
	raw, err := sonic.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("encode snapshot payload: %w", err)
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode snapshot payload: %w", err)
	}
	return out, nil
}
