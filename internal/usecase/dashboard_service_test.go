package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/league"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/standings"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/transaction"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/logging"
)

type stubProvider struct {
	info         map[string]any
	standings    map[string]any
	scoreboard   map[string]any
	transactions map[string]any
	userLeagues  map[string]any
	err          error

	infoCalls        int
	standingsCalls   int
	scoreboardCalls  int
	scoreboardWeeks  []int
	transactionCalls int
	userLeagueCalls  int
}

func (p *stubProvider) GetLeagueInfo(_ context.Context, _ string) (map[string]any, error) {
	p.infoCalls++
	if p.err != nil {
		return nil, p.err
	}
	return p.info, nil
}

func (p *stubProvider) GetLeagueStandings(_ context.Context, _ string) (map[string]any, error) {
	p.standingsCalls++
	if p.err != nil {
		return nil, p.err
	}
	return p.standings, nil
}

func (p *stubProvider) GetLeagueScoreboard(_ context.Context, _ string, week int) (map[string]any, error) {
	p.scoreboardCalls++
	p.scoreboardWeeks = append(p.scoreboardWeeks, week)
	if p.err != nil {
		return nil, p.err
	}
	return p.scoreboard, nil
}

func (p *stubProvider) GetLeagueTransactions(_ context.Context, _ string, _ int) (map[string]any, error) {
	p.transactionCalls++
	if p.err != nil {
		return nil, p.err
	}
	return p.transactions, nil
}

func (p *stubProvider) GetUserLeagues(_ context.Context) (map[string]any, error) {
	p.userLeagueCalls++
	if p.err != nil {
		return nil, p.err
	}
	return p.userLeagues, nil
}

type stubSnapshotRepo struct {
	rows      map[string]snapshot.Snapshot
	upserts   []snapshot.Snapshot
	getErr    error
	upsertErr error
}

func newStubSnapshotRepo() *stubSnapshotRepo {
	return &stubSnapshotRepo{rows: map[string]snapshot.Snapshot{}}
}

func snapRowKey(leagueKey string, week int, dataType string) string {
	return fmt.Sprintf("%s|%d|%s", leagueKey, week, dataType)
}

func (r *stubSnapshotRepo) Get(_ context.Context, leagueKey string, week int, dataType string) (snapshot.Snapshot, bool, error) {
	if r.getErr != nil {
		return snapshot.Snapshot{}, false, r.getErr
	}
	snap, ok := r.rows[snapRowKey(leagueKey, week, dataType)]
	return snap, ok, nil
}

func (r *stubSnapshotRepo) Upsert(_ context.Context, snap snapshot.Snapshot) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.rows[snapRowKey(snap.LeagueKey, snap.Week, snap.DataType)] = snap
	r.upserts = append(r.upserts, snap)
	return nil
}

type stubLeagueRepo struct {
	rows      map[string]league.League
	upserts   []league.League
	listErr   error
	upsertErr error
}

func newStubLeagueRepo() *stubLeagueRepo {
	return &stubLeagueRepo{rows: map[string]league.League{}}
}

func (r *stubLeagueRepo) List(_ context.Context) ([]league.League, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]league.League, 0, len(r.rows))
	for _, l := range r.rows {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LeagueKey < out[j].LeagueKey })
	return out, nil
}

func (r *stubLeagueRepo) GetByKey(_ context.Context, leagueKey string) (league.League, bool, error) {
	l, ok := r.rows[leagueKey]
	return l, ok, nil
}

func (r *stubLeagueRepo) Upsert(_ context.Context, l league.League) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.rows[l.LeagueKey] = l
	r.upserts = append(r.upserts, l)
	return nil
}

type stubTransactionRepo struct {
	mu        sync.Mutex
	records   map[string]transaction.Record
	stored    [][]transaction.Record
	listErr   error
	storeErr  error
	idsErr    error
	listCalls int
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{records: map[string]transaction.Record{}}
}

func (r *stubTransactionRepo) ExistingIDs(_ context.Context, leagueKey string) (map[string]struct{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.idsErr != nil {
		return nil, r.idsErr
	}
	ids := map[string]struct{}{}
	for _, rec := range r.records {
		if rec.LeagueKey == leagueKey {
			ids[rec.TransactionID] = struct{}{}
		}
	}
	return ids, nil
}

func (r *stubTransactionRepo) StoreBatch(_ context.Context, records []transaction.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.storeErr != nil {
		return r.storeErr
	}
	for _, rec := range records {
		r.records[rec.LeagueKey+"|"+rec.TransactionID] = rec
	}
	r.stored = append(r.stored, records)
	return nil
}

func (r *stubTransactionRepo) List(_ context.Context, leagueKey string, filter transaction.Filter) ([]transaction.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []transaction.Record{}
	for _, rec := range r.records {
		if rec.LeagueKey != leagueKey {
			continue
		}
		if filter.Type != "" && rec.Type != filter.Type {
			continue
		}
		if filter.TeamKey != "" && !recordTouchesTeam(rec, filter.TeamKey) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []transaction.Record{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func recordTouchesTeam(rec transaction.Record, teamKey string) bool {
	if rec.TraderTeamKey == teamKey || rec.TradeeTeamKey == teamKey {
		return true
	}
	for _, movement := range rec.Players {
		if movement.SourceTeamKey == teamKey || movement.DestinationTeamKey == teamKey {
			return true
		}
	}
	return false
}

func (r *stubTransactionRepo) CountByLeague(_ context.Context, leagueKey string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, rec := range r.records {
		if rec.LeagueKey == leagueKey {
			count++
		}
	}
	return count, nil
}

func newDashboardServiceForTest(provider FantasyProvider, snapRepo snapshot.Repository, leagueRepo league.Repository, now time.Time) *DashboardService {
	svc := NewDashboardService(provider, snapRepo, leagueRepo, 15*time.Minute, logging.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func leagueHeaderNode(week int) map[string]any {
	return map[string]any{
		"league_key":   "428.l.1",
		"league_id":    "1",
		"name":         "Hardwood Heroes",
		"num_teams":    float64(10),
		"current_week": float64(week),
		"start_week":   "1",
		"end_week":     "19",
		"season":       "2025",
		"scoring_type": "head",
	}
}

func leagueInfoFixture(week int) map[string]any {
	return map[string]any{
		"fantasy_content": map[string]any{
			"league": []any{leagueHeaderNode(week)},
		},
	}
}

func standingsFixture() map[string]any {
	teamNode := func(key, name, rank, wins, losses string) map[string]any {
		return map[string]any{
			"team": []any{
				[]any{
					map[string]any{"team_key": key},
					map[string]any{"name": name},
				},
				map[string]any{
					"team_standings": map[string]any{
						"rank": rank,
						"outcome_totals": map[string]any{
							"wins":       wins,
							"losses":     losses,
							"ties":       "0",
							"percentage": "",
						},
					},
				},
			},
		}
	}
	return map[string]any{
		"fantasy_content": map[string]any{
			"league": []any{
				leagueHeaderNode(9),
				map[string]any{
					"standings": []any{
						map[string]any{
							"teams": map[string]any{
								"count": float64(2),
								"0":     teamNode("428.l.1.t.1", "Alpha", "1", "5", "2"),
								"1":     teamNode("428.l.1.t.2", "Beta", "2", "2", "5"),
							},
						},
					},
				},
			},
		},
	}
}

func scoreboardFixture(week int) map[string]any {
	return map[string]any{
		"fantasy_content": map[string]any{
			"league": []any{
				leagueHeaderNode(week),
				map[string]any{
					"scoreboard": map[string]any{
						"week": strconv.Itoa(week),
						"0":    map[string]any{"matchups": map[string]any{"count": float64(0)}},
					},
				},
			},
		},
	}
}

func TestDashboardService_GetStandings_CacheFlow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC)

	t.Run("miss fetches, stores and reports fresh", func(t *testing.T) {
		provider := &stubProvider{standings: standingsFixture()}
		snapRepo := newStubSnapshotRepo()
		leagueRepo := newStubLeagueRepo()
		svc := newDashboardServiceForTest(provider, snapRepo, leagueRepo, now)

		payload, meta, err := svc.GetStandings(context.Background(), "428.l.1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		parsed, ok := payload.(standings.Standings)
		if !ok {
			t.Fatalf("expected standings payload, got %T", payload)
		}
		if len(parsed.Teams) != 2 || parsed.Teams[0].Name != "Alpha" {
			t.Fatalf("unexpected standings teams: %+v", parsed.Teams)
		}
		if meta.Cached || meta.CacheAgeMinutes != 0 {
			t.Fatalf("fresh fetch must not report cached: %+v", meta)
		}
		if meta.LastUpdated != now.Format(time.RFC3339) {
			t.Fatalf("unexpected last_updated: got=%q want=%q", meta.LastUpdated, now.Format(time.RFC3339))
		}
		if provider.standingsCalls != 1 {
			t.Fatalf("expected one upstream call, got=%d", provider.standingsCalls)
		}
		if len(snapRepo.upserts) != 1 || snapRepo.upserts[0].DataType != snapshot.DataTypeStandings || snapRepo.upserts[0].Week != 0 {
			t.Fatalf("unexpected snapshot upserts: %+v", snapRepo.upserts)
		}
		if len(leagueRepo.upserts) != 1 || leagueRepo.upserts[0].LeagueKey != "428.l.1" {
			t.Fatalf("expected league directory upsert, got=%+v", leagueRepo.upserts)
		}
	})

	t.Run("fresh snapshot serves without upstream call", func(t *testing.T) {
		provider := &stubProvider{standings: standingsFixture()}
		snapRepo := newStubSnapshotRepo()
		fetchedAt := now.Add(-5 * time.Minute)
		snapRepo.rows[snapRowKey("428.l.1", 0, snapshot.DataTypeStandings)] = snapshot.Snapshot{
			LeagueKey: "428.l.1",
			DataType:  snapshot.DataTypeStandings,
			Payload:   map[string]any{"teams": []any{}},
			FetchedAt: fetchedAt,
		}
		svc := newDashboardServiceForTest(provider, snapRepo, newStubLeagueRepo(), now)

		_, meta, err := svc.GetStandings(context.Background(), "428.l.1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.standingsCalls != 0 {
			t.Fatalf("expected cached serve, upstream calls=%d", provider.standingsCalls)
		}
		if !meta.Cached || meta.CacheAgeMinutes != 5.0 {
			t.Fatalf("unexpected cache meta: %+v", meta)
		}
		if meta.LastUpdated != fetchedAt.Format(time.RFC3339) {
			t.Fatalf("unexpected last_updated: got=%q want=%q", meta.LastUpdated, fetchedAt.Format(time.RFC3339))
		}
	})

	t.Run("stale snapshot refetches", func(t *testing.T) {
		provider := &stubProvider{standings: standingsFixture()}
		snapRepo := newStubSnapshotRepo()
		snapRepo.rows[snapRowKey("428.l.1", 0, snapshot.DataTypeStandings)] = snapshot.Snapshot{
			LeagueKey: "428.l.1",
			DataType:  snapshot.DataTypeStandings,
			Payload:   map[string]any{"teams": []any{}},
			FetchedAt: now.Add(-20 * time.Minute),
		}
		svc := newDashboardServiceForTest(provider, snapRepo, newStubLeagueRepo(), now)

		_, meta, err := svc.GetStandings(context.Background(), "428.l.1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.standingsCalls != 1 {
			t.Fatalf("stale snapshot must refetch, upstream calls=%d", provider.standingsCalls)
		}
		if meta.Cached {
			t.Fatalf("refetched payload must not report cached: %+v", meta)
		}
	})

	t.Run("refresh bypasses fresh snapshot", func(t *testing.T) {
		provider := &stubProvider{standings: standingsFixture()}
		snapRepo := newStubSnapshotRepo()
		snapRepo.rows[snapRowKey("428.l.1", 0, snapshot.DataTypeStandings)] = snapshot.Snapshot{
			LeagueKey: "428.l.1",
			DataType:  snapshot.DataTypeStandings,
			Payload:   map[string]any{"teams": []any{}},
			FetchedAt: now.Add(-time.Minute),
		}
		svc := newDashboardServiceForTest(provider, snapRepo, newStubLeagueRepo(), now)

		_, _, err := svc.GetStandings(context.Background(), "428.l.1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.standingsCalls != 1 {
			t.Fatalf("refresh must go upstream, calls=%d", provider.standingsCalls)
		}
	})

	t.Run("requires league key", func(t *testing.T) {
		svc := newDashboardServiceForTest(&stubProvider{}, newStubSnapshotRepo(), newStubLeagueRepo(), now)

		_, _, err := svc.GetStandings(context.Background(), "  ", false)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got=%v", err)
		}
	})

	t.Run("upstream failure surfaces", func(t *testing.T) {
		provider := &stubProvider{err: fmt.Errorf("%w: upstream 502", ErrDependencyUnavailable)}
		svc := newDashboardServiceForTest(provider, newStubSnapshotRepo(), newStubLeagueRepo(), now)

		_, _, err := svc.GetStandings(context.Background(), "428.l.1", false)
		if !errors.Is(err, ErrDependencyUnavailable) {
			t.Fatalf("expected dependency error, got=%v", err)
		}
	})
}

func TestDashboardService_CacheAgeRoundsToOneDecimal(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC)
	provider := &stubProvider{}
	snapRepo := newStubSnapshotRepo()
	snapRepo.rows[snapRowKey("428.l.1", 0, snapshot.DataTypeStandings)] = snapshot.Snapshot{
		LeagueKey: "428.l.1",
		DataType:  snapshot.DataTypeStandings,
		Payload:   map[string]any{},
		FetchedAt: now.Add(-(7*time.Minute + 20*time.Second)),
	}
	svc := newDashboardServiceForTest(provider, snapRepo, newStubLeagueRepo(), now)

	_, meta, err := svc.GetStandings(context.Background(), "428.l.1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.CacheAgeMinutes != 7.3 {
		t.Fatalf("expected age 7.3 minutes, got=%v", meta.CacheAgeMinutes)
	}
}

func TestDashboardService_GetScoreboard_WeekHandling(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC)

	t.Run("current week resolves through cached header", func(t *testing.T) {
		provider := &stubProvider{scoreboard: scoreboardFixture(9)}
		snapRepo := newStubSnapshotRepo()
		snapRepo.rows[snapRowKey("428.l.1", 0, snapshot.DataTypeLeagueInfo)] = snapshot.Snapshot{
			LeagueKey: "428.l.1",
			DataType:  snapshot.DataTypeLeagueInfo,
			Payload:   league.Info{LeagueKey: "428.l.1", CurrentWeek: 9},
			FetchedAt: now.Add(-time.Minute),
		}
		snapRepo.rows[snapRowKey("428.l.1", 9, snapshot.DataTypeScoreboard)] = snapshot.Snapshot{
			LeagueKey: "428.l.1",
			Week:      9,
			DataType:  snapshot.DataTypeScoreboard,
			Payload:   map[string]any{"week": float64(9)},
			FetchedAt: now.Add(-2 * time.Minute),
		}
		svc := newDashboardServiceForTest(provider, snapRepo, newStubLeagueRepo(), now)

		_, meta, err := svc.GetScoreboard(context.Background(), "428.l.1", 0, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.scoreboardCalls != 0 {
			t.Fatalf("expected cached serve, upstream calls=%d", provider.scoreboardCalls)
		}
		if !meta.Cached {
			t.Fatalf("expected cached meta, got=%+v", meta)
		}
	})

	t.Run("stores fetched scoreboard under its actual week", func(t *testing.T) {
		provider := &stubProvider{scoreboard: scoreboardFixture(10)}
		snapRepo := newStubSnapshotRepo()
		svc := newDashboardServiceForTest(provider, snapRepo, newStubLeagueRepo(), now)

		payload, _, err := svc.GetScoreboard(context.Background(), "428.l.1", 0, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(provider.scoreboardWeeks) != 1 || provider.scoreboardWeeks[0] != 0 {
			t.Fatalf("expected upstream asked for current week, got=%v", provider.scoreboardWeeks)
		}
		sb, ok := payload.(matchup.Scoreboard)
		if !ok || sb.Week != 10 {
			t.Fatalf("unexpected scoreboard payload: %T %+v", payload, payload)
		}
		if len(snapRepo.upserts) != 1 || snapRepo.upserts[0].Week != 10 {
			t.Fatalf("expected snapshot stored under week 10, got=%+v", snapRepo.upserts)
		}
	})

	t.Run("explicit week hits its own row", func(t *testing.T) {
		provider := &stubProvider{scoreboard: scoreboardFixture(4)}
		snapRepo := newStubSnapshotRepo()
		snapRepo.rows[snapRowKey("428.l.1", 4, snapshot.DataTypeScoreboard)] = snapshot.Snapshot{
			LeagueKey: "428.l.1",
			Week:      4,
			DataType:  snapshot.DataTypeScoreboard,
			Payload:   map[string]any{"week": float64(4)},
			FetchedAt: now.Add(-time.Minute),
		}
		svc := newDashboardServiceForTest(provider, snapRepo, newStubLeagueRepo(), now)

		_, meta, err := svc.GetScoreboard(context.Background(), "428.l.1", 4, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.scoreboardCalls != 0 || !meta.Cached {
			t.Fatalf("expected cached serve for explicit week, calls=%d meta=%+v", provider.scoreboardCalls, meta)
		}
	})

	t.Run("rejects negative week", func(t *testing.T) {
		svc := newDashboardServiceForTest(&stubProvider{}, newStubSnapshotRepo(), newStubLeagueRepo(), now)

		_, _, err := svc.GetScoreboard(context.Background(), "428.l.1", -1, false)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got=%v", err)
		}
	})
}

func TestDashboardService_ScoreboardSnapshot_ConvertsStoredPayload(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC)
	provider := &stubProvider{}
	snapRepo := newStubSnapshotRepo()
	// Shape a payload the way it comes back from postgres: generic maps, not
	// the normalized structs.
	snapRepo.rows[snapRowKey("428.l.1", 3, snapshot.DataTypeScoreboard)] = snapshot.Snapshot{
		LeagueKey: "428.l.1",
		Week:      3,
		DataType:  snapshot.DataTypeScoreboard,
		Payload: map[string]any{
			"league": map[string]any{},
			"week":   float64(3),
			"matchups": []any{
				map[string]any{
					"week":   float64(3),
					"status": "postevent",
					"teams": []any{
						map[string]any{"team_key": "428.l.1.t.1", "team_name": "Alpha", "stats": map[string]any{"PTS": float64(400)}},
						map[string]any{"team_key": "428.l.1.t.2", "team_name": "Beta", "stats": map[string]any{"PTS": float64(380)}},
					},
				},
			},
		},
		FetchedAt: now.Add(-time.Minute),
	}
	svc := newDashboardServiceForTest(provider, snapRepo, newStubLeagueRepo(), now)

	sb, meta, err := svc.ScoreboardSnapshot(context.Background(), "428.l.1", 3, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !meta.Cached {
		t.Fatalf("expected cached meta, got=%+v", meta)
	}
	if sb.Week != 3 || len(sb.Matchups) != 1 || len(sb.Matchups[0].Teams) != 2 {
		t.Fatalf("unexpected converted scoreboard: %+v", sb)
	}
	if sb.Matchups[0].Teams[0].Stats["PTS"] != float64(400) {
		t.Fatalf("unexpected converted stats: %+v", sb.Matchups[0].Teams[0].Stats)
	}
}

func TestDashboardService_GetLeagueInfo(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC)

	t.Run("header fetch upserts directory", func(t *testing.T) {
		provider := &stubProvider{info: leagueInfoFixture(9)}
		leagueRepo := newStubLeagueRepo()
		svc := newDashboardServiceForTest(provider, newStubSnapshotRepo(), leagueRepo, now)

		payload, _, err := svc.GetLeagueInfo(context.Background(), "428.l.1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		info, ok := payload.(league.Info)
		if !ok || info.LeagueKey != "428.l.1" || info.CurrentWeek != 9 {
			t.Fatalf("unexpected info payload: %T %+v", payload, payload)
		}
		if len(leagueRepo.upserts) != 1 || leagueRepo.upserts[0].Name != "Hardwood Heroes" {
			t.Fatalf("expected directory upsert, got=%+v", leagueRepo.upserts)
		}
	})

	t.Run("missing header serves empty object", func(t *testing.T) {
		provider := &stubProvider{info: map[string]any{"fantasy_content": map[string]any{}}}
		leagueRepo := newStubLeagueRepo()
		svc := newDashboardServiceForTest(provider, newStubSnapshotRepo(), leagueRepo, now)

		payload, _, err := svc.GetLeagueInfo(context.Background(), "428.l.1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		empty, ok := payload.(map[string]any)
		if !ok || len(empty) != 0 {
			t.Fatalf("expected empty object, got=%T %+v", payload, payload)
		}
		if len(leagueRepo.upserts) != 0 {
			t.Fatalf("missing header must not touch directory, got=%+v", leagueRepo.upserts)
		}
	})
}

func TestPayloadAs(t *testing.T) {
	t.Parallel()

	t.Run("passes typed payloads through", func(t *testing.T) {
		in := matchup.Scoreboard{Week: 7}
		out, err := payloadAs[matchup.Scoreboard](in)
		if err != nil || out.Week != 7 {
			t.Fatalf("unexpected passthrough: out=%+v err=%v", out, err)
		}
	})

	t.Run("converts generic maps", func(t *testing.T) {
		in := map[string]any{"current_week": float64(12), "league_key": "428.l.1"}
		out, err := payloadAs[league.Info](in)
		if err != nil || out.CurrentWeek != 12 || out.LeagueKey != "428.l.1" {
			t.Fatalf("unexpected conversion: out=%+v err=%v", out, err)
		}
	})
}
