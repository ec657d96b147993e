package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-hoops/internal/platform/logging"
)

func userLeaguesFixture() map[string]any {
	leagueNode := func(key, name string) map[string]any {
		return map[string]any{
			"league": []any{map[string]any{
				"league_key":   key,
				"league_id":    key[len(key)-1:],
				"name":         name,
				"num_teams":    float64(10),
				"current_week": float64(8),
				"start_week":   "1",
				"end_week":     "19",
				"season":       "2025",
				"scoring_type": "head",
			}},
		}
	}
	return map[string]any{
		"fantasy_content": map[string]any{
			"users": map[string]any{
				"count": float64(1),
				"0": map[string]any{
					"user": []any{
						map[string]any{"guid": "ABC123"},
						map[string]any{
							"games": map[string]any{
								"count": float64(1),
								"0": map[string]any{
									"game": []any{
										map[string]any{"game_key": "428"},
										map[string]any{
											"leagues": map[string]any{
												"count": float64(2),
												"0":     leagueNode("428.l.1", "Hardwood Heroes"),
												"1":     leagueNode("428.l.2", "Basement Ballers"),
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestLeagueService_SyncUserLeagues(t *testing.T) {
	t.Parallel()

	t.Run("upserts every parsed league", func(t *testing.T) {
		t.Parallel()
		provider := &stubProvider{userLeagues: userLeaguesFixture()}
		repo := newStubLeagueRepo()
		svc := NewLeagueService(provider, repo, logging.NewNop())
		syncedAt := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return syncedAt }

		rows, err := svc.SyncUserLeagues(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("unexpected league count: got=%d want=2", len(rows))
		}
		if rows[0].LeagueKey != "428.l.1" || rows[1].LeagueKey != "428.l.2" {
			t.Fatalf("leagues should keep upstream order: %+v", rows)
		}
		if rows[0].Name != "Hardwood Heroes" || rows[0].NumTeams != 10 || rows[0].CurrentWeek != 8 {
			t.Fatalf("unexpected league header: %+v", rows[0])
		}
		if !rows[0].LastSyncedAt.Equal(syncedAt) {
			t.Fatalf("unexpected sync stamp: %v", rows[0].LastSyncedAt)
		}
		if len(repo.upserts) != 2 {
			t.Fatalf("unexpected upsert count: %d", len(repo.upserts))
		}
	})

	t.Run("empty payload syncs nothing", func(t *testing.T) {
		t.Parallel()
		provider := &stubProvider{userLeagues: map[string]any{}}
		repo := newStubLeagueRepo()
		svc := NewLeagueService(provider, repo, logging.NewNop())

		rows, err := svc.SyncUserLeagues(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 || len(repo.upserts) != 0 {
			t.Fatalf("expected no synced leagues: rows=%+v upserts=%+v", rows, repo.upserts)
		}
	})

	t.Run("provider failure surfaces", func(t *testing.T) {
		t.Parallel()
		upstream := errors.New("upstream unavailable")
		svc := NewLeagueService(&stubProvider{err: upstream}, newStubLeagueRepo(), logging.NewNop())
		if _, err := svc.SyncUserLeagues(context.Background()); !errors.Is(err, upstream) {
			t.Fatalf("expected upstream error, got %v", err)
		}
	})

	t.Run("upsert failure surfaces", func(t *testing.T) {
		t.Parallel()
		repo := newStubLeagueRepo()
		repo.upsertErr = errors.New("db down")
		svc := NewLeagueService(&stubProvider{userLeagues: userLeaguesFixture()}, repo, logging.NewNop())
		if _, err := svc.SyncUserLeagues(context.Background()); !errors.Is(err, repo.upsertErr) {
			t.Fatalf("expected upsert error, got %v", err)
		}
	})
}

func TestLeagueService_ListLeagues(t *testing.T) {
	t.Parallel()

	t.Run("serves the directory", func(t *testing.T) {
		t.Parallel()
		repo := seededLeagueRepo(t, "428.l.2", "428.l.1")
		svc := NewLeagueService(&stubProvider{}, repo, logging.NewNop())

		rows, err := svc.ListLeagues(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 || rows[0].LeagueKey != "428.l.1" {
			t.Fatalf("unexpected directory rows: %+v", rows)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		t.Parallel()
		repo := newStubLeagueRepo()
		repo.listErr = errors.New("db down")
		svc := NewLeagueService(&stubProvider{}, repo, logging.NewNop())
		if _, err := svc.ListLeagues(context.Background()); !errors.Is(err, repo.listErr) {
			t.Fatalf("expected list error, got %v", err)
		}
	})
}
