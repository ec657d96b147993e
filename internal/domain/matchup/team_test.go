package matchup

import "testing"

func TestParseTeam_AttributesAndStats(t *testing.T) {
	t.Parallel()

	snapshot := ParseTeam(teamBlock("428.l.1.t.3", "Ball Hogs", map[string]string{
		"5":       ".448",
		"9004003": "500/1000",
		"12":      "100",
		"19":      "10",
	}))

	if snapshot.TeamKey != "428.l.1.t.3" {
		t.Fatalf("expected team key, got=%q", snapshot.TeamKey)
	}
	if snapshot.Name != "Ball Hogs" {
		t.Fatalf("expected team name, got=%q", snapshot.Name)
	}
	if snapshot.LogoURL != "https://img.example/logo3.png" {
		t.Fatalf("expected first logo url, got=%q", snapshot.LogoURL)
	}

	if got := snapshot.Stats["FG%"]; got != 0.448 {
		t.Fatalf("expected FG%%=0.448, got=%v", got)
	}
	if got := snapshot.Stats["PTS"]; got != 100.0 {
		t.Fatalf("expected PTS=100, got=%v", got)
	}
	if got := snapshot.Stats["TO"]; got != 10.0 {
		t.Fatalf("expected TO=10, got=%v", got)
	}
}

func TestParseTeam_FractionStatSplits(t *testing.T) {
	t.Parallel()

	snapshot := ParseTeam(teamBlock("428.l.1.t.1", "Splitters", map[string]string{
		"9004003": "500/1000",
		"9007006": "/",
	}))

	if got := snapshot.Stats["FGM"]; got != 500 {
		t.Fatalf("expected FGM=500, got=%v", got)
	}
	if got := snapshot.Stats["FGA"]; got != 1000 {
		t.Fatalf("expected FGA=1000, got=%v", got)
	}
	if _, ok := snapshot.Stats["FGM/FGA"]; ok {
		t.Fatalf("expected no residual compound category")
	}
	if got := snapshot.Stats["FTM"]; got != 0 {
		t.Fatalf("expected empty half to coerce to 0, got=%v", got)
	}
	if got := snapshot.Stats["FTA"]; got != 0 {
		t.Fatalf("expected empty half to coerce to 0, got=%v", got)
	}
}

func TestParseTeam_NonNumericValuePassesThrough(t *testing.T) {
	t.Parallel()

	snapshot := ParseTeam(teamBlock("428.l.1.t.2", "Weird Wire", map[string]string{
		"12": "DNP",
	}))

	if got := snapshot.Stats["PTS"]; got != "DNP" {
		t.Fatalf("expected raw passthrough, got=%v", got)
	}
}

func TestParseTeam_WinProbabilityAndPointsTotal(t *testing.T) {
	t.Parallel()

	block := teamBlock("428.l.1.t.4", "Probable", nil)
	block = append(block, map[string]any{"win_probability": 0.61})
	block = append(block, map[string]any{
		"team_points": map[string]any{"coverage_type": "week", "total": "5"},
	})

	snapshot := ParseTeam(block)
	if snapshot.WinProbability != 0.61 {
		t.Fatalf("expected win probability 0.61, got=%v", snapshot.WinProbability)
	}
	if snapshot.PointsTotal != 5 {
		t.Fatalf("expected points total 5, got=%v", snapshot.PointsTotal)
	}
}

func TestParseTeam_MalformedBlockDegrades(t *testing.T) {
	t.Parallel()

	snapshot := ParseTeam("not a team block")
	if snapshot.TeamKey != "" || snapshot.Name != "" {
		t.Fatalf("expected zero identity, got=%+v", snapshot)
	}
	if len(snapshot.Stats) != 0 {
		t.Fatalf("expected empty stats, got=%v", snapshot.Stats)
	}
}

// teamBlock builds a raw team node the way the upstream scoreboard encodes
// it: attribute list first, stats container second.
func teamBlock(teamKey, name string, statValues map[string]string) []any {
	stats := make([]any, 0, len(statValues))
	for id, value := range statValues {
		stats = append(stats, map[string]any{
			"stat": map[string]any{"stat_id": id, "value": value},
		})
	}

	return []any{
		[]any{
			map[string]any{"team_key": teamKey},
			map[string]any{"team_id": "3"},
			map[string]any{"name": name},
			map[string]any{
				"team_logos": []any{
					map[string]any{
						"team_logo": map[string]any{
							"size": "large",
							"url":  "https://img.example/logo3.png",
						},
					},
				},
			},
		},
		map[string]any{
			"team_stats": map[string]any{
				"coverage_type": "week",
				"week":          "2",
				"stats":         stats,
			},
		},
	}
}
