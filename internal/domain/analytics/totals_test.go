package analytics

import (
	"testing"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/matchup"
)

func TestBuildTotals_FormatsByCategoryKind(t *testing.T) {
	t.Parallel()

	rows := BuildTotals([]matchup.TeamSnapshot{
		{
			Name:    "Alpha",
			TeamKey: "428.l.1.t.1",
			Stats: map[string]any{
				"FG%":  0.448,
				"FT%":  0.8,
				"PTS":  100.0,
				"REB":  45.5,
				"AST":  "",
				"STL":  "DNP",
				"3PTM": 7.0,
			},
		},
	})

	if len(rows) != 1 {
		t.Fatalf("expected one row, got=%d", len(rows))
	}
	row := rows[0]

	cases := map[string]string{
		"FG%":  "0.448",
		"FT%":  "0.800",
		"PTS":  "100",
		"REB":  "45.5",
		"AST":  "-",
		"STL":  "DNP",
		"3PTM": "7",
		"BLK":  "-",
	}
	for category, want := range cases {
		if got := row.Categories[category]; got != want {
			t.Fatalf("category %s: expected %q, got=%q", category, want, got)
		}
	}
}

func TestBuildTotals_CarriesIdentityColumns(t *testing.T) {
	t.Parallel()

	rows := BuildTotals([]matchup.TeamSnapshot{
		{
			Name:           "Alpha",
			TeamKey:        "428.l.1.t.1",
			LogoURL:        "https://img.example/a.png",
			WinProbability: 0.61,
			PointsTotal:    5,
			Stats:          map[string]any{},
		},
	})

	row := rows[0]
	if row.TeamName != "Alpha" || row.TeamKey != "428.l.1.t.1" {
		t.Fatalf("unexpected identity: %+v", row)
	}
	if row.WinProbability != 0.61 || row.PointsTotal != 5 {
		t.Fatalf("unexpected probability/points: %+v", row)
	}
}

func TestFlatten_PreservesMatchupOrder(t *testing.T) {
	t.Parallel()

	sb := matchup.Scoreboard{
		Matchups: []matchup.Matchup{
			{Teams: []matchup.TeamSnapshot{{Name: "a"}, {Name: "b"}}},
			{Teams: []matchup.TeamSnapshot{{Name: "c"}, {Name: "d"}}},
		},
	}

	teams := Flatten(sb)
	if len(teams) != 4 {
		t.Fatalf("expected 4 teams, got=%d", len(teams))
	}
	for i, want := range []string{"a", "b", "c", "d"} {
		if teams[i].Name != want {
			t.Fatalf("position %d: expected %s, got=%s", i, want, teams[i].Name)
		}
	}
}
