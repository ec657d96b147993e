package scoring

import "testing"

func TestCompareStatLines_HigherWinsExceptTurnovers(t *testing.T) {
	t.Parallel()

	comparison, _ := CompareStatLines(map[string]any{"PTS": 100.0}, map[string]any{"PTS": 90.0})
	if comparison["PTS"].Winner != "team1" {
		t.Fatalf("expected PTS winner=team1, got=%s", comparison["PTS"].Winner)
	}

	comparison, _ = CompareStatLines(map[string]any{"TO": 10.0}, map[string]any{"TO": 8.0})
	if comparison["TO"].Winner != "team2" {
		t.Fatalf("expected TO winner=team2, got=%s", comparison["TO"].Winner)
	}
}

func TestCompareStatLines_OnlyComparesPresentCategories(t *testing.T) {
	t.Parallel()

	comparison, score := CompareStatLines(map[string]any{"PTS": 100.0}, map[string]any{"REB": 40.0})

	if len(comparison) != 2 {
		t.Fatalf("expected 2 compared categories, got=%d", len(comparison))
	}
	if comparison["PTS"].Winner != "team1" {
		t.Fatalf("expected one-sided PTS to go to team1, got=%s", comparison["PTS"].Winner)
	}
	if comparison["REB"].Winner != "team2" {
		t.Fatalf("expected one-sided REB to go to team2, got=%s", comparison["REB"].Winner)
	}
	if score.Team1Wins != 1 || score.Team2Wins != 1 || score.Ties != 0 {
		t.Fatalf("expected 1-1-0 score, got=%d-%d-%d", score.Team1Wins, score.Team2Wins, score.Ties)
	}
	if score.Winner != "" {
		t.Fatalf("expected drawn score winner to be empty, got=%q", score.Winner)
	}
}

func TestCompareStatLines_FullLinesCoverEveryCanonicalCategory(t *testing.T) {
	t.Parallel()

	team1 := map[string]any{}
	team2 := map[string]any{}
	for i, category := range CanonicalCategories {
		team1[category] = float64(i + 1)
		team2[category] = float64(i + 1)
	}

	comparison, score := CompareStatLines(team1, team2)
	if len(comparison) != len(CanonicalCategories) {
		t.Fatalf("expected %d categories, got=%d", len(CanonicalCategories), len(comparison))
	}
	if score.Ties != len(CanonicalCategories) {
		t.Fatalf("expected all ties, got=%d", score.Ties)
	}
}

func TestCompareStatLines_NonNumericValuesCountAsZero(t *testing.T) {
	t.Parallel()

	comparison, _ := CompareStatLines(
		map[string]any{"PTS": "not a number"},
		map[string]any{"PTS": 1.0},
	)

	outcome := comparison["PTS"]
	if outcome.Team1Value != 0 {
		t.Fatalf("expected team1 value coerced to 0, got=%v", outcome.Team1Value)
	}
	if outcome.Winner != "team2" {
		t.Fatalf("expected winner=team2, got=%s", outcome.Winner)
	}
}

func TestCompareStatLines_TallyDeterminesOverallWinner(t *testing.T) {
	t.Parallel()

	team1 := map[string]any{"PTS": 100.0, "REB": 50.0, "AST": 30.0, "TO": 5.0}
	team2 := map[string]any{"PTS": 90.0, "REB": 55.0, "AST": 20.0, "TO": 9.0}

	_, score := CompareStatLines(team1, team2)

	if score.Team1Wins != 3 {
		t.Fatalf("expected team1 wins=3, got=%d", score.Team1Wins)
	}
	if score.Team2Wins != 1 {
		t.Fatalf("expected team2 wins=1, got=%d", score.Team2Wins)
	}
	if score.Winner != "team1" {
		t.Fatalf("expected winner=team1, got=%s", score.Winner)
	}
}

func TestCompareStatLines_EmptyLinesYieldEmptyComparison(t *testing.T) {
	t.Parallel()

	comparison, score := CompareStatLines(map[string]any{}, map[string]any{})
	if len(comparison) != 0 {
		t.Fatalf("expected empty comparison, got=%d entries", len(comparison))
	}
	if score.Team1Wins != 0 || score.Team2Wins != 0 || score.Ties != 0 || score.Winner != "" {
		t.Fatalf("expected zero score, got=%+v", score)
	}
}

func TestDisplayName_UnknownIdentifierPassesThrough(t *testing.T) {
	t.Parallel()

	if got := DisplayName("12"); got != "PTS" {
		t.Fatalf("expected PTS, got=%s", got)
	}
	if got := DisplayName("424242"); got != "424242" {
		t.Fatalf("expected raw identifier passthrough, got=%s", got)
	}
}

func TestFractionParts(t *testing.T) {
	t.Parallel()

	made, attempted, ok := FractionParts("FGM/FGA")
	if !ok || made != "FGM" || attempted != "FGA" {
		t.Fatalf("expected FGM/FGA split, got=%s/%s ok=%v", made, attempted, ok)
	}
	if _, _, ok := FractionParts("PTS"); ok {
		t.Fatalf("expected PTS to not be a fraction category")
	}
}
