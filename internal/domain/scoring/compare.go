package scoring

// CategoryOutcome is one category's side-by-side result. Winner is "team1",
// "team2", or "tie".
type CategoryOutcome struct {
	Team1Value float64 `json:"team1_value"`
	Team2Value float64 `json:"team2_value"`
	Winner     string  `json:"winner"`
}

// Comparison holds exactly one outcome per canonical category.
type Comparison map[string]CategoryOutcome

// Score tallies categories won across a comparison. Winner is "team1",
// "team2", or "" when both sides won the same number of categories.
type Score struct {
	Team1Wins int    `json:"team1_wins"`
	Team2Wins int    `json:"team2_wins"`
	Ties      int    `json:"ties"`
	Winner    string `json:"winner"`
}

// CompareStatLines runs the category-by-category comparison between two stat
// lines, walking the canonical categories present in at least one line.
// Values are narrowed to numbers with non-numeric and one-sided missing
// entries counting as 0; the larger value wins except for turnovers, where
// the smaller does. The same routine serves real matchups and simulated
// head-to-head pairings, so the two lines need not come from teams that were
// actually scheduled together.
func CompareStatLines(team1, team2 map[string]any) (Comparison, Score) {
	comparison := make(Comparison, len(CanonicalCategories))
	var score Score

	for _, category := range CanonicalCategories {
		raw1, ok1 := team1[category]
		raw2, ok2 := team2[category]
		if !ok1 && !ok2 {
			continue
		}

		value1 := NumericValue(raw1)
		value2 := NumericValue(raw2)

		team1Wins := value1 > value2
		if LowerIsBetter(category) {
			team1Wins = value1 < value2
		}

		outcome := CategoryOutcome{Team1Value: value1, Team2Value: value2}
		switch {
		case value1 == value2:
			outcome.Winner = "tie"
			score.Ties++
		case team1Wins:
			outcome.Winner = "team1"
			score.Team1Wins++
		default:
			outcome.Winner = "team2"
			score.Team2Wins++
		}
		comparison[category] = outcome
	}

	switch {
	case score.Team1Wins > score.Team2Wins:
		score.Winner = "team1"
	case score.Team2Wins > score.Team1Wins:
		score.Winner = "team2"
	}

	return comparison, score
}

// NumericValue narrows a stored stat value to float64. Strings and any other
// non-numeric values count as 0 for comparison and ranking purposes.
func NumericValue(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
