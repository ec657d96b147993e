package scoring

import "sort"

// TeamValue pairs a team with its value in one category.
type TeamValue struct {
	Team  string
	Value float64
}

// CategoryRank is a team's competition rank within one category.
type CategoryRank struct {
	Team  string
	Value float64
	Rank  int
}

// RankCategory sorts one category's values (descending, or ascending when
// the category is lower-is-better) and assigns competition ranks: tied
// values share a rank, and the next distinct value takes its 1-based sorted
// position. Values [10, 10, 5] rank as [1, 1, 3]. The sort is stable, so
// tied teams keep their input order.
func RankCategory(values []TeamValue, category string) []CategoryRank {
	sorted := make([]TeamValue, len(values))
	copy(sorted, values)

	ascending := LowerIsBetter(category)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Value < sorted[j].Value
		}
		return sorted[i].Value > sorted[j].Value
	})

	ranks := make([]CategoryRank, len(sorted))
	for i, entry := range sorted {
		rank := i + 1
		if i > 0 && entry.Value == sorted[i-1].Value {
			rank = ranks[i-1].Rank
		}
		ranks[i] = CategoryRank{Team: entry.Team, Value: entry.Value, Rank: rank}
	}
	return ranks
}
