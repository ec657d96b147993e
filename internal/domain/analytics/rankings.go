package analytics

import (
	"math"
	"sort"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/scoring"
)

// RankingRow is one team's competition rank per category plus the mean of
// those ranks. Rows group by display name, so two teams sharing a name merge
// into one row; see DESIGN.md for why that join key is kept.
type RankingRow struct {
	TeamName string         `json:"team_name"`
	Ranks    map[string]int `json:"ranks"`
	AvgRank  float64        `json:"avg_rank"`
}

// BuildRankings ranks every canonical category across the flattened teams
// and averages each team's ranks. Non-numeric and missing values rank as 0.
// Rows come back sorted by avg_rank ascending.
func BuildRankings(teams []matchup.TeamSnapshot) []RankingRow {
	order := []string{}
	ranksByTeam := map[string]map[string]int{}
	accumulated := map[string][]int{}

	for _, team := range teams {
		if _, seen := ranksByTeam[team.Name]; seen {
			continue
		}
		order = append(order, team.Name)
		ranksByTeam[team.Name] = make(map[string]int, len(scoring.CanonicalCategories))
	}

	for _, category := range scoring.CanonicalCategories {
		values := make([]scoring.TeamValue, 0, len(teams))
		for _, team := range teams {
			values = append(values, scoring.TeamValue{
				Team:  team.Name,
				Value: scoring.NumericValue(team.Stats[category]),
			})
		}
		for _, ranked := range scoring.RankCategory(values, category) {
			ranksByTeam[ranked.Team][category] = ranked.Rank
			accumulated[ranked.Team] = append(accumulated[ranked.Team], ranked.Rank)
		}
	}

	rows := make([]RankingRow, 0, len(order))
	for _, name := range order {
		rows = append(rows, RankingRow{
			TeamName: name,
			Ranks:    ranksByTeam[name],
			AvgRank:  round2(meanInt(accumulated[name])),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AvgRank < rows[j].AvgRank
	})
	return rows
}

func meanInt(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
