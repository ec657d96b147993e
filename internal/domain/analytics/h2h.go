package analytics

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/scoring"
)

// H2HRow is one team's simulated all-play record. Cells align with the
// matrix's Teams order; each holds "wins-losses-ties" against that column's
// team, with "-" on the diagonal.
type H2HRow struct {
	TeamName string   `json:"team_name"`
	Cells    []string `json:"cells"`
	Wins     int      `json:"wins"`
	Losses   int      `json:"losses"`
	Ties     int      `json:"ties"`
	WinPct   float64  `json:"win_pct"`
}

// H2HMatrix is the square all-play matrix for one week. Teams fixes both the
// row and the column order after the win_pct resort, so the matrix stays
// self-consistent.
type H2HMatrix struct {
	Teams []string `json:"teams"`
	Rows  []H2HRow `json:"rows"`
}

// BuildH2H simulates the category comparison for every ordered team pair,
// regardless of who was actually scheduled against whom. Rows and columns
// are reordered together by descending win_pct; the reorder is presentation
// only and does not change any cell.
func BuildH2H(teams []matchup.TeamSnapshot) H2HMatrix {
	n := len(teams)
	categoryCount := presentCategories(teams)
	rows := make([]H2HRow, n)

	for i, team := range teams {
		row := H2HRow{TeamName: team.Name, Cells: make([]string, n)}
		for j, opponent := range teams {
			if i == j {
				row.Cells[j] = "-"
				continue
			}
			_, score := scoring.CompareStatLines(team.Stats, opponent.Stats)
			row.Cells[j] = fmt.Sprintf("%d-%d-%d", score.Team1Wins, score.Team2Wins, score.Ties)
			row.Wins += score.Team1Wins
			row.Losses += score.Team2Wins
			row.Ties += score.Ties
		}
		row.WinPct = round1(winShare(row, n, categoryCount))
		rows[i] = row
	}

	// Reorder rows and columns together by descending win_pct.
	permutation := make([]int, n)
	for i := range permutation {
		permutation[i] = i
	}
	sort.SliceStable(permutation, func(a, b int) bool {
		return rows[permutation[a]].WinPct > rows[permutation[b]].WinPct
	})

	matrix := H2HMatrix{Teams: make([]string, n), Rows: make([]H2HRow, n)}
	for newIndex, oldIndex := range permutation {
		reordered := rows[oldIndex]
		cells := make([]string, n)
		for col, oldCol := range permutation {
			cells[col] = rows[oldIndex].Cells[oldCol]
		}
		reordered.Cells = cells
		matrix.Rows[newIndex] = reordered
		matrix.Teams[newIndex] = reordered.TeamName
	}

	return matrix
}

// winShare is the share of available category slots a row claimed, counting
// ties as half a win. The denominator floors at one slot so a single-team
// week divides cleanly.
func winShare(row H2HRow, teamCount, categoryCount int) float64 {
	slots := (teamCount - 1) * categoryCount
	if slots < 1 {
		slots = 1
	}
	return (float64(row.Wins) + 0.5*float64(row.Ties)) / float64(slots) * 100
}

// presentCategories counts the canonical categories carried by at least one
// team, so leagues scoring fewer categories keep sensible percentages.
func presentCategories(teams []matchup.TeamSnapshot) int {
	count := 0
	for _, category := range scoring.CanonicalCategories {
		for _, team := range teams {
			if _, ok := team.Stats[category]; ok {
				count++
				break
			}
		}
	}
	return count
}
