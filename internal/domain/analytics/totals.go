// Package analytics derives the dashboard views from normalized scoreboards:
// formatted weekly totals, per-category competition rankings, simulated
// all-play head-to-head matrices and multi-week aggregation.
package analytics

import (
	"fmt"
	"math"
	"strconv"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/scoring"
)

// TotalsRow is one team's formatted weekly stat line. Categories maps
// category name to its display string; iterate scoring.CanonicalCategories
// for column order.
type TotalsRow struct {
	TeamName       string            `json:"team_name"`
	TeamKey        string            `json:"team_key"`
	LogoURL        string            `json:"logo_url"`
	WinProbability float64           `json:"win_probability"`
	PointsTotal    float64           `json:"points_total"`
	Categories     map[string]string `json:"categories"`
}

// Flatten lists every team across a scoreboard's matchups in matchup order.
func Flatten(sb matchup.Scoreboard) []matchup.TeamSnapshot {
	teams := []matchup.TeamSnapshot{}
	for _, m := range sb.Matchups {
		teams = append(teams, m.Teams...)
	}
	return teams
}

// BuildTotals renders one formatted row per team.
func BuildTotals(teams []matchup.TeamSnapshot) []TotalsRow {
	rows := make([]TotalsRow, 0, len(teams))
	for _, team := range teams {
		row := TotalsRow{
			TeamName:       team.Name,
			TeamKey:        team.TeamKey,
			LogoURL:        team.LogoURL,
			WinProbability: team.WinProbability,
			PointsTotal:    team.PointsTotal,
			Categories:     make(map[string]string, len(scoring.CanonicalCategories)),
		}
		for _, category := range scoring.CanonicalCategories {
			row.Categories[category] = formatStat(category, team.Stats[category])
		}
		rows = append(rows, row)
	}
	return rows
}

// formatStat renders a stat value for tabular display: percentages keep 3
// decimals, other numbers drop the fraction when integral and keep one
// decimal otherwise, and non-numeric values fall back to "-" when empty.
func formatStat(category string, value any) string {
	switch v := value.(type) {
	case float64, float32, int, int64:
		n := scoring.NumericValue(v)
		if scoring.IsPercentage(category) {
			return strconv.FormatFloat(n, 'f', 3, 64)
		}
		if n == math.Trunc(n) {
			return strconv.FormatFloat(n, 'f', 0, 64)
		}
		return strconv.FormatFloat(n, 'f', 1, 64)
	case string:
		if v == "" {
			return "-"
		}
		return v
	case nil:
		return "-"
	default:
		return fmt.Sprint(v)
	}
}
