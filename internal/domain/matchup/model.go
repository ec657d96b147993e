// Package matchup normalizes scoreboard payloads: per-team roster blocks,
// head-to-head pairings and the weekly scoreboard wrapper.
package matchup

import (
	"github.com/riskibarqy/fantasy-hoops/internal/domain/scoring"
)

// TeamSnapshot is one team's identity and stat line for a single week.
// Constructed fresh on every parse and never mutated afterwards. Stats maps
// category name to a float64, or to the raw string when the upstream value
// was not numeric.
type TeamSnapshot struct {
	TeamKey        string         `json:"team_key"`
	Name           string         `json:"team_name"`
	LogoURL        string         `json:"logo_url"`
	WinProbability float64        `json:"win_probability"`
	PointsTotal    float64        `json:"points_total"`
	Stats          map[string]any `json:"stats"`
}

// Matchup is one normalized pairing from a weekly scoreboard.
type Matchup struct {
	Week          int                `json:"week"`
	Status        string             `json:"status"`
	IsPlayoffs    bool               `json:"is_playoffs"`
	IsConsolation bool               `json:"is_consolation"`
	IsTied        bool               `json:"is_tied"`
	WinnerTeamKey string             `json:"winner_team_key"`
	Teams         []TeamSnapshot     `json:"teams"`
	Comparison    scoring.Comparison `json:"category_comparison"`
	Score         scoring.Score      `json:"score"`
}

// Scoreboard is the normalized weekly scoreboard payload. League holds a
// league.Info header, or an empty object when the payload carried none.
type Scoreboard struct {
	League   any       `json:"league"`
	Week     int       `json:"week"`
	Matchups []Matchup `json:"matchups"`
}
