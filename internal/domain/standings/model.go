// Package standings normalizes league standings payloads into ranked team
// entries.
package standings

import (
	"github.com/riskibarqy/fantasy-hoops/internal/domain/matchup"
)

// Entry is one team's standings row: identity and season stat line plus the
// win/loss record the upstream assigned. Rank comes from the source and is
// not recomputed.
type Entry struct {
	matchup.TeamSnapshot
	Rank          int     `json:"rank"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	WinPct        float64 `json:"win_pct"`
	GamesBack     string  `json:"games_back"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
}

// Standings is the normalized standings payload. League holds a league.Info
// header, or an empty object when the payload carried none.
type Standings struct {
	League any     `json:"league"`
	Teams  []Entry `json:"teams"`
}
