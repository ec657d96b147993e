package standings

import (
	"math"
	"sort"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/league"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/matchup"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/rawjson"
)

// Parse normalizes a raw standings payload. Malformed team nodes degrade to
// zero-value entries, and a payload without a league node yields an empty
// header with no teams rather than an error.
func Parse(root any) Standings {
	result := Standings{League: map[string]any{}, Teams: []Entry{}}
	if info, ok := league.ParseInfo(root); ok {
		result.League = info
	}

	teamsNode := rawjson.GetOr(root, nil,
		rawjson.Key("fantasy_content"),
		rawjson.Key("league"),
		rawjson.Key("standings"),
		rawjson.Key("teams"),
	)
	for _, item := range rawjson.Items(teamsNode) {
		teamNode := rawjson.GetOr(item, nil, rawjson.Key("team"))
		result.Teams = append(result.Teams, parseEntry(teamNode))
	}

	sort.SliceStable(result.Teams, func(i, j int) bool {
		return result.Teams[i].Rank < result.Teams[j].Rank
	})

	return result
}

func parseEntry(teamNode any) Entry {
	entry := Entry{TeamSnapshot: matchup.ParseTeam(teamNode)}

	standingsNode := rawjson.GetOr(teamNode, nil, rawjson.Key("team_standings"))
	entry.Rank = rawjson.IntOr(rawjson.GetOr(standingsNode, nil, rawjson.Key("rank")), 0)
	entry.GamesBack = rawjson.Text(rawjson.GetOr(standingsNode, nil, rawjson.Key("games_back")), "")
	entry.PointsFor = rawjson.FloatOr(rawjson.GetOr(standingsNode, nil, rawjson.Key("points_for")), 0)
	entry.PointsAgainst = rawjson.FloatOr(rawjson.GetOr(standingsNode, nil, rawjson.Key("points_against")), 0)

	outcomeNode := rawjson.GetOr(standingsNode, nil, rawjson.Key("outcome_totals"))
	entry.Wins = rawjson.IntOr(rawjson.GetOr(outcomeNode, nil, rawjson.Key("wins")), 0)
	entry.Losses = rawjson.IntOr(rawjson.GetOr(outcomeNode, nil, rawjson.Key("losses")), 0)
	entry.Ties = rawjson.IntOr(rawjson.GetOr(outcomeNode, nil, rawjson.Key("ties")), 0)
	entry.WinPct = winPct(
		rawjson.GetOr(outcomeNode, nil, rawjson.Key("percentage")),
		entry.Wins, entry.Losses, entry.Ties,
	)

	return entry
}

// winPct prefers the upstream's fractional percentage when it is present and
// non-zero, falling back to the record itself. The denominator floors at 1
// so a team with no games keeps a 0 instead of dividing by zero.
func winPct(percentage any, wins, losses, ties int) float64 {
	if fraction, ok := rawjson.Float(percentage); ok && fraction != 0 {
		return round2(fraction * 100)
	}

	games := wins + losses + ties
	if games < 1 {
		games = 1
	}
	return round2(float64(wins) / float64(games) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
