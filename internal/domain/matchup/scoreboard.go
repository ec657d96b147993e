package matchup

import (
	"github.com/riskibarqy/fantasy-hoops/internal/domain/league"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/rawjson"
)

// ParseMatchup normalizes one matchup block. Fewer than two resolvable
// teams leaves the comparison empty and the score zeroed, which is a valid
// degenerate output for bye weeks and partial data, not an error.
func ParseMatchup(node any) Matchup {
	m := Matchup{
		Week:          rawjson.IntOr(rawjson.GetOr(node, nil, rawjson.Key("week")), 0),
		Status:        rawjson.StringOr(rawjson.GetOr(node, nil, rawjson.Key("status")), ""),
		IsPlayoffs:    flagSet(node, "is_playoffs"),
		IsConsolation: flagSet(node, "is_consolation"),
		IsTied:        flagSet(node, "is_tied"),
		WinnerTeamKey: rawjson.StringOr(rawjson.GetOr(node, nil, rawjson.Key("winner_team_key")), ""),
		Teams:         []TeamSnapshot{},
		Comparison:    scoring.Comparison{},
	}

	teamsNode := rawjson.GetOr(node, nil, rawjson.Index(0), rawjson.Key("teams"))
	for _, item := range rawjson.Items(teamsNode) {
		teamNode := rawjson.GetOr(item, nil, rawjson.Key("team"))
		if teamNode == nil {
			continue
		}
		m.Teams = append(m.Teams, ParseTeam(teamNode))
	}

	if len(m.Teams) >= 2 {
		m.Comparison, m.Score = scoring.CompareStatLines(m.Teams[0].Stats, m.Teams[1].Stats)
	}

	return m
}

// ParseScoreboard normalizes a weekly scoreboard payload into the league
// header, the week number and the ordered matchup list.
func ParseScoreboard(root any) Scoreboard {
	sb := Scoreboard{League: map[string]any{}, Matchups: []Matchup{}}
	if info, ok := league.ParseInfo(root); ok {
		sb.League = info
	}

	scoreboardNode := rawjson.GetOr(root, nil, rawjson.Key("fantasy_content"), rawjson.Key("league"), rawjson.Key("scoreboard"))
	sb.Week = rawjson.IntOr(rawjson.GetOr(scoreboardNode, nil, rawjson.Key("week")), 0)

	matchupsNode := rawjson.GetOr(scoreboardNode, nil, rawjson.Index(0), rawjson.Key("matchups"))
	for _, item := range rawjson.Items(matchupsNode) {
		node := rawjson.GetOr(item, nil, rawjson.Key("matchup"))
		if node == nil {
			continue
		}
		sb.Matchups = append(sb.Matchups, ParseMatchup(node))
	}

	return sb
}

// flagSet reports whether a "0"/"1" string flag is set. Anything other than
// the literal string "1", including absence, reads as false.
func flagSet(node any, key string) bool {
	return rawjson.StringOr(rawjson.GetOr(node, nil, rawjson.Key(key)), "0") == "1"
}
