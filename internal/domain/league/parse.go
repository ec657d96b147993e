package league

import (
	"github.com/riskibarqy/fantasy-hoops/internal/platform/rawjson"
)

// ParseInfo extracts the league header from a raw upstream payload. The
// boolean is false when the payload carries no league node at all, in which
// case callers serialize an empty object instead of a zeroed header.
func ParseInfo(root any) (Info, bool) {
	node, ok := rawjson.Get(root, rawjson.Key("fantasy_content"), rawjson.Key("league"), rawjson.Index(0))
	if !ok {
		return Info{}, false
	}
	return parseInfoNode(node), true
}

// ParseUserLeagues walks a users→games→leagues payload and returns every
// league header it can resolve. Branches that do not parse are skipped, and
// leagues without a key are dropped.
func ParseUserLeagues(root any) []Info {
	infos := []Info{}

	usersNode := rawjson.GetOr(root, nil, rawjson.Key("fantasy_content"), rawjson.Key("users"))
	for _, userItem := range rawjson.Items(usersNode) {
		gamesNode := rawjson.GetOr(userItem, nil, rawjson.Key("user"), rawjson.Key("games"))
		for _, gameItem := range rawjson.Items(gamesNode) {
			leaguesNode := rawjson.GetOr(gameItem, nil, rawjson.Key("game"), rawjson.Key("leagues"))
			for _, leagueItem := range rawjson.Items(leaguesNode) {
				node := rawjson.GetOr(leagueItem, nil, rawjson.Key("league"))
				if node == nil {
					continue
				}
				info := parseInfoNode(node)
				if info.LeagueKey == "" {
					continue
				}
				infos = append(infos, info)
			}
		}
	}

	return infos
}

func parseInfoNode(node any) Info {
	return Info{
		Name:        rawjson.StringOr(rawjson.GetOr(node, nil, rawjson.Key("name")), "Unknown League"),
		LeagueKey:   rawjson.StringOr(rawjson.GetOr(node, nil, rawjson.Key("league_key")), ""),
		LeagueID:    rawjson.Text(rawjson.GetOr(node, nil, rawjson.Key("league_id")), ""),
		NumTeams:    rawjson.IntOr(rawjson.GetOr(node, nil, rawjson.Key("num_teams")), 0),
		CurrentWeek: rawjson.IntOr(rawjson.GetOr(node, nil, rawjson.Key("current_week")), 0),
		StartWeek:   rawjson.IntOr(rawjson.GetOr(node, nil, rawjson.Key("start_week")), 0),
		EndWeek:     rawjson.IntOr(rawjson.GetOr(node, nil, rawjson.Key("end_week")), 0),
		Season:      rawjson.Text(rawjson.GetOr(node, nil, rawjson.Key("season")), ""),
		ScoringType: rawjson.StringOr(rawjson.GetOr(node, nil, rawjson.Key("scoring_type")), ""),
	}
}
