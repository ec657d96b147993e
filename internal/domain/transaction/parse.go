package transaction

import (
	"strconv"
	"time"

	"github.com/riskibarqy/fantasy-hoops/internal/platform/rawjson"
)

// Parse normalizes a raw transactions payload into records stamped with
// leagueKey. Transactions without a transaction_id and players without a
// player_id are skipped. The feed is best-effort: any malformation, panics
// included, yields an empty slice rather than an error.
func Parse(root any, leagueKey string) (records []Record) {
	records = []Record{}
	defer func() {
		if recover() != nil {
			records = []Record{}
		}
	}()

	container, ok := rawjson.Get(root,
		rawjson.Key("fantasy_content"),
		rawjson.Key("league"),
		rawjson.Key("transactions"),
	)
	if !ok {
		return records
	}

	for _, item := range rawjson.Items(container) {
		node, ok := rawjson.Get(item, rawjson.Key("transaction"))
		if !ok {
			continue
		}
		record, ok := parseRecord(node, leagueKey)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}

func parseRecord(node any, leagueKey string) (Record, bool) {
	meta := rawjson.GetOr(node, nil, rawjson.Index(0))

	transactionID := rawjson.Text(rawjson.GetOr(meta, nil, rawjson.Key("transaction_id")), "")
	if transactionID == "" {
		return Record{}, false
	}

	timestamp, _ := strconv.ParseInt(rawjson.Text(rawjson.GetOr(meta, nil, rawjson.Key("timestamp")), ""), 10, 64)

	record := Record{
		TransactionID: transactionID,
		LeagueKey:     leagueKey,
		Type:          rawjson.StringOr(rawjson.GetOr(meta, nil, rawjson.Key("type")), ""),
		Status:        rawjson.StringOr(rawjson.GetOr(meta, nil, rawjson.Key("status")), ""),
		Timestamp:     timestamp,
		OccurredAt:    time.Unix(timestamp, 0).UTC(),
		Players:       []PlayerMovement{},
	}
	if record.Type == TypeTrade {
		record.TraderTeamKey = rawjson.StringOr(rawjson.GetOr(meta, nil, rawjson.Key("trader_team_key")), "")
		record.TradeeTeamKey = rawjson.StringOr(rawjson.GetOr(meta, nil, rawjson.Key("tradee_team_key")), "")
	}

	for _, item := range rawjson.Items(rawjson.GetOr(node, nil, rawjson.Key("players"))) {
		playerNode, ok := rawjson.Get(item, rawjson.Key("player"))
		if !ok {
			continue
		}
		movement, ok := parseMovement(playerNode)
		if !ok {
			continue
		}
		record.Players = append(record.Players, movement)
	}
	return record, true
}

func parseMovement(node any) (PlayerMovement, bool) {
	var movement PlayerMovement
	for _, attr := range rawjson.Items(rawjson.GetOr(node, nil, rawjson.Index(0))) {
		mapping, ok := attr.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := mapping["player_id"]; ok {
			movement.PlayerID = rawjson.Text(id, movement.PlayerID)
		}
		if name, ok := mapping["name"]; ok {
			movement.Name = rawjson.StringOr(rawjson.GetOr(name, nil, rawjson.Key("full")), movement.Name)
		}
		if abbr, ok := mapping["editorial_team_abbr"]; ok {
			movement.NBATeam = rawjson.StringOr(abbr, movement.NBATeam)
		}
		if position, ok := mapping["display_position"]; ok {
			movement.Position = rawjson.StringOr(position, movement.Position)
		}
	}
	if movement.PlayerID == "" {
		return PlayerMovement{}, false
	}

	// Movement details arrive as either a mapping or a single-element list.
	data := rawjson.GetOr(node, nil, rawjson.Key("transaction_data"))
	if seq, ok := data.([]any); ok {
		data = nil
		if len(seq) > 0 {
			data = seq[0]
		}
	}
	movement.MovementType = rawjson.StringOr(rawjson.GetOr(data, nil, rawjson.Key("type")), "")
	movement.SourceType = rawjson.StringOr(rawjson.GetOr(data, nil, rawjson.Key("source_type")), "")
	movement.SourceTeamKey = rawjson.StringOr(rawjson.GetOr(data, nil, rawjson.Key("source_team_key")), "")
	movement.SourceTeamName = rawjson.StringOr(rawjson.GetOr(data, nil, rawjson.Key("source_team_name")), "")
	movement.DestinationType = rawjson.StringOr(rawjson.GetOr(data, nil, rawjson.Key("destination_type")), "")
	movement.DestinationTeamKey = rawjson.StringOr(rawjson.GetOr(data, nil, rawjson.Key("destination_team_key")), "")
	movement.DestinationTeamName = rawjson.StringOr(rawjson.GetOr(data, nil, rawjson.Key("destination_team_name")), "")
	return movement, true
}
