// Package transaction normalizes and stores league transaction feeds:
// adds, drops and trades with their per-player movement details.
package transaction

import "time"

// Transaction types as the feed reports them. Record.Type additionally
// takes the combined "add/drop" form; player movements never do.
const (
	TypeAdd     = "add"
	TypeDrop    = "drop"
	TypeAddDrop = "add/drop"
	TypeTrade   = "trade"
)

// Record is one normalized league transaction. TransactionID is unique per
// league, not globally. Trader/tradee keys are set for trades only.
type Record struct {
	TransactionID string           `json:"transaction_id"`
	LeagueKey     string           `json:"league_key"`
	Type          string           `json:"type"`
	Status        string           `json:"status"`
	Timestamp     int64            `json:"unix_timestamp"`
	OccurredAt    time.Time        `json:"datetime"`
	TraderTeamKey string           `json:"trader_team_key,omitempty"`
	TradeeTeamKey string           `json:"tradee_team_key,omitempty"`
	Players       []PlayerMovement `json:"players"`
}

// PlayerMovement is one player's path through a transaction.
type PlayerMovement struct {
	PlayerID            string `json:"player_id"`
	Name                string `json:"player_name"`
	NBATeam             string `json:"nba_team"`
	Position            string `json:"position"`
	MovementType        string `json:"action_type"`
	SourceType          string `json:"source_type"`
	SourceTeamKey       string `json:"source_team_key"`
	SourceTeamName      string `json:"source_team_name"`
	DestinationType     string `json:"destination_type"`
	DestinationTeamKey  string `json:"destination_team_key"`
	DestinationTeamName string `json:"destination_team_name"`
}
