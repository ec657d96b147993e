package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/transaction"
	qb "github.com/riskibarqy/fantasy-hoops/internal/platform/querybuilder"
)

// defaultTransactionPageSize caps unbounded list reads. Callers page with
// explicit limits when they need the full log.
const defaultTransactionPageSize = 100

type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) ExistingIDs(ctx context.Context, leagueKey string) (map[string]struct{}, error) {
	query, args, err := qb.Select("transaction_id").From("transactions").
		Where(qb.Eq("league_key", leagueKey)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transaction ids query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select transaction ids: %w", err)
	}

	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out, nil
}

func (r *TransactionRepository) StoreBatch(ctx context.Context, records []transaction.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx store transactions: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, record := range records {
		rowID, inserted, err := insertTransactionRow(ctx, tx, record)
		if err != nil {
			return err
		}
		if !inserted {
			continue
		}

		for ordinal, movement := range record.Players {
			if err := insertTransactionPlayerRow(ctx, tx, rowID, ordinal, movement); err != nil {
				return fmt.Errorf("insert transaction player transaction_id=%s player_id=%s: %w", record.TransactionID, movement.PlayerID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit store transactions tx: %w", err)
	}

	return nil
}

func insertTransactionRow(ctx context.Context, tx *sqlx.Tx, record transaction.Record) (int64, bool, error) {
	insertModel := transactionInsertModel{
		TransactionID: record.TransactionID,
		LeagueKey:     record.LeagueKey,
		Type:          record.Type,
		Status:        record.Status,
		UnixTimestamp: record.Timestamp,
		OccurredAt:    record.OccurredAt.UTC(),
		TraderTeamKey: nullableString(record.TraderTeamKey),
		TradeeTeamKey: nullableString(record.TradeeTeamKey),
	}

	query, args, err := qb.InsertModel("transactions", insertModel, `ON CONFLICT (league_key, transaction_id) DO NOTHING
RETURNING id`)
	if err != nil {
		return 0, false, fmt.Errorf("build insert transaction query: %w", err)
	}

	var rowID int64
	if err := tx.GetContext(ctx, &rowID, query, args...); err != nil {
		// No returned row means the id was already stored with its players.
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("insert transaction transaction_id=%s: %w", record.TransactionID, err)
	}

	return rowID, true, nil
}

func insertTransactionPlayerRow(ctx context.Context, tx *sqlx.Tx, rowID int64, ordinal int, movement transaction.PlayerMovement) error {
	insertModel := transactionPlayerInsertModel{
		TransactionRowID:    rowID,
		Ordinal:             ordinal,
		PlayerID:            movement.PlayerID,
		PlayerName:          movement.Name,
		NBATeam:             nullableString(movement.NBATeam),
		Position:            nullableString(movement.Position),
		MovementType:        movement.MovementType,
		SourceType:          nullableString(movement.SourceType),
		SourceTeamKey:       nullableString(movement.SourceTeamKey),
		SourceTeamName:      nullableString(movement.SourceTeamName),
		DestinationType:     nullableString(movement.DestinationType),
		DestinationTeamKey:  nullableString(movement.DestinationTeamKey),
		DestinationTeamName: nullableString(movement.DestinationTeamName),
	}

	query, args, err := qb.InsertModel("transaction_players", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert transaction player query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *TransactionRepository) List(ctx context.Context, leagueKey string, filter transaction.Filter) ([]transaction.Record, error) {
	conditions := []qb.Condition{qb.Eq("league_key", leagueKey)}
	if filter.Type != "" {
		conditions = append(conditions, qb.Eq("type", filter.Type))
	}
	if filter.TeamKey != "" {
		conditions = append(conditions, qb.Expr(`(trader_team_key = ? OR tradee_team_key = ? OR EXISTS (
    SELECT 1 FROM transaction_players tp
    WHERE tp.transaction_row_id = transactions.id
      AND (tp.source_team_key = ? OR tp.destination_team_key = ?)
))`, filter.TeamKey, filter.TeamKey, filter.TeamKey, filter.TeamKey))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	query, args, err := qb.Select("*").From("transactions").
		Where(conditions...).
		OrderBy("unix_timestamp DESC", "id DESC").
		Limit(limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transactions query: %w", err)
	}

	var rows []transactionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	if len(rows) == 0 {
		return []transaction.Record{}, nil
	}

	players, err := r.playersForRows(ctx, rows)
	if err != nil {
		return nil, err
	}

	out := make([]transaction.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, transactionFromRow(row, players[row.ID]))
	}

	return out, nil
}

func (r *TransactionRepository) playersForRows(ctx context.Context, rows []transactionTableModel) (map[int64][]transaction.PlayerMovement, error) {
	rowIDs := make([]any, 0, len(rows))
	for _, row := range rows {
		rowIDs = append(rowIDs, row.ID)
	}

	query, args, err := qb.Select("*").From("transaction_players").
		Where(qb.In("transaction_row_id", rowIDs)).
		OrderBy("transaction_row_id", "ordinal").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transaction players query: %w", err)
	}

	var playerRows []transactionPlayerTableModel
	if err := r.db.SelectContext(ctx, &playerRows, query, args...); err != nil {
		return nil, fmt.Errorf("select transaction players: %w", err)
	}

	out := make(map[int64][]transaction.PlayerMovement, len(rows))
	for _, playerRow := range playerRows {
		out[playerRow.TransactionRowID] = append(out[playerRow.TransactionRowID], transaction.PlayerMovement{
			PlayerID:            playerRow.PlayerID,
			Name:                playerRow.PlayerName,
			NBATeam:             playerRow.NBATeam.String,
			Position:            playerRow.Position.String,
			MovementType:        playerRow.MovementType,
			SourceType:          playerRow.SourceType.String,
			SourceTeamKey:       playerRow.SourceTeamKey.String,
			SourceTeamName:      playerRow.SourceTeamName.String,
			DestinationType:     playerRow.DestinationType.String,
			DestinationTeamKey:  playerRow.DestinationTeamKey.String,
			DestinationTeamName: playerRow.DestinationTeamName.String,
		})
	}

	return out, nil
}

func (r *TransactionRepository) CountByLeague(ctx context.Context, leagueKey string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("transactions").
		Where(qb.Eq("league_key", leagueKey)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count transactions query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}

	return count, nil
}

func transactionFromRow(row transactionTableModel, players []transaction.PlayerMovement) transaction.Record {
	return transaction.Record{
		TransactionID: row.TransactionID,
		LeagueKey:     row.LeagueKey,
		Type:          row.Type,
		Status:        row.Status,
		Timestamp:     row.UnixTimestamp,
		OccurredAt:    row.OccurredAt,
		TraderTeamKey: row.TraderTeamKey.String,
		TradeeTeamKey: row.TradeeTeamKey.String,
		Players:       players,
	}
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	v := value
	return &v
}
