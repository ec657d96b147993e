package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/league"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/transaction"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/logging"
)

const (
	defaultSyncWorkerCount = 4

	// summaryPageSize pages the full transaction log when computing
	// summaries; leagues top out in the hundreds of transactions a season.
	summaryPageSize = 500

	topPlayerRows = 10
)

// TransactionService syncs the upstream transaction feed into the store and
// serves filtered views and activity summaries from it.
type TransactionService struct {
	provider    FantasyProvider
	txRepo      transaction.Repository
	leagueRepo  league.Repository
	workerCount int
	logger      *logging.Logger
}

func NewTransactionService(
	provider FantasyProvider,
	txRepo transaction.Repository,
	leagueRepo league.Repository,
	workerCount int,
	logger *logging.Logger,
) *TransactionService {
	if workerCount <= 0 {
		workerCount = defaultSyncWorkerCount
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &TransactionService{
		provider:    provider,
		txRepo:      txRepo,
		leagueRepo:  leagueRepo,
		workerCount: workerCount,
		logger:      logger,
	}
}

// LeagueSyncOutcome is one league's share of a transaction sync run.
type LeagueSyncOutcome struct {
	LeagueKey  string `json:"league_key"`
	Fetched    int    `json:"fetched"`
	Stored     int    `json:"stored"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// TransactionSyncResult aggregates a sync run across leagues.
type TransactionSyncResult struct {
	LeagueCount  int                 `json:"league_count"`
	SuccessCount int                 `json:"success_count"`
	FailedCount  int                 `json:"failed_count"`
	StoredCount  int                 `json:"stored_count"`
	Outcomes     []LeagueSyncOutcome `json:"outcomes"`
}

// SyncLeague pulls the league's transaction feed and stores the records not
// seen before.
func (s *TransactionService) SyncLeague(ctx context.Context, leagueKey string) (LeagueSyncOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransactionService.SyncLeague")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return LeagueSyncOutcome{}, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}

	start := time.Now()
	outcome, err := s.syncLeague(ctx, leagueKey)
	outcome.DurationMs = time.Since(start).Milliseconds()
	return outcome, err
}

func (s *TransactionService) syncLeague(ctx context.Context, leagueKey string) (LeagueSyncOutcome, error) {
	outcome := LeagueSyncOutcome{LeagueKey: leagueKey}

	root, err := s.provider.GetLeagueTransactions(ctx, leagueKey, 0)
	if err != nil {
		return outcome, fmt.Errorf("fetch transactions: %w", err)
	}
	records := transaction.Parse(root, leagueKey)
	outcome.Fetched = len(records)
	if len(records) == 0 {
		return outcome, nil
	}

	existing, err := s.txRepo.ExistingIDs(ctx, leagueKey)
	if err != nil {
		return outcome, fmt.Errorf("load existing transaction ids: %w", err)
	}

	fresh := make([]transaction.Record, 0, len(records))
	for _, record := range records {
		if _, seen := existing[record.TransactionID]; seen {
			continue
		}
		// The feed occasionally repeats an id within one page.
		existing[record.TransactionID] = struct{}{}
		fresh = append(fresh, record)
	}
	if len(fresh) == 0 {
		return outcome, nil
	}

	if err := s.txRepo.StoreBatch(ctx, fresh); err != nil {
		return outcome, fmt.Errorf("store transactions: %w", err)
	}
	outcome.Stored = len(fresh)

	s.logger.InfoContext(ctx, "stored new league transactions",
		"league_key", leagueKey,
		"fetched", outcome.Fetched,
		"stored", outcome.Stored,
	)
	return outcome, nil
}

// SyncAllLeagues runs SyncLeague for every directory league on a bounded
// worker pool. Per-league failures land in the outcome rows instead of
// aborting the sweep.
func (s *TransactionService) SyncAllLeagues(ctx context.Context) (TransactionSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransactionService.SyncAllLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return TransactionSyncResult{}, fmt.Errorf("list leagues: %w", err)
	}

	result := TransactionSyncResult{
		LeagueCount: len(leagues),
		Outcomes:    make([]LeagueSyncOutcome, 0, len(leagues)),
	}
	if len(leagues) == 0 {
		return result, nil
	}

	workerCount := s.workerCount
	if workerCount > len(leagues) {
		workerCount = len(leagues)
	}

	results := make(chan LeagueSyncOutcome, len(leagues))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var storedCount atomic.Int64

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return TransactionSyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, entry := range leagues {
		leagueKey := entry.LeagueKey
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			outcome, syncErr := s.syncLeague(ctx, leagueKey)
			outcome.DurationMs = time.Since(start).Milliseconds()
			if syncErr != nil {
				outcome.Error = syncErr.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "league transaction sync failed",
					"league_key", leagueKey,
					"error", syncErr,
				)
			} else {
				successCount.Add(1)
				storedCount.Add(int64(outcome.Stored))
			}
			results <- outcome
		}); err != nil {
			workers.Done()
			return TransactionSyncResult{}, fmt.Errorf("submit league sync to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for outcome := range results {
		result.Outcomes = append(result.Outcomes, outcome)
	}
	sort.SliceStable(result.Outcomes, func(i, j int) bool {
		return result.Outcomes[i].LeagueKey < result.Outcomes[j].LeagueKey
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.StoredCount = int(storedCount.Load())

	s.logger.InfoContext(ctx, "transaction sync sweep finished",
		"leagues", result.LeagueCount,
		"succeeded", result.SuccessCount,
		"failed", result.FailedCount,
		"stored", result.StoredCount,
	)
	return result, nil
}

// List serves stored transactions, newest first.
func (s *TransactionService) List(ctx context.Context, leagueKey string, filter transaction.Filter) ([]transaction.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransactionService.List")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return nil, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must not be negative", ErrInvalidInput)
	}
	filter.Type = strings.ToLower(strings.TrimSpace(filter.Type))
	filter.TeamKey = strings.TrimSpace(filter.TeamKey)

	records, err := s.txRepo.List(ctx, leagueKey, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return records, nil
}

// ManagerActivityRow tallies one team's transaction involvement. Trades
// count once per traded player on each side.
type ManagerActivityRow struct {
	TeamName string `json:"team_name"`
	Adds     int    `json:"adds"`
	Drops    int    `json:"drops"`
	Trades   int    `json:"trades"`
	Total    int    `json:"total"`
}

// PlayerMovementRow counts how often one player moved in one direction.
type PlayerMovementRow struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	NBATeam    string `json:"nba_team"`
	Position   string `json:"position"`
	Count      int    `json:"count"`
}

// TransactionSummary is the composite activity view for a league.
type TransactionSummary struct {
	LeagueKey       string               `json:"league_key"`
	TotalCount      int                  `json:"total_count"`
	ManagerActivity []ManagerActivityRow `json:"manager_activity"`
	MostAdded       []PlayerMovementRow  `json:"most_added"`
	MostDropped     []PlayerMovementRow  `json:"most_dropped"`
}

// Summary walks the whole stored log for a league and tallies per-manager
// activity plus the most added and most dropped players.
func (s *TransactionService) Summary(ctx context.Context, leagueKey string) (TransactionSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransactionService.Summary")
	defer span.End()

	leagueKey = strings.TrimSpace(leagueKey)
	if leagueKey == "" {
		return TransactionSummary{}, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}

	records := make([]transaction.Record, 0, summaryPageSize)
	for offset := 0; ; offset += summaryPageSize {
		page, err := s.txRepo.List(ctx, leagueKey, transaction.Filter{Limit: summaryPageSize, Offset: offset})
		if err != nil {
			return TransactionSummary{}, fmt.Errorf("list transactions: %w", err)
		}
		records = append(records, page...)
		if len(page) < summaryPageSize {
			break
		}
	}

	total, err := s.txRepo.CountByLeague(ctx, leagueKey)
	if err != nil {
		return TransactionSummary{}, fmt.Errorf("count transactions: %w", err)
	}

	return TransactionSummary{
		LeagueKey:       leagueKey,
		TotalCount:      total,
		ManagerActivity: buildManagerActivity(records),
		MostAdded:       buildTopMovers(records, transaction.TypeAdd),
		MostDropped:     buildTopMovers(records, transaction.TypeDrop),
	}, nil
}

// buildManagerActivity attributes each player movement to the team that
// made it: adds to the destination, drops to the source, trades to both
// sides. Rows come back sorted by total activity descending.
func buildManagerActivity(records []transaction.Record) []ManagerActivityRow {
	order := []string{}
	byTeam := map[string]*ManagerActivityRow{}
	bump := func(teamName string) *ManagerActivityRow {
		if teamName == "" {
			return nil
		}
		row, ok := byTeam[teamName]
		if !ok {
			row = &ManagerActivityRow{TeamName: teamName}
			byTeam[teamName] = row
			order = append(order, teamName)
		}
		return row
	}

	for _, record := range records {
		for _, movement := range record.Players {
			switch movement.MovementType {
			case transaction.TypeAdd:
				if row := bump(movement.DestinationTeamName); row != nil {
					row.Adds++
				}
			case transaction.TypeDrop:
				if row := bump(movement.SourceTeamName); row != nil {
					row.Drops++
				}
			case transaction.TypeTrade:
				if row := bump(movement.SourceTeamName); row != nil {
					row.Trades++
				}
				if row := bump(movement.DestinationTeamName); row != nil {
					row.Trades++
				}
			}
		}
	}

	rows := make([]ManagerActivityRow, 0, len(order))
	for _, teamName := range order {
		row := byTeam[teamName]
		row.Total = row.Adds + row.Drops + row.Trades
		rows = append(rows, *row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows
}

// buildTopMovers counts movements of one type per player. Identity fields
// come from the newest record since the log arrives newest first.
func buildTopMovers(records []transaction.Record, movementType string) []PlayerMovementRow {
	order := []string{}
	byPlayer := map[string]*PlayerMovementRow{}

	for _, record := range records {
		for _, movement := range record.Players {
			if movement.MovementType != movementType || movement.PlayerID == "" {
				continue
			}
			row, ok := byPlayer[movement.PlayerID]
			if !ok {
				row = &PlayerMovementRow{
					PlayerID:   movement.PlayerID,
					PlayerName: movement.Name,
					NBATeam:    movement.NBATeam,
					Position:   movement.Position,
				}
				byPlayer[movement.PlayerID] = row
				order = append(order, movement.PlayerID)
			}
			row.Count++
		}
	}

	rows := make([]PlayerMovementRow, 0, len(order))
	for _, playerID := range order {
		rows = append(rows, *byPlayer[playerID])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	if len(rows) > topPlayerRows {
		rows = rows[:topPlayerRows]
	}
	return rows
}
