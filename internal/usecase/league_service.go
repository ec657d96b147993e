package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/league"
	"github.com/riskibarqy/fantasy-hoops/internal/platform/logging"
)

// LeagueService maintains the league directory: the persisted set of
// leagues the connected account belongs to.
type LeagueService struct {
	provider   FantasyProvider
	leagueRepo league.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewLeagueService(provider FantasyProvider, leagueRepo league.Repository, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		provider:   provider,
		leagueRepo: leagueRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

// SyncUserLeagues pulls the account's league list from upstream and upserts
// every league into the directory. The returned rows keep the upstream
// order.
func (s *LeagueService) SyncUserLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.SyncUserLeagues")
	defer span.End()

	root, err := s.provider.GetUserLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch user leagues: %w", err)
	}

	infos := league.ParseUserLeagues(root)
	syncedAt := s.now().UTC()

	rows := make([]league.League, 0, len(infos))
	for _, info := range infos {
		row := league.FromInfo(info, syncedAt)
		if err := s.leagueRepo.Upsert(ctx, row); err != nil {
			return nil, fmt.Errorf("upsert league %s: %w", row.LeagueKey, err)
		}
		rows = append(rows, row)
	}

	s.logger.InfoContext(ctx, "league directory synced", "leagues", len(rows))
	return rows, nil
}
