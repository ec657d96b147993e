package league

import "context"

// Repository describes league directory persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByKey(ctx context.Context, leagueKey string) (League, bool, error)
	Upsert(ctx context.Context, l League) error
}
