package snapshot

import "context"

// Repository describes snapshot persistence needs from use cases.
type Repository interface {
	Get(ctx context.Context, leagueKey string, week int, dataType string) (Snapshot, bool, error)
	Upsert(ctx context.Context, snap Snapshot) error
}
