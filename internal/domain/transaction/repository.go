package transaction

import "context"

// Filter narrows List results. Zero values mean "no constraint"; Limit 0
// falls back to the repository default page size.
type Filter struct {
	Type    string
	TeamKey string
	Limit   int
	Offset  int
}

// Repository describes transaction persistence needs from use cases.
type Repository interface {
	ExistingIDs(ctx context.Context, leagueKey string) (map[string]struct{}, error)
	StoreBatch(ctx context.Context, records []Record) error
	List(ctx context.Context, leagueKey string, filter Filter) ([]Record, error)
	CountByLeague(ctx context.Context, leagueKey string) (int, error)
}
