// Package cache decorates the postgres repositories with an in-process
// read-through cache. Writes go straight to the next layer and invalidate
// the keys they touch.
package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/fantasy-hoops/internal/domain/league"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/transaction"
	basecache "github.com/riskibarqy/fantasy-hoops/internal/platform/cache"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, "league:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByKey(ctx context.Context, leagueKey string) (league.League, bool, error) {
	key := "league:key:" + leagueKey
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByKey(ctx, leagueKey)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByKey{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByKey)
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) Upsert(ctx context.Context, l league.League) error {
	if err := r.next.Upsert(ctx, l); err != nil {
		return err
	}
	r.cache.Delete(ctx, "league:list")
	r.cache.Delete(ctx, "league:key:"+l.LeagueKey)
	return nil
}

type cachedLeagueByKey struct {
	value  league.League
	exists bool
}

type SnapshotRepository struct {
	next  snapshot.Repository
	cache *basecache.Store
}

func NewSnapshotRepository(next snapshot.Repository, cache *basecache.Store) *SnapshotRepository {
	return &SnapshotRepository{next: next, cache: cache}
}

// Get returns the cached snapshot when present. Payload is shared between
// callers and must be treated as read only.
func (r *SnapshotRepository) Get(ctx context.Context, leagueKey string, week int, dataType string) (snapshot.Snapshot, bool, error) {
	key := snapshotKey(leagueKey, week, dataType)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.Get(ctx, leagueKey, week, dataType)
		if err != nil {
			return nil, err
		}
		return cachedSnapshot{value: item, exists: exists}, nil
	})
	if err != nil {
		return snapshot.Snapshot{}, false, err
	}

	cached, _ := v.(cachedSnapshot)
	return cached.value, cached.exists, nil
}

func (r *SnapshotRepository) Upsert(ctx context.Context, snap snapshot.Snapshot) error {
	if err := r.next.Upsert(ctx, snap); err != nil {
		return err
	}
	r.cache.Delete(ctx, snapshotKey(snap.LeagueKey, snap.Week, snap.DataType))
	return nil
}

type cachedSnapshot struct {
	value  snapshot.Snapshot
	exists bool
}

func snapshotKey(leagueKey string, week int, dataType string) string {
	return "snapshot:" + leagueKey + ":" + strconv.Itoa(week) + ":" + dataType
}

type TransactionRepository struct {
	next  transaction.Repository
	cache *basecache.Store
}

func NewTransactionRepository(next transaction.Repository, cache *basecache.Store) *TransactionRepository {
	return &TransactionRepository{next: next, cache: cache}
}

func (r *TransactionRepository) ExistingIDs(ctx context.Context, leagueKey string) (map[string]struct{}, error) {
	key := transactionIDsKey(leagueKey)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		ids, err := r.next.ExistingIDs(ctx, leagueKey)
		if err != nil {
			return nil, err
		}
		return copyIDSet(ids), nil
	})
	if err != nil {
		return nil, err
	}

	ids, _ := v.(map[string]struct{})
	return copyIDSet(ids), nil
}

func (r *TransactionRepository) StoreBatch(ctx context.Context, records []transaction.Record) error {
	if err := r.next.StoreBatch(ctx, records); err != nil {
		return err
	}

	seen := map[string]struct{}{}
	for _, record := range records {
		if _, ok := seen[record.LeagueKey]; ok {
			continue
		}
		seen[record.LeagueKey] = struct{}{}
		r.cache.Delete(ctx, transactionIDsKey(record.LeagueKey))
		r.cache.Delete(ctx, transactionCountKey(record.LeagueKey))
		r.cache.DeletePrefix(ctx, transactionListPrefix(record.LeagueKey))
	}
	return nil
}

func (r *TransactionRepository) List(ctx context.Context, leagueKey string, filter transaction.Filter) ([]transaction.Record, error) {
	key := transactionListKey(leagueKey, filter)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, leagueKey, filter)
		if err != nil {
			return nil, err
		}
		return cloneRecords(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]transaction.Record)
	return cloneRecords(items), nil
}

func (r *TransactionRepository) CountByLeague(ctx context.Context, leagueKey string) (int, error) {
	key := transactionCountKey(leagueKey)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		count, err := r.next.CountByLeague(ctx, leagueKey)
		if err != nil {
			return nil, err
		}
		return count, nil
	})
	if err != nil {
		return 0, err
	}

	count, _ := v.(int)
	return count, nil
}

func copyIDSet(ids map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func cloneRecords(items []transaction.Record) []transaction.Record {
	out := make([]transaction.Record, 0, len(items))
	for _, item := range items {
		cloned := item
		cloned.Players = append([]transaction.PlayerMovement(nil), item.Players...)
		out = append(out, cloned)
	}
	return out
}

func transactionIDsKey(leagueKey string) string {
	return "transaction:ids:" + leagueKey
}

func transactionCountKey(leagueKey string) string {
	return "transaction:count:" + leagueKey
}

func transactionListKey(leagueKey string, filter transaction.Filter) string {
	return transactionListPrefix(leagueKey) + filter.Type + ":" + filter.TeamKey + ":" +
		strconv.Itoa(filter.Limit) + ":" + strconv.Itoa(filter.Offset)
}

func transactionListPrefix(leagueKey string) string {
	return "transaction:list:" + leagueKey + ":"
}
