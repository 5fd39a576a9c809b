// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

// CachingCandlestickRepository decorates a CandlestickRepository with Redis
// caching of the hot series query, FindByFeedAssetTimeFrame. Writes
// invalidate the affected series entry; every other read passes through.
type CachingCandlestickRepository struct {
	inner     repository.CandlestickRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ repository.CandlestickRepository = (*CachingCandlestickRepository)(nil)

// NewCachingCandlestickRepository decorates inner with Redis caching. If
// ttl is 0 it defaults to 5 minutes; if namespace is empty it uses
// "candlesticks". A nil client disables caching entirely.
func NewCachingCandlestickRepository(rdb *redis.Client, ttl time.Duration, inner repository.CandlestickRepository, namespace string) *CachingCandlestickRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "candlesticks"
	}
	return &CachingCandlestickRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingCandlestickRepository) FindAll(ctx context.Context) ([]entity.Candlestick, error) {
	return c.inner.FindAll(ctx)
}

func (c *CachingCandlestickRepository) FindByKey(ctx context.Context, k entity.CandlestickKey) (*entity.Candlestick, error) {
	return c.inner.FindByKey(ctx, k)
}

func (c *CachingCandlestickRepository) FindByFeed(ctx context.Context, feedID uuid.UUID) ([]entity.Candlestick, error) {
	return c.inner.FindByFeed(ctx, feedID)
}

func (c *CachingCandlestickRepository) FindByAsset(ctx context.Context, asset entity.AssetType) ([]entity.Candlestick, error) {
	return c.inner.FindByAsset(ctx, asset)
}

func (c *CachingCandlestickRepository) FindByTimeFrame(ctx context.Context, tf entity.TimeFrame) ([]entity.Candlestick, error) {
	return c.inner.FindByTimeFrame(ctx, tf)
}

func (c *CachingCandlestickRepository) FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.Candlestick, error) {
	return c.inner.FindByCalendarID(ctx, datetimeID)
}

// FindByFeedAssetTimeFrame retrieves a series, checking the cache first and
// falling back to the database.
func (c *CachingCandlestickRepository) FindByFeedAssetTimeFrame(ctx context.Context, feedID uuid.UUID, asset entity.AssetType, tf entity.TimeFrame) ([]entity.Candlestick, error) {
	if c.rdb == nil {
		return c.inner.FindByFeedAssetTimeFrame(ctx, feedID, asset, tf)
	}

	key := c.seriesKey(feedID, asset, tf)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Candlestick
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Drop the corrupted entry and fall through to the database.
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByFeedAssetTimeFrame(ctx, feedID, asset, tf)
	if err != nil {
		return nil, err
	}

	// Best effort: a failed cache write never fails the read.
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

func (c *CachingCandlestickRepository) Upsert(ctx context.Context, bar *entity.Candlestick) (*entity.Candlestick, error) {
	out, err := c.inner.Upsert(ctx, bar)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, bar.CandlestickKey)
	return out, nil
}

func (c *CachingCandlestickRepository) Update(ctx context.Context, k entity.CandlestickKey, bar *entity.Candlestick) (*entity.Candlestick, error) {
	out, err := c.inner.Update(ctx, k, bar)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, k)
	return out, nil
}

func (c *CachingCandlestickRepository) Delete(ctx context.Context, k entity.CandlestickKey) error {
	if err := c.inner.Delete(ctx, k); err != nil {
		return err
	}
	c.invalidate(ctx, k)
	return nil
}

// invalidate drops the cached series the key belongs to. Best effort.
func (c *CachingCandlestickRepository) invalidate(ctx context.Context, k entity.CandlestickKey) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.seriesKey(k.DataFeedID, k.TradeAsset, k.TradeTimeFrame)).Err()
}

// seriesKey names the cache entry for one (feed, asset, time frame) series.
func (c *CachingCandlestickRepository) seriesKey(feedID uuid.UUID, asset entity.AssetType, tf entity.TimeFrame) string {
	return fmt.Sprintf("%s:%s:%s:%s", c.namespace, feedID, asset, tf)
}
