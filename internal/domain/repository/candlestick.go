package repository

import (
	"context"

	"github.com/google/uuid"

	"trading_backend/internal/domain/entity"
)

// CandlestickRepository persists the time-partitioned market fact. Identity
// is the 4-part composite key; there is no surrogate.
type CandlestickRepository interface {
	FindAll(ctx context.Context) ([]entity.Candlestick, error)
	FindByKey(ctx context.Context, k entity.CandlestickKey) (*entity.Candlestick, error)
	FindByFeed(ctx context.Context, feedID uuid.UUID) ([]entity.Candlestick, error)
	FindByAsset(ctx context.Context, asset entity.AssetType) ([]entity.Candlestick, error)
	FindByTimeFrame(ctx context.Context, tf entity.TimeFrame) ([]entity.Candlestick, error)
	FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.Candlestick, error)

	// FindByFeedAssetTimeFrame is the primary backtest access pattern: all
	// bars of one instrument and resolution from one feed, ordered by
	// calendar id ascending.
	FindByFeedAssetTimeFrame(ctx context.Context, feedID uuid.UUID, asset entity.AssetType, tf entity.TimeFrame) ([]entity.Candlestick, error)

	// Upsert persists the bar keyed by its composite key, replacing the
	// OHLCV payload of an existing row with the same key.
	Upsert(ctx context.Context, c *entity.Candlestick) (*entity.Candlestick, error)

	// Update replaces the OHLCV payload of an existing key and fails with
	// *NotFoundError if the key is absent.
	Update(ctx context.Context, k entity.CandlestickKey, c *entity.Candlestick) (*entity.Candlestick, error)

	Delete(ctx context.Context, k entity.CandlestickKey) error
}
