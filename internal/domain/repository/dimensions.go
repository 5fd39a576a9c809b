package repository

import (
	"context"

	"github.com/google/uuid"

	"trading_backend/internal/domain/entity"
)

// StockRepository persists the stock dimension. AssetType is unique, so its
// lookup yields a single row.
type StockRepository interface {
	Crud[entity.Stock, uuid.UUID]
	FindByAssetType(ctx context.Context, at entity.AssetType) (*entity.Stock, error)
}

// AgentRepository persists the agent dimension.
type AgentRepository interface {
	Crud[entity.Agent, uuid.UUID]
	FindByName(ctx context.Context, name string) (*entity.Agent, error)
}

// OrderVenueRepository persists the order venue dimension. None of the
// attributes are unique, so every lookup yields a list.
type OrderVenueRepository interface {
	Crud[entity.OrderVenue, uuid.UUID]
	FindByExchange(ctx context.Context, exchange string) ([]entity.OrderVenue, error)
	FindByBroker(ctx context.Context, broker string) ([]entity.OrderVenue, error)
	FindByPlatform(ctx context.Context, platform string) ([]entity.OrderVenue, error)
	FindByExchangeBrokerPlatform(ctx context.Context, exchange, broker, platform string) ([]entity.OrderVenue, error)
}

// TimeFrameRepository persists the time-frame dimension, keyed by the time
// frame itself.
type TimeFrameRepository interface {
	Crud[entity.TimeFrameDim, entity.TimeFrame]
}

// ActionDimRepository persists the action dimension.
type ActionDimRepository interface {
	Crud[entity.ActionDim, uuid.UUID]
	FindByAssetType(ctx context.Context, at entity.AssetType) ([]entity.ActionDim, error)
	FindByDirectionType(ctx context.Context, dt entity.DirectionType) ([]entity.ActionDim, error)
	FindByActionType(ctx context.Context, at entity.ActionType) ([]entity.ActionDim, error)
	FindByAttributes(ctx context.Context, asset entity.AssetType, direction entity.DirectionType, action entity.ActionType, volume float64) (*entity.ActionDim, error)
}

// OrderDimRepository persists the order dimension.
type OrderDimRepository interface {
	Crud[entity.OrderDim, uuid.UUID]
	FindByOrderType(ctx context.Context, ot entity.OrderType) ([]entity.OrderDim, error)
	FindByDirectionType(ctx context.Context, dt entity.DirectionType) ([]entity.OrderDim, error)
	FindByActionType(ctx context.Context, at entity.ActionType) ([]entity.OrderDim, error)
	FindByAssetType(ctx context.Context, at entity.AssetType) ([]entity.OrderDim, error)
	FindByAttributes(ctx context.Context, order entity.OrderType, direction entity.DirectionType, action entity.ActionType, asset entity.AssetType, volume float64) (*entity.OrderDim, error)
}

// PositionDimRepository persists the position dimension.
type PositionDimRepository interface {
	Crud[entity.PositionDim, uuid.UUID]
	FindByAssetType(ctx context.Context, at entity.AssetType) ([]entity.PositionDim, error)
	FindByDirectionType(ctx context.Context, dt entity.DirectionType) ([]entity.PositionDim, error)
	FindByAssetDirectionValue(ctx context.Context, asset entity.AssetType, direction entity.DirectionType, value float64) (*entity.PositionDim, error)
}

// TradeZeroDimRepository persists the trade-zero configuration dimension.
type TradeZeroDimRepository interface {
	Crud[entity.TradeZeroDim, uuid.UUID]
	FindByTimeFrame(ctx context.Context, tf entity.TimeFrame) ([]entity.TradeZeroDim, error)
}

// DataFeedRepository persists the data feed dimension. The key is supplied
// by the caller, never generated.
type DataFeedRepository interface {
	Crud[entity.DataFeed, uuid.UUID]
	FindByName(ctx context.Context, name string) (*entity.DataFeed, error)
}

// DateTimeRepository persists the precomputed calendar dimension, keyed by
// the externally supplied integer id.
type DateTimeRepository interface {
	Crud[entity.DateTimeDim, int64]
}
