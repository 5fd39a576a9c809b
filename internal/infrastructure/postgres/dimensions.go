package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

type stockGorm struct {
	*crud[entity.Stock, uuid.UUID]
}

var _ repository.StockRepository = (*stockGorm)(nil)

func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{newCrud[entity.Stock, uuid.UUID](db, "stock", "stock_uuid",
		func(s *entity.Stock) { s.ID = uuid.New() })}
}

func (r *stockGorm) FindByAssetType(ctx context.Context, at entity.AssetType) (*entity.Stock, error) {
	return r.firstWhere(ctx, at, "asset_type = ?", at)
}

type agentGorm struct {
	*crud[entity.Agent, uuid.UUID]
}

var _ repository.AgentRepository = (*agentGorm)(nil)

func NewAgentRepository(db *gorm.DB) *agentGorm {
	return &agentGorm{newCrud[entity.Agent, uuid.UUID](db, "agent", "agent_dim_uuid",
		func(a *entity.Agent) { a.ID = uuid.New() })}
}

func (r *agentGorm) FindByName(ctx context.Context, name string) (*entity.Agent, error) {
	return r.firstWhere(ctx, name, "name = ?", name)
}

type orderVenueGorm struct {
	*crud[entity.OrderVenue, uuid.UUID]
}

var _ repository.OrderVenueRepository = (*orderVenueGorm)(nil)

func NewOrderVenueRepository(db *gorm.DB) *orderVenueGorm {
	return &orderVenueGorm{newCrud[entity.OrderVenue, uuid.UUID](db, "order venue", "order_venue_dim_uuid",
		func(v *entity.OrderVenue) { v.ID = uuid.New() })}
}

func (r *orderVenueGorm) FindByExchange(ctx context.Context, exchange string) ([]entity.OrderVenue, error) {
	return r.findWhere(ctx, "exchange = ?", exchange)
}

func (r *orderVenueGorm) FindByBroker(ctx context.Context, broker string) ([]entity.OrderVenue, error) {
	return r.findWhere(ctx, "broker = ?", broker)
}

func (r *orderVenueGorm) FindByPlatform(ctx context.Context, platform string) ([]entity.OrderVenue, error) {
	return r.findWhere(ctx, "platform = ?", platform)
}

func (r *orderVenueGorm) FindByExchangeBrokerPlatform(ctx context.Context, exchange, broker, platform string) ([]entity.OrderVenue, error) {
	return r.findWhere(ctx, "exchange = ? AND broker = ? AND platform = ?", exchange, broker, platform)
}

type timeFrameGorm struct {
	*crud[entity.TimeFrameDim, entity.TimeFrame]
}

var _ repository.TimeFrameRepository = (*timeFrameGorm)(nil)

// NewTimeFrameRepository builds the time-frame adapter. The time frame is a
// natural key, so the key is taken as given instead of generated.
func NewTimeFrameRepository(db *gorm.DB) *timeFrameGorm {
	return &timeFrameGorm{newCrud[entity.TimeFrameDim, entity.TimeFrame](db, "time frame", "time_frame", nil)}
}

type actionDimGorm struct {
	*crud[entity.ActionDim, uuid.UUID]
}

var _ repository.ActionDimRepository = (*actionDimGorm)(nil)

func NewActionDimRepository(db *gorm.DB) *actionDimGorm {
	return &actionDimGorm{newCrud[entity.ActionDim, uuid.UUID](db, "action dimension", "action_dim_uuid",
		func(a *entity.ActionDim) { a.ID = uuid.New() })}
}

func (r *actionDimGorm) FindByAssetType(ctx context.Context, at entity.AssetType) ([]entity.ActionDim, error) {
	return r.findWhere(ctx, "asset_type = ?", at)
}

func (r *actionDimGorm) FindByDirectionType(ctx context.Context, dt entity.DirectionType) ([]entity.ActionDim, error) {
	return r.findWhere(ctx, "direction_type = ?", dt)
}

func (r *actionDimGorm) FindByActionType(ctx context.Context, at entity.ActionType) ([]entity.ActionDim, error) {
	return r.findWhere(ctx, "action_type = ?", at)
}

func (r *actionDimGorm) FindByAttributes(ctx context.Context, asset entity.AssetType, direction entity.DirectionType, action entity.ActionType, volume float64) (*entity.ActionDim, error) {
	return r.firstWhere(ctx, [4]any{asset, direction, action, volume},
		"asset_type = ? AND direction_type = ? AND action_type = ? AND volume = ?",
		asset, direction, action, volume)
}

type orderDimGorm struct {
	*crud[entity.OrderDim, uuid.UUID]
}

var _ repository.OrderDimRepository = (*orderDimGorm)(nil)

func NewOrderDimRepository(db *gorm.DB) *orderDimGorm {
	return &orderDimGorm{newCrud[entity.OrderDim, uuid.UUID](db, "order dimension", "order_dim_uuid",
		func(o *entity.OrderDim) { o.ID = uuid.New() })}
}

func (r *orderDimGorm) FindByOrderType(ctx context.Context, ot entity.OrderType) ([]entity.OrderDim, error) {
	return r.findWhere(ctx, "order_type = ?", ot)
}

func (r *orderDimGorm) FindByDirectionType(ctx context.Context, dt entity.DirectionType) ([]entity.OrderDim, error) {
	return r.findWhere(ctx, "direction_type = ?", dt)
}

func (r *orderDimGorm) FindByActionType(ctx context.Context, at entity.ActionType) ([]entity.OrderDim, error) {
	return r.findWhere(ctx, "action_type = ?", at)
}

func (r *orderDimGorm) FindByAssetType(ctx context.Context, at entity.AssetType) ([]entity.OrderDim, error) {
	return r.findWhere(ctx, "asset_type = ?", at)
}

func (r *orderDimGorm) FindByAttributes(ctx context.Context, order entity.OrderType, direction entity.DirectionType, action entity.ActionType, asset entity.AssetType, volume float64) (*entity.OrderDim, error) {
	return r.firstWhere(ctx, [5]any{order, direction, action, asset, volume},
		"order_type = ? AND direction_type = ? AND action_type = ? AND asset_type = ? AND volume = ?",
		order, direction, action, asset, volume)
}

type positionDimGorm struct {
	*crud[entity.PositionDim, uuid.UUID]
}

var _ repository.PositionDimRepository = (*positionDimGorm)(nil)

func NewPositionDimRepository(db *gorm.DB) *positionDimGorm {
	return &positionDimGorm{newCrud[entity.PositionDim, uuid.UUID](db, "position dimension", "position_dim_uuid",
		func(p *entity.PositionDim) { p.ID = uuid.New() })}
}

func (r *positionDimGorm) FindByAssetType(ctx context.Context, at entity.AssetType) ([]entity.PositionDim, error) {
	return r.findWhere(ctx, "asset_type = ?", at)
}

func (r *positionDimGorm) FindByDirectionType(ctx context.Context, dt entity.DirectionType) ([]entity.PositionDim, error) {
	return r.findWhere(ctx, "direction_type = ?", dt)
}

func (r *positionDimGorm) FindByAssetDirectionValue(ctx context.Context, asset entity.AssetType, direction entity.DirectionType, value float64) (*entity.PositionDim, error) {
	return r.firstWhere(ctx, [3]any{asset, direction, value},
		"asset_type = ? AND direction_type = ? AND value = ?",
		asset, direction, value)
}

type tradeZeroDimGorm struct {
	*crud[entity.TradeZeroDim, uuid.UUID]
}

var _ repository.TradeZeroDimRepository = (*tradeZeroDimGorm)(nil)

func NewTradeZeroDimRepository(db *gorm.DB) *tradeZeroDimGorm {
	return &tradeZeroDimGorm{newCrud[entity.TradeZeroDim, uuid.UUID](db, "trade zero dimension", "trade_zero_dim_uuid",
		func(tz *entity.TradeZeroDim) { tz.ID = uuid.New() })}
}

func (r *tradeZeroDimGorm) FindByTimeFrame(ctx context.Context, tf entity.TimeFrame) ([]entity.TradeZeroDim, error) {
	return r.findWhere(ctx, "trade_time_frame = ?", tf)
}

type dataFeedGorm struct {
	*crud[entity.DataFeed, uuid.UUID]
}

var _ repository.DataFeedRepository = (*dataFeedGorm)(nil)

// NewDataFeedRepository builds the data feed adapter. The feed key is
// caller-supplied, so the key is taken as given instead of generated.
func NewDataFeedRepository(db *gorm.DB) *dataFeedGorm {
	return &dataFeedGorm{newCrud[entity.DataFeed, uuid.UUID](db, "data feed", "data_feed_uuid", nil)}
}

func (r *dataFeedGorm) FindByName(ctx context.Context, name string) (*entity.DataFeed, error) {
	return r.firstWhere(ctx, name, "name = ?", name)
}

type dateTimeGorm struct {
	*crud[entity.DateTimeDim, int64]
}

var _ repository.DateTimeRepository = (*dateTimeGorm)(nil)

// NewDateTimeRepository builds the calendar adapter, keyed by the
// externally supplied integer id.
func NewDateTimeRepository(db *gorm.DB) *dateTimeGorm {
	return &dateTimeGorm{newCrud[entity.DateTimeDim, int64](db, "calendar entry", "datetime_id", nil)}
}
