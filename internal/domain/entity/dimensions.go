package entity

import "github.com/google/uuid"

// Stock describes one tradeable instrument. The asset type code is unique
// across the dimension; uniqueness is enforced by the storage engine.
type Stock struct {
	ID         uuid.UUID `json:"stockUuid" gorm:"column:stock_uuid;type:uuid;primaryKey"`
	AssetType  AssetType `json:"assetType" gorm:"column:asset_type;uniqueIndex;not null" validate:"required,oneof=WIN$ WDO$"`
	Name       string    `json:"name" gorm:"column:name;size:50;not null" validate:"required"`
	TickSize   float64   `json:"tickSize" gorm:"column:tick_size;not null" validate:"gt=0"`
	TickValue  float64   `json:"tickValue" gorm:"column:tick_value;not null" validate:"gte=0"`
	VolumeSize float64   `json:"volumeSize" gorm:"column:volume_size;not null" validate:"gt=0"`
}

func (Stock) TableName() string { return "stock_dim" }

// Agent is a trading agent (a model under training or a live strategy).
// Names are unique in practice; the store enforces it with a column index.
type Agent struct {
	ID   uuid.UUID `json:"agentDimUuid" gorm:"column:agent_dim_uuid;type:uuid;primaryKey"`
	Name string    `json:"name" gorm:"column:name;size:125;uniqueIndex;not null" validate:"required"`
}

func (Agent) TableName() string { return "agent_dim" }

// OrderVenue is where an order was routed: exchange, broker and platform
// are free text.
type OrderVenue struct {
	ID       uuid.UUID `json:"orderVenueDimUuid" gorm:"column:order_venue_dim_uuid;type:uuid;primaryKey"`
	Exchange string    `json:"exchange" gorm:"column:exchange;size:50;not null" validate:"required"`
	Broker   string    `json:"broker" gorm:"column:broker;size:50;not null" validate:"required"`
	Platform string    `json:"platform" gorm:"column:platform;size:50;not null" validate:"required"`
}

func (OrderVenue) TableName() string { return "order_venue_dim" }

// TimeFrameDim is the time-frame dimension. The time frame itself is the
// natural key; there is no surrogate.
type TimeFrameDim struct {
	TimeFrame   TimeFrame `json:"timeFrame" gorm:"column:time_frame;primaryKey" validate:"required,oneof=m1 m5 m15 m30 H1 H4 D1 W1"`
	Description string    `json:"description" gorm:"column:description;size:50;not null" validate:"required"`
}

func (TimeFrameDim) TableName() string { return "time_frame_dim" }

// ActionDim describes one action an agent can take.
type ActionDim struct {
	ID            uuid.UUID     `json:"actionDimUuid" gorm:"column:action_dim_uuid;type:uuid;primaryKey"`
	AssetType     AssetType     `json:"assetType" gorm:"column:asset_type;not null" validate:"required,oneof=WIN$ WDO$"`
	DirectionType DirectionType `json:"directionType" gorm:"column:direction_type;not null" validate:"required,oneof=long short wait"`
	ActionType    ActionType    `json:"actionType" gorm:"column:action_type;not null" validate:"required,oneof=hold open close"`
	Volume        float64       `json:"volume" gorm:"column:volume;not null" validate:"gte=0"`
}

func (ActionDim) TableName() string { return "action_dim" }

// OrderDim describes one order shape (type, direction, action, instrument,
// size) independent of any particular placement.
type OrderDim struct {
	ID            uuid.UUID     `json:"orderDimUuid" gorm:"column:order_dim_uuid;type:uuid;primaryKey"`
	OrderType     OrderType     `json:"orderType" gorm:"column:order_type;not null" validate:"required,oneof=market limit stop"`
	DirectionType DirectionType `json:"directionType" gorm:"column:direction_type;not null" validate:"required,oneof=long short wait"`
	ActionType    ActionType    `json:"actionType" gorm:"column:action_type;not null" validate:"required,oneof=hold open close"`
	AssetType     AssetType     `json:"assetType" gorm:"column:asset_type;not null" validate:"required,oneof=WIN$ WDO$"`
	Volume        float64       `json:"volume" gorm:"column:volume;not null" validate:"gt=0"`
}

func (OrderDim) TableName() string { return "order_dim" }

// PositionDim describes a position shape. Value is optional.
type PositionDim struct {
	ID            uuid.UUID     `json:"positionDimUuid" gorm:"column:position_dim_uuid;type:uuid;primaryKey"`
	AssetType     AssetType     `json:"assetType" gorm:"column:asset_type;not null" validate:"required,oneof=WIN$ WDO$"`
	DirectionType DirectionType `json:"directionType" gorm:"column:direction_type;not null" validate:"required,oneof=long short wait"`
	Value         *float64      `json:"value,omitempty" gorm:"column:value"`
}

func (PositionDim) TableName() string { return "position_dim" }

// TradeZeroDim is the configuration of one trade-zero training run.
type TradeZeroDim struct {
	ID                uuid.UUID   `json:"tradeZeroDimUuid" gorm:"column:trade_zero_dim_uuid;type:uuid;primaryKey"`
	TradeAsset        []AssetType `json:"tradeAsset" gorm:"column:trade_asset;serializer:json;not null" validate:"required,min=1,dive,oneof=WIN$ WDO$"`
	TradeTimeFrame    TimeFrame   `json:"tradeTimeFrame" gorm:"column:trade_time_frame;not null" validate:"required,oneof=m1 m5 m15 m30 H1 H4 D1 W1"`
	BalanceInitial    float64     `json:"balanceInitial" gorm:"column:balance_initial;not null" validate:"gt=0"`
	Drawdown          float64     `json:"drawdown" gorm:"column:drawdown;not null" validate:"gte=0,lte=1"`
	MaxVolume         float64     `json:"maxVolume" gorm:"column:max_volume;not null" validate:"gt=0"`
	MaxHold           int         `json:"maxHold" gorm:"column:max_hold;not null" validate:"gt=0"`
	LookBack          int         `json:"lookBack" gorm:"column:look_back;not null" validate:"gte=1,lte=540"`
	LookForward       int         `json:"lookForward" gorm:"column:look_forward;not null" validate:"gte=1,lte=540"`
	BackPropagateSize int         `json:"backPropagateSize" gorm:"column:back_propagate_size;not null" validate:"gte=1,lte=108"`
	MaxEpisode        int         `json:"maxEpisode" gorm:"column:max_episode;not null" validate:"gt=0"`
}

func (TradeZeroDim) TableName() string { return "trade_zero_dim" }

// DataFeed identifies a market data source. Unlike the other dimensions its
// key is supplied by the caller, not generated by the store.
type DataFeed struct {
	ID   uuid.UUID `json:"dataFeedUuid" gorm:"column:data_feed_uuid;type:uuid;primaryKey" validate:"required"`
	Name string    `json:"name" gorm:"column:name;uniqueIndex;not null" validate:"required"`
}

func (DataFeed) TableName() string { return "data_feed_dim" }
