package entity

import "github.com/google/uuid"

// TradeZeroFact is one run of a trade-zero configuration by an agent.
type TradeZeroFact struct {
	ID             uuid.UUID `json:"tradeZeroFactUuid" gorm:"column:trade_zero_fact_uuid;type:uuid;primaryKey"`
	TradeZeroDimID uuid.UUID `json:"tradeZeroDimUuid" gorm:"column:trade_zero_dim_uuid;type:uuid;not null" validate:"required"`
	AgentID        uuid.UUID `json:"agentDimUuid" gorm:"column:agent_dim_uuid;type:uuid;not null" validate:"required"`
	Epoch          int       `json:"epoch" gorm:"column:epoch" validate:"gte=0"`
	Trained        bool      `json:"trained" gorm:"column:trained;default:false"`
}

func (TradeZeroFact) TableName() string { return "trade_zero_fact" }

// PortfolioFact groups the orders, balances and positions of one run.
type PortfolioFact struct {
	ID              uuid.UUID `json:"portfolioUuid" gorm:"column:portfolio_uuid;type:uuid;primaryKey"`
	TradeZeroFactID uuid.UUID `json:"tradeZeroFactUuid" gorm:"column:trade_zero_fact_uuid;type:uuid;not null" validate:"required"`
	Name            string    `json:"name" gorm:"column:name;size:255;not null" validate:"required"`
	Description     string    `json:"description,omitempty" gorm:"column:description"`
}

func (PortfolioFact) TableName() string { return "portfolio_fact" }

// RiskManagementFact is the action budget granted to one run.
type RiskManagementFact struct {
	ID              uuid.UUID    `json:"riskManagementUuid" gorm:"column:risk_management_uuid;type:uuid;primaryKey"`
	TradeZeroFactID uuid.UUID    `json:"tradeZeroFactUuid" gorm:"column:trade_zero_fact_uuid;type:uuid;not null" validate:"required"`
	Actions         int          `json:"actions" gorm:"column:actions;not null" validate:"gte=0"`
	ValidInputs     []ActionType `json:"validInputs" gorm:"column:valid_inputs;serializer:json;not null" validate:"required,min=1,dive,oneof=hold open close"`
}

func (RiskManagementFact) TableName() string { return "risk_management_fact" }

// RiskMetricsFact is a point-in-time risk snapshot for one risk budget.
type RiskMetricsFact struct {
	ID               uuid.UUID `json:"riskMetricsUuid" gorm:"column:risk_metrics_uuid;type:uuid;primaryKey"`
	RiskManagementID uuid.UUID `json:"riskManagementUuid" gorm:"column:risk_management_uuid;type:uuid;not null" validate:"required"`
	DatetimeID       int64     `json:"datetimeId" gorm:"column:datetime_id;not null" validate:"required"`
	MarginUsed       float64   `json:"marginUsed" gorm:"column:margin_used;not null" validate:"gte=0"`
	MaxDrawdown      float64   `json:"maxDrawdown" gorm:"column:max_drawdown;not null" validate:"gte=0,lte=1"`
	SharpeRatio      float64   `json:"sharpeRatio" gorm:"column:sharpe_ratio;not null"`
}

func (RiskMetricsFact) TableName() string { return "risk_metrics_fact" }

// ActionFact records one action taken under a risk budget at a point in time.
type ActionFact struct {
	ID               uuid.UUID `json:"actionFactUuid" gorm:"column:action_fact_uuid;type:uuid;primaryKey"`
	RiskManagementID uuid.UUID `json:"riskManagementUuid" gorm:"column:risk_management_uuid;type:uuid;not null" validate:"required"`
	ActionDimID      uuid.UUID `json:"actionDimUuid" gorm:"column:action_dim_uuid;type:uuid;not null" validate:"required"`
	DatetimeID       int64     `json:"datetimeId" gorm:"column:datetime_id;not null" validate:"required"`
}

func (ActionFact) TableName() string { return "action_fact" }

// OrderFact is one order placement. Executed, limit and stop prices are
// optional: which ones apply depends on the order type and status.
type OrderFact struct {
	ID            uuid.UUID   `json:"orderFactUuid" gorm:"column:order_fact_uuid;type:uuid;primaryKey"`
	OrderDimID    uuid.UUID   `json:"orderDimUuid" gorm:"column:order_dim_uuid;type:uuid;not null" validate:"required"`
	OrderVenueID  uuid.UUID   `json:"orderVenueDimUuid" gorm:"column:order_venue_dim_uuid;type:uuid;not null" validate:"required"`
	DatetimeID    int64       `json:"datetimeId" gorm:"column:datetime_id;not null" validate:"required"`
	PortfolioID   uuid.UUID   `json:"portfolioUuid" gorm:"column:portfolio_uuid;type:uuid;not null" validate:"required"`
	OrderStatus   OrderStatus `json:"orderStatus" gorm:"column:order_status;not null" validate:"required,oneof=pending filled canceled rejected partially_filled"`
	ExecutedPrice *float64    `json:"executedPrice,omitempty" gorm:"column:executed_price"`
	LimitPrice    *float64    `json:"limitPrice,omitempty" gorm:"column:limit_price"`
	StopPrice     *float64    `json:"stopPrice,omitempty" gorm:"column:stop_price"`
	Fees          float64     `json:"fees" gorm:"column:fees" validate:"gte=0"`
	Slippage      float64     `json:"slippage" gorm:"column:slippage"`
	LatencyMs     int         `json:"latencyMs" gorm:"column:latency_ms" validate:"gte=0"`
}

func (OrderFact) TableName() string { return "order_fact" }

// BalanceFact is a point-in-time balance snapshot of a portfolio.
type BalanceFact struct {
	ID          uuid.UUID `json:"balanceUuid" gorm:"column:balance_uuid;type:uuid;primaryKey"`
	PortfolioID uuid.UUID `json:"portfolioUuid" gorm:"column:portfolio_uuid;type:uuid;not null" validate:"required"`
	DatetimeID  int64     `json:"datetimeId" gorm:"column:datetime_id;not null" validate:"required"`
	Initial     float64   `json:"initial" gorm:"column:initial;not null" validate:"gte=0"`
	Current     float64   `json:"current" gorm:"column:current;not null" validate:"gte=0"`
	Max         float64   `json:"max" gorm:"column:max;not null" validate:"gte=0"`
	Min         float64   `json:"min" gorm:"column:min;not null" validate:"gte=0"`
}

func (BalanceFact) TableName() string { return "balance_fact" }

// PositionFact is one open position of a portfolio at a point in time.
type PositionFact struct {
	ID            uuid.UUID `json:"positionUuid" gorm:"column:position_uuid;type:uuid;primaryKey"`
	PortfolioID   uuid.UUID `json:"portfolioUuid" gorm:"column:portfolio_uuid;type:uuid;not null" validate:"required"`
	PositionDimID uuid.UUID `json:"positionDimUuid" gorm:"column:position_dim_uuid;type:uuid;not null" validate:"required"`
	DatetimeID    int64     `json:"datetimeId" gorm:"column:datetime_id;not null" validate:"required"`
	EntryPrice    float64   `json:"entryPrice" gorm:"column:entry_price;not null" validate:"gt=0"`
}

func (PositionFact) TableName() string { return "position_fact" }
