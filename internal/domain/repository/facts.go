package repository

import (
	"context"

	"github.com/google/uuid"

	"trading_backend/internal/domain/entity"
)

// TradeZeroFactRepository persists trade-zero run records.
type TradeZeroFactRepository interface {
	Crud[entity.TradeZeroFact, uuid.UUID]
	FindByTradeZeroDim(ctx context.Context, dimID uuid.UUID) ([]entity.TradeZeroFact, error)
	FindByAgent(ctx context.Context, agentID uuid.UUID) ([]entity.TradeZeroFact, error)
	FindByEpoch(ctx context.Context, epoch int) ([]entity.TradeZeroFact, error)
	FindByTrained(ctx context.Context, trained bool) ([]entity.TradeZeroFact, error)
}

// PortfolioFactRepository persists portfolios.
type PortfolioFactRepository interface {
	Crud[entity.PortfolioFact, uuid.UUID]
	FindByTradeZeroFact(ctx context.Context, factID uuid.UUID) ([]entity.PortfolioFact, error)
	FindByName(ctx context.Context, name string) ([]entity.PortfolioFact, error)
	FindByDescriptionContaining(ctx context.Context, fragment string) ([]entity.PortfolioFact, error)
}

// RiskManagementFactRepository persists risk budgets.
type RiskManagementFactRepository interface {
	Crud[entity.RiskManagementFact, uuid.UUID]
	FindByTradeZeroFact(ctx context.Context, factID uuid.UUID) ([]entity.RiskManagementFact, error)
	FindByActions(ctx context.Context, actions int) ([]entity.RiskManagementFact, error)
}

// RiskMetricsFactRepository persists risk snapshots.
type RiskMetricsFactRepository interface {
	Crud[entity.RiskMetricsFact, uuid.UUID]
	FindByRiskManagement(ctx context.Context, rmID uuid.UUID) ([]entity.RiskMetricsFact, error)
	FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.RiskMetricsFact, error)
	FindByRiskManagementAndCalendarID(ctx context.Context, rmID uuid.UUID, datetimeID int64) (*entity.RiskMetricsFact, error)
	FindByMarginUsedGreaterThan(ctx context.Context, marginUsed float64) ([]entity.RiskMetricsFact, error)
	FindByMaxDrawdownLessThan(ctx context.Context, maxDrawdown float64) ([]entity.RiskMetricsFact, error)
	FindBySharpeRatioGreaterThan(ctx context.Context, sharpeRatio float64) ([]entity.RiskMetricsFact, error)
}

// ActionFactRepository persists taken actions.
type ActionFactRepository interface {
	Crud[entity.ActionFact, uuid.UUID]
	FindByRiskManagement(ctx context.Context, rmID uuid.UUID) ([]entity.ActionFact, error)
	FindByActionDim(ctx context.Context, dimID uuid.UUID) ([]entity.ActionFact, error)
	FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.ActionFact, error)
}

// OrderFactRepository persists order placements.
type OrderFactRepository interface {
	Crud[entity.OrderFact, uuid.UUID]
	FindByOrderDim(ctx context.Context, dimID uuid.UUID) ([]entity.OrderFact, error)
	FindByVenue(ctx context.Context, venueID uuid.UUID) ([]entity.OrderFact, error)
	FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.OrderFact, error)
	FindByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]entity.OrderFact, error)
	FindByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.OrderFact, error)
}

// BalanceFactRepository persists balance snapshots.
type BalanceFactRepository interface {
	Crud[entity.BalanceFact, uuid.UUID]
	FindByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]entity.BalanceFact, error)
	FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.BalanceFact, error)
	FindByPortfolioAndCalendarID(ctx context.Context, portfolioID uuid.UUID, datetimeID int64) (*entity.BalanceFact, error)
}

// PositionFactRepository persists position snapshots.
type PositionFactRepository interface {
	Crud[entity.PositionFact, uuid.UUID]
	FindByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]entity.PositionFact, error)
	FindByPositionDim(ctx context.Context, dimID uuid.UUID) ([]entity.PositionFact, error)
	FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.PositionFact, error)
	FindByEntryPriceGreaterThan(ctx context.Context, price float64) ([]entity.PositionFact, error)
	FindByEntryPriceLessThan(ctx context.Context, price float64) ([]entity.PositionFact, error)
}
