package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

type tradeZeroFactGorm struct {
	*crud[entity.TradeZeroFact, uuid.UUID]
}

var _ repository.TradeZeroFactRepository = (*tradeZeroFactGorm)(nil)

func NewTradeZeroFactRepository(db *gorm.DB) *tradeZeroFactGorm {
	return &tradeZeroFactGorm{newCrud[entity.TradeZeroFact, uuid.UUID](db, "trade zero fact", "trade_zero_fact_uuid",
		func(f *entity.TradeZeroFact) { f.ID = uuid.New() })}
}

func (r *tradeZeroFactGorm) FindByTradeZeroDim(ctx context.Context, dimID uuid.UUID) ([]entity.TradeZeroFact, error) {
	return r.findWhere(ctx, "trade_zero_dim_uuid = ?", dimID)
}

func (r *tradeZeroFactGorm) FindByAgent(ctx context.Context, agentID uuid.UUID) ([]entity.TradeZeroFact, error) {
	return r.findWhere(ctx, "agent_dim_uuid = ?", agentID)
}

func (r *tradeZeroFactGorm) FindByEpoch(ctx context.Context, epoch int) ([]entity.TradeZeroFact, error) {
	return r.findWhere(ctx, "epoch = ?", epoch)
}

func (r *tradeZeroFactGorm) FindByTrained(ctx context.Context, trained bool) ([]entity.TradeZeroFact, error) {
	return r.findWhere(ctx, "trained = ?", trained)
}

type portfolioFactGorm struct {
	*crud[entity.PortfolioFact, uuid.UUID]
}

var _ repository.PortfolioFactRepository = (*portfolioFactGorm)(nil)

func NewPortfolioFactRepository(db *gorm.DB) *portfolioFactGorm {
	return &portfolioFactGorm{newCrud[entity.PortfolioFact, uuid.UUID](db, "portfolio", "portfolio_uuid",
		func(f *entity.PortfolioFact) { f.ID = uuid.New() })}
}

func (r *portfolioFactGorm) FindByTradeZeroFact(ctx context.Context, factID uuid.UUID) ([]entity.PortfolioFact, error) {
	return r.findWhere(ctx, "trade_zero_fact_uuid = ?", factID)
}

func (r *portfolioFactGorm) FindByName(ctx context.Context, name string) ([]entity.PortfolioFact, error) {
	return r.findWhere(ctx, "name = ?", name)
}

func (r *portfolioFactGorm) FindByDescriptionContaining(ctx context.Context, fragment string) ([]entity.PortfolioFact, error) {
	return r.findWhere(ctx, "description LIKE ?", "%"+fragment+"%")
}

type riskManagementFactGorm struct {
	*crud[entity.RiskManagementFact, uuid.UUID]
}

var _ repository.RiskManagementFactRepository = (*riskManagementFactGorm)(nil)

func NewRiskManagementFactRepository(db *gorm.DB) *riskManagementFactGorm {
	return &riskManagementFactGorm{newCrud[entity.RiskManagementFact, uuid.UUID](db, "risk management fact", "risk_management_uuid",
		func(f *entity.RiskManagementFact) { f.ID = uuid.New() })}
}

func (r *riskManagementFactGorm) FindByTradeZeroFact(ctx context.Context, factID uuid.UUID) ([]entity.RiskManagementFact, error) {
	return r.findWhere(ctx, "trade_zero_fact_uuid = ?", factID)
}

func (r *riskManagementFactGorm) FindByActions(ctx context.Context, actions int) ([]entity.RiskManagementFact, error) {
	return r.findWhere(ctx, "actions = ?", actions)
}

type riskMetricsFactGorm struct {
	*crud[entity.RiskMetricsFact, uuid.UUID]
}

var _ repository.RiskMetricsFactRepository = (*riskMetricsFactGorm)(nil)

func NewRiskMetricsFactRepository(db *gorm.DB) *riskMetricsFactGorm {
	return &riskMetricsFactGorm{newCrud[entity.RiskMetricsFact, uuid.UUID](db, "risk metrics fact", "risk_metrics_uuid",
		func(f *entity.RiskMetricsFact) { f.ID = uuid.New() })}
}

func (r *riskMetricsFactGorm) FindByRiskManagement(ctx context.Context, rmID uuid.UUID) ([]entity.RiskMetricsFact, error) {
	return r.findWhere(ctx, "risk_management_uuid = ?", rmID)
}

func (r *riskMetricsFactGorm) FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.RiskMetricsFact, error) {
	return r.findWhere(ctx, "datetime_id = ?", datetimeID)
}

func (r *riskMetricsFactGorm) FindByRiskManagementAndCalendarID(ctx context.Context, rmID uuid.UUID, datetimeID int64) (*entity.RiskMetricsFact, error) {
	return r.firstWhere(ctx, [2]any{rmID, datetimeID},
		"risk_management_uuid = ? AND datetime_id = ?", rmID, datetimeID)
}

func (r *riskMetricsFactGorm) FindByMarginUsedGreaterThan(ctx context.Context, marginUsed float64) ([]entity.RiskMetricsFact, error) {
	return r.findWhere(ctx, "margin_used > ?", marginUsed)
}

func (r *riskMetricsFactGorm) FindByMaxDrawdownLessThan(ctx context.Context, maxDrawdown float64) ([]entity.RiskMetricsFact, error) {
	return r.findWhere(ctx, "max_drawdown < ?", maxDrawdown)
}

func (r *riskMetricsFactGorm) FindBySharpeRatioGreaterThan(ctx context.Context, sharpeRatio float64) ([]entity.RiskMetricsFact, error) {
	return r.findWhere(ctx, "sharpe_ratio > ?", sharpeRatio)
}

type actionFactGorm struct {
	*crud[entity.ActionFact, uuid.UUID]
}

var _ repository.ActionFactRepository = (*actionFactGorm)(nil)

func NewActionFactRepository(db *gorm.DB) *actionFactGorm {
	return &actionFactGorm{newCrud[entity.ActionFact, uuid.UUID](db, "action fact", "action_fact_uuid",
		func(f *entity.ActionFact) { f.ID = uuid.New() })}
}

func (r *actionFactGorm) FindByRiskManagement(ctx context.Context, rmID uuid.UUID) ([]entity.ActionFact, error) {
	return r.findWhere(ctx, "risk_management_uuid = ?", rmID)
}

func (r *actionFactGorm) FindByActionDim(ctx context.Context, dimID uuid.UUID) ([]entity.ActionFact, error) {
	return r.findWhere(ctx, "action_dim_uuid = ?", dimID)
}

func (r *actionFactGorm) FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.ActionFact, error) {
	return r.findWhere(ctx, "datetime_id = ?", datetimeID)
}

type orderFactGorm struct {
	*crud[entity.OrderFact, uuid.UUID]
}

var _ repository.OrderFactRepository = (*orderFactGorm)(nil)

func NewOrderFactRepository(db *gorm.DB) *orderFactGorm {
	return &orderFactGorm{newCrud[entity.OrderFact, uuid.UUID](db, "order fact", "order_fact_uuid",
		func(f *entity.OrderFact) { f.ID = uuid.New() })}
}

func (r *orderFactGorm) FindByOrderDim(ctx context.Context, dimID uuid.UUID) ([]entity.OrderFact, error) {
	return r.findWhere(ctx, "order_dim_uuid = ?", dimID)
}

func (r *orderFactGorm) FindByVenue(ctx context.Context, venueID uuid.UUID) ([]entity.OrderFact, error) {
	return r.findWhere(ctx, "order_venue_dim_uuid = ?", venueID)
}

func (r *orderFactGorm) FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.OrderFact, error) {
	return r.findWhere(ctx, "datetime_id = ?", datetimeID)
}

func (r *orderFactGorm) FindByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]entity.OrderFact, error) {
	return r.findWhere(ctx, "portfolio_uuid = ?", portfolioID)
}

func (r *orderFactGorm) FindByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.OrderFact, error) {
	return r.findWhere(ctx, "order_status = ?", status)
}

type balanceFactGorm struct {
	*crud[entity.BalanceFact, uuid.UUID]
}

var _ repository.BalanceFactRepository = (*balanceFactGorm)(nil)

func NewBalanceFactRepository(db *gorm.DB) *balanceFactGorm {
	return &balanceFactGorm{newCrud[entity.BalanceFact, uuid.UUID](db, "balance fact", "balance_uuid",
		func(f *entity.BalanceFact) { f.ID = uuid.New() })}
}

func (r *balanceFactGorm) FindByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]entity.BalanceFact, error) {
	return r.findWhere(ctx, "portfolio_uuid = ?", portfolioID)
}

func (r *balanceFactGorm) FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.BalanceFact, error) {
	return r.findWhere(ctx, "datetime_id = ?", datetimeID)
}

func (r *balanceFactGorm) FindByPortfolioAndCalendarID(ctx context.Context, portfolioID uuid.UUID, datetimeID int64) (*entity.BalanceFact, error) {
	return r.firstWhere(ctx, [2]any{portfolioID, datetimeID},
		"portfolio_uuid = ? AND datetime_id = ?", portfolioID, datetimeID)
}

type positionFactGorm struct {
	*crud[entity.PositionFact, uuid.UUID]
}

var _ repository.PositionFactRepository = (*positionFactGorm)(nil)

func NewPositionFactRepository(db *gorm.DB) *positionFactGorm {
	return &positionFactGorm{newCrud[entity.PositionFact, uuid.UUID](db, "position fact", "position_uuid",
		func(f *entity.PositionFact) { f.ID = uuid.New() })}
}

func (r *positionFactGorm) FindByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]entity.PositionFact, error) {
	return r.findWhere(ctx, "portfolio_uuid = ?", portfolioID)
}

func (r *positionFactGorm) FindByPositionDim(ctx context.Context, dimID uuid.UUID) ([]entity.PositionFact, error) {
	return r.findWhere(ctx, "position_dim_uuid = ?", dimID)
}

func (r *positionFactGorm) FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.PositionFact, error) {
	return r.findWhere(ctx, "datetime_id = ?", datetimeID)
}

func (r *positionFactGorm) FindByEntryPriceGreaterThan(ctx context.Context, price float64) ([]entity.PositionFact, error) {
	return r.findWhere(ctx, "entry_price > ?", price)
}

func (r *positionFactGorm) FindByEntryPriceLessThan(ctx context.Context, price float64) ([]entity.PositionFact, error) {
	return r.findWhere(ctx, "entry_price < ?", price)
}
