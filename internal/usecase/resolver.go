package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

// Resolver is the side-effect-free lookup family consulted before every
// fact write. It never mutates anything, so the transport layer can also
// use it for pre-flight checks ahead of accepting a batch.
type Resolver struct {
	TradeZeroDims  repository.TradeZeroDimRepository
	Agents         repository.AgentRepository
	TradeZeroFacts repository.TradeZeroFactRepository
	RiskBudgets    repository.RiskManagementFactRepository
	ActionDims     repository.ActionDimRepository
	OrderDims      repository.OrderDimRepository
	Venues         repository.OrderVenueRepository
	Portfolios     repository.PortfolioFactRepository
	PositionDims   repository.PositionDimRepository
	Calendar       repository.DateTimeRepository
	DataFeeds      repository.DataFeedRepository
}

func (r *Resolver) ResolveTradeZeroDim(ctx context.Context, id uuid.UUID) (*entity.TradeZeroDim, error) {
	return r.TradeZeroDims.FindByKey(ctx, id)
}

func (r *Resolver) ResolveAgent(ctx context.Context, id uuid.UUID) (*entity.Agent, error) {
	return r.Agents.FindByKey(ctx, id)
}

func (r *Resolver) ResolveTradeZeroFact(ctx context.Context, id uuid.UUID) (*entity.TradeZeroFact, error) {
	return r.TradeZeroFacts.FindByKey(ctx, id)
}

func (r *Resolver) ResolveRiskManagement(ctx context.Context, id uuid.UUID) (*entity.RiskManagementFact, error) {
	return r.RiskBudgets.FindByKey(ctx, id)
}

func (r *Resolver) ResolveActionDim(ctx context.Context, id uuid.UUID) (*entity.ActionDim, error) {
	return r.ActionDims.FindByKey(ctx, id)
}

func (r *Resolver) ResolveOrderDim(ctx context.Context, id uuid.UUID) (*entity.OrderDim, error) {
	return r.OrderDims.FindByKey(ctx, id)
}

func (r *Resolver) ResolveVenue(ctx context.Context, id uuid.UUID) (*entity.OrderVenue, error) {
	return r.Venues.FindByKey(ctx, id)
}

func (r *Resolver) ResolvePortfolio(ctx context.Context, id uuid.UUID) (*entity.PortfolioFact, error) {
	return r.Portfolios.FindByKey(ctx, id)
}

func (r *Resolver) ResolvePositionDim(ctx context.Context, id uuid.UUID) (*entity.PositionDim, error) {
	return r.PositionDims.FindByKey(ctx, id)
}

func (r *Resolver) ResolveCalendar(ctx context.Context, id int64) (*entity.DateTimeDim, error) {
	return r.Calendar.FindByKey(ctx, id)
}

func (r *Resolver) ResolveDataFeed(ctx context.Context, id uuid.UUID) (*entity.DataFeed, error) {
	return r.DataFeeds.FindByKey(ctx, id)
}

// refErr converts a failed resolution into a ReferentialError carrying the
// wire name of the offending field. Unexpected storage errors pass through.
func refErr(field string, key any, err error) error {
	var nf *repository.NotFoundError
	if errors.As(err, &nf) {
		return &repository.ReferentialError{Field: field, Key: key}
	}
	return err
}
