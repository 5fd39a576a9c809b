package usecase

import (
	"context"

	"github.com/google/uuid"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

// FactService is the CRUD engine for surrogate-keyed facts. On top of the
// Registry discipline it resolves every foreign key of the candidate, in
// entity field order, before any write; the first unresolved reference
// aborts the whole operation and nothing is persisted.
type FactService[F any] struct {
	repo    repository.Crud[F, uuid.UUID]
	resolve func(ctx context.Context, f *F) error
}

func (s *FactService[F]) List(ctx context.Context) ([]F, error) {
	return s.repo.FindAll(ctx)
}

func (s *FactService[F]) Get(ctx context.Context, k uuid.UUID) (*F, error) {
	return s.repo.FindByKey(ctx, k)
}

func (s *FactService[F]) Create(ctx context.Context, f *F) (*F, error) {
	if err := validateEntity(f); err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, f)
}

// Update re-resolves every foreign key present in the patch, even ones the
// caller did not change, before the find-or-fail replace.
func (s *FactService[F]) Update(ctx context.Context, k uuid.UUID, f *F) (*F, error) {
	if err := validateEntity(f); err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, k, f)
}

func (s *FactService[F]) Delete(ctx context.Context, k uuid.UUID) error {
	return s.repo.Delete(ctx, k)
}

func NewTradeZeroFactService(repo repository.TradeZeroFactRepository, res *Resolver) *FactService[entity.TradeZeroFact] {
	return &FactService[entity.TradeZeroFact]{
		repo: repo,
		resolve: func(ctx context.Context, f *entity.TradeZeroFact) error {
			if _, err := res.ResolveTradeZeroDim(ctx, f.TradeZeroDimID); err != nil {
				return refErr("tradeZeroDimUuid", f.TradeZeroDimID, err)
			}
			if _, err := res.ResolveAgent(ctx, f.AgentID); err != nil {
				return refErr("agentDimUuid", f.AgentID, err)
			}
			return nil
		},
	}
}

func NewPortfolioFactService(repo repository.PortfolioFactRepository, res *Resolver) *FactService[entity.PortfolioFact] {
	return &FactService[entity.PortfolioFact]{
		repo: repo,
		resolve: func(ctx context.Context, f *entity.PortfolioFact) error {
			if _, err := res.ResolveTradeZeroFact(ctx, f.TradeZeroFactID); err != nil {
				return refErr("tradeZeroFactUuid", f.TradeZeroFactID, err)
			}
			return nil
		},
	}
}

func NewRiskManagementFactService(repo repository.RiskManagementFactRepository, res *Resolver) *FactService[entity.RiskManagementFact] {
	return &FactService[entity.RiskManagementFact]{
		repo: repo,
		resolve: func(ctx context.Context, f *entity.RiskManagementFact) error {
			if _, err := res.ResolveTradeZeroFact(ctx, f.TradeZeroFactID); err != nil {
				return refErr("tradeZeroFactUuid", f.TradeZeroFactID, err)
			}
			return nil
		},
	}
}

func NewRiskMetricsFactService(repo repository.RiskMetricsFactRepository, res *Resolver) *FactService[entity.RiskMetricsFact] {
	return &FactService[entity.RiskMetricsFact]{
		repo: repo,
		resolve: func(ctx context.Context, f *entity.RiskMetricsFact) error {
			if _, err := res.ResolveRiskManagement(ctx, f.RiskManagementID); err != nil {
				return refErr("riskManagementUuid", f.RiskManagementID, err)
			}
			if _, err := res.ResolveCalendar(ctx, f.DatetimeID); err != nil {
				return refErr("datetimeId", f.DatetimeID, err)
			}
			return nil
		},
	}
}

func NewActionFactService(repo repository.ActionFactRepository, res *Resolver) *FactService[entity.ActionFact] {
	return &FactService[entity.ActionFact]{
		repo: repo,
		resolve: func(ctx context.Context, f *entity.ActionFact) error {
			if _, err := res.ResolveRiskManagement(ctx, f.RiskManagementID); err != nil {
				return refErr("riskManagementUuid", f.RiskManagementID, err)
			}
			if _, err := res.ResolveActionDim(ctx, f.ActionDimID); err != nil {
				return refErr("actionDimUuid", f.ActionDimID, err)
			}
			if _, err := res.ResolveCalendar(ctx, f.DatetimeID); err != nil {
				return refErr("datetimeId", f.DatetimeID, err)
			}
			return nil
		},
	}
}

func NewOrderFactService(repo repository.OrderFactRepository, res *Resolver) *FactService[entity.OrderFact] {
	return &FactService[entity.OrderFact]{
		repo: repo,
		resolve: func(ctx context.Context, f *entity.OrderFact) error {
			if _, err := res.ResolveOrderDim(ctx, f.OrderDimID); err != nil {
				return refErr("orderDimUuid", f.OrderDimID, err)
			}
			if _, err := res.ResolveVenue(ctx, f.OrderVenueID); err != nil {
				return refErr("orderVenueDimUuid", f.OrderVenueID, err)
			}
			if _, err := res.ResolveCalendar(ctx, f.DatetimeID); err != nil {
				return refErr("datetimeId", f.DatetimeID, err)
			}
			if _, err := res.ResolvePortfolio(ctx, f.PortfolioID); err != nil {
				return refErr("portfolioUuid", f.PortfolioID, err)
			}
			return nil
		},
	}
}

func NewBalanceFactService(repo repository.BalanceFactRepository, res *Resolver) *FactService[entity.BalanceFact] {
	return &FactService[entity.BalanceFact]{
		repo: repo,
		resolve: func(ctx context.Context, f *entity.BalanceFact) error {
			if _, err := res.ResolvePortfolio(ctx, f.PortfolioID); err != nil {
				return refErr("portfolioUuid", f.PortfolioID, err)
			}
			if _, err := res.ResolveCalendar(ctx, f.DatetimeID); err != nil {
				return refErr("datetimeId", f.DatetimeID, err)
			}
			return nil
		},
	}
}

func NewPositionFactService(repo repository.PositionFactRepository, res *Resolver) *FactService[entity.PositionFact] {
	return &FactService[entity.PositionFact]{
		repo: repo,
		resolve: func(ctx context.Context, f *entity.PositionFact) error {
			if _, err := res.ResolvePortfolio(ctx, f.PortfolioID); err != nil {
				return refErr("portfolioUuid", f.PortfolioID, err)
			}
			if _, err := res.ResolvePositionDim(ctx, f.PositionDimID); err != nil {
				return refErr("positionDimUuid", f.PositionDimID, err)
			}
			if _, err := res.ResolveCalendar(ctx, f.DatetimeID); err != nil {
				return refErr("datetimeId", f.DatetimeID, err)
			}
			return nil
		},
	}
}
