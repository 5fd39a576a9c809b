package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

func TestTradeZeroFactService_CreateResolvesReferences(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewTradeZeroFactService(e.res.TradeZeroFacts, e.res)
	ctx := context.Background()

	dim := e.seedTradeZeroDim(t)
	agent := e.seedAgent(t, "ppo-v1")

	created, err := svc.Create(ctx, &entity.TradeZeroFact{
		TradeZeroDimID: dim.ID,
		AgentID:        agent.ID,
		Epoch:          3,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestTradeZeroFactService_MissingReferenceAbortsWrite(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewTradeZeroFactService(e.res.TradeZeroFacts, e.res)
	ctx := context.Background()

	agent := e.seedAgent(t, "ppo-v1")
	ghost := uuid.New()

	_, err := svc.Create(ctx, &entity.TradeZeroFact{
		TradeZeroDimID: ghost,
		AgentID:        agent.ID,
	})

	var ref *repository.ReferentialError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "tradeZeroDimUuid", ref.Field)
	assert.Equal(t, ghost, ref.Key)

	// Nothing was persisted.
	assert.Zero(t, e.rowCount(t, &entity.TradeZeroFact{}))
}

// Foreign keys are checked in entity field order and the first failure wins,
// so a fact with several dangling references always reports the same one.
func TestOrderFactService_ReportsFirstUnresolvedReference(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewOrderFactService(e.orderFacts, e.res)
	ctx := context.Background()

	orderDim, err := e.res.OrderDims.Create(ctx, &entity.OrderDim{
		OrderType:     entity.OrderMarket,
		DirectionType: entity.DirectionLong,
		ActionType:    entity.ActionOpen,
		AssetType:     entity.AssetWIN,
		Volume:        1,
	})
	require.NoError(t, err)
	venue, err := e.res.Venues.Create(ctx, &entity.OrderVenue{
		Exchange: "B3", Broker: "XP", Platform: "ProfitDLL",
	})
	require.NoError(t, err)
	calendar := e.seedCalendar(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	portfolio := e.seedPortfolio(t)

	fact := entity.OrderFact{
		OrderDimID:   uuid.New(),
		OrderVenueID: uuid.New(),
		DatetimeID:   999,
		PortfolioID:  uuid.New(),
		OrderStatus:  entity.OrderStatusPending,
	}

	steps := []struct {
		field string
		fix   func(*entity.OrderFact)
	}{
		{"orderDimUuid", func(f *entity.OrderFact) { f.OrderDimID = orderDim.ID }},
		{"orderVenueDimUuid", func(f *entity.OrderFact) { f.OrderVenueID = venue.ID }},
		{"datetimeId", func(f *entity.OrderFact) { f.DatetimeID = calendar.DatetimeID }},
		{"portfolioUuid", func(f *entity.OrderFact) { f.PortfolioID = portfolio.ID }},
	}

	for _, step := range steps {
		_, err := svc.Create(ctx, &fact)
		var ref *repository.ReferentialError
		require.ErrorAs(t, err, &ref)
		assert.Equal(t, step.field, ref.Field)
		step.fix(&fact)
	}

	created, err := svc.Create(ctx, &fact)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, int64(1), e.rowCount(t, &entity.OrderFact{}))
}

func TestFactService_ValidationRunsBeforeResolution(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewBalanceFactService(e.balances, e.res)
	ctx := context.Background()

	// PortfolioID is missing entirely, which is a scalar violation, not a
	// referential one.
	_, err := svc.Create(ctx, &entity.BalanceFact{
		DatetimeID: 100,
		Initial:    10000, Current: 10000, Max: 10000, Min: 10000,
	})

	var validation *repository.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "PortfolioID", validation.Field)
	assert.Zero(t, e.rowCount(t, &entity.BalanceFact{}))
}

func TestRiskManagementFactService_ValidInputsChecked(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewRiskManagementFactService(e.res.RiskBudgets, e.res)
	ctx := context.Background()

	run := e.seedRun(t)

	_, err := svc.Create(ctx, &entity.RiskManagementFact{
		TradeZeroFactID: run.ID,
		Actions:         10,
		ValidInputs:     []entity.ActionType{},
	})
	var validation *repository.ValidationError
	require.ErrorAs(t, err, &validation)

	created, err := svc.Create(ctx, &entity.RiskManagementFact{
		TradeZeroFactID: run.ID,
		Actions:         10,
		ValidInputs:     []entity.ActionType{entity.ActionHold, entity.ActionOpen},
	})
	require.NoError(t, err)
	assert.Len(t, created.ValidInputs, 2)
}

func TestFactService_UpdateReResolvesReferences(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewPortfolioFactService(e.res.Portfolios, e.res)
	ctx := context.Background()

	run := e.seedRun(t)
	created, err := svc.Create(ctx, &entity.PortfolioFact{
		TradeZeroFactID: run.ID,
		Name:            "main",
	})
	require.NoError(t, err)

	ghost := uuid.New()
	_, err = svc.Update(ctx, created.ID, &entity.PortfolioFact{
		TradeZeroFactID: ghost,
		Name:            "renamed",
	})
	var ref *repository.ReferentialError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "tradeZeroFactUuid", ref.Field)

	// The stored row is untouched after the failed update.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "main", got.Name)

	updated, err := svc.Update(ctx, created.ID, &entity.PortfolioFact{
		TradeZeroFactID: run.ID,
		Name:            "renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "renamed", updated.Name)
}
