package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
	infradb "trading_backend/internal/infrastructure/db"
	"trading_backend/internal/infrastructure/postgres"
)

// env wires real gorm-backed repositories over in-memory SQLite, so the
// orchestration tests exercise the same adapters production uses.
type env struct {
	conn *gorm.DB
	res  *Resolver

	riskMetrics repository.RiskMetricsFactRepository
	actionFacts repository.ActionFactRepository
	orderFacts  repository.OrderFactRepository
	balances    repository.BalanceFactRepository
	positions   repository.PositionFactRepository
	bars        repository.CandlestickRepository
}

func setupEnv(t *testing.T) *env {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, infradb.Migrate(conn), "failed to migrate schema")

	res := &Resolver{
		TradeZeroDims:  postgres.NewTradeZeroDimRepository(conn),
		Agents:         postgres.NewAgentRepository(conn),
		TradeZeroFacts: postgres.NewTradeZeroFactRepository(conn),
		RiskBudgets:    postgres.NewRiskManagementFactRepository(conn),
		ActionDims:     postgres.NewActionDimRepository(conn),
		OrderDims:      postgres.NewOrderDimRepository(conn),
		Venues:         postgres.NewOrderVenueRepository(conn),
		Portfolios:     postgres.NewPortfolioFactRepository(conn),
		PositionDims:   postgres.NewPositionDimRepository(conn),
		Calendar:       postgres.NewDateTimeRepository(conn),
		DataFeeds:      postgres.NewDataFeedRepository(conn),
	}
	return &env{
		conn:        conn,
		res:         res,
		riskMetrics: postgres.NewRiskMetricsFactRepository(conn),
		actionFacts: postgres.NewActionFactRepository(conn),
		orderFacts:  postgres.NewOrderFactRepository(conn),
		balances:    postgres.NewBalanceFactRepository(conn),
		positions:   postgres.NewPositionFactRepository(conn),
		bars:        postgres.NewCandlestickRepository(conn),
	}
}

func (e *env) rowCount(t *testing.T, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, e.conn.Model(model).Count(&n).Error)
	return n
}

func (e *env) seedTradeZeroDim(t *testing.T) *entity.TradeZeroDim {
	t.Helper()

	dim, err := e.res.TradeZeroDims.Create(context.Background(), &entity.TradeZeroDim{
		TradeAsset:        []entity.AssetType{entity.AssetWIN},
		TradeTimeFrame:    entity.TimeFrameM5,
		BalanceInitial:    10000,
		Drawdown:          0.2,
		MaxVolume:         10,
		MaxHold:           12,
		LookBack:          60,
		LookForward:       20,
		BackPropagateSize: 36,
		MaxEpisode:        500,
	})
	require.NoError(t, err)
	return dim
}

func (e *env) seedAgent(t *testing.T, name string) *entity.Agent {
	t.Helper()

	agent, err := e.res.Agents.Create(context.Background(), &entity.Agent{Name: name})
	require.NoError(t, err)
	return agent
}

func (e *env) seedRun(t *testing.T) *entity.TradeZeroFact {
	t.Helper()

	dim := e.seedTradeZeroDim(t)
	agent := e.seedAgent(t, "agent-"+uuid.NewString()[:8])
	run, err := e.res.TradeZeroFacts.Create(context.Background(), &entity.TradeZeroFact{
		TradeZeroDimID: dim.ID,
		AgentID:        agent.ID,
		Epoch:          1,
	})
	require.NoError(t, err)
	return run
}

func (e *env) seedPortfolio(t *testing.T) *entity.PortfolioFact {
	t.Helper()

	run := e.seedRun(t)
	p, err := e.res.Portfolios.Create(context.Background(), &entity.PortfolioFact{
		TradeZeroFactID: run.ID,
		Name:            "main",
	})
	require.NoError(t, err)
	return p
}

func (e *env) seedCalendar(t *testing.T, at time.Time) *entity.DateTimeDim {
	t.Helper()

	row := entity.NewDateTimeDim(at.Unix(), at)
	d, err := e.res.Calendar.Create(context.Background(), &row)
	require.NoError(t, err)
	return d
}

func (e *env) seedFeed(t *testing.T, name string) *entity.DataFeed {
	t.Helper()

	feed, err := e.res.DataFeeds.Create(context.Background(), &entity.DataFeed{ID: uuid.New(), Name: name})
	require.NoError(t, err)
	return feed
}
