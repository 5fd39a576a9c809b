// Package router assembles the full route table.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
	"trading_backend/internal/interface/handler"
	"trading_backend/internal/usecase"
)

// Deps bundles everything the route table needs: one service per entity
// for the uniform CRUD surface, plus the repositories backing the
// attribute lookups.
type Deps struct {
	Stocks        *usecase.Registry[entity.Stock, uuid.UUID]
	Agents        *usecase.Registry[entity.Agent, uuid.UUID]
	Venues        *usecase.Registry[entity.OrderVenue, uuid.UUID]
	TimeFrames    *usecase.Registry[entity.TimeFrameDim, entity.TimeFrame]
	ActionDims    *usecase.Registry[entity.ActionDim, uuid.UUID]
	OrderDims     *usecase.Registry[entity.OrderDim, uuid.UUID]
	PositionDims  *usecase.Registry[entity.PositionDim, uuid.UUID]
	TradeZeroDims *usecase.Registry[entity.TradeZeroDim, uuid.UUID]
	DataFeeds     *usecase.Registry[entity.DataFeed, uuid.UUID]
	Calendar      *usecase.CalendarService

	TradeZeroFacts  *usecase.FactService[entity.TradeZeroFact]
	Portfolios      *usecase.FactService[entity.PortfolioFact]
	RiskManagements *usecase.FactService[entity.RiskManagementFact]
	RiskMetrics     *usecase.FactService[entity.RiskMetricsFact]
	ActionFacts     *usecase.FactService[entity.ActionFact]
	Orders          *usecase.FactService[entity.OrderFact]
	Balances        *usecase.FactService[entity.BalanceFact]
	Positions       *usecase.FactService[entity.PositionFact]

	Candlesticks *handler.CandlestickHandler

	StockRepo         repository.StockRepository
	AgentRepo         repository.AgentRepository
	VenueRepo         repository.OrderVenueRepository
	ActionDimRepo     repository.ActionDimRepository
	OrderDimRepo      repository.OrderDimRepository
	PositionDimRepo   repository.PositionDimRepository
	TradeZeroDimRepo  repository.TradeZeroDimRepository
	DataFeedRepo      repository.DataFeedRepository
	TradeZeroFactRepo repository.TradeZeroFactRepository
	PortfolioRepo     repository.PortfolioFactRepository
	RiskMgmtRepo      repository.RiskManagementFactRepository
	RiskMetricsRepo   repository.RiskMetricsFactRepository
	ActionFactRepo    repository.ActionFactRepository
	OrderFactRepo     repository.OrderFactRepository
	BalanceRepo       repository.BalanceFactRepository
	PositionFactRepo  repository.PositionFactRepository
}

func New(d Deps) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handler.Health)

	api := r.Group("/api")

	handler.RegisterStockRoutes(api, d.Stocks, d.StockRepo)
	handler.RegisterAgentRoutes(api, d.Agents, d.AgentRepo)
	handler.RegisterOrderVenueRoutes(api, d.Venues, d.VenueRepo)
	handler.RegisterTimeFrameRoutes(api, d.TimeFrames)
	handler.RegisterActionDimRoutes(api, d.ActionDims, d.ActionDimRepo)
	handler.RegisterOrderDimRoutes(api, d.OrderDims, d.OrderDimRepo)
	handler.RegisterPositionDimRoutes(api, d.PositionDims, d.PositionDimRepo)
	handler.RegisterTradeZeroDimRoutes(api, d.TradeZeroDims, d.TradeZeroDimRepo)
	handler.RegisterDataFeedRoutes(api, d.DataFeeds, d.DataFeedRepo)
	handler.RegisterCalendarRoutes(api, d.Calendar)

	handler.RegisterTradeZeroFactRoutes(api, d.TradeZeroFacts, d.TradeZeroFactRepo)
	handler.RegisterPortfolioFactRoutes(api, d.Portfolios, d.PortfolioRepo)
	handler.RegisterRiskManagementFactRoutes(api, d.RiskManagements, d.RiskMgmtRepo)
	handler.RegisterRiskMetricsFactRoutes(api, d.RiskMetrics, d.RiskMetricsRepo)
	handler.RegisterActionFactRoutes(api, d.ActionFacts, d.ActionFactRepo)
	handler.RegisterOrderFactRoutes(api, d.Orders, d.OrderFactRepo)
	handler.RegisterBalanceFactRoutes(api, d.Balances, d.BalanceRepo)
	handler.RegisterPositionFactRoutes(api, d.Positions, d.PositionFactRepo)

	d.Candlesticks.Register(api)

	return r
}
