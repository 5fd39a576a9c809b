package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"

	"trading_backend/internal/app/config"
	"trading_backend/internal/domain/entity"
	"trading_backend/internal/app/router"
	"trading_backend/internal/infrastructure/cache"
	infradb "trading_backend/internal/infrastructure/db"
	"trading_backend/internal/infrastructure/postgres"
	"trading_backend/internal/interface/handler"
	"trading_backend/internal/platform/logging"
	"trading_backend/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	conn, err := infradb.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	// Redis is optional: without it the candlestick series query just
	// always hits the database.
	var rdb *redisv9.Client
	if cfg.Redis.Addr != "" {
		rdb = redisv9.NewClient(&redisv9.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("close redis client")
			}
		}()
	} else {
		log.Warn().Msg("redis not configured, running without cache")
	}

	// Repositories
	stockRepo := postgres.NewStockRepository(conn)
	agentRepo := postgres.NewAgentRepository(conn)
	venueRepo := postgres.NewOrderVenueRepository(conn)
	timeFrameRepo := postgres.NewTimeFrameRepository(conn)
	actionDimRepo := postgres.NewActionDimRepository(conn)
	orderDimRepo := postgres.NewOrderDimRepository(conn)
	positionDimRepo := postgres.NewPositionDimRepository(conn)
	tradeZeroDimRepo := postgres.NewTradeZeroDimRepository(conn)
	dataFeedRepo := postgres.NewDataFeedRepository(conn)
	calendarRepo := postgres.NewDateTimeRepository(conn)

	tradeZeroFactRepo := postgres.NewTradeZeroFactRepository(conn)
	portfolioRepo := postgres.NewPortfolioFactRepository(conn)
	riskMgmtRepo := postgres.NewRiskManagementFactRepository(conn)
	riskMetricsRepo := postgres.NewRiskMetricsFactRepository(conn)
	actionFactRepo := postgres.NewActionFactRepository(conn)
	orderFactRepo := postgres.NewOrderFactRepository(conn)
	balanceRepo := postgres.NewBalanceFactRepository(conn)
	positionFactRepo := postgres.NewPositionFactRepository(conn)

	barRepo := cache.NewCachingCandlestickRepository(
		rdb, cfg.Redis.CacheTTL, postgres.NewCandlestickRepository(conn), "candlesticks")

	resolver := &usecase.Resolver{
		TradeZeroDims:  tradeZeroDimRepo,
		Agents:         agentRepo,
		TradeZeroFacts: tradeZeroFactRepo,
		RiskBudgets:    riskMgmtRepo,
		ActionDims:     actionDimRepo,
		OrderDims:      orderDimRepo,
		Venues:         venueRepo,
		Portfolios:     portfolioRepo,
		PositionDims:   positionDimRepo,
		Calendar:       calendarRepo,
		DataFeeds:      dataFeedRepo,
	}

	deps := router.Deps{
		Stocks:        usecase.NewRegistry[entity.Stock, uuid.UUID](stockRepo),
		Agents:        usecase.NewRegistry[entity.Agent, uuid.UUID](agentRepo),
		Venues:        usecase.NewRegistry[entity.OrderVenue, uuid.UUID](venueRepo),
		TimeFrames:    usecase.NewRegistry[entity.TimeFrameDim, entity.TimeFrame](timeFrameRepo),
		ActionDims:    usecase.NewRegistry[entity.ActionDim, uuid.UUID](actionDimRepo),
		OrderDims:     usecase.NewRegistry[entity.OrderDim, uuid.UUID](orderDimRepo),
		PositionDims:  usecase.NewRegistry[entity.PositionDim, uuid.UUID](positionDimRepo),
		TradeZeroDims: usecase.NewRegistry[entity.TradeZeroDim, uuid.UUID](tradeZeroDimRepo),
		DataFeeds:     usecase.NewRegistry[entity.DataFeed, uuid.UUID](dataFeedRepo),
		Calendar:      usecase.NewCalendarService(calendarRepo),

		TradeZeroFacts:  usecase.NewTradeZeroFactService(tradeZeroFactRepo, resolver),
		Portfolios:      usecase.NewPortfolioFactService(portfolioRepo, resolver),
		RiskManagements: usecase.NewRiskManagementFactService(riskMgmtRepo, resolver),
		RiskMetrics:     usecase.NewRiskMetricsFactService(riskMetricsRepo, resolver),
		ActionFacts:     usecase.NewActionFactService(actionFactRepo, resolver),
		Orders:          usecase.NewOrderFactService(orderFactRepo, resolver),
		Balances:        usecase.NewBalanceFactService(balanceRepo, resolver),
		Positions:       usecase.NewPositionFactService(positionFactRepo, resolver),

		Candlesticks: handler.NewCandlestickHandler(usecase.NewCandlestickService(barRepo, resolver)),

		StockRepo:         stockRepo,
		AgentRepo:         agentRepo,
		VenueRepo:         venueRepo,
		ActionDimRepo:     actionDimRepo,
		OrderDimRepo:      orderDimRepo,
		PositionDimRepo:   positionDimRepo,
		TradeZeroDimRepo:  tradeZeroDimRepo,
		DataFeedRepo:      dataFeedRepo,
		TradeZeroFactRepo: tradeZeroFactRepo,
		PortfolioRepo:     portfolioRepo,
		RiskMgmtRepo:      riskMgmtRepo,
		RiskMetricsRepo:   riskMetricsRepo,
		ActionFactRepo:    actionFactRepo,
		OrderFactRepo:     orderFactRepo,
		BalanceRepo:       balanceRepo,
		PositionFactRepo:  positionFactRepo,
	}

	r := router.New(deps)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
