package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

func paramUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, &repository.ValidationError{Field: name, Reason: "not a valid UUID: " + c.Param(name)})
		return uuid.Nil, false
	}
	return id, true
}

func paramInt64(c *gin.Context, name string) (int64, bool) {
	n, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondError(c, &repository.ValidationError{Field: name, Reason: "not a valid integer: " + c.Param(name)})
		return 0, false
	}
	return n, true
}

func paramFloat(c *gin.Context, name string) (float64, bool) {
	f, err := strconv.ParseFloat(c.Param(name), 64)
	if err != nil {
		respondError(c, &repository.ValidationError{Field: name, Reason: "not a number: " + c.Param(name)})
		return 0, false
	}
	return f, true
}

func RegisterTradeZeroFactRoutes(rg *gin.RouterGroup, svc crudService[entity.TradeZeroFact, uuid.UUID], repo repository.TradeZeroFactRepository) {
	registerCrud(rg, "/trade-zero-facts", svc, parseUUID)
	rg.GET("/trade-zero-facts/trade-zero-dim/:dimId", func(c *gin.Context) {
		id, ok := paramUUID(c, "dimId")
		if !ok {
			return
		}
		rows, err := repo.FindByTradeZeroDim(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/trade-zero-facts/agent/:agentId", func(c *gin.Context) {
		id, ok := paramUUID(c, "agentId")
		if !ok {
			return
		}
		rows, err := repo.FindByAgent(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/trade-zero-facts/epoch/:epoch", func(c *gin.Context) {
		n, ok := paramInt64(c, "epoch")
		if !ok {
			return
		}
		rows, err := repo.FindByEpoch(c.Request.Context(), int(n))
		respondList(c, rows, err)
	})
	rg.GET("/trade-zero-facts/trained/:trained", func(c *gin.Context) {
		b, err := strconv.ParseBool(c.Param("trained"))
		if err != nil {
			respondError(c, &repository.ValidationError{Field: "trained", Reason: "not a boolean: " + c.Param("trained")})
			return
		}
		rows, err := repo.FindByTrained(c.Request.Context(), b)
		respondList(c, rows, err)
	})
}

func RegisterPortfolioFactRoutes(rg *gin.RouterGroup, svc crudService[entity.PortfolioFact, uuid.UUID], repo repository.PortfolioFactRepository) {
	registerCrud(rg, "/portfolios", svc, parseUUID)
	rg.GET("/portfolios/trade-zero-fact/:factId", func(c *gin.Context) {
		id, ok := paramUUID(c, "factId")
		if !ok {
			return
		}
		rows, err := repo.FindByTradeZeroFact(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/portfolios/name/:name", func(c *gin.Context) {
		rows, err := repo.FindByName(c.Request.Context(), c.Param("name"))
		respondList(c, rows, err)
	})
	rg.GET("/portfolios/search", func(c *gin.Context) {
		rows, err := repo.FindByDescriptionContaining(c.Request.Context(), c.Query("description"))
		respondList(c, rows, err)
	})
}

func RegisterRiskManagementFactRoutes(rg *gin.RouterGroup, svc crudService[entity.RiskManagementFact, uuid.UUID], repo repository.RiskManagementFactRepository) {
	registerCrud(rg, "/risk-managements", svc, parseUUID)
	rg.GET("/risk-managements/trade-zero-fact/:factId", func(c *gin.Context) {
		id, ok := paramUUID(c, "factId")
		if !ok {
			return
		}
		rows, err := repo.FindByTradeZeroFact(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/risk-managements/actions/:actions", func(c *gin.Context) {
		n, ok := paramInt64(c, "actions")
		if !ok {
			return
		}
		rows, err := repo.FindByActions(c.Request.Context(), int(n))
		respondList(c, rows, err)
	})
}

func RegisterRiskMetricsFactRoutes(rg *gin.RouterGroup, svc crudService[entity.RiskMetricsFact, uuid.UUID], repo repository.RiskMetricsFactRepository) {
	registerCrud(rg, "/risk-metrics", svc, parseUUID)
	rg.GET("/risk-metrics/risk-management/:rmId", func(c *gin.Context) {
		id, ok := paramUUID(c, "rmId")
		if !ok {
			return
		}
		rows, err := repo.FindByRiskManagement(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/risk-metrics/calendar/:datetimeId", func(c *gin.Context) {
		n, ok := paramInt64(c, "datetimeId")
		if !ok {
			return
		}
		rows, err := repo.FindByCalendarID(c.Request.Context(), n)
		respondList(c, rows, err)
	})
	rg.GET("/risk-metrics/risk-management/:rmId/calendar/:datetimeId", func(c *gin.Context) {
		id, ok := paramUUID(c, "rmId")
		if !ok {
			return
		}
		n, ok := paramInt64(c, "datetimeId")
		if !ok {
			return
		}
		row, err := repo.FindByRiskManagementAndCalendarID(c.Request.Context(), id, n)
		respondOne(c, row, err)
	})
	rg.GET("/risk-metrics/margin-used-above/:marginUsed", func(c *gin.Context) {
		f, ok := paramFloat(c, "marginUsed")
		if !ok {
			return
		}
		rows, err := repo.FindByMarginUsedGreaterThan(c.Request.Context(), f)
		respondList(c, rows, err)
	})
	rg.GET("/risk-metrics/max-drawdown-below/:maxDrawdown", func(c *gin.Context) {
		f, ok := paramFloat(c, "maxDrawdown")
		if !ok {
			return
		}
		rows, err := repo.FindByMaxDrawdownLessThan(c.Request.Context(), f)
		respondList(c, rows, err)
	})
	rg.GET("/risk-metrics/sharpe-ratio-above/:sharpeRatio", func(c *gin.Context) {
		f, ok := paramFloat(c, "sharpeRatio")
		if !ok {
			return
		}
		rows, err := repo.FindBySharpeRatioGreaterThan(c.Request.Context(), f)
		respondList(c, rows, err)
	})
}

func RegisterActionFactRoutes(rg *gin.RouterGroup, svc crudService[entity.ActionFact, uuid.UUID], repo repository.ActionFactRepository) {
	registerCrud(rg, "/action-facts", svc, parseUUID)
	rg.GET("/action-facts/risk-management/:rmId", func(c *gin.Context) {
		id, ok := paramUUID(c, "rmId")
		if !ok {
			return
		}
		rows, err := repo.FindByRiskManagement(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/action-facts/action-dim/:dimId", func(c *gin.Context) {
		id, ok := paramUUID(c, "dimId")
		if !ok {
			return
		}
		rows, err := repo.FindByActionDim(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/action-facts/calendar/:datetimeId", func(c *gin.Context) {
		n, ok := paramInt64(c, "datetimeId")
		if !ok {
			return
		}
		rows, err := repo.FindByCalendarID(c.Request.Context(), n)
		respondList(c, rows, err)
	})
}

func RegisterOrderFactRoutes(rg *gin.RouterGroup, svc crudService[entity.OrderFact, uuid.UUID], repo repository.OrderFactRepository) {
	registerCrud(rg, "/orders", svc, parseUUID)
	rg.GET("/orders/order-dim/:dimId", func(c *gin.Context) {
		id, ok := paramUUID(c, "dimId")
		if !ok {
			return
		}
		rows, err := repo.FindByOrderDim(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/orders/venue/:venueId", func(c *gin.Context) {
		id, ok := paramUUID(c, "venueId")
		if !ok {
			return
		}
		rows, err := repo.FindByVenue(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/orders/calendar/:datetimeId", func(c *gin.Context) {
		n, ok := paramInt64(c, "datetimeId")
		if !ok {
			return
		}
		rows, err := repo.FindByCalendarID(c.Request.Context(), n)
		respondList(c, rows, err)
	})
	rg.GET("/orders/portfolio/:portfolioId", func(c *gin.Context) {
		id, ok := paramUUID(c, "portfolioId")
		if !ok {
			return
		}
		rows, err := repo.FindByPortfolio(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/orders/status/:status", func(c *gin.Context) {
		st, err := entity.ParseOrderStatus(c.Param("status"))
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err := repo.FindByStatus(c.Request.Context(), st)
		respondList(c, rows, err)
	})
}

func RegisterBalanceFactRoutes(rg *gin.RouterGroup, svc crudService[entity.BalanceFact, uuid.UUID], repo repository.BalanceFactRepository) {
	registerCrud(rg, "/balances", svc, parseUUID)
	rg.GET("/balances/portfolio/:portfolioId", func(c *gin.Context) {
		id, ok := paramUUID(c, "portfolioId")
		if !ok {
			return
		}
		rows, err := repo.FindByPortfolio(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/balances/calendar/:datetimeId", func(c *gin.Context) {
		n, ok := paramInt64(c, "datetimeId")
		if !ok {
			return
		}
		rows, err := repo.FindByCalendarID(c.Request.Context(), n)
		respondList(c, rows, err)
	})
	rg.GET("/balances/portfolio/:portfolioId/calendar/:datetimeId", func(c *gin.Context) {
		id, ok := paramUUID(c, "portfolioId")
		if !ok {
			return
		}
		n, ok := paramInt64(c, "datetimeId")
		if !ok {
			return
		}
		row, err := repo.FindByPortfolioAndCalendarID(c.Request.Context(), id, n)
		respondOne(c, row, err)
	})
}

func RegisterPositionFactRoutes(rg *gin.RouterGroup, svc crudService[entity.PositionFact, uuid.UUID], repo repository.PositionFactRepository) {
	registerCrud(rg, "/positions", svc, parseUUID)
	rg.GET("/positions/portfolio/:portfolioId", func(c *gin.Context) {
		id, ok := paramUUID(c, "portfolioId")
		if !ok {
			return
		}
		rows, err := repo.FindByPortfolio(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/positions/position-dim/:dimId", func(c *gin.Context) {
		id, ok := paramUUID(c, "dimId")
		if !ok {
			return
		}
		rows, err := repo.FindByPositionDim(c.Request.Context(), id)
		respondList(c, rows, err)
	})
	rg.GET("/positions/calendar/:datetimeId", func(c *gin.Context) {
		n, ok := paramInt64(c, "datetimeId")
		if !ok {
			return
		}
		rows, err := repo.FindByCalendarID(c.Request.Context(), n)
		respondList(c, rows, err)
	})
	rg.GET("/positions/entry-price-above/:price", func(c *gin.Context) {
		f, ok := paramFloat(c, "price")
		if !ok {
			return
		}
		rows, err := repo.FindByEntryPriceGreaterThan(c.Request.Context(), f)
		respondList(c, rows, err)
	})
	rg.GET("/positions/entry-price-below/:price", func(c *gin.Context) {
		f, ok := paramFloat(c, "price")
		if !ok {
			return
		}
		rows, err := repo.FindByEntryPriceLessThan(c.Request.Context(), f)
		respondList(c, rows, err)
	})
}
