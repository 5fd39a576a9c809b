package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

// respondList and respondOne finish an attribute lookup.
func respondList[E any](c *gin.Context, rows []E, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func respondOne[E any](c *gin.Context, row *E, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// RegisterStockRoutes wires the stock dimension: uniform CRUD plus the
// unique asset-type lookup.
func RegisterStockRoutes(rg *gin.RouterGroup, svc crudService[entity.Stock, uuid.UUID], repo repository.StockRepository) {
	registerCrud(rg, "/stocks", svc, parseUUID)
	rg.GET("/stocks/asset-type/:assetType", func(c *gin.Context) {
		at, err := entity.ParseAssetType(c.Param("assetType"))
		if err != nil {
			respondError(c, err)
			return
		}
		row, err := repo.FindByAssetType(c.Request.Context(), at)
		respondOne(c, row, err)
	})
}

func RegisterAgentRoutes(rg *gin.RouterGroup, svc crudService[entity.Agent, uuid.UUID], repo repository.AgentRepository) {
	registerCrud(rg, "/agents", svc, parseUUID)
	rg.GET("/agents/name/:name", func(c *gin.Context) {
		row, err := repo.FindByName(c.Request.Context(), c.Param("name"))
		respondOne(c, row, err)
	})
}

func RegisterOrderVenueRoutes(rg *gin.RouterGroup, svc crudService[entity.OrderVenue, uuid.UUID], repo repository.OrderVenueRepository) {
	registerCrud(rg, "/venues", svc, parseUUID)
	rg.GET("/venues/exchange/:exchange", func(c *gin.Context) {
		rows, err := repo.FindByExchange(c.Request.Context(), c.Param("exchange"))
		respondList(c, rows, err)
	})
	rg.GET("/venues/broker/:broker", func(c *gin.Context) {
		rows, err := repo.FindByBroker(c.Request.Context(), c.Param("broker"))
		respondList(c, rows, err)
	})
	rg.GET("/venues/platform/:platform", func(c *gin.Context) {
		rows, err := repo.FindByPlatform(c.Request.Context(), c.Param("platform"))
		respondList(c, rows, err)
	})
	// All three attributes at once, as query parameters.
	rg.GET("/venues/search", func(c *gin.Context) {
		rows, err := repo.FindByExchangeBrokerPlatform(c.Request.Context(),
			c.Query("exchange"), c.Query("broker"), c.Query("platform"))
		respondList(c, rows, err)
	})
}

func RegisterTimeFrameRoutes(rg *gin.RouterGroup, svc crudService[entity.TimeFrameDim, entity.TimeFrame]) {
	registerCrud(rg, "/time-frames", svc, func(s string) (entity.TimeFrame, error) {
		return entity.ParseTimeFrame(s)
	})
}

func RegisterActionDimRoutes(rg *gin.RouterGroup, svc crudService[entity.ActionDim, uuid.UUID], repo repository.ActionDimRepository) {
	registerCrud(rg, "/action-dims", svc, parseUUID)
	rg.GET("/action-dims/asset-type/:assetType", func(c *gin.Context) {
		at, err := entity.ParseAssetType(c.Param("assetType"))
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err := repo.FindByAssetType(c.Request.Context(), at)
		respondList(c, rows, err)
	})
	rg.GET("/action-dims/direction-type/:directionType", func(c *gin.Context) {
		dt, err := entity.ParseDirectionType(c.Param("directionType"))
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err := repo.FindByDirectionType(c.Request.Context(), dt)
		respondList(c, rows, err)
	})
	rg.GET("/action-dims/action-type/:actionType", func(c *gin.Context) {
		at, err := entity.ParseActionType(c.Param("actionType"))
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err := repo.FindByActionType(c.Request.Context(), at)
		respondList(c, rows, err)
	})
	rg.GET("/action-dims/search", func(c *gin.Context) {
		asset, err := entity.ParseAssetType(c.Query("assetType"))
		if err != nil {
			respondError(c, err)
			return
		}
		direction, err := entity.ParseDirectionType(c.Query("directionType"))
		if err != nil {
			respondError(c, err)
			return
		}
		action, err := entity.ParseActionType(c.Query("actionType"))
		if err != nil {
			respondError(c, err)
			return
		}
		volume, err := strconv.ParseFloat(c.Query("volume"), 64)
		if err != nil {
			respondError(c, &repository.ValidationError{Field: "volume", Reason: "not a number"})
			return
		}
		row, err := repo.FindByAttributes(c.Request.Context(), asset, direction, action, volume)
		respondOne(c, row, err)
	})
}

func RegisterOrderDimRoutes(rg *gin.RouterGroup, svc crudService[entity.OrderDim, uuid.UUID], repo repository.OrderDimRepository) {
	registerCrud(rg, "/order-dims", svc, parseUUID)
	rg.GET("/order-dims/order-type/:orderType", func(c *gin.Context) {
		ot, err := entity.ParseOrderType(c.Param("orderType"))
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err := repo.FindByOrderType(c.Request.Context(), ot)
		respondList(c, rows, err)
	})
	rg.GET("/order-dims/direction-type/:directionType", func(c *gin.Context) {
		dt, err := entity.ParseDirectionType(c.Param("directionType"))
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err := repo.FindByDirectionType(c.Request.Context(), dt)
		respondList(c, rows, err)
	})
	rg.GET("/order-dims/action-type/:actionType", func(c *gin.Context) {
		at, err := entity.ParseActionType(c.Param("actionType"))
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err := repo.FindByActionType(c.Request.Context(), at)
		respondList(c, rows, err)
	})
	rg.GET("/order-dims/asset-type/:assetType", func(c *gin.Context) {
		at, err := entity.ParseAssetType(c.Param("assetType"))
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err := repo.FindByAssetType(c.Request.Context(), at)
		respondList(c, rows, err)
	})
	rg.GET("/order-dims/search", func(c *gin.Context) {
		order, err := entity.ParseOrderType(c.Query("orderType"))
		if err != nil {
			respondError(c, err)
			return
		}
		direction, err := entity.ParseDirectionType(c.Query("directionType"))
		if err != nil {
			respondError(c, err)
			return
		}
		action, err := entity.ParseActionType(c.Query("actionType"))
		if err != nil {
			respondError(c, err)
			return
		}
		asset, err := entity.ParseAssetType(c.Query("assetType"))
		if err != nil {
			respondError(c, err)
			return
		}
		volume, err := strconv.ParseFloat(c.Query("volume"), 64)
		if err != nil {
			respondError(c, &repository.ValidationError{Field: "volume", Reason: "not a number"})
			return
		}
		row, err := repo.FindByAttributes(c.Request.Context(), order, direction, action, asset, volume)
		respondOne(c, row, err)
	})
}

func RegisterPositionDimRoutes(rg *gin.RouterGroup, svc crudService[entity.PositionDim, uuid.UUID], repo repository.PositionDimRepository) {
	registerCrud(rg, "/position-dims", svc, parseUUID)
	rg.GET("/position-dims/asset-type/:assetType", func(c *gin.Context) {
		at, err := entity.ParseAssetType(c.Param("assetType"))
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err := repo.FindByAssetType(c.Request.Context(), at)
		respondList(c, rows, err)
	})
	rg.GET("/position-dims/direction-type/:directionType", func(c *gin.Context) {
		dt, err := entity.ParseDirectionType(c.Param("directionType"))
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err := repo.FindByDirectionType(c.Request.Context(), dt)
		respondList(c, rows, err)
	})
	rg.GET("/position-dims/search", func(c *gin.Context) {
		asset, err := entity.ParseAssetType(c.Query("assetType"))
		if err != nil {
			respondError(c, err)
			return
		}
		direction, err := entity.ParseDirectionType(c.Query("directionType"))
		if err != nil {
			respondError(c, err)
			return
		}
		value, err := strconv.ParseFloat(c.Query("value"), 64)
		if err != nil {
			respondError(c, &repository.ValidationError{Field: "value", Reason: "not a number"})
			return
		}
		row, err := repo.FindByAssetDirectionValue(c.Request.Context(), asset, direction, value)
		respondOne(c, row, err)
	})
}

func RegisterTradeZeroDimRoutes(rg *gin.RouterGroup, svc crudService[entity.TradeZeroDim, uuid.UUID], repo repository.TradeZeroDimRepository) {
	registerCrud(rg, "/trade-zero-dims", svc, parseUUID)
	rg.GET("/trade-zero-dims/time-frame/:timeFrame", func(c *gin.Context) {
		tf, err := entity.ParseTimeFrame(c.Param("timeFrame"))
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err := repo.FindByTimeFrame(c.Request.Context(), tf)
		respondList(c, rows, err)
	})
}

func RegisterDataFeedRoutes(rg *gin.RouterGroup, svc crudService[entity.DataFeed, uuid.UUID], repo repository.DataFeedRepository) {
	registerCrud(rg, "/data-feeds", svc, parseUUID)
	rg.GET("/data-feeds/name/:name", func(c *gin.Context) {
		row, err := repo.FindByName(c.Request.Context(), c.Param("name"))
		respondOne(c, row, err)
	})
}

func RegisterCalendarRoutes(rg *gin.RouterGroup, svc crudService[entity.DateTimeDim, int64]) {
	registerCrud(rg, "/calendar", svc, parseInt64)
}
