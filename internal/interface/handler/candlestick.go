package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/usecase"
)

// CandlestickHandler exposes the composite-keyed market fact. The key is
// spelled out as four path segments instead of a single :id.
type CandlestickHandler struct {
	svc *usecase.CandlestickService
}

func NewCandlestickHandler(svc *usecase.CandlestickService) *CandlestickHandler {
	return &CandlestickHandler{svc: svc}
}

// barKey assembles the composite key from the four path segments, reporting
// the first malformed segment.
func barKey(c *gin.Context) (entity.CandlestickKey, bool) {
	var k entity.CandlestickKey
	feedID, ok := paramUUID(c, "feedId")
	if !ok {
		return k, false
	}
	asset, err := entity.ParseAssetType(c.Param("assetType"))
	if err != nil {
		respondError(c, err)
		return k, false
	}
	tf, err := entity.ParseTimeFrame(c.Param("timeFrame"))
	if err != nil {
		respondError(c, err)
		return k, false
	}
	dt, ok := paramInt64(c, "datetimeId")
	if !ok {
		return k, false
	}
	k = entity.CandlestickKey{DataFeedID: feedID, TradeAsset: asset, TradeTimeFrame: tf, DatetimeID: dt}
	return k, true
}

func (h *CandlestickHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/candlesticks", h.list)
	rg.POST("/candlesticks", h.create)
	rg.GET("/candlesticks/feed/:feedId", h.listByFeed)
	rg.GET("/candlesticks/asset/:assetType", h.listByAsset)
	rg.GET("/candlesticks/time-frame/:timeFrame", h.listByTimeFrame)
	rg.GET("/candlesticks/calendar/:datetimeId", h.listByCalendarID)
	rg.GET("/candlesticks/series/:feedId/:assetType/:timeFrame", h.listSeries)
	rg.GET("/candlesticks/bar/:feedId/:assetType/:timeFrame/:datetimeId", h.get)
	rg.PUT("/candlesticks/bar/:feedId/:assetType/:timeFrame/:datetimeId", h.update)
	rg.DELETE("/candlesticks/bar/:feedId/:assetType/:timeFrame/:datetimeId", h.delete)
}

func (h *CandlestickHandler) list(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	respondList(c, rows, err)
}

func (h *CandlestickHandler) get(c *gin.Context) {
	k, ok := barKey(c)
	if !ok {
		return
	}
	row, err := h.svc.Get(c.Request.Context(), k)
	respondOne(c, row, err)
}

func (h *CandlestickHandler) listByFeed(c *gin.Context) {
	feedID, ok := paramUUID(c, "feedId")
	if !ok {
		return
	}
	rows, err := h.svc.ListByFeed(c.Request.Context(), feedID)
	respondList(c, rows, err)
}

func (h *CandlestickHandler) listByAsset(c *gin.Context) {
	asset, err := entity.ParseAssetType(c.Param("assetType"))
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := h.svc.ListByAsset(c.Request.Context(), asset)
	respondList(c, rows, err)
}

func (h *CandlestickHandler) listByTimeFrame(c *gin.Context) {
	tf, err := entity.ParseTimeFrame(c.Param("timeFrame"))
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := h.svc.ListByTimeFrame(c.Request.Context(), tf)
	respondList(c, rows, err)
}

func (h *CandlestickHandler) listByCalendarID(c *gin.Context) {
	dt, ok := paramInt64(c, "datetimeId")
	if !ok {
		return
	}
	rows, err := h.svc.ListByCalendarID(c.Request.Context(), dt)
	respondList(c, rows, err)
}

func (h *CandlestickHandler) listSeries(c *gin.Context) {
	feedID, ok := paramUUID(c, "feedId")
	if !ok {
		return
	}
	asset, err := entity.ParseAssetType(c.Param("assetType"))
	if err != nil {
		respondError(c, err)
		return
	}
	tf, err := entity.ParseTimeFrame(c.Param("timeFrame"))
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := h.svc.ListSeries(c.Request.Context(), feedID, asset, tf)
	respondList(c, rows, err)
}

func (h *CandlestickHandler) create(c *gin.Context) {
	var bar entity.Candlestick
	if err := c.ShouldBindJSON(&bar); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	row, err := h.svc.Create(c.Request.Context(), &bar)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *CandlestickHandler) update(c *gin.Context) {
	k, ok := barKey(c)
	if !ok {
		return
	}
	var bar entity.Candlestick
	if err := c.ShouldBindJSON(&bar); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	row, err := h.svc.Update(c.Request.Context(), k, &bar)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CandlestickHandler) delete(c *gin.Context) {
	k, ok := barKey(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), k); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
