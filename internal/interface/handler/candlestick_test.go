package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trading_backend/internal/domain/entity"
	infradb "trading_backend/internal/infrastructure/db"
	"trading_backend/internal/infrastructure/postgres"
	"trading_backend/internal/usecase"
)

// setupCandlestickRouter wires the candlestick routes over in-memory SQLite,
// exercising the whole stack from path parsing down to storage.
func setupCandlestickRouter(t *testing.T) (*gin.Engine, *entity.DataFeed) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, infradb.Migrate(conn))

	feedRepo := postgres.NewDataFeedRepository(conn)
	feed := &entity.DataFeed{ID: uuid.New(), Name: "b3-replay"}
	require.NoError(t, conn.Create(feed).Error)

	res := &usecase.Resolver{DataFeeds: feedRepo}
	svc := usecase.NewCandlestickService(postgres.NewCandlestickRepository(conn), res)

	r := gin.New()
	NewCandlestickHandler(svc).Register(r.Group("/"))
	return r, feed
}

func barURL(feed uuid.UUID, datetimeID int64) string {
	return fmt.Sprintf("/candlesticks/bar/%s/WIN$/m5/%d", feed, datetimeID)
}

func TestCandlestickHandler_CreateAndGet(t *testing.T) {
	r, feed := setupCandlestickRouter(t)

	bar := entity.Candlestick{
		CandlestickKey: entity.CandlestickKey{
			DataFeedID:     feed.ID,
			TradeAsset:     entity.AssetWIN,
			TradeTimeFrame: entity.TimeFrameM5,
			DatetimeID:     1000,
		},
		Open: 100, High: 110, Low: 95, Close: 105, Volume: 40,
	}

	w := doRequest(t, r, http.MethodPost, "/candlesticks", bar)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodGet, barURL(feed.ID, 1000), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.Candlestick
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, bar.CandlestickKey, got.CandlestickKey)
	assert.Equal(t, float64(105), got.Close)
}

func TestCandlestickHandler_CreateRepeatedKeyReplaces(t *testing.T) {
	r, feed := setupCandlestickRouter(t)

	bar := entity.Candlestick{
		CandlestickKey: entity.CandlestickKey{
			DataFeedID:     feed.ID,
			TradeAsset:     entity.AssetWIN,
			TradeTimeFrame: entity.TimeFrameM5,
			DatetimeID:     1000,
		},
		Open: 100, High: 110, Low: 95, Close: 105, Volume: 40,
	}
	w := doRequest(t, r, http.MethodPost, "/candlesticks", bar)
	require.Equal(t, http.StatusCreated, w.Code)

	bar.Close = 120
	w = doRequest(t, r, http.MethodPost, "/candlesticks", bar)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodGet, "/candlesticks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []entity.Candlestick
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, float64(120), all[0].Close)
}

func TestCandlestickHandler_UnknownFeedRejected(t *testing.T) {
	r, _ := setupCandlestickRouter(t)

	bar := entity.Candlestick{
		CandlestickKey: entity.CandlestickKey{
			DataFeedID:     uuid.New(),
			TradeAsset:     entity.AssetWIN,
			TradeTimeFrame: entity.TimeFrameM5,
			DatetimeID:     1000,
		},
		Open: 100, High: 110, Low: 95, Close: 105, Volume: 40,
	}

	w := doRequest(t, r, http.MethodPost, "/candlesticks", bar)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "dataFeedUuid")
}

func TestCandlestickHandler_MalformedKeySegments(t *testing.T) {
	r, feed := setupCandlestickRouter(t)

	tests := []struct {
		name string
		url  string
	}{
		{"bad feed id", "/candlesticks/bar/nope/WIN$/m5/1000"},
		{"bad asset", fmt.Sprintf("/candlesticks/bar/%s/PETR4/m5/1000", feed.ID)},
		{"bad time frame", fmt.Sprintf("/candlesticks/bar/%s/WIN$/m2/1000", feed.ID)},
		{"bad calendar id", fmt.Sprintf("/candlesticks/bar/%s/WIN$/m5/soon", feed.ID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, tt.url, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCandlestickHandler_MissingBar(t *testing.T) {
	r, feed := setupCandlestickRouter(t)

	w := doRequest(t, r, http.MethodGet, barURL(feed.ID, 404), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, barURL(feed.ID, 404), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCandlestickHandler_Series(t *testing.T) {
	r, feed := setupCandlestickRouter(t)

	for _, id := range []int64{300, 100, 200} {
		bar := entity.Candlestick{
			CandlestickKey: entity.CandlestickKey{
				DataFeedID:     feed.ID,
				TradeAsset:     entity.AssetWIN,
				TradeTimeFrame: entity.TimeFrameM5,
				DatetimeID:     id,
			},
			Open: 1, High: 2, Low: 1, Close: 2, Volume: 1,
		}
		w := doRequest(t, r, http.MethodPost, "/candlesticks", bar)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	url := fmt.Sprintf("/candlesticks/series/%s/WIN$/m5", feed.ID)
	w := doRequest(t, r, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var series []entity.Candlestick
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	require.Len(t, series, 3)
	assert.Equal(t, int64(100), series[0].DatetimeID)
	assert.Equal(t, int64(300), series[2].DatetimeID)
}
