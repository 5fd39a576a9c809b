package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

func newBar(feed uuid.UUID, datetimeID int64, close float64) entity.Candlestick {
	return entity.Candlestick{
		CandlestickKey: entity.CandlestickKey{
			DataFeedID:     feed,
			TradeAsset:     entity.AssetWIN,
			TradeTimeFrame: entity.TimeFrameM5,
			DatetimeID:     datetimeID,
		},
		Open: close - 5, High: close + 5, Low: close - 10, Close: close, Volume: 10,
	}
}

func TestCandlestickService_CreateChecksFeed(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewCandlestickService(e.bars, e.res)
	ctx := context.Background()

	ghost := uuid.New()
	bar := newBar(ghost, 1000, 128000)

	_, err := svc.Create(ctx, &bar)
	var ref *repository.ReferentialError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "dataFeedUuid", ref.Field)
	assert.Zero(t, e.rowCount(t, &entity.Candlestick{}))
}

func TestCandlestickService_CreateIsInsertOrReplace(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewCandlestickService(e.bars, e.res)
	ctx := context.Background()

	feed := e.seedFeed(t, "b3-replay")

	first := newBar(feed.ID, 1000, 128000)
	_, err := svc.Create(ctx, &first)
	require.NoError(t, err)

	second := newBar(feed.ID, 1000, 129500)
	_, err = svc.Create(ctx, &second)
	require.NoError(t, err)

	assert.Equal(t, int64(1), e.rowCount(t, &entity.Candlestick{}))

	got, err := svc.Get(ctx, first.CandlestickKey)
	require.NoError(t, err)
	assert.Equal(t, float64(129500), got.Close)
}

func TestCandlestickService_UpdateKeepsKeyImmutable(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewCandlestickService(e.bars, e.res)
	ctx := context.Background()

	feed := e.seedFeed(t, "b3-replay")
	bar := newBar(feed.ID, 1000, 128000)
	_, err := svc.Create(ctx, &bar)
	require.NoError(t, err)

	// The payload carries a different key; the path key wins.
	patch := newBar(uuid.New(), 9999, 130000)
	updated, err := svc.Update(ctx, bar.CandlestickKey, &patch)
	require.NoError(t, err)
	assert.Equal(t, bar.CandlestickKey, updated.CandlestickKey)
	assert.Equal(t, float64(130000), updated.Close)
	assert.Equal(t, int64(1), e.rowCount(t, &entity.Candlestick{}))
}

func TestCandlestickService_ListSeries(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewCandlestickService(e.bars, e.res)
	ctx := context.Background()

	feed := e.seedFeed(t, "b3-replay")
	for _, id := range []int64{300, 100, 200} {
		bar := newBar(feed.ID, id, float64(id))
		_, err := svc.Create(ctx, &bar)
		require.NoError(t, err)
	}

	series, err := svc.ListSeries(ctx, feed.ID, entity.AssetWIN, entity.TimeFrameM5)
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, int64(100), series[0].DatetimeID)
	assert.Equal(t, int64(300), series[2].DatetimeID)
}
