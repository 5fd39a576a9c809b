package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

type candlestickGorm struct {
	db *gorm.DB
}

var _ repository.CandlestickRepository = (*candlestickGorm)(nil)

func NewCandlestickRepository(db *gorm.DB) *candlestickGorm {
	return &candlestickGorm{db: db}
}

func (r *candlestickGorm) FindAll(ctx context.Context) ([]entity.Candlestick, error) {
	rows := make([]entity.Candlestick, 0)
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *candlestickGorm) FindByKey(ctx context.Context, k entity.CandlestickKey) (*entity.Candlestick, error) {
	var row entity.Candlestick
	err := r.keyed(ctx, k).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &repository.NotFoundError{Entity: "candlestick", Key: k}
		}
		return nil, err
	}
	return &row, nil
}

func (r *candlestickGorm) FindByFeed(ctx context.Context, feedID uuid.UUID) ([]entity.Candlestick, error) {
	return r.find(ctx, "data_feed_uuid = ?", feedID)
}

func (r *candlestickGorm) FindByAsset(ctx context.Context, asset entity.AssetType) ([]entity.Candlestick, error) {
	return r.find(ctx, "trade_asset = ?", asset)
}

func (r *candlestickGorm) FindByTimeFrame(ctx context.Context, tf entity.TimeFrame) ([]entity.Candlestick, error) {
	return r.find(ctx, "trade_time_frame = ?", tf)
}

func (r *candlestickGorm) FindByCalendarID(ctx context.Context, datetimeID int64) ([]entity.Candlestick, error) {
	return r.find(ctx, "datetime_id = ?", datetimeID)
}

func (r *candlestickGorm) FindByFeedAssetTimeFrame(ctx context.Context, feedID uuid.UUID, asset entity.AssetType, tf entity.TimeFrame) ([]entity.Candlestick, error) {
	rows := make([]entity.Candlestick, 0)
	err := r.db.WithContext(ctx).
		Where("data_feed_uuid = ? AND trade_asset = ? AND trade_time_frame = ?", feedID, asset, tf).
		Order("datetime_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert inserts the bar, replacing the OHLCV payload when the composite
// key already exists.
func (r *candlestickGorm) Upsert(ctx context.Context, c *entity.Candlestick) (*entity.Candlestick, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "data_feed_uuid"}, {Name: "trade_asset"},
			{Name: "trade_time_frame"}, {Name: "datetime_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume"}),
	}).Create(c).Error
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *candlestickGorm) Update(ctx context.Context, k entity.CandlestickKey, c *entity.Candlestick) (*entity.Candlestick, error) {
	if _, err := r.FindByKey(ctx, k); err != nil {
		return nil, err
	}
	err := r.keyed(ctx, k).
		Model(&entity.Candlestick{}).
		Updates(map[string]any{
			"open": c.Open, "high": c.High, "low": c.Low,
			"close": c.Close, "volume": c.Volume,
		}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByKey(ctx, k)
}

func (r *candlestickGorm) Delete(ctx context.Context, k entity.CandlestickKey) error {
	res := r.keyed(ctx, k).Delete(&entity.Candlestick{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &repository.NotFoundError{Entity: "candlestick", Key: k}
	}
	return nil
}

func (r *candlestickGorm) find(ctx context.Context, query string, args ...any) ([]entity.Candlestick, error) {
	rows := make([]entity.Candlestick, 0)
	if err := r.db.WithContext(ctx).Where(query, args...).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *candlestickGorm) keyed(ctx context.Context, k entity.CandlestickKey) *gorm.DB {
	return r.db.WithContext(ctx).Where(
		"data_feed_uuid = ? AND trade_asset = ? AND trade_time_frame = ? AND datetime_id = ?",
		k.DataFeedID, k.TradeAsset, k.TradeTimeFrame, k.DatetimeID)
}
