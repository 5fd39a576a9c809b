package entity

import (
	"strings"

	"github.com/google/uuid"
)

// CandlestickKey is the composite identity of one bar: source feed,
// instrument, resolution and calendar timestamp taken together. It is a
// plain comparable struct, so two keys are equal iff all four parts are
// equal, and it can be used directly as a map key.
type CandlestickKey struct {
	DataFeedID     uuid.UUID `json:"dataFeedUuid" gorm:"column:data_feed_uuid;type:uuid;primaryKey" validate:"required"`
	TradeAsset     AssetType `json:"tradeAsset" gorm:"column:trade_asset;primaryKey" validate:"required,oneof=WIN$ WDO$"`
	TradeTimeFrame TimeFrame `json:"tradeTimeFrame" gorm:"column:trade_time_frame;primaryKey" validate:"required,oneof=m1 m5 m15 m30 H1 H4 D1 W1"`
	DatetimeID     int64     `json:"datetimeId" gorm:"column:datetime_id;primaryKey;autoIncrement:false" validate:"required"`
}

// Compare imposes a total order: by feed, then asset, then time frame
// (finest first), then calendar id.
func (k CandlestickKey) Compare(other CandlestickKey) int {
	if c := strings.Compare(k.DataFeedID.String(), other.DataFeedID.String()); c != 0 {
		return c
	}
	if c := strings.Compare(string(k.TradeAsset), string(other.TradeAsset)); c != 0 {
		return c
	}
	if c := k.TradeTimeFrame.Compare(other.TradeTimeFrame); c != 0 {
		return c
	}
	switch {
	case k.DatetimeID < other.DatetimeID:
		return -1
	case k.DatetimeID > other.DatetimeID:
		return 1
	}
	return 0
}

// Candlestick is one OHLCV bar. It is the only entity keyed by a compound
// business key rather than a generated surrogate: bar identity *is* the
// combination of source, instrument, resolution and timestamp.
type Candlestick struct {
	CandlestickKey
	Open   float64 `json:"open" gorm:"column:open;not null" validate:"required"`
	High   float64 `json:"high" gorm:"column:high;not null" validate:"required"`
	Low    float64 `json:"low" gorm:"column:low;not null" validate:"required"`
	Close  float64 `json:"close" gorm:"column:close;not null" validate:"required"`
	Volume float64 `json:"volume" gorm:"column:volume;not null" validate:"gte=0"`
}

func (Candlestick) TableName() string { return "candlestick_fact" }
