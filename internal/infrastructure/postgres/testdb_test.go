package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trading_backend/internal/domain/entity"
	infradb "trading_backend/internal/infrastructure/db"
)

// setupTestDB prepares an in-memory SQLite database with the full schema.
// TranslateError is on, matching the production connection, so uniqueness
// violations surface as gorm.ErrDuplicatedKey here too.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	require.NoError(t, infradb.Migrate(conn), "failed to migrate schema")
	return conn
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()

	at, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return at
}

func seedStock(t *testing.T, conn *gorm.DB, asset entity.AssetType) *entity.Stock {
	t.Helper()

	s := &entity.Stock{
		ID:         uuid.New(),
		AssetType:  asset,
		Name:       "Mini " + string(asset),
		TickSize:   5,
		TickValue:  1,
		VolumeSize: 1,
	}
	require.NoError(t, conn.Create(s).Error, "failed to seed stock")
	return s
}

func seedDataFeed(t *testing.T, conn *gorm.DB, name string) *entity.DataFeed {
	t.Helper()

	f := &entity.DataFeed{ID: uuid.New(), Name: name}
	require.NoError(t, conn.Create(f).Error, "failed to seed data feed")
	return f
}

func seedCalendarRow(t *testing.T, conn *gorm.DB, at time.Time) *entity.DateTimeDim {
	t.Helper()

	d := entity.NewDateTimeDim(at.Unix(), at)
	require.NoError(t, conn.Create(&d).Error, "failed to seed calendar row")
	return &d
}

func seedBar(t *testing.T, conn *gorm.DB, k entity.CandlestickKey, close float64) *entity.Candlestick {
	t.Helper()

	bar := &entity.Candlestick{
		CandlestickKey: k,
		Open:           close - 10,
		High:           close + 5,
		Low:            close - 15,
		Close:          close,
		Volume:         100,
	}
	require.NoError(t, conn.Create(bar).Error, "failed to seed candlestick")
	return bar
}
