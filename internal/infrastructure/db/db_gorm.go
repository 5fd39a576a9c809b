// Package db opens the gorm connection backing every repository.
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trading_backend/internal/app/config"
	"trading_backend/internal/domain/entity"
)

// Open connects to PostgreSQL and migrates the dimensional schema.
// TranslateError is on so adapters see gorm.ErrDuplicatedKey instead of
// driver-specific uniqueness errors.
func Open(cfg config.Database) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// Migrate creates or updates every table of the star schema.
func Migrate(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&entity.Stock{},
		&entity.Agent{},
		&entity.OrderVenue{},
		&entity.TimeFrameDim{},
		&entity.ActionDim{},
		&entity.OrderDim{},
		&entity.PositionDim{},
		&entity.TradeZeroDim{},
		&entity.DataFeed{},
		&entity.DateTimeDim{},
		&entity.TradeZeroFact{},
		&entity.PortfolioFact{},
		&entity.RiskManagementFact{},
		&entity.RiskMetricsFact{},
		&entity.ActionFact{},
		&entity.OrderFact{},
		&entity.BalanceFact{},
		&entity.PositionFact{},
		&entity.Candlestick{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
