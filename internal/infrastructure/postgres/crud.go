// Package postgres implements the repository contracts on gorm. The
// production store is PostgreSQL; tests run the same adapters against an
// in-memory SQLite database.
package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trading_backend/internal/domain/repository"
)

// crud is the one generic engine behind every entity adapter. Adapters
// embed it and add their attribute lookups; what varies per entity is only
// the table schema, the key column and the key strategy (generated via
// newKey, or natural/caller-supplied when newKey is nil).
type crud[E any, K any] struct {
	db     *gorm.DB
	entity string
	keyCol string
	newKey func(*E)
}

func newCrud[E any, K any](db *gorm.DB, entity, keyCol string, newKey func(*E)) *crud[E, K] {
	return &crud[E, K]{db: db, entity: entity, keyCol: keyCol, newKey: newKey}
}

func (c *crud[E, K]) FindAll(ctx context.Context) ([]E, error) {
	rows := make([]E, 0)
	if err := c.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *crud[E, K]) FindByKey(ctx context.Context, k K) (*E, error) {
	var row E
	err := c.db.WithContext(ctx).Where(c.keyCol+" = ?", k).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &repository.NotFoundError{Entity: c.entity, Key: k}
		}
		return nil, err
	}
	return &row, nil
}

func (c *crud[E, K]) Create(ctx context.Context, e *E) (*E, error) {
	if c.newKey != nil {
		// Surrogate identity is always assigned by the store; a
		// caller-supplied key is discarded.
		c.newKey(e)
	}
	if err := c.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, c.translate(err)
	}
	return e, nil
}

func (c *crud[E, K]) Update(ctx context.Context, k K, e *E) (*E, error) {
	if _, err := c.FindByKey(ctx, k); err != nil {
		return nil, err
	}
	err := c.db.WithContext(ctx).
		Model(new(E)).
		Where(c.keyCol+" = ?", k).
		Select("*").Omit(c.keyCol).
		Updates(e).Error
	if err != nil {
		return nil, c.translate(err)
	}
	return c.FindByKey(ctx, k)
}

func (c *crud[E, K]) Delete(ctx context.Context, k K) error {
	res := c.db.WithContext(ctx).Where(c.keyCol+" = ?", k).Delete(new(E))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &repository.NotFoundError{Entity: c.entity, Key: k}
	}
	return nil
}

// findWhere backs the list-valued attribute lookups.
func (c *crud[E, K]) findWhere(ctx context.Context, query string, args ...any) ([]E, error) {
	rows := make([]E, 0)
	if err := c.db.WithContext(ctx).Where(query, args...).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// firstWhere backs the single-valued attribute lookups; key is what the
// NotFoundError reports when no row matches.
func (c *crud[E, K]) firstWhere(ctx context.Context, key any, query string, args ...any) (*E, error) {
	var row E
	err := c.db.WithContext(ctx).Where(query, args...).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &repository.NotFoundError{Entity: c.entity, Key: key}
		}
		return nil, err
	}
	return &row, nil
}

// translate maps engine uniqueness violations onto the typed taxonomy.
// Requires gorm.Config{TranslateError: true} on the connection.
func (c *crud[E, K]) translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &repository.ConflictError{Entity: c.entity, Detail: err.Error()}
	}
	return err
}
