package usecase

import (
	"context"

	"trading_backend/internal/domain/repository"
)

// Registry applies the uniform CRUD shape to a dimension store: validate
// the candidate, then delegate. Surrogate-key discipline (discarding
// caller-supplied keys, find-or-fail on update/delete) lives in the
// repository; the registry adds only what dimensions need on top.
type Registry[E any, K any] struct {
	repo repository.Crud[E, K]
}

func NewRegistry[E any, K any](repo repository.Crud[E, K]) *Registry[E, K] {
	return &Registry[E, K]{repo: repo}
}

func (r *Registry[E, K]) List(ctx context.Context) ([]E, error) {
	return r.repo.FindAll(ctx)
}

func (r *Registry[E, K]) Get(ctx context.Context, k K) (*E, error) {
	return r.repo.FindByKey(ctx, k)
}

func (r *Registry[E, K]) Create(ctx context.Context, e *E) (*E, error) {
	if err := validateEntity(e); err != nil {
		return nil, err
	}
	return r.repo.Create(ctx, e)
}

func (r *Registry[E, K]) Update(ctx context.Context, k K, e *E) (*E, error) {
	if err := validateEntity(e); err != nil {
		return nil, err
	}
	return r.repo.Update(ctx, k, e)
}

func (r *Registry[E, K]) Delete(ctx context.Context, k K) error {
	return r.repo.Delete(ctx, k)
}
