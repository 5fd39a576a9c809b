package usecase

import (
	"context"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

// CalendarService is the registry over the precomputed calendar dimension.
// The store never synthesizes ids or derived fields, but it does verify
// that the supplied row is internally consistent before accepting it.
type CalendarService struct {
	*Registry[entity.DateTimeDim, int64]
}

func NewCalendarService(repo repository.DateTimeRepository) *CalendarService {
	return &CalendarService{Registry: NewRegistry[entity.DateTimeDim, int64](repo)}
}

func (s *CalendarService) Create(ctx context.Context, d *entity.DateTimeDim) (*entity.DateTimeDim, error) {
	if err := d.CheckConsistent(); err != nil {
		return nil, &repository.ValidationError{Reason: err.Error()}
	}
	return s.Registry.Create(ctx, d)
}

func (s *CalendarService) Update(ctx context.Context, id int64, d *entity.DateTimeDim) (*entity.DateTimeDim, error) {
	if err := d.CheckConsistent(); err != nil {
		return nil, &repository.ValidationError{Reason: err.Error()}
	}
	return s.Registry.Update(ctx, id, d)
}
