package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

func TestCalendarService_AcceptsConsistentRow(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewCalendarService(e.res.Calendar)
	ctx := context.Background()

	at := time.Date(2024, 3, 15, 14, 45, 0, 0, time.UTC)
	row := entity.NewDateTimeDim(at.Unix(), at)

	created, err := svc.Create(ctx, &row)
	require.NoError(t, err)
	assert.Equal(t, at.Unix(), created.DatetimeID)

	got, err := svc.Get(ctx, at.Unix())
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year)
}

func TestCalendarService_RejectsInconsistentRow(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewCalendarService(e.res.Calendar)
	ctx := context.Background()

	at := time.Date(2024, 3, 15, 14, 45, 0, 0, time.UTC)
	row := entity.NewDateTimeDim(at.Unix(), at)
	row.DayOfWeek = 1 // the 15th is a Friday

	_, err := svc.Create(ctx, &row)
	var validation *repository.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Reason, "dayOfWeek")

	assert.Zero(t, e.rowCount(t, &entity.DateTimeDim{}))
}

func TestCalendarService_UpdateVerifiesConsistency(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewCalendarService(e.res.Calendar)
	ctx := context.Background()

	at := time.Date(2024, 3, 15, 14, 45, 0, 0, time.UTC)
	row := entity.NewDateTimeDim(at.Unix(), at)
	_, err := svc.Create(ctx, &row)
	require.NoError(t, err)

	broken := row
	broken.Month = 12
	_, err = svc.Update(ctx, row.DatetimeID, &broken)
	var validation *repository.ValidationError
	assert.ErrorAs(t, err, &validation)
}
