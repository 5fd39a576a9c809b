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

func TestRegistry_CreateValidatesScalars(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewRegistry[entity.TradeZeroDim, uuid.UUID](e.res.TradeZeroDims)
	ctx := context.Background()

	_, err := svc.Create(ctx, &entity.TradeZeroDim{
		TradeAsset:        []entity.AssetType{entity.AssetWIN},
		TradeTimeFrame:    entity.TimeFrameM5,
		BalanceInitial:    10000,
		Drawdown:          0.2,
		MaxVolume:         10,
		MaxHold:           12,
		LookBack:          600, // above the allowed window
		LookForward:       20,
		BackPropagateSize: 36,
		MaxEpisode:        500,
	})

	var validation *repository.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "LookBack", validation.Field)
	assert.Zero(t, e.rowCount(t, &entity.TradeZeroDim{}))
}

func TestRegistry_RoundTrip(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewRegistry[entity.Agent, uuid.UUID](e.res.Agents)
	ctx := context.Background()

	created, err := svc.Create(ctx, &entity.Agent{Name: "dqn-v2"})
	require.NoError(t, err)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))

	var notFound *repository.NotFoundError
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorAs(t, err, &notFound)
}

func TestRegistry_DuplicateNaturalAttributeConflicts(t *testing.T) {
	t.Parallel()

	e := setupEnv(t)
	svc := NewRegistry[entity.Agent, uuid.UUID](e.res.Agents)
	ctx := context.Background()

	_, err := svc.Create(ctx, &entity.Agent{Name: "dqn-v2"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &entity.Agent{Name: "dqn-v2"})
	var conflict *repository.ConflictError
	assert.ErrorAs(t, err, &conflict)
}
