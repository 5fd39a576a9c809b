package usecase

import (
	"context"

	"github.com/google/uuid"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

// CandlestickService orchestrates the time-partitioned market fact.
// Create is insert-or-replace on the composite key, and unlike the other
// facts' generated keys the feed reference is the one foreign key here, so
// it is resolved before every write.
type CandlestickService struct {
	repo repository.CandlestickRepository
	res  *Resolver
}

func NewCandlestickService(repo repository.CandlestickRepository, res *Resolver) *CandlestickService {
	return &CandlestickService{repo: repo, res: res}
}

func (s *CandlestickService) List(ctx context.Context) ([]entity.Candlestick, error) {
	return s.repo.FindAll(ctx)
}

func (s *CandlestickService) Get(ctx context.Context, k entity.CandlestickKey) (*entity.Candlestick, error) {
	return s.repo.FindByKey(ctx, k)
}

func (s *CandlestickService) ListByFeed(ctx context.Context, feedID uuid.UUID) ([]entity.Candlestick, error) {
	return s.repo.FindByFeed(ctx, feedID)
}

func (s *CandlestickService) ListByAsset(ctx context.Context, asset entity.AssetType) ([]entity.Candlestick, error) {
	return s.repo.FindByAsset(ctx, asset)
}

func (s *CandlestickService) ListByTimeFrame(ctx context.Context, tf entity.TimeFrame) ([]entity.Candlestick, error) {
	return s.repo.FindByTimeFrame(ctx, tf)
}

func (s *CandlestickService) ListByCalendarID(ctx context.Context, datetimeID int64) ([]entity.Candlestick, error) {
	return s.repo.FindByCalendarID(ctx, datetimeID)
}

// ListSeries returns all bars of one instrument and resolution from one
// feed, ordered by calendar id ascending.
func (s *CandlestickService) ListSeries(ctx context.Context, feedID uuid.UUID, asset entity.AssetType, tf entity.TimeFrame) ([]entity.Candlestick, error) {
	return s.repo.FindByFeedAssetTimeFrame(ctx, feedID, asset, tf)
}

// Create persists the bar with insert-or-replace semantics: a second create
// with the same composite key overwrites the stored OHLCV payload.
func (s *CandlestickService) Create(ctx context.Context, bar *entity.Candlestick) (*entity.Candlestick, error) {
	if err := validateEntity(bar); err != nil {
		return nil, err
	}
	if _, err := s.res.ResolveDataFeed(ctx, bar.DataFeedID); err != nil {
		return nil, refErr("dataFeedUuid", bar.DataFeedID, err)
	}
	return s.repo.Upsert(ctx, bar)
}

// Update replaces the OHLCV payload of an existing key; the key itself is
// immutable and must already exist.
func (s *CandlestickService) Update(ctx context.Context, k entity.CandlestickKey, bar *entity.Candlestick) (*entity.Candlestick, error) {
	bar.CandlestickKey = k
	if err := validateEntity(bar); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, k, bar)
}

func (s *CandlestickService) Delete(ctx context.Context, k entity.CandlestickKey) error {
	return s.repo.Delete(ctx, k)
}
