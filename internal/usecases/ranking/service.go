package ranking

import (
	"context"

	"github.com/vfg2006/car-sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
)

type RankingService interface {
	GetBrandRanking(ctx context.Context, year int) (*domain.BrandRankingResponse, error)
}

type BrandRankingService struct {
	BrandRankingRepository repository.BrandRankingRepository
}

func NewBrandRankingService(brandRankingRepository repository.BrandRankingRepository) RankingService {
	return &BrandRankingService{
		BrandRankingRepository: brandRankingRepository,
	}
}

func (s *BrandRankingService) GetBrandRanking(ctx context.Context, year int) (*domain.BrandRankingResponse, error) {
	ranking, err := s.BrandRankingRepository.GetByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return ranking, nil
}
