package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
)

// Диапазон стартовых просмотров портфолио: [seedViewsMin, seedViewsMin+seedViewsSpread).
const (
	seedViewsMin    = 500
	seedViewsSpread = 5000
)

// SeedRepository описывает операции хранилища, нужные для начального наполнения.
type SeedRepository interface {
	CountPortfolios(ctx context.Context) (int, error)
	ImportPortfolio(ctx context.Context, in models.NewPortfolio, views int64) (*models.Portfolio, error)
	CreateCaseStudy(ctx context.Context, in models.NewCaseStudy) (*models.CaseStudy, error)
}

// SeedService наполняет пустое хранилище стартовым каталогом.
type SeedService struct {
	repo SeedRepository
	rng  *rand.Rand
}

// NewSeedService создаёт сервис. seed=0 означает случайное зерно от текущего времени.
func NewSeedService(repo SeedRepository, seed int64) *SeedService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SeedService{
		repo: repo,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// SeedResult сообщает, сколько записей добавлено.
type SeedResult struct {
	Skipped     bool
	Portfolios  int
	CaseStudies int
}

// Seed добавляет стартовые портфолио и статьи. Если портфолио уже есть, ничего не делает.
func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	count, err := s.repo.CountPortfolios(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed service: %w", err)
	}
	if count > 0 {
		return SeedResult{Skipped: true}, nil
	}

	var result SeedResult
	for _, p := range seedPortfolios {
		views := int64(seedViewsMin + s.rng.Intn(seedViewsSpread))
		if _, err := s.repo.ImportPortfolio(ctx, p, views); err != nil {
			return result, fmt.Errorf("seed service: failed to import portfolio %q: %w", p.Title, err)
		}
		result.Portfolios++
	}

	for _, cs := range seedCaseStudies {
		if _, err := s.repo.CreateCaseStudy(ctx, cs); err != nil {
			return result, fmt.Errorf("seed service: failed to create case study %q: %w", cs.Title, err)
		}
		result.CaseStudies++
	}

	return result, nil
}
