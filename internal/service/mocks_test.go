package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/cookfolio-backend/internal/ai"
	"github.com/ignatzorin/cookfolio-backend/internal/models"
	"github.com/ignatzorin/cookfolio-backend/internal/repository"
)

type mockPortfolioRepo struct {
	mock.Mock
}

func (m *mockPortfolioRepo) ListPortfolios(ctx context.Context, filter repository.PortfolioFilter) ([]models.Portfolio, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Portfolio), args.Error(1)
}

func (m *mockPortfolioRepo) GetPortfolio(ctx context.Context, id int64) (*models.Portfolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Portfolio), args.Error(1)
}

func (m *mockPortfolioRepo) CreatePortfolio(ctx context.Context, in models.NewPortfolio) (*models.Portfolio, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Portfolio), args.Error(1)
}

func (m *mockPortfolioRepo) UpdatePortfolioViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockRecommendationRepo struct {
	mockPortfolioRepo
}

func (m *mockRecommendationRepo) GetUserPreferences(ctx context.Context, userID int64) (*models.UserPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserPreferences), args.Error(1)
}

func (m *mockRecommendationRepo) CreateAiRecommendation(ctx context.Context, in models.NewAiRecommendation) (*models.AiRecommendation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AiRecommendation), args.Error(1)
}

func (m *mockRecommendationRepo) ListAiRecommendations(ctx context.Context, userID int64) ([]models.AiRecommendation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AiRecommendation), args.Error(1)
}

type mockAdvisor struct {
	mock.Mock
}

func (m *mockAdvisor) GenerateRecommendations(ctx context.Context, prefs models.PreferencesInput, portfolios []models.Portfolio) ai.Result[[]ai.Recommendation] {
	return m.Called(ctx, prefs, portfolios).Get(0).(ai.Result[[]ai.Recommendation])
}

func (m *mockAdvisor) GenerateInsights(ctx context.Context, portfolio models.Portfolio) ai.Result[string] {
	return m.Called(ctx, portfolio).Get(0).(ai.Result[string])
}

func (m *mockAdvisor) AnalyzeRecipe(ctx context.Context, recipeText string) ai.Result[ai.RecipeAnalysis] {
	return m.Called(ctx, recipeText).Get(0).(ai.Result[ai.RecipeAnalysis])
}
