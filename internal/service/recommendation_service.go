package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ignatzorin/cookfolio-backend/internal/ai"
	"github.com/ignatzorin/cookfolio-backend/internal/models"
	"github.com/ignatzorin/cookfolio-backend/internal/repository"
	"github.com/ignatzorin/cookfolio-backend/internal/validation"
)

// RecipeAdvisor генерирует рекомендации, советы и разбор рецептов.
// Ошибок не возвращает: отказ выражается через ai.Fallback.
type RecipeAdvisor interface {
	GenerateRecommendations(ctx context.Context, prefs models.PreferencesInput, portfolios []models.Portfolio) ai.Result[[]ai.Recommendation]
	GenerateInsights(ctx context.Context, portfolio models.Portfolio) ai.Result[string]
	AnalyzeRecipe(ctx context.Context, recipeText string) ai.Result[ai.RecipeAnalysis]
}

// RecommendationRepository описывает данные, нужные сервису рекомендаций.
type RecommendationRepository interface {
	GetUserPreferences(ctx context.Context, userID int64) (*models.UserPreferences, error)
	ListPortfolios(ctx context.Context, filter repository.PortfolioFilter) ([]models.Portfolio, error)
	GetPortfolio(ctx context.Context, id int64) (*models.Portfolio, error)
	CreateAiRecommendation(ctx context.Context, in models.NewAiRecommendation) (*models.AiRecommendation, error)
	ListAiRecommendations(ctx context.Context, userID int64) ([]models.AiRecommendation, error)
}

// RecommendedPortfolio связывает сохранённую рекомендацию с портфолио, на которое она ссылается.
// Portfolio равен nil, если портфолио уже нет.
type RecommendedPortfolio struct {
	Recommendation models.AiRecommendation
	Portfolio      *models.Portfolio
}

// RecommendationService связывает хранилище и сервис генерации.
type RecommendationService struct {
	repo    RecommendationRepository
	advisor RecipeAdvisor
}

func NewRecommendationService(repo RecommendationRepository, advisor RecipeAdvisor) *RecommendationService {
	return &RecommendationService{repo: repo, advisor: advisor}
}

// Recommend подбирает до трёх портфолио под предпочтения пользователя и сохраняет каждую рекомендацию.
// Отказ сервиса генерации даёт пустой список без ошибки.
func (s *RecommendationService) Recommend(ctx context.Context, userID int64) ([]RecommendedPortfolio, error) {
	stored, err := s.repo.GetUserPreferences(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrPreferencesNotFound) {
		return nil, fmt.Errorf("recommendation service: %w", err)
	}

	portfolios, err := s.repo.ListPortfolios(ctx, repository.PortfolioFilter{})
	if err != nil {
		return nil, fmt.Errorf("recommendation service: %w", err)
	}

	recs, ok := s.advisor.GenerateRecommendations(ctx, preferencesForPrompt(stored), portfolios).Value()
	if !ok {
		return []RecommendedPortfolio{}, nil
	}

	result := make([]RecommendedPortfolio, 0, len(recs))
	for _, rec := range recs {
		var reasoning *string
		if strings.TrimSpace(rec.Reasoning) != "" {
			reasoning = models.StringPtr(rec.Reasoning)
		}

		saved, err := s.repo.CreateAiRecommendation(ctx, models.NewAiRecommendation{
			UserID:      models.Int64Ptr(userID),
			Type:        models.RecommendationPortfolio,
			Title:       rec.Title,
			Description: rec.Description,
			MatchScore:  rec.MatchScore,
			Reasoning:   reasoning,
			TargetID:    models.Int64Ptr(rec.PortfolioID),
			TargetType:  models.StringPtr(models.TargetPortfolio),
		})
		if err != nil {
			return nil, fmt.Errorf("recommendation service: %w", err)
		}

		portfolio, err := s.repo.GetPortfolio(ctx, rec.PortfolioID)
		if err != nil && !errors.Is(err, repository.ErrPortfolioNotFound) {
			return nil, fmt.Errorf("recommendation service: %w", err)
		}

		result = append(result, RecommendedPortfolio{Recommendation: *saved, Portfolio: portfolio})
	}

	return result, nil
}

// History возвращает ранее сохранённые рекомендации пользователя.
func (s *RecommendationService) History(ctx context.Context, userID int64) ([]models.AiRecommendation, error) {
	return s.repo.ListAiRecommendations(ctx, userID)
}

// Insights возвращает советы по портфолио или текст-заглушку.
func (s *RecommendationService) Insights(ctx context.Context, portfolioID int64) (string, error) {
	portfolio, err := s.repo.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return "", err
	}

	return s.advisor.GenerateInsights(ctx, *portfolio).Payload(), nil
}

// AnalyzeRecipe разбирает текст рецепта. Пустой текст отклоняется до обращения к сервису.
func (s *RecommendationService) AnalyzeRecipe(ctx context.Context, recipeText string) (ai.RecipeAnalysis, error) {
	err := validation.FirstError(
		validation.ValidateRequired("recipeText", recipeText),
		validation.ValidateLength("recipeText", recipeText, 0, validation.MaxRecipeTextLength),
	)
	if err != nil {
		return ai.RecipeAnalysis{}, fmt.Errorf("recommendation service: %w: %v", ErrInvalidInput, err)
	}

	return s.advisor.AnalyzeRecipe(ctx, recipeText).Payload(), nil
}
