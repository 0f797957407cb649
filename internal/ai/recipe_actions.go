package ai

import (
	"context"
	"errors"
	"strings"

	"github.com/ignatzorin/cookfolio-backend/internal/metrics"
	"github.com/ignatzorin/cookfolio-backend/internal/models"
)

// MaxRecommendations ограничивает число рекомендаций, сохраняемых из ответа сервиса.
const MaxRecommendations = 3

// InsightsFallback возвращается, когда советы сгенерировать не удалось.
const InsightsFallback = "Unable to generate insights at this time."

// UnknownValue подставляется в анализ рецепта вместо отсутствующих полей.
const UnknownValue = "Unknown"

// Названия операций для логов и метрик.
const (
	OperationRecommendations = "recommendations"
	OperationInsights        = "insights"
	OperationAnalyzeRecipe   = "analyze_recipe"
)

var errEmptyContent = errors.New("ai: сервис вернул пустой ответ")

// Recommendation описывает одну рекомендацию портфолио от сервиса.
type Recommendation struct {
	PortfolioID int64
	Title       string
	Description string
	MatchScore  int
	Reasoning   string
}

// RecipeAnalysis содержит структурированный разбор рецепта. Поля всегда заполнены.
type RecipeAnalysis struct {
	Difficulty    string   `json:"difficulty"`
	EstimatedTime string   `json:"estimatedTime"`
	KeyTechniques []string `json:"keyTechniques"`
	Suggestions   []string `json:"suggestions"`
}

// DefaultRecipeAnalysis возвращает разбор с значениями по умолчанию.
func DefaultRecipeAnalysis() RecipeAnalysis {
	return RecipeAnalysis{
		Difficulty:    UnknownValue,
		EstimatedTime: UnknownValue,
		KeyTechniques: []string{},
		Suggestions:   []string{},
	}
}

type recommendationsPayload struct {
	Recommendations *[]struct {
		PortfolioID flexNumber `json:"portfolioId"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		MatchScore  flexNumber `json:"matchScore"`
		Reasoning   string     `json:"reasoning"`
	} `json:"recommendations"`
}

// GenerateRecommendations просит сервис выбрать до трёх портфолио под предпочтения пользователя.
// Любой отказ превращается в Fallback с пустым списком.
func (c *Client) GenerateRecommendations(ctx context.Context, prefs models.PreferencesInput, portfolios []models.Portfolio) Result[[]Recommendation] {
	content, err := c.complete(ctx, completionRequest{
		System:   recommendationsSystemPrompt,
		User:     buildRecommendationsPrompt(prefs, portfolios),
		JSONMode: true,
	})
	if err != nil {
		return recommendationsFallback(err)
	}

	var payload recommendationsPayload
	if err := decodeJSONContent(content, &payload); err != nil {
		return recommendationsFallback(err)
	}
	if payload.Recommendations == nil {
		return recommendationsFallback(errors.New("ai: в ответе нет поля recommendations"))
	}

	result := make([]Recommendation, 0, MaxRecommendations)
	for _, item := range *payload.Recommendations {
		if len(result) == MaxRecommendations {
			break
		}
		// без корректного идентификатора рекомендацию не к чему привязать
		id, ok := item.PortfolioID.portfolioID()
		if !ok {
			continue
		}
		score := 0
		if item.MatchScore.valid {
			score = clampScore(item.MatchScore.value)
		}
		result = append(result, Recommendation{
			PortfolioID: id,
			Title:       item.Title,
			Description: item.Description,
			MatchScore:  score,
			Reasoning:   item.Reasoning,
		})
	}

	metrics.RecordCompletion(OperationRecommendations, false)
	return Generated(result)
}

func recommendationsFallback(err error) Result[[]Recommendation] {
	logFallback(OperationRecommendations, err)
	metrics.RecordCompletion(OperationRecommendations, true)
	return Fallback([]Recommendation{}, err)
}

// GenerateInsights возвращает свободный текст с советами по портфолио.
func (c *Client) GenerateInsights(ctx context.Context, p models.Portfolio) Result[string] {
	content, err := c.complete(ctx, completionRequest{
		System: insightsSystemPrompt,
		User:   buildInsightsPrompt(p),
	})
	if err == nil && strings.TrimSpace(content) == "" {
		err = errEmptyContent
	}
	if err != nil {
		logFallback(OperationInsights, err)
		metrics.RecordCompletion(OperationInsights, true)
		return Fallback(InsightsFallback, err)
	}

	metrics.RecordCompletion(OperationInsights, false)
	return Generated(content)
}

type analysisPayload struct {
	Difficulty    string   `json:"difficulty"`
	EstimatedTime string   `json:"estimatedTime"`
	KeyTechniques []string `json:"keyTechniques"`
	Suggestions   []string `json:"suggestions"`
}

// AnalyzeRecipe разбирает текст рецепта. Отсутствующие поля заполняются
// значениями по умолчанию, отказ сервиса даёт Fallback с полностью дефолтным разбором.
func (c *Client) AnalyzeRecipe(ctx context.Context, recipeText string) Result[RecipeAnalysis] {
	content, err := c.complete(ctx, completionRequest{
		System:   analysisSystemPrompt,
		User:     buildAnalysisPrompt(recipeText),
		JSONMode: true,
	})
	if err != nil {
		return analysisFallback(err)
	}

	var payload analysisPayload
	if err := decodeJSONContent(content, &payload); err != nil {
		return analysisFallback(err)
	}

	analysis := DefaultRecipeAnalysis()
	if strings.TrimSpace(payload.Difficulty) != "" {
		analysis.Difficulty = payload.Difficulty
	}
	if strings.TrimSpace(payload.EstimatedTime) != "" {
		analysis.EstimatedTime = payload.EstimatedTime
	}
	if payload.KeyTechniques != nil {
		analysis.KeyTechniques = payload.KeyTechniques
	}
	if payload.Suggestions != nil {
		analysis.Suggestions = payload.Suggestions
	}

	metrics.RecordCompletion(OperationAnalyzeRecipe, false)
	return Generated(analysis)
}

func analysisFallback(err error) Result[RecipeAnalysis] {
	logFallback(OperationAnalyzeRecipe, err)
	metrics.RecordCompletion(OperationAnalyzeRecipe, true)
	return Fallback(DefaultRecipeAnalysis(), err)
}
