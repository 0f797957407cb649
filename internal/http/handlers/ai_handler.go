package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/cookfolio-backend/internal/dto"
	"github.com/ignatzorin/cookfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/cookfolio-backend/internal/repository"
	"github.com/ignatzorin/cookfolio-backend/internal/service"
)

// AIHandler обслуживает маршруты рекомендаций, советов и разбора рецептов.
// Отказы сервиса генерации сюда не доходят: сервис отдаёт запасные значения.
type AIHandler struct {
	recommendations *service.RecommendationService
}

// NewAIHandler создаёт новый хэндлер.
func NewAIHandler(recommendations *service.RecommendationService) *AIHandler {
	return &AIHandler{recommendations: recommendations}
}

// GetRecommendations обрабатывает GET /api/recommendations/:userId.
func (h *AIHandler) GetRecommendations(c *gin.Context) {
	userID, err := common.ParseIDParam(c, "userId")
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	recs, err := h.recommendations.Recommend(c.Request.Context(), userID)
	if err != nil {
		common.RespondInternalError(c, err, "Failed to generate recommendations")
		return
	}

	resp := make([]dto.RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, dto.RecommendationResponse{
			AiRecommendation: rec.Recommendation,
			Portfolio:        rec.Portfolio,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// GetRecommendationHistory обрабатывает GET /api/recommendations/:userId/history.
func (h *AIHandler) GetRecommendationHistory(c *gin.Context) {
	userID, err := common.ParseIDParam(c, "userId")
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	history, err := h.recommendations.History(c.Request.Context(), userID)
	if err != nil {
		common.RespondInternalError(c, err, "Failed to fetch recommendations")
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetInsights обрабатывает GET /api/insights/:portfolioId.
func (h *AIHandler) GetInsights(c *gin.Context) {
	portfolioID, err := common.ParseIDParam(c, "portfolioId")
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	insights, err := h.recommendations.Insights(c.Request.Context(), portfolioID)
	if err != nil {
		if errors.Is(err, repository.ErrPortfolioNotFound) {
			common.RespondNotFound(c, "Portfolio not found")
			return
		}
		common.RespondInternalError(c, err, "Failed to generate insights")
		return
	}

	c.JSON(http.StatusOK, dto.InsightsResponse{Insights: insights})
}

// AnalyzeRecipe обрабатывает POST /api/analyze-recipe.
// Пустой recipeText отклоняется до обращения к сервису генерации.
func (h *AIHandler) AnalyzeRecipe(c *gin.Context) {
	var req dto.AnalyzeRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "Recipe text is required")
		return
	}

	analysis, err := h.recommendations.AnalyzeRecipe(c.Request.Context(), req.RecipeText)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			common.RespondBadRequest(c, "Recipe text is required")
			return
		}
		common.RespondInternalError(c, err, "Failed to analyze recipe")
		return
	}

	c.JSON(http.StatusOK, analysis)
}
