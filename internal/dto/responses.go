package dto

import (
	"time"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// DefaultPreferencesResponse is returned by GET /api/preferences/:userId when nothing is stored.
type DefaultPreferencesResponse struct {
	SkillLevel          string   `json:"skillLevel"`
	PreferredCuisines   []string `json:"preferredCuisines"`
	CookingStyle        string   `json:"cookingStyle"`
	TimeAvailable       string   `json:"timeAvailable"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	FavoriteIngredients []string `json:"favoriteIngredients"`
}

// NewDefaultPreferencesResponse builds the default profile shape.
func NewDefaultPreferencesResponse() DefaultPreferencesResponse {
	return DefaultPreferencesResponse{
		SkillLevel:          models.DefaultSkillLevel,
		PreferredCuisines:   models.DefaultPreferredCuisines(),
		CookingStyle:        models.DefaultCookingStyle,
		TimeAvailable:       models.DefaultTimeAvailable,
		DietaryRestrictions: []string{},
		FavoriteIngredients: []string{},
	}
}

// RecommendationResponse is a stored recommendation with the recommended portfolio.
// portfolio is omitted when the referenced portfolio no longer exists.
type RecommendationResponse struct {
	models.AiRecommendation
	Portfolio *models.Portfolio `json:"portfolio,omitempty"`
}

// InsightsResponse represents the body of GET /api/insights/:portfolioId.
type InsightsResponse struct {
	Insights string `json:"insights"`
}

// HealthResponse represents the body of GET /health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Breaker   string            `json:"breaker"`
}
