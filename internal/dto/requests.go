package dto

import "github.com/ignatzorin/cookfolio-backend/internal/models"

// CreatePortfolioRequest represents the body of POST /api/portfolios.
// Client supplied id and views are ignored.
type CreatePortfolioRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Cuisine       *string  `json:"cuisine"`
	SkillLevel    string   `json:"skillLevel" binding:"required"`
	CookName      string   `json:"cookName" binding:"required"`
	CookTitle     string   `json:"cookTitle" binding:"required"`
	CookAvatarURL string   `json:"cookAvatarUrl" binding:"required"`
	ImageURL      string   `json:"imageUrl" binding:"required"`
	Tags          []string `json:"tags"`
	Techniques    []string `json:"techniques"`
	Ingredients   []string `json:"ingredients"`
	TimeRequired  *string  `json:"timeRequired"`
	Difficulty    *string  `json:"difficulty"`
	Story         *string  `json:"story"`
}

// ToModel converts the request into store input.
func (r CreatePortfolioRequest) ToModel() models.NewPortfolio {
	return models.NewPortfolio{
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Cuisine:       r.Cuisine,
		SkillLevel:    r.SkillLevel,
		CookName:      r.CookName,
		CookTitle:     r.CookTitle,
		CookAvatarURL: r.CookAvatarURL,
		ImageURL:      r.ImageURL,
		Tags:          r.Tags,
		Techniques:    r.Techniques,
		Ingredients:   r.Ingredients,
		TimeRequired:  r.TimeRequired,
		Difficulty:    r.Difficulty,
		Story:         r.Story,
	}
}

// CreateCaseStudyRequest represents the body of POST /api/case-studies.
type CreateCaseStudyRequest struct {
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description" binding:"required"`
	Category         string  `json:"category" binding:"required"`
	ReadTime         string  `json:"readTime" binding:"required"`
	ImageURL         string  `json:"imageUrl" binding:"required"`
	Content          string  `json:"content" binding:"required"`
	Methodology      *string `json:"methodology"`
	Results          *string `json:"results"`
	Insights         *string `json:"insights"`
	ExperimentsCount *int64  `json:"experimentsCount"`
	Author           string  `json:"author" binding:"required"`
	PublishedAt      *string `json:"publishedAt"`
}

func (r CreateCaseStudyRequest) ToModel() models.NewCaseStudy {
	return models.NewCaseStudy{
		Title:            r.Title,
		Description:      r.Description,
		Category:         r.Category,
		ReadTime:         r.ReadTime,
		ImageURL:         r.ImageURL,
		Content:          r.Content,
		Methodology:      r.Methodology,
		Results:          r.Results,
		Insights:         r.Insights,
		ExperimentsCount: r.ExperimentsCount,
		Author:           r.Author,
		PublishedAt:      r.PublishedAt,
	}
}

// UpdatePreferencesRequest represents the body of POST /api/preferences.
type UpdatePreferencesRequest struct {
	UserID              *int64   `json:"userId" binding:"required"`
	SkillLevel          *string  `json:"skillLevel"`
	PreferredCuisines   []string `json:"preferredCuisines"`
	CookingStyle        *string  `json:"cookingStyle"`
	TimeAvailable       *string  `json:"timeAvailable"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	FavoriteIngredients []string `json:"favoriteIngredients"`
}

func (r UpdatePreferencesRequest) ToModel() models.PreferencesInput {
	return models.PreferencesInput{
		UserID:              r.UserID,
		SkillLevel:          r.SkillLevel,
		PreferredCuisines:   r.PreferredCuisines,
		CookingStyle:        r.CookingStyle,
		TimeAvailable:       r.TimeAvailable,
		DietaryRestrictions: r.DietaryRestrictions,
		FavoriteIngredients: r.FavoriteIngredients,
	}
}

// AnalyzeRecipeRequest represents the body of POST /api/analyze-recipe.
// Presence of recipeText is checked by the handler.
type AnalyzeRecipeRequest struct {
	RecipeText string `json:"recipeText"`
}

// CreateUserRequest represents the body of POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
