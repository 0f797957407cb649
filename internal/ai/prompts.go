package ai

import (
	"strings"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
)

const (
	recommendationsSystemPrompt = "You are an expert culinary AI assistant that provides personalized cooking recommendations based on user preferences and skill levels."
	insightsSystemPrompt        = "You are a professional chef and cooking instructor providing practical advice to home cooks."
	analysisSystemPrompt        = "You are a professional chef analyzing recipes for home cooks."
)

// buildRecommendationsPrompt встраивает предпочтения и весь каталог в промпт.
func buildRecommendationsPrompt(prefs models.PreferencesInput, portfolios []models.Portfolio) string {
	var sb strings.Builder
	sb.WriteString("You are an AI cooking assistant helping to recommend portfolios based on user preferences.\n\n")
	sb.WriteString(formatPreferences(prefs))
	sb.WriteString("\nAvailable Portfolios:\n")
	sb.WriteString(formatPortfolios(portfolios))
	sb.WriteString(`
Please recommend the top 3 portfolios for this user. For each recommendation, provide:
1. The portfolio ID
2. A personalized title explaining why it matches
3. A description of why it's recommended
4. A match score (0-100)
5. Detailed reasoning for the recommendation

Respond with JSON in this exact format:
{
  "recommendations": [
    {
      "portfolioId": number,
      "title": "string",
      "description": "string",
      "matchScore": number,
      "reasoning": "string"
    }
  ]
}
`)
	return sb.String()
}

// buildInsightsPrompt просит 3-4 практических совета по одному портфолио.
func buildInsightsPrompt(p models.Portfolio) string {
	var sb strings.Builder
	sb.WriteString("Generate cooking insights and tips for this portfolio:\n\n")
	sb.WriteString("Title: " + p.Title + "\n")
	sb.WriteString("Description: " + p.Description + "\n")
	sb.WriteString("Category: " + p.Category + "\n")
	sb.WriteString("Techniques: " + joinOr(p.Techniques, "None") + "\n")
	sb.WriteString("Ingredients: " + joinOr(p.Ingredients, "None") + "\n")
	sb.WriteString("Story: " + valueOr(p.Story, "Not provided") + "\n\n")
	sb.WriteString("Provide 3-4 actionable cooking insights that would help home cooks succeed with this type of cooking.\n")
	sb.WriteString("Focus on practical tips, common mistakes to avoid, and professional techniques.\n")
	return sb.String()
}

func buildAnalysisPrompt(recipeText string) string {
	return `Analyze this recipe and provide insights:

Recipe: ` + recipeText + `

Please analyze and provide:
1. Difficulty level (Beginner/Intermediate/Advanced/Expert)
2. Estimated cooking time
3. Key techniques involved
4. Suggestions for improvement or variations

Respond with JSON in this format:
{
  "difficulty": "string",
  "estimatedTime": "string",
  "keyTechniques": ["technique1", "technique2"],
  "suggestions": ["suggestion1", "suggestion2"]
}
`
}
