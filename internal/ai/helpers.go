package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
)

var codeBlockRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")

// decodeJSONContent декодирует content в target. Если content не чистый JSON,
// пробует первый {...} фрагмент, затем markdown блок с кодом.
func decodeJSONContent(content string, target any) error {
	text := strings.TrimSpace(content)
	if text == "" {
		return fmt.Errorf("ai: пустой content")
	}

	if err := json.Unmarshal([]byte(text), target); err == nil {
		return nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(text[start:end+1]), target); err == nil {
			return nil
		}
	}

	if match := codeBlockRe.FindStringSubmatch(text); len(match) > 1 {
		if err := json.Unmarshal([]byte(match[1]), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("ai: content не является JSON нужной формы")
}

// flexNumber принимает число или строку с числом.
type flexNumber struct {
	value float64
	valid bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	raw = strings.TrimSpace(strings.Trim(raw, `"`))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n.value, n.valid = v, true
	return nil
}

// clampScore округляет оценку и ограничивает её диапазоном 0..100.
func clampScore(v float64) int {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return int(math.Round(v))
}

// portfolioID возвращает идентификатор, если число целое и лежит в диапазоне 1..MaxInt64.
func (n flexNumber) portfolioID() (int64, bool) {
	v := n.value
	if !n.valid || v != math.Trunc(v) || v < 1 || v >= math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func valueOr(s *string, fallback string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return fallback
	}
	return *s
}

// formatPreferences формирует блок предпочтений пользователя.
func formatPreferences(prefs models.PreferencesInput) string {
	var sb strings.Builder
	sb.WriteString("User Preferences:\n")
	sb.WriteString("- Skill Level: " + valueOr(prefs.SkillLevel, "Not specified") + "\n")
	sb.WriteString("- Preferred Cuisines: " + joinOr(prefs.PreferredCuisines, "Any") + "\n")
	sb.WriteString("- Cooking Style: " + valueOr(prefs.CookingStyle, "Not specified") + "\n")
	sb.WriteString("- Time Available: " + valueOr(prefs.TimeAvailable, "Not specified") + "\n")
	sb.WriteString("- Dietary Restrictions: " + joinOr(prefs.DietaryRestrictions, "None") + "\n")
	sb.WriteString("- Favorite Ingredients: " + joinOr(prefs.FavoriteIngredients, "None specified") + "\n")
	return sb.String()
}

// formatPortfolios перечисляет портфолио каталога, разделяя их "---".
func formatPortfolios(portfolios []models.Portfolio) string {
	if len(portfolios) == 0 {
		return "No portfolios available.\n"
	}

	blocks := make([]string, 0, len(portfolios))
	for _, p := range portfolios {
		var sb strings.Builder
		fmt.Fprintf(&sb, "ID: %d\n", p.ID)
		sb.WriteString("Title: " + p.Title + "\n")
		sb.WriteString("Category: " + p.Category + "\n")
		sb.WriteString("Cuisine: " + valueOr(p.Cuisine, "Not specified") + "\n")
		sb.WriteString("Skill Level: " + p.SkillLevel + "\n")
		sb.WriteString("Description: " + p.Description + "\n")
		sb.WriteString("Techniques: " + joinOr(p.Techniques, "None") + "\n")
		sb.WriteString("Time Required: " + valueOr(p.TimeRequired, "Not specified") + "\n")
		sb.WriteString("Difficulty: " + valueOr(p.Difficulty, "Not specified") + "\n")
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "---\n")
}
