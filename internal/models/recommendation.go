package models

// Типы рекомендаций.
const (
	RecommendationPortfolio = "portfolio"
	RecommendationTechnique = "technique"
	RecommendationRecipe    = "recipe"
)

// Типы целевых сущностей рекомендации.
const (
	TargetPortfolio = "portfolio"
	TargetCaseStudy = "case_study"
)

// AiRecommendation описывает сохранённую рекомендацию от сервиса генерации.
// TargetType и TargetID либо оба заданы, либо оба пустые.
type AiRecommendation struct {
	ID          int64   `db:"id" json:"id"`
	UserID      *int64  `db:"user_id" json:"userId"`
	Type        string  `db:"type" json:"type"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	MatchScore  int     `db:"match_score" json:"matchScore"`
	Reasoning   *string `db:"reasoning" json:"reasoning"`
	TargetID    *int64  `db:"target_id" json:"targetId"`
	TargetType  *string `db:"target_type" json:"targetType"`
}

// NewAiRecommendation содержит данные для сохранения рекомендации.
type NewAiRecommendation struct {
	UserID      *int64
	Type        string
	Title       string
	Description string
	MatchScore  int
	Reasoning   *string
	TargetID    *int64
	TargetType  *string
}

// HasValidTarget проверяет, что ссылка на цель задана целиком или не задана вовсе.
func (n NewAiRecommendation) HasValidTarget() bool {
	if n.TargetID == nil && n.TargetType == nil {
		return true
	}
	if n.TargetID == nil || n.TargetType == nil {
		return false
	}
	return *n.TargetType == TargetPortfolio || *n.TargetType == TargetCaseStudy
}

// Build собирает рекомендацию с заданным id.
func (n NewAiRecommendation) Build(id int64) AiRecommendation {
	return AiRecommendation{
		ID:          id,
		UserID:      n.UserID,
		Type:        n.Type,
		Title:       n.Title,
		Description: n.Description,
		MatchScore:  n.MatchScore,
		Reasoning:   n.Reasoning,
		TargetID:    n.TargetID,
		TargetType:  n.TargetType,
	}
}
