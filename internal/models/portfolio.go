package models

// Portfolio описывает кулинарный проект в каталоге.
// Необязательные поля хранятся указателями и сериализуются как null.
type Portfolio struct {
	ID            int64    `db:"id" json:"id"`
	Title         string   `db:"title" json:"title"`
	Description   string   `db:"description" json:"description"`
	Category      string   `db:"category" json:"category"`
	Cuisine       *string  `db:"cuisine" json:"cuisine"`
	SkillLevel    string   `db:"skill_level" json:"skillLevel"`
	CookName      string   `db:"cook_name" json:"cookName"`
	CookTitle     string   `db:"cook_title" json:"cookTitle"`
	CookAvatarURL string   `db:"cook_avatar_url" json:"cookAvatarUrl"`
	ImageURL      string   `db:"image_url" json:"imageUrl"`
	Views         int64    `db:"views" json:"views"`
	Tags          []string `db:"tags" json:"tags"`
	Techniques    []string `db:"techniques" json:"techniques"`
	Ingredients   []string `db:"ingredients" json:"ingredients"`
	TimeRequired  *string  `db:"time_required" json:"timeRequired"`
	Difficulty    *string  `db:"difficulty" json:"difficulty"`
	Story         *string  `db:"story" json:"story"`
}

// NewPortfolio описывает данные для создания портфолио (без id и счётчика просмотров).
type NewPortfolio struct {
	Title         string
	Description   string
	Category      string
	Cuisine       *string
	SkillLevel    string
	CookName      string
	CookTitle     string
	CookAvatarURL string
	ImageURL      string
	Tags          []string
	Techniques    []string
	Ingredients   []string
	TimeRequired  *string
	Difficulty    *string
	Story         *string
}

// Build собирает Portfolio с заданным id и числом просмотров.
func (n NewPortfolio) Build(id, views int64) Portfolio {
	return Portfolio{
		ID:            id,
		Title:         n.Title,
		Description:   n.Description,
		Category:      n.Category,
		Cuisine:       n.Cuisine,
		SkillLevel:    n.SkillLevel,
		CookName:      n.CookName,
		CookTitle:     n.CookTitle,
		CookAvatarURL: n.CookAvatarURL,
		ImageURL:      n.ImageURL,
		Views:         views,
		Tags:          n.Tags,
		Techniques:    n.Techniques,
		Ingredients:   n.Ingredients,
		TimeRequired:  n.TimeRequired,
		Difficulty:    n.Difficulty,
		Story:         n.Story,
	}
}
