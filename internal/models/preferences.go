package models

// UserPreferences описывает профиль кулинарных предпочтений пользователя.
// На один UserID приходится не более одной записи.
type UserPreferences struct {
	ID                  int64    `db:"id" json:"id"`
	UserID              *int64   `db:"user_id" json:"userId"`
	SkillLevel          *string  `db:"skill_level" json:"skillLevel"`
	PreferredCuisines   []string `db:"preferred_cuisines" json:"preferredCuisines"`
	CookingStyle        *string  `db:"cooking_style" json:"cookingStyle"`
	TimeAvailable       *string  `db:"time_available" json:"timeAvailable"`
	DietaryRestrictions []string `db:"dietary_restrictions" json:"dietaryRestrictions"`
	FavoriteIngredients []string `db:"favorite_ingredients" json:"favoriteIngredients"`
}

// PreferencesInput содержит данные для upsert предпочтений. Незаданные поля затирают старые значения.
type PreferencesInput struct {
	UserID              *int64
	SkillLevel          *string
	PreferredCuisines   []string
	CookingStyle        *string
	TimeAvailable       *string
	DietaryRestrictions []string
	FavoriteIngredients []string
}

// Build собирает запись предпочтений с заданным id.
func (in PreferencesInput) Build(id int64) UserPreferences {
	return UserPreferences{
		ID:                  id,
		UserID:              in.UserID,
		SkillLevel:          in.SkillLevel,
		PreferredCuisines:   in.PreferredCuisines,
		CookingStyle:        in.CookingStyle,
		TimeAvailable:       in.TimeAvailable,
		DietaryRestrictions: in.DietaryRestrictions,
		FavoriteIngredients: in.FavoriteIngredients,
	}
}

// Значения по умолчанию, когда у пользователя нет сохранённых предпочтений.
const (
	DefaultSkillLevel    = "Intermediate"
	DefaultCookingStyle  = "Traditional"
	DefaultTimeAvailable = "30-60 min"
)

// DefaultPreferredCuisines возвращает кухни по умолчанию (новый срез на каждый вызов).
func DefaultPreferredCuisines() []string {
	return []string{"Italian", "Asian"}
}

// DefaultPreferences возвращает профиль по умолчанию.
func DefaultPreferences() PreferencesInput {
	skill := DefaultSkillLevel
	style := DefaultCookingStyle
	timeAvailable := DefaultTimeAvailable
	return PreferencesInput{
		SkillLevel:          &skill,
		PreferredCuisines:   DefaultPreferredCuisines(),
		CookingStyle:        &style,
		TimeAvailable:       &timeAvailable,
		DietaryRestrictions: []string{},
		FavoriteIngredients: []string{},
	}
}
