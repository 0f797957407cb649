package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
	"github.com/ignatzorin/cookfolio-backend/internal/repository"
	"github.com/ignatzorin/cookfolio-backend/internal/validation"
)

// PreferencesRepository описывает хранилище предпочтений.
type PreferencesRepository interface {
	GetUserPreferences(ctx context.Context, userID int64) (*models.UserPreferences, error)
	UpdateUserPreferences(ctx context.Context, in models.PreferencesInput) (*models.UserPreferences, error)
}

// PreferencesService управляет профилями предпочтений.
type PreferencesService struct {
	repo PreferencesRepository
}

func NewPreferencesService(repo PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo}
}

// GetPreferences возвращает сохранённые предпочтения; found=false, если записи нет.
func (s *PreferencesService) GetPreferences(ctx context.Context, userID int64) (*models.UserPreferences, bool, error) {
	prefs, err := s.repo.GetUserPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return prefs, true, nil
}

// UpdatePreferences выполняет upsert по userId. Незаданные поля сбрасываются.
func (s *PreferencesService) UpdatePreferences(ctx context.Context, in models.PreferencesInput) (*models.UserPreferences, error) {
	if in.UserID == nil {
		return nil, fmt.Errorf("preferences service: %w: userId обязателен", ErrInvalidInput)
	}

	err := validation.FirstError(
		validation.ValidateOptional("skillLevel", in.SkillLevel, validation.MaxShortFieldLength),
		validation.ValidateStringList("preferredCuisines", in.PreferredCuisines),
		validation.ValidateOptional("cookingStyle", in.CookingStyle, validation.MaxShortFieldLength),
		validation.ValidateOptional("timeAvailable", in.TimeAvailable, validation.MaxShortFieldLength),
		validation.ValidateStringList("dietaryRestrictions", in.DietaryRestrictions),
		validation.ValidateStringList("favoriteIngredients", in.FavoriteIngredients),
	)
	if err != nil {
		return nil, fmt.Errorf("preferences service: %w: %v", ErrInvalidInput, err)
	}

	in.SkillLevel = optionalString(in.SkillLevel)
	in.CookingStyle = optionalString(in.CookingStyle)
	in.TimeAvailable = optionalString(in.TimeAvailable)

	return s.repo.UpdateUserPreferences(ctx, in)
}

// preferencesForPrompt возвращает сохранённый профиль или профиль по умолчанию.
func preferencesForPrompt(prefs *models.UserPreferences) models.PreferencesInput {
	if prefs == nil {
		return models.DefaultPreferences()
	}
	return models.PreferencesInput{
		UserID:              prefs.UserID,
		SkillLevel:          prefs.SkillLevel,
		PreferredCuisines:   prefs.PreferredCuisines,
		CookingStyle:        prefs.CookingStyle,
		TimeAvailable:       prefs.TimeAvailable,
		DietaryRestrictions: prefs.DietaryRestrictions,
		FavoriteIngredients: prefs.FavoriteIngredients,
	}
}
