package service

import (
	"context"
	"fmt"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
	"github.com/ignatzorin/cookfolio-backend/internal/repository"
	"github.com/ignatzorin/cookfolio-backend/internal/validation"
)

// PortfolioRepository описывает взаимодействие сервиса с хранилищем портфолио.
type PortfolioRepository interface {
	ListPortfolios(ctx context.Context, filter repository.PortfolioFilter) ([]models.Portfolio, error)
	GetPortfolio(ctx context.Context, id int64) (*models.Portfolio, error)
	CreatePortfolio(ctx context.Context, in models.NewPortfolio) (*models.Portfolio, error)
	UpdatePortfolioViews(ctx context.Context, id int64) error
}

// PortfolioService содержит бизнес-логику работы с портфолио.
type PortfolioService struct {
	repo PortfolioRepository
}

// NewPortfolioService создаёт новый сервис портфолио.
func NewPortfolioService(repo PortfolioRepository) *PortfolioService {
	return &PortfolioService{repo: repo}
}

// ListPortfolios возвращает каталог с фильтрами, по убыванию просмотров.
func (s *PortfolioService) ListPortfolios(ctx context.Context, filter repository.PortfolioFilter) ([]models.Portfolio, error) {
	return s.repo.ListPortfolios(ctx, filter)
}

// ViewPortfolio возвращает портфолио и засчитывает просмотр.
// В ответе уже учтён этот просмотр.
func (s *PortfolioService) ViewPortfolio(ctx context.Context, id int64) (*models.Portfolio, error) {
	if _, err := s.repo.GetPortfolio(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePortfolioViews(ctx, id); err != nil {
		return nil, fmt.Errorf("portfolio service: %w", err)
	}

	return s.repo.GetPortfolio(ctx, id)
}

// CreatePortfolio проверяет данные и создаёт портфолио с нулевым счётчиком просмотров.
func (s *PortfolioService) CreatePortfolio(ctx context.Context, in models.NewPortfolio) (*models.Portfolio, error) {
	if err := validatePortfolio(in); err != nil {
		return nil, fmt.Errorf("portfolio service: %w: %v", ErrInvalidInput, err)
	}

	in.Cuisine = optionalString(in.Cuisine)
	in.TimeRequired = optionalString(in.TimeRequired)
	in.Difficulty = optionalString(in.Difficulty)
	in.Story = optionalString(in.Story)

	return s.repo.CreatePortfolio(ctx, in)
}

func validatePortfolio(in models.NewPortfolio) error {
	return validation.FirstError(
		validation.ValidateRequired("title", in.Title),
		validation.ValidateLength("title", in.Title, 0, validation.MaxTitleLength),
		validation.ValidateRequired("description", in.Description),
		validation.ValidateLength("description", in.Description, 0, validation.MaxDescriptionLength),
		validation.ValidateRequired("category", in.Category),
		validation.ValidateLength("category", in.Category, 0, validation.MaxShortFieldLength),
		validation.ValidateOptional("cuisine", in.Cuisine, validation.MaxShortFieldLength),
		validation.ValidateRequired("skillLevel", in.SkillLevel),
		validation.ValidateLength("skillLevel", in.SkillLevel, 0, validation.MaxShortFieldLength),
		validation.ValidateRequired("cookName", in.CookName),
		validation.ValidateLength("cookName", in.CookName, 0, validation.MaxShortFieldLength),
		validation.ValidateRequired("cookTitle", in.CookTitle),
		validation.ValidateLength("cookTitle", in.CookTitle, 0, validation.MaxShortFieldLength),
		validation.ValidateRequired("cookAvatarUrl", in.CookAvatarURL),
		validation.ValidateLength("cookAvatarUrl", in.CookAvatarURL, 0, validation.MaxURLLength),
		validation.ValidateRequired("imageUrl", in.ImageURL),
		validation.ValidateLength("imageUrl", in.ImageURL, 0, validation.MaxURLLength),
		validation.ValidateStringList("tags", in.Tags),
		validation.ValidateStringList("techniques", in.Techniques),
		validation.ValidateStringList("ingredients", in.Ingredients),
		validation.ValidateOptional("timeRequired", in.TimeRequired, validation.MaxShortFieldLength),
		validation.ValidateOptional("difficulty", in.Difficulty, validation.MaxShortFieldLength),
		validation.ValidateOptional("story", in.Story, validation.MaxStoryLength),
	)
}
