package service

import (
	"context"
	"fmt"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
	"github.com/ignatzorin/cookfolio-backend/internal/validation"
)

// CaseStudyRepository описывает хранилище статей.
type CaseStudyRepository interface {
	ListCaseStudies(ctx context.Context) ([]models.CaseStudy, error)
	GetCaseStudy(ctx context.Context, id int64) (*models.CaseStudy, error)
	CreateCaseStudy(ctx context.Context, in models.NewCaseStudy) (*models.CaseStudy, error)
}

// CaseStudyService управляет статьями.
type CaseStudyService struct {
	repo CaseStudyRepository
}

func NewCaseStudyService(repo CaseStudyRepository) *CaseStudyService {
	return &CaseStudyService{repo: repo}
}

func (s *CaseStudyService) ListCaseStudies(ctx context.Context) ([]models.CaseStudy, error) {
	return s.repo.ListCaseStudies(ctx)
}

func (s *CaseStudyService) GetCaseStudy(ctx context.Context, id int64) (*models.CaseStudy, error) {
	return s.repo.GetCaseStudy(ctx, id)
}

// CreateCaseStudy проверяет и сохраняет статью.
func (s *CaseStudyService) CreateCaseStudy(ctx context.Context, in models.NewCaseStudy) (*models.CaseStudy, error) {
	err := validation.FirstError(
		validation.ValidateRequired("title", in.Title),
		validation.ValidateLength("title", in.Title, 0, validation.MaxTitleLength),
		validation.ValidateRequired("description", in.Description),
		validation.ValidateLength("description", in.Description, 0, validation.MaxDescriptionLength),
		validation.ValidateRequired("category", in.Category),
		validation.ValidateLength("category", in.Category, 0, validation.MaxShortFieldLength),
		validation.ValidateRequired("readTime", in.ReadTime),
		validation.ValidateLength("readTime", in.ReadTime, 0, validation.MaxShortFieldLength),
		validation.ValidateRequired("imageUrl", in.ImageURL),
		validation.ValidateLength("imageUrl", in.ImageURL, 0, validation.MaxURLLength),
		validation.ValidateRequired("content", in.Content),
		validation.ValidateLength("content", in.Content, 0, validation.MaxContentLength),
		validation.ValidateOptional("methodology", in.Methodology, validation.MaxStoryLength),
		validation.ValidateOptional("results", in.Results, validation.MaxStoryLength),
		validation.ValidateOptional("insights", in.Insights, validation.MaxStoryLength),
		validation.ValidateRequired("author", in.Author),
		validation.ValidateLength("author", in.Author, 0, validation.MaxShortFieldLength),
		validation.ValidateOptional("publishedAt", in.PublishedAt, validation.MaxShortFieldLength),
	)
	if err == nil && in.ExperimentsCount != nil && *in.ExperimentsCount < 0 {
		err = fmt.Errorf("experimentsCount не может быть отрицательным")
	}
	if err != nil {
		return nil, fmt.Errorf("case study service: %w: %v", ErrInvalidInput, err)
	}

	in.Methodology = optionalString(in.Methodology)
	in.Results = optionalString(in.Results)
	in.Insights = optionalString(in.Insights)
	in.PublishedAt = optionalString(in.PublishedAt)
	// нулевое число экспериментов хранится как отсутствие значения
	if in.ExperimentsCount != nil && *in.ExperimentsCount == 0 {
		in.ExperimentsCount = nil
	}

	return s.repo.CreateCaseStudy(ctx, in)
}
