package repository

import (
	"sort"
	"strings"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
)

// PortfolioFilter задаёт необязательные условия выборки портфолио.
// Пустая строка означает отсутствие условия.
type PortfolioFilter struct {
	Category   string
	Cuisine    string
	SkillLevel string
	Search     string
}

// IsEmpty сообщает, что ни одно условие не задано.
func (f PortfolioFilter) IsEmpty() bool {
	return f.Category == "" && f.Cuisine == "" && f.SkillLevel == "" && f.Search == ""
}

// Matches проверяет портфолио по всем заданным условиям (логическое И).
func (f PortfolioFilter) Matches(p *models.Portfolio) bool {
	if f.Category != "" && !containsFold(p.Category, f.Category) {
		return false
	}
	if f.Cuisine != "" {
		if p.Cuisine == nil || !containsFold(*p.Cuisine, f.Cuisine) {
			return false
		}
	}
	// уровень сравнивается целиком, а не подстрокой
	if f.SkillLevel != "" && !strings.EqualFold(p.SkillLevel, f.SkillLevel) {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	return true
}

func matchesSearch(p *models.Portfolio, term string) bool {
	if containsFold(p.Title, term) || containsFold(p.Description, term) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	for _, technique := range p.Techniques {
		if containsFold(technique, term) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FilterPortfolios возвращает новый срез подходящих портфолио,
// отсортированный по убыванию просмотров. При равенстве сохраняется исходный порядок.
func FilterPortfolios(items []models.Portfolio, filter PortfolioFilter) []models.Portfolio {
	result := make([]models.Portfolio, 0, len(items))
	if filter.IsEmpty() {
		result = append(result, items...)
	} else {
		for i := range items {
			if filter.Matches(&items[i]) {
				result = append(result, items[i])
			}
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Views > result[j].Views
	})

	return result
}
