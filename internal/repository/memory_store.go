package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
)

// MemoryStore хранит все сущности в памяти процесса.
// Идентификаторы выдаются монотонно для каждого вида сущностей,
// срезы хранят записи в порядке вставки.
type MemoryStore struct {
	mu sync.RWMutex

	users           []models.User
	portfolios      []models.Portfolio
	caseStudies     []models.CaseStudy
	preferences     []models.UserPreferences
	recommendations []models.AiRecommendation

	portfolioIndex map[int64]int

	nextUserID           int64
	nextPortfolioID      int64
	nextCaseStudyID      int64
	nextPreferencesID    int64
	nextRecommendationID int64
}

// NewMemoryStore создаёт пустое хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		portfolioIndex:       make(map[int64]int),
		nextUserID:           1,
		nextPortfolioID:      1,
		nextCaseStudyID:      1,
		nextPreferencesID:    1,
		nextRecommendationID: 1,
	}
}

// Ping всегда успешен: хранилищу не нужны внешние ресурсы.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close ничего не освобождает.
func (s *MemoryStore) Close() error {
	return nil
}

// CreateUser создаёт пользователя. Имя пользователя должно быть уникальным.
func (s *MemoryStore) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			return nil, ErrUsernameTaken
		}
	}

	user := models.User{ID: s.nextUserID, Username: username, PasswordHash: passwordHash}
	s.nextUserID++
	s.users = append(s.users, user)
	return &user, nil
}

// GetUser возвращает пользователя по идентификатору.
func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetUserByUsername возвращает пользователя по имени.
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Username == username {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// ListPortfolios возвращает портфолио, прошедшие фильтр, по убыванию просмотров.
func (s *MemoryStore) ListPortfolios(ctx context.Context, filter PortfolioFilter) ([]models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := FilterPortfolios(s.portfolios, filter)
	for i := range result {
		result[i] = clonePortfolio(result[i])
	}
	return result, nil
}

// CountPortfolios возвращает число портфолио в хранилище.
func (s *MemoryStore) CountPortfolios(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.portfolios), nil
}

// GetPortfolio возвращает портфолио по идентификатору.
func (s *MemoryStore) GetPortfolio(ctx context.Context, id int64) (*models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.portfolioIndex[id]
	if !ok {
		return nil, ErrPortfolioNotFound
	}
	p := clonePortfolio(s.portfolios[idx])
	return &p, nil
}

// CreatePortfolio создаёт портфолио с нулевым счётчиком просмотров.
func (s *MemoryStore) CreatePortfolio(ctx context.Context, in models.NewPortfolio) (*models.Portfolio, error) {
	return s.ImportPortfolio(ctx, in, 0)
}

// ImportPortfolio создаёт портфолио с заданным начальным числом просмотров (используется при сидировании).
func (s *MemoryStore) ImportPortfolio(ctx context.Context, in models.NewPortfolio, views int64) (*models.Portfolio, error) {
	if views < 0 {
		views = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := clonePortfolio(in.Build(s.nextPortfolioID, views))
	s.nextPortfolioID++
	s.portfolioIndex[p.ID] = len(s.portfolios)
	s.portfolios = append(s.portfolios, p)

	out := clonePortfolio(p)
	return &out, nil
}

// UpdatePortfolioViews увеличивает счётчик просмотров ровно на единицу.
// Для несуществующего портфолио ничего не делает.
func (s *MemoryStore) UpdatePortfolioViews(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.portfolioIndex[id]; ok {
		s.portfolios[idx].Views++
	}
	return nil
}

// ListCaseStudies возвращает все статьи в порядке вставки.
func (s *MemoryStore) ListCaseStudies(ctx context.Context) ([]models.CaseStudy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.CaseStudy, len(s.caseStudies))
	copy(result, s.caseStudies)
	return result, nil
}

// GetCaseStudy возвращает статью по идентификатору.
func (s *MemoryStore) GetCaseStudy(ctx context.Context, id int64) (*models.CaseStudy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// идентификаторы выдаются подряд, позиция в срезе равна id-1
	if id < 1 || id > int64(len(s.caseStudies)) {
		return nil, ErrCaseStudyNotFound
	}
	cs := s.caseStudies[id-1]
	return &cs, nil
}

// CreateCaseStudy создаёт статью.
func (s *MemoryStore) CreateCaseStudy(ctx context.Context, in models.NewCaseStudy) (*models.CaseStudy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := in.Build(s.nextCaseStudyID)
	s.nextCaseStudyID++
	s.caseStudies = append(s.caseStudies, cs)
	return &cs, nil
}

// GetUserPreferences возвращает предпочтения пользователя.
func (s *MemoryStore) GetUserPreferences(ctx context.Context, userID int64) (*models.UserPreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.preferencesIndex(userID); idx >= 0 {
		prefs := clonePreferences(s.preferences[idx])
		return &prefs, nil
	}
	return nil, ErrPreferencesNotFound
}

// UpdateUserPreferences сохраняет предпочтения по UserID.
// Существующая запись сохраняет свой id, все поля заменяются новыми значениями.
// Запись без UserID всегда создаётся заново.
func (s *MemoryStore) UpdateUserPreferences(ctx context.Context, in models.PreferencesInput) (*models.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.UserID != nil {
		if idx := s.preferencesIndex(*in.UserID); idx >= 0 {
			updated := clonePreferences(in.Build(s.preferences[idx].ID))
			s.preferences[idx] = updated
			out := clonePreferences(updated)
			return &out, nil
		}
	}

	created := clonePreferences(in.Build(s.nextPreferencesID))
	s.nextPreferencesID++
	s.preferences = append(s.preferences, created)
	out := clonePreferences(created)
	return &out, nil
}

// preferencesIndex ищет запись пользователя; вызывается под блокировкой.
func (s *MemoryStore) preferencesIndex(userID int64) int {
	for i := range s.preferences {
		if s.preferences[i].UserID != nil && *s.preferences[i].UserID == userID {
			return i
		}
	}
	return -1
}

// CreateAiRecommendation сохраняет рекомендацию как есть.
func (s *MemoryStore) CreateAiRecommendation(ctx context.Context, in models.NewAiRecommendation) (*models.AiRecommendation, error) {
	if !in.HasValidTarget() {
		return nil, ErrInvalidTarget
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := in.Build(s.nextRecommendationID)
	s.nextRecommendationID++
	s.recommendations = append(s.recommendations, rec)
	return &rec, nil
}

// ListAiRecommendations возвращает рекомендации пользователя в порядке сохранения.
func (s *MemoryStore) ListAiRecommendations(ctx context.Context, userID int64) ([]models.AiRecommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.AiRecommendation, 0)
	for _, rec := range s.recommendations {
		if rec.UserID != nil && *rec.UserID == userID {
			result = append(result, rec)
		}
	}
	return result, nil
}

func clonePortfolio(p models.Portfolio) models.Portfolio {
	p.Tags = slices.Clone(p.Tags)
	p.Techniques = slices.Clone(p.Techniques)
	p.Ingredients = slices.Clone(p.Ingredients)
	return p
}

func clonePreferences(p models.UserPreferences) models.UserPreferences {
	p.PreferredCuisines = slices.Clone(p.PreferredCuisines)
	p.DietaryRestrictions = slices.Clone(p.DietaryRestrictions)
	p.FavoriteIngredients = slices.Clone(p.FavoriteIngredients)
	return p
}
