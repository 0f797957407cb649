package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
)

// PostgresStore хранит сущности в PostgreSQL.
// Фильтрация портфолио выполняется тем же кодом, что и в MemoryStore.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore создаёт хранилище поверх готового подключения.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Ping проверяет доступность базы.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close закрывает пул соединений.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// portfolioRow соответствует строке таблицы portfolios; массивы читаются через pq.StringArray.
type portfolioRow struct {
	ID            int64          `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	Category      string         `db:"category"`
	Cuisine       *string        `db:"cuisine"`
	SkillLevel    string         `db:"skill_level"`
	CookName      string         `db:"cook_name"`
	CookTitle     string         `db:"cook_title"`
	CookAvatarURL string         `db:"cook_avatar_url"`
	ImageURL      string         `db:"image_url"`
	Views         int64          `db:"views"`
	Tags          pq.StringArray `db:"tags"`
	Techniques    pq.StringArray `db:"techniques"`
	Ingredients   pq.StringArray `db:"ingredients"`
	TimeRequired  *string        `db:"time_required"`
	Difficulty    *string        `db:"difficulty"`
	Story         *string        `db:"story"`
}

func (r portfolioRow) toModel() models.Portfolio {
	return models.Portfolio{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Cuisine:       r.Cuisine,
		SkillLevel:    r.SkillLevel,
		CookName:      r.CookName,
		CookTitle:     r.CookTitle,
		CookAvatarURL: r.CookAvatarURL,
		ImageURL:      r.ImageURL,
		Views:         r.Views,
		Tags:          []string(r.Tags),
		Techniques:    []string(r.Techniques),
		Ingredients:   []string(r.Ingredients),
		TimeRequired:  r.TimeRequired,
		Difficulty:    r.Difficulty,
		Story:         r.Story,
	}
}

type preferencesRow struct {
	ID                  int64          `db:"id"`
	UserID              *int64         `db:"user_id"`
	SkillLevel          *string        `db:"skill_level"`
	PreferredCuisines   pq.StringArray `db:"preferred_cuisines"`
	CookingStyle        *string        `db:"cooking_style"`
	TimeAvailable       *string        `db:"time_available"`
	DietaryRestrictions pq.StringArray `db:"dietary_restrictions"`
	FavoriteIngredients pq.StringArray `db:"favorite_ingredients"`
}

func (r preferencesRow) toModel() models.UserPreferences {
	return models.UserPreferences{
		ID:                  r.ID,
		UserID:              r.UserID,
		SkillLevel:          r.SkillLevel,
		PreferredCuisines:   []string(r.PreferredCuisines),
		CookingStyle:        r.CookingStyle,
		TimeAvailable:       r.TimeAvailable,
		DietaryRestrictions: []string(r.DietaryRestrictions),
		FavoriteIngredients: []string(r.FavoriteIngredients),
	}
}

const portfolioColumns = `id, title, description, category, cuisine, skill_level, cook_name, cook_title,
	cook_avatar_url, image_url, views, tags, techniques, ingredients, time_required, difficulty, story`

const preferencesColumns = `id, user_id, skill_level, preferred_cuisines, cooking_style, time_available,
	dietary_restrictions, favorite_ingredients`

// getOne выполняет запрос одной строки и подменяет sql.ErrNoRows на notFoundErr.
func getOne[T any](ctx context.Context, db *sqlx.DB, notFoundErr error, query string, args ...interface{}) (*T, error) {
	var entity T
	if err := db.GetContext(ctx, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundErr
		}
		return nil, err
	}
	return &entity, nil
}

// CreateUser создаёт пользователя; занятое имя даёт ErrUsernameTaken.
func (s *PostgresStore) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	user := models.User{Username: username, PasswordHash: passwordHash}
	query := `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`

	if err := s.db.QueryRowxContext(ctx, query, username, passwordHash).Scan(&user.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("user repository: create %w", err)
	}
	return &user, nil
}

// GetUser возвращает пользователя по идентификатору.
func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := getOne[models.User](ctx, s.db, ErrUserNotFound,
		`SELECT id, username, password FROM users WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("user repository: get by id %w", err)
	}
	return user, err
}

// GetUserByUsername возвращает пользователя по имени.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := getOne[models.User](ctx, s.db, ErrUserNotFound,
		`SELECT id, username, password FROM users WHERE username = $1`, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("user repository: get by username %w", err)
	}
	return user, err
}

// ListPortfolios загружает портфолио в порядке id и применяет общий фильтр.
func (s *PostgresStore) ListPortfolios(ctx context.Context, filter PortfolioFilter) ([]models.Portfolio, error) {
	var rows []portfolioRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT `+portfolioColumns+` FROM portfolios ORDER BY id`); err != nil {
		return nil, fmt.Errorf("portfolio repository: list %w", err)
	}

	items := make([]models.Portfolio, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return FilterPortfolios(items, filter), nil
}

// CountPortfolios возвращает число портфолио.
func (s *PostgresStore) CountPortfolios(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM portfolios`); err != nil {
		return 0, fmt.Errorf("portfolio repository: count %w", err)
	}
	return count, nil
}

// GetPortfolio возвращает портфолио по идентификатору.
func (s *PostgresStore) GetPortfolio(ctx context.Context, id int64) (*models.Portfolio, error) {
	row, err := getOne[portfolioRow](ctx, s.db, ErrPortfolioNotFound,
		`SELECT `+portfolioColumns+` FROM portfolios WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, ErrPortfolioNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("portfolio repository: get by id %w", err)
	}
	p := row.toModel()
	return &p, nil
}

// CreatePortfolio создаёт портфолио с нулевым счётчиком просмотров.
func (s *PostgresStore) CreatePortfolio(ctx context.Context, in models.NewPortfolio) (*models.Portfolio, error) {
	return s.ImportPortfolio(ctx, in, 0)
}

// ImportPortfolio создаёт портфолио с заданным начальным числом просмотров.
func (s *PostgresStore) ImportPortfolio(ctx context.Context, in models.NewPortfolio, views int64) (*models.Portfolio, error) {
	if views < 0 {
		views = 0
	}

	query := `
		INSERT INTO portfolios (title, description, category, cuisine, skill_level, cook_name, cook_title,
			cook_avatar_url, image_url, views, tags, techniques, ingredients, time_required, difficulty, story)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`

	var id int64
	if err := s.db.QueryRowxContext(ctx, query,
		in.Title,
		in.Description,
		in.Category,
		in.Cuisine,
		in.SkillLevel,
		in.CookName,
		in.CookTitle,
		in.CookAvatarURL,
		in.ImageURL,
		views,
		pq.Array(in.Tags),
		pq.Array(in.Techniques),
		pq.Array(in.Ingredients),
		in.TimeRequired,
		in.Difficulty,
		in.Story,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("portfolio repository: insert %w", err)
	}

	p := in.Build(id, views)
	return &p, nil
}

// UpdatePortfolioViews увеличивает счётчик одним атомарным UPDATE.
// Отсутствие строки ошибкой не считается.
func (s *PostgresStore) UpdatePortfolioViews(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE portfolios SET views = views + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("portfolio repository: increment views %w", err)
	}
	return nil
}

// ListCaseStudies возвращает все статьи в порядке создания.
func (s *PostgresStore) ListCaseStudies(ctx context.Context) ([]models.CaseStudy, error) {
	items := make([]models.CaseStudy, 0)
	if err := s.db.SelectContext(ctx, &items, `SELECT * FROM case_studies ORDER BY id`); err != nil {
		return nil, fmt.Errorf("case study repository: list %w", err)
	}
	return items, nil
}

// GetCaseStudy возвращает статью по идентификатору.
func (s *PostgresStore) GetCaseStudy(ctx context.Context, id int64) (*models.CaseStudy, error) {
	cs, err := getOne[models.CaseStudy](ctx, s.db, ErrCaseStudyNotFound,
		`SELECT * FROM case_studies WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrCaseStudyNotFound) {
		return nil, fmt.Errorf("case study repository: get by id %w", err)
	}
	return cs, err
}

// CreateCaseStudy создаёт статью.
func (s *PostgresStore) CreateCaseStudy(ctx context.Context, in models.NewCaseStudy) (*models.CaseStudy, error) {
	query := `
		INSERT INTO case_studies (title, description, category, read_time, image_url, content,
			methodology, results, insights, experiments_count, author, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id int64
	if err := s.db.QueryRowxContext(ctx, query,
		in.Title,
		in.Description,
		in.Category,
		in.ReadTime,
		in.ImageURL,
		in.Content,
		in.Methodology,
		in.Results,
		in.Insights,
		in.ExperimentsCount,
		in.Author,
		in.PublishedAt,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("case study repository: insert %w", err)
	}

	cs := in.Build(id)
	return &cs, nil
}

// GetUserPreferences возвращает предпочтения пользователя.
func (s *PostgresStore) GetUserPreferences(ctx context.Context, userID int64) (*models.UserPreferences, error) {
	row, err := getOne[preferencesRow](ctx, s.db, ErrPreferencesNotFound,
		`SELECT `+preferencesColumns+` FROM user_preferences WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, ErrPreferencesNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("preferences repository: get %w", err)
	}
	prefs := row.toModel()
	return &prefs, nil
}

// UpdateUserPreferences выполняет upsert по user_id одним запросом.
// Запись без user_id всегда вставляется как новая.
func (s *PostgresStore) UpdateUserPreferences(ctx context.Context, in models.PreferencesInput) (*models.UserPreferences, error) {
	query := `
		INSERT INTO user_preferences (user_id, skill_level, preferred_cuisines, cooking_style,
			time_available, dietary_restrictions, favorite_ingredients)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) WHERE user_id IS NOT NULL DO UPDATE SET
			skill_level = EXCLUDED.skill_level,
			preferred_cuisines = EXCLUDED.preferred_cuisines,
			cooking_style = EXCLUDED.cooking_style,
			time_available = EXCLUDED.time_available,
			dietary_restrictions = EXCLUDED.dietary_restrictions,
			favorite_ingredients = EXCLUDED.favorite_ingredients
		RETURNING id
	`

	var id int64
	if err := s.db.QueryRowxContext(ctx, query,
		in.UserID,
		in.SkillLevel,
		pq.Array(in.PreferredCuisines),
		in.CookingStyle,
		in.TimeAvailable,
		pq.Array(in.DietaryRestrictions),
		pq.Array(in.FavoriteIngredients),
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("preferences repository: upsert %w", err)
	}

	prefs := in.Build(id)
	return &prefs, nil
}

// CreateAiRecommendation сохраняет рекомендацию.
func (s *PostgresStore) CreateAiRecommendation(ctx context.Context, in models.NewAiRecommendation) (*models.AiRecommendation, error) {
	if !in.HasValidTarget() {
		return nil, ErrInvalidTarget
	}

	query := `
		INSERT INTO ai_recommendations (user_id, type, title, description, match_score, reasoning, target_id, target_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	if err := s.db.QueryRowxContext(ctx, query,
		in.UserID,
		in.Type,
		in.Title,
		in.Description,
		in.MatchScore,
		in.Reasoning,
		in.TargetID,
		in.TargetType,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("recommendation repository: insert %w", err)
	}

	rec := in.Build(id)
	return &rec, nil
}

// ListAiRecommendations возвращает рекомендации пользователя в порядке сохранения.
func (s *PostgresStore) ListAiRecommendations(ctx context.Context, userID int64) ([]models.AiRecommendation, error) {
	items := make([]models.AiRecommendation, 0)
	query := `
		SELECT id, user_id, type, title, description, match_score, reasoning, target_id, target_type
		FROM ai_recommendations
		WHERE user_id = $1
		ORDER BY id
	`
	if err := s.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("recommendation repository: list %w", err)
	}
	return items, nil
}
