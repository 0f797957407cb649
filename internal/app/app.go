// Package app собирает хранилище, сервисы, обработчики и маршруты.
// Используется и cmd/server, и serverless-обработчиком из api/.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/cookfolio-backend/internal/ai"
	"github.com/ignatzorin/cookfolio-backend/internal/config"
	"github.com/ignatzorin/cookfolio-backend/internal/db"
	"github.com/ignatzorin/cookfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/cookfolio-backend/internal/http/router"
	"github.com/ignatzorin/cookfolio-backend/internal/logger"
	"github.com/ignatzorin/cookfolio-backend/internal/models"
	"github.com/ignatzorin/cookfolio-backend/internal/repository"
	"github.com/ignatzorin/cookfolio-backend/internal/service"
	"github.com/ignatzorin/cookfolio-backend/migrations"
)

// Store объединяет операции хранилища, нужные сервисам.
type Store interface {
	service.PortfolioRepository
	service.CaseStudyRepository
	service.PreferencesRepository
	service.UserRepository
	service.SeedRepository
	CreateAiRecommendation(ctx context.Context, in models.NewAiRecommendation) (*models.AiRecommendation, error)
	ListAiRecommendations(ctx context.Context, userID int64) ([]models.AiRecommendation, error)
	Ping(ctx context.Context) error
	Close() error
}

// App хранит собранное приложение.
type App struct {
	Engine *gin.Engine
	store  Store
}

// New создаёт хранилище, наполняет его стартовыми данными и собирает роутер.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	seeded, err := service.NewSeedService(store, cfg.SeedViewsSeed).Seed(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("app: ошибка сидирования: %w", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"storage":      cfg.StorageDriver,
		"skipped":      seeded.Skipped,
		"portfolios":   seeded.Portfolios,
		"case_studies": seeded.CaseStudies,
	}).Info("Storage ready")

	aiClient := ai.NewClient(ai.Config{
		BaseURL:         cfg.AIBaseURL,
		APIKey:          cfg.AIAPIKey,
		Model:           cfg.AIModel,
		Timeout:         cfg.AITimeout,
		BreakerFailures: cfg.AIBreakerFails,
		BreakerCooldown: cfg.AIBreakerWait,
	})

	// Сервисы.
	portfolioService := service.NewPortfolioService(store)
	caseStudyService := service.NewCaseStudyService(store)
	preferencesService := service.NewPreferencesService(store)
	recommendationService := service.NewRecommendationService(store, aiClient)
	userService := service.NewUserService(store)

	// HTTP хэндлеры.
	engine := router.SetupRouter(
		cfg,
		handlers.NewPortfolioHandler(portfolioService),
		handlers.NewCaseStudyHandler(caseStudyService),
		handlers.NewPreferencesHandler(preferencesService),
		handlers.NewAIHandler(recommendationService),
		handlers.NewUserHandler(userService),
		handlers.NewHealthHandler(store, aiClient),
	)

	return &App{Engine: engine, store: store}, nil
}

// Close освобождает хранилище.
func (a *App) Close() error {
	return a.store.Close()
}

func newStore(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.StorageDriver != config.StoragePostgres {
		return repository.NewMemoryStore(), nil
	}

	conn, err := db.NewPostgres(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("app: ошибка подключения к базе: %w", err)
	}
	if err := db.RunMigrations(ctx, conn, migrations.FS); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("app: ошибка миграций: %w", err)
	}
	return repository.NewPostgresStore(conn), nil
}
