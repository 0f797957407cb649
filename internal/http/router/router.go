package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ignatzorin/cookfolio-backend/internal/config"
	"github.com/ignatzorin/cookfolio-backend/internal/dto"
	"github.com/ignatzorin/cookfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/cookfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/cookfolio-backend/internal/pkg/apperror"
)

// SetupRouter собирает единую таблицу маршрутов. Её используют и долгоживущий
// сервер, и serverless-обработчик.
func SetupRouter(
	cfg *config.Config,
	portfolioHandler *handlers.PortfolioHandler,
	caseStudyHandler *handlers.CaseStudyHandler,
	preferencesHandler *handlers.PreferencesHandler,
	aiHandler *handlers.AIHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: apperror.ErrNotFound.Message})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Message: apperror.ErrMethodNotAllowed.Message})
	})

	r.GET("/health", healthHandler.Health)
	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := r.Group("/api")

	api.GET("/portfolios", portfolioHandler.ListPortfolios)
	api.GET("/portfolios/:id", middleware.IDValidator("id"), portfolioHandler.GetPortfolio)
	api.POST("/portfolios", portfolioHandler.CreatePortfolio)

	api.GET("/case-studies", caseStudyHandler.ListCaseStudies)
	api.GET("/case-studies/:id", middleware.IDValidator("id"), caseStudyHandler.GetCaseStudy)
	api.POST("/case-studies", caseStudyHandler.CreateCaseStudy)

	api.GET("/preferences/:userId", middleware.IDValidator("userId"), preferencesHandler.GetPreferences)
	api.POST("/preferences", preferencesHandler.UpdatePreferences)

	api.GET("/users", userHandler.FindUser)
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users/:id", middleware.IDValidator("id"), userHandler.GetUser)

	// маршруты, обращающиеся к сервису генерации, ограничены по частоте
	aiGroup := api.Group("")
	aiGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		aiGroup.GET("/recommendations/:userId", middleware.IDValidator("userId"), aiHandler.GetRecommendations)
		aiGroup.GET("/insights/:portfolioId", middleware.IDValidator("portfolioId"), aiHandler.GetInsights)
		aiGroup.POST("/analyze-recipe", aiHandler.AnalyzeRecipe)
	}
	api.GET("/recommendations/:userId/history", middleware.IDValidator("userId"), aiHandler.GetRecommendationHistory)

	return r
}
