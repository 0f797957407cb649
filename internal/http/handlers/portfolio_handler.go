package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/cookfolio-backend/internal/dto"
	"github.com/ignatzorin/cookfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/cookfolio-backend/internal/repository"
	"github.com/ignatzorin/cookfolio-backend/internal/service"
)

// PortfolioHandler обслуживает маршруты портфолио.
type PortfolioHandler struct {
	portfolios *service.PortfolioService
}

// NewPortfolioHandler создаёт новый хэндлер.
func NewPortfolioHandler(portfolios *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios}
}

// ListPortfolios обрабатывает GET /api/portfolios.
// Поддерживает фильтры category, cuisine, skillLevel, search.
func (h *PortfolioHandler) ListPortfolios(c *gin.Context) {
	filter := repository.PortfolioFilter{
		Category:   c.Query("category"),
		Cuisine:    c.Query("cuisine"),
		SkillLevel: c.Query("skillLevel"),
		Search:     c.Query("search"),
	}

	items, err := h.portfolios.ListPortfolios(c.Request.Context(), filter)
	if err != nil {
		common.RespondInternalError(c, err, "Failed to fetch portfolios")
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetPortfolio обрабатывает GET /api/portfolios/:id и засчитывает просмотр.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	portfolio, err := h.portfolios.ViewPortfolio(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPortfolioNotFound) {
			common.RespondNotFound(c, "Portfolio not found")
			return
		}
		common.RespondInternalError(c, err, "Failed to fetch portfolio")
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// CreatePortfolio обрабатывает POST /api/portfolios.
func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	var req dto.CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "Invalid portfolio data")
		return
	}

	portfolio, err := h.portfolios.CreatePortfolio(c.Request.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			common.RespondBadRequest(c, "Invalid portfolio data")
			return
		}
		common.RespondInternalError(c, err, "Failed to create portfolio")
		return
	}

	c.JSON(http.StatusCreated, portfolio)
}
