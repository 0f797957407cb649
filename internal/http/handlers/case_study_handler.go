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

// CaseStudyHandler обслуживает маршруты статей.
type CaseStudyHandler struct {
	caseStudies *service.CaseStudyService
}

func NewCaseStudyHandler(caseStudies *service.CaseStudyService) *CaseStudyHandler {
	return &CaseStudyHandler{caseStudies: caseStudies}
}

// ListCaseStudies обрабатывает GET /api/case-studies.
func (h *CaseStudyHandler) ListCaseStudies(c *gin.Context) {
	items, err := h.caseStudies.ListCaseStudies(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, err, "Failed to fetch case studies")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetCaseStudy обрабатывает GET /api/case-studies/:id.
func (h *CaseStudyHandler) GetCaseStudy(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	caseStudy, err := h.caseStudies.GetCaseStudy(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCaseStudyNotFound) {
			common.RespondNotFound(c, "Case study not found")
			return
		}
		common.RespondInternalError(c, err, "Failed to fetch case studies")
		return
	}

	c.JSON(http.StatusOK, caseStudy)
}

// CreateCaseStudy обрабатывает POST /api/case-studies.
func (h *CaseStudyHandler) CreateCaseStudy(c *gin.Context) {
	var req dto.CreateCaseStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "Invalid case study data")
		return
	}

	caseStudy, err := h.caseStudies.CreateCaseStudy(c.Request.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			common.RespondBadRequest(c, "Invalid case study data")
			return
		}
		common.RespondInternalError(c, err, "Failed to create case study")
		return
	}

	c.JSON(http.StatusCreated, caseStudy)
}
