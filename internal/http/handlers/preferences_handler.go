package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/cookfolio-backend/internal/dto"
	"github.com/ignatzorin/cookfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/cookfolio-backend/internal/service"
)

// PreferencesHandler обслуживает маршруты предпочтений.
type PreferencesHandler struct {
	preferences *service.PreferencesService
}

func NewPreferencesHandler(preferences *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferences: preferences}
}

// GetPreferences обрабатывает GET /api/preferences/:userId.
// Если записи нет, отдаёт профиль по умолчанию со статусом 200.
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID, err := common.ParseIDParam(c, "userId")
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	prefs, found, err := h.preferences.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		common.RespondInternalError(c, err, "Failed to fetch preferences")
		return
	}
	if !found {
		c.JSON(http.StatusOK, dto.NewDefaultPreferencesResponse())
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences обрабатывает POST /api/preferences.
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "Invalid preferences data")
		return
	}

	prefs, err := h.preferences.UpdatePreferences(c.Request.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			common.RespondBadRequest(c, "Invalid preferences data")
			return
		}
		common.RespondInternalError(c, err, "Failed to save preferences")
		return
	}

	c.JSON(http.StatusOK, prefs)
}
