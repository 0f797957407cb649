package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/cookfolio-backend/internal/dto"
	"github.com/ignatzorin/cookfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/cookfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/cookfolio-backend/internal/repository"
	"github.com/ignatzorin/cookfolio-backend/internal/service"
)

// UserHandler обслуживает маршруты пользователей.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// CreateUser обрабатывает POST /api/users. Пароль в ответ не попадает.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "Invalid user data")
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			common.RespondBadRequest(c, "Invalid user data")
		case errors.Is(err, repository.ErrUsernameTaken):
			common.RespondAppError(c, apperror.ErrUsernameTaken)
		default:
			common.RespondInternalError(c, err, "Failed to create user")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser обрабатывает GET /api/users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			common.RespondNotFound(c, "User not found")
			return
		}
		common.RespondInternalError(c, err, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// FindUser обрабатывает GET /api/users?username=.
func (h *UserHandler) FindUser(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		common.RespondBadRequest(c, "username query parameter is required")
		return
	}

	user, err := h.users.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			common.RespondNotFound(c, "User not found")
			return
		}
		common.RespondInternalError(c, err, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}
