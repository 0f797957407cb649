package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/cookfolio-backend/internal/dto"
	"github.com/ignatzorin/cookfolio-backend/internal/logger"
	"github.com/ignatzorin/cookfolio-backend/internal/pkg/apperror"
)

// ErrorHandler обрабатывает ошибки, добавленные обработчиками через c.Error.
// Клиент получает только безопасное сообщение из AppError, причина пишется в лог.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()

		logger.WithRequestID(GetRequestID(c)).WithFields(logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("Request error")

		// ответ уже отправлен обработчиком
		if c.Writer.Written() {
			return
		}

		statusCode := http.StatusInternalServerError
		message := apperror.GenericInternalMessage

		if appErr, ok := apperror.As(err.Err); ok {
			statusCode = appErr.HTTPStatus
			if appErr.Message != "" {
				message = appErr.Message
			}
		}

		c.JSON(statusCode, dto.ErrorResponse{Message: message})
	}
}
