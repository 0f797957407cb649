package common

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/cookfolio-backend/internal/dto"
	"github.com/ignatzorin/cookfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/cookfolio-backend/internal/pkg/apperror"
)

// ParseIDParam returns the numeric path parameter.
// Uses the value stored by middleware.IDValidator when present.
func ParseIDParam(c *gin.Context, paramName string) (int64, error) {
	if id, ok := middleware.ParamID(c, paramName); ok {
		return id, nil
	}

	id, err := strconv.ParseInt(c.Param(paramName), 10, 64)
	if err != nil {
		return 0, apperror.ErrInvalidID
	}
	return id, nil
}

// RespondError sends a standardized error response
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Message: message})
}

// RespondBadRequest sends a 400 Bad Request response
func RespondBadRequest(c *gin.Context, message string) {
	RespondError(c, http.StatusBadRequest, message)
}

// RespondNotFound sends a 404 Not Found response
func RespondNotFound(c *gin.Context, message string) {
	RespondError(c, http.StatusNotFound, message)
}

// RespondInternalError hands the cause to middleware.ErrorHandler,
// which logs it and answers 500 with message.
func RespondInternalError(c *gin.Context, err error, message string) {
	_ = c.Error(apperror.Internal(err, message))
}

// RespondAppError renders an apperror.AppError with its own status and message.
// Other errors go through RespondInternalError.
func RespondAppError(c *gin.Context, err error) {
	if appErr, ok := apperror.As(err); ok && appErr.HTTPStatus != http.StatusInternalServerError {
		RespondError(c, appErr.HTTPStatus, appErr.Message)
		return
	}
	RespondInternalError(c, err, apperror.GenericInternalMessage)
}
