package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/cookfolio-backend/internal/dto"
	"github.com/ignatzorin/cookfolio-backend/internal/pkg/apperror"
)

const contextIDPrefix = "id:"

// IDValidator проверяет, что параметр пути является целым числом, и кладёт его в контекст.
// Использование: router.GET("/portfolios/:id", IDValidator("id"), handler.GetPortfolio)
func IDValidator(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param(paramName), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Message: apperror.ErrInvalidID.Message})
			return
		}

		c.Set(contextIDPrefix+paramName, id)
		c.Next()
	}
}

// ParamID возвращает id, проверенный IDValidator.
func ParamID(c *gin.Context, paramName string) (int64, bool) {
	raw, exists := c.Get(contextIDPrefix + paramName)
	if !exists {
		return 0, false
	}
	id, ok := raw.(int64)
	return id, ok
}
