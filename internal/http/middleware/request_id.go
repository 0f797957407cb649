package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Заголовок и ключ gin.Context для идентификатора запроса.
const (
	HeaderRequestID     = "X-Request-ID"
	ContextRequestIDKey = "requestID"
)

// RequestID присваивает запросу идентификатор. Входящий X-Request-ID принимается,
// только если это валидный UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Set(ContextRequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// GetRequestID возвращает идентификатор текущего запроса.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextRequestIDKey)
}
