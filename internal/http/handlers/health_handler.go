package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/cookfolio-backend/internal/dto"
)

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerReporter сообщает состояние circuit breaker сервиса генерации.
type BreakerReporter interface {
	BreakerState() string
}

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	store   Pinger
	breaker BreakerReporter
}

// NewHealthHandler создаёт новый health handler.
func NewHealthHandler(store Pinger, breaker BreakerReporter) *HealthHandler {
	return &HealthHandler{store: store, breaker: breaker}
}

// Health обрабатывает GET /health.
// Открытый breaker не делает сервис нездоровым: маршруты продолжают отвечать запасными значениями.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		checks["storage"] = "unhealthy: " + err.Error()
		status = "unhealthy"
	} else {
		checks["storage"] = "healthy"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
		Breaker:   h.breaker.BreakerState(),
	})
}
