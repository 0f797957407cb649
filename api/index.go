// Package api: serverless точка входа (Vercel Go runtime).
// Приложение собирается один раз на экземпляр функции и обслуживает каждый запрос
// той же таблицей маршрутов, что и cmd/server.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/ignatzorin/cookfolio-backend/internal/app"
	"github.com/ignatzorin/cookfolio-backend/internal/config"
	"github.com/ignatzorin/cookfolio-backend/internal/dto"
	"github.com/ignatzorin/cookfolio-backend/internal/logger"
	"github.com/ignatzorin/cookfolio-backend/internal/pkg/apperror"
)

var (
	initOnce    sync.Once
	application *app.App
	initErr     error
)

// Handler обрабатывает один запрос.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		logger.Init(cfg.LogLevel, cfg.Env)
		application, initErr = app.New(context.Background(), cfg)
	})

	if initErr != nil {
		logger.Log.Errorf("api: приложение не инициализировано: %v", initErr)
		writeInternalError(w)
		return
	}

	application.Engine.ServeHTTP(w, r)
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Message: apperror.GenericInternalMessage})
}
