package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignatzorin/cookfolio-backend/internal/app"
	"github.com/ignatzorin/cookfolio-backend/internal/config"
	"github.com/ignatzorin/cookfolio-backend/internal/goroutine"
	"github.com/ignatzorin/cookfolio-backend/internal/logger"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.Env)

	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Log.Fatalf("main: не удалось собрать приложение: %v", err)
	}
	defer safeClose(application)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           application.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGoWithContext(ctx, "http-shutdown", func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorf("main: ошибка остановки http сервера: %v", err)
		}
	})

	logger.Log.Infof("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Errorf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose освобождает хранилище.
func safeClose(application *app.App) {
	if err := application.Close(); err != nil {
		logger.Log.Errorf("main: ошибка закрытия хранилища: %v", err)
	}
}
