package logger

import (
	"github.com/sirupsen/logrus"
)

// Log используется всем приложением. До вызова Init пишет в stderr с уровнем info.
var Log = logrus.New()

// Init инициализирует структурированный логгер.
// В development включается текстовый формат, в остальных окружениях: JSON.
func Init(level, env string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if env == "development" {
		SetTextFormatter()
		return
	}
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter устанавливает текстовый формат логов (для development).
func SetTextFormatter() {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// WithRequestID возвращает запись лога, привязанную к идентификатору запроса.
func WithRequestID(requestID string) *logrus.Entry {
	return Log.WithField("request_id", requestID)
}
