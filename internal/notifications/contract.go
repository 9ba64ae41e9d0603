package notifications

import "context"

// Publisher доставляет событие во внешний транспорт
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// MetricsRecorder счётчик результатов доставки
type MetricsRecorder interface {
	IncNotification(event, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
