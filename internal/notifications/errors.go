package notifications

import "errors"

var (
	// ErrQueueFull возвращается, когда очередь диспетчера переполнена
	ErrQueueFull = errors.New("notifications: queue is full")

	// ErrDispatcherClosed возвращается после остановки диспетчера
	ErrDispatcherClosed = errors.New("notifications: dispatcher is closed")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("notifications: failed to publish event")
)
