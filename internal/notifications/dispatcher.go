package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type job struct {
	event  Event
	ticket *Ticket
}

// Config параметры пула доставки
type Config struct {
	Workers        int
	QueueSize      int
	PublishTimeout time.Duration
}

// Dispatcher асинхронно доставляет события фиксированным пулом воркеров
// Submit никогда не блокируется: при переполненной очереди событие отбрасывается
type Dispatcher struct {
	publisher Publisher
	metrics   MetricsRecorder
	logger    Logger
	timeout   time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan job

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewDispatcher создает диспетчер и запускает воркеров
func NewDispatcher(publisher Publisher, cfg Config, metrics MetricsRecorder, logger Logger) *Dispatcher {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 5 * time.Second
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		timeout:   cfg.PublishTimeout,
		queue:     make(chan job, cfg.QueueSize),
		baseCtx:   baseCtx,
		cancel:    cancel,
	}

	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Submit ставит событие в очередь и сразу возвращает тикет
// ctx проверяется только в момент постановки: доставка не привязана к жизни запроса
func (d *Dispatcher) Submit(ctx context.Context, event Event) *Ticket {
	ticket := newTicket(event.ID)

	if err := ctx.Err(); err != nil {
		d.finish(event, ticket, OutcomeCancelled, err)
		return ticket
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.finish(event, ticket, OutcomeCancelled, ErrDispatcherClosed)
		return ticket
	}

	select {
	case d.queue <- job{event: event, ticket: ticket}:
	default:
		d.finish(event, ticket, OutcomeDropped, ErrQueueFull)
	}
	return ticket
}

// Close перестаёт принимать события и ждёт доставки очереди
// Если ctx истекает раньше, оставшиеся события завершаются как cancelled
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(drained)
	}()

	var err error
	select {
	case <-drained:
	case <-ctx.Done():
		d.cancel()
		<-drained
		err = ctx.Err()
	}
	d.cancel()

	if cerr := d.publisher.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("notifications: close publisher: %w", cerr)
	}
	return err
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for j := range d.queue {
		if err := d.baseCtx.Err(); err != nil {
			d.finish(j.event, j.ticket, OutcomeCancelled, ErrDispatcherClosed)
			continue
		}

		ctx, cancel := context.WithTimeout(d.baseCtx, d.timeout)
		err := d.publisher.Publish(ctx, j.event)
		cancel()

		switch {
		case err == nil:
			d.finish(j.event, j.ticket, OutcomeDelivered, nil)
		case d.baseCtx.Err() != nil:
			d.finish(j.event, j.ticket, OutcomeCancelled, err)
		default:
			d.finish(j.event, j.ticket, OutcomeFailed, fmt.Errorf("%w: %v", ErrPublish, err))
		}
	}
}

func (d *Dispatcher) finish(event Event, ticket *Ticket, status OutcomeStatus, err error) {
	ticket.resolve(status, err)

	if d.metrics != nil {
		d.metrics.IncNotification(string(event.Type), string(status))
	}

	switch status {
	case OutcomeDelivered:
		d.logger.Info("Dispatcher: event %s id=%s delivered", event.Type, event.ID)
	case OutcomeFailed:
		d.logger.Error("Dispatcher: event %s id=%s failed: %v", event.Type, event.ID, err)
	default:
		d.logger.Warn("Dispatcher: event %s id=%s %s: %v", event.Type, event.ID, status, err)
	}
}
