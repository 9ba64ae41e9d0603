package notifications

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// OutcomeStatus итог доставки события
type OutcomeStatus string

const (
	OutcomeDelivered OutcomeStatus = "delivered"
	OutcomeFailed    OutcomeStatus = "failed"
	OutcomeCancelled OutcomeStatus = "cancelled"
	OutcomeDropped   OutcomeStatus = "dropped"
)

// Outcome результат доставки; Err заполнен для всех статусов кроме delivered
type Outcome struct {
	EventID uuid.UUID
	Status  OutcomeStatus
	Err     error
}

// Ticket позволяет дождаться результата доставки события
type Ticket struct {
	eventID  uuid.UUID
	once     sync.Once
	done     chan Outcome
	resolved chan struct{}
	outcome  Outcome
}

func newTicket(eventID uuid.UUID) *Ticket {
	return &Ticket{
		eventID:  eventID,
		done:     make(chan Outcome, 1),
		resolved: make(chan struct{}),
	}
}

// EventID идентификатор события
func (t *Ticket) EventID() uuid.UUID {
	return t.eventID
}

// Done отдаёт результат один раз и закрывается
func (t *Ticket) Done() <-chan Outcome {
	return t.done
}

// Wait блокируется до результата доставки или отмены ctx
// В отличие от Done может вызываться любое число раз
func (t *Ticket) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-t.resolved:
		return t.outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

func (t *Ticket) resolve(status OutcomeStatus, err error) {
	t.once.Do(func() {
		t.outcome = Outcome{EventID: t.eventID, Status: status, Err: err}
		close(t.resolved)
		t.done <- t.outcome
		close(t.done)
	})
}
