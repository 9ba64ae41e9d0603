package create_booking

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BeautyBooking/internal/notifications"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type countingMetrics struct {
	created   atomic.Int64
	conflicts atomic.Int64
}

func (m *countingMetrics) IncBookingCreated() { m.created.Add(1) }
func (m *countingMetrics) IncSlotConflict()   { m.conflicts.Add(1) }

type recordingPublisher struct {
	mu     sync.Mutex
	events []notifications.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event notifications.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

var (
	sundayNoon = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	monday     = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	saturday   = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
)

type env struct {
	uc         *UseCase
	bookings   *memory.BookingRepository
	metrics    *countingMetrics
	publisher  *recordingPublisher
	dispatcher *notifications.Dispatcher
	serviceID  uuid.UUID
}

func newEnv(t *testing.T, now time.Time) *env {
	t.Helper()
	e := &env{
		bookings:  memory.NewBookingRepository(),
		metrics:   &countingMetrics{},
		publisher: &recordingPublisher{},
	}

	catalog := memory.NewCatalogRepository()
	svc, err := catalog.Create(context.Background(), &domain.Service{
		OwnerID:         "pro-1",
		Name:            "Gel Manicure",
		Price:           decimal.RequireFromString("35.50"),
		DurationMinutes: 60,
		Category:        domain.CategoryGelAcrylic,
	})
	require.NoError(t, err)
	e.serviceID = svc.ID

	e.dispatcher = notifications.NewDispatcher(e.publisher, notifications.Config{Workers: 1, QueueSize: 64}, nil, logger.NewNop())
	e.uc = NewUseCase(e.bookings, memory.NewScheduleRepository(), catalog, memory.NewTxManager(),
		e.dispatcher, e.metrics, 30, time.UTC, logger.NewNop())
	e.uc.timeProvider = fixedTime{now: now}
	return e
}

func (e *env) request(clientID string, date time.Time, start string) *Request {
	return &Request{
		Actor:          domain.Actor{UserID: clientID, Role: domain.RoleClient},
		ClientID:       clientID,
		ProfessionalID: "pro-1",
		ServiceID:      e.serviceID,
		Date:           date,
		StartTime:      types.TimeString(start),
	}
}

func (e *env) drain(t *testing.T) []notifications.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, e.dispatcher.Close(ctx))
	return e.publisher.events
}

func TestUseCase_CreatesConfirmedBooking(t *testing.T) {
	e := newEnv(t, sundayNoon)

	resp, err := e.uc.Execute(context.Background(), e.request("client-1", monday, "10:00"))
	require.NoError(t, err)

	b := resp.Booking
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, "Gel Manicure", b.ServiceName)
	assert.Equal(t, 60, b.DurationMinutes)
	assert.True(t, decimal.RequireFromString("35.5").Equal(b.ServicePrice))
	require.NotNil(t, b.ServiceID)
	assert.Equal(t, e.serviceID, *b.ServiceID)
	assert.False(t, b.Reviewed)
	assert.Equal(t, int64(1), e.metrics.created.Load())

	events := e.drain(t)
	require.Len(t, events, 1)
	assert.Equal(t, notifications.EventBookingConfirmed, events[0].Type)
	assert.Equal(t, resp.EventID, events[0].ID)
	assert.Equal(t, "client-1", events[0].ClientID)
}

func TestUseCase_DoubleBookingConflicts(t *testing.T) {
	e := newEnv(t, sundayNoon)
	ctx := context.Background()

	_, err := e.uc.Execute(ctx, e.request("client-1", monday, "10:00"))
	require.NoError(t, err)

	_, err = e.uc.Execute(ctx, e.request("client-2", monday, "10:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)

	// 10:30 пересекает [10:00, 11:00)
	_, err = e.uc.Execute(ctx, e.request("client-2", monday, "10:30"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	_, err = e.uc.Execute(ctx, e.request("client-2", monday, "09:30"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	// граничные слоты не пересекаются
	_, err = e.uc.Execute(ctx, e.request("client-2", monday, "11:00"))
	require.NoError(t, err)
	_, err = e.uc.Execute(ctx, e.request("client-3", monday, "09:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(3), e.metrics.conflicts.Load())
	assert.Equal(t, int64(3), e.metrics.created.Load())
}

func TestUseCase_CompletedBookingKeepsSlot(t *testing.T) {
	e := newEnv(t, sundayNoon)
	ctx := context.Background()

	resp, err := e.uc.Execute(ctx, e.request("client-1", monday, "10:00"))
	require.NoError(t, err)

	done := *resp.Booking
	require.NoError(t, done.ApplyTransition(domain.Actor{UserID: "pro-1", Role: domain.RoleProfessional},
		domain.StatusCompleted, nil, sundayNoon))
	require.NoError(t, e.bookings.UpdateStatus(ctx, &done))

	stored, err := e.bookings.GetByID(ctx, resp.Booking.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, stored.Status)

	// завершённая запись по-прежнему занимает (мастер, дата, время)
	_, err = e.uc.Execute(ctx, e.request("client-2", monday, "10:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)

	_, err = e.uc.Execute(ctx, e.request("client-2", monday, "10:30"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	assert.Equal(t, int64(2), e.metrics.conflicts.Load())
	assert.Equal(t, int64(1), e.metrics.created.Load())
}

func TestUseCase_CancelledBookingFreesSlot(t *testing.T) {
	e := newEnv(t, sundayNoon)
	ctx := context.Background()

	_, err := e.bookings.Create(ctx, &domain.Booking{
		ClientID: "client-9", ProfessionalID: "pro-1", BookingDate: monday,
		StartTime: types.MustTimeString("10:00"), DurationMinutes: 60,
		Status: domain.StatusCancelled, ServiceName: "Gel Manicure",
	})
	require.NoError(t, err)

	_, err = e.uc.Execute(ctx, e.request("client-1", monday, "10:00"))
	require.NoError(t, err)
}

func TestUseCase_PastSlot(t *testing.T) {
	e := newEnv(t, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := e.uc.Execute(ctx, e.request("client-1", monday, "10:00"))
	assert.ErrorIs(t, err, ErrPastSlot)
	assert.ErrorIs(t, err, domain.ErrPastSlot)

	_, err = e.uc.Execute(ctx, e.request("client-1", monday.AddDate(0, 0, -7), "10:00"))
	assert.ErrorIs(t, err, domain.ErrPastSlot)

	_, err = e.uc.Execute(ctx, e.request("client-1", monday, "12:00"))
	require.NoError(t, err)
}

func TestUseCase_ScheduleValidation(t *testing.T) {
	e := newEnv(t, sundayNoon)
	ctx := context.Background()

	_, err := e.uc.Execute(ctx, e.request("client-1", saturday, "10:00"))
	assert.ErrorIs(t, err, ErrProfessionalUnavailable)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = e.uc.Execute(ctx, e.request("client-1", monday, "10:15"))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = e.uc.Execute(ctx, e.request("client-1", monday, "16:30"))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = e.uc.Execute(ctx, e.request("client-1", monday, "08:30"))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	// услуга заканчивается ровно в конце рабочего дня
	_, err = e.uc.Execute(ctx, e.request("client-1", monday, "16:00"))
	require.NoError(t, err)

	_, err = e.uc.Execute(ctx, e.request("client-1", monday, "25:00"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, e.metrics.conflicts.Load())
}

func TestUseCase_AccessAndCatalog(t *testing.T) {
	e := newEnv(t, sundayNoon)
	ctx := context.Background()

	req := e.request("client-1", monday, "10:00")
	req.Actor = domain.Actor{UserID: "pro-1", Role: domain.RoleProfessional}
	_, err := e.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrAccessDenied)

	req = e.request("client-1", monday, "10:00")
	req.Actor = domain.Actor{UserID: "client-2", Role: domain.RoleClient}
	_, err = e.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	req = e.request("client-1", monday, "10:00")
	req.ProfessionalID = "pro-2"
	_, err = e.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	req = e.request("client-1", monday, "10:00")
	req.ServiceID = uuid.New()
	_, err = e.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, e.drain(t))
}

func TestUseCase_ConcurrentCreateSingleWinner(t *testing.T) {
	e := newEnv(t, sundayNoon)

	const attempts = 16
	var (
		wg        sync.WaitGroup
		successes atomic.Int64
		conflicts atomic.Int64
	)
	start := make(chan struct{})

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := e.uc.Execute(context.Background(), e.request("client-"+string(rune('a'+i)), monday, "10:00"))
			switch {
			case err == nil:
				successes.Add(1)
			case assert.ErrorIs(t, err, ErrSlotConflict):
				conflicts.Add(1)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), successes.Load())
	assert.Equal(t, int64(attempts-1), conflicts.Load())

	active, err := e.bookings.GetByProfessionalWithFilter(context.Background(), domain.ProfessionalBookingsFilter{
		ProfessionalID: "pro-1",
		StartDate:      &monday,
		EndDate:        &monday,
	})
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
