package bookings

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BeautyBooking/internal/notifications"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

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

type transitionMetrics struct {
	mu          sync.Mutex
	transitions []string
}

func (m *transitionMetrics) IncStatusTransition(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, from+"->"+to)
}

var (
	now    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) // воскресенье
	monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	client       = domain.Actor{UserID: "client-1", Role: domain.RoleClient}
	otherClient  = domain.Actor{UserID: "client-2", Role: domain.RoleClient}
	professional = domain.Actor{UserID: "pro-1", Role: domain.RoleProfessional}
	otherPro     = domain.Actor{UserID: "pro-2", Role: domain.RoleProfessional}
	admin        = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
)

type env struct {
	svc        *Service
	repo       *memory.BookingRepository
	publisher  *recordingPublisher
	dispatcher *notifications.Dispatcher
	metrics    *transitionMetrics
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		repo:      memory.NewBookingRepository(),
		publisher: &recordingPublisher{},
		metrics:   &transitionMetrics{},
	}
	e.dispatcher = notifications.NewDispatcher(e.publisher, notifications.Config{Workers: 1, QueueSize: 16}, nil, logger.NewNop())
	e.svc = NewService(e.repo, memory.NewTxManager(), e.dispatcher, e.metrics, time.UTC, logger.NewNop())
	e.svc.timeProvider = fixedTime{now: now}
	return e
}

// drain дожидается доставки всех событий
func (e *env) drain(t *testing.T) []notifications.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, e.dispatcher.Close(ctx))
	return e.publisher.events
}

func (e *env) seed(t *testing.T, clientID string, date time.Time, start string, status domain.BookingStatus, price int64) *domain.Booking {
	t.Helper()
	b, err := e.repo.Create(context.Background(), &domain.Booking{
		ClientID:        clientID,
		ProfessionalID:  "pro-1",
		BookingDate:     date,
		StartTime:       types.MustTimeString(start),
		DurationMinutes: 60,
		Status:          status,
		ServiceName:     "Manicure",
		ServicePrice:    decimal.NewFromInt(price),
	})
	require.NoError(t, err)
	return b
}

func TestService_GetByIDAccess(t *testing.T) {
	e := newEnv(t)
	b := e.seed(t, "client-1", monday, "10:00", domain.StatusConfirmed, 25)

	for _, actor := range []domain.Actor{client, professional, admin} {
		resp, err := e.svc.GetByID(context.Background(), actor, b.ID)
		require.NoError(t, err, actor.UserID)
		assert.Equal(t, b.ID.String(), resp.ID)
		assert.Equal(t, "11:00", resp.EndTime)
	}

	for _, actor := range []domain.Actor{otherClient, otherPro} {
		_, err := e.svc.GetByID(context.Background(), actor, b.ID)
		assert.ErrorIs(t, err, ErrAccessDenied, actor.UserID)
	}

	_, err := e.svc.GetByID(context.Background(), client, uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_UpdateStatusComplete(t *testing.T) {
	e := newEnv(t)
	b := e.seed(t, "client-1", monday, "10:00", domain.StatusConfirmed, 25)
	ctx := context.Background()

	_, err := e.svc.UpdateStatus(ctx, client, b.ID, &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// завершить запись может только мастер, даже администратор нет
	_, err = e.svc.UpdateStatus(ctx, admin, b.ID, &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrAccessDenied)
	got, err := e.repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)

	resp, err := e.svc.UpdateStatus(ctx, professional, b.ID, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)

	// завершённая запись терминальна
	_, err = e.svc.UpdateStatus(ctx, admin, b.ID, &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	events := e.drain(t)
	require.Len(t, events, 1)
	assert.Equal(t, notifications.EventBookingCompleted, events[0].Type)
	assert.Equal(t, "pro-1", events[0].ProfessionalID)
	assert.Equal(t, []string{"confirmed->completed"}, e.metrics.transitions)
}

func TestService_UpdateStatusCancelByClient(t *testing.T) {
	e := newEnv(t)
	b := e.seed(t, "client-1", monday, "10:00", domain.StatusConfirmed, 25)
	ctx := context.Background()

	_, err := e.svc.UpdateStatus(ctx, otherClient, b.ID, &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := e.svc.UpdateStatus(ctx, client, b.ID, &models.UpdateStatusRequest{
		Status: "cancelled",
		Reason: ptr.Ptr("заболела"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancelledBy)
	assert.Equal(t, "client", *resp.CancelledBy)
	assert.Equal(t, "заболела", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)

	stored, err := e.repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)

	events := e.drain(t)
	require.Len(t, events, 1)
	assert.Equal(t, notifications.EventBookingCancelled, events[0].Type)
}

func TestService_UpdateStatusInvalid(t *testing.T) {
	e := newEnv(t)
	b := e.seed(t, "client-1", monday, "10:00", domain.StatusConfirmed, 25)
	ctx := context.Background()

	_, err := e.svc.UpdateStatus(ctx, professional, b.ID, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.svc.UpdateStatus(ctx, professional, b.ID, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = e.svc.UpdateStatus(ctx, professional, uuid.New(), &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.Empty(t, e.drain(t))
	assert.Empty(t, e.metrics.transitions)
}

func TestService_ListByClientViews(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	upcoming := e.seed(t, "client-1", monday, "10:00", domain.StatusConfirmed, 25)
	completed := e.seed(t, "client-1", time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), "10:00", domain.StatusCompleted, 30)
	cancelled := e.seed(t, "client-1", monday, "12:00", domain.StatusCancelled, 40)
	e.seed(t, "client-2", monday, "14:00", domain.StatusConfirmed, 50)

	resp, err := e.svc.ListByClient(ctx, client, &models.GetClientBookingsRequest{ClientID: "client-1"})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 3)
	assert.Equal(t, 1, resp.Summary.Upcoming)
	assert.Equal(t, 1, resp.Summary.Completed)
	assert.True(t, decimal.NewFromInt(30).Equal(resp.Summary.TotalSpent))

	cases := map[string]string{
		"upcoming":  upcoming.ID.String(),
		"past":      completed.ID.String(),
		"cancelled": cancelled.ID.String(),
	}
	for view, id := range cases {
		resp, err := e.svc.ListByClient(ctx, client, &models.GetClientBookingsRequest{ClientID: "client-1", View: ptr.Ptr(view)})
		require.NoError(t, err, view)
		require.Len(t, resp.Bookings, 1, view)
		assert.Equal(t, id, resp.Bookings[0].ID, view)
	}

	resp, err = e.svc.ListByClient(ctx, admin, &models.GetClientBookingsRequest{ClientID: "client-1", Status: ptr.Ptr("completed")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	_, err = e.svc.ListByClient(ctx, otherClient, &models.GetClientBookingsRequest{ClientID: "client-1"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = e.svc.ListByClient(ctx, client, &models.GetClientBookingsRequest{ClientID: "client-1", View: ptr.Ptr("soon")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListByProfessional(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	e.seed(t, "client-1", monday, "10:00", domain.StatusConfirmed, 25)
	e.seed(t, "client-2", monday, "12:00", domain.StatusCancelled, 25)
	e.seed(t, "client-2", monday.AddDate(0, 0, 1), "12:00", domain.StatusConfirmed, 25)

	resp, err := e.svc.ListByProfessional(ctx, professional, &models.GetProfessionalBookingsRequest{
		ProfessionalID: "pro-1",
		StartDate:      &monday,
		EndDate:        &monday,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	resp, err = e.svc.ListByProfessional(ctx, admin, &models.GetProfessionalBookingsRequest{
		ProfessionalID:  "pro-1",
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 3)

	_, err = e.svc.ListByProfessional(ctx, client, &models.GetProfessionalBookingsRequest{ProfessionalID: "pro-1"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	tuesday := monday.AddDate(0, 0, 1)
	_, err = e.svc.ListByProfessional(ctx, professional, &models.GetProfessionalBookingsRequest{
		ProfessionalID: "pro-1",
		StartDate:      &tuesday,
		EndDate:        &monday,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
