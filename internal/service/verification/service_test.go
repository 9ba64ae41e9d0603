package verification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BeautyBooking/internal/notifications"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/verification/models"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
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

var (
	pro   = domain.Actor{UserID: "pro-1", Role: domain.RoleProfessional}
	admin = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
)

func newTestService(t *testing.T) (*Service, *notifications.Dispatcher, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	d := notifications.NewDispatcher(pub, notifications.Config{Workers: 1, QueueSize: 8}, nil, logger.NewNop())
	svc := NewService(memory.NewVerificationRepository(), memory.NewTxManager(), d, logger.NewNop())
	svc.timeProvider = fixedTime{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return svc, d, pub
}

func application() *models.ApplyRequest {
	return &models.ApplyRequest{
		Name:        "Lucía Fernández",
		Email:       "lucia@example.com",
		Specialties: []string{"Nail Art", "Gel/Acrylic"},
	}
}

func TestService_Apply(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Apply(ctx, domain.Actor{UserID: "client-1", Role: domain.RoleClient}, application())
	assert.ErrorIs(t, err, ErrAccessDenied)

	bad := application()
	bad.Email = "not-an-email"
	_, err = svc.Apply(ctx, pro, bad)
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.Apply(ctx, pro, application())
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "pro-1", resp.ProfessionalID)

	_, err = svc.Apply(ctx, pro, application())
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestService_DecideOnce(t *testing.T) {
	svc, d, pub := newTestService(t)
	ctx := context.Background()

	_, err := svc.Apply(ctx, pro, application())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, pro, "pro-1", &models.DecisionRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Decide(ctx, admin, "pro-1", &models.DecisionRequest{Status: "rejected"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Decide(ctx, admin, "pro-9", &models.DecisionRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrProfileNotFound)

	resp, err := svc.Decide(ctx, admin, "pro-1", &models.DecisionRequest{Status: "rejected", Reason: ptr.Ptr(" incomplete portfolio ")})
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
	assert.Equal(t, "incomplete portfolio", *resp.RejectionReason)
	assert.Equal(t, "admin-1", *resp.DecidedBy)

	_, err = svc.Decide(ctx, admin, "pro-1", &models.DecisionRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	closeCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, d.Close(closeCtx))
	require.Len(t, pub.events, 1)
	assert.Equal(t, notifications.EventVerificationDecided, pub.events[0].Type)
}

func TestService_ListWithStats(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"pro-1", "pro-2", "pro-3"} {
		_, err := svc.Apply(ctx, domain.Actor{UserID: id, Role: domain.RoleProfessional}, application())
		require.NoError(t, err)
	}
	_, err := svc.Decide(ctx, admin, "pro-2", &models.DecisionRequest{Status: "approved"})
	require.NoError(t, err)

	_, err = svc.List(ctx, pro, nil)
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.List(ctx, admin, ptr.Ptr("pending"))
	require.NoError(t, err)
	assert.Len(t, resp.Profiles, 2)
	assert.Equal(t, models.StatsResponse{Pending: 2, Approved: 1, Rejected: 0, Total: 3}, resp.Stats)

	_, err = svc.List(ctx, admin, ptr.Ptr("archived"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListProfessionals(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"pro-1", "pro-2", "pro-3"} {
		_, err := svc.Apply(ctx, domain.Actor{UserID: id, Role: domain.RoleProfessional}, application())
		require.NoError(t, err)
	}
	_, err := svc.Decide(ctx, admin, "pro-2", &models.DecisionRequest{Status: "approved"})
	require.NoError(t, err)
	_, err = svc.Decide(ctx, admin, "pro-3", &models.DecisionRequest{Status: "rejected", Reason: ptr.Ptr("no photos")})
	require.NoError(t, err)

	for _, status := range []string{"", "approved"} {
		resp, err := svc.ListProfessionals(ctx, status)
		require.NoError(t, err)
		require.Len(t, resp.Professionals, 1)
		assert.Equal(t, "pro-2", resp.Professionals[0].ProfessionalID)
		assert.Equal(t, []string{"Nail Art", "Gel/Acrylic"}, resp.Professionals[0].Specialties)
		assert.NotNil(t, resp.Professionals[0].ApprovedAt)
	}

	_, err = svc.ListProfessionals(ctx, "pending")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ListProfessionals(ctx, "archived")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
