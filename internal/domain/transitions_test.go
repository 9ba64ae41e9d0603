package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
)

func newBooking(status BookingStatus) *Booking {
	return &Booking{
		ClientID:        "client-1",
		ProfessionalID:  "pro-1",
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          status,
	}
}

var (
	client     = Actor{UserID: "client-1", Role: RoleClient}
	otherUser  = Actor{UserID: "client-2", Role: RoleClient}
	pro        = Actor{UserID: "pro-1", Role: RoleProfessional}
	otherPro   = Actor{UserID: "pro-2", Role: RoleProfessional}
	adminActor = Actor{UserID: "admin-1", Role: RoleAdmin}
)

func TestAuthorizeTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		actor   Actor
		wantErr error
	}{
		{name: "professional completes", from: StatusConfirmed, to: StatusCompleted, actor: pro},
		{name: "admin cannot complete", from: StatusConfirmed, to: StatusCompleted, actor: adminActor, wantErr: ErrAccessDenied},
		{name: "client cannot complete", from: StatusConfirmed, to: StatusCompleted, actor: client, wantErr: ErrAccessDenied},
		{name: "other professional cannot complete", from: StatusConfirmed, to: StatusCompleted, actor: otherPro, wantErr: ErrAccessDenied},
		{name: "client cancels", from: StatusConfirmed, to: StatusCancelled, actor: client},
		{name: "professional cancels", from: StatusConfirmed, to: StatusCancelled, actor: pro},
		{name: "admin cancels", from: StatusConfirmed, to: StatusCancelled, actor: adminActor},
		{name: "stranger cannot cancel", from: StatusConfirmed, to: StatusCancelled, actor: otherUser, wantErr: ErrAccessDenied},
		{name: "completed is terminal", from: StatusCompleted, to: StatusCancelled, actor: pro, wantErr: ErrInvalidTransition},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusCompleted, actor: pro, wantErr: ErrInvalidTransition},
		{name: "cancelled cannot be re-confirmed", from: StatusCancelled, to: StatusConfirmed, actor: adminActor, wantErr: ErrInvalidTransition},
		{name: "self loop", from: StatusConfirmed, to: StatusConfirmed, actor: pro, wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeTransition(tt.actor, newBooking(tt.from), tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApplyTransition_Cancel(t *testing.T) {
	b := newBooking(StatusConfirmed)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	require.NoError(t, b.ApplyTransition(client, StatusCancelled, ptr.Ptr("changed plans"), now))

	assert.Equal(t, StatusCancelled, b.Status)
	require.NotNil(t, b.CancelledBy)
	assert.Equal(t, RoleClient, *b.CancelledBy)
	assert.Equal(t, "changed plans", *b.CancellationReason)
	assert.Equal(t, now, *b.CancelledAt)
	assert.False(t, b.IsActive())
}

func TestCanBeReviewed(t *testing.T) {
	b := newBooking(StatusConfirmed)
	assert.ErrorIs(t, b.CanBeReviewed(), ErrNotCompleted)
	assert.ErrorIs(t, b.CanBeReviewed(), ErrValidation)

	b.Status = StatusCompleted
	assert.NoError(t, b.CanBeReviewed())

	b.Reviewed = true
	assert.ErrorIs(t, b.CanBeReviewed(), ErrAlreadyReviewed)
}

func TestCanViewBooking(t *testing.T) {
	b := newBooking(StatusConfirmed)

	assert.True(t, CanViewBooking(client, b))
	assert.True(t, CanViewBooking(pro, b))
	assert.True(t, CanViewBooking(adminActor, b))
	assert.False(t, CanViewBooking(otherUser, b))
	assert.False(t, CanViewBooking(otherPro, b))
}

func TestCan(t *testing.T) {
	assert.True(t, Can(pro, CapManageSchedule, "pro-1"))
	assert.False(t, Can(pro, CapManageSchedule, "pro-2"))
	assert.False(t, Can(adminActor, CapManageSchedule, "pro-1"))
	assert.False(t, Can(adminActor, CapCompleteBooking, "pro-1"))
	assert.True(t, Can(adminActor, CapCancelAsProfessional, "pro-1"))
	assert.True(t, Can(adminActor, CapReviewVerifications, ""))
	assert.False(t, Can(pro, CapReviewVerifications, ""))
	assert.False(t, Can(Actor{Role: RoleAdmin}, CapReviewVerifications, ""), "anonymous actor")
	assert.False(t, Can(pro, Capability("unknown"), "pro-1"))
}
