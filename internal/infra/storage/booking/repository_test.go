package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func newBooking() *domain.Booking {
	return &domain.Booking{
		ClientID:        "client-1",
		ProfessionalID:  "pro-1",
		BookingDate:     day,
		StartTime:       types.MustTimeString("10:00"),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
		ServiceName:     "Manicure",
		ServicePrice:    decimal.NewFromInt(30),
	}
}

func TestRepository_CreateErrors(t *testing.T) {
	tests := []struct {
		name     string
		dbErr    error
		wantErr  error
		wantCode pq.ErrorCode
	}{
		{
			name:    "active slot taken",
			dbErr:   &pq.Error{Code: uniqueViolation, Constraint: "uq_bookings_active_slot"},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:     "serialization failure keeps pq error",
			dbErr:    &pq.Error{Code: "40001"},
			wantErr:  ErrExecQuery,
			wantCode: "40001",
		},
		{
			name:    "connection lost",
			dbErr:   errors.New("connection reset"),
			wantErr: ErrExecQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, rec := storagetest.Open(t)
			rec.FailWith(tt.dbErr)

			_, err := NewRepository(db).Create(context.Background(), newBooking())
			require.ErrorIs(t, err, tt.wantErr)

			var pqErr *pq.Error
			if tt.wantCode != "" {
				require.True(t, errors.As(err, &pqErr))
				assert.Equal(t, tt.wantCode, pqErr.Code)
			}
			if errors.Is(tt.wantErr, ErrSlotNotAvailable) {
				assert.NotErrorIs(t, err, ErrExecQuery)
				assert.Contains(t, err.Error(), "uq_bookings_active_slot")
			}
		})
	}
}

func TestRepository_CreateQuery(t *testing.T) {
	db, rec := storagetest.Open(t)

	b := newBooking()
	_, err := NewRepository(db).Create(context.Background(), b)
	// пустой ответ RETURNING
	require.Error(t, err)

	q := rec.Last()
	assert.Contains(t, q.SQL, "INSERT INTO bookings")
	assert.Contains(t, q.SQL, "RETURNING created_at, updated_at")
	require.Len(t, q.Args, 12)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, b.ID, q.Args[0])
	assert.Equal(t, "pro-1", q.Args[2])
}

func TestRepository_GetByIDLocksInsideTx(t *testing.T) {
	db, rec := storagetest.Open(t)
	repo := NewRepository(db)
	id := uuid.New()

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NotContains(t, rec.Last().SQL, "FOR UPDATE")
	assert.Equal(t, []interface{}{id}, rec.Last().Args)

	_, err = repo.GetByID(storagetest.InTx(t, db), id)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Contains(t, rec.Last().SQL, "WHERE id = $1 FOR UPDATE")
}

func TestRepository_ProfessionalFilterQuery(t *testing.T) {
	nextDay := day.AddDate(0, 0, 1)

	tests := []struct {
		name       string
		filter     domain.ProfessionalBookingsFilter
		inTx       bool
		contains   []string
		notContain []string
		args       int
	}{
		{
			name:     "single day inside tx locks rows",
			filter:   domain.ProfessionalBookingsFilter{ProfessionalID: "pro-1", StartDate: &day, EndDate: &day},
			inTx:     true,
			contains: []string{"status NOT IN ($4)", "ORDER BY start_time ASC FOR UPDATE"},
			args:     4,
		},
		{
			name:       "single day outside tx",
			filter:     domain.ProfessionalBookingsFilter{ProfessionalID: "pro-1", StartDate: &day, EndDate: &day},
			contains:   []string{"ORDER BY start_time ASC"},
			notContain: []string{"FOR UPDATE"},
			args:       4,
		},
		{
			name:       "period inside tx is not locked",
			filter:     domain.ProfessionalBookingsFilter{ProfessionalID: "pro-1", StartDate: &day, EndDate: &nextDay},
			inTx:       true,
			contains:   []string{"booking_date >= $2", "booking_date <= $3", "ORDER BY booking_date DESC, start_time DESC"},
			notContain: []string{"FOR UPDATE"},
			args:       4,
		},
		{
			name:       "explicit status replaces inactive filter",
			filter:     domain.ProfessionalBookingsFilter{ProfessionalID: "pro-1", Status: ptr.Ptr(domain.StatusCancelled)},
			contains:   []string{"status = $2"},
			notContain: []string{"NOT IN"},
			args:       2,
		},
		{
			name:       "include inactive",
			filter:     domain.ProfessionalBookingsFilter{ProfessionalID: "pro-1", IncludeInactive: true},
			contains:   []string{"WHERE professional_id = $1 ORDER BY"},
			notContain: []string{"status =", "NOT IN"},
			args:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, rec := storagetest.Open(t)
			ctx := context.Background()
			if tt.inTx {
				ctx = storagetest.InTx(t, db)
			}

			got, err := NewRepository(db).GetByProfessionalWithFilter(ctx, tt.filter)
			require.NoError(t, err)
			assert.Empty(t, got)

			q := rec.Last()
			for _, s := range tt.contains {
				assert.Contains(t, q.SQL, s)
			}
			for _, s := range tt.notContain {
				assert.NotContains(t, q.SQL, s)
			}
			assert.Len(t, q.Args, tt.args)
		})
	}
}

func TestRepository_LockProfessional(t *testing.T) {
	db, rec := storagetest.Open(t)
	repo := NewRepository(db)

	assert.ErrorIs(t, repo.LockProfessional(context.Background(), "pro-1"), ErrLock)
	assert.Empty(t, rec.Queries())

	require.NoError(t, repo.LockProfessional(storagetest.InTx(t, db), "pro-1"))
	assert.Equal(t, storagetest.Query{
		SQL:  "SELECT pg_advisory_xact_lock(hashtext($1))",
		Args: []interface{}{"pro-1"},
	}, rec.Last())
}

func TestRepository_MarkReviewed(t *testing.T) {
	db, rec := storagetest.Open(t)
	repo := NewRepository(db)
	ctx := context.Background()

	assert.ErrorIs(t, repo.MarkReviewed(ctx, uuid.New()), ErrBookingNotFound)

	rec.SetRowsAffected(1)
	require.NoError(t, repo.MarkReviewed(ctx, uuid.New()))
	assert.Contains(t, rec.Last().SQL, "UPDATE bookings SET reviewed = $1, updated_at = NOW() WHERE id = $2")
}
