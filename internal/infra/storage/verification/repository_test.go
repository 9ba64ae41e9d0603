package verification

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
)

func newProfile() *domain.VerificationProfile {
	return &domain.VerificationProfile{
		ProfessionalID: "pro-1",
		Name:           "Ana Lopez",
		Email:          "ana@example.com",
		Specialties:    []string{"Manicure"},
		Status:         domain.VerificationPending,
		AppliedDate:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRepository_CreateErrors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "ok"},
		{name: "second application", dbErr: &pq.Error{Code: uniqueViolation}, wantErr: ErrProfileExists},
		{name: "other constraint", dbErr: &pq.Error{Code: "23514"}, wantErr: ErrExecQuery},
		{name: "network", dbErr: errors.New("broken pipe"), wantErr: ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, rec := storagetest.Open(t)
			rec.FailWith(tt.dbErr)

			_, err := NewRepository(db).Create(context.Background(), newProfile())
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Contains(t, rec.Last().SQL, "INSERT INTO verification_profiles")
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRepository_GetByIDLocksInsideTx(t *testing.T) {
	db, rec := storagetest.Open(t)
	repo := NewRepository(db)

	_, err := repo.GetByID(context.Background(), "pro-1")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NotContains(t, rec.Last().SQL, "FOR UPDATE")

	_, err = repo.GetByID(storagetest.InTx(t, db), "pro-1")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Contains(t, rec.Last().SQL, "WHERE professional_id = $1 FOR UPDATE")
	assert.Equal(t, []interface{}{"pro-1"}, rec.Last().Args)
}

func TestRepository_ListByStatusQuery(t *testing.T) {
	db, rec := storagetest.Open(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.ListByStatus(ctx, nil)
	require.NoError(t, err)
	assert.NotContains(t, rec.Last().SQL, "WHERE")
	assert.Contains(t, rec.Last().SQL, "ORDER BY applied_at ASC")

	_, err = repo.ListByStatus(ctx, ptr.Ptr(domain.VerificationApproved))
	require.NoError(t, err)
	assert.Contains(t, rec.Last().SQL, "WHERE status = $1 ORDER BY applied_at ASC")
	assert.Equal(t, []interface{}{domain.VerificationApproved}, rec.Last().Args)
}

func TestRepository_Stats(t *testing.T) {
	db, rec := storagetest.Open(t)
	rec.ReturnRows([]string{"status", "count"},
		[]driver.Value{"pending", int64(2)},
		[]driver.Value{"approved", int64(1)},
	)

	stats, err := NewRepository(db).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationStats{Pending: 2, Approved: 1, Total: 3}, stats)
	assert.Equal(t, "SELECT status, COUNT(*) FROM verification_profiles GROUP BY status", rec.Last().SQL)
}

func TestRepository_UpdateDecisionNotFound(t *testing.T) {
	db, rec := storagetest.Open(t)
	repo := NewRepository(db)

	assert.ErrorIs(t, repo.UpdateDecision(context.Background(), newProfile()), ErrProfileNotFound)

	rec.SetRowsAffected(1)
	require.NoError(t, repo.UpdateDecision(context.Background(), newProfile()))
}
