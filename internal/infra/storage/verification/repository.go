package verification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var profileColumns = []string{
	"professional_id",
	"name",
	"email",
	"specialties",
	"status",
	"applied_at",
	"decided_at",
	"decided_by",
	"rejection_reason",
}

// Repository репозиторий заявок на верификацию мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория верификаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку
func (r *Repository) Create(ctx context.Context, profile *domain.VerificationProfile) (*domain.VerificationProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("verification_profiles").
		Columns("professional_id", "name", "email", "specialties", "status", "applied_at").
		Values(
			profile.ProfessionalID,
			profile.Name,
			profile.Email,
			pq.Array(profile.Specialties),
			profile.Status,
			profile.AppliedDate,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return profile, nil
}

// GetByID получает заявку мастера
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы решение принималось один раз
func (r *Repository) GetByID(ctx context.Context, professionalID string) (*domain.VerificationProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(profileColumns...).
		From("verification_profiles").
		Where(squirrel.Eq{"professional_id": professionalID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	profile, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %v", ErrScanRow, err)
	}

	return profile, nil
}

// ListByStatus получает заявки, опционально фильтруя по статусу; старые первыми
func (r *Repository) ListByStatus(ctx context.Context, status *domain.VerificationStatus) ([]*domain.VerificationProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(profileColumns...).
		From("verification_profiles").
		OrderBy("applied_at ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	profiles := make([]*domain.VerificationProfile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStatus - scan row: %v", ErrScanRow, err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - rows error: %v", ErrScanRow, err)
	}

	return profiles, nil
}

// Stats считает заявки по статусам
func (r *Repository) Stats(ctx context.Context) (domain.VerificationStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	var stats domain.VerificationStats

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("verification_profiles").
		GroupBy("status").
		ToSql()

	if err != nil {
		return stats, fmt.Errorf("%w: Stats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return stats, fmt.Errorf("%w: Stats - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status domain.VerificationStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return stats, fmt.Errorf("%w: Stats - scan row: %v", ErrScanRow, err)
		}
		switch status {
		case domain.VerificationPending:
			stats.Pending = count
		case domain.VerificationApproved:
			stats.Approved = count
		case domain.VerificationRejected:
			stats.Rejected = count
		}
		stats.Total += count
	}

	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("%w: Stats - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

// UpdateDecision сохраняет решение администратора
func (r *Repository) UpdateDecision(ctx context.Context, profile *domain.VerificationProfile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("verification_profiles").
		Set("status", profile.Status).
		Set("decided_at", profile.DecidedAt).
		Set("decided_by", profile.DecidedBy).
		Set("rejection_reason", profile.RejectionReason).
		Where(squirrel.Eq{"professional_id": profile.ProfessionalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*domain.VerificationProfile, error) {
	var profile domain.VerificationProfile
	err := row.Scan(
		&profile.ProfessionalID,
		&profile.Name,
		&profile.Email,
		pq.Array(&profile.Specialties),
		&profile.Status,
		&profile.AppliedDate,
		&profile.DecidedAt,
		&profile.DecidedBy,
		&profile.RejectionReason,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
