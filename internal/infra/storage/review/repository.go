package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var reviewColumns = []string{
	"id",
	"booking_id",
	"professional_id",
	"client_id",
	"rating",
	"comment",
	"tags",
	"created_at",
}

// Repository репозиторий отзывов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отзыв; на одно бронирование допускается один отзыв (unique booking_id)
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("id", "booking_id", "professional_id", "client_id", "rating", "comment", "tags").
		Values(
			review.ID,
			review.BookingID,
			review.ProfessionalID,
			review.ClientID,
			review.Rating,
			review.Comment,
			pq.Array(tagStrings(review.Tags)),
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&review.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrReviewExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return review, nil
}

// GetByBookingID получает отзыв по бронированию
func (r *Repository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	review, err := scanReview(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan review: %v", ErrScanRow, err)
	}

	return review, nil
}

// ListByProfessional получает отзывы мастера, новые первыми
func (r *Repository) ListByProfessional(ctx context.Context, professionalID string) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProfessional - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var (
		review domain.Review
		tags   []string
	)
	err := row.Scan(
		&review.ID,
		&review.BookingID,
		&review.ProfessionalID,
		&review.ClientID,
		&review.Rating,
		&review.Comment,
		pq.Array(&tags),
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	review.Tags = make([]domain.ReviewTag, 0, len(tags))
	for _, t := range tags {
		review.Tags = append(review.Tags, domain.ReviewTag(t))
	}
	return &review, nil
}

func tagStrings(tags []domain.ReviewTag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, string(t))
	}
	return out
}
