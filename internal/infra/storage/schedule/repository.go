package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/psqlbuilder"
)

// Repository репозиторий недельных расписаний мастеров
// Расписание хранится семью строками schedule_days (по одной на день недели)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает расписание мастера
func (r *Repository) Get(ctx context.Context, professionalID string) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"enabled",
		"start_time",
		"end_time",
		"updated_at",
	).
		From("schedule_days").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := &domain.WeeklySchedule{ProfessionalID: professionalID}
	count := 0
	for rows.Next() {
		var (
			weekday   int
			day       domain.DayAvailability
			updatedAt time.Time
		)
		// TIME приходит как time.Time или NULL, types.TimeString умеет оба варианта
		if err := rows.Scan(&weekday, &day.Enabled, &day.StartTime, &day.EndTime, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: Get - scan row: %v", ErrScanRow, err)
		}
		if weekday < 0 || weekday > 6 {
			return nil, fmt.Errorf("%w: Get - weekday out of range: %d", ErrScanRow, weekday)
		}

		schedule.Days[weekday] = day
		if schedule.UpdatedAt == nil || updatedAt.After(*schedule.UpdatedAt) {
			u := updatedAt
			schedule.UpdatedAt = &u
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - rows error: %v", ErrScanRow, err)
	}

	if count == 0 {
		return nil, ErrScheduleNotFound
	}
	if count != len(domain.Weekdays) {
		return nil, fmt.Errorf("%w: Get - got %d days", ErrIncompleteSchedule, count)
	}

	return schedule, nil
}

// Replace атомарно заменяет расписание мастера целиком: delete + insert семи дней
// Должен вызываться внутри транзакции, иначе читатели увидят частичное расписание
func (r *Repository) Replace(ctx context.Context, schedule *domain.WeeklySchedule) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: Replace - called outside of transaction", ErrTransaction)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("schedule_days").
		Where(squirrel.Eq{"professional_id": schedule.ProfessionalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %w", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("schedule_days").
		Columns("professional_id", "weekday", "enabled", "start_time", "end_time")
	for _, d := range domain.Weekdays {
		day := schedule.Days[d]
		insertBuilder = insertBuilder.Values(
			schedule.ProfessionalID,
			int(d),
			day.Enabled,
			day.StartTime,
			day.EndTime,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.Suffix("RETURNING updated_at").ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	if err := executor.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&updatedAt); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %w", ErrExecQuery, err)
	}

	schedule.UpdatedAt = &updatedAt
	schedule.IsDefault = false

	return nil
}
