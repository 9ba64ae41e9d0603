package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/schedule"
)

// ScheduleRepository хранилище расписаний в памяти
type ScheduleRepository struct {
	mu    sync.RWMutex
	items map[string]domain.WeeklySchedule
	now   clock
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{
		items: make(map[string]domain.WeeklySchedule),
		now:   time.Now,
	}
}

func (r *ScheduleRepository) Get(_ context.Context, professionalID string) (*domain.WeeklySchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[professionalID]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return &s, nil
}

// Replace подменяет все семь дней одним присваиванием под мьютексом
func (r *ScheduleRepository) Replace(ctx context.Context, schedule *domain.WeeklySchedule) error {
	if !inTx(ctx) {
		return fmt.Errorf("%w: Replace - called outside of transaction", scheduleRepo.ErrTransaction)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, existed := r.items[schedule.ProfessionalID]

	now := r.now()
	schedule.UpdatedAt = &now
	schedule.IsDefault = false
	r.items[schedule.ProfessionalID] = *schedule

	id := schedule.ProfessionalID
	onRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if existed {
			r.items[id] = prev
		} else {
			delete(r.items, id)
		}
	})
	return nil
}
