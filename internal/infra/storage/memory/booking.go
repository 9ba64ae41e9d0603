package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
)

// BookingRepository хранилище бронирований в памяти
// Возвращает те же ошибки, что и postgres-репозиторий
type BookingRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.Booking
	now   clock
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{
		items: make(map[uuid.UUID]domain.Booking),
		now:   time.Now,
	}
}

// LockProfessional внутри транзакции ничего не делает: TxManager уже держит эксклюзивный доступ
func (r *BookingRepository) LockProfessional(ctx context.Context, _ string) error {
	if !inTx(ctx) {
		return fmt.Errorf("%w: LockProfessional - called outside of transaction", bookingRepo.ErrLock)
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	// Аналог частичного уникального индекса по активным бронированиям
	if booking.IsActive() {
		for _, b := range r.items {
			if b.IsActive() && b.ProfessionalID == booking.ProfessionalID &&
				domain.SameDate(b.BookingDate, booking.BookingDate) && b.StartTime.Equal(booking.StartTime) {
				return nil, fmt.Errorf("%w: Create - active booking %s", bookingRepo.ErrSlotNotAvailable, b.ID)
			}
		}
	}

	now := r.now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.items[booking.ID] = *booking

	id := booking.ID
	onRollback(ctx, func() {
		r.mu.Lock()
		delete(r.items, id)
		r.mu.Unlock()
	})

	out := *booking
	return &out, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) GetByClientID(_ context.Context, filter domain.ClientBookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range r.items {
		if b.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		b := b
		out = append(out, &b)
	}
	sortByStartDesc(out)
	return out, nil
}

func (r *BookingRepository) GetByProfessionalWithFilter(_ context.Context, filter domain.ProfessionalBookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range r.items {
		if b.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if filter.StartDate != nil && domain.CompareDates(b.BookingDate, *filter.StartDate) < 0 {
			continue
		}
		if filter.EndDate != nil && domain.CompareDates(b.BookingDate, *filter.EndDate) > 0 {
			continue
		}
		if filter.Status != nil {
			if b.Status != *filter.Status {
				continue
			}
		} else if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		b := b
		out = append(out, &b)
	}

	if filter.StartDate != nil && filter.EndDate != nil && domain.SameDate(*filter.StartDate, *filter.EndDate) {
		sort.Slice(out, func(i, j int) bool { return out[i].StartMinutes() < out[j].StartMinutes() })
	} else {
		sortByStartDesc(out)
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[booking.ID]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}

	updated := prev
	updated.Status = booking.Status
	updated.CancelledBy = booking.CancelledBy
	updated.CancellationReason = booking.CancellationReason
	updated.CancelledAt = booking.CancelledAt
	updated.UpdatedAt = r.now()
	r.items[booking.ID] = updated
	booking.UpdatedAt = updated.UpdatedAt

	onRollback(ctx, func() {
		r.mu.Lock()
		r.items[prev.ID] = prev
		r.mu.Unlock()
	})
	return nil
}

func (r *BookingRepository) MarkReviewed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}

	updated := prev
	updated.Reviewed = true
	updated.UpdatedAt = r.now()
	r.items[id] = updated

	onRollback(ctx, func() {
		r.mu.Lock()
		r.items[prev.ID] = prev
		r.mu.Unlock()
	})
	return nil
}

func sortByStartDesc(bookings []*domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if c := domain.CompareDates(bookings[i].BookingDate, bookings[j].BookingDate); c != 0 {
			return c > 0
		}
		return bookings[i].StartMinutes() > bookings[j].StartMinutes()
	})
}
