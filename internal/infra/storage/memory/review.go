package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	reviewRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/review"
)

// ReviewRepository хранилище отзывов в памяти, ключ - бронирование
type ReviewRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.Review
	now   clock
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{
		items: make(map[uuid.UUID]domain.Review),
		now:   time.Now,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[review.BookingID]; exists {
		return nil, reviewRepo.ErrReviewExists
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = r.now()
	r.items[review.BookingID] = *review

	bookingID := review.BookingID
	onRollback(ctx, func() {
		r.mu.Lock()
		delete(r.items, bookingID)
		r.mu.Unlock()
	})

	out := *review
	return &out, nil
}

func (r *ReviewRepository) GetByBookingID(_ context.Context, bookingID uuid.UUID) (*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rv, ok := r.items[bookingID]
	if !ok {
		return nil, reviewRepo.ErrReviewNotFound
	}
	return &rv, nil
}

func (r *ReviewRepository) ListByProfessional(_ context.Context, professionalID string) ([]*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Review, 0)
	for _, rv := range r.items {
		if rv.ProfessionalID == professionalID {
			rv := rv
			out = append(out, &rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
