package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	verificationRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/verification"
)

// VerificationRepository хранилище заявок на верификацию в памяти
type VerificationRepository struct {
	mu    sync.RWMutex
	items map[string]domain.VerificationProfile
}

func NewVerificationRepository() *VerificationRepository {
	return &VerificationRepository{items: make(map[string]domain.VerificationProfile)}
}

func (r *VerificationRepository) Create(ctx context.Context, profile *domain.VerificationProfile) (*domain.VerificationProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[profile.ProfessionalID]; exists {
		return nil, verificationRepo.ErrProfileExists
	}
	r.items[profile.ProfessionalID] = *profile

	id := profile.ProfessionalID
	onRollback(ctx, func() {
		r.mu.Lock()
		delete(r.items, id)
		r.mu.Unlock()
	})

	out := *profile
	return &out, nil
}

func (r *VerificationRepository) GetByID(_ context.Context, professionalID string) (*domain.VerificationProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[professionalID]
	if !ok {
		return nil, verificationRepo.ErrProfileNotFound
	}
	return &p, nil
}

func (r *VerificationRepository) ListByStatus(_ context.Context, status *domain.VerificationStatus) ([]*domain.VerificationProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.VerificationProfile, 0)
	for _, p := range r.items {
		if status != nil && p.Status != *status {
			continue
		}
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedDate.Before(out[j].AppliedDate) })
	return out, nil
}

func (r *VerificationRepository) Stats(_ context.Context) (domain.VerificationStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats domain.VerificationStats
	for _, p := range r.items {
		stats.Add(p.Status)
	}
	return stats, nil
}

func (r *VerificationRepository) UpdateDecision(ctx context.Context, profile *domain.VerificationProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[profile.ProfessionalID]
	if !ok {
		return verificationRepo.ErrProfileNotFound
	}

	updated := prev
	updated.Status = profile.Status
	updated.DecidedAt = profile.DecidedAt
	updated.DecidedBy = profile.DecidedBy
	updated.RejectionReason = profile.RejectionReason
	r.items[profile.ProfessionalID] = updated

	onRollback(ctx, func() {
		r.mu.Lock()
		r.items[prev.ProfessionalID] = prev
		r.mu.Unlock()
	})
	return nil
}
