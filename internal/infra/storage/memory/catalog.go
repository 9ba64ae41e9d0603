package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/catalog"
)

// CatalogRepository хранилище услуг в памяти
type CatalogRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.Service
	now   clock
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		items: make(map[uuid.UUID]domain.Service),
		now:   time.Now,
	}
}

func (r *CatalogRepository) Create(_ context.Context, service *domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	now := r.now()
	service.CreatedAt = now
	service.UpdatedAt = now
	r.items[service.ID] = *service

	out := *service
	return &out, nil
}

func (r *CatalogRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &s, nil
}

func (r *CatalogRepository) ListByOwner(_ context.Context, ownerID string) ([]*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Service, 0)
	for _, s := range r.items {
		if s.OwnerID == ownerID {
			s := s
			out = append(out, &s)
		}
	}
	sortServices(out)
	return out, nil
}

func (r *CatalogRepository) List(_ context.Context, filter domain.ServiceFilter) ([]*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Service, 0)
	for _, s := range r.items {
		s := s
		if filter.Matches(&s) {
			out = append(out, &s)
		}
	}
	sortServices(out)
	return out, nil
}

func (r *CatalogRepository) Update(_ context.Context, service *domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[service.ID]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	service.OwnerID = prev.OwnerID
	service.CreatedAt = prev.CreatedAt
	service.UpdatedAt = r.now()
	r.items[service.ID] = *service

	out := *service
	return &out, nil
}

func (r *CatalogRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return catalogRepo.ErrServiceNotFound
	}
	delete(r.items, id)
	return nil
}

// sortServices порядок как в postgres: name, created_at
func sortServices(services []*domain.Service) {
	sort.Slice(services, func(i, j int) bool {
		if services[i].Name != services[j].Name {
			return services[i].Name < services[j].Name
		}
		return services[i].CreatedAt.Before(services[j].CreatedAt)
	})
}
