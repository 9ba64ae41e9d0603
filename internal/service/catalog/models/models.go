package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"durationMinutes"`
	Category        string          `json:"category"`
	ImageRef        string          `json:"imageRef"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateServiceRequest) ToDomain(ownerID string) *domain.Service {
	return &domain.Service{
		OwnerID:         ownerID,
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Category:        domain.ServiceCategory(r.Category),
		ImageRef:        r.ImageRef,
	}
}

// UpdateServiceRequest частичное обновление услуги, nil поля не меняются
type UpdateServiceRequest struct {
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	DurationMinutes *int             `json:"durationMinutes,omitempty"`
	Category        *string          `json:"category,omitempty"`
	ImageRef        *string          `json:"imageRef,omitempty"`
}

// ToDomainPatch конвертирует request в domain патч
func (r *UpdateServiceRequest) ToDomainPatch() domain.ServicePatch {
	patch := domain.ServicePatch{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		ImageRef:        r.ImageRef,
	}
	if r.Category != nil {
		category := domain.ServiceCategory(*r.Category)
		patch.Category = &category
	}
	return patch
}

// ListServicesRequest фильтры поиска по каталогу
type ListServicesRequest struct {
	Category string
	Query    string
}

// CategoryAll значение фильтра без ограничения по категории
const CategoryAll = "All"

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListServicesRequest) ToDomainFilter() (domain.ServiceFilter, error) {
	filter := domain.ServiceFilter{Query: strings.TrimSpace(r.Query)}
	if r.Category == "" || r.Category == CategoryAll {
		return filter, nil
	}
	category := domain.ServiceCategory(r.Category)
	if err := category.Validate(); err != nil {
		return domain.ServiceFilter{}, err
	}
	filter.Category = &category
	return filter, nil
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"ownerId"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"durationMinutes"`
	Category        string          `json:"category"`
	ImageRef        string          `json:"imageRef,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// CategoriesResponse справочник категорий услуг
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID.String(),
		OwnerID:         s.OwnerID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Category:        string(s.Category),
		ImageRef:        s.ImageRef,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		if sr := FromDomainService(s); sr != nil {
			resp.Services = append(resp.Services, *sr)
		}
	}
	return resp
}

// FromDomainCategories конвертирует список категорий в DTO
func FromDomainCategories(categories []domain.ServiceCategory) *CategoriesResponse {
	resp := &CategoriesResponse{Categories: make([]string, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, string(c))
	}
	return resp
}
