package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceCategory of the catalog
type ServiceCategory string

const (
	CategoryManicure     ServiceCategory = "Manicure"
	CategoryPedicure     ServiceCategory = "Pedicure"
	CategoryGelAcrylic   ServiceCategory = "Gel/Acrylic"
	CategoryNailArt      ServiceCategory = "Nail Art"
	CategorySpaTreatment ServiceCategory = "Spa Treatment"
	CategoryOther        ServiceCategory = "Other"
)

var serviceCategories = map[ServiceCategory]struct{}{
	CategoryManicure:     {},
	CategoryPedicure:     {},
	CategoryGelAcrylic:   {},
	CategoryNailArt:      {},
	CategorySpaTreatment: {},
	CategoryOther:        {},
}

// ServiceCategories lists the catalog categories in display order
func ServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		CategoryManicure,
		CategoryPedicure,
		CategoryGelAcrylic,
		CategoryNailArt,
		CategorySpaTreatment,
		CategoryOther,
	}
}

func (c ServiceCategory) Validate() error {
	if _, ok := serviceCategories[c]; !ok {
		return ErrUnknownCategory
	}
	return nil
}

// Service is an offering in a professional's catalog
type Service struct {
	ID              uuid.UUID
	OwnerID         string
	Name            string
	Description     string
	Price           decimal.Decimal
	DurationMinutes int
	Category        ServiceCategory
	ImageRef        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the service fields
func (s *Service) Validate() error {
	if s.OwnerID == "" {
		return ValidationError("owner id is required")
	}
	name := strings.TrimSpace(s.Name)
	if name == "" || len(name) > MaxServiceNameLength {
		return ValidationError("name must be 1..%d characters", MaxServiceNameLength)
	}
	if len(s.Description) > MaxServiceDescriptionLength {
		return ValidationError("description exceeds %d characters", MaxServiceDescriptionLength)
	}
	if !s.Price.IsPositive() {
		return ValidationError("price must be positive")
	}
	if s.DurationMinutes <= 0 || s.DurationMinutes > MaxServiceDurationMinutes {
		return ValidationError("duration must be 1..%d minutes", MaxServiceDurationMinutes)
	}
	return s.Category.Validate()
}

// ServiceFilter narrows a catalog search. Zero value matches everything.
type ServiceFilter struct {
	Category *ServiceCategory
	// Query is matched case-insensitively against name and description
	Query string
}

// Matches reports whether the service passes the filter
func (f ServiceFilter) Matches(s *Service) bool {
	if f.Category != nil && s.Category != *f.Category {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Name), q) ||
		strings.Contains(strings.ToLower(s.Description), q)
}

// Snapshot copies what a booking keeps about the service
func (s *Service) Snapshot() ServiceSnapshot {
	return ServiceSnapshot{
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// ServicePatch is a partial update; nil fields are left unchanged
type ServicePatch struct {
	Name            *string
	Description     *string
	Price           *decimal.Decimal
	DurationMinutes *int
	Category        *ServiceCategory
	ImageRef        *string
}

// IsEmpty reports whether the patch changes nothing
func (p ServicePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.DurationMinutes == nil && p.Category == nil && p.ImageRef == nil
}

// Apply returns a copy of s with the patch applied
func (p ServicePatch) Apply(s Service) Service {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.DurationMinutes != nil {
		s.DurationMinutes = *p.DurationMinutes
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.ImageRef != nil {
		s.ImageRef = *p.ImageRef
	}
	return s
}
