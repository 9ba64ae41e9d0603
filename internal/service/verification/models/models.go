package models

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Request модели

// ApplyRequest заявка мастера на верификацию
type ApplyRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Specialties []string `json:"specialties"`
}

// ToDomain конвертирует заявку в domain модель
func (r *ApplyRequest) ToDomain(professionalID string, now time.Time) *domain.VerificationProfile {
	specialties := r.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return &domain.VerificationProfile{
		ProfessionalID: professionalID,
		Name:           r.Name,
		Email:          r.Email,
		Specialties:    specialties,
		Status:         domain.VerificationPending,
		AppliedDate:    now,
	}
}

// DecisionRequest решение администратора
type DecisionRequest struct {
	Status string  `json:"status"`           // approved | rejected
	Reason *string `json:"reason,omitempty"` // Обязательна для rejected
}

// Response модели

// ProfileResponse ответ с данными заявки
type ProfileResponse struct {
	ProfessionalID  string     `json:"professionalId"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Specialties     []string   `json:"specialties"`
	Status          string     `json:"status"`
	AppliedDate     time.Time  `json:"appliedDate"`
	DecidedAt       *time.Time `json:"decidedAt,omitempty"`
	DecidedBy       *string    `json:"decidedBy,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
}

// StatsResponse счётчики заявок по статусам
type StatsResponse struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// ProfileListResponse ответ со списком заявок и статистикой
type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Stats    StatsResponse     `json:"stats"`
}

// ProfessionalResponse публичная карточка одобренного мастера, без контактов
type ProfessionalResponse struct {
	ProfessionalID string     `json:"professionalId"`
	Name           string     `json:"name"`
	Specialties    []string   `json:"specialties"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
}

// ProfessionalListResponse ответ со списком мастеров
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

// Методы конвертации

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.VerificationProfile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ProfessionalID:  p.ProfessionalID,
		Name:            p.Name,
		Email:           p.Email,
		Specialties:     p.Specialties,
		Status:          string(p.Status),
		AppliedDate:     p.AppliedDate,
		DecidedAt:       p.DecidedAt,
		DecidedBy:       p.DecidedBy,
		RejectionReason: p.RejectionReason,
	}
}

// FromDomainProfileList конвертирует список заявок и статистику
func FromDomainProfileList(profiles []*domain.VerificationProfile, stats domain.VerificationStats) *ProfileListResponse {
	resp := &ProfileListResponse{
		Profiles: make([]ProfileResponse, 0, len(profiles)),
		Stats: StatsResponse{
			Pending:  stats.Pending,
			Approved: stats.Approved,
			Rejected: stats.Rejected,
			Total:    stats.Total,
		},
	}
	for _, p := range profiles {
		if pr := FromDomainProfile(p); pr != nil {
			resp.Profiles = append(resp.Profiles, *pr)
		}
	}
	return resp
}

// FromDomainProfessionalList конвертирует одобренные заявки в публичные карточки
func FromDomainProfessionalList(profiles []*domain.VerificationProfile) *ProfessionalListResponse {
	resp := &ProfessionalListResponse{Professionals: make([]ProfessionalResponse, 0, len(profiles))}
	for _, p := range profiles {
		if p == nil {
			continue
		}
		resp.Professionals = append(resp.Professionals, ProfessionalResponse{
			ProfessionalID: p.ProfessionalID,
			Name:           p.Name,
			Specialties:    p.Specialties,
			ApprovedAt:     p.DecidedAt,
		})
	}
	return resp
}
