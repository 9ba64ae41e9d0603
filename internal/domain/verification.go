package domain

import (
	"net/mail"
	"strings"
	"time"
)

// VerificationStatus of a professional profile
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// ParseVerificationStatus accepts only the known statuses
func ParseVerificationStatus(s string) (VerificationStatus, error) {
	switch st := VerificationStatus(s); st {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return st, nil
	}
	return "", ValidationError("unknown verification status %q", s)
}

// VerificationProfile is a professional's onboarding application
type VerificationProfile struct {
	ProfessionalID  string
	Name            string
	Email           string
	Specialties     []string
	Status          VerificationStatus
	AppliedDate     time.Time
	DecidedAt       *time.Time
	DecidedBy       *string
	RejectionReason *string
}

// Validate checks the application fields
func (p *VerificationProfile) Validate() error {
	if p.ProfessionalID == "" {
		return ValidationError("professional id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return ValidationError("name is required")
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return ValidationError("invalid email %q", p.Email)
	}
	return nil
}

// IsDecided reports whether an admin already approved or rejected the profile
func (p *VerificationProfile) IsDecided() bool {
	return p.Status != VerificationPending
}

// Decide moves a pending profile to approved or rejected, exactly once
func (p *VerificationProfile) Decide(to VerificationStatus, reason *string, adminID string, now time.Time) error {
	if p.IsDecided() {
		return ErrAlreadyDecided
	}

	switch to {
	case VerificationApproved:
		p.RejectionReason = nil
	case VerificationRejected:
		if reason == nil || strings.TrimSpace(*reason) == "" {
			return ErrReasonRequired
		}
		if len(*reason) > MaxRejectionReasonLength {
			return ValidationError("rejection reason exceeds %d characters", MaxRejectionReasonLength)
		}
		trimmed := strings.TrimSpace(*reason)
		p.RejectionReason = &trimmed
	default:
		return ValidationError("cannot decide verification as %q", to)
	}

	p.Status = to
	p.DecidedAt = &now
	p.DecidedBy = &adminID
	return nil
}

// VerificationStats counts profiles per status
type VerificationStats struct {
	Pending  int
	Approved int
	Rejected int
	Total    int
}

// Add counts one profile
func (s *VerificationStats) Add(status VerificationStatus) {
	switch status {
	case VerificationPending:
		s.Pending++
	case VerificationApproved:
		s.Approved++
	case VerificationRejected:
		s.Rejected++
	}
	s.Total++
}
