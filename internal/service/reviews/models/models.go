package models

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID             string    `json:"id"`
	BookingID      string    `json:"bookingId"`
	ProfessionalID string    `json:"professionalId"`
	ClientID       string    `json:"clientId"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"createdAt"`
}

// SummaryResponse агрегированная оценка мастера
type SummaryResponse struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
}

// ReviewListResponse ответ со списком отзывов мастера
type ReviewListResponse struct {
	ProfessionalID string           `json:"professionalId"`
	Reviews        []ReviewResponse `json:"reviews"`
	Summary        SummaryResponse  `json:"summary"`
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	tags := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, string(t))
	}

	return &ReviewResponse{
		ID:             r.ID.String(),
		BookingID:      r.BookingID.String(),
		ProfessionalID: r.ProfessionalID,
		ClientID:       r.ClientID,
		Rating:         r.Rating,
		Comment:        r.Comment,
		Tags:           tags,
		CreatedAt:      r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует отзывы вместе со сводкой
func FromDomainReviewList(professionalID string, reviews []*domain.Review) *ReviewListResponse {
	summary := domain.Summarize(professionalID, reviews)

	resp := &ReviewListResponse{
		ProfessionalID: professionalID,
		Reviews:        make([]ReviewResponse, 0, len(reviews)),
		Summary: SummaryResponse{
			Count:         summary.Count,
			AverageRating: summary.AverageRating,
		},
	}
	for _, r := range reviews {
		if rr := FromDomainReview(r); rr != nil {
			resp.Reviews = append(resp.Reviews, *rr)
		}
	}
	return resp
}
