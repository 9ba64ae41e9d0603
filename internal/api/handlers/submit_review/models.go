package submit_review

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/reviews/models"
	submitReview "github.com/m04kA/SMC-BeautyBooking/internal/usecase/submit_review"
)

// SubmitReviewRequest HTTP request model
type SubmitReviewRequest struct {
	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Tags    []string `json:"tags,omitempty"`
}

// SubmitReviewResponse HTTP response model
type SubmitReviewResponse struct {
	models.ReviewResponse
	EventID string `json:"eventId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitReviewRequest) ToUseCaseRequest(actor domain.Actor, bookingID uuid.UUID) *submitReview.Request {
	return &submitReview.Request{
		Actor:     actor,
		BookingID: bookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Tags:      r.Tags,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitReview.Response) *SubmitReviewResponse {
	return &SubmitReviewResponse{
		ReviewResponse: *models.FromDomainReview(resp.Review),
		EventID:        resp.EventID.String(),
	}
}
