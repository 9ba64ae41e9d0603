package submit_review

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// buildReview валидирует запрос и собирает отзыв без привязки к мастеру
func buildReview(req *Request) (*domain.Review, error) {
	if req.BookingID == uuid.Nil {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	tags := make([]domain.ReviewTag, 0, len(req.Tags))
	for _, t := range req.Tags {
		tags = append(tags, domain.ReviewTag(t))
	}

	review := &domain.Review{
		BookingID: req.BookingID,
		ClientID:  req.Actor.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Tags:      tags,
	}
	if err := review.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return review, nil
}
