package reviews

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/reviews/models"
)

// Service сервис чтения отзывов
type Service struct {
	reviewRepo ReviewRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// ListByProfessional возвращает отзывы мастера, новые первыми, и среднюю оценку
func (s *Service) ListByProfessional(ctx context.Context, professionalID string) (*models.ReviewListResponse, error) {
	s.logger.Info("ListByProfessional: fetching reviews of professional=%s", professionalID)

	if professionalID == "" {
		return nil, fmt.Errorf("%w: professional id is required", ErrInvalidInput)
	}

	reviews, err := s.reviewRepo.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("ListByProfessional: repository error for professional=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: ListByProfessional - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainReviewList(professionalID, reviews)
	s.logger.Info("ListByProfessional: successfully fetched %d reviews of professional=%s, average=%.1f",
		resp.Summary.Count, professionalID, resp.Summary.AverageRating)
	return resp, nil
}
