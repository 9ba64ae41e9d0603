package verification

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	verificationRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/verification"
	"github.com/m04kA/SMC-BeautyBooking/internal/notifications"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/verification/models"
)

// Service сервис верификации мастеров
type Service struct {
	profileRepo  ProfileRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса верификации
func NewService(
	profileRepo ProfileRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		profileRepo:  profileRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Apply создаёт заявку мастера в статусе pending
func (s *Service) Apply(ctx context.Context, actor domain.Actor, req *models.ApplyRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Apply: professional=%s applies for verification", actor.UserID)

	if !domain.Can(actor, domain.CapApplyVerification, actor.UserID) {
		s.logger.Warn("Apply: access denied for user=%s role=%s", actor.UserID, actor.Role)
		return nil, ErrAccessDenied
	}

	profile := req.ToDomain(actor.UserID, s.timeProvider.Now())
	if err := profile.Validate(); err != nil {
		s.logger.Warn("Apply: invalid application of professional=%s: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		if errors.Is(err, verificationRepo.ErrProfileExists) {
			s.logger.Warn("Apply: professional=%s already applied", actor.UserID)
			return nil, ErrAlreadyApplied
		}
		s.logger.Error("Apply: repository error for professional=%s: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: Apply - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Apply: successfully submitted application of professional=%s", actor.UserID)
	return models.FromDomainProfile(created), nil
}

// List возвращает заявки с фильтром по статусу и общую статистику
// Доступно только администраторам
func (s *Service) List(ctx context.Context, actor domain.Actor, status *string) (*models.ProfileListResponse, error) {
	s.logger.Info("List: fetching verification profiles, status=%v, user=%s", status, actor.UserID)

	if !domain.Can(actor, domain.CapReviewVerifications, "") {
		s.logger.Warn("List: access denied for user=%s role=%s", actor.UserID, actor.Role)
		return nil, ErrAccessDenied
	}

	var filter *domain.VerificationStatus
	if status != nil {
		st, err := domain.ParseVerificationStatus(*status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter = &st
	}

	profiles, err := s.profileRepo.ListByStatus(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	stats, err := s.profileRepo.Stats(ctx)
	if err != nil {
		s.logger.Error("List: stats repository error: %v", err)
		return nil, fmt.Errorf("%w: List - stats: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d profiles, total=%d", len(profiles), stats.Total)
	return models.FromDomainProfileList(profiles, stats), nil
}

// ListProfessionals публичный список мастеров: только одобренные заявки
// Пустой статус равен approved; остальные статусы видит только администратор
func (s *Service) ListProfessionals(ctx context.Context, status string) (*models.ProfessionalListResponse, error) {
	s.logger.Info("ListProfessionals: fetching professionals, status=%q", status)

	if status != "" {
		st, err := domain.ParseVerificationStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if st != domain.VerificationApproved {
			s.logger.Warn("ListProfessionals: status=%s is not public", st)
			return nil, ErrAccessDenied
		}
	}

	approved := domain.VerificationApproved
	profiles, err := s.profileRepo.ListByStatus(ctx, &approved)
	if err != nil {
		s.logger.Error("ListProfessionals: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProfessionals - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListProfessionals: successfully fetched %d professionals", len(profiles))
	return models.FromDomainProfessionalList(profiles), nil
}

// Decide одобряет или отклоняет заявку; решение принимается один раз
func (s *Service) Decide(ctx context.Context, actor domain.Actor, professionalID string, req *models.DecisionRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Decide: admin=%s decides %s for professional=%s", actor.UserID, req.Status, professionalID)

	if !domain.Can(actor, domain.CapReviewVerifications, "") {
		s.logger.Warn("Decide: access denied for user=%s role=%s", actor.UserID, actor.Role)
		return nil, ErrAccessDenied
	}

	to, err := domain.ParseVerificationStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.timeProvider.Now()
	var decided *domain.VerificationProfile

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		profile, err := s.profileRepo.GetByID(txCtx, professionalID)
		if err != nil {
			if errors.Is(err, verificationRepo.ErrProfileNotFound) {
				return ErrProfileNotFound
			}
			return fmt.Errorf("%w: Decide - get profile: %v", ErrInternal, err)
		}

		if err := profile.Decide(to, req.Reason, actor.UserID, now); err != nil {
			if errors.Is(err, domain.ErrAlreadyDecided) {
				return ErrAlreadyDecided
			}
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		if err := s.profileRepo.UpdateDecision(txCtx, profile); err != nil {
			return fmt.Errorf("%w: Decide - update decision: %v", ErrInternal, err)
		}

		decided = profile
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Decide: failed for professional=%s: %v", professionalID, err)
		} else {
			s.logger.Warn("Decide: rejected for professional=%s: %v", professionalID, err)
		}
		return nil, err
	}

	ticket := s.notifier.Submit(ctx, notifications.VerificationEvent(decided, now))
	s.logger.Info("Decide: professional=%s is %s, event=%s", professionalID, decided.Status, ticket.EventID())
	return models.FromDomainProfile(decided), nil
}
