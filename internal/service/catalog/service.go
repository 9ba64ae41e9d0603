package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog/models"
)

// Service сервис каталога услуг мастеров
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create добавляет услугу в каталог мастера, от имени которого пришёл запрос
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q for professional=%s", req.Name, actor.UserID)

	if !domain.Can(actor, domain.CapManageServices, actor.UserID) {
		s.logger.Warn("Create: access denied for user=%s role=%s", actor.UserID, actor.Role)
		return nil, ErrAccessDenied
	}

	service := req.ToDomain(actor.UserID)
	if err := service.Validate(); err != nil {
		s.logger.Warn("Create: invalid service for professional=%s: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: repository error for professional=%s: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%s", id)

	service, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainService(service), nil
}

// ListByOwner получает каталог мастера
func (s *Service) ListByOwner(ctx context.Context, ownerID string) (*models.ServiceListResponse, error) {
	s.logger.Info("ListByOwner: fetching services of professional=%s", ownerID)

	services, err := s.serviceRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("ListByOwner: repository error for professional=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByOwner: successfully fetched %d services of professional=%s", len(services), ownerID)
	return models.FromDomainServiceList(services), nil
}

// List ищет услуги по всем мастерам; пустая категория или "All" означают без фильтра
func (s *Service) List(ctx context.Context, req *models.ListServicesRequest) (*models.ServiceListResponse, error) {
	s.logger.Info("List: searching services, category=%q, query=%q", req.Category, req.Query)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	services, err := s.serviceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully found %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// Categories возвращает справочник категорий
func (s *Service) Categories(_ context.Context) *models.CategoriesResponse {
	return models.FromDomainCategories(domain.ServiceCategories())
}

// Update частично обновляет услугу
// Уже созданные записи не меняются: они хранят снимок услуги
func (s *Service) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%s by user=%s", id, actor.UserID)

	patch := req.ToDomainPatch()
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.Can(actor, domain.CapManageServices, current.OwnerID) {
		s.logger.Warn("Update: access denied for user=%s to service id=%s", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	next := patch.Apply(*current)
	if err := next.Validate(); err != nil {
		s.logger.Warn("Update: invalid patch for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.serviceRepo.Update(ctx, &next)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%s", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу из каталога; записи с этой услугой остаются со снимком
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	s.logger.Info("Delete: deleting service id=%s by user=%s", id, actor.UserID)

	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if !domain.Can(actor, domain.CapManageServices, current.OwnerID) {
		s.logger.Warn("Delete: access denied for user=%s to service id=%s", actor.UserID, id)
		return ErrAccessDenied
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%s", id)
	return nil
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return service, nil
}
