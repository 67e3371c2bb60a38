package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/internal/entities"
	"epi-tracker/internal/events"
	"epi-tracker/internal/repositories"
	"epi-tracker/pkg/constants"
	apperrors "epi-tracker/pkg/errors"
	"epi-tracker/pkg/eventbus"
	"epi-tracker/pkg/utils"
)

type DeliveryServiceInterface interface {
	RecordDelivery(ctx context.Context, d dto.CreateDeliveryDTO) (*dto.DeliveryDTO, error)
	Search(ctx context.Context, term string) ([]dto.DeliveryDTO, error)
	FindByID(ctx context.Context, id uint64) (*dto.DeliveryDTO, error)
}

type DeliveryService struct {
	deliveryRepo repositories.DeliveryRepositoryInterface
	employeeRepo repositories.EmployeeRepositoryInterface
	epiRepo      repositories.EPIRepositoryInterface
	bus          *eventbus.Bus
	logger       *zap.Logger
}

func NewDeliveryService(
	deliveryRepo repositories.DeliveryRepositoryInterface,
	employeeRepo repositories.EmployeeRepositoryInterface,
	epiRepo repositories.EPIRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		employeeRepo: employeeRepo,
		epiRepo:      epiRepo,
		bus:          bus,
		logger:       logger,
	}
}

// RecordDelivery записывает выдачу. Сотрудник и EPI должны существовать (статус не проверяется),
// их имена копируются в запись. Остаток EPI на складе не меняется.
func (s *DeliveryService) RecordDelivery(ctx context.Context, d dto.CreateDeliveryDTO) (*dto.DeliveryDTO, error) {
	if d.Quantity < 1 {
		return nil, apperrors.NewValidationError("quantity", "должно быть не меньше 1")
	}
	if err := requireField("responsible_person", d.ResponsiblePerson); err != nil {
		return nil, err
	}
	if err := requireField("delivery_date", d.DeliveryDate); err != nil {
		return nil, err
	}
	deliveryDate, err := utils.ParseDate(d.DeliveryDate)
	if err != nil {
		return nil, apperrors.NewValidationError("delivery_date", "%v", err)
	}

	employee, err := s.employeeRepo.FindByID(ctx, d.EmployeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("employee_id", "сотрудник %d не найден", d.EmployeeID)
		}
		return nil, fmt.Errorf("ошибка поиска сотрудника: %w", err)
	}
	item, err := s.epiRepo.FindByID(ctx, d.EPIID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("epi_id", "EPI %d не найден", d.EPIID)
		}
		return nil, fmt.Errorf("ошибка поиска EPI: %w", err)
	}

	delivery := entities.Delivery{
		EmployeeID:        employee.ID,
		EmployeeName:      employee.Name,
		EPIID:             item.ID,
		EPIName:           item.Name,
		Quantity:          d.Quantity,
		DeliveryDate:      deliveryDate,
		ResponsiblePerson: strings.TrimSpace(d.ResponsiblePerson),
		Status:            constants.DeliveryStatusDelivered,
	}

	// Срок годности: переданный в запросе, иначе срок позиции каталога.
	if d.ExpirationDate.Valid && strings.TrimSpace(d.ExpirationDate.String) != "" {
		exp, err := utils.ParseDate(d.ExpirationDate.String)
		if err != nil {
			return nil, apperrors.NewValidationError("expiration_date", "%v", err)
		}
		delivery.ExpirationDate = &exp
	} else if item.HasExpiration && item.ExpirationDate != nil {
		exp := *item.ExpirationDate
		delivery.ExpirationDate = &exp
	}
	if d.Observations.Valid && strings.TrimSpace(d.Observations.String) != "" {
		obs := strings.TrimSpace(d.Observations.String)
		delivery.Observations = &obs
	}

	created, err := s.deliveryRepo.Create(ctx, delivery)
	if err != nil {
		s.logger.Error("Ошибка при записи выдачи", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Выдача записана",
		zap.Uint64("id", created.ID),
		zap.Uint64("employee_id", created.EmployeeID),
		zap.Uint64("epi_id", created.EPIID),
		zap.Int("quantity", created.Quantity),
	)

	if s.bus != nil {
		s.bus.Publish(ctx, events.DeliveryRecordedEvent{Delivery: created.Clone()})
	}

	result := dto.DeliveryToDTO(created)
	return &result, nil
}

// Search - пустой запрос возвращает весь журнал, новые выдачи первыми.
func (s *DeliveryService) Search(ctx context.Context, term string) ([]dto.DeliveryDTO, error) {
	list, err := s.deliveryRepo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, fmt.Errorf("не удалось выполнить поиск выдач: %w", err)
	}
	return dto.DeliveriesToDTO(list), nil
}

func (s *DeliveryService) FindByID(ctx context.Context, id uint64) (*dto.DeliveryDTO, error) {
	d, err := s.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.DeliveryToDTO(*d)
	return &result, nil
}
