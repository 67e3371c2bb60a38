package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/internal/entities"
	"epi-tracker/internal/repositories"
	"epi-tracker/pkg/constants"
	apperrors "epi-tracker/pkg/errors"
	"epi-tracker/pkg/utils"
)

type EPIServiceInterface interface {
	Create(ctx context.Context, d dto.CreateEPIDTO) (*dto.EPIDTO, error)
	Update(ctx context.Context, id uint64, d dto.UpdateEPIDTO) (*dto.EPIDTO, error)
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*dto.EPIDTO, error)
	Search(ctx context.Context, term string) ([]dto.EPIDTO, error)
	// Import загружает каталог из xlsx: существующий код обновляется, новый создается.
	Import(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error)
}

type EPIService struct {
	repo   repositories.EPIRepositoryInterface
	clock  Clock
	logger *zap.Logger
}

func NewEPIService(repo repositories.EPIRepositoryInterface, clock Clock, logger *zap.Logger) *EPIService {
	return &EPIService{repo: repo, clock: clockOrDefault(clock), logger: logger}
}

// toEntity проверяет обязательные поля и нормализует запись (код в верхнем регистре,
// дата срока годности сбрасывается, если срок не отслеживается).
func (s *EPIService) toEntity(d dto.CreateEPIDTO, registeredAt time.Time) (entities.EPI, error) {
	if err := requireField("name", d.Name); err != nil {
		return entities.EPI{}, err
	}
	if err := requireField("code", d.Code); err != nil {
		return entities.EPI{}, err
	}
	if !constants.IsEPICategory(d.Category) {
		return entities.EPI{}, apperrors.NewValidationError("category", "неизвестная категория %q", d.Category)
	}
	if d.Quantity < 0 {
		return entities.EPI{}, apperrors.NewValidationError("quantity", "не может быть отрицательным")
	}
	if d.MinQuantity < 0 {
		return entities.EPI{}, apperrors.NewValidationError("min_quantity", "не может быть отрицательным")
	}

	price := decimal.Zero
	if strings.TrimSpace(d.UnitPrice) != "" {
		p, err := decimal.NewFromString(strings.TrimSpace(d.UnitPrice))
		if err != nil {
			return entities.EPI{}, apperrors.NewValidationError("unit_price", "некорректная цена %q", d.UnitPrice)
		}
		if p.IsNegative() {
			return entities.EPI{}, apperrors.NewValidationError("unit_price", "не может быть отрицательной")
		}
		price = p
	}

	e := entities.EPI{
		Name:             strings.TrimSpace(d.Name),
		Code:             d.Code,
		Description:      strings.TrimSpace(d.Description),
		Category:         d.Category,
		Quantity:         d.Quantity,
		MinQuantity:      d.MinQuantity,
		UnitPrice:        price,
		HasExpiration:    d.HasExpiration,
		Status:           d.Status,
		RegistrationDate: utils.DateOnly(registeredAt),
	}
	if e.Status == "" {
		e.Status = constants.EPIStatusActive
	}

	if d.HasExpiration && d.ExpirationDate.Valid {
		date, err := utils.ParseOptionalDate(d.ExpirationDate.String)
		if err != nil {
			return entities.EPI{}, apperrors.NewValidationError("expiration_date", "%v", err)
		}
		e.ExpirationDate = date
	}
	if d.RegistrationDate.Valid && strings.TrimSpace(d.RegistrationDate.String) != "" {
		date, err := utils.ParseDate(d.RegistrationDate.String)
		if err != nil {
			return entities.EPI{}, apperrors.NewValidationError("registration_date", "%v", err)
		}
		e.RegistrationDate = date
	}

	e.Normalize()
	return e, nil
}

func (s *EPIService) Create(ctx context.Context, d dto.CreateEPIDTO) (*dto.EPIDTO, error) {
	e, err := s.toEntity(d, s.clock())
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		s.logger.Warn("EPI не создан", zap.String("code", e.Code), zap.Error(err))
		return nil, err
	}
	s.logger.Info("EPI создан", zap.Uint64("id", created.ID), zap.String("code", created.Code))

	result := dto.EPIToDTO(created, s.clock())
	return &result, nil
}

// Update заменяет запись целиком. Дубликат кода другой записи отклоняется хранилищем.
func (s *EPIService) Update(ctx context.Context, id uint64, d dto.UpdateEPIDTO) (*dto.EPIDTO, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	e, err := s.toEntity(d, current.RegistrationDate)
	if err != nil {
		return nil, err
	}
	e.ID = id

	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		s.logger.Warn("EPI не обновлен", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	result := dto.EPIToDTO(updated, s.clock())
	return &result, nil
}

// Delete безусловный: выдачи хранят название EPI и остаются в журнале.
func (s *EPIService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("EPI удален", zap.Uint64("id", id))
	return nil
}

func (s *EPIService) FindByID(ctx context.Context, id uint64) (*dto.EPIDTO, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.EPIToDTO(*e, s.clock())
	return &result, nil
}

func (s *EPIService) Search(ctx context.Context, term string) ([]dto.EPIDTO, error) {
	list, err := s.repo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, fmt.Errorf("не удалось выполнить поиск EPI: %w", err)
	}
	return dto.EPIsToDTO(list, s.clock()), nil
}
