package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/internal/entities"
	"epi-tracker/internal/repositories"
	"epi-tracker/pkg/constants"
	apperrors "epi-tracker/pkg/errors"
	"epi-tracker/pkg/utils"
)

type EmployeeServiceInterface interface {
	Create(ctx context.Context, d dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error)
	Update(ctx context.Context, id uint64, d dto.UpdateEmployeeDTO) (*dto.EmployeeDTO, error)
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*dto.EmployeeDTO, error)
	Search(ctx context.Context, term string) ([]dto.EmployeeDTO, error)
}

type EmployeeService struct {
	repo   repositories.EmployeeRepositoryInterface
	clock  Clock
	logger *zap.Logger
}

func NewEmployeeService(repo repositories.EmployeeRepositoryInterface, clock Clock, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, clock: clockOrDefault(clock), logger: logger}
}

// toEntity собирает запись из DTO. Пустой статус - active, без даты регистрации берется registeredAt.
func (s *EmployeeService) toEntity(d dto.CreateEmployeeDTO, registeredAt time.Time) (entities.Employee, error) {
	required := []struct{ field, value string }{
		{"name", d.Name},
		{"cpf", d.CPF},
		{"sector", d.Sector},
		{"position", d.Position},
	}
	for _, r := range required {
		if err := requireField(r.field, r.value); err != nil {
			return entities.Employee{}, err
		}
	}

	e := entities.Employee{
		Name:             strings.TrimSpace(d.Name),
		CPF:              utils.FormatCPF(d.CPF),
		Sector:           strings.TrimSpace(d.Sector),
		Position:         strings.TrimSpace(d.Position),
		Status:           d.Status,
		RegistrationDate: utils.DateOnly(registeredAt),
	}
	if e.Status == "" {
		e.Status = constants.EmployeeStatusActive
	}

	if d.RegistrationDate.Valid && strings.TrimSpace(d.RegistrationDate.String) != "" {
		date, err := utils.ParseDate(d.RegistrationDate.String)
		if err != nil {
			return entities.Employee{}, apperrors.NewValidationError("registration_date", "%v", err)
		}
		e.RegistrationDate = date
	}
	return e, nil
}

func (s *EmployeeService) Create(ctx context.Context, d dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error) {
	e, err := s.toEntity(d, s.clock())
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		s.logger.Error("Ошибка при создании сотрудника", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Сотрудник создан", zap.Uint64("id", created.ID), zap.String("name", created.Name))

	result := dto.EmployeeToDTO(created)
	return &result, nil
}

// Update заменяет запись целиком; без даты регистрации сохраняется прежняя.
func (s *EmployeeService) Update(ctx context.Context, id uint64, d dto.UpdateEmployeeDTO) (*dto.EmployeeDTO, error) {
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
		s.logger.Error("Ошибка при обновлении сотрудника", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	result := dto.EmployeeToDTO(updated)
	return &result, nil
}

// Delete не трогает журнал выдач: имена в выдачах уже скопированы.
func (s *EmployeeService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Сотрудник удален", zap.Uint64("id", id))
	return nil
}

func (s *EmployeeService) FindByID(ctx context.Context, id uint64) (*dto.EmployeeDTO, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.EmployeeToDTO(*e)
	return &result, nil
}

func (s *EmployeeService) Search(ctx context.Context, term string) ([]dto.EmployeeDTO, error) {
	list, err := s.repo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, fmt.Errorf("не удалось выполнить поиск сотрудников: %w", err)
	}
	return dto.EmployeesToDTO(list), nil
}
