package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/internal/entities"
	"epi-tracker/internal/repositories"
	"epi-tracker/pkg/constants"
	"epi-tracker/pkg/utils"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	employeeRepo repositories.EmployeeRepositoryInterface
	epiRepo      repositories.EPIRepositoryInterface
	deliveryRepo repositories.DeliveryRepositoryInterface
	clock        Clock
	logger       *zap.Logger
}

func NewDashboardService(
	employeeRepo repositories.EmployeeRepositoryInterface,
	epiRepo repositories.EPIRepositoryInterface,
	deliveryRepo repositories.DeliveryRepositoryInterface,
	clock Clock,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		employeeRepo: employeeRepo,
		epiRepo:      epiRepo,
		deliveryRepo: deliveryRepo,
		clock:        clockOrDefault(clock),
		logger:       logger,
	}
}

func expirationAlert(item entities.EPI, ref time.Time) entities.DashboardAlert {
	days, _ := entities.DaysToExpire(item, ref)
	msg := fmt.Sprintf("%s expiring in %d days", item.Name, days)
	if days < 0 {
		msg = fmt.Sprintf("%s expired", item.Name)
	}
	return entities.DashboardAlert{Type: constants.AlertTypeDanger, EPIID: item.ID, Message: msg}
}

// build считает сводку относительно ref.
func (s *DashboardService) build(ctx context.Context, ref time.Time) (entities.Dashboard, error) {
	employees, err := s.employeeRepo.Search(ctx, "")
	if err != nil {
		return entities.Dashboard{}, fmt.Errorf("не удалось загрузить сотрудников: %w", err)
	}
	items, err := s.epiRepo.Search(ctx, "")
	if err != nil {
		return entities.Dashboard{}, fmt.Errorf("не удалось загрузить каталог EPI: %w", err)
	}
	deliveries, err := s.deliveryRepo.Search(ctx, "")
	if err != nil {
		return entities.Dashboard{}, fmt.Errorf("не удалось загрузить журнал выдач: %w", err)
	}

	board := entities.Dashboard{
		TotalEmployees: len(employees),
		TotalEPIs:      len(items),
		TotalValue:     decimal.Zero,
		Alerts:         make([]entities.DashboardAlert, 0),
	}

	for _, item := range items {
		board.TotalValue = board.TotalValue.Add(item.StockValue())

		if entities.ComputeStockStatus(item).Severity == constants.StockSeverityLow {
			board.LowStock++
			board.Alerts = append(board.Alerts, entities.DashboardAlert{
				Type:    constants.AlertTypeWarning,
				EPIID:   item.ID,
				Message: fmt.Sprintf("%s with low stock (%d units)", item.Name, item.Quantity),
			})
		}
		if entities.ComputeExpirationProximity(item, ref) {
			board.NearExpiration++
			board.Alerts = append(board.Alerts, expirationAlert(item, ref))
		}
	}

	for _, d := range deliveries {
		if utils.SameMonth(d.DeliveryDate, ref) {
			board.DeliveriesThisMonth++
		}
	}

	recent := deliveries
	if len(recent) > constants.DashboardRecentDeliveries {
		recent = recent[:constants.DashboardRecentDeliveries]
	}
	board.RecentDeliveries = recent
	return board, nil
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	board, err := s.build(ctx, s.clock())
	if err != nil {
		s.logger.Error("Ошибка при построении дашборда", zap.Error(err))
		return nil, err
	}

	alerts := make([]dto.DashboardAlertDTO, 0, len(board.Alerts))
	for _, a := range board.Alerts {
		alerts = append(alerts, dto.DashboardAlertDTO{Type: a.Type, EPIID: a.EPIID, Message: a.Message})
	}

	return &dto.DashboardDTO{
		TotalEmployees:      board.TotalEmployees,
		TotalEPIs:           board.TotalEPIs,
		LowStock:            board.LowStock,
		NearExpiration:      board.NearExpiration,
		DeliveriesThisMonth: board.DeliveriesThisMonth,
		TotalValue:          board.TotalValue.StringFixed(2),
		Alerts:              alerts,
		RecentDeliveries:    dto.DeliveriesToDTO(board.RecentDeliveries),
	}, nil
}
