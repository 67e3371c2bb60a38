package seeders

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/internal/services"
)

// SeedDemoData наполняет пустое хранилище демонстрационными данными через сервисы,
// поэтому записи проходят те же проверки, что и запросы API. Непустое хранилище не трогается.
func SeedDemoData(ctx context.Context, registry *services.Registry, logger *zap.Logger) error {
	existing, err := registry.Employees.Search(ctx, "")
	if err != nil {
		return fmt.Errorf("не удалось проверить наличие данных: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("Сидер пропущен: сотрудники уже есть", zap.Int("count", len(existing)))
		return nil
	}

	employeeIDs := make([]uint64, 0, len(employeesData))
	for _, d := range employeesData {
		e, err := registry.Employees.Create(ctx, d)
		if err != nil {
			return fmt.Errorf("сотрудник %s: %w", d.Name, err)
		}
		employeeIDs = append(employeeIDs, e.ID)
	}

	epiIDs := make([]uint64, 0, len(episData))
	for _, d := range episData {
		e, err := registry.EPIs.Create(ctx, d)
		if err != nil {
			return fmt.Errorf("EPI %s: %w", d.Code, err)
		}
		epiIDs = append(epiIDs, e.ID)
	}

	for _, s := range deliveriesData {
		d := dto.CreateDeliveryDTO{
			EmployeeID:        employeeIDs[s.employee],
			EPIID:             epiIDs[s.epi],
			Quantity:          s.quantity,
			DeliveryDate:      s.date,
			ResponsiblePerson: s.responsible,
		}
		if s.observations != "" {
			d.Observations = null.StringFrom(s.observations)
		}
		if _, err := registry.Deliveries.RecordDelivery(ctx, d); err != nil {
			return fmt.Errorf("выдача от %s: %w", s.date, err)
		}
	}

	logger.Info("Демонстрационные данные загружены",
		zap.Int("employees", len(employeeIDs)),
		zap.Int("epis", len(epiIDs)),
		zap.Int("deliveries", len(deliveriesData)),
	)
	return nil
}
