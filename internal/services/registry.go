package services

import (
	"go.uber.org/zap"

	"epi-tracker/internal/repositories"
	"epi-tracker/pkg/eventbus"
)

// Registry - все сервисы приложения поверх одного набора хранилищ.
type Registry struct {
	Employees  EmployeeServiceInterface
	EPIs       EPIServiceInterface
	Deliveries DeliveryServiceInterface
	Reports    ReportServiceInterface
	Exports    ExportServiceInterface
	Dashboard  DashboardServiceInterface
}

type Repositories struct {
	Employees  repositories.EmployeeRepositoryInterface
	EPIs       repositories.EPIRepositoryInterface
	Deliveries repositories.DeliveryRepositoryInterface
}

// NewMemoryRepositories - пустые коллекции в памяти процесса.
func NewMemoryRepositories() Repositories {
	return Repositories{
		Employees:  repositories.NewMemoryEmployeeRepository(),
		EPIs:       repositories.NewMemoryEPIRepository(),
		Deliveries: repositories.NewMemoryDeliveryRepository(),
	}
}

func NewRegistry(repos Repositories, bus *eventbus.Bus, clock Clock, logger *zap.Logger) *Registry {
	return &Registry{
		Employees:  NewEmployeeService(repos.Employees, clock, logger),
		EPIs:       NewEPIService(repos.EPIs, clock, logger),
		Deliveries: NewDeliveryService(repos.Deliveries, repos.Employees, repos.EPIs, bus, logger),
		Reports:    NewReportService(repos.Deliveries, repos.EPIs, clock, logger),
		Exports:    NewExportService(bus, logger),
		Dashboard:  NewDashboardService(repos.Employees, repos.EPIs, repos.Deliveries, clock, logger),
	}
}
