package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"epi-tracker/internal/controllers"
	"epi-tracker/internal/services"
)

func InitRouter(e *echo.Echo, registry *services.Registry, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")

	runEmployeeRouter(api, controllers.NewEmployeeController(registry.Employees, logger))
	runEPIRouter(api, controllers.NewEPIController(registry.EPIs, logger))
	runDeliveryRouter(api, controllers.NewDeliveryController(registry.Deliveries, logger))
	runReportRouter(api, controllers.NewReportController(registry.Reports, registry.Exports, logger))
	runDashboardRouter(api, controllers.NewDashboardController(registry.Dashboard, logger))

	logger.Info("INIT_ROUTER: Создание маршрутов завершено")
}
