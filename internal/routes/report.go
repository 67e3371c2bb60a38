package routes

import (
	"github.com/labstack/echo/v4"

	"epi-tracker/internal/controllers"
)

func runReportRouter(group *echo.Group, ctrl *controllers.ReportController) {
	reports := group.Group("/reports")
	reports.GET("/deliveries", ctrl.Deliveries)
	reports.GET("/employees", ctrl.Employees)
	reports.GET("/stock", ctrl.Stock)
	reports.GET("/expiration", ctrl.Expiration)
	reports.POST("/export", ctrl.Export)
}
