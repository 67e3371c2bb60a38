package routes

import (
	"github.com/labstack/echo/v4"

	"epi-tracker/internal/controllers"
)

func runDashboardRouter(group *echo.Group, ctrl *controllers.DashboardController) {
	group.GET("/dashboard", ctrl.Get)
}
