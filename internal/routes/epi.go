package routes

import (
	"github.com/labstack/echo/v4"

	"epi-tracker/internal/controllers"
)

func runEPIRouter(group *echo.Group, ctrl *controllers.EPIController) {
	group.GET("/epis", ctrl.Search)
	group.GET("/epis/:id", ctrl.GetByID)
	group.POST("/epis", ctrl.Create)
	group.POST("/epis/import", ctrl.Import)
	group.PUT("/epis/:id", ctrl.Update)
	group.DELETE("/epis/:id", ctrl.Delete)
}
