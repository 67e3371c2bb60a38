package routes

import (
	"github.com/labstack/echo/v4"

	"epi-tracker/internal/controllers"
)

func runEmployeeRouter(group *echo.Group, ctrl *controllers.EmployeeController) {
	group.GET("/employees", ctrl.Search)
	group.GET("/employees/:id", ctrl.GetByID)
	group.POST("/employees", ctrl.Create)
	group.PUT("/employees/:id", ctrl.Update)
	group.DELETE("/employees/:id", ctrl.Delete)
}
