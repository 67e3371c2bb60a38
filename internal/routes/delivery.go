package routes

import (
	"github.com/labstack/echo/v4"

	"epi-tracker/internal/controllers"
)

// Выдачи неизменяемы: только создание, поиск и просмотр.
func runDeliveryRouter(group *echo.Group, ctrl *controllers.DeliveryController) {
	group.GET("/deliveries", ctrl.Search)
	group.GET("/deliveries/:id", ctrl.GetByID)
	group.POST("/deliveries", ctrl.Create)
}
