package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/internal/services"
	"epi-tracker/pkg/api"
)

type DeliveryController struct {
	service services.DeliveryServiceInterface
	logger  *zap.Logger
}

func NewDeliveryController(service services.DeliveryServiceInterface, logger *zap.Logger) *DeliveryController {
	return &DeliveryController{service: service, logger: logger}
}

func (c *DeliveryController) Create(ctx echo.Context) error {
	var d dto.CreateDeliveryDTO
	if err := ctx.Bind(&d); err != nil {
		return api.ErrorResponse(ctx, badRequest(err), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.RecordDelivery(ctx.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Выдача зарегистрирована", result)
}

func (c *DeliveryController) GetByID(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Выдача найдена", result)
}

func (c *DeliveryController) Search(ctx echo.Context) error {
	list, err := c.service.Search(ctx.Request().Context(), ctx.QueryParam("search"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Журнал выдач получен", list)
}
