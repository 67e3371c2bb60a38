package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/internal/services"
	"epi-tracker/pkg/api"
)

type EmployeeController struct {
	service services.EmployeeServiceInterface
	logger  *zap.Logger
}

func NewEmployeeController(service services.EmployeeServiceInterface, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{service: service, logger: logger}
}

func (c *EmployeeController) Create(ctx echo.Context) error {
	var d dto.CreateEmployeeDTO
	if err := ctx.Bind(&d); err != nil {
		return api.ErrorResponse(ctx, badRequest(err), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.Create(ctx.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Сотрудник создан", result)
}

func (c *EmployeeController) Update(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	var d dto.UpdateEmployeeDTO
	if err := ctx.Bind(&d); err != nil {
		return api.ErrorResponse(ctx, badRequest(err), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.Update(ctx.Request().Context(), id, d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Сотрудник обновлен", result)
}

func (c *EmployeeController) Delete(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Сотрудник удален", struct{}{})
}

func (c *EmployeeController) GetByID(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Сотрудник найден", result)
}

func (c *EmployeeController) Search(ctx echo.Context) error {
	list, err := c.service.Search(ctx.Request().Context(), ctx.QueryParam("search"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Список сотрудников получен", list)
}
