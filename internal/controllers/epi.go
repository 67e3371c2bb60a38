package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/internal/services"
	"epi-tracker/pkg/api"
	"epi-tracker/pkg/config"
	apperrors "epi-tracker/pkg/errors"
	"epi-tracker/pkg/utils"
)

type EPIController struct {
	service services.EPIServiceInterface
	logger  *zap.Logger
}

func NewEPIController(service services.EPIServiceInterface, logger *zap.Logger) *EPIController {
	return &EPIController{service: service, logger: logger}
}

func (c *EPIController) Create(ctx echo.Context) error {
	var d dto.CreateEPIDTO
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
	return api.SuccessOne(ctx, http.StatusCreated, "EPI создан", result)
}

func (c *EPIController) Update(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	var d dto.UpdateEPIDTO
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
	return api.SuccessOne(ctx, http.StatusOK, "EPI обновлен", result)
}

func (c *EPIController) Delete(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "EPI удален", struct{}{})
}

func (c *EPIController) GetByID(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "EPI найден", result)
}

func (c *EPIController) Search(ctx echo.Context) error {
	list, err := c.service.Search(ctx.Request().Context(), ctx.QueryParam("search"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Список EPI получен", list)
}

// Import принимает multipart-поле file с xlsx-каталогом.
func (c *EPIController) Import(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Файл не передан", err, nil), c.logger)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Не удалось открыть файл", err, nil), c.logger)
	}
	defer file.Close()

	if err := utils.ValidateFile(fileHeader, file, config.UploadContextEPICatalog); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil), c.logger)
	}

	result, err := c.service.Import(ctx.Request().Context(), file)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Импорт каталога завершен", result)
}
