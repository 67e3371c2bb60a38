package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/internal/services"
	"epi-tracker/pkg/api"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	exportService services.ExportServiceInterface
	logger        *zap.Logger
}

func NewReportController(
	reportService services.ReportServiceInterface,
	exportService services.ExportServiceInterface,
	logger *zap.Logger,
) *ReportController {
	return &ReportController{reportService: reportService, exportService: exportService, logger: logger}
}

func (c *ReportController) Deliveries(ctx echo.Context) error {
	var q dto.DeliveryReportQueryDTO
	if err := ctx.Bind(&q); err != nil {
		return api.ErrorResponse(ctx, badRequest(err), c.logger)
	}
	if err := ctx.Validate(&q); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	filter, err := q.ToFilter()
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Debug("Отчет по выдачам", zap.Any("filter", q))

	rows, err := c.reportService.DeliveryReport(ctx.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Отчет по выдачам сформирован", rows)
}

func (c *ReportController) Employees(ctx echo.Context) error {
	var q dto.EmployeeReportQueryDTO
	if err := ctx.Bind(&q); err != nil {
		return api.ErrorResponse(ctx, badRequest(err), c.logger)
	}
	if err := ctx.Validate(&q); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	filter, err := q.ToFilter()
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Debug("Отчет по сотрудникам", zap.Any("filter", q))

	rows, err := c.reportService.EmployeeReport(ctx.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Отчет по сотрудникам сформирован", rows)
}

func (c *ReportController) Stock(ctx echo.Context) error {
	rows, err := c.reportService.StockReport(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Отчет по остаткам сформирован", rows)
}

func (c *ReportController) Expiration(ctx echo.Context) error {
	rows, err := c.reportService.ExpirationReport(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Отчет по срокам годности сформирован", rows)
}

// Export только подтверждает запрос, файл формируется вне сервиса.
func (c *ReportController) Export(ctx echo.Context) error {
	var d dto.ExportRequestDTO
	if err := ctx.Bind(&d); err != nil {
		return api.ErrorResponse(ctx, badRequest(err), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	ticket, err := c.exportService.RequestExport(ctx.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusAccepted, ticket.Message, ticket)
}
