package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"epi-tracker/pkg/api"
	apperrors "epi-tracker/pkg/errors"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	storage Pinger
	logger  *zap.Logger
}

func NewHealthController(storage Pinger, logger *zap.Logger) *HealthController {
	return &HealthController{storage: storage, logger: logger}
}

func (c *HealthController) Check(ctx echo.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), 2*time.Second)
	defer cancel()

	if err := c.storage.Ping(pingCtx); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusServiceUnavailable, "Хранилище недоступно", err, nil), c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "ok", map[string]string{"status": "up"})
}
