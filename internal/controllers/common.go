package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "epi-tracker/pkg/errors"
)

// parseID читает :id из пути; ошибка уже обернута в HttpError 400.
func parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID", err, map[string]string{"id": ctx.Param("id")})
	}
	return id, nil
}

func badRequest(err error) error {
	return apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil)
}
