package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "epi-tracker/pkg/errors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List  []T `json:"list"`
	Total int `json:"total"`
}

// SuccessOne — для возврата одного объекта
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

// SuccessList — список без пагинации, пустой список отдается как [] а не null
func SuccessList[T any](c echo.Context, message string, list []T) error {
	if list == nil {
		list = make([]T, 0)
	}
	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body:    ListBody[T]{List: list, Total: len(list)},
	})
}

// ErrorResponse переводит ошибку в JSON-ответ. Технические детали пишутся только в лог.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, Response[any]{
			Status:  false,
			Message: "Ошибка валидации: " + strings.Join(msgs, "; "),
		})
	}

	var httpErr *apperrors.HttpError
	if !errors.As(err, &httpErr) {
		code := apperrors.StatusCode(err)
		msg := err.Error()
		if code == http.StatusInternalServerError {
			logger.Error("Unexpected Error", zap.Error(err))
			msg = "Внутренняя ошибка сервера"
		}
		return c.JSON(code, Response[any]{Status: false, Message: msg})
	}

	code, msg := httpErr.Code, httpErr.Message
	if httpErr.Err != nil {
		// Доменная причина важнее кода, выбранного контроллером по умолчанию
		if inner := apperrors.StatusCode(httpErr.Err); inner != http.StatusInternalServerError {
			code = inner
		}
		if apperrors.IsValidation(httpErr.Err) {
			msg = httpErr.Err.Error()
		}
		logger.Error("HTTP Error",
			zap.Int("code", code),
			zap.String("message", httpErr.Message),
			zap.Error(httpErr.Err),
			zap.Any("details", httpErr.Details),
		)
	}

	return c.JSON(code, Response[any]{
		Status:  false,
		Message: msg,
	})
}
