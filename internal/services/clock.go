package services

import (
	"strings"
	"time"

	apperrors "epi-tracker/pkg/errors"
	"epi-tracker/pkg/utils"
)

// Clock - источник опорной даты для производных признаков, отчетов и дашборда.
type Clock func() time.Time

// SystemClock - текущая календарная дата.
func SystemClock() time.Time {
	return utils.Today()
}

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return SystemClock
	}
	return c
}

// requireField - обязательное поле не может быть пустым или состоять из пробелов.
func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, "обязательное поле")
	}
	return nil
}
