package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"epi-tracker/pkg/constants"
)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"date_only":       isDateOnly,
		"epi_category":    isEPICategory,
		"record_status":   isRecordStatus,
		"delivery_status": isDeliveryStatus,
		"money":           isMoney,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// isDateOnly - календарная дата ГГГГ-ММ-ДД
func isDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(constants.DateLayout, strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func isEPICategory(fl validator.FieldLevel) bool {
	return constants.IsEPICategory(fl.Field().String())
}

// isRecordStatus - active/inactive, общий для сотрудников и EPI
func isRecordStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.EmployeeStatusActive, constants.EmployeeStatusInactive:
		return true
	}
	return false
}

func isDeliveryStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.DeliveryStatusDelivered, constants.DeliveryStatusPending, constants.DeliveryStatusReturned:
		return true
	}
	return false
}

// isMoney - неотрицательное десятичное число в строке
func isMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil && !d.IsNegative()
}
