package dto

import (
	"epi-tracker/internal/entities"
	apperrors "epi-tracker/pkg/errors"
	"epi-tracker/pkg/utils"
)

// Параметры отчетов приходят в query string.
type DeliveryReportQueryDTO struct {
	DateFrom string `query:"date_from" validate:"omitempty,date_only"`
	DateTo   string `query:"date_to"   validate:"omitempty,date_only"`
}

// EmployeeReportQueryDTO: employee_id=0 - все сотрудники, пустой period - без ограничения по датам.
type EmployeeReportQueryDTO struct {
	EmployeeID uint64 `query:"employee_id"`
	Period     string `query:"period"    validate:"omitempty,oneof=30 60 90 custom"`
	DateFrom   string `query:"date_from" validate:"omitempty,date_only"`
	DateTo     string `query:"date_to"   validate:"omitempty,date_only"`
}

type DeliveryReportRowDTO struct {
	DeliveryID  uint64 `json:"delivery_id"`
	Date        string `json:"date"`
	Employee    string `json:"employee"`
	EPI         string `json:"epi"`
	Quantity    int    `json:"quantity"`
	Responsible string `json:"responsible"`
}

type EmployeeReportRowDTO struct {
	DeliveryID     uint64  `json:"delivery_id"`
	EmployeeID     uint64  `json:"employee_id"`
	Employee       string  `json:"employee"`
	EPI            string  `json:"epi"`
	DeliveryDate   string  `json:"delivery_date"`
	Quantity       int     `json:"quantity"`
	ExpirationDate *string `json:"expiration_date"`
	Responsible    string  `json:"responsible"`
}

type StockReportRowDTO struct {
	EPIID          uint64         `json:"epi_id"`
	EPI            string         `json:"epi"`
	Code           string         `json:"code"`
	CurrentStock   int            `json:"current_stock"`
	MinStock       int            `json:"min_stock"`
	TotalDelivered int            `json:"total_delivered"`
	AverageMonthly string         `json:"average_monthly"`
	Status         StockStatusDTO `json:"status"`
}

// ExpirationReportRowDTO: для просроченных позиций days_to_expire = null, вместо числа days_label.
type ExpirationReportRowDTO struct {
	EPIID          uint64 `json:"epi_id"`
	EPI            string `json:"epi"`
	Code           string `json:"code"`
	ExpirationDate string `json:"expiration_date"`
	DaysToExpire   *int   `json:"days_to_expire"`
	DaysLabel      string `json:"days_label"`
	CurrentStock   int    `json:"current_stock"`
	Status         string `json:"status"`
}

func (q DeliveryReportQueryDTO) ToFilter() (entities.DeliveryReportFilter, error) {
	from, err := utils.ParseOptionalDate(q.DateFrom)
	if err != nil {
		return entities.DeliveryReportFilter{}, apperrors.NewValidationError("date_from", "%v", err)
	}
	to, err := utils.ParseOptionalDate(q.DateTo)
	if err != nil {
		return entities.DeliveryReportFilter{}, apperrors.NewValidationError("date_to", "%v", err)
	}
	return entities.DeliveryReportFilter{DateFrom: from, DateTo: to}, nil
}

func (q EmployeeReportQueryDTO) ToFilter() (entities.EmployeeReportFilter, error) {
	filter := entities.EmployeeReportFilter{Period: q.Period}
	if q.EmployeeID != 0 {
		id := q.EmployeeID
		filter.EmployeeID = &id
	}

	var err error
	if filter.DateFrom, err = utils.ParseOptionalDate(q.DateFrom); err != nil {
		return entities.EmployeeReportFilter{}, apperrors.NewValidationError("date_from", "%v", err)
	}
	if filter.DateTo, err = utils.ParseOptionalDate(q.DateTo); err != nil {
		return entities.EmployeeReportFilter{}, apperrors.NewValidationError("date_to", "%v", err)
	}
	return filter, nil
}
