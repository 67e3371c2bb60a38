package dto

import (
	"github.com/aarondl/null/v8"

	"epi-tracker/internal/entities"
	"epi-tracker/pkg/utils"
)

type CreateDeliveryDTO struct {
	EmployeeID        uint64      `json:"employee_id"        validate:"required"`
	EPIID             uint64      `json:"epi_id"             validate:"required"`
	Quantity          int         `json:"quantity"           validate:"gte=1"`
	DeliveryDate      string      `json:"delivery_date"      validate:"required,date_only"`
	ExpirationDate    null.String `json:"expiration_date"    validate:"omitempty,date_only"`
	ResponsiblePerson string      `json:"responsible_person" validate:"required"`
	Observations      null.String `json:"observations"`
}

type DeliveryDTO struct {
	ID                uint64  `json:"id"`
	EmployeeID        uint64  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	EPIID             uint64  `json:"epi_id"`
	EPIName           string  `json:"epi_name"`
	Quantity          int     `json:"quantity"`
	DeliveryDate      string  `json:"delivery_date"`
	ExpirationDate    *string `json:"expiration_date"`
	ResponsiblePerson string  `json:"responsible_person"`
	Status            string  `json:"status"`
	Observations      *string `json:"observations"`
}

func DeliveryToDTO(d entities.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:                d.ID,
		EmployeeID:        d.EmployeeID,
		EmployeeName:      d.EmployeeName,
		EPIID:             d.EPIID,
		EPIName:           d.EPIName,
		Quantity:          d.Quantity,
		DeliveryDate:      utils.FormatDate(d.DeliveryDate),
		ExpirationDate:    utils.FormatOptionalDate(d.ExpirationDate),
		ResponsiblePerson: d.ResponsiblePerson,
		Status:            d.Status,
		Observations:      d.Observations,
	}
}

func DeliveriesToDTO(list []entities.Delivery) []DeliveryDTO {
	out := make([]DeliveryDTO, 0, len(list))
	for _, d := range list {
		out = append(out, DeliveryToDTO(d))
	}
	return out
}
