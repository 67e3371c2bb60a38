package dto

import (
	"github.com/aarondl/null/v8"

	"epi-tracker/internal/entities"
	"epi-tracker/pkg/utils"
)

// CreateEmployeeDTO - тело POST /employees. PUT принимает ту же форму целиком.
type CreateEmployeeDTO struct {
	Name             string      `json:"name"              validate:"required"`
	CPF              string      `json:"cpf"               validate:"required"`
	Sector           string      `json:"sector"            validate:"required"`
	Position         string      `json:"position"          validate:"required"`
	Status           string      `json:"status"            validate:"omitempty,record_status"`
	RegistrationDate null.String `json:"registration_date" validate:"omitempty,date_only"`
}

type UpdateEmployeeDTO = CreateEmployeeDTO

type EmployeeDTO struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	CPF              string `json:"cpf"`
	Sector           string `json:"sector"`
	Position         string `json:"position"`
	Status           string `json:"status"`
	RegistrationDate string `json:"registration_date"`
}

type ShortEmployeeDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func EmployeeToDTO(e entities.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:               e.ID,
		Name:             e.Name,
		CPF:              e.CPF,
		Sector:           e.Sector,
		Position:         e.Position,
		Status:           e.Status,
		RegistrationDate: utils.FormatDate(e.RegistrationDate),
	}
}

func EmployeesToDTO(list []entities.Employee) []EmployeeDTO {
	out := make([]EmployeeDTO, 0, len(list))
	for _, e := range list {
		out = append(out, EmployeeToDTO(e))
	}
	return out
}
