package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"epi-tracker/internal/entities"
	"epi-tracker/pkg/utils"
)

// CreateEPIDTO - тело POST/PUT /epis. Цена передается строкой, чтобы не терять точность.
type CreateEPIDTO struct {
	Name             string      `json:"name"              validate:"required"`
	Code             string      `json:"code"              validate:"required"`
	Description      string      `json:"description"`
	Category         string      `json:"category"          validate:"required,epi_category"`
	Quantity         int         `json:"quantity"          validate:"min=0"`
	MinQuantity      int         `json:"min_quantity"      validate:"min=0"`
	UnitPrice        string      `json:"unit_price"        validate:"required,money"`
	HasExpiration    bool        `json:"has_expiration"`
	ExpirationDate   null.String `json:"expiration_date"   validate:"omitempty,date_only"`
	Status           string      `json:"status"            validate:"omitempty,record_status"`
	RegistrationDate null.String `json:"registration_date" validate:"omitempty,date_only"`
}

type UpdateEPIDTO = CreateEPIDTO

type StockStatusDTO struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// EPIDTO несет производные признаки, чтобы клиент не пересчитывал бейджи.
type EPIDTO struct {
	ID               uint64         `json:"id"`
	Name             string         `json:"name"`
	Code             string         `json:"code"`
	Description      string         `json:"description"`
	Category         string         `json:"category"`
	Quantity         int            `json:"quantity"`
	MinQuantity      int            `json:"min_quantity"`
	UnitPrice        string         `json:"unit_price"`
	HasExpiration    bool           `json:"has_expiration"`
	ExpirationDate   *string        `json:"expiration_date"`
	Status           string         `json:"status"`
	RegistrationDate string         `json:"registration_date"`
	StockStatus      StockStatusDTO `json:"stock_status"`
	ExpiringSoon     bool           `json:"expiring_soon"`
}

type ShortEPIDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// ImportResultDTO - итог загрузки каталога из xlsx.
type ImportResultDTO struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors"`
}

type ImportRowError struct {
	Row     int    `json:"row"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// EPIToDTO считает производные признаки относительно ref.
func EPIToDTO(e entities.EPI, ref time.Time) EPIDTO {
	status := entities.ComputeStockStatus(e)
	return EPIDTO{
		ID:               e.ID,
		Name:             e.Name,
		Code:             e.Code,
		Description:      e.Description,
		Category:         e.Category,
		Quantity:         e.Quantity,
		MinQuantity:      e.MinQuantity,
		UnitPrice:        e.UnitPrice.StringFixed(2),
		HasExpiration:    e.HasExpiration,
		ExpirationDate:   utils.FormatOptionalDate(e.ExpirationDate),
		Status:           e.Status,
		RegistrationDate: utils.FormatDate(e.RegistrationDate),
		StockStatus:      StockStatusDTO{Label: status.Label, Severity: status.Severity},
		ExpiringSoon:     entities.ComputeExpirationProximity(e, ref),
	}
}

func EPIsToDTO(list []entities.EPI, ref time.Time) []EPIDTO {
	out := make([]EPIDTO, 0, len(list))
	for _, e := range list {
		out = append(out, EPIToDTO(e, ref))
	}
	return out
}

// EPIToCreateDTO - текущее состояние записи в виде тела запроса, основа для частичного обновления.
func EPIToCreateDTO(e entities.EPI) CreateEPIDTO {
	return CreateEPIDTO{
		Name:             e.Name,
		Code:             e.Code,
		Description:      e.Description,
		Category:         e.Category,
		Quantity:         e.Quantity,
		MinQuantity:      e.MinQuantity,
		UnitPrice:        e.UnitPrice.String(),
		HasExpiration:    e.HasExpiration,
		ExpirationDate:   null.StringFromPtr(utils.FormatOptionalDate(e.ExpirationDate)),
		Status:           e.Status,
		RegistrationDate: null.StringFrom(utils.FormatDate(e.RegistrationDate)),
	}
}
