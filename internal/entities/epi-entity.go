package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"epi-tracker/pkg/constants"
	"epi-tracker/pkg/utils"
)

// EPI - позиция каталога средств индивидуальной защиты.
// ExpirationDate имеет смысл только при HasExpiration.
type EPI struct {
	ID               uint64          `json:"id"`
	Name             string          `json:"name"`
	Code             string          `json:"code"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Quantity         int             `json:"quantity"`
	MinQuantity      int             `json:"min_quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	HasExpiration    bool            `json:"has_expiration"`
	ExpirationDate   *time.Time      `json:"expiration_date,omitempty"`
	Status           string          `json:"status"`
	RegistrationDate time.Time       `json:"registration_date"`
}

type StockStatus struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// Normalize приводит запись к инвариантам каталога: код в верхнем регистре,
// без отслеживания срока годности дата не хранится.
func (e *EPI) Normalize() {
	e.Code = utils.NormalizeCode(e.Code)
	if !e.HasExpiration {
		e.ExpirationDate = nil
	}
	if e.ExpirationDate != nil {
		d := utils.DateOnly(*e.ExpirationDate)
		e.ExpirationDate = &d
	}
}

// ComputeStockStatus - низкий остаток, когда количество не превышает минимум (равенство уже low).
func ComputeStockStatus(item EPI) StockStatus {
	if item.Quantity <= item.MinQuantity {
		return StockStatus{Label: constants.StockLabelLow, Severity: constants.StockSeverityLow}
	}
	return StockStatus{Label: constants.StockLabelOK, Severity: constants.StockSeverityOK}
}

// ComputeExpirationProximity - срок годности наступает не позже чем через 30 дней от ref.
// Без отслеживания срока или без даты позиция никогда не "скоро истекает".
func ComputeExpirationProximity(item EPI, ref time.Time) bool {
	if !item.HasExpiration || item.ExpirationDate == nil {
		return false
	}
	limit := utils.AddDays(ref, constants.ExpiringSoonDays)
	return !utils.DateOnly(*item.ExpirationDate).After(limit)
}

// DaysToExpire - целых дней до истечения срока; ok=false, если срок не отслеживается.
func DaysToExpire(item EPI, ref time.Time) (days int, ok bool) {
	if !item.HasExpiration || item.ExpirationDate == nil {
		return 0, false
	}
	return utils.DaysBetween(ref, *item.ExpirationDate), true
}

// ExpirationTier классифицирует остаток дней: expired (<0), critical (<=7), approaching (<=30), normal.
func ExpirationTier(days int) string {
	switch {
	case days < 0:
		return constants.ExpirationStatusExpired
	case days <= constants.CriticalExpirationDays:
		return constants.ExpirationStatusCritical
	case days <= constants.ExpiringSoonDays:
		return constants.ExpirationStatusApproaching
	default:
		return constants.ExpirationStatusNormal
	}
}

// StockValue - стоимость остатка: количество × цена, без округления.
func (e EPI) StockValue() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Clone возвращает копию, не разделяющую указатели с оригиналом.
func (e EPI) Clone() EPI {
	if e.ExpirationDate != nil {
		d := *e.ExpirationDate
		e.ExpirationDate = &d
	}
	return e
}
