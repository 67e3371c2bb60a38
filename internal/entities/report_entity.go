package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryReportFilter - диапазон дат выдачи, обе границы включительно и необязательны.
type DeliveryReportFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
}

// EmployeeReportFilter - сотрудник (nil = все) и период: 30/60/90 дней назад от опорной даты
// или custom с явным диапазоном. Пустой период - без ограничения по датам.
type EmployeeReportFilter struct {
	EmployeeID *uint64
	Period     string
	DateFrom   *time.Time
	DateTo     *time.Time
}

type DeliveryReportItem struct {
	DeliveryID  uint64
	Date        time.Time
	Employee    string
	EPI         string
	Quantity    int
	Responsible string
}

type EmployeeReportItem struct {
	DeliveryID     uint64
	EmployeeID     uint64
	Employee       string
	EPI            string
	DeliveryDate   time.Time
	Quantity       int
	ExpirationDate *time.Time
	Responsible    string
}

type StockReportItem struct {
	EPIID          uint64
	EPI            string
	Code           string
	CurrentStock   int
	MinStock       int
	TotalDelivered int
	AverageMonthly decimal.Decimal
	Status         StockStatus
}

type ExpirationReportItem struct {
	EPIID          uint64
	EPI            string
	Code           string
	ExpirationDate time.Time
	DaysToExpire   int
	CurrentStock   int
	Status         string
}

// Expired - срок уже прошел; в выводе вместо отрицательного числа дней ставится метка.
func (i ExpirationReportItem) Expired() bool {
	return i.DaysToExpire < 0
}
