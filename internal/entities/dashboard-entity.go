package entities

import "github.com/shopspring/decimal"

type DashboardAlert struct {
	Type    string
	EPIID   uint64
	Message string
}

type Dashboard struct {
	TotalEmployees      int
	TotalEPIs           int
	LowStock            int
	NearExpiration      int
	DeliveriesThisMonth int
	TotalValue          decimal.Decimal
	Alerts              []DashboardAlert
	RecentDeliveries    []Delivery
}
