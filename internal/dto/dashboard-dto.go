package dto

type DashboardAlertDTO struct {
	Type    string `json:"type"`
	EPIID   uint64 `json:"epi_id"`
	Message string `json:"message"`
}

type DashboardDTO struct {
	TotalEmployees      int                 `json:"total_employees"`
	TotalEPIs           int                 `json:"total_epis"`
	LowStock            int                 `json:"low_stock"`
	NearExpiration      int                 `json:"near_expiration"`
	DeliveriesThisMonth int                 `json:"deliveries_this_month"`
	TotalValue          string              `json:"total_value"`
	Alerts              []DashboardAlertDTO `json:"alerts"`
	RecentDeliveries    []DeliveryDTO       `json:"recent_deliveries"`
}
