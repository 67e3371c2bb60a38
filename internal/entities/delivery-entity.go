package entities

import "time"

// Delivery - факт выдачи EPI сотруднику. Имена сотрудника и EPI копируются
// в момент выдачи и не меняются при последующей правке или удалении справочников.
type Delivery struct {
	ID                uint64     `json:"id"`
	EmployeeID        uint64     `json:"employee_id"`
	EmployeeName      string     `json:"employee_name"`
	EPIID             uint64     `json:"epi_id"`
	EPIName           string     `json:"epi_name"`
	Quantity          int        `json:"quantity"`
	DeliveryDate      time.Time  `json:"delivery_date"`
	ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
	ResponsiblePerson string     `json:"responsible_person"`
	Status            string     `json:"status"`
	Observations      *string    `json:"observations,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (d Delivery) Clone() Delivery {
	if d.ExpirationDate != nil {
		t := *d.ExpirationDate
		d.ExpirationDate = &t
	}
	if d.Observations != nil {
		o := *d.Observations
		d.Observations = &o
	}
	return d
}
